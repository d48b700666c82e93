package usecase

import (
	"context"
	"errors"
	"fmt"
	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/domain/idempotency"
	"seguros_xpto/internal/domain/validation"
	"seguros_xpto/internal/usecase/interfaces"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrSimulationNotFound  = errors.New("simulation not found")
	ErrInvalidSimulationID = errors.New("invalid simulation id")
)

// SimulationInput is a quote request as submitted by a lead form or a
// signed-in customer.
type SimulationInput struct {
	Type    entities.SimulationType
	Title   string
	Summary string
	Payload map[string]any
}

// ISimulationUseCase exposes the simulation store.
//
//   - POST /simulations => CreateOrUpdate()
//   - GET /simulations, GET /simulations/{id} => List(), Get()
//   - PUT /simulations/{id}/documents/quote.pdf => AttachQuoteDocument()
type ISimulationUseCase interface {
	CreateOrUpdate(ctx context.Context, p entities.Principal, in SimulationInput) (entities.Simulation, error)
	Get(ctx context.Context, p entities.Principal, id string) (entities.Simulation, error)
	List(ctx context.Context, p entities.Principal, ownerFilter string) ([]entities.Simulation, error)
	AttachQuoteDocument(ctx context.Context, p entities.Principal, id string, doc entities.Document) (UploadResult, error)
}

type SimulationUseCase struct {
	repo        interfaces.ISimulationRepository
	attachments IAttachmentUseCase
	lc          lifecycle
	now         func() time.Time
}

var _ ISimulationUseCase = (*SimulationUseCase)(nil)

func NewSimulationUseCase(
	repo interfaces.ISimulationRepository,
	attachments IAttachmentUseCase,
	feed interfaces.IChangeFeed,
	metrics interfaces.IMetrics,
	logger *zap.Logger,
) *SimulationUseCase {
	return &SimulationUseCase{
		repo:        repo,
		attachments: attachments,
		lc:          lifecycle{feed: feed, metrics: metrics, logger: logger}.withDefaults(),
		now:         time.Now,
	}
}

// CreateOrUpdate validates the per-type payload and upserts the simulation
// under its idempotency-derived id. A resubmission within the same minute
// updates the same record; nothing is written when validation fails.
func (u *SimulationUseCase) CreateOrUpdate(ctx context.Context, p entities.Principal, in SimulationInput) (entities.Simulation, error) {
	if err := authorize(p, resourceSimulation, actionCreate, ""); err != nil {
		return entities.Simulation{}, err
	}

	in.Type = entities.SimulationType(strings.TrimSpace(string(in.Type)))
	violations, naturalKey := validateSimulationPayload(in.Type, in.Payload)
	if !violations.Empty() {
		u.lc.metrics.SimulationSubmitted(string(in.Type), "rejected")
		return entities.Simulation{}, newValidationError(violations)
	}

	submitter := p.Email
	if submitter == "" {
		submitter = payloadString(in.Payload, "email")
	}
	owner := p.UserID
	if owner == "" {
		owner = entities.AnonymousOwner
	}

	now := u.now().UTC()
	key := idempotency.Key(string(in.Type), submitter, naturalKey, now)
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = defaultSimulationTitle(in.Type, in.Payload)
	}

	s := entities.Simulation{
		ID:         idempotency.ID(key),
		Type:       in.Type,
		OwnerID:    owner,
		OwnerEmail: idempotency.NormalizeSubmitter(submitter),
		Status:     entities.SimulationStatusSubmitted,
		Title:      title,
		Summary:    strings.TrimSpace(in.Summary),
		Payload:    in.Payload,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if s.OwnerEmail == idempotency.AnonymousSubmitter {
		s.OwnerEmail = ""
	}

	saved, err := u.repo.Upsert(ctx, s)
	if errors.Is(err, interfaces.ErrOwnerMismatch) {
		u.lc.metrics.SimulationSubmitted(string(in.Type), "rejected")
		u.lc.logger.Warn("[simulation][usecase] submission targets a record of another owner",
			zap.String("id", s.ID), zap.String("owner_id", s.OwnerID))
		return entities.Simulation{}, fmt.Errorf("%w: simulation belongs to another owner", ErrForbidden)
	}
	if err != nil {
		u.lc.logger.Error("[simulation][usecase] upsert failed", zap.String("id", s.ID), zap.Error(err))
		return entities.Simulation{}, transient(err)
	}

	u.lc.metrics.SimulationSubmitted(string(in.Type), "accepted")
	u.lc.logger.Info("[simulation][usecase] simulation stored",
		zap.String("id", saved.ID), zap.String("type", string(saved.Type)), zap.String("owner_id", saved.OwnerID))
	u.lc.publish(ctx, entities.EntityKindSimulation, saved.ID, saved.OwnerID, "upsert", now)
	return saved, nil
}

func (u *SimulationUseCase) Get(ctx context.Context, p entities.Principal, id string) (entities.Simulation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Simulation{}, ErrInvalidSimulationID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Simulation{}, transient(err)
	}
	if s.ID == "" {
		return entities.Simulation{}, ErrSimulationNotFound
	}
	if err := authorize(p, resourceSimulation, actionRead, s.OwnerID); err != nil {
		return entities.Simulation{}, err
	}
	return s, nil
}

// List returns the caller's simulations. Administrators see every owner,
// optionally narrowed by ownerFilter.
func (u *SimulationUseCase) List(ctx context.Context, p entities.Principal, ownerFilter string) ([]entities.Simulation, error) {
	ownerFilter = strings.TrimSpace(ownerFilter)

	var (
		items []entities.Simulation
		err   error
	)
	switch {
	case p.IsAdmin() && ownerFilter == "":
		if err := authorize(p, resourceSimulation, actionListAll, ""); err != nil {
			return nil, err
		}
		items, err = u.repo.ListAll(ctx)
	case p.IsAdmin():
		items, err = u.repo.ListByOwner(ctx, ownerFilter)
	default:
		if err := authorize(p, resourceSimulation, actionList, ""); err != nil {
			return nil, err
		}
		if ownerFilter != "" && ownerFilter != p.UserID {
			return nil, fmt.Errorf("%w: cannot list simulations of another owner", ErrForbidden)
		}
		items, err = u.repo.ListByOwner(ctx, p.UserID)
	}
	if err != nil {
		return nil, transient(err)
	}
	return items, nil
}

// AttachQuoteDocument uploads the quote PDF of a simulation.
func (u *SimulationUseCase) AttachQuoteDocument(ctx context.Context, p entities.Principal, id string, doc entities.Document) (UploadResult, error) {
	ref := entities.EntityRef{Kind: entities.EntityKindSimulation, ID: strings.TrimSpace(id)}
	return u.attachments.Upload(ctx, p, ref, entities.SlotQuote, doc)
}

// validateSimulationPayload applies the per-type required fields and returns
// the natural key used for idempotency.
func validateSimulationPayload(t entities.SimulationType, payload map[string]any) (validation.Violations, string) {
	v := validation.Violations{}
	if !t.IsValid() {
		v.Add("type", validation.ReasonInvalid)
		return v, ""
	}

	validation.MinLength("name", payloadString(payload, "name"), 3, v)
	if email := payloadString(payload, "email"); validation.Required("email", email, v) {
		validation.Check("email", validation.IsValidEmail(email), validation.ReasonInvalidEmail, v)
	}
	if phone := payloadString(payload, "phone"); validation.Required("phone", phone, v) {
		validation.Check("phone", validation.IsValidPhone(phone), validation.ReasonInvalidPhone, v)
	}

	nif := payloadString(payload, "nif")
	if nif != "" {
		validation.Check("nif", validation.IsValidNIF(nif), validation.ReasonInvalidNIF, v)
	}
	postal := payloadString(payload, "postal_code")
	if postal != "" {
		validation.Check("postal_code", validation.IsValidPostalCode(postal), validation.ReasonInvalidPostal, v)
	}

	naturalKey := nif
	switch t {
	case entities.SimulationTypeAuto:
		plate := payloadString(payload, "plate")
		validation.Required("plate", plate, v)
		naturalKey = plate
	case entities.SimulationTypeHabitacao:
		validation.Required("postal_code", postal, v)
		naturalKey = postal
	case entities.SimulationTypeCondominio:
		validation.Required("postal_code", postal, v)
		validation.Required("units", payloadString(payload, "units"), v)
		naturalKey = postal
	case entities.SimulationTypeVida, entities.SimulationTypeSaude:
		if birth := payloadString(payload, "birth_date"); validation.Required("birth_date", birth, v) {
			_, err := time.Parse(time.DateOnly, birth)
			validation.Check("birth_date", err == nil, validation.ReasonInvalid, v)
		}
	case entities.SimulationTypeRCProf:
		validation.Required("profession", payloadString(payload, "profession"), v)
	}
	return v, naturalKey
}

// payloadString reads payload[key] as trimmed text; numbers are formatted
// with fmt.
func payloadString(payload map[string]any, key string) string {
	raw, ok := payload[key]
	if !ok || raw == nil {
		return ""
	}
	switch t := raw.(type) {
	case string:
		return strings.TrimSpace(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

var simulationTypeLabels = map[entities.SimulationType]string{
	entities.SimulationTypeAuto:       "Seguro Automóvel",
	entities.SimulationTypeVida:       "Seguro de Vida",
	entities.SimulationTypeSaude:      "Seguro de Saúde",
	entities.SimulationTypeHabitacao:  "Seguro Habitação",
	entities.SimulationTypeRCProf:     "Responsabilidade Civil Profissional",
	entities.SimulationTypeCondominio: "Seguro Condomínio",
}

func defaultSimulationTitle(t entities.SimulationType, payload map[string]any) string {
	label := simulationTypeLabels[t]
	switch t {
	case entities.SimulationTypeAuto:
		if plate := payloadString(payload, "plate"); plate != "" {
			return label + " - " + strings.ToUpper(plate)
		}
	case entities.SimulationTypeHabitacao, entities.SimulationTypeCondominio:
		if postal := payloadString(payload, "postal_code"); postal != "" {
			return label + " - " + postal
		}
	}
	return label
}
