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
	ErrPolicyNotFound        = errors.New("policy not found")
	ErrInvalidPolicyID       = errors.New("invalid policy id")
	ErrPolicyLocked          = errors.New("policy can no longer be edited by its owner")
	ErrSimulationNotAttached = errors.New("simulation has no quote attached yet")
)

// IPolicyUseCase exposes the policy store.
//
//   - POST /simulations/{id}/policy => StartFromSimulation()
//   - PATCH /policies/{id} => SaveDraft()
//   - POST /policies/{id}/submit => Submit()
//   - PATCH /policies/{id}/status => SetStatus()
type IPolicyUseCase interface {
	StartFromSimulation(ctx context.Context, p entities.Principal, simulationID string) (entities.Policy, error)
	Get(ctx context.Context, p entities.Principal, id string) (entities.Policy, error)
	GetBySimulation(ctx context.Context, p entities.Principal, simulationID string) (entities.Policy, error)
	List(ctx context.Context, p entities.Principal, ownerFilter string) ([]entities.Policy, error)
	SaveDraft(ctx context.Context, p entities.Principal, id string, f entities.PolicyFields) (entities.Policy, error)
	Submit(ctx context.Context, p entities.Principal, id string, f entities.PolicyFields) (entities.Policy, error)
	SetStatus(ctx context.Context, p entities.Principal, id string, target entities.PolicyStatus) (entities.Policy, error)
}

type PolicyUseCase struct {
	repo        interfaces.IPolicyRepository
	simulations interfaces.ISimulationRepository
	lc          lifecycle
	now         func() time.Time
}

var _ IPolicyUseCase = (*PolicyUseCase)(nil)

func NewPolicyUseCase(
	repo interfaces.IPolicyRepository,
	simulations interfaces.ISimulationRepository,
	guard interfaces.IDuplicateGuard,
	feed interfaces.IChangeFeed,
	metrics interfaces.IMetrics,
	logger *zap.Logger,
) *PolicyUseCase {
	return &PolicyUseCase{
		repo:        repo,
		simulations: simulations,
		lc:          lifecycle{feed: feed, guard: guard, metrics: metrics, logger: logger}.withDefaults(),
		now:         time.Now,
	}
}

// StartFromSimulation opens the policy of an attached simulation, or returns
// the one already opened. The policy id is derived from owner and
// simulation, so concurrent starts converge on one record.
func (u *PolicyUseCase) StartFromSimulation(ctx context.Context, p entities.Principal, simulationID string) (entities.Policy, error) {
	simulationID = strings.TrimSpace(simulationID)
	if simulationID == "" {
		return entities.Policy{}, ErrInvalidSimulationID
	}

	sim, err := u.simulations.GetByID(ctx, simulationID)
	if err != nil {
		return entities.Policy{}, transient(err)
	}
	if sim.ID == "" {
		return entities.Policy{}, ErrSimulationNotFound
	}
	if err := authorize(p, resourcePolicy, actionCreate, sim.OwnerID); err != nil {
		return entities.Policy{}, err
	}
	if !sim.IsAttached() {
		return entities.Policy{}, ErrSimulationNotAttached
	}

	if existing, err := u.repo.GetBySimulationID(ctx, sim.ID); err != nil {
		return entities.Policy{}, transient(err)
	} else if existing.ID != "" {
		return existing, nil
	}

	now := u.now().UTC()
	pol := entities.Policy{
		ID:           idempotency.ID(idempotency.StableKey("policy", sim.OwnerID, sim.ID)),
		OwnerUID:     sim.OwnerID,
		SimulationID: sim.ID,
		Type:         sim.Type,
		PolicyFields: prefillFromSimulation(sim),
		Status:       entities.PolicyStatusEmCriacao,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, pol)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		return u.load(ctx, pol.ID)
	}
	if err != nil {
		u.lc.logger.Error("[policy][usecase] create failed", zap.String("simulation_id", sim.ID), zap.Error(err))
		return entities.Policy{}, transient(err)
	}

	u.lc.metrics.PolicyTransition("", string(created.Status))
	u.lc.logger.Info("[policy][usecase] policy opened",
		zap.String("id", created.ID), zap.String("simulation_id", sim.ID))
	u.lc.publish(ctx, entities.EntityKindPolicy, created.ID, created.OwnerUID, "create", now)
	return created, nil
}

func prefillFromSimulation(sim entities.Simulation) entities.PolicyFields {
	email := sim.OwnerEmail
	if email == "" {
		email = sim.PayloadString("email")
	}
	return entities.PolicyFields{
		HolderName:        sim.PayloadString("name"),
		NIF:               sim.PayloadString("nif"),
		AddressPostalCode: sim.PayloadString("postal_code"),
		Phone:             sim.PayloadString("phone"),
		Email:             email,
		PaymentFrequency:  entities.PaymentFrequencyAnual,
		PaymentMethod:     entities.PaymentMethodMultibanco,
	}.Normalized()
}

func (u *PolicyUseCase) load(ctx context.Context, id string) (entities.Policy, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Policy{}, ErrInvalidPolicyID
	}
	pol, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Policy{}, transient(err)
	}
	if pol.ID == "" {
		return entities.Policy{}, ErrPolicyNotFound
	}
	return pol, nil
}

func (u *PolicyUseCase) Get(ctx context.Context, p entities.Principal, id string) (entities.Policy, error) {
	pol, err := u.load(ctx, id)
	if err != nil {
		return entities.Policy{}, err
	}
	if err := authorize(p, resourcePolicy, actionRead, pol.OwnerUID); err != nil {
		return entities.Policy{}, err
	}
	return pol, nil
}

func (u *PolicyUseCase) GetBySimulation(ctx context.Context, p entities.Principal, simulationID string) (entities.Policy, error) {
	simulationID = strings.TrimSpace(simulationID)
	if simulationID == "" {
		return entities.Policy{}, ErrInvalidSimulationID
	}
	pol, err := u.repo.GetBySimulationID(ctx, simulationID)
	if err != nil {
		return entities.Policy{}, transient(err)
	}
	if pol.ID == "" {
		return entities.Policy{}, ErrPolicyNotFound
	}
	if err := authorize(p, resourcePolicy, actionRead, pol.OwnerUID); err != nil {
		return entities.Policy{}, err
	}
	return pol, nil
}

func (u *PolicyUseCase) List(ctx context.Context, p entities.Principal, ownerFilter string) ([]entities.Policy, error) {
	ownerFilter = strings.TrimSpace(ownerFilter)

	var (
		items []entities.Policy
		err   error
	)
	switch {
	case p.IsAdmin() && ownerFilter == "":
		if err := authorize(p, resourcePolicy, actionListAll, ""); err != nil {
			return nil, err
		}
		items, err = u.repo.ListAll(ctx)
	case p.IsAdmin():
		items, err = u.repo.ListByOwner(ctx, ownerFilter)
	default:
		if err := authorize(p, resourcePolicy, actionList, ""); err != nil {
			return nil, err
		}
		if ownerFilter != "" && ownerFilter != p.UserID {
			return nil, fmt.Errorf("%w: cannot list policies of another owner", ErrForbidden)
		}
		items, err = u.repo.ListByOwner(ctx, p.UserID)
	}
	if err != nil {
		return nil, transient(err)
	}
	return items, nil
}

// SaveDraft stores the fields without changing the status. Owners may only
// edit while the policy is em_criacao; administrators at any status.
func (u *PolicyUseCase) SaveDraft(ctx context.Context, p entities.Principal, id string, f entities.PolicyFields) (entities.Policy, error) {
	pol, err := u.load(ctx, id)
	if err != nil {
		return entities.Policy{}, err
	}
	if err := authorize(p, resourcePolicy, actionEdit, pol.OwnerUID); err != nil {
		return entities.Policy{}, err
	}
	if !p.IsAdmin() && pol.Status != entities.PolicyStatusEmCriacao {
		return entities.Policy{}, fmt.Errorf("%w: status %s", ErrPolicyLocked, pol.Status)
	}
	return u.saveFields(ctx, p, pol, f, nil, "policy-save")
}

// Submit stores the fields and sends the policy for validation.
func (u *PolicyUseCase) Submit(ctx context.Context, p entities.Principal, id string, f entities.PolicyFields) (entities.Policy, error) {
	pol, err := u.load(ctx, id)
	if err != nil {
		return entities.Policy{}, err
	}
	if err := authorize(p, resourcePolicy, actionSubmit, pol.OwnerUID); err != nil {
		return entities.Policy{}, err
	}
	next, err := nextPolicyStatus(triggerOwnerSubmit, pol.Status)
	if err != nil {
		return entities.Policy{}, err
	}
	return u.saveFields(ctx, p, pol, f, &next, "policy-submit")
}

// SetStatus is the administrator's explicit transition. em_vigor is not a
// valid target: only uploading the signed policy document activates a policy.
func (u *PolicyUseCase) SetStatus(ctx context.Context, p entities.Principal, id string, target entities.PolicyStatus) (entities.Policy, error) {
	if err := authorize(p, resourcePolicy, actionSetStatus, ""); err != nil {
		return entities.Policy{}, err
	}
	if !target.IsValid() {
		return entities.Policy{}, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, target)
	}
	trigger, err := adminTriggerFor(target)
	if err != nil {
		return entities.Policy{}, err
	}

	pol, err := u.load(ctx, id)
	if err != nil {
		return entities.Policy{}, err
	}
	next, err := nextPolicyStatus(trigger, pol.Status)
	if err != nil {
		return entities.Policy{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, pol.ID, next)
	if err != nil {
		return entities.Policy{}, transient(err)
	}
	if updated.ID == "" {
		return entities.Policy{}, ErrPolicyNotFound
	}

	u.lc.metrics.PolicyTransition(string(pol.Status), string(updated.Status))
	u.lc.logger.Info("[policy][usecase] status changed",
		zap.String("id", pol.ID), zap.String("from", string(pol.Status)), zap.String("to", string(updated.Status)))
	u.lc.publish(ctx, entities.EntityKindPolicy, updated.ID, updated.OwnerUID, "status", u.now().UTC())
	return updated, nil
}

func (u *PolicyUseCase) saveFields(
	ctx context.Context,
	p entities.Principal,
	pol entities.Policy,
	f entities.PolicyFields,
	status *entities.PolicyStatus,
	operation string,
) (entities.Policy, error) {
	f = f.Normalized()
	if v := validatePolicyFields(f); !v.Empty() {
		return entities.Policy{}, newValidationError(v)
	}

	now := u.now().UTC()
	target := pol.Status
	if status != nil {
		target = *status
	}
	// The key binds the requested state to the stored version it applies
	// to, so only a replay against the same version is suppressed.
	content := idempotency.Fingerprint(struct {
		Fields entities.PolicyFields
		Status entities.PolicyStatus
	}{f, target})
	keyFor := func(version entities.Policy) string {
		return idempotency.Key(operation, p.UserID, pol.ID+content+idempotency.Fingerprint(version), now)
	}
	key := keyFor(pol)
	if !u.lc.acquire(ctx, operation, key) {
		return pol, nil
	}

	updated, err := u.repo.UpdateFields(ctx, pol.ID, f, status)
	if err != nil {
		u.lc.release(ctx, key)
		u.lc.logger.Error("[policy][usecase] update failed", zap.String("id", pol.ID), zap.Error(err))
		return entities.Policy{}, transient(err)
	}
	if updated.ID == "" {
		u.lc.release(ctx, key)
		return entities.Policy{}, ErrPolicyNotFound
	}
	u.lc.settle(ctx, keyFor(updated))

	if status != nil && pol.Status != updated.Status {
		u.lc.metrics.PolicyTransition(string(pol.Status), string(updated.Status))
	}
	u.lc.logger.Info("[policy][usecase] fields saved",
		zap.String("id", pol.ID), zap.String("operation", operation), zap.String("status", string(updated.Status)))
	u.lc.publish(ctx, entities.EntityKindPolicy, updated.ID, updated.OwnerUID, operation, now)
	return updated, nil
}

// validatePolicyFields is the conjunctive gate applied before any field
// write. f must already be normalized.
func validatePolicyFields(f entities.PolicyFields) validation.Violations {
	v := validation.Violations{}

	validation.MinLength("holder_name", f.HolderName, 3, v)
	if validation.Required("nif", f.NIF, v) {
		validation.Check("nif", validation.IsValidNIF(f.NIF), validation.ReasonInvalidNIF, v)
	}
	if validation.Required("citizen_card_number", f.CitizenCardNumber, v) {
		validation.Check("citizen_card_number", validation.IsValidCitizenCard(f.CitizenCardNumber), validation.ReasonInvalidCC, v)
	}
	validation.MinLength("address_street", f.AddressStreet, 3, v)
	if validation.Required("address_postal_code", f.AddressPostalCode, v) {
		validation.Check("address_postal_code", validation.IsValidPostalCode(f.AddressPostalCode), validation.ReasonInvalidPostal, v)
	}
	validation.MinLength("address_locality", f.AddressLocality, 2, v)
	if validation.Required("email", f.Email, v) {
		validation.Check("email", validation.IsValidEmail(f.Email), validation.ReasonInvalidEmail, v)
	}
	if validation.Required("phone", f.Phone, v) {
		validation.Check("phone", validation.IsValidPhone(f.Phone), validation.ReasonInvalidPhone, v)
	}
	validation.Check("payment_frequency", f.PaymentFrequency.IsValid(), validation.ReasonInvalid, v)
	validation.Check("payment_method", f.PaymentMethod.IsValid(), validation.ReasonInvalid, v)
	if f.PaymentMethod == entities.PaymentMethodDebitoDireto && validation.Required("nib", f.NIB, v) {
		validation.Check("nib", validation.IsValidIBAN(f.NIB), validation.ReasonInvalidIBAN, v)
	}
	return v
}
