package usecase

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/domain/idempotency"
	"seguros_xpto/internal/usecase/interfaces"
	"seguros_xpto/pkg/requestctx"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

var (
	ErrUnknownSlot      = errors.New("document slot not available for this entity")
	ErrSlotNotAllowed   = errors.New("document slot not allowed for this policy type")
	ErrDocumentNotFound = errors.New("document not found")
)

// Warnings attached to an UploadResult. The upload itself succeeded.
const (
	WarningNotificationFailed  = "notification_failed"
	WarningNotificationSkipped = "notification_skipped_no_recipient"
)

const defaultPresignTTL = 10 * time.Minute

// UploadResult describes a stored attachment and the state it left the
// parent entity in.
type UploadResult struct {
	Ref              entities.EntityRef
	Slot             entities.DocumentSlot
	Locator          string
	SimulationStatus entities.SimulationStatus
	PolicyStatus     entities.PolicyStatus

	// Duplicate is set when the same bytes were uploaded to the same slot
	// moments ago; nothing was rewritten.
	Duplicate bool
	Warnings  []string
}

// IAttachmentUseCase manages the PDF slots of simulations and policies.
type IAttachmentUseCase interface {
	Upload(ctx context.Context, p entities.Principal, ref entities.EntityRef, slot entities.DocumentSlot, doc entities.Document) (UploadResult, error)
	Delete(ctx context.Context, p entities.Principal, ref entities.EntityRef, slot entities.DocumentSlot) error
	Locate(ctx context.Context, p entities.Principal, ref entities.EntityRef, slot entities.DocumentSlot) (string, error)
}

type AttachmentUseCase struct {
	simulations interfaces.ISimulationRepository
	policies    interfaces.IPolicyRepository
	storage     interfaces.IDocumentStorage
	notifier    interfaces.INotifier
	lc          lifecycle
	now         func() time.Time
	presignTTL  time.Duration
}

var _ IAttachmentUseCase = (*AttachmentUseCase)(nil)

func NewAttachmentUseCase(
	simulations interfaces.ISimulationRepository,
	policies interfaces.IPolicyRepository,
	storage interfaces.IDocumentStorage,
	notifier interfaces.INotifier,
	guard interfaces.IDuplicateGuard,
	feed interfaces.IChangeFeed,
	metrics interfaces.IMetrics,
	logger *zap.Logger,
) *AttachmentUseCase {
	return &AttachmentUseCase{
		simulations: simulations,
		policies:    policies,
		storage:     storage,
		notifier:    notifier,
		lc:          lifecycle{feed: feed, guard: guard, metrics: metrics, logger: logger}.withDefaults(),
		now:         time.Now,
		presignTTL:  defaultPresignTTL,
	}
}

// WithPresignTTL overrides how long download links stay valid.
func (u *AttachmentUseCase) WithPresignTTL(ttl time.Duration) *AttachmentUseCase {
	if ttl > 0 {
		u.presignTTL = ttl
	}
	return u
}

// attachmentParent is the slice of a simulation or policy the attachment
// flow needs.
type attachmentParent struct {
	ownerID      string
	ownerEmail   string
	name         string
	title        string
	policyType   entities.SimulationType
	policyStatus entities.PolicyStatus
	simStatus    entities.SimulationStatus
	locator      string
	// version fingerprints the stored record, updated_at included.
	version string
}

func (u *AttachmentUseCase) loadParent(ctx context.Context, ref entities.EntityRef, slot entities.DocumentSlot) (attachmentParent, error) {
	switch ref.Kind {
	case entities.EntityKindSimulation:
		s, err := u.simulations.GetByID(ctx, ref.ID)
		if err != nil {
			return attachmentParent{}, transient(err)
		}
		if s.ID == "" {
			return attachmentParent{}, ErrSimulationNotFound
		}
		return attachmentParent{
			ownerID:    s.OwnerID,
			ownerEmail: s.OwnerEmail,
			name:       s.PayloadString("name"),
			title:      s.Title,
			policyType: s.Type,
			simStatus:  s.Status,
			locator:    s.PDFURL,
			version:    idempotency.Fingerprint(s),
		}, nil
	case entities.EntityKindPolicy:
		p, err := u.policies.GetByID(ctx, ref.ID)
		if err != nil {
			return attachmentParent{}, transient(err)
		}
		if p.ID == "" {
			return attachmentParent{}, ErrPolicyNotFound
		}
		return attachmentParent{
			ownerID:      p.OwnerUID,
			ownerEmail:   p.Email,
			name:         p.HolderName,
			title:        simulationTypeLabels[p.Type],
			policyType:   p.Type,
			policyStatus: p.Status,
			locator:      p.DocumentLocator(slot),
			version:      idempotency.Fingerprint(p),
		}, nil
	}
	return attachmentParent{}, fmt.Errorf("%w: %s", ErrUnknownSlot, ref.Kind)
}

// Upload validates and stores doc in slot, records the locator on the parent
// and applies the slot's status effect: quote.pdf marks the simulation
// quoted, policy.pdf puts the policy in force. The owner is then notified; a
// failed notification is reported as a warning only.
func (u *AttachmentUseCase) Upload(ctx context.Context, p entities.Principal, ref entities.EntityRef, slot entities.DocumentSlot, doc entities.Document) (UploadResult, error) {
	if err := authorize(p, resourceFor(ref.Kind), actionAttach, ""); err != nil {
		return UploadResult{}, err
	}
	rule, ok := entities.LookupSlot(ref.Kind, slot)
	if !ok {
		return UploadResult{}, fmt.Errorf("%w: %s on %s", ErrUnknownSlot, slot, ref.Kind)
	}
	if doc.Size() == 0 {
		return UploadResult{}, ErrEmptyDocument
	}
	if doc.Size() > rule.MaxBytes {
		return UploadResult{}, fmt.Errorf("%w: %d bytes, limit %d", ErrSizeLimit, doc.Size(), rule.MaxBytes)
	}
	if !isPDF(doc) {
		return UploadResult{}, ErrUnsupportedContentType
	}

	parent, err := u.loadParent(ctx, ref, slot)
	if err != nil {
		return UploadResult{}, err
	}
	if rule.AutoOnly && parent.policyType != entities.SimulationTypeAuto {
		return UploadResult{}, fmt.Errorf("%w: %s requires an auto policy", ErrSlotNotAllowed, slot)
	}

	now := u.now().UTC()
	// Only a replay of the same bytes against the same parent version is a
	// duplicate; a revert or a delete in between produces a new version.
	content := ref.ID + string(slot) + idempotency.Fingerprint(doc.Data)
	keyFor := func(version string) string {
		return idempotency.Key("upload", p.UserID, content+version, now)
	}
	key := keyFor(parent.version)
	if !u.lc.acquire(ctx, "upload", key) {
		return UploadResult{
			Ref:              ref,
			Slot:             slot,
			Locator:          parent.locator,
			SimulationStatus: parent.simStatus,
			PolicyStatus:     parent.policyStatus,
			Duplicate:        true,
		}, nil
	}

	path := entities.StoragePath(ref.Kind, parent.ownerID, ref.ID, slot)
	if doc.ContentType == "" {
		doc.ContentType = entities.PDFContentType
	}
	locator, err := u.storage.Put(ctx, path, doc)
	if err != nil {
		u.lc.release(ctx, key)
		u.lc.logger.Error("[attachment][usecase] storage put failed",
			zap.String("entity", ref.String()), zap.String("slot", string(slot)), zap.Error(err))
		return UploadResult{}, transient(err)
	}

	res := UploadResult{Ref: ref, Slot: slot, Locator: locator}
	switch ref.Kind {
	case entities.EntityKindSimulation:
		s, err := u.simulations.SetQuoteDocument(ctx, ref.ID, locator, entities.SimulationStatusQuoted)
		if err != nil {
			u.lc.release(ctx, key)
			return UploadResult{}, transient(err)
		}
		res.SimulationStatus = s.Status
		u.lc.settle(ctx, keyFor(idempotency.Fingerprint(s)))
	case entities.EntityKindPolicy:
		var status *entities.PolicyStatus
		if slot == entities.SlotPolicy {
			next, err := nextPolicyStatus(triggerAdminUpload, parent.policyStatus)
			if err != nil {
				u.lc.release(ctx, key)
				return UploadResult{}, err
			}
			status = &next
		}
		pol, err := u.policies.SetDocument(ctx, ref.ID, slot, locator, status)
		if err != nil {
			u.lc.release(ctx, key)
			return UploadResult{}, transient(err)
		}
		res.PolicyStatus = pol.Status
		u.lc.settle(ctx, keyFor(idempotency.Fingerprint(pol)))
		if status != nil && parent.policyStatus != pol.Status {
			u.lc.metrics.PolicyTransition(string(parent.policyStatus), string(pol.Status))
		}
	}

	u.lc.metrics.DocumentUploaded(string(ref.Kind), string(slot))
	u.lc.logger.Info("[attachment][usecase] document stored",
		zap.String("entity", ref.String()), zap.String("slot", string(slot)), zap.Int64("bytes", doc.Size()))
	u.lc.publish(ctx, ref.Kind, ref.ID, parent.ownerID, "document_uploaded", now)

	if warning := u.notifyOwner(ctx, parent, slot); warning != "" {
		res.Warnings = append(res.Warnings, warning)
	}
	return res, nil
}

// Delete removes the stored object and clears the slot locator. The parent
// status is left as it is.
func (u *AttachmentUseCase) Delete(ctx context.Context, p entities.Principal, ref entities.EntityRef, slot entities.DocumentSlot) error {
	if err := authorize(p, resourceFor(ref.Kind), actionDetach, ""); err != nil {
		return err
	}
	if _, ok := entities.LookupSlot(ref.Kind, slot); !ok {
		return fmt.Errorf("%w: %s on %s", ErrUnknownSlot, slot, ref.Kind)
	}

	parent, err := u.loadParent(ctx, ref, slot)
	if err != nil {
		return err
	}

	path := entities.StoragePath(ref.Kind, parent.ownerID, ref.ID, slot)
	if err := u.storage.Delete(ctx, path); err != nil {
		return transient(err)
	}

	switch ref.Kind {
	case entities.EntityKindSimulation:
		_, err = u.simulations.ClearQuoteDocument(ctx, ref.ID)
	case entities.EntityKindPolicy:
		_, err = u.policies.ClearDocument(ctx, ref.ID, slot)
	}
	if err != nil {
		return transient(err)
	}

	u.lc.logger.Info("[attachment][usecase] document removed",
		zap.String("entity", ref.String()), zap.String("slot", string(slot)))
	u.lc.publish(ctx, ref.Kind, ref.ID, parent.ownerID, "document_deleted", u.now().UTC())
	return nil
}

// Locate returns a short-lived download URL for the document in slot.
func (u *AttachmentUseCase) Locate(ctx context.Context, p entities.Principal, ref entities.EntityRef, slot entities.DocumentSlot) (string, error) {
	if _, ok := entities.LookupSlot(ref.Kind, slot); !ok {
		return "", fmt.Errorf("%w: %s on %s", ErrUnknownSlot, slot, ref.Kind)
	}

	parent, err := u.loadParent(ctx, ref, slot)
	if err != nil {
		return "", err
	}
	if err := authorize(p, resourceDocument, actionDownload, parent.ownerID); err != nil {
		return "", err
	}
	if parent.locator == "" {
		return "", ErrDocumentNotFound
	}

	url, err := u.storage.PresignGet(ctx, entities.StoragePath(ref.Kind, parent.ownerID, ref.ID, slot), u.presignTTL)
	if err != nil {
		return "", transient(err)
	}
	return url, nil
}

type slotMessage struct {
	subject string
	body    string
}

var slotMessages = map[entities.DocumentSlot]slotMessage{
	entities.SlotQuote: {
		subject: "{{.Brand}}: a sua proposta está disponível",
		body:    "Olá {{.Name}},\n\nA proposta para \"{{.Title}}\" já está disponível na sua área de cliente.\n\n{{.Brand}}",
	},
	entities.SlotPolicy: {
		subject: "{{.Brand}}: a sua apólice está em vigor",
		body:    "Olá {{.Name}},\n\nA sua apólice de {{.Title}} foi emitida e já se encontra em vigor. Pode consultá-la na sua área de cliente.\n\n{{.Brand}}",
	},
}

var defaultSlotMessage = slotMessage{
	subject: "{{.Brand}}: novo documento disponível",
	body:    "Olá {{.Name}},\n\nO documento {{.Document}} da sua apólice de {{.Title}} já está disponível na sua área de cliente.\n\n{{.Brand}}",
}

func (u *AttachmentUseCase) notifyOwner(ctx context.Context, parent attachmentParent, slot entities.DocumentSlot) string {
	if u.notifier == nil {
		return ""
	}
	if strings.TrimSpace(parent.ownerEmail) == "" {
		return WarningNotificationSkipped
	}

	msg, ok := slotMessages[slot]
	if !ok {
		msg = defaultSlotMessage
	}
	vars := map[string]any{
		"Brand":    requestctx.Brand(ctx),
		"Name":     parent.name,
		"Title":    parent.title,
		"Document": string(slot),
	}
	if err := u.notifier.Send(ctx, parent.ownerEmail, msg.subject, msg.body, vars); err != nil {
		u.lc.metrics.NotificationFailed(string(slot))
		u.lc.logger.Warn("[attachment][usecase] owner notification failed",
			zap.String("slot", string(slot)), zap.Error(fmt.Errorf("%w: %w", ErrNotificationDelivery, err)))
		return WarningNotificationFailed
	}
	return ""
}

// isPDF requires both the declared content type (when given) and the
// sniffed bytes to be PDF.
func isPDF(doc entities.Document) bool {
	if declared := strings.TrimSpace(doc.ContentType); declared != "" {
		mediaType, _, err := mime.ParseMediaType(declared)
		if err != nil || mediaType != entities.PDFContentType {
			return false
		}
	}
	return mimetype.Detect(doc.Data).Is(entities.PDFContentType)
}
