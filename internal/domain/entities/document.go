package entities

import (
	"fmt"
	"path"
)

// EntityKind identifies the parent of an attachment.
type EntityKind string

const (
	EntityKindSimulation EntityKind = "simulation"
	EntityKindPolicy     EntityKind = "policy"
)

// EntityRef points at a simulation or a policy.
type EntityRef struct {
	Kind EntityKind
	ID   string
}

func (r EntityRef) String() string { return fmt.Sprintf("%s/%s", r.Kind, r.ID) }

// DocumentSlot names an attachment position on an entity.
type DocumentSlot string

const (
	SlotQuote      DocumentSlot = "quote.pdf"
	SlotPolicy     DocumentSlot = "policy.pdf"
	SlotReceipt    DocumentSlot = "receipt.pdf"
	SlotConditions DocumentSlot = "conditions.pdf"
	SlotGreenCard  DocumentSlot = "green-card.pdf"
)

// PDFContentType is the only document type accepted in any slot.
const PDFContentType = "application/pdf"

const (
	mebibyte                 = 1 << 20
	MaxSimulationDocumentLen = 1 * mebibyte
	MaxPolicyDocumentLen     = 2 * mebibyte
)

// SlotSpec describes the constraints of a slot.
type SlotSpec struct {
	Kind     EntityKind
	Slot     DocumentSlot
	MaxBytes int64
	// AutoOnly restricts the slot to policies of type auto.
	AutoOnly bool
}

var slotSpecs = map[EntityKind]map[DocumentSlot]SlotSpec{
	EntityKindSimulation: {
		SlotQuote: {Kind: EntityKindSimulation, Slot: SlotQuote, MaxBytes: MaxSimulationDocumentLen},
	},
	EntityKindPolicy: {
		SlotPolicy:     {Kind: EntityKindPolicy, Slot: SlotPolicy, MaxBytes: MaxPolicyDocumentLen},
		SlotReceipt:    {Kind: EntityKindPolicy, Slot: SlotReceipt, MaxBytes: MaxPolicyDocumentLen},
		SlotConditions: {Kind: EntityKindPolicy, Slot: SlotConditions, MaxBytes: MaxPolicyDocumentLen},
		SlotGreenCard:  {Kind: EntityKindPolicy, Slot: SlotGreenCard, MaxBytes: MaxPolicyDocumentLen, AutoOnly: true},
	},
}

// LookupSlot returns the size and type rules of slot for kind.
func LookupSlot(kind EntityKind, slot DocumentSlot) (SlotSpec, bool) {
	rule, ok := slotSpecs[kind][slot]
	return rule, ok
}

// StoragePath follows the object layout
// simulations/{ownerId}/{simulationId}/quote.pdf and
// policies/{ownerId}/{policyId}/{slot}.
func StoragePath(kind EntityKind, ownerID, entityID string, slot DocumentSlot) string {
	prefix := "simulations"
	if kind == EntityKindPolicy {
		prefix = "policies"
	}
	return path.Join(prefix, ownerID, entityID, string(slot))
}

// Document is an uploaded binary artifact.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (d Document) Size() int64 { return int64(len(d.Data)) }
