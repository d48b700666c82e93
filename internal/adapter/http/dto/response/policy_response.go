package response

import (
	"time"

	"seguros_xpto/internal/domain/entities"
)

type PolicyResponse struct {
	ID           string `json:"id"`
	OwnerUID     string `json:"owner_uid"`
	SimulationID string `json:"simulation_id"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	entities.PolicyFields
	Documents []string  `json:"documents"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var policySlots = []entities.DocumentSlot{
	entities.SlotPolicy,
	entities.SlotReceipt,
	entities.SlotConditions,
	entities.SlotGreenCard,
}

func FromPolicy(p entities.Policy) PolicyResponse {
	docs := []string{}
	for _, slot := range policySlots {
		if p.DocumentLocator(slot) != "" {
			docs = append(docs, string(slot))
		}
	}
	return PolicyResponse{
		ID:           p.ID,
		OwnerUID:     p.OwnerUID,
		SimulationID: p.SimulationID,
		Type:         string(p.Type),
		Status:       string(p.Status),
		PolicyFields: p.PolicyFields,
		Documents:    docs,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromPolicies(items []entities.Policy) []PolicyResponse {
	out := make([]PolicyResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPolicy(p))
	}
	return out
}
