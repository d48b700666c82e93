package response

import (
	"time"

	"seguros_xpto/internal/domain/entities"
)

type SimulationResponse struct {
	ID            string         `json:"id"`
	Type          string         `json:"type"`
	OwnerID       string         `json:"owner_id"`
	Status        string         `json:"status"`
	DisplayStatus string         `json:"display_status"`
	Title         string         `json:"title"`
	Summary       string         `json:"summary,omitempty"`
	Payload       map[string]any `json:"payload,omitempty"`
	HasQuote      bool           `json:"has_quote"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// FromSimulation never exposes the raw storage locator; clients download
// through the document endpoint.
func FromSimulation(s entities.Simulation) SimulationResponse {
	return SimulationResponse{
		ID:            s.ID,
		Type:          string(s.Type),
		OwnerID:       s.OwnerID,
		Status:        string(s.Status),
		DisplayStatus: string(s.DisplayStatus()),
		Title:         s.Title,
		Summary:       s.Summary,
		Payload:       s.Payload,
		HasQuote:      s.HasQuote(),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func FromSimulations(items []entities.Simulation) []SimulationResponse {
	out := make([]SimulationResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromSimulation(s))
	}
	return out
}
