package request

import (
	"strings"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase"
)

// SimulationRequest is the body of POST /simulations. Payload carries the
// per-type form fields (name, email, phone, plate, postal_code, ...).
type SimulationRequest struct {
	Type    string         `json:"type" binding:"required,oneof=auto vida saude habitacao rc_prof condominio"`
	Title   string         `json:"title" binding:"max=200"`
	Summary string         `json:"summary" binding:"max=2000"`
	Payload map[string]any `json:"payload" binding:"required"`
}

func (r SimulationRequest) ToInput() usecase.SimulationInput {
	return usecase.SimulationInput{
		Type:    entities.SimulationType(strings.TrimSpace(r.Type)),
		Title:   r.Title,
		Summary: r.Summary,
		Payload: r.Payload,
	}
}
