package entities

import "time"

// SimulationType is the insurance product a quote was requested for.
type SimulationType string

const (
	SimulationTypeAuto       SimulationType = "auto"
	SimulationTypeVida       SimulationType = "vida"
	SimulationTypeSaude      SimulationType = "saude"
	SimulationTypeHabitacao  SimulationType = "habitacao"
	SimulationTypeRCProf     SimulationType = "rc_prof"
	SimulationTypeCondominio SimulationType = "condominio"
)

func (t SimulationType) IsValid() bool {
	switch t {
	case SimulationTypeAuto, SimulationTypeVida, SimulationTypeSaude,
		SimulationTypeHabitacao, SimulationTypeRCProf, SimulationTypeCondominio:
		return true
	}
	return false
}

// SimulationStatus is the persisted status of a quote request.
//
// It is the single source of truth: submitting writes "submitted", attaching
// the quote document writes "quoted". "archived" has no API transition and is
// only set by direct backend mutation.
type SimulationStatus string

const (
	SimulationStatusDraft     SimulationStatus = "draft"
	SimulationStatusSubmitted SimulationStatus = "submitted"
	SimulationStatusQuoted    SimulationStatus = "quoted"
	SimulationStatusArchived  SimulationStatus = "archived"
)

// DisplayStatus is what list views show for a simulation.
type DisplayStatus string

const (
	DisplayStatusProcessing DisplayStatus = "processing"
	DisplayStatusSent       DisplayStatus = "sent"
	DisplayStatusArchived   DisplayStatus = "archived"
)

// AnonymousOwner owns lead submissions made without a session.
const AnonymousOwner = "anon"

// Simulation is a quote request ("simulação") persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (idempotency-derived, see internal/domain/idempotency)
//   - GSI1 (owner_id-index): owner_id
type Simulation struct {
	ID         string           `json:"id"`
	Type       SimulationType   `json:"type"`
	OwnerID    string           `json:"owner_id"`
	OwnerEmail string           `json:"owner_email,omitempty"`
	Status     SimulationStatus `json:"status"`
	Title      string           `json:"title"`
	Summary    string           `json:"summary"`
	Payload    map[string]any   `json:"payload,omitempty"`
	PDFURL     string           `json:"pdf_url,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func (s Simulation) GetOwnerID() string { return s.OwnerID }

func (s Simulation) HasQuote() bool { return s.PDFURL != "" }

// IsAttached reports whether the quote has reached the attached state an
// owner needs before starting a policy.
func (s Simulation) IsAttached() bool {
	return s.Status == SimulationStatusQuoted || s.HasQuote()
}

func (s Simulation) DisplayStatus() DisplayStatus {
	switch s.Status {
	case SimulationStatusQuoted:
		return DisplayStatusSent
	case SimulationStatusArchived:
		return DisplayStatusArchived
	default:
		return DisplayStatusProcessing
	}
}

// PayloadString returns payload[key] when it is a non-empty string.
func (s Simulation) PayloadString(key string) string {
	if s.Payload == nil {
		return ""
	}
	v, _ := s.Payload[key].(string)
	return v
}
