package response

import "seguros_xpto/internal/usecase"

type UploadResponse struct {
	Entity           string   `json:"entity"`
	EntityID         string   `json:"entity_id"`
	Slot             string   `json:"slot"`
	SimulationStatus string   `json:"simulation_status,omitempty"`
	PolicyStatus     string   `json:"policy_status,omitempty"`
	Duplicate        bool     `json:"duplicate"`
	Warnings         []string `json:"warnings,omitempty"`
}

func FromUploadResult(r usecase.UploadResult) UploadResponse {
	return UploadResponse{
		Entity:           string(r.Ref.Kind),
		EntityID:         r.Ref.ID,
		Slot:             string(r.Slot),
		SimulationStatus: string(r.SimulationStatus),
		PolicyStatus:     string(r.PolicyStatus),
		Duplicate:        r.Duplicate,
		Warnings:         r.Warnings,
	}
}

// ListSnapshotResponse is one server-sent event of a watched list.
type ListSnapshotResponse struct {
	Kind        string               `json:"kind"`
	Mode        string               `json:"mode"`
	Notice      string               `json:"notice,omitempty"`
	Simulations []SimulationResponse `json:"simulations,omitempty"`
	Policies    []PolicyResponse     `json:"policies,omitempty"`
	Error       string               `json:"error,omitempty"`
}

func FromListSnapshot(s usecase.ListSnapshot) ListSnapshotResponse {
	out := ListSnapshotResponse{
		Kind:   string(s.Kind),
		Mode:   string(s.Mode),
		Notice: s.Notice,
	}
	if s.Simulations != nil {
		out.Simulations = FromSimulations(s.Simulations)
	}
	if s.Policies != nil {
		out.Policies = FromPolicies(s.Policies)
	}
	if s.Err != nil {
		out.Error = "list temporarily unavailable"
	}
	return out
}
