package entities

import "time"

// ChangeEvent is published after a simulation or policy write so live list
// views can refresh.
type ChangeEvent struct {
	Kind       EntityKind `json:"kind"`
	ID         string     `json:"id"`
	OwnerID    string     `json:"owner_id"`
	Action     string     `json:"action"`
	OccurredAt time.Time  `json:"occurred_at"`
}
