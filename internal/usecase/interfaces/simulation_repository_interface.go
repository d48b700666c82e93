package interfaces

import (
	"context"
	"errors"
	"seguros_xpto/internal/domain/entities"
)

//go:generate mockgen -source=simulation_repository_interface.go -destination=mocks/simulation_repository_interface_mock.go -package=mock_interfaces

// ErrOwnerMismatch is returned by Upsert when the record belongs to another owner.
var ErrOwnerMismatch = errors.New("record belongs to another owner")

// ISimulationRepository abstracts DynamoDB persistence for Simulation.
//
// Reads return a zero Simulation (empty ID) when the record does not exist.
// Writes use merge semantics: fields not named by an operation are untouched.
type ISimulationRepository interface {
	// Upsert creates or overwrites the submission fields of s.ID, keeping
	// the owner, created_at, status and pdf_url of an existing record.
	// It fails with ErrOwnerMismatch when s.OwnerID differs from the stored owner.
	Upsert(ctx context.Context, s entities.Simulation) (entities.Simulation, error)
	GetByID(ctx context.Context, id string) (entities.Simulation, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Simulation, error)
	ListAll(ctx context.Context) ([]entities.Simulation, error)
	SetQuoteDocument(ctx context.Context, id, locator string, status entities.SimulationStatus) (entities.Simulation, error)
	ClearQuoteDocument(ctx context.Context, id string) (entities.Simulation, error)
}
