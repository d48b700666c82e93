package interfaces

import (
	"context"
	"errors"
	"seguros_xpto/internal/domain/entities"
)

//go:generate mockgen -source=policy_repository_interface.go -destination=mocks/policy_repository_interface_mock.go -package=mock_interfaces

// ErrAlreadyExists is returned by conditional creates when the key is taken.
var ErrAlreadyExists = errors.New("record already exists")

// IPolicyRepository abstracts DynamoDB persistence for Policy.
//
// Reads return a zero Policy (empty ID) when the record does not exist.
type IPolicyRepository interface {
	Create(ctx context.Context, p entities.Policy) (entities.Policy, error)
	GetByID(ctx context.Context, id string) (entities.Policy, error)
	GetBySimulationID(ctx context.Context, simulationID string) (entities.Policy, error)
	ListByOwner(ctx context.Context, ownerUID string) ([]entities.Policy, error)
	ListAll(ctx context.Context) ([]entities.Policy, error)
	// UpdateFields merges f into the policy; a nil status leaves it unchanged.
	UpdateFields(ctx context.Context, id string, f entities.PolicyFields, status *entities.PolicyStatus) (entities.Policy, error)
	UpdateStatus(ctx context.Context, id string, status entities.PolicyStatus) (entities.Policy, error)
	// SetDocument records the locator of slot; a nil status leaves it unchanged.
	SetDocument(ctx context.Context, id string, slot entities.DocumentSlot, locator string, status *entities.PolicyStatus) (entities.Policy, error)
	ClearDocument(ctx context.Context, id string, slot entities.DocumentSlot) (entities.Policy, error)
}
