package interfaces

import (
	"context"
	"seguros_xpto/internal/domain/entities"
	"time"
)

//go:generate mockgen -source=document_storage_interface.go -destination=mocks/document_storage_interface_mock.go -package=mock_interfaces

// IDocumentStorage abstracts the binary object store (S3).
type IDocumentStorage interface {
	// Put stores doc under key and returns its retrieval locator.
	Put(ctx context.Context, key string, doc entities.Document) (locator string, err error)
	Delete(ctx context.Context, key string) error
	// PresignGet returns a short-lived download URL for key.
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}
