package interfaces

import (
	"context"

	"event_registration/internal/domain/entities"
)

// ISecretVersionStore lists and destroys versions of a managed secret.
// secret is the parent resource name: projects/P/secrets/S.
type ISecretVersionStore interface {
	ListVersions(ctx context.Context, secret string) ([]entities.SecretVersion, error)
	DestroyVersion(ctx context.Context, name string) error
}
