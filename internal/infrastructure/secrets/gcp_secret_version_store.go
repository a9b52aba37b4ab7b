package secrets

import (
	"context"
	"errors"
	"fmt"
	"log"

	"event_registration/internal/domain/entities"
	"event_registration/internal/usecase/interfaces"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GCPSecretVersionStore lists and destroys Secret Manager versions.
type GCPSecretVersionStore struct {
	client *secretmanager.Client
}

var _ interfaces.ISecretVersionStore = (*GCPSecretVersionStore)(nil)

func NewGCPSecretVersionStore(ctx context.Context, opts ...option.ClientOption) (*GCPSecretVersionStore, error) {
	c, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("secretmanager client: %w", err)
	}
	return &GCPSecretVersionStore{client: c}, nil
}

func (s *GCPSecretVersionStore) Close() error { return s.client.Close() }

func (s *GCPSecretVersionStore) ListVersions(ctx context.Context, secret string) ([]entities.SecretVersion, error) {
	it := s.client.ListSecretVersions(ctx, &secretmanagerpb.ListSecretVersionsRequest{Parent: secret})
	var out []entities.SecretVersion
	for {
		v, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list versions %s: %w", secret, err)
		}
		out = append(out, fromSecretVersionPB(v))
	}
	return out, nil
}

// DestroyVersion treats an already destroyed version as success.
func (s *GCPSecretVersionStore) DestroyVersion(ctx context.Context, name string) error {
	_, err := s.client.DestroySecretVersion(ctx, &secretmanagerpb.DestroySecretVersionRequest{Name: name})
	if err != nil {
		if status.Code(err) == codes.FailedPrecondition {
			log.Printf("[secrets][gateway] version already destroyed name=%s", name)
			return nil
		}
		return fmt.Errorf("destroy version %s: %w", name, err)
	}
	return nil
}

func fromSecretVersionPB(v *secretmanagerpb.SecretVersion) entities.SecretVersion {
	out := entities.SecretVersion{
		Name:  v.GetName(),
		State: v.GetState().String(),
	}
	if ts := v.GetCreateTime(); ts != nil {
		out.CreateTime = ts.AsTime()
	}
	return out
}
