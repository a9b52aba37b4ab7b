package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"event_registration/internal/domain/entities"
	"event_registration/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

// ISecretPrunerUseCase keeps only the newest version of a secret after a new
// version has been added.
type ISecretPrunerUseCase interface {
	Prune(ctx context.Context, resourceName string) (entities.PruneReport, error)
}

type SecretPrunerUseCase struct {
	store       interfaces.ISecretVersionStore
	concurrency int
}

var _ ISecretPrunerUseCase = (*SecretPrunerUseCase)(nil)

func NewSecretPrunerUseCase(store interfaces.ISecretVersionStore) *SecretPrunerUseCase {
	return &SecretPrunerUseCase{store: store, concurrency: 4}
}

// Prune accepts either a version name (projects/P/secrets/S/versions/N) or a
// secret name (projects/P/secrets/S). Individual destroy failures are logged
// and counted; they do not stop the other destroys.
func (u *SecretPrunerUseCase) Prune(ctx context.Context, resourceName string) (entities.PruneReport, error) {
	secret, err := parentSecret(resourceName)
	if err != nil {
		log.Printf("[secrets][usecase] invalid resource name=%q", resourceName)
		return entities.PruneReport{}, err
	}
	report := entities.PruneReport{Secret: secret}
	log.Printf("[secrets][usecase] prune start secret=%s", secret)

	versions, err := u.store.ListVersions(ctx, secret)
	if err != nil {
		log.Printf("[secrets][usecase] list versions failed secret=%s err=%v", secret, err)
		return report, fmt.Errorf("%w: %w", ErrExternalAPI, err)
	}

	live := make([]entities.SecretVersion, 0, len(versions))
	for _, v := range versions {
		if v.State != entities.SecretVersionStateDestroyed {
			live = append(live, v)
		}
	}
	if len(live) == 0 {
		log.Printf("[secrets][usecase] nothing to prune secret=%s", secret)
		return report, nil
	}
	sort.SliceStable(live, func(i, j int) bool { return live[i].CreateTime.After(live[j].CreateTime) })
	report.Kept = live[0].Name

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)
	for _, v := range live[1:] {
		name := v.Name
		g.Go(func() error {
			err := u.store.DestroyVersion(gctx, name)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed++
				log.Printf("[secrets][usecase] destroy failed version=%s err=%v", name, err)
				return nil
			}
			report.Destroyed++
			return nil
		})
	}
	_ = g.Wait()

	log.Printf("[secrets][usecase] prune done secret=%s kept=%s destroyed=%d failed=%d", secret, report.Kept, report.Destroyed, report.Failed)
	return report, nil
}

func parentSecret(resourceName string) (string, error) {
	parts := strings.Split(strings.Trim(strings.TrimSpace(resourceName), "/"), "/")
	if len(parts) != 4 && len(parts) != 6 {
		return "", fmt.Errorf("%w: unexpected secret resource %q", ErrInvalidArgument, resourceName)
	}
	if parts[0] != "projects" || parts[2] != "secrets" || parts[1] == "" || parts[3] == "" {
		return "", fmt.Errorf("%w: unexpected secret resource %q", ErrInvalidArgument, resourceName)
	}
	if len(parts) == 6 && (parts[4] != "versions" || parts[5] == "") {
		return "", fmt.Errorf("%w: unexpected secret resource %q", ErrInvalidArgument, resourceName)
	}
	return strings.Join(parts[:4], "/"), nil
}
