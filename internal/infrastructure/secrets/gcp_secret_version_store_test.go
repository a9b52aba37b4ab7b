package secrets

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type fakeSecretManager struct {
	secretmanagerpb.UnimplementedSecretManagerServiceServer

	mu        sync.Mutex
	versions  []*secretmanagerpb.SecretVersion
	destroyed []string
}

func (f *fakeSecretManager) ListSecretVersions(_ context.Context, req *secretmanagerpb.ListSecretVersionsRequest) (*secretmanagerpb.ListSecretVersionsResponse, error) {
	return &secretmanagerpb.ListSecretVersionsResponse{Versions: f.versions, TotalSize: int32(len(f.versions))}, nil
}

func (f *fakeSecretManager) DestroySecretVersion(_ context.Context, req *secretmanagerpb.DestroySecretVersionRequest) (*secretmanagerpb.SecretVersion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if req.GetName() == "projects/p/secrets/s/versions/1" {
		return nil, status.Error(codes.FailedPrecondition, "already destroyed")
	}
	if req.GetName() == "projects/p/secrets/s/versions/9" {
		return nil, status.Error(codes.PermissionDenied, "denied")
	}
	f.destroyed = append(f.destroyed, req.GetName())
	return &secretmanagerpb.SecretVersion{Name: req.GetName(), State: secretmanagerpb.SecretVersion_DESTROYED}, nil
}

func newTestStore(t *testing.T, fake *fakeSecretManager) *GCPSecretVersionStore {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := grpc.NewServer()
	secretmanagerpb.RegisterSecretManagerServiceServer(srv, fake)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	store, err := NewGCPSecretVersionStore(context.Background(),
		option.WithEndpoint(lis.Addr().String()),
		option.WithoutAuthentication(),
		option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestGCPSecretVersionStore_ListVersions(t *testing.T) {
	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	fake := &fakeSecretManager{versions: []*secretmanagerpb.SecretVersion{
		{Name: "projects/p/secrets/s/versions/2", State: secretmanagerpb.SecretVersion_ENABLED, CreateTime: timestamppb.New(created)},
		{Name: "projects/p/secrets/s/versions/1", State: secretmanagerpb.SecretVersion_DESTROYED},
	}}
	store := newTestStore(t, fake)

	got, err := store.ListVersions(context.Background(), "projects/p/secrets/s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 versions, got %d", len(got))
	}
	if got[0].State != "ENABLED" || !got[0].CreateTime.Equal(created) {
		t.Fatalf("unexpected first version: %+v", got[0])
	}
	if got[1].State != "DESTROYED" {
		t.Fatalf("expected DESTROYED, got %s", got[1].State)
	}
}

func TestGCPSecretVersionStore_DestroyVersion(t *testing.T) {
	fake := &fakeSecretManager{}
	store := newTestStore(t, fake)
	ctx := context.Background()

	if err := store.DestroyVersion(ctx, "projects/p/secrets/s/versions/3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.DestroyVersion(ctx, "projects/p/secrets/s/versions/1"); err != nil {
		t.Fatalf("expected already destroyed to succeed, got %v", err)
	}
	if err := store.DestroyVersion(ctx, "projects/p/secrets/s/versions/9"); err == nil {
		t.Fatalf("expected permission error")
	}
	if len(fake.destroyed) != 1 || fake.destroyed[0] != "projects/p/secrets/s/versions/3" {
		t.Fatalf("unexpected destroyed: %v", fake.destroyed)
	}
}
