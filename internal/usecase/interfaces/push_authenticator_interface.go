package interfaces

import (
	"context"
	"errors"
	"net/http"
)

var ErrPushUnauthenticated = errors.New("push request not authenticated")

// IPushAuthenticator checks that an inbound platform push (Pub/Sub audit log
// delivery) was sent by the expected identity.
type IPushAuthenticator interface {
	Authenticate(ctx context.Context, headers http.Header) error
}
