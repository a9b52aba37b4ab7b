package secrets

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"event_registration/internal/usecase/interfaces"

	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"
)

var ErrMissingPushIdentity = errors.New("missing AUDIT_PUSH_AUDIENCE or AUDIT_PUSH_SERVICE_ACCOUNT")

// TokenValidator is satisfied by *idtoken.Validator.
type TokenValidator interface {
	Validate(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)
}

// OIDCPushAuthenticator accepts Pub/Sub push requests whose bearer token is a
// Google-signed ID token for audience, issued to serviceAccount.
type OIDCPushAuthenticator struct {
	validator      TokenValidator
	audience       string
	serviceAccount string
}

var _ interfaces.IPushAuthenticator = (*OIDCPushAuthenticator)(nil)

func NewOIDCPushAuthenticator(ctx context.Context, audience, serviceAccount string, opts ...option.ClientOption) (*OIDCPushAuthenticator, error) {
	if strings.TrimSpace(audience) == "" || strings.TrimSpace(serviceAccount) == "" {
		return nil, ErrMissingPushIdentity
	}
	v, err := idtoken.NewValidator(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("idtoken validator: %w", err)
	}
	return &OIDCPushAuthenticator{validator: v, audience: audience, serviceAccount: serviceAccount}, nil
}

func (a *OIDCPushAuthenticator) Authenticate(ctx context.Context, headers http.Header) error {
	token, ok := strings.CutPrefix(headers.Get("Authorization"), "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return fmt.Errorf("%w: missing bearer token", interfaces.ErrPushUnauthenticated)
	}
	payload, err := a.validator.Validate(ctx, strings.TrimSpace(token), a.audience)
	if err != nil {
		log.Printf("[secrets][auth] token rejected err=%v", err)
		return fmt.Errorf("%w: %w", interfaces.ErrPushUnauthenticated, err)
	}
	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if !verified || !strings.EqualFold(email, a.serviceAccount) {
		log.Printf("[secrets][auth] unexpected push identity email=%q verified=%v", email, verified)
		return fmt.Errorf("%w: unexpected identity %q", interfaces.ErrPushUnauthenticated, email)
	}
	return nil
}
