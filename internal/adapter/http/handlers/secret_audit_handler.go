package handlers

import (
	"errors"
	"log"
	"net/http"

	request "event_registration/internal/adapter/http/dto/request"
	"event_registration/internal/usecase"
	"event_registration/internal/usecase/interfaces"
	"event_registration/pkg"

	"github.com/gin-gonic/gin"
)

type SecretAuditHandler struct {
	usecase usecase.ISecretPrunerUseCase
	auth    interfaces.IPushAuthenticator
}

func NewSecretAuditHandler(uc usecase.ISecretPrunerUseCase, auth interfaces.IPushAuthenticator) *SecretAuditHandler {
	return &SecretAuditHandler{usecase: uc, auth: auth}
}

// ReceiveAuditEvent prunes old versions of the secret named by an
// AddSecretVersion audit entry. Other audit methods are acknowledged and
// ignored. Individual destroy failures are reported in the body, not as an
// error status, so the trigger is not redelivered.
func (h *SecretAuditHandler) ReceiveAuditEvent(c *gin.Context) {
	if err := h.auth.Authenticate(c.Request.Context(), c.Request.Header); err != nil {
		log.Printf("[secrets][handler] push rejected err=%v", err)
		writeError(c, pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Push request not authenticated", http.StatusUnauthorized))
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}
	name, err := request.ResolveAuditResourceName(raw)
	if errors.Is(err, request.ErrNotAddSecretVersion) {
		log.Printf("[secrets][handler] audit entry ignored: not AddSecretVersion")
		c.JSON(http.StatusOK, gin.H{"outcome": "ignored"})
		return
	}
	if err != nil {
		log.Printf("[secrets][handler] invalid audit entry err=%v", err)
		writeError(c, pkg.NewDomainError("INVALID_REQUEST", "Invalid audit entry", err, http.StatusBadRequest))
		return
	}

	report, err := h.usecase.Prune(c.Request.Context(), name)
	if err != nil {
		log.Printf("[secrets][handler] prune failed resource=%s err=%v", name, err)
		writeError(c, mapUseCaseError(err, ""))
		return
	}
	log.Printf("[secrets][handler] prune done secret=%s destroyed=%d failed=%d", report.Secret, report.Destroyed, report.Failed)
	c.JSON(http.StatusOK, report)
}
