package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrMissingResourceName = errors.New("audit entry has no resource name")
	ErrNotAddSecretVersion = errors.New("audit entry is not an AddSecretVersion call")
)

const addSecretVersionMethod = "SecretManagerService.AddSecretVersion"

// AuditLogEntry is the subset of a Cloud Audit Log entry naming the secret
// version that was just added.
type AuditLogEntry struct {
	ProtoPayload struct {
		MethodName   string `json:"methodName"`
		ResourceName string `json:"resourceName"`
	} `json:"protoPayload"`
}

// PubSubPushRequest is the envelope of a Pub/Sub push subscription. Data is
// base64 in JSON and decoded by encoding/json into bytes.
type PubSubPushRequest struct {
	Message struct {
		Data      []byte `json:"data"`
		MessageID string `json:"messageId"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// ResolveAuditResourceName accepts either a raw audit log entry or a Pub/Sub
// push envelope wrapping one. Entries for any method other than
// AddSecretVersion return ErrNotAddSecretVersion.
func ResolveAuditResourceName(raw []byte) (string, error) {
	var push PubSubPushRequest
	if err := json.Unmarshal(raw, &push); err == nil && len(push.Message.Data) > 0 {
		raw = push.Message.Data
	}

	var entry AuditLogEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return "", err
	}
	if !strings.HasSuffix(strings.TrimSpace(entry.ProtoPayload.MethodName), addSecretVersionMethod) {
		return "", ErrNotAddSecretVersion
	}
	name := strings.TrimSpace(entry.ProtoPayload.ResourceName)
	if name == "" {
		return "", ErrMissingResourceName
	}
	return name, nil
}
