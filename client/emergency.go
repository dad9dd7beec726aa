package client

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cirisai/ciris-go/schema"
)

// EmergencyService covers the out-of-band /emergency endpoints. These bypass
// normal authentication so a ROOT or AUTHORITY holder can always stop an
// agent; authorization comes from the Ed25519 signature on the command.
type EmergencyService struct {
	client *Client
}

// ShutdownParams identifies the signing authority and optional targeting for
// an emergency shutdown.
type ShutdownParams struct {
	Reason      string
	PrivateKey  ed25519.PrivateKey
	WAID        string
	WAPublicKey string
	// TargetAgentID limits the command to one agent; empty targets all.
	TargetAgentID string
	// ExpiresIn bounds command validity; the server rejects commands older
	// than its acceptance window. Defaults to 5 minutes.
	ExpiresIn time.Duration
}

// Shutdown builds, signs and posts a SHUTDOWN_NOW command.
func (s *EmergencyService) Shutdown(ctx context.Context, params *ShutdownParams) (*schema.EmergencyShutdownResponse, error) {
	if len(params.PrivateKey) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("invalid ed25519 private key")
	}
	expiresIn := params.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = 5 * time.Minute
	}
	now := time.Now().UTC()
	expiresAt := now.Add(expiresIn)
	command := &schema.WASignedCommand{
		CommandID:     uuid.NewString(),
		CommandType:   schema.EmergencyShutdownNow,
		WAID:          params.WAID,
		WAPublicKey:   params.WAPublicKey,
		IssuedAt:      now,
		ExpiresAt:     &expiresAt,
		Reason:        params.Reason,
		TargetAgentID: params.TargetAgentID,
	}
	command.Signature = SignCommand(command, params.PrivateKey)
	return send[schema.EmergencyShutdownResponse](ctx, s.client, http.MethodPost, "/emergency/shutdown", nil, command)
}

// SignCommand signs the command's canonical field string and returns the
// hex-encoded Ed25519 signature.
func SignCommand(command *schema.WASignedCommand, privateKey ed25519.PrivateKey) string {
	return hex.EncodeToString(ed25519.Sign(privateKey, commandMessage(command)))
}

// VerifyCommand checks a command's signature against a raw public key.
func VerifyCommand(command *schema.WASignedCommand, publicKey ed25519.PublicKey) bool {
	signature, err := hex.DecodeString(command.Signature)
	if err != nil {
		return false
	}
	return ed25519.Verify(publicKey, commandMessage(command), signature)
}

// commandMessage builds the pipe-delimited string the server verifies. The
// signature covers these fields only; the rest of the body is advisory.
func commandMessage(command *schema.WASignedCommand) []byte {
	parts := []string{
		"command_id:" + command.CommandID,
		"command_type:" + command.CommandType,
		"wa_id:" + command.WAID,
		"issued_at:" + command.IssuedAt.Format(time.RFC3339Nano),
		"reason:" + command.Reason,
	}
	if command.TargetAgentID != "" {
		parts = append(parts, "target_agent_id:"+command.TargetAgentID)
	}
	return []byte(strings.Join(parts, "|"))
}
