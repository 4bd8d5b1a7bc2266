package usecase

import (
	"context"
	"fmt"
	"html"

	"github.com/allisson/cryptokaro/internal/codec"
	"github.com/allisson/cryptokaro/internal/dispatch/dto"
)

const integrationTestTemplate = "<strong>✅ Integration Test Passed!</strong><br><br>" +
	"<strong>Message from config.json:</strong><br>%s<br><br>" +
	"<strong>SHA-256 Digest:</strong><br>%s"

// integrationTest digests the configured test message and reports both as HTML.
// The message is escaped before it is placed in the markup.
func (r *Router) integrationTest(_ context.Context, payload []byte) (dto.Response, error) {
	var req dto.EmptyRequest
	if err := dto.DecodePayload(payload, &req); err != nil {
		return nil, err
	}

	message, err := r.settings.Message()
	if err != nil {
		return nil, err
	}

	digest := codec.EncodeHex(r.hasher.SHA256([]byte(message)))
	return dto.NewIntegrationTestResponse(
		fmt.Sprintf(integrationTestTemplate, html.EscapeString(message), digest),
	), nil
}
