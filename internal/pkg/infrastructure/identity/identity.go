package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/plantpulse/telemetry-ingest/internal/pkg/presentation/api/auth"
	"github.com/plantpulse/telemetry-ingest/pkg/types"
)

var tracer = otel.Tracer("telemetry-ingest/identity")

type identityClient struct {
	baseURL    string
	httpClient http.Client
}

// NewTokenVerifier returns a TokenVerifier that forwards each credential to
// an external identity service for verification.
func NewTokenVerifier(identityServiceURL string) auth.TokenVerifier {
	return &identityClient{
		baseURL: strings.TrimSuffix(identityServiceURL, "/"),
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *identityClient) Verify(ctx context.Context, credential string) (types.Subject, error) {
	ctx, span := tracer.Start(ctx, "verify-credential")
	defer span.End()

	url := c.baseURL + "/auth/v1/user"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return types.Subject{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Add("Authorization", "Bearer "+credential)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.Subject{}, fmt.Errorf("failed to query identity service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Subject{}, fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.Subject{}, fmt.Errorf("failed to read response body: %w", err)
	}

	user := struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}{}

	err = json.Unmarshal(body, &user)
	if err != nil {
		return types.Subject{}, fmt.Errorf("failed to unmarshal identity response: %w", err)
	}

	return types.Subject{ID: user.ID, Email: user.Email}, nil
}
