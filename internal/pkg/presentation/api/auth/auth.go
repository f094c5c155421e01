package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/jwtauth/v5"
	"go.opentelemetry.io/otel"

	"github.com/plantpulse/telemetry-ingest/pkg/types"
)

type subjectContextKey struct{ name string }

var subjectCtxKey = &subjectContextKey{"subject"}

var tracer = otel.Tracer("telemetry-ingest/authn")

var ErrMissingCredential = errors.New("authorization header missing")

// verifyTimeout bounds each call to the identity verifier.
const verifyTimeout = 5 * time.Second

//go:generate moq -rm -out tokenverifier_mock.go . TokenVerifier
type TokenVerifier interface {
	Verify(ctx context.Context, credential string) (types.Subject, error)
}

// NewAuthenticator returns a middleware that extracts the bearer credential
// and delegates verification to the provided verifier. Any verification
// failure is reported as 401 without further detail.
func NewAuthenticator(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var err error

			logger := logging.GetFromContext(r.Context())

			_, span := tracer.Start(r.Context(), "check-auth")
			defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

			header := r.Header.Get("Authorization")

			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				err = ErrMissingCredential
				logger.Info(err.Error())
				unauthorized(w, "missing or malformed credential")
				return
			}

			verifyCtx, cancel := context.WithTimeout(r.Context(), verifyTimeout)
			defer cancel()

			subject, err := verifier.Verify(verifyCtx, header[7:])
			if err != nil {
				logger.Info("credential rejected", "err", err.Error())
				unauthorized(w, "invalid credential")
				return
			}

			r = r.WithContext(WithSubject(r.Context(), subject))

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func WithSubject(ctx context.Context, subject types.Subject) context.Context {
	return context.WithValue(ctx, subjectCtxKey, subject)
}

// GetSubjectFromContext returns the verified subject, if any, from the
// provided context.
func GetSubjectFromContext(ctx context.Context) (types.Subject, bool) {
	subject, ok := ctx.Value(subjectCtxKey).(types.Subject)
	return subject, ok
}

type jwtVerifier struct {
	tokenAuth *jwtauth.JWTAuth
}

// NewJWTVerifier returns a TokenVerifier that validates HS256 signed tokens
// locally, for deployments without an external identity service.
func NewJWTVerifier(secret []byte) TokenVerifier {
	return &jwtVerifier{
		tokenAuth: jwtauth.New("HS256", secret, nil),
	}
}

func (v *jwtVerifier) Verify(ctx context.Context, credential string) (types.Subject, error) {
	token, err := jwtauth.VerifyToken(v.tokenAuth, credential)
	if err != nil {
		return types.Subject{}, err
	}

	return types.Subject{ID: token.Subject()}, nil
}
