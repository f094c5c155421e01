package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"
)

func TestThatVerifyForwardsTheCredential(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/auth/v1/user")
		is.Equal(r.Header.Get("Authorization"), "Bearer sometoken")
		w.Header().Add("Content-Type", "application/json")
		w.Write([]byte(`{"id":"operator-1","email":"operator@plantpulse.io"}`))
	}))
	defer server.Close()

	subject, err := NewTokenVerifier(server.URL).Verify(context.Background(), "sometoken")

	is.NoErr(err)
	is.Equal(subject.ID, "operator-1")
	is.Equal(subject.Email, "operator@plantpulse.io")
}

func TestThatVerifyFailsWhenTheIdentityServiceSaysNo(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := NewTokenVerifier(server.URL).Verify(context.Background(), "expiredtoken")

	is.True(err != nil)
}
