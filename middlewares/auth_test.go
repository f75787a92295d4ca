package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"indiecon_server/models"
	"indiecon_server/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFounderLookup struct {
	founders map[string]*models.Founder
}

func (f *fakeFounderLookup) GetFounderByID(_ context.Context, founderID string) (*models.Founder, error) {
	founder, ok := f.founders[founderID]
	if !ok {
		return nil, errors.New("founder not found")
	}
	return founder, nil
}

func authTestHandler(t *testing.T, wantFounderID string) (http.Handler, *bool) {
	t.Helper()
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, wantFounderID, FounderIDFromContext(r.Context()))
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestVerifyAuth_ValidToken(t *testing.T) {
	const secret = "test-secret"
	lookup := &fakeFounderLookup{founders: map[string]*models.Founder{
		"founder-a": {FounderID: "founder-a"},
	}}
	token, err := utils.GenerateFounderToken(secret, "founder-a", time.Hour)
	require.NoError(t, err)

	handler, called := authTestHandler(t, "founder-a")
	middleware := VerifyAuth(secret, lookup, zap.NewNop().Sugar())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/founder/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestVerifyAuth_Rejections(t *testing.T) {
	const secret = "test-secret"
	lookup := &fakeFounderLookup{founders: map[string]*models.Founder{
		"founder-a": {FounderID: "founder-a"},
	}}

	validToken, err := utils.GenerateFounderToken(secret, "founder-a", time.Hour)
	require.NoError(t, err)
	wrongSecretToken, err := utils.GenerateFounderToken("other-secret", "founder-a", time.Hour)
	require.NoError(t, err)
	expiredToken, err := utils.GenerateFounderToken(secret, "founder-a", -time.Minute)
	require.NoError(t, err)
	ghostToken, err := utils.GenerateFounderToken(secret, "founder-gone", time.Hour)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"bearer with no token", "Bearer "},
		{"garbage token", "Bearer not-a-token"},
		{"wrong secret", "Bearer " + wrongSecretToken},
		{"expired token", "Bearer " + expiredToken},
		{"founder no longer exists", "Bearer " + ghostToken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler, called := authTestHandler(t, "founder-a")
			middleware := VerifyAuth(secret, lookup, zap.NewNop().Sugar())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/founder/profile", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			middleware(handler).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, *called)
		})
	}

	// Sanity: the valid token still passes with the same setup.
	handler, called := authTestHandler(t, "founder-a")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/founder/profile", nil)
	req.Header.Set("Authorization", "Bearer "+validToken)
	rec := httptest.NewRecorder()
	VerifyAuth(secret, lookup, zap.NewNop().Sugar())(handler).ServeHTTP(rec, req)
	assert.True(t, *called)
}

func TestFounderIDFromContext_Empty(t *testing.T) {
	assert.Empty(t, FounderIDFromContext(context.Background()))
}
