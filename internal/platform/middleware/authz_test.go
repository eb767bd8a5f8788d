// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/libraryofui/uilib/internal/platform/ctxutil"
	"github.com/libraryofui/uilib/internal/platform/middleware"
	"github.com/libraryofui/uilib/internal/platform/sec"
)

// fakeVerifier accepts exactly one token string.
type fakeVerifier struct {
	valid  string
	claims *sec.AuthClaims
}

func (f *fakeVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr == f.valid {
		return f.claims, nil
	}
	return nil, errors.New("invalid token")
}

// echoUser replies with the user id found in context, or "anonymous".
func echoUser() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetAuthUser(request.Context())
		if claims == nil {
			_, _ = writer.Write([]byte("anonymous"))
			return
		}
		_, _ = writer.Write([]byte(claims.UserID))
	})
}

func newVerifier() *fakeVerifier {
	return &fakeVerifier{
		valid:  "good-token",
		claims: &sec.AuthClaims{UserID: "user-123", Username: "reader"},
	}
}

/*
TestAuthenticate_Anonymous verifies requests without a header pass through
unauthenticated.
*/
func TestAuthenticate_Anonymous(t *testing.T) {
	handler := middleware.Authenticate(newVerifier())(echoUser())

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "anonymous", recorder.Body.String())
}

/*
TestAuthenticate_ValidToken verifies claims reach the request context.
*/
func TestAuthenticate_ValidToken(t *testing.T) {
	handler := middleware.Authenticate(newVerifier())(echoUser())

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer good-token")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "user-123", recorder.Body.String())
}

/*
TestAuthenticate_Rejections verifies malformed headers and bad tokens are
rejected rather than downgraded to anonymous.
*/
func TestAuthenticate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "bad scheme", header: "Basic good-token"},
		{name: "missing token", header: "Bearer"},
		{name: "invalid token", header: "Bearer bad-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.Authenticate(newVerifier())(echoUser())

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.Header.Set("Authorization", tt.header)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}

/*
TestRequireAuth verifies the guard blocks anonymous requests and admits
authenticated ones.
*/
func TestRequireAuth(t *testing.T) {
	chain := middleware.Authenticate(newVerifier())(middleware.RequireAuth(echoUser()))

	// Anonymous is blocked.
	recorder := httptest.NewRecorder()
	chain.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// Authenticated passes.
	request := httptest.NewRequest(http.MethodPost, "/", nil)
	request.Header.Set("Authorization", "Bearer good-token")
	recorder = httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
