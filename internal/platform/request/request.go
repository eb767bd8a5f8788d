// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/libraryofui/uilib/internal/platform/apperr"
	"github.com/libraryofui/uilib/internal/platform/ctxutil"
	"github.com/libraryofui/uilib/internal/platform/sec"
	"github.com/libraryofui/uilib/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter (UUID) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Query retrieves a named query-string parameter from the request.
*/
func Query(request *http.Request, name string) string {
	return request.URL.Query().Get(name)
}

/*
RequiredQuery retrieves a named query-string parameter, failing with a
validation error when the parameter is absent or empty.
*/
func RequiredQuery(request *http.Request, name string) (string, error) {
	value := request.URL.Query().Get(name)
	if value == "" {
		return "", validate.RequiredError(name, "This query parameter is required")
	}
	return value, nil
}

/*
Claims extracts the authenticated reader claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

/*
UserID returns the ID of the currently signed-in reader, or an empty string
for anonymous requests. Read endpoints use this to degrade gracefully
instead of rejecting the call.
*/
func UserID(request *http.Request) string {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return ""
	}
	return claims.UserID
}

/*
RequiredUserID returns the ID of the currently signed-in reader.

Returns:
  - string: User UUID
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredUserID(request *http.Request) (string, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return "", apperr.Unauthorized("Authentication required")
	}
	return claims.UserID, nil
}
