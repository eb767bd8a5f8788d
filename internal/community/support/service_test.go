// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package support

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libraryofui/uilib/internal/platform/apperr"
)

// fakeRepository records inserted requests.
type fakeRepository struct {
	inserted []Request
}

var _ Repository = (*fakeRepository)(nil)

func (f *fakeRepository) Insert(_ context.Context, id, requestType, body string) error {
	f.inserted = append(f.inserted, Request{ID: id, Type: requestType, Body: body})
	return nil
}

func newService(repo Repository) *Service {
	return NewService(repo, slog.New(slog.DiscardHandler))
}

/*
TestSubmitRequest stores a well-formed request with a generated id.
*/
func TestSubmitRequest(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(repo)

	err := service.SubmitRequest(context.Background(), "feedback", "Please add a dark theme.")
	require.NoError(t, err)

	require.Len(t, repo.inserted, 1)
	assert.NotEmpty(t, repo.inserted[0].ID)
	assert.Equal(t, "feedback", repo.inserted[0].Type)
}

/*
TestSubmitRequest_FreeFormType stores whatever non-empty type the form sends;
there is no server-side whitelist.
*/
func TestSubmitRequest_FreeFormType(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(repo)

	require.NoError(t, service.SubmitRequest(context.Background(), "complaint", "The reader jumps on rotate."))

	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "complaint", repo.inserted[0].Type)
}

/*
TestSubmitRequest_Validation rejects missing fields and oversized bodies.
*/
func TestSubmitRequest_Validation(t *testing.T) {
	tests := []struct {
		name        string
		requestType string
		body        string
	}{
		{name: "missing type", requestType: "", body: "hello"},
		{name: "missing body", requestType: "bug", body: ""},
		{name: "oversized body", requestType: "bug", body: strings.Repeat("a", maxBodyLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			err := newService(repo).SubmitRequest(context.Background(), tt.requestType, tt.body)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
			assert.Empty(t, repo.inserted)
		})
	}
}
