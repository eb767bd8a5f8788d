// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/libraryofui/uilib/pkg/textnorm"
)

/*
TestKeyword verifies NFKC folding and whitespace collapsing.
*/
func TestKeyword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "library", "library"},
		{"surrounding_space", "  library  ", "library"},
		{"interior_runs", "the   great\tlibrary", "the great library"},
		{"fullwidth_digits", "ｖｏｌ１", "vol1"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textnorm.Keyword(tt.input))
		})
	}
}
