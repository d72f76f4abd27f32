package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalToken(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"asset", "asset", true},
		{"Asset", "asset", true},
		{"LIABILITY", "liability", true},
		{"equity", "equity", true},
		{"income", "revenue", true},
		{"expense", "expense", true},
		{"revenue", "", false},
		{"checking", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := CanonicalToken(tt.name)
		assert.Equal(t, tt.wantOK, ok, "CanonicalToken(%q)", tt.name)
		assert.Equal(t, tt.want, got, "CanonicalToken(%q)", tt.name)
	}
}
