package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSort_ValidTokens(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  SortSpec
	}{
		{"content asc", "content,asc", SortSpec{SortFieldContent, SortAsc}},
		{"content desc", "content,desc", SortSpec{SortFieldContent, SortDesc}},
		{"createdAt camel case", "createdAt,desc", SortSpec{SortFieldCreatedAt, SortDesc}},
		{"created_at snake case", "created_at,asc", SortSpec{SortFieldCreatedAt, SortAsc}},
		{"uppercase field and direction", "CONTENT,DESC", SortSpec{SortFieldContent, SortDesc}},
		{"mixed case", "CreatedAt,Asc", SortSpec{SortFieldCreatedAt, SortAsc}},
		{"surrounding whitespace", " content , asc ", SortSpec{SortFieldContent, SortAsc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSort(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSort_InvalidTokens(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"unknown field", "bogus,asc"},
		{"unknown direction", "content,sideways"},
		{"missing direction", "content"},
		{"blank direction", "content,"},
		{"blank field", ",asc"},
		{"only comma", ","},
		{"id is not sortable", "id,asc"},
		{"user_id is not sortable", "user_id,desc"},
		{"updated_at is not sortable", "updated_at,desc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSort(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSort)
		})
	}
}

func TestParseSort_BlankTokenDefaults(t *testing.T) {
	for _, token := range []string{"", "   "} {
		got, err := ParseSort(token)
		require.NoError(t, err)
		assert.Equal(t, DefaultSort(), got)
	}
}

func TestSortSpec_OrderBy(t *testing.T) {
	assert.Equal(t, "created_at DESC", DefaultSort().OrderBy())
	assert.Equal(t, "content ASC", SortSpec{SortFieldContent, SortAsc}.OrderBy())
}
