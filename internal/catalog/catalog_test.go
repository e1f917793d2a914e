package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	got := All()
	require.Len(t, got, 9)

	assert.Equal(t, "bukhari", got[0].ID)
	assert.Equal(t, 7008, got[0].HadithCount)
	assert.Equal(t, "darimi", got[8].ID)

	// Order is stable across calls.
	assert.Equal(t, got, All())
}

func TestAll_CallerCannotMutateCatalog(t *testing.T) {
	first := All()
	first[0].HadithCount = 1

	assert.Equal(t, 7008, All()[0].HadithCount)
}

func TestFind(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		wantID string
		wantOK bool
	}{
		{"exact match", "bukhari", "bukhari", true},
		{"uppercase", "BUKHARI", "bukhari", true},
		{"mixed case", "Muslim", "muslim", true},
		{"surrounding whitespace", "  tirmidhi  ", "tirmidhi", true},
		{"unknown id", "unknown", "", false},
		{"empty string", "", "", false},
		{"whitespace only", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book, ok := Find(tt.id)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, book.ID)
		})
	}
}

func TestFind_AllCatalogIDsResolve(t *testing.T) {
	for _, b := range All() {
		got, ok := Find(b.ID)
		require.True(t, ok, "id %s should resolve", b.ID)
		assert.Equal(t, b, got)
	}
}
