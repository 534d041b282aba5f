package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBookingReference(t *testing.T) {
	ref, err := GenerateBookingReference()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "HUF"))
	assert.Len(t, ref, 9)

	for _, r := range ref[3:] {
		assert.Contains(t, referenceCharset, string(r))
	}
}

func TestGenerateBookingReferenceVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		ref, err := GenerateBookingReference()
		require.NoError(t, err)
		seen[ref] = true
	}
	// 36^6 possibilities; 50 draws colliding into one value would mean the
	// generator is broken
	assert.Greater(t, len(seen), 1)
}
