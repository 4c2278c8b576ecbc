package validation_test

import (
	"strings"
	"testing"

	"github.com/devarran/photoshare/backend/internal/validation"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeAuthor(t *testing.T) {
	assert.Equal(t, "Alice", validation.NormalizeAuthor("  Alice  "))
	assert.Equal(t, "Mary Jane Watson", validation.NormalizeAuthor("Mary   Jane\tWatson"))
	assert.Equal(t, "anonymous", validation.NormalizeAuthor(""))
	assert.Equal(t, "anonymous", validation.NormalizeAuthor("   \t "))
}

func TestNormalizeAuthor_CapsLength(t *testing.T) {
	long := strings.Repeat("a", 100)
	assert.Equal(t, strings.Repeat("a", 40), validation.NormalizeAuthor(long))
}

// Case folding is deliberately not applied: "Alice" and "alice" are distinct
// authors and keep distinct rating documents.
func TestNormalizeAuthor_PreservesCase(t *testing.T) {
	assert.NotEqual(t, validation.NormalizeAuthor("Alice"), validation.NormalizeAuthor("alice"))
	assert.Equal(t, validation.NormalizeAuthor("Alice"), validation.NormalizeAuthor(" Alice "))
}
