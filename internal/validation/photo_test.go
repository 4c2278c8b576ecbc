package validation_test

import (
	"testing"

	"github.com/devarran/photoshare/backend/internal/validation"
	"github.com/stretchr/testify/assert"
)

func TestSplitPeople(t *testing.T) {
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, validation.SplitPeople("Alice, Bob ,, Carol"))
	assert.Equal(t, []string{}, validation.SplitPeople(""))
	assert.Equal(t, []string{}, validation.SplitPeople(" , , "))
	assert.Equal(t, []string{"Alice", "Alice"}, validation.SplitPeople("Alice,Alice"))
}

func TestValidatePhoto_TrimsFields(t *testing.T) {
	input := validation.ValidatePhoto("  Sunset  ", " over the bay ", " Lisbon ", "Alice, Bob")

	assert.Equal(t, "Sunset", input.Title)
	assert.Equal(t, "over the bay", input.Caption)
	assert.Equal(t, "Lisbon", input.Location)
	assert.Equal(t, []string{"Alice", "Bob"}, input.People)
}

func TestValidatePhoto_AllowsBlankFields(t *testing.T) {
	input := validation.ValidatePhoto("", "", "", "")

	assert.Equal(t, "", input.Title)
	assert.Equal(t, []string{}, input.People)
}
