package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchText(t *testing.T) {
	t.Run("prefers original text", func(t *testing.T) {
		r := IngredientRequirement{
			DisplayName:  "parmesan",
			OriginalText: "50g finely grated parmesan",
		}
		assert.Equal(t, "50g finely grated parmesan", r.MatchText())
	})

	t.Run("falls back to display name", func(t *testing.T) {
		r := IngredientRequirement{DisplayName: "parmesan"}
		assert.Equal(t, "parmesan", r.MatchText())

		r.OriginalText = "   "
		assert.Equal(t, "parmesan", r.MatchText())
	})
}

func TestHasKnownQuantity(t *testing.T) {
	assert.True(t, IngredientRequirement{Quantity: 0.5}.HasKnownQuantity())
	assert.False(t, IngredientRequirement{Quantity: 0}.HasKnownQuantity())
	assert.False(t, IngredientRequirement{Quantity: -1}.HasKnownQuantity())
}
