package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alchemorsel/pantry/internal/domain/pantry"
	"github.com/alchemorsel/pantry/internal/domain/recipe"
)

func reqWithID(id, name string) recipe.IngredientRequirement {
	return recipe.IngredientRequirement{IngredientID: id, DisplayName: name}
}

func TestCalculate(t *testing.T) {
	m := newTestMatcher()

	lots := []*pantry.Lot{
		makeLot(t, "egg", 12, "each"),
		makeLot(t, "milk", 1000, "ml"),
	}

	t.Run("all available", func(t *testing.T) {
		reqs := []recipe.IngredientRequirement{
			reqWithID("ing-1", "egg"),
			reqWithID("ing-2", "milk"),
		}

		result := m.Calculate(reqs, lots)
		assert.Equal(t, 2, result.AvailableCount)
		assert.Equal(t, 0, result.MissingCount)
		assert.Equal(t, 2, result.TotalCount)
		assert.Equal(t, []string{"ing-1", "ing-2"}, result.AvailableIDs)
		assert.Empty(t, result.MissingIDs)
	})

	t.Run("counts instances not unique ids", func(t *testing.T) {
		// The same ingredient ID listed twice contributes two instances.
		reqs := []recipe.IngredientRequirement{
			reqWithID("ing-1", "egg"),
			reqWithID("ing-1", "egg"),
			reqWithID("ing-2", "saffron"),
		}

		result := m.Calculate(reqs, lots)
		assert.Equal(t, 3, result.TotalCount)
		assert.Equal(t, 2, result.AvailableCount)
		assert.Equal(t, 1, result.MissingCount)
		assert.Equal(t, []string{"ing-1"}, result.AvailableIDs)
		assert.Equal(t, []string{"ing-2"}, result.MissingIDs)
	})

	t.Run("same id in both sets when outcomes differ", func(t *testing.T) {
		reqs := []recipe.IngredientRequirement{
			reqWithID("ing-1", "egg"),
			{IngredientID: "ing-1", DisplayName: "truffle"},
		}

		result := m.Calculate(reqs, lots)
		assert.Equal(t, 1, result.AvailableCount)
		assert.Equal(t, 1, result.MissingCount)
		assert.Equal(t, []string{"ing-1"}, result.AvailableIDs)
		assert.Equal(t, []string{"ing-1"}, result.MissingIDs)
	})

	t.Run("empty requirements", func(t *testing.T) {
		result := m.Calculate(nil, lots)
		assert.Equal(t, 0, result.TotalCount)
		assert.Empty(t, result.AvailableIDs)
		assert.Empty(t, result.MissingIDs)
	})

	t.Run("count identity holds against empty pantry", func(t *testing.T) {
		reqs := []recipe.IngredientRequirement{
			reqWithID("ing-1", "egg"),
			reqWithID("ing-2", "milk"),
			reqWithID("ing-3", "flour"),
		}

		result := m.Calculate(reqs, nil)
		assert.Equal(t, 3, result.MissingCount)
		assert.Equal(t, result.TotalCount, result.AvailableCount+result.MissingCount)
	})
}
