package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alchemorsel/pantry/internal/domain/pantry"
	"github.com/alchemorsel/pantry/internal/domain/recipe"
)

func newTestMatcher() *Matcher {
	return NewMatcher(NewNormalizer(DefaultStopWords()))
}

func makeLot(t *testing.T, name string, quantity float64, unit string) *pantry.Lot {
	t.Helper()
	lot, err := pantry.NewLot(uuid.New(), name, quantity, unit, nil)
	require.NoError(t, err)
	return lot
}

func req(name string) recipe.IngredientRequirement {
	return recipe.IngredientRequirement{
		IngredientID: uuid.NewString(),
		DisplayName:  name,
	}
}

func TestIsAvailable(t *testing.T) {
	m := newTestMatcher()

	tests := []struct {
		name       string
		ingredient string
		lots       []string
		expected   bool
	}{
		{"exact match", "milk", []string{"milk"}, true},
		{"exact match after normalization", "Fresh Basil", []string{"basil"}, true},
		{"lot name contains ingredient", "cheese", []string{"parmesan cheese"}, true},
		{"ingredient contains lot name", "extra virgin olive oil", []string{"olive oil"}, true},
		{"keyword overlap via compound", "extra virgin olive oil", []string{"spanish olive oil blend"}, true},
		{"no match", "saffron", []string{"milk", "flour"}, false},
		{"substring stands for short names", "egg", []string{"eggplant"}, true},
		{"empty pantry", "milk", nil, false},
		{"pantry of unrelated lots", "cumin", []string{"butter", "sugar"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lots []*pantry.Lot
			for _, name := range tt.lots {
				lots = append(lots, makeLot(t, name, 1, "each"))
			}
			assert.Equal(t, tt.expected, m.IsAvailable(req(tt.ingredient), lots))
		})
	}
}

func TestIsAvailableEmptyName(t *testing.T) {
	m := newTestMatcher()
	lots := []*pantry.Lot{makeLot(t, "milk", 1, "ml")}

	assert.False(t, m.IsAvailable(req(""), lots))
	assert.False(t, m.IsAvailable(req("   "), lots))
	assert.False(t, m.IsAvailable(req("fresh chopped"), lots), "name of only stop words normalizes to empty")
}

func TestIsAvailableOriginalTextFallback(t *testing.T) {
	m := newTestMatcher()
	lots := []*pantry.Lot{makeLot(t, "parmesan cheese", 200, "g")}

	r := recipe.IngredientRequirement{
		IngredientID: uuid.NewString(),
		DisplayName:  "pecorino",
		OriginalText: "50g finely grated parmesan",
	}

	assert.True(t, m.IsAvailable(r, lots), "cascade retries against the original text when the display name misses")
}

func TestMatchingLots(t *testing.T) {
	m := newTestMatcher()

	milk := makeLot(t, "milk", 500, "ml")
	oatMilk := makeLot(t, "oat milk", 1000, "ml")
	flour := makeLot(t, "flour", 2000, "g")
	lots := []*pantry.Lot{milk, oatMilk, flour}

	t.Run("returns matches in discovery order", func(t *testing.T) {
		matched := m.MatchingLots(req("milk"), lots)
		require.Len(t, matched, 2)
		assert.Equal(t, milk.ID(), matched[0].ID())
		assert.Equal(t, oatMilk.ID(), matched[1].ID())
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, m.MatchingLots(req("saffron"), lots))
	})

	t.Run("empty name matches nothing", func(t *testing.T) {
		assert.Empty(t, m.MatchingLots(req(""), lots))
	})
}
