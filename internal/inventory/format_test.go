package inventory

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/InventarioBot_Go/internal/domain"
)

func TestDisplayLines_Restartable(t *testing.T) {
	items := domain.ItemList{
		{Name: "espada", Quantity: 5},
		{Name: "arco", Quantity: 1, Emoji: "🏹"},
	}
	seq := DisplayLines(items)

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	assert.Equal(t, []string{"📦 espada (×5)", "🏹 arco (×1)"}, first)
	assert.Equal(t, first, second)
}

func TestDisplayLines_StopsEarly(t *testing.T) {
	items := domain.ItemList{{Name: "a"}, {Name: "b"}, {Name: "c"}}

	var seen []string
	for line := range DisplayLines(items) {
		seen = append(seen, line)
		if len(seen) == 2 {
			break
		}
	}

	assert.Len(t, seen, 2)
}

func TestFilterCategory(t *testing.T) {
	items := domain.ItemList{
		{Name: "a", Quantity: 1, Category: "armas"},
		{Name: "b", Quantity: 2},
		{Name: "c", Quantity: 3, Category: "armas"},
	}

	assert.Equal(t, []string{"📦 a (×1)", "📦 c (×3)"}, slices.Collect(FilterCategory(items, "armas")))
	assert.Equal(t, []string{"📦 b (×2)"}, slices.Collect(FilterCategory(items, domain.DefaultCategory)))
	assert.Empty(t, slices.Collect(FilterCategory(items, "joyas")))
}

func TestFindByName(t *testing.T) {
	items := domain.ItemList{
		{ID: "1", Name: "espada"},
		{ID: "2", Name: "Espada"},
		{ID: "3", Name: "espada"},
	}

	found := FindByName(items, "espada")

	assert.Len(t, found, 2)
	assert.Nil(t, FindByName(items, "arco"))
}
