package inventory

import (
	"iter"

	"github.com/osse101/InventarioBot_Go/internal/domain"
)

// DisplayLines yields one display string per item in list order. The
// sequence is lazy and can be ranged over any number of times.
func DisplayLines(items domain.ItemList) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, item := range items {
			if !yield(item.DisplayLine()) {
				return
			}
		}
	}
}

// FilterCategory yields display strings for items in category
func FilterCategory(items domain.ItemList, category string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, item := range items {
			if item.CategoryOrDefault() != category {
				continue
			}
			if !yield(item.DisplayLine()) {
				return
			}
		}
	}
}

// GroupByCategory maps each category to the display strings of its items,
// keeping list order inside a group. Every item lands in exactly one group.
func GroupByCategory(items domain.ItemList) map[string][]string {
	groups := make(map[string][]string)
	for _, item := range items {
		cat := item.CategoryOrDefault()
		groups[cat] = append(groups[cat], item.DisplayLine())
	}
	return groups
}

// FindByName returns every item whose name matches exactly
func FindByName(items domain.ItemList, name string) domain.ItemList {
	var found domain.ItemList
	for _, item := range items {
		if item.Name == name {
			found = append(found, item)
		}
	}
	return found
}
