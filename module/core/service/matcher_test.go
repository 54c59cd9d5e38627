package service

import (
	"testing"

	"github.com/Witchkitt/grabbit-clean-main/module/core/domain"
)

func TestMatchItems_CategoryTagMatch(t *testing.T) {
	store := &domain.Store{
		ID:           "s1",
		Name:         "Safeway",
		CategoryTags: []string{"grocery"},
	}
	items := []domain.ShoppingItem{
		{ID: "i1", Name: "milk", Category: "grocery"},
		{ID: "i2", Name: "phone charger", Category: "electronics"},
	}

	matched := MatchItems(store, items)
	if len(matched) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matched))
	}
	if matched[0].ID != "i1" {
		t.Errorf("expected i1, got %s", matched[0].ID)
	}
}

func TestMatchItems_NameSubstringMatch(t *testing.T) {
	// no tags at all, only the name gives it away
	store := &domain.Store{ID: "s1", Name: "CVS Pharmacy"}
	items := []domain.ShoppingItem{
		{ID: "i1", Name: "toothpaste", Category: "pharmacy"},
	}

	matched := MatchItems(store, items)
	if len(matched) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matched))
	}
}

func TestMatchItems_TagSubstringBothWays(t *testing.T) {
	store := &domain.Store{
		ID:           "s1",
		Name:         "Ferry Plaza",
		CategoryTags: []string{"farmersmarket"},
	}
	items := []domain.ShoppingItem{
		{ID: "i1", Name: "apples", Category: "grocery"},
	}

	if matched := MatchItems(store, items); len(matched) != 1 {
		t.Fatalf("expected farmersmarket tag to match grocery, got %d matches", len(matched))
	}
}

func TestMatchItems_RecognizedChainFallback(t *testing.T) {
	// no tags, nothing matches by category, but Walmart takes everything
	store := &domain.Store{ID: "s1", Name: "Walmart Supercenter"}
	items := []domain.ShoppingItem{
		{ID: "i1", Name: "guitar picks", Category: "music"},
		{ID: "i2", Name: "dog food", Category: "pet"},
	}

	matched := MatchItems(store, items)
	if len(matched) != 2 {
		t.Fatalf("expected fallback to match all items, got %d", len(matched))
	}
	if matched[0].ID != "i1" || matched[1].ID != "i2" {
		t.Errorf("expected input order preserved, got %v", matched)
	}
}

func TestMatchItems_NoFallbackForUnrecognizedStore(t *testing.T) {
	store := &domain.Store{ID: "s1", Name: "Bob's Surplus"}
	items := []domain.ShoppingItem{
		{ID: "i1", Name: "guitar picks", Category: "music"},
	}

	if matched := MatchItems(store, items); matched != nil {
		t.Fatalf("expected no matches, got %v", matched)
	}
}

func TestMatchItems_GroceryStoreDoesNotFallBack(t *testing.T) {
	// Safeway is a grocery name hit, not a universal chain: an
	// electronics-only list stays unmatched there.
	store := &domain.Store{
		ID:           "s1",
		Name:         "Safeway",
		CategoryTags: []string{"grocery"},
	}
	items := []domain.ShoppingItem{
		{ID: "i1", Name: "phone charger", Category: "electronics"},
	}

	if matched := MatchItems(store, items); matched != nil {
		t.Fatalf("expected no matches, got %v", matched)
	}
}

func TestMatchItems_EmptyTagMatchesNothing(t *testing.T) {
	store := &domain.Store{
		ID:           "s1",
		Name:         "Bob's Surplus",
		CategoryTags: []string{""},
	}
	items := []domain.ShoppingItem{
		{ID: "i1", Name: "phone charger", Category: "electronics"},
		{ID: "i2", Name: "dog food", Category: "pet"},
	}

	if matched := MatchItems(store, items); matched != nil {
		t.Fatalf("expected empty tag to match nothing, got %v", matched)
	}
}

func TestStoreCategories_EmptyTag(t *testing.T) {
	store := &domain.Store{Name: "Bob's Surplus", CategoryTags: []string{""}}
	if categories := StoreCategories(store); categories != nil {
		t.Fatalf("expected no categories for empty tag, got %v", categories)
	}
}

func TestMatchItems_SkipsCompletedItems(t *testing.T) {
	store := &domain.Store{ID: "s1", Name: "Safeway", CategoryTags: []string{"grocery"}}
	items := []domain.ShoppingItem{
		{ID: "i1", Name: "milk", Category: "grocery", Completed: true},
		{ID: "i2", Name: "eggs", Category: "grocery"},
	}

	matched := MatchItems(store, items)
	if len(matched) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matched))
	}
	if matched[0].ID != "i2" {
		t.Errorf("expected i2, got %s", matched[0].ID)
	}
}

func TestMatchItems_CompletedItemsExcludedFromFallback(t *testing.T) {
	store := &domain.Store{ID: "s1", Name: "Target"}
	items := []domain.ShoppingItem{
		{ID: "i1", Name: "guitar picks", Category: "music", Completed: true},
	}

	if matched := MatchItems(store, items); matched != nil {
		t.Fatalf("expected no matches, got %v", matched)
	}
}

func TestMatchItems_MultiCategoryItem(t *testing.T) {
	store := &domain.Store{
		ID:           "s1",
		Name:         "Shell",
		CategoryTags: []string{"gas_stations"},
	}
	items := []domain.ShoppingItem{
		{ID: "i1", Name: "propane", Category: "hardware", Categories: []string{"hardware", "service"}},
	}

	if matched := MatchItems(store, items); len(matched) != 1 {
		t.Fatalf("expected propane to match a service station, got %d matches", len(matched))
	}
}

func TestMatchItems_DoesNotMutateInputs(t *testing.T) {
	store := &domain.Store{ID: "s1", Name: "Safeway", CategoryTags: []string{"Grocery"}}
	items := []domain.ShoppingItem{
		{ID: "i1", Name: "milk", Category: "grocery"},
	}

	MatchItems(store, items)

	if store.CategoryTags[0] != "Grocery" {
		t.Errorf("store tags mutated: %v", store.CategoryTags)
	}
	if items[0].Name != "milk" {
		t.Errorf("items mutated: %v", items)
	}
}

func TestStoreCategories(t *testing.T) {
	store := &domain.Store{
		Name:         "CVS Pharmacy",
		CategoryTags: []string{"convenience"},
	}

	categories := StoreCategories(store)
	// convenience tag -> grocery, cvs/pharmacy name -> pharmacy
	if len(categories) != 2 || categories[0] != "grocery" || categories[1] != "pharmacy" {
		t.Fatalf("expected [grocery pharmacy], got %v", categories)
	}
}

func TestStoreCategories_NoMatch(t *testing.T) {
	store := &domain.Store{Name: "Bob's Surplus"}
	if categories := StoreCategories(store); categories != nil {
		t.Fatalf("expected no categories, got %v", categories)
	}
}
