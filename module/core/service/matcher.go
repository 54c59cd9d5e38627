package service

import (
	"strings"

	"github.com/Witchkitt/grabbit-clean-main/module/core/domain"
)

// categoryRule links a canonical category to the directory tags and store
// name fragments that identify it. Matching is case-insensitive substring
// comparison in both directions; there is deliberately no stemming or
// tokenization beyond that.
type categoryRule struct {
	tags  []string
	names []string
}

var matchRules = map[string]categoryRule{
	"grocery": {
		tags:  []string{"grocery", "supermarkets", "convenience", "markets", "farmersmarket", "organic_stores", "food"},
		names: []string{"safeway", "trader", "grocery", "market", "kroger", "whole foods", "aldi", "costco"},
	},
	"pharmacy": {
		tags:  []string{"pharmacy", "drugstores", "drug"},
		names: []string{"cvs", "walgreens", "pharmacy", "rite aid"},
	},
	"hardware": {
		tags:  []string{"hardware", "homeandgarden", "nurseries", "garden"},
		names: []string{"ace hardware", "hardware", "home depot", "lowes", "orchard supply"},
	},
	"department": {
		tags:  []string{"departmentstores", "discount_stores", "wholesale_stores"},
		names: []string{"target", "walmart", "kohl", "macy's", "jcpenney"},
	},
	"pet": {
		tags:  []string{"petstore", "pet_services", "pet"},
		names: []string{"petco", "petsmart"},
	},
	"electronics": {
		tags:  []string{"electronics", "computers", "mobilephones"},
		names: []string{"best buy", "apple store"},
	},
	"music": {
		tags:  []string{"musicalinstruments", "musicstores", "vinyl_records"},
		names: []string{"guitar center", "sam ash"},
	},
	"service": {
		tags:  []string{"servicestations", "gasoline", "gas_stations"},
		names: []string{"shell", "chevron", "exxon", "gas station"},
	},
}

// canonicalOrder fixes iteration order over matchRules where output order
// matters.
var canonicalOrder = []string{"grocery", "pharmacy", "hardware", "department", "pet", "electronics", "music", "service"}

// recognizedChains are big-box and drugstore chains that plausibly stock
// anything on a typical list. A store whose name contains one of these and
// matched nothing by category still matches every outstanding item. This
// intentionally favors false positives over missed reminders.
var recognizedChains = []string{"cvs", "walgreens", "target", "walmart"}

// MatchItems returns the subset of items purchasable at store, preserving
// input order. Completed items never match. Inputs are not mutated.
func MatchItems(store *domain.Store, items []domain.ShoppingItem) []domain.ShoppingItem {
	storeName := strings.ToLower(store.Name)
	storeTags := make([]string, len(store.CategoryTags))
	for i, tag := range store.CategoryTags {
		storeTags[i] = strings.ToLower(tag)
	}

	var matched []domain.ShoppingItem
	for _, item := range items {
		if item.Completed {
			continue
		}
		if itemMatches(item, storeName, storeTags) {
			matched = append(matched, item)
		}
	}
	if len(matched) > 0 {
		return matched
	}

	// Fallback: recognized chain with no category match takes everything.
	for _, chain := range recognizedChains {
		if strings.Contains(storeName, chain) {
			for _, item := range items {
				if !item.Completed {
					matched = append(matched, item)
				}
			}
			return matched
		}
	}
	return nil
}

func itemMatches(item domain.ShoppingItem, storeName string, storeTags []string) bool {
	for _, category := range item.CategoryIDs() {
		rule, ok := matchRules[strings.ToLower(category)]
		if !ok {
			continue
		}
		if tagsIntersect(storeTags, rule.tags) || nameContainsAny(storeName, rule.names) {
			return true
		}
	}
	return false
}

// tagsIntersect compares directory tags against rule synonyms as substrings
// in both directions, so "farmersmarket" meets "markets" and vice versa.
// Empty tags are skipped: an empty string is a substring of every synonym.
func tagsIntersect(storeTags, ruleTags []string) bool {
	for _, tag := range storeTags {
		if tag == "" {
			continue
		}
		for _, synonym := range ruleTags {
			if strings.Contains(tag, synonym) || strings.Contains(synonym, tag) {
				return true
			}
		}
	}
	return false
}

func nameContainsAny(storeName string, fragments []string) bool {
	for _, fragment := range fragments {
		if strings.Contains(storeName, fragment) {
			return true
		}
	}
	return false
}

// StoreCategories maps a store to the canonical categories it plausibly
// serves, by the same tag/name rules the matcher uses. Used by the store
// directory for category filtering.
func StoreCategories(store *domain.Store) []string {
	storeName := strings.ToLower(store.Name)
	storeTags := make([]string, len(store.CategoryTags))
	for i, tag := range store.CategoryTags {
		storeTags[i] = strings.ToLower(tag)
	}

	var categories []string
	for _, canonical := range canonicalOrder {
		rule := matchRules[canonical]
		if tagsIntersect(storeTags, rule.tags) || nameContainsAny(storeName, rule.names) {
			categories = append(categories, canonical)
		}
	}
	return categories
}
