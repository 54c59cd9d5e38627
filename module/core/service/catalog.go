package service

import (
	"sort"
	"strings"
	"sync"
)

// itemKeywords maps a free-text item keyword to its canonical categories.
// Multi-category entries are items stocked by more than one kind of store.
var itemKeywords = map[string][]string{
	// grocery: food and basic household
	"eggs":          {"grocery"},
	"milk":          {"grocery"},
	"chicken":       {"grocery"},
	"beef":          {"grocery"},
	"fish":          {"grocery"},
	"cheese":        {"grocery"},
	"butter":        {"grocery"},
	"yogurt":        {"grocery"},
	"bread":         {"grocery"},
	"lettuce":       {"grocery"},
	"tomatoes":      {"grocery"},
	"onions":        {"grocery"},
	"potatoes":      {"grocery"},
	"carrots":       {"grocery"},
	"spinach":       {"grocery"},
	"apples":        {"grocery"},
	"bananas":       {"grocery"},
	"oranges":       {"grocery"},
	"rice":          {"grocery"},
	"pasta":         {"grocery"},
	"cereal":        {"grocery"},
	"coffee":        {"grocery"},
	"tea":           {"grocery"},
	"sugar":         {"grocery"},
	"salt":          {"grocery"},
	"flour":         {"grocery"},
	"cooking oil":   {"grocery"},
	"beans":         {"grocery"},
	"soup":          {"grocery"},
	"snacks":        {"grocery"},
	"chips":         {"grocery"},
	"juice":         {"grocery"},
	"soda":          {"grocery"},
	"water":         {"grocery"},
	"ice cream":     {"grocery"},
	"frozen meals":  {"grocery"},
	"paper towels":  {"grocery"},
	"toilet paper":  {"grocery"},
	"trash bags":    {"grocery"},
	"aluminum foil": {"grocery"},
	"ziplock bags":  {"grocery"},
	"dish soap":     {"grocery"},

	// pharmacy: health and personal care
	"toothpaste":       {"pharmacy"},
	"toothbrush":       {"pharmacy"},
	"mouthwash":        {"pharmacy"},
	"shampoo":          {"pharmacy"},
	"conditioner":      {"pharmacy"},
	"soap":             {"pharmacy"},
	"body wash":        {"pharmacy"},
	"deodorant":        {"pharmacy"},
	"band-aids":        {"pharmacy"},
	"aspirin":          {"pharmacy"},
	"vitamins":         {"pharmacy"},
	"sunscreen":        {"pharmacy"},
	"hand sanitizer":   {"pharmacy"},
	"lotion":           {"pharmacy"},
	"contact solution": {"pharmacy"},
	"diapers":          {"pharmacy"},
	"baby formula":     {"pharmacy"},

	// hardware: tools and home improvement
	"batteries":      {"hardware"},
	"light bulbs":    {"hardware"},
	"flashlight":     {"hardware"},
	"screws":         {"hardware"},
	"nails":          {"hardware"},
	"hammer":         {"hardware"},
	"screwdriver":    {"hardware"},
	"drill":          {"hardware"},
	"paint":          {"hardware"},
	"duct tape":      {"hardware"},
	"super glue":     {"hardware"},
	"plunger":        {"hardware"},
	"broom":          {"hardware"},
	"shovel":         {"hardware"},
	"rake":           {"hardware"},
	"extension cord": {"hardware"},
	"sandpaper":      {"hardware"},

	// service station: fuel and car care
	"gas":                     {"service"},
	"fuel":                    {"service"},
	"car wash":                {"service"},
	"windshield washer fluid": {"service"},
	"oil change":              {"service"},
	"air for tires":           {"service"},

	// stocked at both hardware stores and service stations
	"propane":      {"hardware", "service"},
	"propane tank": {"hardware", "service"},
	"motor oil":    {"hardware", "service"},
	"engine oil":   {"hardware", "service"},
	"2-cycle oil":  {"hardware", "service"},

	// department: clothing and home goods
	"socks":          {"department"},
	"underwear":      {"department"},
	"t-shirt":        {"department"},
	"shirt":          {"department"},
	"pants":          {"department"},
	"jeans":          {"department"},
	"shorts":         {"department"},
	"jacket":         {"department"},
	"sweater":        {"department"},
	"shoes":          {"department"},
	"sneakers":       {"department"},
	"boots":          {"department"},
	"belt":           {"department"},
	"hat":            {"department"},
	"gloves":         {"department"},
	"scarf":          {"department"},
	"towels":         {"department"},
	"sheets":         {"department"},
	"pillows":        {"department"},
	"blanket":        {"department"},
	"shower curtain": {"department"},
	"curtains":       {"department"},
	"picture frame":  {"department"},
	"candles":        {"department"},

	// pet supplies
	"dog food":   {"pet"},
	"cat food":   {"pet"},
	"cat litter": {"pet"},
	"dog treats": {"pet"},
	"cat treats": {"pet"},
	"pet toys":   {"pet"},
	"dog leash":  {"pet"},
	"pet bed":    {"pet"},

	// electronics
	"phone charger":    {"electronics"},
	"charger":          {"electronics"},
	"headphones":       {"electronics"},
	"usb cable":        {"electronics"},
	"mouse":            {"electronics"},
	"keyboard":         {"electronics"},
	"phone case":       {"electronics"},
	"screen protector": {"electronics"},
	"memory card":      {"electronics"},

	// music: instruments and accessories
	"guitar picks":   {"music"},
	"guitar strings": {"music"},
	"bass strings":   {"music"},
	"strings":        {"music"},
	"capo":           {"music"},
	"guitar strap":   {"music"},
	"tuner":          {"music"},
	"drum sticks":    {"music"},
	"drumsticks":     {"music"},
	"drum heads":     {"music"},
	"drum key":       {"music"},
	"practice pad":   {"music"},
	"sustain pedal":  {"music"},
	"keyboard stand": {"music"},
	"reeds":          {"music"},
	"valve oil":      {"music"},
	"cork grease":    {"music"},
	"metronome":      {"music"},
	"sheet music":    {"music"},
	"songbooks":      {"music"},
	"microphone":     {"music"},
	"mic stand":      {"music"},
	"xlr cables":     {"music"},
	"earplugs":       {"music"},
	"guitar cable":   {"music"},

	// stocked at both music and electronics stores
	"midi interface":      {"music", "electronics"},
	"audio cables":        {"music", "electronics"},
	"recording equipment": {"music", "electronics"},
}

const defaultCategory = "grocery"

// minPartialLen keeps one- or two-letter inputs from matching inside
// longer keywords; those fall through to the grocery default.
const minPartialLen = 3

// CategorizeItem maps a free-text item name to canonical categories.
// Exact keyword match wins; otherwise the first bidirectional substring
// match; unknown items default to grocery.
func CategorizeItem(name string) []string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return []string{defaultCategory}
	}

	if categories, ok := itemKeywords[lower]; ok {
		return append([]string(nil), categories...)
	}

	for _, keyword := range sortedKeywords() {
		if strings.Contains(lower, keyword) {
			return append([]string(nil), itemKeywords[keyword]...)
		}
		if len(lower) >= minPartialLen && strings.Contains(keyword, lower) {
			return append([]string(nil), itemKeywords[keyword]...)
		}
	}

	return []string{defaultCategory}
}

var (
	keywordOrder     []string
	keywordOrderOnce sync.Once
)

// sortedKeywords keeps partial matching deterministic across map iteration
// order, longest keyword first so "guitar strings" beats "strings".
func sortedKeywords() []string {
	keywordOrderOnce.Do(func() {
		keywordOrder = make([]string, 0, len(itemKeywords))
		for keyword := range itemKeywords {
			keywordOrder = append(keywordOrder, keyword)
		}
		sort.Slice(keywordOrder, func(i, j int) bool {
			if len(keywordOrder[i]) != len(keywordOrder[j]) {
				return len(keywordOrder[i]) > len(keywordOrder[j])
			}
			return keywordOrder[i] < keywordOrder[j]
		})
	})
	return keywordOrder
}
