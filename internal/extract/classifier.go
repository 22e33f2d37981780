package extract

import (
	"strings"
	"unicode"

	"github.com/teflaherty67/PlanQuery/internal/domain"
)

// RoomCounts aggregates the classified rooms of one model.
type RoomCounts struct {
	Bedrooms   int
	FullBaths  int
	HalfBaths  int
	GarageBays int
}

// Bathrooms returns the conventional bathroom total: full baths plus half
// a unit per half bath.
func (c RoomCounts) Bathrooms() float64 {
	return float64(c.FullBaths) + 0.5*float64(c.HalfBaths)
}

// roomRule classifies a room name into one category. Rules are evaluated
// in order; within a category only the first matching rule applies, so a
// "powder bath" counts as a half bath and never also as a full bath.
// Different categories stay independent: a single region may count toward
// more than one of them.
type roomRule struct {
	category string
	match    func(name string) bool
	apply    func(name string, c *RoomCounts)
}

// roomRules is the classification table. Names are matched lowercased.
var roomRules = []roomRule{
	{
		category: "bedroom",
		match:    containsAny("bedroom", "bed"),
		apply:    func(_ string, c *RoomCounts) { c.Bedrooms++ },
	},
	{
		category: "bath",
		match: func(name string) bool {
			return strings.Contains(name, "bath") && containsAny("powder", "half")(name)
		},
		apply: func(_ string, c *RoomCounts) { c.HalfBaths++ },
	},
	{
		category: "bath",
		match:    containsAny("bath"),
		apply:    func(_ string, c *RoomCounts) { c.FullBaths++ },
	},
	{
		category: "garage",
		match:    containsAny("garage"),
		apply:    func(name string, c *RoomCounts) { c.GarageBays += garageBays(name) },
	},
}

// bayRule maps a bay-count keyword to its bay count. Keywords match whole
// words only, so "Oneida" never reads as a one-car garage; the numeral
// forms cover names like "2 Car Garage".
type bayRule struct {
	words []string
	bays  int
}

var bayRules = []bayRule{
	{words: []string{"three", "3"}, bays: 3},
	{words: []string{"two", "2"}, bays: 2},
	{words: []string{"one", "1"}, bays: 1},
}

// ClassifyRooms derives bedroom, bathroom, and garage-bay counts from the
// model's spatial regions. Regions with zero or negative area are
// unplaced and skipped. Garage bays sum across regions: two separate
// two-car garages report four bays.
func ClassifyRooms(rooms []domain.Room) RoomCounts {
	var counts RoomCounts
	for _, room := range rooms {
		if room.Area <= 0 {
			continue
		}
		name := strings.ToLower(room.Name)

		matched := make(map[string]bool, len(roomRules))
		for _, rule := range roomRules {
			if matched[rule.category] || !rule.match(name) {
				continue
			}
			rule.apply(name, &counts)
			matched[rule.category] = true
		}
	}
	return counts
}

// garageBays reads the bay count out of a garage region name. A garage
// without a recognized count keyword contributes no bays.
func garageBays(name string) int {
	words := splitWords(name)
	for _, rule := range bayRules {
		for _, w := range rule.words {
			if words[w] {
				return rule.bays
			}
		}
	}
	return 0
}

func splitWords(name string) map[string]bool {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	words := make(map[string]bool, len(fields))
	for _, f := range fields {
		words[f] = true
	}
	return words
}

func containsAny(subs ...string) func(string) bool {
	return func(name string) bool {
		for _, sub := range subs {
			if strings.Contains(name, sub) {
				return true
			}
		}
		return false
	}
}
