// Package pricing derives the base offer for a vehicle and folds named
// adjustments into the current offer. Everything here is deterministic.
package pricing

import (
	"strings"
	"time"

	"instant_offer/internal/domain/entities"
)

// MinPrice is the hard floor for any offer.
const MinPrice = 300

const (
	premiumBonus  = 200
	popularBonus  = 100
	truckSUVBonus = 150
	floorOver20y  = 400
	floor10to19y  = 500
	floor5to9y    = 600
	floorUnder5y  = 800
)

var premiumMakes = map[string]struct{}{
	"bmw":           {},
	"mercedes":      {},
	"mercedes-benz": {},
	"audi":          {},
	"lexus":         {},
	"acura":         {},
	"infiniti":      {},
}

var popularMakes = map[string]struct{}{
	"toyota":    {},
	"honda":     {},
	"ford":      {},
	"chevrolet": {},
	"nissan":    {},
}

// Matched as whole words against "model trim".
var truckSUVKeywords = []string{
	"truck", "pickup", "suv", "crew cab", "f-150", "f-250", "silverado", "sierra",
	"ram", "tacoma", "tundra", "frontier", "colorado", "ranger", "tahoe",
	"suburban", "yukon", "explorer", "expedition", "4runner", "highlander",
	"pilot", "wrangler", "grand cherokee", "pathfinder", "rav4", "cr-v",
}

// BasePrice applies the rule table in its fixed order:
// age floor, premium bonus, popular bonus, truck/SUV bonus, clamp.
func BasePrice(v entities.VehicleAttributes, currentYear int) int {
	price := ageFloor(currentYear - v.Year)

	mk := strings.ToLower(strings.TrimSpace(v.Make))
	if _, ok := premiumMakes[mk]; ok {
		price += premiumBonus
	}
	if _, ok := popularMakes[mk]; ok {
		price += popularBonus
	}
	if IsTruckOrSUV(v.Model, v.Trim) {
		price += truckSUVBonus
	}
	return clamp(price)
}

func ageFloor(age int) int {
	switch {
	case age >= 20:
		return floorOver20y
	case age >= 10:
		return floor10to19y
	case age >= 5:
		return floor5to9y
	default:
		return floorUnder5y
	}
}

// IsTruckOrSUV reports whether the model or trim names a truck/SUV body.
func IsTruckOrSUV(model, trim string) bool {
	text := " " + normalizeWords(model+" "+trim) + " "
	for _, kw := range truckSUVKeywords {
		if strings.Contains(text, " "+kw+" ") {
			return true
		}
	}
	return false
}

func normalizeWords(s string) string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

func clamp(price int) int {
	if price < MinPrice {
		return MinPrice
	}
	return price
}

// RuleTable binds the pure rules to a clock for the current model year.
type RuleTable struct {
	now func() time.Time
}

func NewRuleTable(now func() time.Time) *RuleTable {
	if now == nil {
		now = time.Now
	}
	return &RuleTable{now: now}
}

func (t *RuleTable) BasePrice(v entities.VehicleAttributes) int {
	return BasePrice(v, t.now().Year())
}

// NewState starts a pricing state for the vehicle with no adjustments.
func (t *RuleTable) NewState(v entities.VehicleAttributes) State {
	return NewState(t.BasePrice(v))
}
