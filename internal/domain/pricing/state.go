package pricing

import (
	"sort"

	"instant_offer/internal/domain/entities"
)

// State is an immutable pricing snapshot: a base price and the active
// adjustments keyed by name.
type State struct {
	base        int
	adjustments map[string]int
}

func NewState(base int) State {
	return State{base: base}
}

// Apply replaces any adjustment stored under key. An amount of zero removes it.
func (s State) Apply(key string, amount int) State {
	next := make(map[string]int, len(s.adjustments)+1)
	for k, v := range s.adjustments {
		next[k] = v
	}
	if amount == 0 {
		delete(next, key)
	} else {
		next[key] = amount
	}
	return State{base: s.base, adjustments: next}
}

// Remove drops the adjustment under key.
func (s State) Remove(key string) State {
	return s.Apply(key, 0)
}

func (s State) Base() int { return s.base }

// Adjustment returns the active amount for key, or zero.
func (s State) Adjustment(key string) int {
	return s.adjustments[key]
}

// Total is the sum of all active adjustments.
func (s State) Total() int {
	total := 0
	for _, v := range s.adjustments {
		total += v
	}
	return total
}

// Current is max(MinPrice, base + Σ adjustments).
func (s State) Current() int {
	return clamp(s.base + s.Total())
}

// Adjustments lists active adjustments sorted by key.
func (s State) Adjustments() []entities.PriceAdjustment {
	out := make([]entities.PriceAdjustment, 0, len(s.adjustments))
	for k, v := range s.adjustments {
		out = append(out, entities.PriceAdjustment{Key: k, Amount: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Snapshot converts the state into the persisted pricing, freezing FinalPrice.
func (s State) Snapshot() entities.Pricing {
	current := s.Current()
	return entities.Pricing{
		BasePrice:    s.base,
		CurrentPrice: current,
		FinalPrice:   current,
		Adjustments:  s.Adjustments(),
	}
}
