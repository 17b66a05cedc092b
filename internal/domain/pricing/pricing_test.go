package pricing

import (
	"testing"
	"time"

	"instant_offer/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasePrice_RuleOrder(t *testing.T) {
	cases := []struct {
		name string
		v    entities.VehicleAttributes
		want int
	}{
		{name: "camry age 10 popular", v: entities.VehicleAttributes{Year: 2015, Make: "Toyota", Model: "Camry"}, want: 600},
		{name: "old unknown make", v: entities.VehicleAttributes{Year: 1990, Make: "Saab", Model: "900"}, want: 400},
		{name: "new premium", v: entities.VehicleAttributes{Year: 2023, Make: "BMW", Model: "330i"}, want: 1000},
		{name: "mid age truck popular", v: entities.VehicleAttributes{Year: 2018, Make: "ford", Model: "F-150", Trim: "XLT"}, want: 850},
		{name: "suv keyword in trim", v: entities.VehicleAttributes{Year: 2012, Make: "Kia", Model: "Sorento", Trim: "LX SUV"}, want: 650},
		{name: "future model year counts as new", v: entities.VehicleAttributes{Year: 2026, Make: "Lexus", Model: "RX"}, want: 1000},
		{name: "keyword must be a whole word", v: entities.VehicleAttributes{Year: 2015, Make: "Dodge", Model: "Grand Caravan"}, want: 500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BasePrice(tc.v, 2025))
		})
	}
}

func TestBasePrice_NeverBelowFloor(t *testing.T) {
	makes := []string{"", "Toyota", "BMW", "Yugo", "Mercedes-Benz"}
	models := []string{"", "Tacoma", "Civic", "pickup"}
	for year := 1950; year <= 2030; year += 3 {
		for _, mk := range makes {
			for _, md := range models {
				v := entities.VehicleAttributes{Year: year, Make: mk, Model: md}
				require.GreaterOrEqual(t, BasePrice(v, 2025), MinPrice)
			}
		}
	}
}

func TestState_ApplyRecomputesAndClamps(t *testing.T) {
	s := NewState(600)
	s = s.Apply("mileage", -100)
	s = s.Apply("exterior_damage", -75)
	assert.Equal(t, 425, s.Current())

	// replacing a key does not accumulate
	s = s.Apply("mileage", -150)
	assert.Equal(t, 375, s.Current())
	assert.Equal(t, -150, s.Adjustment("mileage"))

	s = s.Apply("mechanical_issues", -1000)
	assert.Equal(t, MinPrice, s.Current())

	s = s.Remove("mechanical_issues")
	assert.Equal(t, 375, s.Current())
	assert.Zero(t, s.Adjustment("mechanical_issues"))
}

func TestState_ApplyDoesNotMutateReceiver(t *testing.T) {
	a := NewState(500).Apply("keys", -50)
	b := a.Apply("keys", 0)
	assert.Equal(t, -50, a.Adjustment("keys"))
	assert.Zero(t, b.Adjustment("keys"))
}

func TestState_CurrentMatchesFormula(t *testing.T) {
	deltas := []struct {
		key    string
		amount int
	}{
		{"a", -40}, {"b", 120}, {"a", -300}, {"c", -900}, {"b", 0}, {"c", 25}, {"d", -10},
	}
	s := NewState(450)
	active := map[string]int{}
	for _, d := range deltas {
		s = s.Apply(d.key, d.amount)
		active[d.key] = d.amount
		sum := 0
		for _, v := range active {
			sum += v
		}
		want := 450 + sum
		if want < MinPrice {
			want = MinPrice
		}
		require.Equal(t, want, s.Current())
	}
}

func TestState_Snapshot(t *testing.T) {
	p := NewState(600).Apply("mileage", -100).Apply("airbags", -100).Snapshot()
	assert.Equal(t, 600, p.BasePrice)
	assert.Equal(t, 400, p.CurrentPrice)
	assert.Equal(t, 400, p.FinalPrice)
	assert.Equal(t, []entities.PriceAdjustment{{Key: "airbags", Amount: -100}, {Key: "mileage", Amount: -100}}, p.Adjustments)
}

func TestRuleTable_UsesClockYear(t *testing.T) {
	rt := NewRuleTable(func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) })
	assert.Equal(t, 600, rt.BasePrice(entities.VehicleAttributes{Year: 2015, Make: "Toyota", Model: "Camry"}))
	assert.Equal(t, 600, rt.NewState(entities.VehicleAttributes{Year: 2015, Make: "Toyota", Model: "Camry"}).Current())
}
