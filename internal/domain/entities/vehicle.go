package entities

import "strings"

// VINLength is the fixed length of a modern (post-1981) VIN.
const VINLength = 17

// VehicleAttributes identifies the vehicle being priced.
// Immutable once the quote is submitted.
type VehicleAttributes struct {
	Year  int    `json:"year"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Trim  string `json:"trim,omitempty"`
	VIN   string `json:"vin,omitempty"`
}

// Normalize trims whitespace and upper-cases the VIN.
func (v VehicleAttributes) Normalize() VehicleAttributes {
	v.Make = strings.TrimSpace(v.Make)
	v.Model = strings.TrimSpace(v.Model)
	v.Trim = strings.TrimSpace(v.Trim)
	v.VIN = strings.ToUpper(strings.TrimSpace(v.VIN))
	return v
}

// ValidVIN checks length and the character set (I, O and Q are never used).
func ValidVIN(vin string) bool {
	if len(vin) != VINLength {
		return false
	}
	for _, r := range vin {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'A' && r <= 'Z' && r != 'I' && r != 'O' && r != 'Q':
		default:
			return false
		}
	}
	return true
}
