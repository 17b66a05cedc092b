package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"instant_offer/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

const pickupDateLayout = "2006-01-02"

var phonePattern = regexp.MustCompile(`^[0-9+()\-.\s]{7,20}$`)

// Pickup windows offered to sellers.
var pickupWindows = map[string]struct{}{
	"morning":   {},
	"afternoon": {},
	"evening":   {},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "pickup_window", func(fl validator.FieldLevel) bool {
		_, ok := pickupWindows[fl.Field().String()]
		return ok
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

type contactInput struct {
	Name    string `validate:"required,max=120"`
	Email   string `validate:"required,email,max=254"`
	Phone   string `validate:"required,phone"`
	Address string `validate:"required,max=300"`
}

func normalizeContact(c entities.ContactInfo) entities.ContactInfo {
	return entities.ContactInfo{
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.ToLower(strings.TrimSpace(c.Email)),
		Phone:   strings.TrimSpace(c.Phone),
		Address: strings.TrimSpace(c.Address),
	}
}

func validateContact(c entities.ContactInfo) error {
	in := contactInput(c)
	if err := validate.Struct(in); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %s", ErrInvalidContactInfo, strings.ToLower(verrs[0].Field()), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidContactInfo, err)
	}
	return nil
}

func validatePhone(phone string) error {
	if err := validate.Var(phone, "required,phone"); err != nil {
		return fmt.Errorf("%w: phone", ErrInvalidContactInfo)
	}
	return nil
}

func validatePickupWindow(window string) error {
	if err := validate.Var(window, "required,pickup_window"); err != nil {
		return ErrInvalidPickupWindow
	}
	return nil
}

// parseFutureDate parses a YYYY-MM-DD pickup date and requires it to be
// strictly after today's calendar date in now's location.
func parseFutureDate(raw string, now time.Time) (string, error) {
	raw = strings.TrimSpace(raw)
	d, err := time.ParseInLocation(pickupDateLayout, raw, now.Location())
	if err != nil {
		return "", ErrInvalidPickupDate
	}
	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, now.Location())
	if !d.After(today) {
		return "", ErrInvalidPickupDate
	}
	return d.Format(pickupDateLayout), nil
}

func validateVehicle(v entities.VehicleAttributes, now time.Time) error {
	if v.Year < 1900 || v.Year > now.Year()+1 {
		return fmt.Errorf("%w: year", ErrInvalidVehicle)
	}
	if v.Make == "" || v.Model == "" {
		return fmt.Errorf("%w: make and model are required", ErrInvalidVehicle)
	}
	if v.VIN != "" && !entities.ValidVIN(v.VIN) {
		return ErrInvalidVIN
	}
	return nil
}
