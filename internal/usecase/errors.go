package usecase

import (
	"errors"
	"fmt"

	"instant_offer/internal/domain/condition"
	"instant_offer/internal/domain/lifecycle"
)

var (
	ErrValidation             = errors.New("validation error")
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrIllegalTransition      = lifecycle.ErrIllegalTransition
	ErrNoChange               = errors.New("no change")
	ErrVehicleDisqualified    = errors.New("vehicle disqualified")
	ErrConcurrentModification = errors.New("quote was modified concurrently")

	ErrInvalidVehicle      = fmt.Errorf("%w: invalid vehicle", ErrValidation)
	ErrInvalidVIN          = fmt.Errorf("%w: invalid vin", ErrValidation)
	ErrInvalidAnswers      = fmt.Errorf("%w: invalid condition answers", ErrValidation)
	ErrConditionIncomplete = fmt.Errorf("%w: condition questions incomplete", ErrValidation)
	ErrInvalidContactInfo  = fmt.Errorf("%w: invalid contact info", ErrValidation)
	ErrInvalidPickupDate   = fmt.Errorf("%w: pickup date must be after today", ErrValidation)
	ErrInvalidPickupWindow = fmt.Errorf("%w: invalid pickup window", ErrValidation)
	ErrInvalidReason       = fmt.Errorf("%w: invalid reason", ErrValidation)
	ErrInvalidQuoteFilter  = fmt.Errorf("%w: invalid quote filter", ErrValidation)
	ErrNoteTooLong         = fmt.Errorf("%w: note too long", ErrValidation)
)

// DisqualifiedError carries the explanation for a vehicle we cannot buy.
type DisqualifiedError struct {
	Disqualification condition.Disqualification
}

func (e *DisqualifiedError) Error() string {
	return fmt.Sprintf("vehicle disqualified at %s: %s", e.Disqualification.StepID, e.Disqualification.Reason)
}

func (e *DisqualifiedError) Unwrap() error { return ErrVehicleDisqualified }
