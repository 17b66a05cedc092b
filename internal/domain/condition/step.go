// Package condition implements the vehicle condition questionnaire: an
// ordered list of steps whose answers either adjust the offer, open an area
// sub-question, or disqualify the vehicle.
package condition

import (
	"fmt"
)

type StepID string

type Option string

type Area string

// AreasKey is the adjustment key used for a step's area sub-question.
func AreasKey(id StepID) string {
	return string(id) + "_areas"
}

// Outcome is what choosing an option does. The set of implementations is
// closed: Adjust, Disqualify and AdjustWithAreas.
type Outcome interface {
	outcome()
}

// Adjust applies a fixed delta (possibly zero) and advances.
type Adjust struct {
	Amount int
}

// Disqualify ends the flow: the vehicle cannot be purchased.
type Disqualify struct {
	Reason string
}

// AdjustWithAreas applies Amount, then asks which of Areas are affected and
// applies PerArea for each selected area.
type AdjustWithAreas struct {
	Amount  int
	PerArea int
	Areas   []Area
}

func (Adjust) outcome()          {}
func (Disqualify) outcome()      {}
func (AdjustWithAreas) outcome() {}

func (a AdjustWithAreas) hasArea(area Area) bool {
	for _, x := range a.Areas {
		if x == area {
			return true
		}
	}
	return false
}

type Choice struct {
	Option  Option
	Label   string
	Outcome Outcome
}

type Step struct {
	ID       StepID
	Title    string
	Required bool
	Choices  []Choice
}

func (s Step) choice(o Option) (Choice, bool) {
	for _, c := range s.Choices {
		if c.Option == o {
			return c, true
		}
	}
	return Choice{}, false
}

// DisqualifyingAnswers lists options that end the flow.
func (s Step) DisqualifyingAnswers() []Option {
	var out []Option
	for _, c := range s.Choices {
		if _, ok := c.Outcome.(Disqualify); ok {
			out = append(out, c.Option)
		}
	}
	return out
}

// SubQuestionTriggers lists options that open the area sub-question.
func (s Step) SubQuestionTriggers() []Option {
	var out []Option
	for _, c := range s.Choices {
		if _, ok := c.Outcome.(AdjustWithAreas); ok {
			out = append(out, c.Option)
		}
	}
	return out
}

func (s Step) HasSubQuestion() bool {
	return len(s.SubQuestionTriggers()) > 0
}

// ValidateSteps checks ids and options are unique and every step has choices.
func ValidateSteps(steps []Step) error {
	seen := make(map[StepID]struct{}, len(steps))
	for _, s := range steps {
		if s.ID == "" {
			return fmt.Errorf("step with empty id")
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("duplicate step %q", s.ID)
		}
		seen[s.ID] = struct{}{}
		if len(s.Choices) == 0 {
			return fmt.Errorf("step %q has no choices", s.ID)
		}
		opts := make(map[Option]struct{}, len(s.Choices))
		for _, c := range s.Choices {
			if _, dup := opts[c.Option]; dup {
				return fmt.Errorf("step %q: duplicate option %q", s.ID, c.Option)
			}
			opts[c.Option] = struct{}{}
			if c.Outcome == nil {
				return fmt.Errorf("step %q: option %q has no outcome", s.ID, c.Option)
			}
			if a, ok := c.Outcome.(AdjustWithAreas); ok && len(a.Areas) == 0 {
				return fmt.Errorf("step %q: option %q has no areas", s.ID, c.Option)
			}
		}
	}
	return nil
}
