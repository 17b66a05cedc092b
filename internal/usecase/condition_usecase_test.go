package usecase

import (
	"context"
	"errors"
	"testing"

	"instant_offer/internal/domain/condition"
	"instant_offer/internal/domain/entities"
)

func TestConditionUseCase_Preview(t *testing.T) {
	uc := NewConditionUseCase(nil, WithClock(fixedClock(testNow)))

	t.Run("partial answers report next step", func(t *testing.T) {
		p, err := uc.Preview(context.Background(), camry(), map[string]entities.ConditionAnswer{
			"ownership":    {Option: "owned_outright"},
			"title_status": {Option: "clean"},
		})
		if err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if p.Result.Status != condition.StatusInProgress || p.Result.NextStep != condition.StepDrivability {
			t.Fatalf("unexpected result %+v", p.Result)
		}
		if p.Answered != 2 || p.TotalSteps != len(uc.Steps()) || p.BasePrice != 600 {
			t.Fatalf("unexpected preview %+v", p)
		}
	})

	t.Run("complete answers price the offer", func(t *testing.T) {
		p, err := uc.Preview(context.Background(), camry(), scenarioAAnswers())
		if err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if p.Result.Status != condition.StatusComplete || p.Pricing.CurrentPrice != 425 {
			t.Fatalf("unexpected preview %+v", p)
		}
		if len(p.Adjustments) == 0 {
			t.Fatalf("expected adjustments to be reported")
		}
	})

	t.Run("disqualification is a result", func(t *testing.T) {
		p, err := uc.Preview(context.Background(), camry(), map[string]entities.ConditionAnswer{
			"ownership":    {Option: "owned_outright"},
			"title_status": {Option: "no_title"},
		})
		if err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if p.Result.Status != condition.StatusDisqualified || p.Result.Disqualification == nil {
			t.Fatalf("unexpected result %+v", p.Result)
		}
		if p.Pricing.CurrentPrice != 0 {
			t.Fatalf("disqualified preview must not carry a price")
		}
	})

	t.Run("unknown step and bad vehicle", func(t *testing.T) {
		_, err := uc.Preview(context.Background(), camry(), map[string]entities.ConditionAnswer{"color": {Option: "red"}})
		if !errors.Is(err, ErrInvalidAnswers) {
			t.Fatalf("expected ErrInvalidAnswers, got %v", err)
		}
		v := camry()
		v.Model = ""
		if _, err := uc.Preview(context.Background(), v, nil); !errors.Is(err, ErrInvalidVehicle) {
			t.Fatalf("expected ErrInvalidVehicle, got %v", err)
		}
	})
}
