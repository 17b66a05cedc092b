package usecase

import (
	"context"
	"fmt"

	"instant_offer/internal/domain/condition"
	"instant_offer/internal/domain/entities"
	"instant_offer/internal/domain/pricing"

	"go.uber.org/zap"
)

// ConditionPreview is the flow position for a partial set of answers.
type ConditionPreview struct {
	Result      condition.Result
	Pricing     entities.Pricing
	Answered    int
	TotalSteps  int
	BasePrice   int
	Adjustments []entities.PriceAdjustment
}

// IConditionUseCase serves the intake questionnaire.
type IConditionUseCase interface {
	Steps() []condition.Step
	Preview(ctx context.Context, vehicle entities.VehicleAttributes, answers map[string]entities.ConditionAnswer) (ConditionPreview, error)
}

type ConditionUseCase struct {
	steps  []condition.Step
	rules  *pricing.RuleTable
	logger *zap.Logger
	opts   options
}

var _ IConditionUseCase = (*ConditionUseCase)(nil)

func NewConditionUseCase(logger *zap.Logger, opts ...Option) *ConditionUseCase {
	o := buildOptions(opts)
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConditionUseCase{
		steps:  condition.DefaultSteps(),
		rules:  pricing.NewRuleTable(o.clock),
		logger: logger,
		opts:   o,
	}
}

func (u *ConditionUseCase) Steps() []condition.Step {
	return condition.DefaultSteps()
}

// Preview replays answers without persisting anything. A disqualifying answer
// is a normal result here, not an error.
func (u *ConditionUseCase) Preview(ctx context.Context, vehicle entities.VehicleAttributes, answers map[string]entities.ConditionAnswer) (ConditionPreview, error) {
	vehicle = vehicle.Normalize()
	if err := validateVehicle(vehicle, u.opts.clock()); err != nil {
		return ConditionPreview{}, err
	}
	session, res, err := condition.Replay(u.steps, u.rules.NewState(vehicle), answers)
	if err != nil {
		u.logger.Debug("[condition][preview] replay rejected", zap.Error(err))
		return ConditionPreview{}, fmt.Errorf("%w: %v", ErrInvalidAnswers, err)
	}
	state := session.Pricing()
	preview := ConditionPreview{
		Result:      res,
		Answered:    len(session.Answers()),
		TotalSteps:  len(u.steps),
		BasePrice:   state.Base(),
		Adjustments: state.Adjustments(),
	}
	if res.Status != condition.StatusDisqualified {
		preview.Pricing = state.Snapshot()
	}
	return preview, nil
}
