package response

import (
	"instant_offer/internal/domain/condition"
	"instant_offer/internal/usecase"
)

type ChoiceResponse struct {
	Option        string   `json:"option"`
	Label         string   `json:"label"`
	Disqualifies  bool     `json:"disqualifies"`
	OpensAreas    bool     `json:"opens_areas"`
	AreaChoices   []string `json:"area_choices,omitempty"`
	PriceImpact   int      `json:"price_impact"`
	PerAreaImpact int      `json:"per_area_impact,omitempty"`
}

type StepResponse struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Required bool             `json:"required"`
	Choices  []ChoiceResponse `json:"choices"`
}

func FromSteps(steps []condition.Step) []StepResponse {
	out := make([]StepResponse, 0, len(steps))
	for _, s := range steps {
		sr := StepResponse{ID: string(s.ID), Title: s.Title, Required: s.Required, Choices: make([]ChoiceResponse, 0, len(s.Choices))}
		for _, c := range s.Choices {
			cr := ChoiceResponse{Option: string(c.Option), Label: c.Label}
			switch o := c.Outcome.(type) {
			case condition.Adjust:
				cr.PriceImpact = o.Amount
			case condition.Disqualify:
				cr.Disqualifies = true
			case condition.AdjustWithAreas:
				cr.OpensAreas = true
				cr.PriceImpact = o.Amount
				cr.PerAreaImpact = o.PerArea
				for _, a := range o.Areas {
					cr.AreaChoices = append(cr.AreaChoices, string(a))
				}
			}
			sr.Choices = append(sr.Choices, cr)
		}
		out = append(out, sr)
	}
	return out
}

type DisqualificationResponse struct {
	StepID string `json:"step_id"`
	Option string `json:"option"`
	Reason string `json:"reason"`
}

type ConditionPreviewResponse struct {
	Status           string                    `json:"status"`
	NextStep         string                    `json:"next_step,omitempty"`
	Answered         int                       `json:"answered"`
	TotalSteps       int                       `json:"total_steps"`
	BasePrice        int                       `json:"base_price"`
	CurrentPrice     *int                      `json:"current_price,omitempty"`
	Pricing          *PricingResponse          `json:"pricing,omitempty"`
	Disqualification *DisqualificationResponse `json:"disqualification,omitempty"`
}

// FromConditionPreview never reports a price for a disqualified vehicle.
func FromConditionPreview(p usecase.ConditionPreview) ConditionPreviewResponse {
	out := ConditionPreviewResponse{
		Status:     string(p.Result.Status),
		NextStep:   string(p.Result.NextStep),
		Answered:   p.Answered,
		TotalSteps: p.TotalSteps,
		BasePrice:  p.BasePrice,
	}
	if d := p.Result.Disqualification; d != nil {
		out.Disqualification = &DisqualificationResponse{StepID: string(d.StepID), Option: string(d.Option), Reason: d.Reason}
		return out
	}
	price := p.Result.Price
	out.CurrentPrice = &price
	if p.Result.Status == condition.StatusComplete {
		pr := FromPricing(p.Pricing)
		out.Pricing = &pr
	}
	return out
}
