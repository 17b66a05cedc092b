package request

import (
	"errors"
	"strings"
	"time"

	"instant_offer/internal/domain/entities"
	"instant_offer/internal/usecase"
	"instant_offer/internal/usecase/interfaces"
)

var ErrInvalidListQuery = errors.New("invalid list query")

type VehicleRequest struct {
	Year  int    `json:"year" binding:"required"`
	Make  string `json:"make" binding:"required"`
	Model string `json:"model" binding:"required"`
	Trim  string `json:"trim"`
	VIN   string `json:"vin"`
}

func (r VehicleRequest) ToEntity() entities.VehicleAttributes {
	return entities.VehicleAttributes{Year: r.Year, Make: r.Make, Model: r.Model, Trim: r.Trim, VIN: r.VIN}
}

// AnswerRequest is one answer keyed by step id. Areas is only read for steps
// that open the area sub-question.
type AnswerRequest struct {
	Option string   `json:"option" binding:"required"`
	Areas  []string `json:"areas"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

func (r ContactRequest) ToEntity() entities.ContactInfo {
	return entities.ContactInfo{Name: r.Name, Email: r.Email, Phone: r.Phone, Address: r.Address}
}

type SubmitQuoteRequest struct {
	Vehicle VehicleRequest           `json:"vehicle" binding:"required"`
	Answers map[string]AnswerRequest `json:"answers" binding:"required"`
	Contact ContactRequest           `json:"contact" binding:"required"`
}

func (r SubmitQuoteRequest) ToInput() usecase.SubmitQuoteInput {
	return usecase.SubmitQuoteInput{
		Vehicle: r.Vehicle.ToEntity(),
		Answers: toAnswers(r.Answers),
		Contact: r.Contact.ToEntity(),
	}
}

type ConditionPreviewRequest struct {
	Vehicle VehicleRequest           `json:"vehicle" binding:"required"`
	Answers map[string]AnswerRequest `json:"answers"`
}

func (r ConditionPreviewRequest) AnswersMap() map[string]entities.ConditionAnswer {
	return toAnswers(r.Answers)
}

func toAnswers(in map[string]AnswerRequest) map[string]entities.ConditionAnswer {
	out := make(map[string]entities.ConditionAnswer, len(in))
	for id, a := range in {
		out[strings.TrimSpace(id)] = entities.ConditionAnswer{
			Option: strings.TrimSpace(a.Option),
			Areas:  append([]string(nil), a.Areas...),
		}
	}
	return out
}

type CancelQuoteRequest struct {
	Reason string `json:"reason"`
	Note   string `json:"note"`
}

type ReschedulePickupRequest struct {
	NewDate string `json:"new_date" binding:"required"`
	NewTime string `json:"new_time" binding:"required"`
	Reason  string `json:"reason"`
	Note    string `json:"note"`
}

type AcceptScheduleRequest struct {
	PickupDate   string `json:"pickup_date" binding:"required"`
	PickupWindow string `json:"pickup_window" binding:"required"`
	ContactPhone string `json:"contact_phone"`
}

type OperatorActionRequest struct {
	Note string `json:"note"`
}

// ListQuotesQuery is bound from the admin list query string. Dates are RFC 3339.
type ListQuotesQuery struct {
	Status        string `form:"status"`
	CreatedAfter  string `form:"created_after"`
	CreatedBefore string `form:"created_before"`
	Limit         int    `form:"limit"`
}

func (q ListQuotesQuery) ToFilter() (interfaces.QuoteFilter, error) {
	f := interfaces.QuoteFilter{
		Status: entities.QuoteStatus(strings.TrimSpace(q.Status)),
		Limit:  q.Limit,
	}
	var err error
	if f.CreatedAfter, err = parseOptionalTime(q.CreatedAfter); err != nil {
		return interfaces.QuoteFilter{}, err
	}
	if f.CreatedBefore, err = parseOptionalTime(q.CreatedBefore); err != nil {
		return interfaces.QuoteFilter{}, err
	}
	if !f.CreatedAfter.IsZero() && !f.CreatedBefore.IsZero() && !f.CreatedAfter.Before(f.CreatedBefore) {
		return interfaces.QuoteFilter{}, ErrInvalidListQuery
	}
	return f, nil
}

func parseOptionalTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, ErrInvalidListQuery
	}
	return t, nil
}
