package condition

import (
	"errors"
	"sort"

	"instant_offer/internal/domain/entities"
	"instant_offer/internal/domain/pricing"
)

var (
	ErrDisqualified     = errors.New("vehicle disqualified")
	ErrUnknownStep      = errors.New("unknown condition step")
	ErrUnknownOption    = errors.New("unknown option for step")
	ErrStepNotReachable = errors.New("step not reachable yet")
	ErrNoSubQuestion    = errors.New("step has no open area question")
	ErrInvalidAreas     = errors.New("invalid area selection")
	ErrStepRequired     = errors.New("required step cannot be skipped")
)

type Status string

const (
	StatusInProgress    Status = "in_progress"
	StatusAwaitingAreas Status = "awaiting_areas"
	StatusDisqualified  Status = "disqualified"
	StatusComplete      Status = "complete"
)

// Disqualification describes why the flow stopped.
type Disqualification struct {
	StepID StepID `json:"step_id"`
	Option Option `json:"option"`
	Reason string `json:"reason"`
}

// Result is the flow position after an operation.
// Price is meaningless when Status is StatusDisqualified.
type Result struct {
	Status           Status
	NextStep         StepID
	Price            int
	Disqualification *Disqualification
}

// Session holds one intake run. It is not safe for concurrent use.
type Session struct {
	steps    []Step
	index    map[StepID]int
	base     pricing.State
	pricing  pricing.State
	answers  map[StepID]entities.ConditionAnswer
	awaiting map[StepID]bool
	current  int
	furthest int

	disqualified *Disqualification
}

// NewSession starts a run over steps with the given starting price state.
func NewSession(steps []Step, start pricing.State) *Session {
	s := &Session{
		steps: steps,
		index: make(map[StepID]int, len(steps)),
		base:  start,
	}
	for i, st := range steps {
		s.index[st.ID] = i
	}
	s.Restart()
	return s
}

// Restart clears all answers, adjustments and any disqualification.
func (s *Session) Restart() {
	s.pricing = s.base
	s.answers = make(map[StepID]entities.ConditionAnswer)
	s.awaiting = make(map[StepID]bool)
	s.current = 0
	s.furthest = 0
	s.disqualified = nil
}

func (s *Session) lookup(id StepID) (int, error) {
	if s.disqualified != nil {
		return 0, ErrDisqualified
	}
	idx, ok := s.index[id]
	if !ok {
		return 0, ErrUnknownStep
	}
	if idx > s.furthest {
		return 0, ErrStepNotReachable
	}
	return idx, nil
}

// Answer records option for the step. The step must be the current one or
// any step up to the furthest reached.
func (s *Session) Answer(id StepID, option Option) (Result, error) {
	idx, err := s.lookup(id)
	if err != nil {
		return Result{}, err
	}
	step := s.steps[idx]
	choice, ok := step.choice(option)
	if !ok {
		return Result{}, ErrUnknownOption
	}

	switch o := choice.Outcome.(type) {
	case Disqualify:
		s.answers[id] = entities.ConditionAnswer{Option: string(option)}
		s.current = idx
		s.disqualified = &Disqualification{StepID: id, Option: option, Reason: o.Reason}
	case Adjust:
		s.pricing = s.pricing.Apply(string(id), o.Amount).Remove(AreasKey(id))
		s.answers[id] = entities.ConditionAnswer{Option: string(option)}
		delete(s.awaiting, id)
		s.advance(idx)
	case AdjustWithAreas:
		// previous area picks belonged to the prior answer; ask again
		s.pricing = s.pricing.Apply(string(id), o.Amount).Remove(AreasKey(id))
		s.answers[id] = entities.ConditionAnswer{Option: string(option)}
		s.awaiting[id] = true
		s.current = idx
	}
	return s.Result(), nil
}

// AnswerAreas resolves the open area sub-question for the step.
func (s *Session) AnswerAreas(id StepID, areas []Area) (Result, error) {
	idx, err := s.lookup(id)
	if err != nil {
		return Result{}, err
	}
	ans, answered := s.answers[id]
	if !answered {
		return Result{}, ErrNoSubQuestion
	}
	choice, _ := s.steps[idx].choice(Option(ans.Option))
	sub, ok := choice.Outcome.(AdjustWithAreas)
	if !ok {
		return Result{}, ErrNoSubQuestion
	}

	picked, err := dedupeAreas(sub, areas)
	if err != nil {
		return Result{}, err
	}
	s.pricing = s.pricing.Apply(AreasKey(id), sub.PerArea*len(picked))
	ans.Areas = picked
	s.answers[id] = ans
	delete(s.awaiting, id)
	s.advance(idx)
	return s.Result(), nil
}

func dedupeAreas(sub AdjustWithAreas, areas []Area) ([]string, error) {
	if len(areas) == 0 {
		return nil, ErrInvalidAreas
	}
	seen := make(map[Area]struct{}, len(areas))
	out := make([]string, 0, len(areas))
	for _, a := range areas {
		if !sub.hasArea(a) {
			return nil, ErrInvalidAreas
		}
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, string(a))
	}
	sort.Strings(out)
	return out, nil
}

// Skip passes over an optional step, clearing any answer it had.
func (s *Session) Skip(id StepID) (Result, error) {
	idx, err := s.lookup(id)
	if err != nil {
		return Result{}, err
	}
	if s.steps[idx].Required {
		return Result{}, ErrStepRequired
	}
	s.pricing = s.pricing.Remove(string(id)).Remove(AreasKey(id))
	delete(s.answers, id)
	delete(s.awaiting, id)
	s.advance(idx)
	return s.Result(), nil
}

// GoTo moves to a previously reached step.
func (s *Session) GoTo(id StepID) error {
	idx, err := s.lookup(id)
	if err != nil {
		return err
	}
	s.current = idx
	return nil
}

func (s *Session) advance(idx int) {
	next := idx + 1
	if next > s.furthest {
		s.furthest = min(next, len(s.steps)-1)
	}
	s.current = min(next, len(s.steps)-1)
}

// Result reports the flow status and current price.
func (s *Session) Result() Result {
	r := Result{Price: s.pricing.Current()}
	switch {
	case s.disqualified != nil:
		d := *s.disqualified
		r.Status = StatusDisqualified
		r.NextStep = d.StepID
		r.Disqualification = &d
	case len(s.awaiting) > 0:
		r.Status = StatusAwaitingAreas
		r.NextStep = s.firstAwaiting()
	case s.requiredAnswered():
		r.Status = StatusComplete
	default:
		r.Status = StatusInProgress
		r.NextStep = s.steps[s.current].ID
	}
	return r
}

func (s *Session) firstAwaiting() StepID {
	for _, st := range s.steps {
		if s.awaiting[st.ID] {
			return st.ID
		}
	}
	return ""
}

func (s *Session) requiredAnswered() bool {
	for _, st := range s.steps {
		if !st.Required {
			continue
		}
		if _, ok := s.answers[st.ID]; !ok {
			return false
		}
	}
	return true
}

func (s *Session) Complete() bool {
	return s.Result().Status == StatusComplete
}

func (s *Session) Disqualified() *Disqualification {
	if s.disqualified == nil {
		return nil
	}
	d := *s.disqualified
	return &d
}

func (s *Session) CurrentStep() Step {
	return s.steps[s.current]
}

func (s *Session) Steps() []Step {
	return s.steps
}

func (s *Session) Pricing() pricing.State {
	return s.pricing
}

// Answers returns a copy of the recorded answers keyed by step id.
func (s *Session) Answers() map[string]entities.ConditionAnswer {
	out := make(map[string]entities.ConditionAnswer, len(s.answers))
	for k, v := range s.answers {
		v.Areas = append([]string(nil), v.Areas...)
		out[string(k)] = v
	}
	return out
}

// Replay feeds recorded answers through a fresh session in step order. It
// stops at the first disqualification or the first unanswered required step;
// answers recorded past that point are rejected as unreachable, and areas
// sent with an option that does not ask for them are rejected.
func Replay(steps []Step, start pricing.State, answers map[string]entities.ConditionAnswer) (*Session, Result, error) {
	s := NewSession(steps, start)
	for id := range answers {
		if _, ok := s.index[StepID(id)]; !ok {
			return nil, Result{}, ErrUnknownStep
		}
	}

	consumed := 0
	for _, st := range steps {
		ans, ok := answers[string(st.ID)]
		if !ok {
			if st.Required {
				break
			}
			if _, err := s.Skip(st.ID); err != nil {
				return nil, Result{}, err
			}
			continue
		}
		consumed++
		res, err := s.Answer(st.ID, Option(ans.Option))
		if err != nil {
			return nil, Result{}, err
		}
		if res.Status == StatusDisqualified {
			return s, res, nil
		}
		if !s.awaiting[st.ID] {
			// Areas only belong to an option that opens the sub-question.
			if len(ans.Areas) > 0 {
				return nil, Result{}, ErrInvalidAreas
			}
			continue
		}
		areas := make([]Area, 0, len(ans.Areas))
		for _, a := range ans.Areas {
			areas = append(areas, Area(a))
		}
		if len(areas) == 0 {
			return s, s.Result(), nil
		}
		if _, err := s.AnswerAreas(st.ID, areas); err != nil {
			return nil, Result{}, err
		}
	}
	if consumed < len(answers) {
		return nil, Result{}, ErrStepNotReachable
	}
	return s, s.Result(), nil
}
