package session

import (
	"go.uber.org/zap"

	"github.com/theirongolddev/savecalc/internal/scenario"
)

// Session bundles the state holders for one run of the calculator.
type Session struct {
	Form    *Form
	Results *Results
	Mode    *Mode

	log   *zap.Logger
	stale bool
}

// New returns an empty session starting in the given display mode. A nil
// logger disables logging.
func New(mode DisplayMode, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		Form:    &Form{},
		Results: &Results{},
		Mode:    &Mode{value: mode},
		log:     log,
	}
	s.Form.OnChange(s.fieldEdited)
	return s
}

func (s *Session) fieldEdited(field scenario.Field, value string) {
	s.stale = true
	s.log.Debug("field edited", zap.String("field", field.Key()), zap.Int("length", len(value)))
}

// Stale reports whether the form was edited after the held result was
// computed. It is false while no result is held.
func (s *Session) Stale() bool {
	_, ok := s.Results.Get()
	return ok && s.stale
}

// Calculate computes scenarios from the current form snapshot. On success the
// held result set is replaced; on failure it is left untouched and the
// *scenario.ParseError is returned.
func (s *Session) Calculate() (scenario.ResultSet, error) {
	in := s.Form.All()
	rs, err := scenario.Compute(in)
	if err != nil {
		s.log.Info("calculation rejected",
			zap.String("targetSavings", in.TargetSavings),
			zap.String("durationMonths", in.DurationMonths),
			zap.String("monthlyIncome", in.MonthlyIncome),
			zap.Error(err),
		)
		return scenario.ResultSet{}, err
	}

	s.Results.Set(rs)
	s.stale = false
	s.log.Debug("calculation complete",
		zap.Float64("target", rs.Inputs.Target),
		zap.Int("duration", rs.Inputs.Duration),
		zap.Float64("income", rs.Inputs.Income),
		zap.Int("scenarios", len(rs.Scenarios)),
	)
	return rs, nil
}

// ToggleMode flips the display mode.
func (s *Session) ToggleMode() DisplayMode {
	m := s.Mode.Toggle()
	s.log.Debug("display mode toggled", zap.Stringer("mode", m))
	return m
}

// Reset clears the form and any held result. The display mode is kept.
func (s *Session) Reset() {
	s.Form.Reset()
	s.Results.Clear()
	s.stale = false
}
