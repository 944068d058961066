// Package session owns the interactive state of one psychrometric analysis:
// the pressure in effect, the manual-input point, the pending click selection
// and the process log. All mutation funnels through the methods here; chart
// curves themselves stay caller-side and are regenerated after any pressure
// change.
package session

import (
	"fmt"
	"sync"

	"Psychro/internal/calc/point"
	"Psychro/internal/calc/process"
	"Psychro/internal/chart"
	"Psychro/internal/psychro"
)

// Defaults match the manual-input spin boxes: sea level, 25 °C, 50% RH.
const (
	defaultAltitudeM = 0.0
	defaultDryBulbC  = 25.0
	defaultRelHumPct = 50.0
)

// Session is safe for concurrent callers; each operation runs to completion
// under the lock before the next is accepted.
type Session struct {
	mu sync.Mutex

	altitudeM  float64
	pressurePa float64

	dryBulbC  float64
	relHumPct float64
	current   *point.Result

	pending []chart.Point
	log     []process.Result
}

// ClickOutcome reports what a submitted click did. A rejected click changes
// nothing and carries no error: silently ignoring non-physical clicks is the
// designed behavior, not a failure.
type ClickOutcome struct {
	Accepted     bool            `json:"accepted"`
	PendingCount int             `json:"pending_count"`
	Process      *process.Result `json:"process,omitempty"`
}

// State is a read-only snapshot for the caller's display.
type State struct {
	AltitudeM    float64          `json:"altitude_m"`
	PressurePa   float64          `json:"pressure_pa"`
	Current      *point.Result    `json:"current,omitempty"`
	Pending      []chart.Point    `json:"pending"`
	PendingCount int              `json:"pending_count"`
	Log          []process.Result `json:"log"`
}

func New() *Session {
	s := &Session{
		altitudeM:  defaultAltitudeM,
		pressurePa: psychro.PressureFromAltitude(defaultAltitudeM),
		dryBulbC:   defaultDryBulbC,
		relHumPct:  defaultRelHumPct,
	}
	s.recomputeCurrent()
	return s
}

// SetAltitude is the single pressure mutation point. It resets the pending
// selection and the recorded processes (both were computed at the old
// pressure), recomputes the manual-input point at the new pressure and
// returns it. The caller regenerates its curve set from the returned value.
func (s *Session) SetAltitude(altitudeM float64) (float64, error) {
	if altitudeM < 0 || altitudeM > 5000 {
		return 0, fmt.Errorf("invalid altitude")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.altitudeM = altitudeM
	s.pressurePa = psychro.PressureFromAltitude(altitudeM)
	s.pending = nil
	s.log = nil
	s.recomputeCurrent()
	return s.pressurePa, nil
}

// SetInputs replaces the manual-input point. The point is either fully
// recomputed or fully absent: on a physically undefined state the previous
// point is discarded and ErrPointUndefined is reported.
func (s *Session) SetInputs(dryBulbC, relHumPct float64) (point.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dryBulbC = dryBulbC
	s.relHumPct = relHumPct
	if err := s.recomputeCurrent(); err != nil {
		return point.Result{}, err
	}
	return *s.current, nil
}

func (s *Session) recomputeCurrent() error {
	res, err := point.Calculate(point.Input{
		AltitudeM: s.altitudeM,
		DryBulbC:  s.dryBulbC,
		RelHumPct: s.relHumPct,
	})
	if err != nil {
		s.current = nil
		return err
	}
	s.current = &res
	return nil
}

// SubmitClick validates a chart click against the saturation envelope at the
// current pressure. Invalid clicks are ignored without any state change. The
// second accepted click completes a process, appends it to the log and
// empties the pending selection.
func (s *Session) SubmitClick(dryBulbC, humidityRatio float64) ClickOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := process.State{DryBulbC: dryBulbC, HumidityRatio: humidityRatio}
	if !process.Validate(st, s.pressurePa) {
		return ClickOutcome{Accepted: false, PendingCount: len(s.pending)}
	}

	s.pending = append(s.pending, chart.Point{T: dryBulbC, W: humidityRatio})
	if len(s.pending) < 2 {
		return ClickOutcome{Accepted: true, PendingCount: len(s.pending)}
	}

	a, b := s.pending[0], s.pending[1]
	res, err := process.Calculate(process.Input{
		PressurePa: s.pressurePa,
		A:          process.State{DryBulbC: a.T, HumidityRatio: a.W},
		B:          process.State{DryBulbC: b.T, HumidityRatio: b.W},
	})
	s.pending = nil
	if err != nil {
		// Both points passed Validate, so this cannot happen; drop the pair
		// rather than keep a selection at an inconsistent state.
		return ClickOutcome{Accepted: true, PendingCount: 0}
	}
	s.log = append(s.log, res)
	return ClickOutcome{Accepted: true, PendingCount: 0, Process: &res}
}

// Clear empties the pending selection and the process log. Idempotent. The
// manual-input point survives a clear.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
	s.log = nil
}

// Pressure returns the pressure currently in effect.
func (s *Session) Pressure() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pressurePa
}

// Snapshot returns a copy of the display-relevant state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		AltitudeM:    s.altitudeM,
		PressurePa:   s.pressurePa,
		Pending:      append([]chart.Point{}, s.pending...),
		PendingCount: len(s.pending),
		Log:          append([]process.Result{}, s.log...),
	}
	if s.current != nil {
		cur := *s.current
		st.Current = &cur
	}
	return st
}
