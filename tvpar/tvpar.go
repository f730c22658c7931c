// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tvpar modulates simulation parameters as explicit functions of time,
so a single continuous run can pass through distinct phases (baseline,
stimulus, seizure, suppression) without restarting the stepper.

The engine owns a discretized time grid (duration, dt), per-parameter
baseline values, and an ordered collection of scheduled changes.  On demand
it materializes, per parameter name, a full series of concrete values aligned
to the grid, which the external stepper indexes by simulation step.  The
engine is purely a value generator: it never integrates any dynamics.

Overlap policy: only one change governs a parameter at any instant -- the
last-declared change whose window contains that time wins, so broad default
phases declared first are overridden locally by narrower interventions
declared after.  Outside any window, the most recently started already-ended
change's target persists (changes do not auto-revert), else the baseline
applies.  Changes without an explicit initial value chain off whatever value
is in effect at their own start time, resolved at materialization in
start-time order, so adjacent phases dovetail regardless of declaration
order.
*/
package tvpar

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/changtommy16/neurolib-1/shape"
	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/goki/mat32"
)

// ErrConfig is the configuration error sentinel: invalid time window,
// unknown shape mode, or unknown parameter with no baseline.  All such
// failures are raised synchronously at the call that introduced the bad
// state, wrap this sentinel, and leave the engine unmodified.
var ErrConfig = errors.New("tvpar: invalid configuration")

// Params is the time-varying parameter engine for one simulation run.
// Construct with NewParams, register changes and baselines, then either
// materialize full series up front (Series, Table) or query values lazily
// per step (Value) -- both modes produce identical values for identical
// state.  Not safe for concurrent use; instantiate one engine per run.
type Params struct {
	Duration float32              `desc:"total simulated time in msec -- immutable after construction"`
	Dt       float32              `desc:"integration step size in msec -- immutable after construction"`
	Baseline map[string]float32   `desc:"baseline value per parameter name -- the value in effect when no change applies"`
	Changes  map[string][]*Change `desc:"registered changes per parameter name, in declaration order"`

	nseq int // next declaration sequence number
}

// NewParams returns a new engine for given total duration and step size,
// both in msec.  Both must be positive and dt cannot exceed duration.
func NewParams(duration, dt float32) (*Params, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be > 0, got %g", ErrConfig, duration)
	}
	if dt <= 0 {
		return nil, fmt.Errorf("%w: dt must be > 0, got %g", ErrConfig, dt)
	}
	if dt > duration {
		return nil, fmt.Errorf("%w: dt %g exceeds duration %g", ErrConfig, dt, duration)
	}
	return &Params{
		Duration: duration,
		Dt:       dt,
		Baseline: make(map[string]float32),
		Changes:  make(map[string][]*Change),
	}, nil
}

// NSteps returns the number of grid points: floor(duration/dt) + 1,
// inclusive of both endpoints.
func (tp *Params) NSteps() int {
	// relative epsilon guards against float32 division error when dt
	// evenly divides duration (e.g. 6000 / 0.1 computes as 59999.999)
	return int(mat32.Floor(tp.Duration/tp.Dt*(1+1.0e-6)+1.0e-6)) + 1
}

// TimeAt returns the simulation time of grid point i, = i * dt.
func (tp *Params) TimeAt(i int) float32 {
	return float32(i) * tp.Dt
}

// SetBaseline sets (or overwrites) the baseline value for given parameter
// name.  The baseline applies wherever no change governs the parameter.
func (tp *Params) SetBaseline(param string, val float32) {
	tp.Baseline[param] = val
}

// AddChange validates given change against the grid and appends it to the
// named parameter's list.  Fails fast with an ErrConfig-wrapped error on a
// malformed window or unknown mode, registering nothing.
func (tp *Params) AddChange(ch Change) error {
	if ch.Param == "" {
		return fmt.Errorf("%w: change has no parameter name", ErrConfig)
	}
	if ch.Start < 0 {
		return fmt.Errorf("%w: %s: start time %g is before 0", ErrConfig, ch.Param, ch.Start)
	}
	if ch.Start >= ch.End {
		return fmt.Errorf("%w: %s: start time %g is not before end time %g", ErrConfig, ch.Param, ch.Start, ch.End)
	}
	if ch.End > tp.Duration {
		return fmt.Errorf("%w: %s: end time %g is after duration %g", ErrConfig, ch.Param, ch.End, tp.Duration)
	}
	sh, err := shape.FromString(ch.Mode)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConfig, ch.Param, err)
	}
	ch.shp = sh
	ch.seq = tp.nseq
	tp.nseq++
	tp.Changes[ch.Param] = append(tp.Changes[ch.Param], &ch)
	return nil
}

// resolve returns the named parameter's changes in start-time order
// (declaration order breaking ties), as copies with initial values resolved:
// a change without an explicit initial value takes the value the parameter
// holds at its own start time, evaluated over the already-resolved
// earlier-starting changes, else the baseline.
func (tp *Params) resolve(param string) []*Change {
	chs := tp.Changes[param]
	res := make([]*Change, len(chs))
	for i, c := range chs {
		cc := *c
		res[i] = &cc
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Start != res[j].Start {
			return res[i].Start < res[j].Start
		}
		return res[i].seq < res[j].seq
	})
	for i, c := range res {
		if c.HasInit {
			c.init = c.Init
			continue
		}
		c.init = tp.value(param, res[:i], c.Start)
	}
	return res
}

// value evaluates the parameter value at time t over given resolved changes:
// last-declared active change wins; otherwise the most recently started
// already-ended change's target persists; otherwise the baseline (0 if
// never declared).
func (tp *Params) value(param string, res []*Change, t float32) float32 {
	var act *Change
	for _, c := range res {
		if c.IsActive(t) && (act == nil || c.seq > act.seq) {
			act = c
		}
	}
	if act != nil {
		return act.Value(t)
	}
	var past *Change
	for _, c := range res {
		if t <= c.End {
			continue
		}
		if past == nil || c.Start > past.Start || (c.Start == past.Start && c.seq > past.seq) {
			past = c
		}
	}
	if past != nil {
		return past.Target
	}
	return tp.Baseline[param]
}

// Value returns the value of the named parameter at time t, for steppers
// that query lazily per step instead of materializing full series.
// Identical to the corresponding Series entry at any grid time.  A parameter
// with neither changes nor a baseline fails with an ErrConfig-wrapped error.
func (tp *Params) Value(param string, t float32) (float32, error) {
	if _, hasBase := tp.Baseline[param]; !hasBase && len(tp.Changes[param]) == 0 {
		return 0, fmt.Errorf("%w: no changes or baseline for parameter %q", ErrConfig, param)
	}
	return tp.value(param, tp.resolve(param), t), nil
}

// SeriesFor materializes the full series for one named parameter, one value
// per grid point.  A parameter with neither changes nor a baseline fails
// with an ErrConfig-wrapped error.
func (tp *Params) SeriesFor(param string) ([]float32, error) {
	if _, hasBase := tp.Baseline[param]; !hasBase && len(tp.Changes[param]) == 0 {
		return nil, fmt.Errorf("%w: no changes or baseline for parameter %q", ErrConfig, param)
	}
	res := tp.resolve(param)
	n := tp.NSteps()
	vals := make([]float32, n)
	for i := 0; i < n; i++ {
		vals[i] = tp.value(param, res, tp.TimeAt(i))
	}
	return vals, nil
}

// Series materializes full series for every parameter that has at least one
// registered change or baseline entry: a map from parameter name to one
// value per grid point, ready for the external stepper to index by
// simulation step.  Deterministic: repeated calls without intervening
// registration return identical values.
func (tp *Params) Series() map[string][]float32 {
	srs := make(map[string][]float32, len(tp.Changes)+len(tp.Baseline))
	for param := range tp.Changes {
		srs[param], _ = tp.SeriesFor(param)
	}
	for param := range tp.Baseline {
		if _, ok := srs[param]; !ok {
			srs[param], _ = tp.SeriesFor(param)
		}
	}
	return srs
}

// ParamNames returns the names of all parameters with a change or baseline
// entry, sorted.
func (tp *Params) ParamNames() []string {
	nms := make([]string, 0, len(tp.Changes)+len(tp.Baseline))
	for param := range tp.Changes {
		nms = append(nms, param)
	}
	for param := range tp.Baseline {
		if _, ok := tp.Changes[param]; !ok {
			nms = append(nms, param)
		}
	}
	sort.Strings(nms)
	return nms
}

// LogPrec is precision for saving float values in tables
const LogPrec = 6

// Table materializes all parameter series into an etable.Table with a Time
// column and one column per parameter, one row per grid point, for plotting
// or saving.
func (tp *Params) Table() *etable.Table {
	nms := tp.ParamNames()
	sch := etable.Schema{
		{Name: "Time", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	for _, nm := range nms {
		sch = append(sch, etable.Column{Name: nm, Type: etensor.FLOAT32, CellShape: nil, DimNames: nil})
	}
	dt := &etable.Table{}
	dt.SetMetaData("name", "TimeVaryingParams")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))
	dt.SetFromSchema(sch, tp.NSteps())

	srs := tp.Series()
	for i := 0; i < tp.NSteps(); i++ {
		dt.SetCellFloat("Time", i, float64(tp.TimeAt(i)))
		for _, nm := range nms {
			dt.SetCellFloat(nm, i, float64(srs[nm][i]))
		}
	}
	return dt
}
