// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tvpar

import (
	"github.com/changtommy16/neurolib-1/shape"
)

// Change is one scheduled transition of one named simulation parameter, from
// an initial value to a target value over a time window, per a shape function.
// The public fields describe the change at registration; Params.AddChange
// validates them and stores a copy, which is immutable thereafter.
// If HasInit is not set, the initial value chains: at materialization it
// resolves to whatever value the parameter holds at this change's start time
// (baseline, or the value produced by earlier changes), so phases declared in
// any order dovetail smoothly.
type Change struct {
	Param      string  `desc:"name of the target simulation parameter -- the engine is name-agnostic"`
	Start      float32 `desc:"start of the change window in msec -- must be >= 0 and < End"`
	End        float32 `desc:"end of the change window in msec -- must be <= the engine duration"`
	Target     float32 `desc:"value approached by the end of the window -- persists after the window closes"`
	Mode       string  `desc:"shape mode name: step, ramp, exponential, gaussian, sine"`
	ShapeParam float32 `desc:"optional shape tuning value (exponential tau, gaussian width, sine frequency as window fractions) -- 0 uses the shape-specific default"`
	Init       float32 `desc:"explicit initial value -- only used if HasInit is set"`
	HasInit    bool    `desc:"use the explicit Init value instead of chaining from the value in effect at Start"`

	shp  shape.Shapes // resolved from Mode at registration
	seq  int          // declaration order within the owning engine
	init float32      // resolved initial value: Init if HasInit, else chained
}

// IsActive returns true if given time falls within the change window,
// inclusive of both endpoints.
func (c *Change) IsActive(t float32) bool {
	return t >= c.Start && t <= c.End
}

// Value returns the parameter value this change produces at given time:
// the resolved initial value before the window, the target after it
// (changes persist -- reversion must be a further explicit change), and the
// shape-enveloped interpolation between the two within it.
// Meaningful on changes held by an engine, where the initial value has been
// resolved.
func (c *Change) Value(t float32) float32 {
	switch {
	case t < c.Start:
		return c.init
	case t > c.End:
		return c.Target
	}
	p := (t - c.Start) / (c.End - c.Start)
	return c.init + (c.Target-c.init)*shape.Eval(c.shp, p, c.ShapeParam)
}
