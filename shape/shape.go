// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package shape provides the envelope shape functions used to drive scheduled
parameter transitions over a time window.  Each shape maps normalized window
progress in the 0..1 range to an envelope value, also in the 0..1 range,
which the caller scales by its own (target - initial) delta.

Step and ramp are exact at both window endpoints.  Exponential approaches 1
asymptotically and the default time constant brings it within 5e-5 of 1 at
the end of the window.  Gaussian is a unimodal bump: exactly 1 at the window
midpoint and near 0 at both ends, for transient excursions that return toward
the starting value.  Sine defaults to a monotone quarter wave reaching 1 at
the end of the window; other frequencies give oscillatory envelopes.
*/
package shape

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/goki/ki/kit"
)

// Shapes are the envelope shape functions for scheduled parameter changes
type Shapes int32

//go:generate stringer -type=Shapes

var KiT_Shapes = kit.Enums.AddEnum(ShapesN, false, nil)

func (ev Shapes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Shapes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Step holds the full envelope value over the entire window -- the
	// target applies immediately at the window start (degenerate case of
	// ramp with zero rise time)
	Step Shapes = iota

	// Ramp rises linearly from 0 to 1 across the window
	Ramp

	// Exponential rises as 1 - exp(-p/tau) -- approaches 1 asymptotically
	// with tau controlling the approach rate as a fraction of the window
	Exponential

	// Gaussian is a unimodal bump centered on the window midpoint, exactly
	// 1 at the center and near 0 at both ends
	Gaussian

	// Sine is sin(2*pi*f*p) with f in cycles per window -- the default
	// quarter wave rises monotonically to 1 at the window end
	Sine

	ShapesN
)

// Shape-specific defaults used when no shape param is given.
const (
	// ExpTauDef is the default exponential time constant, as a fraction of
	// the window: 1 - exp(-1/0.1) leaves the envelope within 5e-5 of 1
	ExpTauDef = 0.1

	// GaussWidthDef is the default gaussian standard deviation, as a
	// fraction of the window
	GaussWidthDef = 0.1

	// SineFreqDef is the default sine frequency in cycles per window --
	// a quarter period, rising monotonically to 1
	SineFreqDef = 0.25
)

// modes maps the lowercase mode-name surface used in change registration
// onto the corresponding shape.
var modes = map[string]Shapes{
	"step":        Step,
	"ramp":        Ramp,
	"exponential": Exponential,
	"gaussian":    Gaussian,
	"sine":        Sine,
}

// FromString returns the shape for given lowercase mode name
// (step, ramp, exponential, gaussian, sine).
// Unknown names return a non-nil error.
func FromString(mode string) (Shapes, error) {
	sh, ok := modes[mode]
	if !ok {
		return ShapesN, fmt.Errorf("shape: unknown mode name: %q", mode)
	}
	return sh, nil
}

// Eval returns the envelope value for given shape at normalized window
// progress p, which is clamped to the 0..1 range.  shapeParam tunes the
// shape (exponential tau, gaussian width, sine frequency) -- pass 0 to get
// the shape-specific default.  Step and ramp ignore it.
func Eval(sh Shapes, p, shapeParam float32) float32 {
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	switch sh {
	case Step:
		return 1
	case Ramp:
		return p
	case Exponential:
		tau := shapeParam
		if tau <= 0 {
			tau = ExpTauDef
		}
		return 1 - math32.Exp(-p/tau)
	case Gaussian:
		sig := shapeParam
		if sig <= 0 {
			sig = GaussWidthDef
		}
		d := p - 0.5
		return math32.Exp(-(d * d) / (2 * sig * sig))
	case Sine:
		frq := shapeParam
		if frq <= 0 {
			frq = SineFreqDef
		}
		return math32.Sin(2 * math32.Pi * frq * p)
	}
	return 0
}
