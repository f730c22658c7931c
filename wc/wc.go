// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package wc provides the Wilson-Cowan two-population neural-mass parameter
set: the fixed parameter-name vocabulary shared with the time-varying
parameter engine, default values, and the stepper-side contract for
overwriting parameters from materialized series, one grid index at a time.
Integrating the Wilson-Cowan dynamics is the stepper's own concern, not
this package's.
*/
package wc

import "fmt"

// Names of the modulatable Wilson-Cowan parameters, as used in change
// registration and in materialized series keys.
const (
	ExcExt         = "exc_ext"
	InhExt         = "inh_ext"
	ExcExtBaseline = "exc_ext_baseline"
	InhExtBaseline = "inh_ext_baseline"
	CExcExc        = "c_excexc"
	CExcInh        = "c_excinh"
	CInhExc        = "c_inhexc"
	CInhInh        = "c_inhinh"
)

// Params are the Wilson-Cowan population parameters subject to time-varying
// modulation, plus the population time constants and transfer-function
// gains.  Zero value is not usable; call Defaults first.
type Params struct {
	TauExc  float32 `def:"2.5" desc:"excitatory population time constant in msec"`
	TauInh  float32 `def:"3.75" desc:"inhibitory population time constant in msec"`
	AExc    float32 `def:"1.5" desc:"excitatory transfer function gain"`
	AInh    float32 `def:"1.5" desc:"inhibitory transfer function gain"`
	MuExc   float32 `def:"3" desc:"excitatory transfer function threshold"`
	MuInh   float32 `def:"3" desc:"inhibitory transfer function threshold"`
	CExcExc float32 `def:"16" desc:"excitatory-to-excitatory coupling"`
	CExcInh float32 `def:"15" desc:"excitatory-to-inhibitory coupling"`
	CInhExc float32 `def:"12" desc:"inhibitory-to-excitatory coupling"`
	CInhInh float32 `def:"3" desc:"inhibitory-to-inhibitory coupling"`
	ExcExt  float32 `def:"0" desc:"external input to the excitatory population"`
	InhExt  float32 `def:"0" desc:"external input to the inhibitory population"`
	ExcBase float32 `def:"0" desc:"baseline external drive to the excitatory population"`
	InhBase float32 `def:"0" desc:"baseline external drive to the inhibitory population"`
}

func (wp *Params) Defaults() {
	wp.TauExc = 2.5
	wp.TauInh = 3.75
	wp.AExc = 1.5
	wp.AInh = 1.5
	wp.MuExc = 3
	wp.MuInh = 3
	wp.CExcExc = 16
	wp.CExcInh = 15
	wp.CInhExc = 12
	wp.CInhInh = 3
	wp.ExcExt = 0
	wp.InhExt = 0
	wp.ExcBase = 0
	wp.InhBase = 0
}

// SetByName sets the named modulatable parameter.  Unknown names return a
// non-nil error.
func (wp *Params) SetByName(name string, val float32) error {
	switch name {
	case ExcExt:
		wp.ExcExt = val
	case InhExt:
		wp.InhExt = val
	case ExcExtBaseline:
		wp.ExcBase = val
	case InhExtBaseline:
		wp.InhBase = val
	case CExcExc:
		wp.CExcExc = val
	case CExcInh:
		wp.CExcInh = val
	case CInhExc:
		wp.CInhExc = val
	case CInhInh:
		wp.CInhInh = val
	default:
		return fmt.Errorf("wc: unknown parameter name: %q", name)
	}
	return nil
}

// ValByName returns the named modulatable parameter value.  Unknown names
// return a non-nil error.
func (wp *Params) ValByName(name string) (float32, error) {
	switch name {
	case ExcExt:
		return wp.ExcExt, nil
	case InhExt:
		return wp.InhExt, nil
	case ExcExtBaseline:
		return wp.ExcBase, nil
	case InhExtBaseline:
		return wp.InhBase, nil
	case CExcExc:
		return wp.CExcExc, nil
	case CExcInh:
		return wp.CExcInh, nil
	case CInhExc:
		return wp.CInhExc, nil
	case CInhInh:
		return wp.CInhInh, nil
	}
	return 0, fmt.Errorf("wc: unknown parameter name: %q", name)
}

// SetFromSeries overwrites each parameter present in given materialized
// series with its value at given grid index, before the stepper advances its
// own state at that index.  Parameters not present in the series keep their
// current values.  Series keys outside the vocabulary, and indexes outside a
// series, are ignored: the series may carry parameters for other model
// components.
func (wp *Params) SetFromSeries(series map[string][]float32, idx int) {
	for name, vals := range series {
		if idx < 0 || idx >= len(vals) {
			continue
		}
		wp.SetByName(name, vals[idx]) // ignore non-vocabulary names
	}
}
