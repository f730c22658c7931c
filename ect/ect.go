// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ect builds the parameter changes for simulating electroconvulsive
therapy (ECT) phases on a Wilson-Cowan model: a brief excitatory stimulus,
an ictal (seizure) phase with increased excitation, and a post-ictal
suppression phase with increased inhibition.  It is a thin factory over the
tvpar engine: each phase call registers one or two parameter changes with
pre-agreed parameter names and shapes, chaining their initial values off
whatever the preceding phases left in effect.
*/
package ect

import (
	"github.com/changtommy16/neurolib-1/tvpar"
	"github.com/changtommy16/neurolib-1/wc"
)

// Sim schedules ECT phases on an owned time-varying parameter engine.
type Sim struct {
	TVP *tvpar.Params `desc:"the underlying time-varying parameter engine"`
}

// NewSim returns a new ECT simulation for given total duration and
// integration step size, both in msec.
func NewSim(duration, dt float32) (*Sim, error) {
	tp, err := tvpar.NewParams(duration, dt)
	if err != nil {
		return nil, err
	}
	return &Sim{TVP: tp}, nil
}

// AddStimulusPhase registers the brief, strong excitatory input: a step
// change of given amplitude over [start, start+dur] msec.  param selects the
// target parameter; empty applies the stimulus to the external excitatory
// input (exc_ext).
func (es *Sim) AddStimulusPhase(start, dur, amplitude float32, param string) error {
	if param == "" {
		param = wc.ExcExt
	}
	return es.TVP.AddChange(tvpar.Change{
		Param:  param,
		Start:  start,
		End:    start + dur,
		Target: amplitude,
		Mode:   "step",
	})
}

// AddIctalPhase registers the seizure phase: two coupled changes over
// [start, start+dur] msec, raising the excitatory baseline drive
// (exc_ext_baseline) to excIncrease and the excitatory-to-excitatory
// coupling (c_excexc) to excexcIncrease.  mode selects the onset shape;
// empty means step (sudden onset).  Initial values chain off whatever the
// stimulus phase left in effect.
func (es *Sim) AddIctalPhase(start, dur, excIncrease, excexcIncrease float32, mode string) error {
	if mode == "" {
		mode = "step"
	}
	err := es.TVP.AddChange(tvpar.Change{
		Param:  wc.ExcExtBaseline,
		Start:  start,
		End:    start + dur,
		Target: excIncrease,
		Mode:   mode,
	})
	if err != nil {
		return err
	}
	return es.TVP.AddChange(tvpar.Change{
		Param:  wc.CExcExc,
		Start:  start,
		End:    start + dur,
		Target: excexcIncrease,
		Mode:   mode,
	})
}

// AddPostictalPhase registers the post-ictal suppression phase: two coupled
// changes over [start, start+dur] msec, raising the inhibitory baseline
// drive (inh_ext_baseline) to inhIncrease and the inhibitory-to-excitatory
// coupling (c_inhexc) to inhexcIncrease.  mode selects the onset shape;
// empty means ramp (gradual onset).  shapeParam tunes the shape, 0 uses the
// shape default.
func (es *Sim) AddPostictalPhase(start, dur, inhIncrease, inhexcIncrease float32, mode string, shapeParam float32) error {
	if mode == "" {
		mode = "ramp"
	}
	err := es.TVP.AddChange(tvpar.Change{
		Param:      wc.InhExtBaseline,
		Start:      start,
		End:        start + dur,
		Target:     inhIncrease,
		Mode:       mode,
		ShapeParam: shapeParam,
	})
	if err != nil {
		return err
	}
	return es.TVP.AddChange(tvpar.Change{
		Param:      wc.CInhExc,
		Start:      start,
		End:        start + dur,
		Target:     inhexcIncrease,
		Mode:       mode,
		ShapeParam: shapeParam,
	})
}

// TimeVarying materializes the full per-parameter series for all scheduled
// phases, delegating to the owned engine.
func (es *Sim) TimeVarying() map[string][]float32 {
	return es.TVP.Series()
}
