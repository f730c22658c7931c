// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package neurolib is the repository for time-varying parameter modulation of
Wilson-Cowan neural-mass simulations: one continuous run can pass through
distinct physiological phases (baseline, stimulus, seizure, suppression)
without restarting the stepper.

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* tvpar: the core engine -- scheduled parameter changes on a discretized
time grid, with chained initial values, declaration-order overlap
precedence, and per-parameter series materialization.

* shape: the envelope shape functions (step, ramp, exponential, gaussian,
sine) that govern how a parameter transitions within its change window.

* ect: the convenience layer that translates named electroconvulsive
therapy phases (stimulus, ictal, post-ictal) into parameter changes.

* wc: the Wilson-Cowan parameter vocabulary, defaults, and the stepper-side
contract for applying materialized series index by index.

* examples: these compile into runnable programs; examples/ect builds the
standard ECT protocol and saves the materialized parameter table.
*/
package neurolib
