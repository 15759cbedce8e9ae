// Copyright (c) 2016-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/pkt-cash/sidechaind/btcutil/er"
	"github.com/pkt-cash/sidechaind/chaincfg"
	"github.com/pkt-cash/sidechaind/pktlog/log"
)

// ThresholdState define the various threshold states used when voting on
// consensus changes.
type ThresholdState byte

// These constants are used to identify specific threshold states.
const (
	// ThresholdDefined is the first state for each deployment and is the
	// state for the genesis block has by definition for all deployments.
	ThresholdDefined ThresholdState = iota

	// ThresholdStarted is the state for a deployment once its start time
	// has been reached.
	ThresholdStarted

	// ThresholdLockedIn is the state for a deployment during the retarget
	// period which is after the ThresholdStarted state period and the
	// number of blocks that have voted for the deployment equal or exceed
	// the required number of votes for the deployment.
	ThresholdLockedIn

	// ThresholdActive is the state for a deployment for all blocks after a
	// retarget period in which the deployment was in the ThresholdLockedIn
	// state.
	ThresholdActive

	// ThresholdFailed is the state for a deployment once its expiration
	// time has been reached and it did not reach the ThresholdLockedIn
	// state.
	ThresholdFailed

	// numThresholdsStates is the maximum number of threshold states used in
	// tests.
	numThresholdsStates
)

// thresholdStateStrings is a map of ThresholdState values back to their
// constant names for pretty printing.
var thresholdStateStrings = map[ThresholdState]string{
	ThresholdDefined:  "ThresholdDefined",
	ThresholdStarted:  "ThresholdStarted",
	ThresholdLockedIn: "ThresholdLockedIn",
	ThresholdActive:   "ThresholdActive",
	ThresholdFailed:   "ThresholdFailed",
}

// String returns the ThresholdState as a human-readable name.
func (t ThresholdState) String() string {
	if s := thresholdStateStrings[t]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ThresholdState (%d)", int(t))
}

// IsTerminal tells whether no further window can change the state.
func (t ThresholdState) IsTerminal() bool {
	return t == ThresholdActive || t == ThresholdFailed
}

// WindowObservation is what the chain reports about one completed
// confirmation window: the median time of the window and how many of its
// blocks signalled the deployment.
type WindowObservation struct {
	MedianTime  int64  `json:"medianTime"`
	SignalCount uint32 `json:"signalCount"`
}

// thresholdConditionChecker provides a generic interface that is invoked to
// determine when a consensus rule change threshold should be changed.
type thresholdConditionChecker interface {
	// BeginTime returns the unix timestamp for the median block time after
	// which voting on a rule change starts (at the next window).
	BeginTime() int64

	// EndTime returns the unix timestamp for the median block time after
	// which an attempted rule change fails if it has not already been
	// locked in or activated.
	EndTime() int64

	// RuleChangeActivationThreshold is the number of blocks for which the
	// condition must be true in order to lock in a rule change.
	RuleChangeActivationThreshold() uint32

	// MinerConfirmationWindow is the number of blocks in each threshold
	// state retarget window.
	MinerConfirmationWindow() uint32

	// Forced tells whether the rule change activates at BeginTime without
	// any vote.
	Forced() bool
}

// deploymentChecker provides a thresholdConditionChecker which can be used
// to test a specific deployment rule.
type deploymentChecker struct {
	deployment *chaincfg.Deployment
	params     *chaincfg.Params
}

// Ensure the deploymentChecker type implements the thresholdConditionChecker
// interface.
var _ thresholdConditionChecker = deploymentChecker{}

func (c deploymentChecker) BeginTime() int64 {
	return c.deployment.StartTime
}

func (c deploymentChecker) EndTime() int64 {
	return c.deployment.Timeout
}

func (c deploymentChecker) RuleChangeActivationThreshold() uint32 {
	return c.deployment.EffectiveThreshold(c.params)
}

func (c deploymentChecker) MinerConfirmationWindow() uint32 {
	return c.deployment.EffectiveWindow(c.params)
}

func (c deploymentChecker) Forced() bool {
	return c.deployment.Force
}

// nextThresholdState returns the state after one more completed window.
func nextThresholdState(state ThresholdState, checker thresholdConditionChecker,
	obs *WindowObservation) ThresholdState {

	if checker.Forced() {
		// Forced rule changes skip voting entirely and can't fail.
		if state == ThresholdDefined && obs.MedianTime >= checker.BeginTime() {
			return ThresholdActive
		}
		return state
	}

	switch state {
	case ThresholdDefined:
		// The deployment of the rule change fails if it expires
		// before it is accepted and locked in.
		if obs.MedianTime > checker.EndTime() {
			return ThresholdFailed
		}

		// The state for the rule moves to the started state once its
		// start time has been reached (and it hasn't already expired
		// per the above).
		if obs.MedianTime >= checker.BeginTime() {
			return ThresholdStarted
		}

	case ThresholdStarted:
		// The deployment of the rule change fails if it expires
		// before it is accepted and locked in.
		if obs.MedianTime > checker.EndTime() {
			return ThresholdFailed
		}

		// The state is locked in if the number of blocks in the
		// period that voted for the rule change meets the
		// activation threshold.
		if obs.SignalCount >= checker.RuleChangeActivationThreshold() {
			return ThresholdLockedIn
		}

	case ThresholdLockedIn:
		// The new rule becomes active when its previous state was
		// locked in.
		return ThresholdActive

	case ThresholdActive, ThresholdFailed:
		// Nothing to do if the previous state is active or failed since
		// they are both terminal states.
	}

	return state
}

// thresholdState replays the observed windows from ThresholdDefined.
func thresholdState(name string, checker thresholdConditionChecker,
	history []WindowObservation) (ThresholdState, er.R) {

	window := checker.MinerConfirmationWindow()
	state := ThresholdDefined
	for i := range history {
		obs := &history[i]
		if obs.SignalCount > window {
			return ThresholdDefined, ErrInvalidObservation.New(fmt.Sprintf(
				"window %d of %s has %d signals in a window of %d blocks",
				i, name, obs.SignalCount, window), nil)
		}
		if i > 0 && obs.MedianTime < history[i-1].MedianTime {
			return ThresholdDefined, ErrInvalidObservation.New(fmt.Sprintf(
				"median time of window %d of %s goes backwards", i, name), nil)
		}

		next := nextThresholdState(state, checker, obs)
		if next != state {
			log.Tracef("Deployment [%s] window [%d] median time [%d] signals [%d]: %s -> %s",
				name, i, obs.MedianTime, obs.SignalCount, state, next)
			state = next
		}
	}
	return state, nil
}

// DeploymentState returns the state of deployment d of network p after the
// given completed windows, oldest first.  The state is recomputed from
// ThresholdDefined on every call.
//
// If d is required and has failed, the failed state is returned together
// with ErrRequiredDeploymentFailed.
//
// This function is safe for concurrent access.
func DeploymentState(p *chaincfg.Params, d *chaincfg.Deployment,
	history []WindowObservation) (ThresholdState, er.R) {

	if d == nil {
		return ThresholdDefined, AssertError("nil deployment")
	}
	checker := deploymentChecker{deployment: d, params: p}
	state, err := thresholdState(d.Name, checker, history)
	if err != nil {
		return state, err
	}
	if state == ThresholdFailed && d.Required {
		return state, ErrRequiredDeploymentFailed.New(
			fmt.Sprintf("[%s] on [%s]", d.Name, p.Name), nil)
	}
	return state, nil
}

// IsDeploymentActive returns true if the named deployment of network p is
// active after the given windows.  A required deployment which failed is
// reported with ErrRequiredDeploymentFailed.
func IsDeploymentActive(p *chaincfg.Params, name string,
	history []WindowObservation) (bool, er.R) {

	d, ok := p.Deployment(name)
	if !ok {
		return false, DeploymentError(name)
	}
	state, err := DeploymentState(p, d, history)
	if err != nil {
		return false, err
	}
	return state == ThresholdActive, nil
}

// DeploymentStatus is the evaluated state of one deployment.
type DeploymentStatus struct {
	Deployment chaincfg.Deployment
	State      ThresholdState
}

// DeploymentStates evaluates every deployment of network p, in canonical
// order, against its history keyed by deployment name.  Deployments without
// history are ThresholdDefined.
//
// An invalid observation aborts the evaluation.  Required deployments which
// failed don't: every state is returned along with the first
// ErrRequiredDeploymentFailed.
func DeploymentStates(p *chaincfg.Params,
	history map[string][]WindowObservation) ([]DeploymentStatus, er.R) {

	for name := range history {
		if _, ok := p.Deployment(name); !ok {
			return nil, DeploymentError(name)
		}
	}

	var failed er.R
	deploys := p.Deploys()
	out := make([]DeploymentStatus, 0, len(deploys))
	for i := range deploys {
		d := &deploys[i]
		state, err := DeploymentState(p, d, history[d.Name])
		if err != nil {
			if !ErrRequiredDeploymentFailed.Is(err) {
				return nil, err
			}
			if failed == nil {
				failed = err
			}
		}
		out = append(out, DeploymentStatus{Deployment: *d, State: state})
	}
	return out, failed
}

// WindowIndex returns the index of the confirmation window of deployment d
// which contains the block at height, or -1 for negative heights and
// deployments without a window.
func WindowIndex(p *chaincfg.Params, d *chaincfg.Deployment, height int32) int32 {
	if height < 0 || d == nil {
		return -1
	}
	window := int32(d.EffectiveWindow(p))
	if window <= 0 {
		return -1
	}
	return height / window
}
