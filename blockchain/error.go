// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/pkt-cash/sidechaind/btcutil/er"
)

// Err is the type of every error returned by the blockchain package.
var Err er.ErrorType = er.NewErrorType("blockchain.Err")

var (
	// ErrRequiredDeploymentFailed indicates a deployment which the network
	// marks as required has reached the failed state.  The state is still
	// returned alongside the error, it is up to the caller to decide how to
	// react.
	ErrRequiredDeploymentFailed = Err.CodeWithDetail("ErrRequiredDeploymentFailed",
		"required deployment failed")

	// ErrInvalidObservation indicates a window observation which cannot
	// come from a real chain, such as more signalling blocks than the
	// window holds.
	ErrInvalidObservation = Err.CodeWithDetail("ErrInvalidObservation",
		"invalid window observation")
)

// DeploymentError identifies an error that indicates a deployment name was
// specified that does not exist.
func DeploymentError(name string) er.R {
	return er.New(fmt.Sprintf("deployment %s does not exist", name))
}

// AssertError identifies an error that indicates an internal code consistency
// issue and should be treated as a critical and unrecoverable error.
func AssertError(s string) er.R {
	return er.New("assertion failed: " + s)
}
