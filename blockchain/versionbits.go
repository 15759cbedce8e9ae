// Copyright (c) 2016-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/pkt-cash/sidechaind/chaincfg"
)

const (
	// vbLegacyBlockVersion is the highest legacy block version before the
	// version bits scheme became active.
	vbLegacyBlockVersion = 4

	// vbTopBits defines the bits to set in the version to signal that the
	// version bits scheme is being used.
	vbTopBits = 0x20000000

	// vbTopMask is the bitmask to use to determine whether or not the
	// version bits scheme is in use.
	vbTopMask = 0xe0000000

	// vbNumBits is the total number of bits available for use with the
	// version bits scheme.
	vbNumBits = 29
)

// SignalsDeployment tells whether a block of the given version votes for
// deployment d.
func SignalsDeployment(version int32, d *chaincfg.Deployment) bool {
	v := uint32(version)
	if v&vbTopMask != vbTopBits {
		return false
	}
	if d.Bit >= vbNumBits {
		return false
	}
	return v&(uint32(1)<<d.Bit) != 0
}

// CountSignals returns how many of the block versions vote for deployment d.
// This is the SignalCount of a WindowObservation.
func CountSignals(versions []int32, d *chaincfg.Deployment) uint32 {
	var n uint32
	for _, v := range versions {
		if SignalsDeployment(v, d) {
			n++
		}
	}
	return n
}

// ComputeBlockVersion returns the version a miner should use for the next
// block given the current state of every deployment of p: the version bits
// top bits with the bit of every started or locked in deployment set.
// Deployments missing from states are treated as ThresholdDefined.
func ComputeBlockVersion(p *chaincfg.Params, states map[string]ThresholdState) int32 {
	expectedVersion := uint32(vbTopBits)
	for _, d := range p.Deployments {
		switch states[d.Name] {
		case ThresholdStarted, ThresholdLockedIn:
			expectedVersion |= uint32(1) << d.Bit
		}
	}
	return int32(expectedVersion)
}

// IsLegacyVersion tells whether a block version predates the version bits
// scheme.
func IsLegacyVersion(version int32) bool {
	return version >= 0 && version <= vbLegacyBlockVersion
}
