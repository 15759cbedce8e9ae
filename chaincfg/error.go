// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/pkt-cash/sidechaind/btcutil/er"
)

// Err is the type of every error returned by the chaincfg package.
var Err er.ErrorType = er.NewErrorType("chaincfg.Err")

var (
	// ErrUnknownNetwork describes a lookup of a network name which is not
	// registered.
	ErrUnknownNetwork = Err.CodeWithDetail("ErrUnknownNetwork",
		"unknown network")

	// ErrDuplicateNet describes an error where the parameters for a
	// network could not be registered due to a network of the same name
	// already being registered.
	ErrDuplicateNet = Err.CodeWithDetail("ErrDuplicateNet",
		"duplicate network")

	// ErrInvalidProfile describes network parameters which violate one of
	// the rules checked by Params.Validate or by the registry.  The
	// message names the rule which failed.
	ErrInvalidProfile = Err.CodeWithDetail("ErrInvalidProfile",
		"invalid network parameters")

	// ErrGenesisHashMismatch describes a genesis block whose serialization
	// does not agree with the declared header, hash or first checkpoint.
	ErrGenesisHashMismatch = Err.CodeWithDetail("ErrGenesisHashMismatch",
		"genesis block does not match declared hash")

	// ErrDeploymentBitCollision describes two deployments of the same
	// network signalling on the same version bit.
	ErrDeploymentBitCollision = Err.CodeWithDetail("ErrDeploymentBitCollision",
		"deployments share a version bit")

	// ErrUnknownHDKeyID describes an error where the provided id which
	// is intended to identify the network for a hierarchical deterministic
	// private extended key is not registered.
	ErrUnknownHDKeyID = Err.CodeWithDetail("ErrUnknownHDKeyID",
		"unknown hd private extended key bytes")
)
