// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/pkt-cash/sidechaind/chaincfg/chainhash"
	"github.com/pkt-cash/sidechaind/wire/protocol"
)

var regTestGenesisHash = newHashFromBytesHex("7447440597b4b519bd177c7331bf38ad84169d5e4ea602b70ea7ba9f5faad914")

// RegressionNetParams defines the network parameters for the regression test
// network.  Not to be confused with the test network, this network is
// sometimes simply called "regtest".
var RegressionNetParams = Params{
	Name:          "regtest",
	Net:           protocol.RegTest,
	DefaultPort:   18742,
	MainchainPort: 18443,
	RPCPort:       18743,
	WalletPort:    18745,
	Seeds:         []string{},

	Checkpoints: mustCheckpoints(
		Checkpoint{0, regTestGenesisHash},
	),

	// The header stores the time ahead of the withdrawal bundle.  A
	// bundle of 2d87ce60 followed by zeros is the little-endian
	// timestamp 1624147757 read at the wrong offset, the bundle itself
	// is zero.
	Genesis: GenesisBlock{
		Version:    1,
		Hash:       *regTestGenesisHash,
		MerkleRoot: *genesisMerkleRoot,
		Timestamp:  1624147757,
	},
	GenesisBlock: mustDecodeHex(regTestGenesisBlockHex),

	Pow: PowParams{
		Limit:            sidechainPowLimit,
		Bits:             0x207fffff,
		Chainwork:        big.NewInt(2),
		TargetTimespan:   time.Hour * 24 * 14, // 14 days
		TargetSpacing:    time.Minute * 10,    // 10 minutes
		RetargetInterval: 2016,
		TargetReset:      true,
		NoRetargeting:    true,
	},

	Block: BlockParams{
		BIP34Height:      100000000, // Not active - Permit ver 1 blocks
		BIP34Hash:        nil,
		BIP65Height:      1351, // Used by regression tests
		BIP66Height:      1251, // Used by regression tests
		PruneAfterHeight: 1000,
		KeepBlocks:       10000,
		MaxTipAge:        time.Second * 0xffffffff,
		SlowHeight:       0,
	},

	BIP30: map[int32]chainhash.Hash{},

	// Consensus rule change deployments.
	//
	// The miner confirmation window is defined as:
	//   target proof of work timespan / target proof of work spacing
	RuleChangeActivationThreshold: 108, // 75%  of MinerConfirmationWindow
	MinerConfirmationWindow:       144,
	Deployments: []Deployment{
		{
			Name:      "csv",
			Bit:       0,
			StartTime: 0,
			Timeout:   TimeoutNever,
			Threshold: -1,
			Window:    -1,
			Force:     true,
		},
		{
			Name:      "segwit",
			Bit:       1,
			StartTime: StartAlways,
			Timeout:   TimeoutNever,
			Threshold: -1,
			Window:    -1,
			Required:  true,
		},
		{
			Name:      "segsignal",
			Bit:       4,
			StartTime: TimeoutNever, // Never starts
			Timeout:   TimeoutNever,
			Threshold: 269,
			Window:    336,
		},
		{
			Name:      "testdummy",
			Bit:       28,
			StartTime: 0,
			Timeout:   TimeoutNever,
			Threshold: -1,
			Window:    -1,
			Force:     true,
		},
	},

	KeyPrefix: KeyPrefix{
		PrivKey:    0xef,
		XPubKey:    0x043587cf,
		XPrivKey:   0x04358394,
		XPubKey58:  "tpub",
		XPrivKey58: "tprv",
		CoinType:   1,
	},
	AddressPrefix: AddressPrefix{
		PubKeyHash: 0x6f, // starts with m or n
		ScriptHash: 0xc4, // starts with 2
		Bech32:     "scrt",
	},

	HalvingInterval: 150,

	RequireStandard: false,
	SelfConnect:     true,
	RequestMempool:  true,

	MinRelay:   1000,
	FeeRate:    20000,
	MaxFeeRate: 60000,
}
