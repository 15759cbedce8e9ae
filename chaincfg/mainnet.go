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

var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// sidechainPowLimit is the highest proof of work value a sidechain
	// block can have.  It is the value 2^255 - 1.
	sidechainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

	mainGenesisHash = newHashFromBytesHex("654601393cd0ee8b706ece50e23e3ce8069265747900ad6a6690a68cd827b716")
)

// MainNetParams defines the network parameters for the main sidechain network.
var MainNetParams = Params{
	Name:          "main",
	Net:           protocol.MainNet,
	DefaultPort:   8271,
	MainchainPort: 8332,
	RPCPort:       8272,
	WalletPort:    8274,
	Seeds:         []string{},

	Checkpoints: mustCheckpoints(
		Checkpoint{0, mainGenesisHash},
	),

	// The header stores the time ahead of the withdrawal bundle.  A
	// bundle of 8ccd7563 followed by zeros is the little-endian
	// timestamp 1668664716 read at the wrong offset, the bundle itself
	// is zero.
	Genesis: GenesisBlock{
		Version:    1,
		Hash:       *mainGenesisHash,
		MerkleRoot: *genesisMerkleRoot,
		Timestamp:  1668664716,
	},
	GenesisBlock: mustDecodeHex(mainGenesisBlockHex),

	Pow: PowParams{
		Limit:            sidechainPowLimit,
		Bits:             0x1d00ffff,
		Chainwork:        newBigFromHex("0259c9b7d8c7779d29a1188f"),
		TargetTimespan:   time.Hour * 24 * 14, // 14 days
		TargetSpacing:    time.Minute * 10,    // 10 minutes
		RetargetInterval: 2016,
		TargetReset:      false,
		NoRetargeting:    true,
	},

	Block: BlockParams{
		BIP34Height:      1,
		BIP34Hash:        &chainhash.Hash{},
		BIP65Height:      0,
		BIP66Height:      0,
		PruneAfterHeight: 1000,
		KeepBlocks:       288,
		MaxTipAge:        time.Hour * 24,
		SlowHeight:       325000,
	},

	BIP30: map[int32]chainhash.Hash{
		91842: *newHashFromBytesHex("eccae000e3c8e4e093936360431f3b7603c563c1ff6181390a4d0a0000000000"),
		91880: *newHashFromBytesHex("21d77ccb4c08386a04ac0196ae10f6a1d2c2a377558ca190f143070000000000"),
	},

	// Consensus rule change deployments.
	//
	// The miner confirmation window is defined as:
	//   target proof of work timespan / target proof of work spacing
	RuleChangeActivationThreshold: 1916, // 95% of MinerConfirmationWindow
	MinerConfirmationWindow:       2016,
	Deployments: []Deployment{
		{
			Name:      "csv",
			Bit:       0,
			StartTime: 1462060800, // May 1st, 2016
			Timeout:   1493596800, // May 1st, 2017
			Threshold: -1,
			Window:    -1,
			Force:     true,
		},
		{
			Name:      "segwit",
			Bit:       1,
			StartTime: 1479168000, // November 15, 2016 UTC
			Timeout:   1510704000, // November 15, 2017 UTC
			Threshold: -1,
			Window:    -1,
			Required:  true,
		},
		{
			Name:      "segsignal",
			Bit:       4,
			StartTime: 1496275200, // June 1st, 2017
			Timeout:   1510704000, // November 15, 2017 UTC
			Threshold: 269,        // 80%
			Window:    336,        // ~2.33 days
		},
		{
			Name:      "testdummy",
			Bit:       28,
			StartTime: 1199145601, // January 1, 2008 UTC
			Timeout:   1230767999, // December 31, 2008 UTC
			Threshold: -1,
			Window:    -1,
			Force:     true,
		},
	},

	KeyPrefix: KeyPrefix{
		PrivKey:    0x80,
		XPubKey:    0x0488b21e,
		XPrivKey:   0x0488ade4,
		XPubKey58:  "xpub",
		XPrivKey58: "xprv",
		CoinType:   0,
	},
	AddressPrefix: AddressPrefix{
		PubKeyHash: 0x00, // starts with 1
		ScriptHash: 0x05, // starts with 3
		Bech32:     "sc",
	},

	HalvingInterval: 210000,

	RequireStandard: true,
	SelfConnect:     false,
	RequestMempool:  false,

	MinRelay:   1000,
	FeeRate:    5000,
	MaxFeeRate: 400000,
}
