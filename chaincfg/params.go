// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/pkt-cash/sidechaind/btcutil/er"
	"github.com/pkt-cash/sidechaind/chaincfg/chainhash"
	"github.com/pkt-cash/sidechaind/wire"
	"github.com/pkt-cash/sidechaind/wire/protocol"
)

const (
	// StartAlways is the deployment start time meaning the deployment is
	// considered started from the genesis block.
	StartAlways int64 = -1

	// TimeoutNever is the deployment timeout meaning the deployment never
	// expires.
	TimeoutNever int64 = 0xffffffff

	// MaxDeploymentBit is the highest version bit a deployment may use,
	// the top three bits of the version are reserved by BIP0009.
	MaxDeploymentBit = 28
)

// GenesisBlock describes the first block of a network.  Hash is the declared
// identity of the block, it must agree with the serialized form of the
// network and with the checkpoint at height 0.
type GenesisBlock struct {
	Version          int32
	Hash             chainhash.Hash
	PrevBlock        chainhash.Hash
	MerkleRoot       chainhash.Hash
	WithdrawalBundle chainhash.Hash
	MainchainBlock   chainhash.Hash
	Timestamp        uint32
	Height           int32
}

// Header returns the declared genesis block header.
func (g *GenesisBlock) Header() wire.BlockHeader {
	return wire.BlockHeader{
		Version:          g.Version,
		PrevBlock:        g.PrevBlock,
		MerkleRoot:       g.MerkleRoot,
		Timestamp:        g.Timestamp,
		WithdrawalBundle: g.WithdrawalBundle,
		MainchainBlock:   g.MainchainBlock,
	}
}

// PowParams are the proof of work constants of a network.
type PowParams struct {
	// Limit is the highest allowed proof of work target, as a uint256.
	Limit *big.Int

	// Bits is the default target in compact form.
	Bits uint32

	// Chainwork is the minimum amount of chain work a node should expect
	// before considering itself synced.
	Chainwork *big.Int

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetSpacing is the desired amount of time to generate each block.
	TargetSpacing time.Duration

	// RetargetInterval is the number of blocks between difficulty
	// adjustments, TargetTimespan / TargetSpacing.
	RetargetInterval uint32

	// TargetReset allows blocks to fall back to the limit after a long
	// enough period without a block.  Test networks only.
	TargetReset bool

	// NoRetargeting disables difficulty adjustment entirely.
	NoRetargeting bool
}

// BlockParams are the block related activation heights and limits of a
// network.
type BlockParams struct {
	// BIP34Height is the height at which BIP0034 became active, blocks
	// below it are subject to the BIP0030 duplicate check.
	BIP34Height int32

	// BIP34Hash is the hash of the block which activated BIP0034, or nil
	// when the network doesn't pin one.
	BIP34Hash *chainhash.Hash

	BIP65Height int32
	BIP66Height int32

	// PruneAfterHeight is the height after which a pruning node may start
	// discarding blocks.
	PruneAfterHeight int32

	// KeepBlocks is the number of most recent blocks a pruning node keeps.
	KeepBlocks int32

	// MaxTipAge is the age of the tip after which the node considers
	// itself out of sync.
	MaxTipAge time.Duration

	// SlowHeight is the height below which block verification is expected
	// to be fast and sync speed is not logged.
	SlowHeight int32
}

// Deployment defines details related to a specific consensus rule change
// that is voted in.  This is part of BIP0009.
type Deployment struct {
	// Name identifies the deployment.
	Name string

	// Bit defines the specific bit number within the block version this
	// particular soft-fork deployment refers to.
	Bit uint8

	// StartTime is the median block time after which voting on the
	// deployment starts, or StartAlways.
	StartTime int64

	// Timeout is the median block time after which the attempted
	// deployment expires, or TimeoutNever.
	Timeout int64

	// Threshold and Window override the network's rule change activation
	// threshold and miner confirmation window for this deployment, -1
	// means use the network's value.
	Threshold int32
	Window    int32

	// Required marks a deployment which the chain cannot do without, if
	// it fails the chain is misconfigured.
	Required bool

	// Force makes the deployment active as soon as it has started,
	// without miner signalling.
	Force bool
}

// EffectiveThreshold returns the number of signalling blocks per window
// required to lock in the deployment.
func (d *Deployment) EffectiveThreshold(p *Params) uint32 {
	if d.Threshold != -1 {
		return uint32(d.Threshold)
	}
	return p.RuleChangeActivationThreshold
}

// EffectiveWindow returns the number of blocks in each signalling window of
// the deployment.
func (d *Deployment) EffectiveWindow(p *Params) uint32 {
	if d.Window != -1 {
		return uint32(d.Window)
	}
	return p.MinerConfirmationWindow
}

// KeyPrefix holds the key serialization magics of a network.
type KeyPrefix struct {
	// PrivKey is the first byte of a WIF private key.
	PrivKey byte

	// BIP32 hierarchical deterministic extended key magics.
	XPubKey  uint32
	XPrivKey uint32

	// Base58 prefixes of the extended keys as they appear to the user.
	XPubKey58  string
	XPrivKey58 string

	// CoinType is the BIP44 coin type used in the hierarchical
	// deterministic path for address generation.
	CoinType uint32
}

// AddressPrefix holds the address encoding magics of a network.
type AddressPrefix struct {
	PubKeyHash byte // First byte of a P2PKH address
	ScriptHash byte // First byte of a P2SH address

	// Bech32 is the human-readable part for Bech32 encoded segwit
	// addresses, as defined in BIP 173.
	Bech32 string
}

// TxnData holds chain transaction statistics used to estimate sync
// progress.
type TxnData struct {
	Rate  float64
	Time  int64
	Count int64
}

// Params defines a sidechain network by its parameters.  These parameters may
// be used by applications to differentiate networks as well as addresses and
// keys for one network from those intended for use on another network.
//
// Params obtained from a Registry have been validated.  Each is a copy,
// changing it does not affect the registry.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net protocol.BitcoinNet

	// DefaultPort is the peer-to-peer port of the network and
	// MainchainPort the RPC port of the mainchain node it is attached to.
	DefaultPort   uint16
	MainchainPort uint16
	RPCPort       uint16
	WalletPort    uint16

	// Seeds is the list of seed nodes used to discover peers.
	Seeds []string

	// Checkpoints ordered by height, the first being the genesis block.
	Checkpoints *Checkpoints

	// Genesis is the declared genesis block and GenesisBlock its
	// serialization.
	Genesis      GenesisBlock
	GenesisBlock []byte

	Pow   PowParams
	Block BlockParams

	// BIP30 lists the blocks which are exempt from the BIP0030 duplicate
	// transaction check.
	BIP30 map[int32]chainhash.Hash

	// These fields are related to voting on consensus rule changes as
	// defined by BIP0009.
	//
	// RuleChangeActivationThreshold is the number of blocks in a threshold
	// state retarget window for which a positive vote for a rule change
	// must be cast in order to lock in a rule change. It should typically
	// be 95% for the main network and 75% for test networks.
	//
	// MinerConfirmationWindow is the number of blocks in each threshold
	// state retarget window.
	//
	// Deployments define the specific consensus rule changes to be voted
	// on, in canonical order.
	RuleChangeActivationThreshold uint32
	MinerConfirmationWindow       uint32
	Deployments                   []Deployment

	KeyPrefix     KeyPrefix
	AddressPrefix AddressPrefix

	// HalvingInterval is the number of blocks between subsidy halvings.
	HalvingInterval int32

	TxnData TxnData

	// Mempool parameters
	RequireStandard bool
	SelfConnect     bool
	RequestMempool  bool

	// Relay fee policy in satoshis per kilobyte.
	MinRelay   int64
	FeeRate    int64
	MaxFeeRate int64
}

// Clone returns a deep copy of p.  The checkpoint table is immutable and
// shared.
func (p *Params) Clone() *Params {
	c := *p
	if p.Seeds != nil {
		c.Seeds = p.SeedList()
	}
	if p.Deployments != nil {
		c.Deployments = p.Deploys()
	}
	if p.GenesisBlock != nil {
		c.GenesisBlock = append([]byte{}, p.GenesisBlock...)
	}
	if p.Pow.Limit != nil {
		c.Pow.Limit = new(big.Int).Set(p.Pow.Limit)
	}
	if p.Pow.Chainwork != nil {
		c.Pow.Chainwork = new(big.Int).Set(p.Pow.Chainwork)
	}
	if p.Block.BIP34Hash != nil {
		hash := *p.Block.BIP34Hash
		c.Block.BIP34Hash = &hash
	}
	if p.BIP30 != nil {
		c.BIP30 = make(map[int32]chainhash.Hash, len(p.BIP30))
		for k, v := range p.BIP30 {
			c.BIP30[k] = v
		}
	}
	return &c
}

// GenesisHash returns the declared hash of the genesis block.
func (p *Params) GenesisHash() *chainhash.Hash {
	hash := p.Genesis.Hash
	return &hash
}

// LastCheckpoint returns the checkpoint with the greatest height.
func (p *Params) LastCheckpoint() *Checkpoint {
	return p.Checkpoints.Latest()
}

// Deploys returns a copy of the deployments in canonical order.
func (p *Params) Deploys() []Deployment {
	out := make([]Deployment, len(p.Deployments))
	copy(out, p.Deployments)
	return out
}

// Deployment returns the deployment with the given name.
func (p *Params) Deployment(name string) (*Deployment, bool) {
	for i := range p.Deployments {
		if p.Deployments[i].Name == name {
			d := p.Deployments[i]
			return &d, true
		}
	}
	return nil, false
}

// SeedList returns a copy of the seed nodes.
func (p *Params) SeedList() []string {
	out := make([]string, len(p.Seeds))
	copy(out, p.Seeds)
	return out
}

// DecodeGenesis decodes the serialized genesis block of the network.
func (p *Params) DecodeGenesis() (*wire.MsgBlock, er.R) {
	return wire.DecodeGenesis(p.GenesisBlock)
}

// newHashFromBytesHex converts the passed hex string, in internal byte
// order, into a chainhash.Hash.  It panics on an error since it will only
// (and must only) be called with hard-coded, and therefore known good,
// hashes.
func newHashFromBytesHex(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromBytesHex(hexStr)
	if err != nil {
		panic(err.String())
	}
	return hash
}

// newBigFromHex is newHashFromBytesHex for big endian integers.
func newBigFromHex(hexStr string) *big.Int {
	n, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("invalid hex integer " + hexStr)
	}
	return n
}
