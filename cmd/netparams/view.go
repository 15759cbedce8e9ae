// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"

	"github.com/pkt-cash/sidechaind/blockchain/difficulty"
	"github.com/pkt-cash/sidechaind/chaincfg"
	"github.com/pkt-cash/sidechaind/chaincfg/globalcfg"
)

// paramsView is the printable form of a network's parameters.  Hashes are
// in display order and big numbers in hex.
type paramsView struct {
	Name          string   `json:"name"`
	Net           string   `json:"net"`
	DefaultPort   uint16   `json:"defaultPort"`
	MainchainPort uint16   `json:"mainchainPort"`
	RPCPort       uint16   `json:"rpcPort"`
	WalletPort    uint16   `json:"walletPort"`
	Seeds         []string `json:"seeds"`

	Genesis     genesisView      `json:"genesis"`
	Checkpoints []checkpointView `json:"checkpoints"`
	Pow         powView          `json:"pow"`
	Block       blockView        `json:"block"`
	BIP30       []checkpointView `json:"bip30"`

	RuleChangeActivationThreshold uint32           `json:"ruleChangeActivationThreshold"`
	MinerConfirmationWindow       uint32           `json:"minerConfirmationWindow"`
	Deployments                   []deploymentView `json:"deployments"`

	KeyPrefix       chaincfg.KeyPrefix     `json:"keyPrefix"`
	AddressPrefix   chaincfg.AddressPrefix `json:"addressPrefix"`
	HalvingInterval int32                  `json:"halvingInterval"`
	TxnData         chaincfg.TxnData       `json:"txnData"`

	RequireStandard bool `json:"requireStandard"`
	SelfConnect     bool `json:"selfConnect"`
	RequestMempool  bool `json:"requestMempool"`

	// Relay fees per kilobyte, in coins.
	MinRelay   string `json:"minRelay"`
	FeeRate    string `json:"feeRate"`
	MaxFeeRate string `json:"maxFeeRate"`
}

type genesisView struct {
	Hash             string `json:"hash"`
	Version          int32  `json:"version"`
	PrevBlock        string `json:"prevBlock"`
	MerkleRoot       string `json:"merkleRoot"`
	Time             uint32 `json:"time"`
	WithdrawalBundle string `json:"withdrawalBundle"`
	MainchainBlock   string `json:"mainchainBlock"`
	Height           int32  `json:"height"`
}

type checkpointView struct {
	Height int32  `json:"height"`
	Hash   string `json:"hash"`
}

type powView struct {
	Limit            string `json:"limit"`
	Bits             uint32 `json:"bits"`
	Work             string `json:"work"`
	Chainwork        string `json:"chainwork"`
	TargetTimespan   int64  `json:"targetTimespan"`
	TargetSpacing    int64  `json:"targetSpacing"`
	RetargetInterval uint32 `json:"retargetInterval"`
	TargetReset      bool   `json:"targetReset"`
	NoRetargeting    bool   `json:"noRetargeting"`
}

type blockView struct {
	BIP34Height      int32  `json:"bip34height"`
	BIP34Hash        string `json:"bip34hash,omitempty"`
	BIP65Height      int32  `json:"bip65height"`
	BIP66Height      int32  `json:"bip66height"`
	PruneAfterHeight int32  `json:"pruneAfterHeight"`
	KeepBlocks       int32  `json:"keepBlocks"`
	MaxTipAge        int64  `json:"maxTipAge"`
	SlowHeight       int32  `json:"slowHeight"`
}

type deploymentView struct {
	Name      string `json:"name"`
	Bit       uint8  `json:"bit"`
	StartTime int64  `json:"startTime"`
	Timeout   int64  `json:"timeout"`
	Threshold uint32 `json:"threshold"`
	Window    uint32 `json:"window"`
	Required  bool   `json:"required"`
	Force     bool   `json:"force"`
}

func newParamsView(p *chaincfg.Params) *paramsView {
	g := &p.Genesis
	v := &paramsView{
		Name:          p.Name,
		Net:           fmt.Sprintf("0x%08x", uint32(p.Net)),
		DefaultPort:   p.DefaultPort,
		MainchainPort: p.MainchainPort,
		RPCPort:       p.RPCPort,
		WalletPort:    p.WalletPort,
		Seeds:         p.SeedList(),
		Genesis: genesisView{
			Hash:             g.Hash.String(),
			Version:          g.Version,
			PrevBlock:        g.PrevBlock.String(),
			MerkleRoot:       g.MerkleRoot.String(),
			Time:             g.Timestamp,
			WithdrawalBundle: g.WithdrawalBundle.String(),
			MainchainBlock:   g.MainchainBlock.String(),
			Height:           g.Height,
		},
		Pow: powView{
			Limit:            p.Pow.Limit.Text(16),
			Bits:             p.Pow.Bits,
			Work:             difficulty.CalcWork(p.Pow.Bits).Text(16),
			Chainwork:        p.Pow.Chainwork.Text(16),
			TargetTimespan:   int64(p.Pow.TargetTimespan.Seconds()),
			TargetSpacing:    int64(p.Pow.TargetSpacing.Seconds()),
			RetargetInterval: p.Pow.RetargetInterval,
			TargetReset:      p.Pow.TargetReset,
			NoRetargeting:    p.Pow.NoRetargeting,
		},
		Block: blockView{
			BIP34Height:      p.Block.BIP34Height,
			BIP65Height:      p.Block.BIP65Height,
			BIP66Height:      p.Block.BIP66Height,
			PruneAfterHeight: p.Block.PruneAfterHeight,
			KeepBlocks:       p.Block.KeepBlocks,
			MaxTipAge:        int64(p.Block.MaxTipAge.Seconds()),
			SlowHeight:       p.Block.SlowHeight,
		},
		BIP30: make([]checkpointView, 0, len(p.BIP30)),

		RuleChangeActivationThreshold: p.RuleChangeActivationThreshold,
		MinerConfirmationWindow:       p.MinerConfirmationWindow,

		KeyPrefix:       p.KeyPrefix,
		AddressPrefix:   p.AddressPrefix,
		HalvingInterval: p.HalvingInterval,
		TxnData:         p.TxnData,

		RequireStandard: p.RequireStandard,
		SelfConnect:     p.SelfConnect,
		RequestMempool:  p.RequestMempool,

		MinRelay:   globalcfg.FormatAmount(p.MinRelay),
		FeeRate:    globalcfg.FormatAmount(p.FeeRate),
		MaxFeeRate: globalcfg.FormatAmount(p.MaxFeeRate),
	}
	if p.Block.BIP34Hash != nil {
		v.Block.BIP34Hash = p.Block.BIP34Hash.String()
	}
	for height, hash := range p.BIP30 {
		v.BIP30 = append(v.BIP30, checkpointView{
			Height: height,
			Hash:   hash.String(),
		})
	}
	sort.Slice(v.BIP30, func(i, j int) bool {
		return v.BIP30[i].Height < v.BIP30[j].Height
	})
	for _, cp := range p.Checkpoints.All() {
		v.Checkpoints = append(v.Checkpoints, checkpointView{
			Height: cp.Height,
			Hash:   cp.Hash.String(),
		})
	}
	for _, d := range p.Deploys() {
		d := d
		v.Deployments = append(v.Deployments, deploymentView{
			Name:      d.Name,
			Bit:       d.Bit,
			StartTime: d.StartTime,
			Timeout:   d.Timeout,
			Threshold: d.EffectiveThreshold(p),
			Window:    d.EffectiveWindow(p),
			Required:  d.Required,
			Force:     d.Force,
		})
	}
	return v
}
