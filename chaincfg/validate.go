// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"

	"github.com/pkt-cash/sidechaind/blockchain/difficulty"
	"github.com/pkt-cash/sidechaind/btcutil/er"
	"github.com/pkt-cash/sidechaind/pktlog/log"
)

func invalid(format string, args ...interface{}) er.R {
	return ErrInvalidProfile.New(fmt.Sprintf(format, args...), nil)
}

// Validate checks the internal consistency of the network parameters.  The
// checks run in a fixed order and the first failure is returned: identity,
// checkpoints, genesis block, proof of work, versionbits, deployments, fees,
// prefixes and finally the BIP0030 exceptions.
func (p *Params) Validate() er.R {
	checks := []func() er.R{
		p.validateIdentity,
		p.validateCheckpoints,
		p.validateGenesis,
		p.validatePow,
		p.validateVersionBits,
		p.validateDeployments,
		p.validateFees,
		p.validatePrefixes,
		p.validateBIP30,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			log.Warnf("Rejecting network [%s]: %s", p.Name, err.Message())
			return err
		}
	}
	return nil
}

func (p *Params) validateIdentity() er.R {
	if p.Name == "" {
		return invalid("network name is empty")
	}
	if p.Net == 0 {
		return invalid("network magic is zero")
	}
	ports := []struct {
		name string
		port uint16
	}{
		{"port", p.DefaultPort},
		{"mainchain port", p.MainchainPort},
		{"rpc port", p.RPCPort},
		{"wallet port", p.WalletPort},
	}
	for i, a := range ports {
		if a.port == 0 {
			return invalid("%s is zero", a.name)
		}
		for _, b := range ports[i+1:] {
			if a.port == b.port {
				return invalid("%s and %s are both %d", a.name, b.name, a.port)
			}
		}
	}
	return nil
}

func (p *Params) validateCheckpoints() er.R {
	if p.Checkpoints.Len() == 0 {
		return invalid("no checkpoints")
	}
	first, ok := p.Checkpoints.Lookup(0)
	if !ok {
		return invalid("no checkpoint at height 0")
	}
	if !first.IsEqual(&p.Genesis.Hash) {
		return ErrGenesisHashMismatch.New(fmt.Sprintf(
			"checkpoint 0 is %s, genesis is %s", first, &p.Genesis.Hash), nil)
	}
	return nil
}

func (p *Params) validateGenesis() er.R {
	g := &p.Genesis
	if g.Height != 0 {
		return invalid("genesis height is %d", g.Height)
	}
	if !g.PrevBlock.IsZero() {
		return invalid("genesis previous block is not zero")
	}

	block, err := p.DecodeGenesis()
	if err != nil {
		return err
	}
	if block.Header != g.Header() {
		return ErrGenesisHashMismatch.New(
			"serialized genesis header differs from declared header", nil)
	}
	if hash := block.BlockHash(); hash != g.Hash {
		return ErrGenesisHashMismatch.New(fmt.Sprintf(
			"genesis block hashes to %s, declared %s", &hash, &g.Hash), nil)
	}
	if txid := block.Transactions[0].TxHash(); txid != g.MerkleRoot {
		return ErrGenesisHashMismatch.New(fmt.Sprintf(
			"coinbase txid %s is not the merkle root %s", &txid, &g.MerkleRoot), nil)
	}
	return nil
}

func (p *Params) validatePow() er.R {
	pow := &p.Pow
	if pow.Limit == nil || pow.Limit.Sign() <= 0 {
		return invalid("pow limit must be positive")
	}
	target := difficulty.CompactToBig(pow.Bits)
	if target.Sign() <= 0 {
		return invalid("pow bits %08x decode to a non-positive target", pow.Bits)
	}
	if target.Cmp(pow.Limit) > 0 {
		return invalid("pow bits %08x exceed pow limit", pow.Bits)
	}
	if pow.Chainwork == nil || pow.Chainwork.Sign() < 0 {
		return invalid("chainwork must not be negative")
	}
	if pow.TargetTimespan <= 0 || pow.TargetSpacing <= 0 {
		return invalid("target timespan and spacing must be positive")
	}
	if !pow.NoRetargeting {
		want := pow.TargetTimespan / pow.TargetSpacing
		if int64(pow.RetargetInterval) != int64(want) {
			return invalid("retarget interval %d, want %d",
				pow.RetargetInterval, want)
		}
	}
	return nil
}

func (p *Params) validateVersionBits() er.R {
	if p.MinerConfirmationWindow == 0 {
		return invalid("miner confirmation window is zero")
	}
	if p.RuleChangeActivationThreshold == 0 ||
		p.RuleChangeActivationThreshold > p.MinerConfirmationWindow {

		return invalid("activation threshold %d outside of 1..%d",
			p.RuleChangeActivationThreshold, p.MinerConfirmationWindow)
	}
	return nil
}

func isSentinel(t int64) bool {
	return t == StartAlways || t == TimeoutNever
}

func (p *Params) validateDeployments() er.R {
	names := make(map[string]struct{}, len(p.Deployments))
	bits := make(map[uint8]string, len(p.Deployments))
	for i := range p.Deployments {
		d := &p.Deployments[i]
		if d.Name == "" {
			return invalid("deployment %d has no name", i)
		}
		if _, ok := names[d.Name]; ok {
			return invalid("duplicate deployment %s", d.Name)
		}
		names[d.Name] = struct{}{}

		if d.Bit > MaxDeploymentBit {
			return invalid("deployment %s bit %d out of range", d.Name, d.Bit)
		}
		if other, ok := bits[d.Bit]; ok {
			return ErrDeploymentBitCollision.New(fmt.Sprintf(
				"%s and %s both use bit %d", other, d.Name, d.Bit), nil)
		}
		bits[d.Bit] = d.Name

		if d.Threshold != -1 && d.Threshold <= 0 {
			return invalid("deployment %s threshold %d", d.Name, d.Threshold)
		}
		if d.Window != -1 && d.Window <= 0 {
			return invalid("deployment %s window %d", d.Name, d.Window)
		}
		if d.EffectiveThreshold(p) > d.EffectiveWindow(p) {
			return invalid("deployment %s threshold %d exceeds window %d",
				d.Name, d.EffectiveThreshold(p), d.EffectiveWindow(p))
		}
		if !isSentinel(d.StartTime) && !isSentinel(d.Timeout) &&
			d.StartTime > d.Timeout {

			return invalid("deployment %s starts after it times out", d.Name)
		}
	}
	return nil
}

func (p *Params) validateFees() er.R {
	if p.MinRelay < 0 {
		return invalid("min relay fee %d is negative", p.MinRelay)
	}
	if p.MinRelay > p.FeeRate || p.FeeRate > p.MaxFeeRate {
		return invalid("fees out of order: min relay %d, fee rate %d, max fee rate %d",
			p.MinRelay, p.FeeRate, p.MaxFeeRate)
	}
	return nil
}

func isPrintableASCII(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x21 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

func (p *Params) validatePrefixes() er.R {
	kp := &p.KeyPrefix
	ap := &p.AddressPrefix
	for _, s := range []string{kp.XPubKey58, kp.XPrivKey58, ap.Bech32} {
		if !isPrintableASCII(s) {
			return invalid("prefix %q is not printable ascii", s)
		}
	}
	if ap.PubKeyHash == ap.ScriptHash {
		return invalid("pubkeyhash and scripthash prefixes are both %#x",
			ap.PubKeyHash)
	}
	if kp.XPubKey == kp.XPrivKey {
		return invalid("xpub and xprv prefixes are both %#x", kp.XPubKey)
	}
	if kp.XPubKey58 == kp.XPrivKey58 {
		return invalid("xpub and xprv prefixes are both %q", kp.XPubKey58)
	}
	return nil
}

func (p *Params) validateBIP30() er.R {
	for height, hash := range p.BIP30 {
		if height <= 0 {
			return invalid("bip30 exception at height %d", height)
		}
		if hash.IsZero() {
			return invalid("bip30 exception at height %d has zero hash", height)
		}
	}
	return nil
}
