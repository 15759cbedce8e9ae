// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"

	"github.com/pkt-cash/sidechaind/btcutil/er"
	"github.com/pkt-cash/sidechaind/btcutil/util/tmap"
	"github.com/pkt-cash/sidechaind/chaincfg/chainhash"
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// Checkpoints is an immutable table of checkpoints ordered by height.
type Checkpoints struct {
	m *tmap.Map[int32, chainhash.Hash]
}

func compHeight(a, b *int32) int {
	switch {
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}

// NewCheckpoints builds a checkpoint table.  The checkpoints may be given in
// any order but heights must be non-negative and unique.
func NewCheckpoints(cps ...Checkpoint) (*Checkpoints, er.R) {
	m := tmap.New[int32, chainhash.Hash](compHeight)
	for _, cp := range cps {
		if cp.Height < 0 {
			return nil, ErrInvalidProfile.New(
				fmt.Sprintf("checkpoint height %d is negative", cp.Height), nil)
		}
		if cp.Hash == nil {
			return nil, ErrInvalidProfile.New(
				fmt.Sprintf("checkpoint at height %d has no hash", cp.Height), nil)
		}
		height := cp.Height
		hash := *cp.Hash
		if oldK, _ := tmap.Insert(m, &height, &hash); oldK != nil {
			return nil, ErrInvalidProfile.New(
				fmt.Sprintf("duplicate checkpoint at height %d", cp.Height), nil)
		}
	}
	return &Checkpoints{m: m}, nil
}

// mustCheckpoints is NewCheckpoints for hard-coded tables, it panics on error.
func mustCheckpoints(cps ...Checkpoint) *Checkpoints {
	c, err := NewCheckpoints(cps...)
	if err != nil {
		panic("invalid checkpoint table: " + err.String())
	}
	return c
}

func checkpoint(k *int32, v *chainhash.Hash) *Checkpoint {
	hash := *v
	return &Checkpoint{Height: *k, Hash: &hash}
}

// Len returns the number of checkpoints in the table.
func (c *Checkpoints) Len() int {
	if c == nil {
		return 0
	}
	return tmap.Len(c.m)
}

// Lookup returns the hash of the checkpoint at height, if there is one.
func (c *Checkpoints) Lookup(height int32) (*chainhash.Hash, bool) {
	if c == nil {
		return nil, false
	}
	_, v := tmap.GetEntry(c.m, &height)
	if v == nil {
		return nil, false
	}
	hash := *v
	return &hash, true
}

// IsCheckpoint returns true if there is a checkpoint at height and its hash
// is hash.
func (c *Checkpoints) IsCheckpoint(height int32, hash *chainhash.Hash) bool {
	cp, ok := c.Lookup(height)
	return ok && cp.IsEqual(hash)
}

// VerifyCheckpoint returns whether a block of the given height and hash is
// consistent with the table: heights without a checkpoint always pass.
func (c *Checkpoints) VerifyCheckpoint(height int32, hash *chainhash.Hash) bool {
	cp, ok := c.Lookup(height)
	if !ok {
		return true
	}
	return cp.IsEqual(hash)
}

// NearestAtOrBelow returns the checkpoint with the greatest height which is
// not greater than height.  There is none when height is negative or below
// the first checkpoint.
func (c *Checkpoints) NearestAtOrBelow(height int32) (*Checkpoint, bool) {
	if c == nil || height < 0 {
		return nil, false
	}
	k, v := tmap.Floor(c.m, &height)
	if k == nil {
		return nil, false
	}
	return checkpoint(k, v), true
}

// Latest returns the checkpoint with the greatest height, or nil when the
// table is empty.
func (c *Checkpoints) Latest() *Checkpoint {
	if c == nil {
		return nil
	}
	k, v := tmap.Max(c.m)
	if k == nil {
		return nil
	}
	return checkpoint(k, v)
}

// ForEach calls f with every checkpoint in ascending height order.  Returning
// er.LoopBreak from f stops the iteration early without error.
func (c *Checkpoints) ForEach(f func(cp *Checkpoint) er.R) er.R {
	if c == nil {
		return nil
	}
	return tmap.ForEach(c.m, func(k *int32, v *chainhash.Hash) er.R {
		return f(checkpoint(k, v))
	})
}

// All returns a copy of every checkpoint in ascending height order.
func (c *Checkpoints) All() []Checkpoint {
	out := make([]Checkpoint, 0, c.Len())
	_ = c.ForEach(func(cp *Checkpoint) er.R {
		out = append(out, *cp)
		return nil
	})
	return out
}
