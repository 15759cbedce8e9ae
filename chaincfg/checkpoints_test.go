// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/pkt-cash/sidechaind/btcutil/er"
	"github.com/pkt-cash/sidechaind/btcutil/util"
	"github.com/pkt-cash/sidechaind/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

func testHash(s string) *chainhash.Hash {
	h := chainhash.DoubleHashH([]byte(s))
	return &h
}

func testCheckpoints(t *testing.T) *Checkpoints {
	// Deliberately out of order.
	c, err := NewCheckpoints(
		Checkpoint{200, testHash("200")},
		Checkpoint{0, testHash("0")},
		Checkpoint{100, testHash("100")},
	)
	require.Nil(t, err)
	return c
}

// TestNearestAtOrBelow tests the nearest checkpoint search at and around
// every checkpoint.
func TestNearestAtOrBelow(t *testing.T) {
	c := testCheckpoints(t)

	tests := []struct {
		height int32
		want   int32 // -1 for none
	}{
		{-5, -1},
		{-1, -1},
		{0, 0},
		{1, 0},
		{99, 0},
		{100, 100},
		{199, 100},
		{200, 200},
		{1 << 30, 200},
	}

	for i, test := range tests {
		cp, ok := c.NearestAtOrBelow(test.height)
		if test.want < 0 {
			if ok {
				t.Errorf("NearestAtOrBelow #%d: got height %d want none",
					i, cp.Height)
			}
			continue
		}
		if !ok {
			t.Errorf("NearestAtOrBelow #%d: got none want %d", i, test.want)
			continue
		}
		if cp.Height != test.want {
			t.Errorf("NearestAtOrBelow #%d: got %d want %d", i,
				cp.Height, test.want)
		}
	}

	// Nothing below the first checkpoint.
	c2, err := NewCheckpoints(Checkpoint{10, testHash("10")})
	require.Nil(t, err)
	_, ok := c2.NearestAtOrBelow(9)
	require.False(t, ok)
}

// TestIsCheckpoint tests checkpoint matching and verification.
func TestIsCheckpoint(t *testing.T) {
	c := testCheckpoints(t)

	require.True(t, c.IsCheckpoint(100, testHash("100")))
	require.False(t, c.IsCheckpoint(100, testHash("200")))
	require.False(t, c.IsCheckpoint(150, testHash("150")))

	require.True(t, c.VerifyCheckpoint(100, testHash("100")))
	require.False(t, c.VerifyCheckpoint(100, testHash("200")))
	require.True(t, c.VerifyCheckpoint(150, testHash("anything")))
}

// TestCheckpointsOrdered ensures the table is kept in height order and the
// latest checkpoint is the highest.
func TestCheckpointsOrdered(t *testing.T) {
	c := testCheckpoints(t)
	require.Equal(t, 3, c.Len())

	all := c.All()
	require.Len(t, all, 3)
	for i, want := range []int32{0, 100, 200} {
		require.Equal(t, want, all[i].Height)
	}
	require.Equal(t, int32(200), c.Latest().Height)
	require.Equal(t, testHash("200"), c.Latest().Hash)

	// The returned hashes are copies.
	all[0].Hash[0] ^= 0xff
	h, ok := c.Lookup(0)
	require.True(t, ok)
	require.Equal(t, testHash("0"), h)

	var seen []int32
	err := c.ForEach(func(cp *Checkpoint) er.R {
		seen = append(seen, cp.Height)
		if cp.Height == 100 {
			return er.LoopBreak
		}
		return nil
	})
	require.Nil(t, err)
	require.Equal(t, []int32{0, 100}, seen)
}

// TestNewCheckpointsErrors tests the rejection of bad tables.
func TestNewCheckpointsErrors(t *testing.T) {
	tests := []struct {
		name string
		cps  []Checkpoint
	}{
		{"negative height", []Checkpoint{{-1, testHash("x")}}},
		{"duplicate height", []Checkpoint{{7, testHash("a")}, {7, testHash("b")}}},
		{"missing hash", []Checkpoint{{7, nil}}},
	}
	for _, test := range tests {
		c, err := NewCheckpoints(test.cps...)
		require.Nil(t, c, test.name)
		util.CheckError(t, test.name, err, ErrInvalidProfile)
	}

	empty, err := NewCheckpoints()
	require.Nil(t, err)
	require.Equal(t, 0, empty.Len())
	require.Nil(t, empty.Latest())
	_, ok := empty.NearestAtOrBelow(0)
	require.False(t, ok)
}
