// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/pkt-cash/sidechaind/chaincfg/chainhash"
)

// testGenesisHex is the serialized main network genesis block.
const testGenesisHex = "0100000000000000000000000000000000000000000000000000000000000000000000" +
	"008a6be158deb38d5cc20aa8612ac303bb7ae59520d3b22213df5e88434f36b18e8ccd" +
	"7563000000000000000000000000000000000000000000000000000000000000000000" +
	"0000000000000000000000000000000000000000000000000000000000000001010000" +
	"00010000000000000000000000000000000000000000000000000000000000000000ff" +
	"ffffff3104ffff001d0104296e6e6e6e6e6e3a30786e6e6e6e6e6e6e6e6e6e6e6e6e6e" +
	"6e6e6e6e6e6e6e6e6e6e6e6e6e6e6e6e6e6effffffff01000000000000000043410467" +
	"8afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f" +
	"4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5fac00000000"

func mustDecodeHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func mustRawHash(t *testing.T, s string) chainhash.Hash {
	h, err := chainhash.NewHashFromBytesHex(s)
	require.Nil(t, err)
	return *h
}

// TestDecodeGenesis decodes the main network genesis block and checks every
// header field and the derived hashes.
func TestDecodeGenesis(t *testing.T) {
	raw := mustDecodeHex(t, testGenesisHex)
	require.Len(t, raw, 313)

	block, err := DecodeGenesis(raw)
	require.Nil(t, err)

	hdr := block.Header
	require.Equal(t, int32(1), hdr.Version)
	require.True(t, hdr.PrevBlock.IsZero())
	require.Equal(t, mustRawHash(t,
		"8a6be158deb38d5cc20aa8612ac303bb7ae59520d3b22213df5e88434f36b18e"),
		hdr.MerkleRoot)
	require.Equal(t, uint32(1668664716), hdr.Timestamp)
	require.True(t, hdr.WithdrawalBundle.IsZero())
	require.True(t, hdr.MainchainBlock.IsZero())

	require.Equal(t, mustRawHash(t,
		"654601393cd0ee8b706ece50e23e3ce8069265747900ad6a6690a68cd827b716"),
		block.BlockHash())

	require.Len(t, block.Transactions, 1)
	tx := block.Transactions[0]
	require.True(t, tx.IsCoinBase())
	require.Equal(t, hdr.MerkleRoot, tx.TxHash())
	require.Equal(t, int64(0), tx.TxOut[0].Value)
	require.Len(t, tx.TxOut[0].PkScript, 0x43)
}

// TestGenesisRoundTrip ensures encoding a decoded genesis block reproduces
// the original bytes exactly.
func TestGenesisRoundTrip(t *testing.T) {
	raw := mustDecodeHex(t, testGenesisHex)
	block, err := DecodeGenesis(raw)
	require.Nil(t, err)

	encoded, err := EncodeGenesis(&block.Header, block.Transactions[0])
	require.Nil(t, err)
	if !bytes.Equal(encoded, raw) {
		t.Fatalf("round trip mismatch\n got: %s\nwant: %s",
			spew.Sdump(encoded), spew.Sdump(raw))
	}
	require.Equal(t, len(raw), block.SerializeSize())

	again, err := DecodeGenesis(encoded)
	require.Nil(t, err)
	require.Equal(t, block, again)
}

// TestDecodeGenesisMalformed ensures truncation at every field boundary and
// trailing or structurally wrong payloads are reported as
// ErrMalformedGenesis.
func TestDecodeGenesisMalformed(t *testing.T) {
	raw := mustDecodeHex(t, testGenesisHex)

	// Every strict prefix must fail.
	for i := 0; i < len(raw); i++ {
		_, err := DecodeGenesis(raw[:i])
		if !ErrMalformedGenesis.Is(err) {
			t.Fatalf("prefix of %d bytes: got %v want ErrMalformedGenesis", i, err)
		}
	}

	boundaries := []struct {
		n     int
		field string
	}{
		{0, "version"},
		{4, "prevBlock"},
		{36, "merkleRoot"},
		{68, "time"},
		{72, "withdrawalBundle"},
		{104, "mainchainBlock"},
		{136, "transaction count"},
		{137, "coinbase transaction"},
	}
	for _, test := range boundaries {
		_, err := DecodeGenesis(raw[:test.n])
		require.True(t, ErrMalformedGenesis.Is(err))
		require.Contains(t, err.Message(), test.field)
	}

	trailing := append(append([]byte{}, raw...), 0x00)
	_, err := DecodeGenesis(trailing)
	require.True(t, ErrMalformedGenesis.Is(err))
	require.Contains(t, err.Message(), "trailing")

	twoTxs := append([]byte{}, raw...)
	twoTxs[BlockHeaderLen] = 0x02
	_, err = DecodeGenesis(twoTxs)
	require.True(t, ErrMalformedGenesis.Is(err))

	notCoinbase := append([]byte{}, raw...)
	// First byte of the coinbase input's previous outpoint hash.
	notCoinbase[BlockHeaderLen+1+4+1] = 0x01
	_, err = DecodeGenesis(notCoinbase)
	require.True(t, ErrMalformedGenesis.Is(err))
}

// TestBlockDeserialize ensures the general block decoder reads the genesis
// block and stops at its end.
func TestBlockDeserialize(t *testing.T) {
	raw := mustDecodeHex(t, testGenesisHex)
	r := bytes.NewReader(append(append([]byte{}, raw...), 0xab))

	var block MsgBlock
	require.Nil(t, block.Deserialize(r))
	require.Equal(t, 1, r.Len())
	require.Len(t, block.Transactions, 1)

	genesis, err := DecodeGenesis(raw)
	require.Nil(t, err)
	require.Equal(t, genesis, &block)

	// A transaction count no block could hold.
	tooMany := append([]byte{}, raw[:BlockHeaderLen]...)
	tooMany = append(tooMany, 0xfe, 0xff, 0xff, 0xff, 0x7f)
	err = block.Deserialize(bytes.NewReader(tooMany))
	require.True(t, MessageError.Is(err))
}

// TestEncodeGenesisNoCoinbase ensures a genesis block cannot be encoded
// without its coinbase.
func TestEncodeGenesisNoCoinbase(t *testing.T) {
	_, err := EncodeGenesis(&BlockHeader{}, nil)
	require.True(t, ErrMalformedGenesis.Is(err))
}

// TestBlockHeaderSerialize ensures the header serializes to BlockHeaderLen
// bytes in field order.
func TestBlockHeaderSerialize(t *testing.T) {
	hdr := BlockHeader{
		Version:   2,
		Timestamp: 0x01020304,
	}
	hdr.PrevBlock[0] = 0xaa
	hdr.MerkleRoot[0] = 0xbb
	hdr.WithdrawalBundle[0] = 0xcc
	hdr.MainchainBlock[0] = 0xdd

	var buf bytes.Buffer
	require.Nil(t, hdr.Serialize(&buf))
	b := buf.Bytes()
	require.Len(t, b, BlockHeaderLen)
	require.Equal(t, []byte{2, 0, 0, 0}, b[0:4])
	require.Equal(t, byte(0xaa), b[4])
	require.Equal(t, byte(0xbb), b[36])
	require.Equal(t, []byte{4, 3, 2, 1}, b[68:72])
	require.Equal(t, byte(0xcc), b[72])
	require.Equal(t, byte(0xdd), b[104])

	var back BlockHeader
	require.Nil(t, back.Deserialize(bytes.NewReader(b)))
	require.Equal(t, hdr, back)
	require.Equal(t, chainhash.DoubleHashH(b), hdr.BlockHash())
}
