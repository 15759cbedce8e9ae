// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/pkt-cash/sidechaind/btcutil/util"
)

// The genesis blocks of the sidechain networks share their coinbase
// transaction, they differ only by timestamp.  Sidechain genesis headers
// carry no bits or nonce, the withdrawal bundle and mainchain block hashes
// follow the timestamp and are zero.

// mainGenesisBlockHex is the serialized genesis block of the main network.
const mainGenesisBlockHex = "0100000000000000000000000000000000000000000000000000000000000000000000" +
	"008a6be158deb38d5cc20aa8612ac303bb7ae59520d3b22213df5e88434f36b18e8ccd" +
	"7563000000000000000000000000000000000000000000000000000000000000000000" +
	"0000000000000000000000000000000000000000000000000000000000000001010000" +
	"00010000000000000000000000000000000000000000000000000000000000000000ff" +
	"ffffff3104ffff001d0104296e6e6e6e6e6e3a30786e6e6e6e6e6e6e6e6e6e6e6e6e6e" +
	"6e6e6e6e6e6e6e6e6e6e6e6e6e6e6e6e6e6effffffff01000000000000000043410467" +
	"8afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f" +
	"4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5fac00000000"

// regTestGenesisBlockHex is the serialized genesis block of the regression
// test network.
const regTestGenesisBlockHex = "0100000000000000000000000000000000000000000000000000000000000000000000" +
	"008a6be158deb38d5cc20aa8612ac303bb7ae59520d3b22213df5e88434f36b18e2d87" +
	"ce60000000000000000000000000000000000000000000000000000000000000000000" +
	"0000000000000000000000000000000000000000000000000000000000000001010000" +
	"00010000000000000000000000000000000000000000000000000000000000000000ff" +
	"ffffff3104ffff001d0104296e6e6e6e6e6e3a30786e6e6e6e6e6e6e6e6e6e6e6e6e6e" +
	"6e6e6e6e6e6e6e6e6e6e6e6e6e6e6e6e6e6effffffff01000000000000000043410467" +
	"8afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f" +
	"4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5fac00000000"

// genesisMerkleRoot is the txid of the shared genesis coinbase transaction.
var genesisMerkleRoot = newHashFromBytesHex("8a6be158deb38d5cc20aa8612ac303bb7ae59520d3b22213df5e88434f36b18e")

// mustDecodeHex decodes a hard-coded hex string, it panics on error.
func mustDecodeHex(s string) []byte {
	b, err := util.DecodeHex(s)
	if err != nil {
		panic(err.String())
	}
	return b
}
