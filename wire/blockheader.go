// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"

	"github.com/pkt-cash/sidechaind/btcutil/er"
	"github.com/pkt-cash/sidechaind/chaincfg/chainhash"
)

// BlockHeaderLen is the number of bytes of a serialized sidechain block
// header: version 4 bytes + previous block 32 bytes + merkle root 32 bytes +
// timestamp 4 bytes + withdrawal bundle hash 32 bytes + mainchain block hash
// 32 bytes.
const BlockHeaderLen = 136

// BlockHeader is the header of a sidechain block.  Sidechain blocks are
// merge mined through the mainchain, so in place of the bits and nonce of a
// bitcoin header they commit to the withdrawal bundle they carry and the
// mainchain block which mined them.
type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version int32

	// Hash of the previous block header in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created.  Encoded as a uint32 on the wire.
	Timestamp uint32

	// Hash of the withdrawal bundle committed to by this block.
	WithdrawalBundle chainhash.Hash

	// Hash of the mainchain block in which this block was mined.
	MainchainBlock chainhash.Hash
}

// BlockHash computes the block identifier hash for the given block header,
// the double sha256 of its serialization.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, BlockHeaderLen))
	_ = writeBlockHeader(buf, h)

	return chainhash.DoubleHashH(buf.Bytes())
}

// Deserialize decodes a block header from r into the receiver.
func (h *BlockHeader) Deserialize(r io.Reader) er.R {
	return readBlockHeader(r, h)
}

// Serialize encodes the receiver to w.
func (h *BlockHeader) Serialize(w io.Writer) er.R {
	return writeBlockHeader(w, h)
}

// readBlockHeader reads a sidechain block header from r, reporting the field
// at which the input ran out.
func readBlockHeader(r io.Reader, bh *BlockHeader) er.R {
	if err := readElement(r, &bh.Version); err != nil {
		return malformed("version", err)
	}
	if err := readElement(r, &bh.PrevBlock); err != nil {
		return malformed("prevBlock", err)
	}
	if err := readElement(r, &bh.MerkleRoot); err != nil {
		return malformed("merkleRoot", err)
	}
	if err := readElement(r, &bh.Timestamp); err != nil {
		return malformed("time", err)
	}
	if err := readElement(r, &bh.WithdrawalBundle); err != nil {
		return malformed("withdrawalBundle", err)
	}
	if err := readElement(r, &bh.MainchainBlock); err != nil {
		return malformed("mainchainBlock", err)
	}
	return nil
}

// writeBlockHeader writes a sidechain block header to w.
func writeBlockHeader(w io.Writer, bh *BlockHeader) er.R {
	if err := writeElement(w, bh.Version); err != nil {
		return err
	}
	if err := writeElement(w, &bh.PrevBlock); err != nil {
		return err
	}
	if err := writeElement(w, &bh.MerkleRoot); err != nil {
		return err
	}
	if err := writeElement(w, bh.Timestamp); err != nil {
		return err
	}
	if err := writeElement(w, &bh.WithdrawalBundle); err != nil {
		return err
	}
	return writeElement(w, &bh.MainchainBlock)
}
