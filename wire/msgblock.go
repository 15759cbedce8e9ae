// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkt-cash/sidechaind/btcutil/er"
	"github.com/pkt-cash/sidechaind/chaincfg/chainhash"
)

// maxTxPerBlock is the maximum number of transactions that could possibly
// fit into a block, a transaction being at least 10 bytes.
const maxTxPerBlock = (MaxBlockPayload / 10) + 1

// MsgBlock is a sidechain block: a header followed by its transactions.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
}

// BlockHash computes the block identifier hash for this block.
func (msg *MsgBlock) BlockHash() chainhash.Hash {
	return msg.Header.BlockHash()
}

// SerializeSize returns the number of bytes it would take to serialize the
// block.
func (msg *MsgBlock) SerializeSize() int {
	n := BlockHeaderLen + VarIntSerializeSize(uint64(len(msg.Transactions)))
	for _, tx := range msg.Transactions {
		n += tx.SerializeSize()
	}
	return n
}

// Serialize encodes the block to w.
func (msg *MsgBlock) Serialize(w io.Writer) er.R {
	if err := writeBlockHeader(w, &msg.Header); err != nil {
		return err
	}
	if err := WriteVarInt(w, uint64(len(msg.Transactions))); err != nil {
		return err
	}
	for _, tx := range msg.Transactions {
		if err := tx.Serialize(w); err != nil {
			return err
		}
	}
	return nil
}

// Deserialize decodes a block from r into the receiver.  Unlike
// DecodeGenesis it accepts any number of transactions and leaves whatever
// follows the block unread.
func (msg *MsgBlock) Deserialize(r io.Reader) er.R {
	if err := readBlockHeader(r, &msg.Header); err != nil {
		return err
	}

	count, err := ReadVarInt(r)
	if err != nil {
		return err
	}

	// Prevent more transactions than could possibly fit into a block.
	// It would be possible to cause memory exhaustion and panics without
	// a sane upper bound on this count.
	if count > maxTxPerBlock {
		str := fmt.Sprintf("too many transactions to fit into a block "+
			"[count %d, max %d]", count, maxTxPerBlock)
		return messageError("MsgBlock.Deserialize", str)
	}

	msg.Transactions = make([]*MsgTx, 0, count)
	for i := uint64(0); i < count; i++ {
		tx := MsgTx{}
		if err := tx.Deserialize(r); err != nil {
			return err
		}
		msg.Transactions = append(msg.Transactions, &tx)
	}
	return nil
}

// Bytes returns the serialized block.
func (msg *MsgBlock) Bytes() ([]byte, er.R) {
	buf := bytes.NewBuffer(make([]byte, 0, msg.SerializeSize()))
	if err := msg.Serialize(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeGenesis serializes a genesis block made of header and its single
// coinbase transaction.
func EncodeGenesis(header *BlockHeader, coinbase *MsgTx) ([]byte, er.R) {
	if coinbase == nil {
		return nil, ErrMalformedGenesis.New("no coinbase transaction", nil)
	}
	block := MsgBlock{
		Header:       *header,
		Transactions: []*MsgTx{coinbase},
	}
	return block.Bytes()
}

// DecodeGenesis is the inverse of EncodeGenesis.  Every failure, whether the
// input is truncated inside a field, carries a transaction count other than
// one, holds a coinbase which does not parse or has bytes left over after it,
// is reported as ErrMalformedGenesis.
func DecodeGenesis(b []byte) (*MsgBlock, er.R) {
	r := bytes.NewReader(b)

	var msg MsgBlock
	if err := readBlockHeader(r, &msg.Header); err != nil {
		return nil, err
	}

	count, err := ReadVarInt(r)
	if err != nil {
		return nil, malformed("transaction count", err)
	}
	if count != 1 {
		return nil, ErrMalformedGenesis.New(
			fmt.Sprintf("genesis block has %d transactions, want 1", count), nil)
	}

	tx := new(MsgTx)
	if err := tx.Deserialize(r); err != nil {
		return nil, malformed("coinbase transaction", err)
	}
	if !tx.IsCoinBase() {
		return nil, ErrMalformedGenesis.New(
			"genesis transaction is not a coinbase", nil)
	}
	if r.Len() != 0 {
		return nil, ErrMalformedGenesis.New(
			fmt.Sprintf("%d trailing bytes after coinbase transaction", r.Len()), nil)
	}
	msg.Transactions = []*MsgTx{tx}

	return &msg, nil
}
