// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol_test

import (
	"testing"

	"github.com/pkt-cash/sidechaind/wire/protocol"
)

// TestBitcoinNetStringer tests the stringized output for network types.
func TestBitcoinNetStringer(t *testing.T) {
	tests := []struct {
		in   protocol.BitcoinNet
		want string
	}{
		{protocol.MainNet, "MainNet"},
		{protocol.RegTest, "RegTest"},
		{0xffffffff, "Unknown BitcoinNet (4294967295)"},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}

// TestBitcoinNetBytes ensures the magic is laid out little endian.
func TestBitcoinNetBytes(t *testing.T) {
	tests := []struct {
		in   protocol.BitcoinNet
		want [4]byte
	}{
		{protocol.MainNet, [4]byte{0xd5, 0xa5, 0xf1, 0xc1}},
		{protocol.RegTest, [4]byte{0xfa, 0xbf, 0xb5, 0xda}},
	}

	for i, test := range tests {
		if got := test.in.Bytes(); got != test.want {
			t.Errorf("Bytes #%d\n got: %x want: %x", i, got, test.want)
		}
	}
}
