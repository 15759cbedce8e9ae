// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package globalcfg

import (
	"math"
	"strconv"

	"github.com/pkt-cash/sidechaind/btcutil/er"
)

// Copyright (c) 2013, 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// round converts a floating point number, which may or may not be representable
// as an integer, to an integer by rounding to the nearest integer.
// This is performed by adding or subtracting 0.5 depending on the sign, and
// relying on integer truncation to round the value to the nearest unit.
func round(f float64) int64 {
	if f < 0 {
		return int64(f - 0.5)
	}
	return int64(f + 0.5)
}

// NewAmount converts a floating point number of coins into satoshi.  It
// errors if f is NaN or +-Infinity or the result is beyond MaxSatoshi.
func NewAmount(f float64) (int64, er.R) {
	switch {
	case math.IsNaN(f):
		fallthrough
	case math.IsInf(f, 1):
		fallthrough
	case math.IsInf(f, -1):
		return 0, er.New("invalid bitcoin amount")
	}

	amt := round(f * float64(SatoshiPerBitcoin()))
	if amt > MaxSatoshi() || amt < -MaxSatoshi() {
		return 0, er.Errorf("amount %v is out of range", f)
	}
	return amt, nil
}

// FormatAmount renders a number of satoshi as coins with enough decimals to
// show a single satoshi, for example 1000 satoshi is "0.00001000".
func FormatAmount(sat int64) string {
	decimals := len(strconv.FormatInt(SatoshiPerBitcoin(), 10)) - 1
	coins := float64(sat) / float64(SatoshiPerBitcoin())
	return strconv.FormatFloat(coins, 'f', decimals, 64)
}
