// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"

	"github.com/pkt-cash/sidechaind/btcutil/er"
)

// Err is the type of all errors returned by the wire package.
var Err er.ErrorType = er.NewErrorType("wire.Err")

// MessageError describes an issue with a serialized structure, such as a non
// canonical variable length integer or an oversized length prefix.
//
// This provides a mechanism for the caller to differentiate between general
// io errors such as io.EOF and issues that resulted from malformed data.
var MessageError = Err.Code("wire.MessageError")

// ErrMalformedGenesis indicates a serialized genesis block could not be
// decoded: the input was truncated at a field boundary, the transaction
// count was not one, or the embedded coinbase transaction did not parse.
var ErrMalformedGenesis = Err.CodeWithDetail("ErrMalformedGenesis",
	"malformed genesis block")

// messageError creates an error for the given function and description.
func messageError(f string, desc string) er.R {
	return MessageError.New(fmt.Sprintf("%s: %s", f, desc), nil)
}

// malformed wraps a decoding failure with the name of the field at which it
// happened.
func malformed(field string, err er.R) er.R {
	return ErrMalformedGenesis.New(fmt.Sprintf("reading %s", field), err)
}
