// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/pkt-cash/sidechaind/btcutil/er"
)

// networkEnvVar selects the network when --network is not given.
const networkEnvVar = "SIDECHAIND_NETWORK"

// errUsage marks a mistake on the command line, it exits with status 2 like
// an unknown network does.
var errUsage = er.GenericErrorType.CodeWithDetail("netparams.errUsage",
	"invalid usage")

// config defines the global options of netparams.  Every option can also be
// set in the config file, in the same ini format as sidechaind.conf.
//
// Options are taken from, last one wins: their default, the environment,
// the config file and the command line.
type config struct {
	Network     string `short:"n" long:"network" env:"SIDECHAIND_NETWORK" default:"main" description:"Network to use (main, regtest)"`
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	DebugLevel  string `short:"d" long:"debuglevel" default:"info" description:"Logging level {trace, debug, info, warn, error, critical} or file.go=level pairs"`
	LogFile     string `long:"logfile" description:"Also write the log to this file, rotated as it grows"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
}

// preParse reads the options which decide how the rest of the command line
// is parsed, the config file path and the version flag, and returns them
// along with the name of the command.  Everything else, including the
// options of the command, is ignored.
func preParse(args []string) (*config, string, er.R) {
	preCfg := config{}
	parser := flags.NewParser(&preCfg, flags.IgnoreUnknown)
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, "", errUsage.New("", er.E(err))
	}
	command := ""
	for _, arg := range rest {
		if !strings.HasPrefix(arg, "-") {
			command = arg
			break
		}
	}
	return &preCfg, command, nil
}

// sampleConfig is the config file written by the init command.
const sampleConfig = `; Network selected by netparams, one of main, regtest.
network=main

; Logging level {trace, debug, info, warn, error, critical} or file.go=level
; pairs.
debuglevel=info

; Also write the log to this file.
; logfile=
`
