// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// netparams prints, verifies and evaluates the parameters of the sidechain
// networks.
//
// Usage:
//
//	netparams [-n network] [-C configfile] <command> [args]
//
// Commands are list, show, genesis, checkpoint, deploy and init.  The exit
// status is 0 on success, 1 when a command fails and 2 for an unknown network
// or a malformed command line.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/jrick/logrotate/rotator"

	"github.com/pkt-cash/sidechaind/btcutil/er"
	"github.com/pkt-cash/sidechaind/chaincfg"
	"github.com/pkt-cash/sidechaind/chaincfg/globalcfg"
	"github.com/pkt-cash/sidechaind/pktconfig"
	"github.com/pkt-cash/sidechaind/pktconfig/version"
	"github.com/pkt-cash/sidechaind/pktlog/log"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// app is the state shared by every command: the parsed options and, once
// the command line has been parsed, the selected network.
type app struct {
	cfg    config
	params *chaincfg.Params
	stdout io.Writer
	stderr io.Writer

	logRotator *rotator.Rotator
}

// setup selects the network and configures logging.  It runs after the
// command line is parsed and before the command executes.
func (a *app) setup() er.R {
	if err := log.SetLogLevels(a.cfg.DebugLevel); err != nil {
		return errUsage.New("", err)
	}
	if a.cfg.LogFile != "" {
		r, errr := rotator.New(a.cfg.LogFile, 10*1024, false, 3)
		if errr != nil {
			return errUsage.New("failed to create log file rotator", er.E(errr))
		}
		a.logRotator = r
		log.SetOutput(io.MultiWriter(a.stderr, r))
	} else {
		log.SetOutput(a.stderr)
	}

	log.WarnIfPrerelease()

	p, err := chaincfg.Lookup(a.cfg.Network)
	if err != nil {
		return chaincfg.ErrUnknownNetwork.New(
			fmt.Sprintf("%q, known networks are %s", a.cfg.Network,
				strings.Join(chaincfg.Names(), ", ")), nil)
	}
	a.params = p
	globalcfg.SelectConfig(globalcfg.SidechainDefaults(p.Name))
	log.Debugf("Selected network %s", p.Name)
	return nil
}

// close undoes setup.
func (a *app) close() {
	log.Flush()
	log.SetOutput(os.Stdout)
	if a.logRotator != nil {
		a.logRotator.Close()
	}
	if a.params != nil {
		globalcfg.RemoveConfig()
	}
}

func (a *app) newParser() *flags.Parser {
	parser := flags.NewParser(&a.cfg, flags.HelpFlag|flags.PassDoubleDash)
	commands := []struct {
		name, short, long string
		cmd               flags.Commander
	}{
		{"list", "List the known networks",
			"Print a table of every registered network, the selected one marked with *.",
			&listCmd{app: a}},
		{"show", "Show the selected network",
			"Print every parameter of the selected network.",
			&showCmd{app: a}},
		{"genesis", "Decode and verify the genesis block",
			"Decode the serialized genesis block of the selected network and check it against the declared genesis hash.",
			&genesisCmd{app: a}},
		{"checkpoint", "Look up or verify a checkpoint",
			"checkpoint <height> prints the nearest checkpoint at or below height, checkpoint <height> <hash> verifies hash against the checkpoint at height.",
			&checkpointCmd{app: a}},
		{"deploy", "Evaluate deployments",
			"deploy <file> reads window observations, a JSON object of deployment name to [{\"medianTime\": t, \"signalCount\": n}, ...], and prints the state of every deployment.",
			&deployCmd{app: a}},
		{"init", "Write a config file",
			"Write a config file selecting the current network to the --configfile path.",
			&initCmd{app: a}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.cmd); err != nil {
			panic(err)
		}
	}
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if err := a.setup(); err != nil {
			return er.Native(err)
		}
		return cmd.Execute(args)
	}
	return parser
}

// run executes netparams with the given arguments and returns the exit
// status.
func run(args []string, stdout, stderr io.Writer) int {
	preCfg, command, err := preParse(args)
	if err != nil {
		fmt.Fprintln(stderr, err.Message())
		return exitUsage
	}
	if preCfg.ShowVersion {
		fmt.Fprintf(stdout, "%s version %s\n", version.UserAgentName(),
			version.Version())
		return exitOK
	}

	a := &app{stdout: stdout, stderr: stderr}
	defer a.close()

	parser := a.newParser()
	if preCfg.ConfigFile != "" {
		// init may be creating the file.
		if _, errr := os.Stat(preCfg.ConfigFile); errr == nil || command != "init" {
			if err := pktconfig.ParseConfigFile(parser, preCfg.ConfigFile); err != nil {
				fmt.Fprintf(stderr, "Error parsing config file %s: %s\n",
					preCfg.ConfigFile, err.Message())
				return exitUsage
			}
		}
	}

	if _, errr := parser.ParseArgs(args); errr != nil {
		if e, ok := errr.(*flags.Error); ok {
			if e.Type == flags.ErrHelp {
				fmt.Fprintln(stdout, e.Message)
				return exitOK
			}
			fmt.Fprintln(stderr, e.Message)
			return exitUsage
		}
		err := er.E(errr)
		fmt.Fprintln(stderr, err.Message())
		if chaincfg.ErrUnknownNetwork.Is(err) || errUsage.Is(err) {
			return exitUsage
		}
		return exitFailure
	}
	return exitOK
}

func main() {
	version.SetUserAgentName("netparams")
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
