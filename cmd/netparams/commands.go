// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/jedib0t/go-pretty/table"
	jsoniter "github.com/json-iterator/go"

	"github.com/pkt-cash/sidechaind/blockchain"
	"github.com/pkt-cash/sidechaind/btcutil/er"
	"github.com/pkt-cash/sidechaind/chaincfg"
	"github.com/pkt-cash/sidechaind/chaincfg/chainhash"
	"github.com/pkt-cash/sidechaind/pktconfig"
	"github.com/pkt-cash/sidechaind/pktlog/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type listCmd struct {
	app *app
}

func (c *listCmd) Execute(args []string) error {
	if len(args) != 0 {
		return er.Native(errUsage.New("list takes no arguments", nil))
	}
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"", "Name", "Magic", "Port", "RPC port",
		"Genesis", "Last checkpoint", "Deployments"})
	it := chaincfg.Networks()
	for it.Next() {
		p := it.Params()
		selected := ""
		if p == c.app.params {
			selected = "*"
		}
		tw.AppendRow(table.Row{selected, p.Name, fmt.Sprintf("%08x", uint32(p.Net)),
			p.DefaultPort, p.RPCPort, p.GenesisHash().String(),
			p.LastCheckpoint().Height, len(p.Deployments)})
	}
	fmt.Fprintln(c.app.stdout, tw.Render())
	return nil
}

type showCmd struct {
	app  *app
	JSON bool `long:"json" description:"Print JSON instead of a structure dump"`
}

func (c *showCmd) Execute(args []string) error {
	if len(args) != 0 {
		return er.Native(errUsage.New("show takes no arguments", nil))
	}
	v := newParamsView(c.app.params)
	if !c.JSON {
		cs := spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		}
		cs.Fdump(c.app.stdout, v)
		return nil
	}
	b, errr := json.MarshalIndent(v, "", "  ")
	if errr != nil {
		return errr
	}
	fmt.Fprintln(c.app.stdout, string(b))
	return nil
}

type genesisCmd struct {
	app *app
	Hex bool `long:"hex" description:"Also print the serialized block"`
}

func (c *genesisCmd) Execute(args []string) error {
	if len(args) != 0 {
		return er.Native(errUsage.New("genesis takes no arguments", nil))
	}
	p := c.app.params
	block, err := p.DecodeGenesis()
	if err != nil {
		return er.Native(err)
	}
	hash := block.BlockHash()
	if !hash.IsEqual(p.GenesisHash()) {
		return er.Native(chaincfg.ErrGenesisHashMismatch.New(
			fmt.Sprintf("block hashes to %s, declared %s", hash, p.GenesisHash()), nil))
	}
	coinbase := block.Transactions[0]
	txid := coinbase.TxHash()
	if !txid.IsEqual(&block.Header.MerkleRoot) {
		return er.Native(chaincfg.ErrGenesisHashMismatch.New(
			fmt.Sprintf("coinbase %s is not the merkle root %s", txid,
				block.Header.MerkleRoot), nil))
	}

	w := c.app.stdout
	hdr := &block.Header
	fmt.Fprintf(w, "hash:             %s\n", hash)
	fmt.Fprintf(w, "version:          %d\n", hdr.Version)
	fmt.Fprintf(w, "prevBlock:        %s\n", hdr.PrevBlock)
	fmt.Fprintf(w, "merkleRoot:       %s\n", hdr.MerkleRoot)
	fmt.Fprintf(w, "time:             %d (%s)\n", hdr.Timestamp,
		time.Unix(int64(hdr.Timestamp), 0).UTC().Format(time.RFC3339))
	fmt.Fprintf(w, "withdrawalBundle: %s\n", hdr.WithdrawalBundle)
	fmt.Fprintf(w, "mainchainBlock:   %s\n", hdr.MainchainBlock)
	fmt.Fprintf(w, "coinbase:         %s\n", txid)
	fmt.Fprintf(w, "size:             %d\n", block.SerializeSize())
	if c.Hex {
		fmt.Fprintf(w, "hex:              %s\n", hex.EncodeToString(p.GenesisBlock))
	}
	log.Debugf("Genesis block of %s verified", p.Name)
	return nil
}

type checkpointCmd struct {
	app *app
}

func (c *checkpointCmd) Execute(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return er.Native(errUsage.New("checkpoint <height> [hash]", nil))
	}
	h, errr := strconv.ParseInt(args[0], 10, 32)
	if errr != nil {
		return er.Native(errUsage.New("invalid height "+args[0], nil))
	}
	height := int32(h)
	cps := c.app.params.Checkpoints
	w := c.app.stdout

	if len(args) == 1 {
		cp, ok := cps.NearestAtOrBelow(height)
		if !ok {
			fmt.Fprintf(w, "no checkpoint at or below height %d\n", height)
			return nil
		}
		fmt.Fprintf(w, "%d %s\n", cp.Height, cp.Hash)
		return nil
	}

	hash, err := chainhash.NewHashFromStr(args[1])
	if err != nil {
		return er.Native(errUsage.New("invalid hash "+args[1], err))
	}
	if !cps.VerifyCheckpoint(height, hash) {
		want, _ := cps.Lookup(height)
		return er.Native(er.Errorf("block %s at height %d does not match "+
			"checkpoint %s", hash, height, want))
	}
	if cps.IsCheckpoint(height, hash) {
		fmt.Fprintf(w, "height %d matches checkpoint %s\n", height, hash)
	} else {
		fmt.Fprintf(w, "no checkpoint at height %d\n", height)
	}
	return nil
}

type deployCmd struct {
	app *app
}

func (c *deployCmd) Execute(args []string) error {
	if len(args) != 1 {
		return er.Native(errUsage.New("deploy <file>", nil))
	}
	b, errr := os.ReadFile(args[0])
	if errr != nil {
		return errr
	}
	var history map[string][]blockchain.WindowObservation
	if errr := json.Unmarshal(b, &history); errr != nil {
		return er.Native(er.Errorf("cannot parse %s: %v", args[0], errr))
	}

	p := c.app.params
	statuses, err := blockchain.DeploymentStates(p, history)
	if statuses == nil && err != nil {
		return er.Native(err)
	}

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Deployment", "Bit", "Start", "Timeout",
		"Threshold", "Window", "", "State"})
	for _, s := range statuses {
		d := &s.Deployment
		flag := ""
		switch {
		case d.Force:
			flag = "force"
		case d.Required:
			flag = "required"
		}
		tw.AppendRow(table.Row{d.Name, d.Bit, deploymentTime(d.StartTime),
			deploymentTime(d.Timeout), d.EffectiveThreshold(p),
			d.EffectiveWindow(p), flag, s.State})
	}
	fmt.Fprintln(c.app.stdout, tw.Render())
	return er.Native(err)
}

func deploymentTime(t int64) string {
	switch t {
	case chaincfg.StartAlways:
		return "always"
	case chaincfg.TimeoutNever:
		return "never"
	}
	return strconv.FormatInt(t, 10)
}

type initCmd struct {
	app *app
}

func (c *initCmd) Execute(args []string) error {
	if len(args) != 0 {
		return er.Native(errUsage.New("init takes no arguments", nil))
	}
	path := c.app.cfg.ConfigFile
	if path == "" {
		return er.Native(errUsage.New("init needs --configfile", nil))
	}
	values := map[string]string{
		"network":    c.app.params.Name,
		"debuglevel": c.app.cfg.DebugLevel,
	}
	if c.app.cfg.LogFile != "" {
		values["logfile"] = c.app.cfg.LogFile
	}
	if err := pktconfig.CreateDefaultConfigFile(path, sampleConfig, values); err != nil {
		return er.Native(err)
	}
	fmt.Fprintf(c.app.stdout, "wrote %s\n", path)
	return nil
}
