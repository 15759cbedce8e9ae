// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkt-cash/sidechaind/chaincfg"
)

// runArgs runs netparams and returns its exit status, stdout and stderr.
func runArgs(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func showJSON(t *testing.T, args ...string) *paramsView {
	code, out, stderr := runArgs(append(args, "show", "--json")...)
	require.Equal(t, exitOK, code, stderr)
	var v paramsView
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return &v
}

func TestList(t *testing.T) {
	code, out, _ := runArgs("-n", "regtest", "list")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "main")
	require.Contains(t, out, "regtest")
	require.Contains(t, out, chaincfg.MainNetParams.GenesisHash().String())
	require.Contains(t, out, "dab5bffa")
	require.Contains(t, out, "*")
}

func TestShow(t *testing.T) {
	v := showJSON(t, "-n", "regtest")
	require.Equal(t, "regtest", v.Name)
	require.Equal(t, "0xdab5bffa", v.Net)
	require.Equal(t, uint16(18742), v.DefaultPort)
	require.Len(t, v.Deployments, 4)
	require.Equal(t, "csv", v.Deployments[0].Name)
	require.True(t, v.Deployments[0].Force)
	require.Equal(t, uint32(108), v.Deployments[1].Threshold)
	require.Equal(t, uint32(269), v.Deployments[2].Threshold)
	require.Len(t, v.Checkpoints, 1)
	require.Equal(t, v.Genesis.Hash, v.Checkpoints[0].Hash)

	v = showJSON(t)
	require.Equal(t, "main", v.Name)
	require.Equal(t, uint16(8271), v.DefaultPort)
	require.Equal(t, uint32(0x1d00ffff), v.Pow.Bits)
	require.Equal(t, "0.00001000", v.MinRelay)
	require.Equal(t, "sc", v.AddressPrefix.Bech32)
	require.Len(t, v.BIP30, 2)
	require.Equal(t, int32(91842), v.BIP30[0].Height)
	require.Equal(t, int32(91880), v.BIP30[1].Height)
	require.Equal(t, chaincfg.MainNetParams.BIP30[91842].String(), v.BIP30[0].Hash)

	code, out, _ := runArgs("show")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, `"main"`)
	require.Contains(t, out, "DefaultPort: (uint16) 8271")
}

func TestUnknownNetwork(t *testing.T) {
	code, out, stderr := runArgs("-n", "testnet", "show")
	require.Equal(t, exitUsage, code)
	require.Empty(t, out)
	require.Contains(t, stderr, "ErrUnknownNetwork")
	require.Contains(t, stderr, `"testnet"`)
	require.Contains(t, stderr, "main, regtest")
}

func TestGenesis(t *testing.T) {
	for _, p := range []*chaincfg.Params{&chaincfg.MainNetParams, &chaincfg.RegressionNetParams} {
		code, out, stderr := runArgs("-n", p.Name, "genesis", "--hex")
		require.Equal(t, exitOK, code, stderr)
		require.Contains(t, out, "hash:             "+p.GenesisHash().String())
		require.Contains(t, out, "coinbase:         "+p.Genesis.MerkleRoot.String())
		require.Contains(t, out, "size:             313")
		require.Contains(t, out, hex.EncodeToString(p.GenesisBlock))
	}

	code, out, _ := runArgs("genesis")
	require.Equal(t, exitOK, code)
	require.NotContains(t, out, "hex:")
}

func TestCheckpoint(t *testing.T) {
	genesis := chaincfg.MainNetParams.GenesisHash().String()
	zero := strings.Repeat("0", 64)

	tests := []struct {
		args []string
		code int
		out  string
	}{
		{[]string{"checkpoint", "500"}, exitOK, "0 " + genesis},
		{[]string{"checkpoint", "0"}, exitOK, "0 " + genesis},
		{[]string{"checkpoint", "0", genesis}, exitOK, "matches checkpoint"},
		{[]string{"checkpoint", "0", zero}, exitFailure, ""},
		{[]string{"checkpoint", "10", zero}, exitOK, "no checkpoint at height 10"},
		{[]string{"checkpoint", "abc"}, exitUsage, ""},
		{[]string{"checkpoint", "0", "xyz"}, exitUsage, ""},
		{[]string{"checkpoint"}, exitUsage, ""},
		{[]string{"checkpoint", "1", "2", "3"}, exitUsage, ""},
	}
	for i, test := range tests {
		code, out, stderr := runArgs(test.args...)
		if code != test.code {
			t.Errorf("checkpoint #%d %v: got status %d want %d (%s)", i,
				test.args, code, test.code, stderr)
			continue
		}
		if !strings.Contains(out, test.out) {
			t.Errorf("checkpoint #%d %v: got %q want %q", i, test.args,
				out, test.out)
		}
	}
}

func TestDeploy(t *testing.T) {
	// segwit starts and then times out, it is required so the command
	// fails after printing every state.
	failed := writeFile(t, "failed.json", `{
		"segwit": [
			{"medianTime": 1479168000, "signalCount": 0},
			{"medianTime": 1510704001, "signalCount": 0}
		]
	}`)
	code, out, stderr := runArgs("deploy", failed)
	require.Equal(t, exitFailure, code)
	require.Contains(t, out, "ThresholdFailed")
	require.Contains(t, out, "testdummy")
	require.Contains(t, stderr, "ErrRequiredDeploymentFailed")

	// Nothing observed yet, every deployment is defined.
	empty := writeFile(t, "empty.json", `{}`)
	code, out, _ = runArgs("deploy", empty)
	require.Equal(t, exitOK, code)
	require.Equal(t, 4, strings.Count(out, "ThresholdDefined"))

	// csv is forced on regtest and active from the first window.
	forced := writeFile(t, "forced.json", `{"csv": [{"medianTime": 0, "signalCount": 0}]}`)
	code, out, _ = runArgs("-n", "regtest", "deploy", forced)
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "ThresholdActive")
	require.Contains(t, out, "never")

	unknown := writeFile(t, "unknown.json", `{"taproot": []}`)
	code, _, stderr = runArgs("deploy", unknown)
	require.Equal(t, exitFailure, code)
	require.Contains(t, stderr, "taproot")

	code, _, _ = runArgs("deploy", writeFile(t, "bad.json", `[1, 2`))
	require.Equal(t, exitFailure, code)

	code, _, _ = runArgs("deploy", filepath.Join(t.TempDir(), "missing.json"))
	require.Equal(t, exitFailure, code)

	code, _, _ = runArgs("deploy")
	require.Equal(t, exitUsage, code)
}

func TestConfigFile(t *testing.T) {
	path := writeFile(t, "netparams.conf", "network=regtest\n")

	v := showJSON(t, "-C", path)
	require.Equal(t, "regtest", v.Name)

	// The command line wins over the config file.
	v = showJSON(t, "-C", path, "-n", "main")
	require.Equal(t, "main", v.Name)

	code, _, _ := runArgs("-C", filepath.Join(t.TempDir(), "missing.conf"), "show")
	require.Equal(t, exitUsage, code)

	bad := writeFile(t, "bad.conf", "nosuchoption=1\n")
	code, _, _ = runArgs("-C", bad, "show")
	require.Equal(t, exitUsage, code)
}

func TestEnvironment(t *testing.T) {
	t.Setenv(networkEnvVar, "regtest")
	v := showJSON(t)
	require.Equal(t, "regtest", v.Name)

	v = showJSON(t, "--network", "main")
	require.Equal(t, "main", v.Name)
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "netparams.conf")

	code, out, stderr := runArgs("-C", path, "-n", "regtest", "init")
	require.Equal(t, exitOK, code, stderr)
	require.Contains(t, out, path)

	b, errr := os.ReadFile(path)
	require.NoError(t, errr)
	require.Contains(t, string(b), "\nnetwork=regtest\n")
	require.Contains(t, string(b), "; logfile=")

	v := showJSON(t, "-C", path)
	require.Equal(t, "regtest", v.Name)

	code, _, _ = runArgs("init")
	require.Equal(t, exitUsage, code)
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netparams.log")
	code, _, stderr := runArgs("--logfile", path, "--debuglevel", "debug",
		"-n", "regtest", "genesis")
	require.Equal(t, exitOK, code, stderr)
	require.Contains(t, stderr, "Selected network regtest")

	b, errr := os.ReadFile(path)
	require.NoError(t, errr)
	require.Contains(t, string(b), "Genesis block of regtest verified")
}

func TestUsage(t *testing.T) {
	code, _, _ := runArgs()
	require.Equal(t, exitUsage, code)

	code, out, _ := runArgs("--help")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "checkpoint")

	code, _, _ = runArgs("nosuchcommand")
	require.Equal(t, exitUsage, code)

	code, _, _ = runArgs("--debuglevel", "loud", "list")
	require.Equal(t, exitUsage, code)

	code, _, _ = runArgs("list", "extra")
	require.Equal(t, exitUsage, code)

	code, out, _ = runArgs("-V")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "version")
}
