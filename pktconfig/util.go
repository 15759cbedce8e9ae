// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pktconfig

import (
	"os"
	"path/filepath"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/pkt-cash/sidechaind/btcutil/er"
)

// CreateDefaultConfigFile copies sampleFile to the given destination path,
// replacing the value of every key=value line whose key is in values.
// Commented out lines such as "; key=" are uncommented when their key is
// replaced.
func CreateDefaultConfigFile(destinationPath, sampleFile string, values map[string]string) er.R {
	// Create the destination directory if it does not exists
	errr := os.MkdirAll(filepath.Dir(destinationPath), 0700)
	if errr != nil {
		return er.E(errr)
	}

	dest, errr := os.OpenFile(destinationPath,
		os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if errr != nil {
		return er.E(errr)
	}
	defer dest.Close()

	lines := strings.Split(strings.TrimSuffix(sampleFile, "\n"), "\n")
	for _, line := range lines {
		if key, ok := configKey(line); ok {
			if v, ok := values[key]; ok {
				line = key + "=" + v
			}
		}
		if _, errr := dest.WriteString(line + "\n"); errr != nil {
			return er.E(errr)
		}
	}

	return nil
}

// configKey returns the key of a key=value line, which may be commented out.
func configKey(line string) (string, bool) {
	line = strings.TrimSpace(line)
	line = strings.TrimSpace(strings.TrimLeft(line, ";#"))
	i := strings.Index(line, "=")
	if i <= 0 || strings.ContainsAny(line[:i], " \t") {
		return "", false
	}
	return line[:i], true
}

// ParseConfigFile applies the ini file at path to the options of parser.
// Call it before parsing the command line with the same parser so that the
// command line takes precedence.
func ParseConfigFile(parser *flags.Parser, path string) er.R {
	if _, errr := os.Stat(path); errr != nil {
		return er.E(errr)
	}
	if errr := flags.NewIniParser(parser).ParseFile(path); errr != nil {
		return er.E(errr)
	}
	return nil
}
