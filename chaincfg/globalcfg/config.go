// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package globalcfg contains configuration which must be available
// anywhere in the project, do not import anything which is part of sidechaind
// other than btcutil/er.
package globalcfg

import (
	"sync"
)

const (
	// satoshiPerBitcoin is the number of atomic units in one coin.
	satoshiPerBitcoin = 1e8

	// maxSatoshi is the maximum transaction amount allowed in satoshi.
	maxSatoshi = 21e6 * satoshiPerBitcoin
)

// Config is the global config which is accessible anywhere in the app.
type Config struct {
	// Network is the name of the selected network profile.
	Network string

	MaxSatoshi        int64
	SatoshiPerBitcoin int64
}

var (
	mtx        sync.RWMutex
	gConf      Config
	registered bool
)

// SidechainDefaults creates a new config for the named network with the
// default amount limits.
func SidechainDefaults(network string) Config {
	return Config{
		Network:           network,
		MaxSatoshi:        maxSatoshi,
		SatoshiPerBitcoin: satoshiPerBitcoin,
	}
}

// SelectConfig registers the active network.  It only succeeds once, later
// calls return false and leave the selection unchanged.
func SelectConfig(conf Config) bool {
	mtx.Lock()
	defer mtx.Unlock()
	if registered {
		return false
	}
	registered = true
	gConf = conf
	return true
}

// RemoveConfig deletes the config, used in tests
func RemoveConfig() bool {
	mtx.Lock()
	defer mtx.Unlock()
	if !registered {
		return false
	}
	registered = false
	gConf = Config{}
	return true
}

// IsSelected tells whether SelectConfig has been called.
func IsSelected() bool {
	mtx.RLock()
	defer mtx.RUnlock()
	return registered
}

func get() Config {
	mtx.RLock()
	defer mtx.RUnlock()
	if !registered {
		panic("globalcfg requested but not yet registered")
	}
	return gConf
}

// Network returns the name of the selected network.
func Network() string {
	return get().Network
}

// SatoshiPerBitcoin returns the number of atomic units per "coin"
func SatoshiPerBitcoin() int64 {
	return get().SatoshiPerBitcoin
}

// MaxSatoshi returns the maximum number of atomic units of currency
func MaxSatoshi() int64 {
	return get().MaxSatoshi
}
