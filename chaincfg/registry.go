// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"fmt"
	"strings"
	"sync"

	"github.com/pkt-cash/sidechaind/btcutil/er"
	"github.com/pkt-cash/sidechaind/pktlog/log"
	"github.com/pkt-cash/sidechaind/wire/protocol"
)

// Registry is a set of validated network parameters, indexed by name, magic
// and key/address prefix.  A Registry is safe for concurrent use.  Once
// frozen no further networks can be registered and it never changes again.
type Registry struct {
	mtx    sync.RWMutex
	frozen bool

	nets    []*Params
	byName  map[string]*Params
	byMagic map[protocol.BitcoinNet]*Params

	// owners maps every prefix in use to the network using it, keyed
	// by prefix kind so that values of different kinds don't clash.
	owners map[string]string

	pubKeyHashAddrIDs    map[byte]struct{}
	scriptHashAddrIDs    map[byte]struct{}
	bech32SegwitPrefixes map[string]struct{}
	hdPrivToPubKeyIDs    map[[4]byte][]byte
}

// NewRegistry creates a registry holding the given networks, registered in
// order.  The first network which fails to register aborts construction.
func NewRegistry(params ...*Params) (*Registry, er.R) {
	r := &Registry{
		byName:               make(map[string]*Params),
		byMagic:              make(map[protocol.BitcoinNet]*Params),
		owners:               make(map[string]string),
		pubKeyHashAddrIDs:    make(map[byte]struct{}),
		scriptHashAddrIDs:    make(map[byte]struct{}),
		bech32SegwitPrefixes: make(map[string]struct{}),
		hdPrivToPubKeyIDs:    make(map[[4]byte][]byte),
	}
	for _, p := range params {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func hdKeyID(id uint32) [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], id)
	return b
}

// prefixKeys lists every registry-wide unique value of p, each tagged with
// its kind.  Address version bytes share one namespace, as do the two
// extended key magics, so that decoding is never ambiguous.
func prefixKeys(p *Params) []string {
	kp := &p.KeyPrefix
	ap := &p.AddressPrefix
	return []string{
		fmt.Sprintf("privkey %#02x", kp.PrivKey),
		fmt.Sprintf("hd magic %#08x", kp.XPubKey),
		fmt.Sprintf("hd magic %#08x", kp.XPrivKey),
		fmt.Sprintf("hd prefix %q", kp.XPubKey58),
		fmt.Sprintf("hd prefix %q", kp.XPrivKey58),
		fmt.Sprintf("coin type %d", kp.CoinType),
		fmt.Sprintf("address version %#02x", ap.PubKeyHash),
		fmt.Sprintf("address version %#02x", ap.ScriptHash),
		fmt.Sprintf("bech32 %q", strings.ToLower(ap.Bech32)),
	}
}

// Register validates the network parameters and adds them to the registry.
// This errors with ErrDuplicateNet if a network of the same name is already
// registered and with ErrInvalidProfile if the parameters are invalid or
// share their magic or any prefix with a registered network.  A network
// which fails to register leaves the registry unchanged.  The registry keeps
// its own copy of p.
//
// Network parameters should be registered by a main package as early as
// possible.  Then, library packages may lookup networks or network
// parameters based on inputs and work regardless of the network being
// standard or not.
func (r *Registry) Register(p *Params) er.R {
	if p == nil {
		return invalid("nil network parameters")
	}
	if err := p.Validate(); err != nil {
		return err
	}
	p = p.Clone()

	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.frozen {
		return invalid("registry is frozen, cannot register %s", p.Name)
	}
	if _, ok := r.byName[p.Name]; ok {
		return ErrDuplicateNet.New(p.Name, nil)
	}
	if other, ok := r.byMagic[p.Net]; ok {
		return invalid("magic collision: %s and %s both use %#08x",
			other.Name, p.Name, uint32(p.Net))
	}
	keys := prefixKeys(p)
	for _, k := range keys {
		if owner, ok := r.owners[k]; ok {
			return invalid("prefix collision: %s of %s already used by %s",
				k, p.Name, owner)
		}
	}

	for _, k := range keys {
		r.owners[k] = p.Name
	}
	r.nets = append(r.nets, p)
	r.byName[p.Name] = p
	r.byMagic[p.Net] = p
	r.pubKeyHashAddrIDs[p.AddressPrefix.PubKeyHash] = struct{}{}
	r.scriptHashAddrIDs[p.AddressPrefix.ScriptHash] = struct{}{}
	pub := hdKeyID(p.KeyPrefix.XPubKey)
	r.hdPrivToPubKeyIDs[hdKeyID(p.KeyPrefix.XPrivKey)] = pub[:]

	// A valid Bech32 encoded segwit address always has as prefix the
	// human-readable part for the given net followed by '1'.
	r.bech32SegwitPrefixes[strings.ToLower(p.AddressPrefix.Bech32)+"1"] = struct{}{}

	log.Debugf("Registered network [%s] magic [%08x] genesis [%s]",
		p.Name, uint32(p.Net), p.GenesisHash())
	return nil
}

// Freeze prevents any further registration.
func (r *Registry) Freeze() {
	r.mtx.Lock()
	r.frozen = true
	r.mtx.Unlock()
}

// Lookup returns a copy of the network registered under name.
func (r *Registry) Lookup(name string) (*Params, er.R) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	if p, ok := r.byName[name]; ok {
		return p.Clone(), nil
	}
	return nil, ErrUnknownNetwork.New(fmt.Sprintf("[%s]", name), nil)
}

// NetworkForMagic returns the network identified by the given magic.
func (r *Registry) NetworkForMagic(net protocol.BitcoinNet) (*Params, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	p, ok := r.byMagic[net]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

// Len returns the number of registered networks.
func (r *Registry) Len() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return len(r.nets)
}

func (r *Registry) at(i int) *Params {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	if i < len(r.nets) {
		return r.nets[i].Clone()
	}
	return nil
}

// Names returns the names of the registered networks in registration order.
func (r *Registry) Names() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	out := make([]string, 0, len(r.nets))
	for _, p := range r.nets {
		out = append(out, p.Name)
	}
	return out
}

// ForEach calls f with every registered network in registration order.  If f
// returns an error the iteration stops and the error is returned, unless it
// is er.LoopBreak in which case nil is returned.
func (r *Registry) ForEach(f func(p *Params) er.R) er.R {
	for i := 0; ; i++ {
		p := r.at(i)
		if p == nil {
			return nil
		}
		if err := f(p); err != nil {
			if er.IsLoopBreak(err) {
				return nil
			}
			return err
		}
	}
}

// NetworkIter walks the registered networks in registration order.  It is
// lazy, each call to Next reads the registry.
//
//	it := registry.Networks()
//	for it.Next() {
//		fmt.Println(it.Name())
//	}
type NetworkIter struct {
	r   *Registry
	i   int
	cur *Params
}

// Networks returns a new iterator positioned before the first network.
// Every call returns an independent iterator.
func (r *Registry) Networks() *NetworkIter {
	return &NetworkIter{r: r, i: -1}
}

// Next advances to the next network and reports whether there is one.
func (it *NetworkIter) Next() bool {
	it.i++
	it.cur = it.r.at(it.i)
	return it.cur != nil
}

// Name returns the name of the current network.
func (it *NetworkIter) Name() string {
	if it.cur == nil {
		return ""
	}
	return it.cur.Name
}

// Params returns the current network.
func (it *NetworkIter) Params() *Params {
	return it.cur
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-pubkey-hash address on any registered network.  This is used when
// decoding an address string into a specific address type.  It is up to the
// caller to check both this and IsScriptHashAddrID and decide whether an
// address is a pubkey hash address, script hash address, neither, or
// undeterminable (if both return true).
func (r *Registry) IsPubKeyHashAddrID(id byte) bool {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	_, ok := r.pubKeyHashAddrIDs[id]
	return ok
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-script-hash address on any registered network.
func (r *Registry) IsScriptHashAddrID(id byte) bool {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	_, ok := r.scriptHashAddrIDs[id]
	return ok
}

// IsBech32SegwitPrefix returns whether the prefix is a known prefix for segwit
// addresses on any registered network.  This is used when decoding an
// address string into a specific address type.
func (r *Registry) IsBech32SegwitPrefix(prefix string) bool {
	prefix = strings.ToLower(prefix)
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	_, ok := r.bech32SegwitPrefixes[prefix]
	return ok
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id.  When the provided
// id is not registered, the ErrUnknownHDKeyID error will be returned.
func (r *Registry) HDPrivateKeyToPublicKeyID(id []byte) ([]byte, er.R) {
	if len(id) != 4 {
		return nil, ErrUnknownHDKeyID.Default()
	}

	var key [4]byte
	copy(key[:], id)
	r.mtx.RLock()
	pubBytes, ok := r.hdPrivToPubKeyIDs[key]
	r.mtx.RUnlock()
	if !ok {
		return nil, ErrUnknownHDKeyID.Default()
	}

	out := make([]byte, len(pubBytes))
	copy(out, pubBytes)
	return out, nil
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the registry of the built in networks, main and
// regtest.  It is built and frozen on first use.  The built in networks are
// hard-coded so a failure to register them is a programming error and
// panics.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		r, err := NewRegistry(&MainNetParams, &RegressionNetParams)
		if err != nil {
			panic("failed to register network: " + err.String())
		}
		r.Freeze()
		defaultRegistry = r
	})
	return defaultRegistry
}

// Lookup returns the built in network with the given name.
func Lookup(name string) (*Params, er.R) {
	return DefaultRegistry().Lookup(name)
}

// Names returns the names of the built in networks.
func Names() []string {
	return DefaultRegistry().Names()
}

// Networks returns an iterator over the built in networks.
func Networks() *NetworkIter {
	return DefaultRegistry().Networks()
}
