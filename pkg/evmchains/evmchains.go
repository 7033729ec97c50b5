// Package evmchains exposes the embedded ethereum-lists/chains snapshot as typed lookups.
//
// The package-level functions share one registry that is loaded on first use and never
// changes afterwards, so they are safe to call from any goroutine.
package evmchains

import (
	"iter"
	"sync"

	"evm_chains/internal/domain/entity"
	"evm_chains/internal/infrastructure/chaindata"
	networkdefinition "evm_chains/internal/infrastructure/network/definition"
	"evm_chains/internal/pkg/logger"
)

type (
	Chain           = entity.Chain
	NativeCurrency  = entity.NativeCurrency
	Explorer        = entity.Explorer
	Ens             = entity.Ens
	Feature         = entity.Feature
	Parent          = entity.Parent
	Bridge          = entity.Bridge
	ChainStatus     = entity.ChainStatus
	DataFormatError = entity.DataFormatError
	DataFormatKind  = entity.DataFormatKind
	NotFoundError   = entity.NotFoundError
	Registry        = networkdefinition.Registry
)

const (
	KindFile      = entity.KindFile
	KindJSON      = entity.KindJSON
	KindInvalid   = entity.KindInvalid
	KindDuplicate = entity.KindDuplicate
)

// ErrNotFound matches every NotFoundError under errors.Is.
var ErrNotFound = entity.ErrNotFound

var defaultRegistry = sync.OnceValues(func() (*Registry, error) {
	return networkdefinition.LoadEmbedded(logger.NewSlogAdapter())
})

// Load builds a fresh registry from the embedded dataset.
// Each call returns an independent registry with identical content.
func Load() (*Registry, error) {
	return networkdefinition.LoadEmbedded(nil)
}

// Default returns the process-wide registry, loading it on first call.
// A load failure is returned on every call; it is never retried.
func Default() (*Registry, error) {
	return defaultRegistry()
}

// MustDefault is like Default but panics if the embedded dataset is malformed.
func MustDefault() *Registry {
	r, err := Default()
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the chain with the given ID from the default registry.
func Get(chainID uint64) (Chain, error) {
	r, err := Default()
	if err != nil {
		return Chain{}, err
	}
	return r.Get(chainID)
}

// All yields every chain of the default registry in dataset order.
// It yields nothing if the embedded dataset failed to load; the error is logged and
// returned by Default.
func All() iter.Seq[Chain] {
	return allOrLog(Default())
}

func allOrLog(r *Registry, err error) iter.Seq[Chain] {
	if err != nil {
		logger.Error("Embedded chain dataset failed to load, yielding no chains", "error", err)
		return func(func(Chain) bool) {}
	}
	return r.All()
}

// FindByName returns chains of the default registry whose name equals name, ignoring case.
func FindByName(name string) ([]Chain, error) {
	r, err := Default()
	if err != nil {
		return nil, err
	}
	return r.FindByName(name), nil
}

// Search returns chains of the default registry whose name, short name or chain family contains query.
func Search(query string) ([]Chain, error) {
	r, err := Default()
	if err != nil {
		return nil, err
	}
	return r.Search(query), nil
}

// LoadChain decodes a single chain file from the embedded dataset without building a registry.
func LoadChain(chainID uint64) (Chain, error) {
	return chaindata.ReadFile(chaindata.FS(), chaindata.Dir, chainID)
}
