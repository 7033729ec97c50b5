package port

import (
	"iter"

	"evm_chains/internal/domain/entity"
)

// ChainRegistry defines read-only access to the chain dataset.
type ChainRegistry interface {
	// Get returns the chain with the given ID or an *entity.NotFoundError.
	Get(chainID uint64) (entity.Chain, error)

	// Lookup returns the chain with the given ID and true, or false if there is none.
	Lookup(chainID uint64) (entity.Chain, bool)

	// All yields every chain in dataset order. The sequence can be ranged over repeatedly.
	All() iter.Seq[entity.Chain]

	// FindByName returns chains whose name equals name, ignoring case.
	FindByName(name string) []entity.Chain

	// Search returns chains whose name, short name or chain family contains query, ignoring case.
	Search(query string) []entity.Chain

	// Len returns the number of chains.
	Len() int
}
