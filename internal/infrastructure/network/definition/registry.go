package networkdefinition

import (
	"fmt"
	"iter"
	"strings"

	"evm_chains/internal/app/port"
	"evm_chains/internal/domain/entity"
)

var _ port.ChainRegistry = (*Registry)(nil)

// Registry is an immutable, index-backed set of chains. It is safe for concurrent use.
type Registry struct {
	chains []entity.Chain // dataset order
	byID   map[uint64]int // chain ID -> index into chains
}

// New builds a registry from chains, keeping their order. Duplicate chain IDs are a DataFormatError.
func New(chains []entity.Chain) (*Registry, error) {
	r := &Registry{
		chains: make([]entity.Chain, 0, len(chains)),
		byID:   make(map[uint64]int, len(chains)),
	}
	for _, c := range chains {
		if _, exists := r.byID[c.ChainID]; exists {
			return nil, &entity.DataFormatError{
				Kind: entity.KindDuplicate,
				Err:  fmt.Errorf("chain id %d (%s) declared more than once", c.ChainID, c.Name),
			}
		}
		r.byID[c.ChainID] = len(r.chains)
		r.chains = append(r.chains, c.Clone())
	}
	return r, nil
}

// Get returns the chain with the given ID, or an *entity.NotFoundError.
func (r *Registry) Get(chainID uint64) (entity.Chain, error) {
	c, ok := r.Lookup(chainID)
	if !ok {
		return entity.Chain{}, &entity.NotFoundError{ChainID: chainID}
	}
	return c, nil
}

// Lookup returns the chain with the given ID and whether it exists.
func (r *Registry) Lookup(chainID uint64) (entity.Chain, bool) {
	if r == nil {
		return entity.Chain{}, false
	}
	i, ok := r.byID[chainID]
	if !ok {
		return entity.Chain{}, false
	}
	return r.chains[i].Clone(), true
}

// All yields every chain in dataset order.
func (r *Registry) All() iter.Seq[entity.Chain] {
	return func(yield func(entity.Chain) bool) {
		if r == nil {
			return
		}
		for _, c := range r.chains {
			if !yield(c.Clone()) {
				return
			}
		}
	}
}

// FindByName returns every chain whose name equals name under Unicode case folding.
func (r *Registry) FindByName(name string) []entity.Chain {
	return r.filter(func(c *entity.Chain) bool {
		return strings.EqualFold(c.Name, name)
	})
}

// Search returns chains whose name, short name or chain family contains query, ignoring case.
// An empty query matches nothing.
func (r *Registry) Search(query string) []entity.Chain {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []entity.Chain{}
	}
	return r.filter(func(c *entity.Chain) bool {
		return strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.ShortName), q) ||
			strings.Contains(strings.ToLower(c.Chain), q)
	})
}

// Len returns the number of chains.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.chains)
}

func (r *Registry) filter(match func(*entity.Chain) bool) []entity.Chain {
	out := []entity.Chain{}
	if r == nil {
		return out
	}
	for i := range r.chains {
		if match(&r.chains[i]) {
			out = append(out, r.chains[i].Clone())
		}
	}
	return out
}
