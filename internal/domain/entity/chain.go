package entity

// ChainStatus is the lifecycle status the upstream dataset assigns to a chain.
type ChainStatus string

const (
	ChainStatusActive     ChainStatus = "active"
	ChainStatusIncubating ChainStatus = "incubating"
	ChainStatusDeprecated ChainStatus = "deprecated"
)

// Chain describes one EVM-compatible network as published in ethereum-lists/chains.
// Values handed out by the registry are copies; mutating them does not affect the registry.
type Chain struct {
	Name           string         `json:"name" yaml:"name" validate:"required"`
	Chain          string         `json:"chain" yaml:"chain" validate:"required"` // e.g. "ETH"
	Title          string         `json:"title,omitempty" yaml:"title,omitempty"`
	Icon           string         `json:"icon,omitempty" yaml:"icon,omitempty"`
	RPC            []string       `json:"rpc" yaml:"rpc" validate:"dive,endpoint"` // order = preference
	Features       []Feature      `json:"features,omitempty" yaml:"features,omitempty" validate:"dive"`
	Faucets        []string       `json:"faucets" yaml:"faucets" validate:"dive,endpoint"`
	NativeCurrency NativeCurrency `json:"nativeCurrency" yaml:"nativeCurrency"`
	InfoURL        string         `json:"infoURL" yaml:"infoURL" validate:"omitempty,url"`
	ShortName      string         `json:"shortName" yaml:"shortName" validate:"required"`
	Network        string         `json:"network,omitempty" yaml:"network,omitempty"` // legacy, e.g. "mainnet"
	ChainID        uint64         `json:"chainId" yaml:"chainId"`
	NetworkID      uint64         `json:"networkId" yaml:"networkId"`
	Slip44         *uint64        `json:"slip44,omitempty" yaml:"slip44,omitempty"`
	Ens            *Ens           `json:"ens,omitempty" yaml:"ens,omitempty"`
	Explorers      []Explorer     `json:"explorers,omitempty" yaml:"explorers,omitempty" validate:"dive"`
	Parent         *Parent        `json:"parent,omitempty" yaml:"parent,omitempty"`
	RedFlags       []string       `json:"redFlags,omitempty" yaml:"redFlags,omitempty"`
	Status         ChainStatus    `json:"status,omitempty" yaml:"status,omitempty" validate:"omitempty,oneof=active incubating deprecated"`
}

// NativeCurrency is the currency gas is paid in.
type NativeCurrency struct {
	Name     string `json:"name" yaml:"name" validate:"required"`
	Symbol   string `json:"symbol" yaml:"symbol" validate:"required"`
	Decimals uint8  `json:"decimals" yaml:"decimals"`
}

// Explorer is a block explorer for a chain.
type Explorer struct {
	Name     string `json:"name" yaml:"name"`
	URL      string `json:"url" yaml:"url" validate:"required,endpoint"`
	Standard string `json:"standard" yaml:"standard"` // e.g. "EIP3091"
	Icon     string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Ens holds the ENS registry deployment of a chain.
type Ens struct {
	Registry string `json:"registry" yaml:"registry" validate:"required"` // 0x-prefixed, checksummed
}

// Feature is an EIP the chain supports, e.g. "EIP155" or "EIP1559".
type Feature struct {
	Name string `json:"name" yaml:"name" validate:"required"`
}

// Parent links an L2 (or shard) to its parent chain.
type Parent struct {
	Type    string   `json:"type" yaml:"type"`   // e.g. "L2"
	Chain   string   `json:"chain" yaml:"chain"` // e.g. "eip155-1"
	Bridges []Bridge `json:"bridges,omitempty" yaml:"bridges,omitempty" validate:"dive"`
}

// Bridge is a bridge UI between a chain and its parent.
type Bridge struct {
	URL string `json:"url" yaml:"url" validate:"required,endpoint"`
}

// ExplorerURLs returns explorer URLs in dataset order.
func (c Chain) ExplorerURLs() []string {
	urls := make([]string, 0, len(c.Explorers))
	for _, e := range c.Explorers {
		urls = append(urls, e.URL)
	}
	return urls
}

// IsDeprecated reports whether upstream marked the chain as deprecated.
func (c Chain) IsDeprecated() bool {
	return c.Status == ChainStatusDeprecated
}

// Clone returns a deep copy so the registry can hand out values without sharing backing arrays.
func (c Chain) Clone() Chain {
	out := c
	out.RPC = cloneSlice(c.RPC)
	out.Features = cloneSlice(c.Features)
	out.Faucets = cloneSlice(c.Faucets)
	out.Explorers = cloneSlice(c.Explorers)
	out.RedFlags = cloneSlice(c.RedFlags)
	if c.Slip44 != nil {
		v := *c.Slip44
		out.Slip44 = &v
	}
	if c.Ens != nil {
		ens := *c.Ens
		out.Ens = &ens
	}
	if c.Parent != nil {
		parent := *c.Parent
		parent.Bridges = cloneSlice(c.Parent.Bridges)
		out.Parent = &parent
	}
	return out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
