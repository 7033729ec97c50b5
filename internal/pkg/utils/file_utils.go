package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	chainFilePrefix = "eip155-"
	chainFileSuffix = ".json"
)

// ChainFileName returns the upstream file name for a chain ID, e.g. "eip155-1.json".
func ChainFileName(chainID uint64) string {
	return chainFilePrefix + strconv.FormatUint(chainID, 10) + chainFileSuffix
}

// IsChainFileName reports whether name has the eip155-<id>.json shape, without validating the id.
func IsChainFileName(name string) bool {
	return strings.HasPrefix(name, chainFilePrefix) && strings.HasSuffix(name, chainFileSuffix)
}

// ChainIDFromFileName extracts the chain ID from a file named eip155-<id>.json.
func ChainIDFromFileName(name string) (uint64, error) {
	if !IsChainFileName(name) {
		return 0, fmt.Errorf("file name %q is not in the form %s<CHAIN_ID>%s", name, chainFilePrefix, chainFileSuffix)
	}
	raw := strings.TrimSuffix(strings.TrimPrefix(name, chainFilePrefix), chainFileSuffix)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("chain id in file name %q is not a valid uint64: %w", name, err)
	}
	return id, nil
}

// GetEnv returns the value of the environment variable key, or fallback when it is unset or empty.
func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
