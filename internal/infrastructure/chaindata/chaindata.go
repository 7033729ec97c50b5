// Package chaindata embeds a pinned snapshot of ethereum-lists/chains and decodes its files.
package chaindata

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"evm_chains/internal/domain/entity"
	"evm_chains/internal/pkg/utils"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

// Dir is the directory inside FS holding one eip155-<id>.json file per chain.
const Dir = "data/chains"

//go:embed data/chains/*.json
var files embed.FS

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = newValidator()
)

// endpointSchemes are the schemes accepted by the "endpoint" tag.
var endpointSchemes = map[string]struct{}{
	"http":  {},
	"https": {},
	"ws":    {},
	"wss":   {},
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("endpoint", isEndpoint); err != nil {
		panic(fmt.Sprintf("chaindata: register endpoint validation: %v", err))
	}
	return v
}

// isEndpoint accepts absolute http(s) or ws(s) URLs with a host.
func isEndpoint(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil || u.Hostname() == "" {
		return false
	}
	_, ok := endpointSchemes[u.Scheme]
	return ok
}

// FS returns the embedded dataset.
func FS() fs.FS {
	return files
}

// Decode parses and validates the contents of the chain file called name.
// The chain ID in the file name must match the chainId field.
func Decode(name string, data []byte) (entity.Chain, error) {
	fileID, err := utils.ChainIDFromFileName(name)
	if err != nil {
		return entity.Chain{}, &entity.DataFormatError{Kind: entity.KindFile, File: name, Err: err}
	}

	var chain entity.Chain
	if err := json.Unmarshal(data, &chain); err != nil {
		return entity.Chain{}, &entity.DataFormatError{Kind: entity.KindJSON, File: name, Err: err}
	}

	if chain.ChainID != fileID {
		return entity.Chain{}, &entity.DataFormatError{
			Kind: entity.KindInvalid,
			File: name,
			Err:  fmt.Errorf("chainId %d does not match file name id %d", chain.ChainID, fileID),
		}
	}

	if err := validate.Struct(chain); err != nil {
		return entity.Chain{}, &entity.DataFormatError{Kind: entity.KindInvalid, File: name, Err: err}
	}

	if chain.Ens != nil {
		registry, err := normalizeAddress(chain.Ens.Registry)
		if err != nil {
			return entity.Chain{}, &entity.DataFormatError{Kind: entity.KindInvalid, File: name, Err: fmt.Errorf("ens registry: %w", err)}
		}
		chain.Ens.Registry = registry
	}

	return chain, nil
}

// ReadFile reads and decodes a single chain file from dir in fsys.
func ReadFile(fsys fs.FS, dir string, chainID uint64) (entity.Chain, error) {
	name := utils.ChainFileName(chainID)
	data, err := fs.ReadFile(fsys, path.Join(dir, name))
	if err != nil {
		return entity.Chain{}, &entity.DataFormatError{Kind: entity.KindFile, File: name, Err: err}
	}
	return Decode(name, data)
}

var errNotHexAddress = errors.New("not a 0x-prefixed 20 byte hex address")

func normalizeAddress(s string) (string, error) {
	if !strings.HasPrefix(s, "0x") || !common.IsHexAddress(s) {
		return "", fmt.Errorf("%q: %w", s, errNotHexAddress)
	}
	return common.HexToAddress(s).Hex(), nil
}
