package networkdefinition

import (
	"slices"
	"testing"
	"testing/fstest"

	"evm_chains/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireKind(t *testing.T, err error, kind entity.DataFormatKind) *entity.DataFormatError {
	t.Helper()
	var dfe *entity.DataFormatError
	require.ErrorAs(t, err, &dfe)
	assert.Equal(t, kind, dfe.Kind, "unexpected error: %v", err)
	return dfe
}

func TestLoad_SkipsDirectoriesAndNonJSON(t *testing.T) {
	fsys := fixtureFS(map[uint64]string{1: "Ethereum Mainnet"})
	fsys[testDir+"/README.md"] = &fstest.MapFile{Data: []byte("# chains")}
	fsys[testDir+"/nested/eip155-2.json"] = &fstest.MapFile{Data: []byte(chainJSON(2, "Nested"))}

	r, err := Load(fsys, testDir, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())
}

func TestLoad_CountsUniqueIDs(t *testing.T) {
	names := map[uint64]string{}
	for id := uint64(1); id <= 50; id++ {
		names[id] = "Chain"
	}
	r, err := Load(fixtureFS(names), testDir, nil)
	require.NoError(t, err)

	seen := map[uint64]struct{}{}
	for c := range r.All() {
		_, dup := seen[c.ChainID]
		require.False(t, dup, "chain %d yielded twice", c.ChainID)
		seen[c.ChainID] = struct{}{}
	}
	assert.Len(t, seen, 50)
	assert.Len(t, r.FindByName("chain"), 50)
}

func TestLoad_IsIdempotent(t *testing.T) {
	fsys := fixtureFS(map[uint64]string{1: "Ethereum Mainnet", 56: "BNB", 137: "Polygon"})

	a, err := Load(fsys, testDir, nil)
	require.NoError(t, err)
	b, err := Load(fsys, testDir, nil)
	require.NoError(t, err)

	assert.Equal(t, slices.Collect(a.All()), slices.Collect(b.All()))
}

func TestLoad_MissingDirectory(t *testing.T) {
	_, err := Load(fstest.MapFS{}, testDir, nil)
	requireKind(t, err, entity.KindFile)
}

func TestLoad_FailsWholeLoadOnBadFile(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
		kind entity.DataFormatKind
	}{
		{
			name: "broken json",
			file: "eip155-5.json",
			data: `{"name": "Broken",`,
			kind: entity.KindJSON,
		},
		{
			name: "malformed rpc url",
			file: "eip155-5.json",
			data: `{"name":"Bad","chain":"ETH","rpc":["not a url"],"faucets":[],"nativeCurrency":{"name":"Ether","symbol":"ETH","decimals":18},"shortName":"bad","chainId":5,"networkId":5}`,
			kind: entity.KindInvalid,
		},
		{
			name: "id mismatch",
			file: "eip155-5.json",
			data: chainJSON(6, "Mismatch"),
			kind: entity.KindInvalid,
		},
		{
			name: "bad file name",
			file: "goerli.json",
			data: chainJSON(5, "Goerli"),
			kind: entity.KindFile,
		},
		{
			name: "duplicate id via leading zero",
			file: "eip155-01.json",
			data: chainJSON(1, "Shadow"),
			kind: entity.KindDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fixtureFS(map[uint64]string{1: "Ethereum Mainnet", 137: "Polygon"})
			fsys[testDir+"/"+tt.file] = &fstest.MapFile{Data: []byte(tt.data)}

			r, err := Load(fsys, testDir, nil)
			assert.Nil(t, r)
			requireKind(t, err, tt.kind)
		})
	}
}

func TestLoadEmbedded(t *testing.T) {
	r, err := LoadEmbedded(nil)
	require.NoError(t, err)
	require.Greater(t, r.Len(), 0)

	eth, err := r.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Ethereum Mainnet", eth.Name)
	assert.Equal(t, "ETH", eth.NativeCurrency.Symbol)
	assert.Equal(t, uint8(18), eth.NativeCurrency.Decimals)
	assert.NotEmpty(t, eth.RPC)
	assert.Contains(t, eth.ExplorerURLs(), "https://etherscan.io")
}
