package networkdefinition

import (
	"fmt"
	"testing/fstest"
)

const testDir = "chains"

func chainJSON(id uint64, name string) string {
	return fmt.Sprintf(`{
  "name": %q,
  "chain": "ETH",
  "rpc": ["https://rpc.example.org/%d", "wss://ws.example.org/%d"],
  "faucets": [],
  "nativeCurrency": {"name": "Ether", "symbol": "ETH", "decimals": 18},
  "infoURL": "https://example.org",
  "shortName": "c%d",
  "chainId": %d,
  "networkId": %d,
  "explorers": [{"name": "scan", "url": "https://scan%d.example.org", "standard": "EIP3091"}]
}`, name, id, id, id, id, id, id)
}

func fixtureFS(chains map[uint64]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for id, name := range chains {
		fsys[fmt.Sprintf("%s/eip155-%d.json", testDir, id)] = &fstest.MapFile{Data: []byte(chainJSON(id, name))}
	}
	return fsys
}
