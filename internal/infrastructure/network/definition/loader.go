package networkdefinition

import (
	"io/fs"
	"path"
	"runtime"
	"strings"

	"evm_chains/internal/app/port"
	"evm_chains/internal/domain/entity"
	"evm_chains/internal/infrastructure/chaindata"
	"evm_chains/internal/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Load reads every *.json chain file in dir of fsys and builds a Registry.
// It either returns a complete registry or a *entity.DataFormatError; a partial registry is never returned.
// When several files are broken, the error refers to the first one in directory order.
func Load(fsys fs.FS, dir string, log port.Logger) (*Registry, error) {
	log = logger.OrNop(log)

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		log.Error("Failed to read chain data directory", "directory", dir, "error", err)
		return nil, &entity.DataFormatError{Kind: entity.KindFile, File: dir, Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".json") {
			log.Debug("Skipping non-chain entry in chain data directory", "entry", e.Name())
			continue
		}
		names = append(names, e.Name())
	}

	chains := make([]entity.Chain, len(names))
	errs := make([]error, len(names))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		g.Go(func() error {
			data, err := fs.ReadFile(fsys, path.Join(dir, name))
			if err != nil {
				errs[i] = &entity.DataFormatError{Kind: entity.KindFile, File: name, Err: err}
				return nil
			}
			chains[i], errs[i] = chaindata.Decode(name, data)
			return nil
		})
	}
	_ = g.Wait()

	for i, err := range errs {
		if err != nil {
			log.Error("Failed to load chain file", "file", names[i], "error", err)
			return nil, err
		}
	}

	r, err := New(chains)
	if err != nil {
		log.Error("Chain dataset is inconsistent", "error", err)
		return nil, err
	}

	log.Info("Chain registry loaded", "chains", r.Len(), "directory", dir)
	return r, nil
}

// LoadEmbedded builds a Registry from the dataset compiled into the binary.
func LoadEmbedded(log port.Logger) (*Registry, error) {
	return Load(chaindata.FS(), chaindata.Dir, log)
}
