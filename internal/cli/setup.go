package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/helxplatform/ddindex/internal/checksum"
	"github.com/helxplatform/ddindex/internal/config"
	"github.com/helxplatform/ddindex/internal/indexer"
	"github.com/helxplatform/ddindex/internal/logging"
	"github.com/helxplatform/ddindex/internal/store"
	"github.com/helxplatform/ddindex/pkg/ddindex"
)

// runEnvironment is everything a reporting command needs to execute an
// indexing run: the resolved repository references, a ready indexer,
// and the logger the rest of the run shares.
type runEnvironment struct {
	repos   []ddindex.RepositoryRef
	indexer *indexer.Indexer
	logger  ddindex.Logger
}

// newRunEnvironment resolves credentials and repository arguments for
// one command invocation. A .env file in the working directory is
// loaded first so local setups can keep LAKECTL_* variables out of the
// shell profile; a missing .env is not an error.
func newRunEnvironment(cmd *cobra.Command, repositories []string) (*runEnvironment, error) {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	if err := godotenv.Load(); err == nil {
		logger.Verbose("loaded environment from .env")
	}

	repos, err := parseRepositories(repositories)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ddindex.ErrInvalidConfig, err)
	}
	if cfg.EndpointURL == "" {
		return nil, fmt.Errorf("%w: no lakeFS endpoint configured; set %s or create ~/%s",
			ddindex.ErrInvalidConfig, config.EnvEndpointURL, config.ConfigFileName)
	}

	logger.Verbose("lakeFS endpoint: %s", cfg.EndpointURL)

	return &runEnvironment{
		repos:   repos,
		indexer: indexer.New(store.NewLakeFSClient(cfg, logger), checksum.New(), logger),
		logger:  logger,
	}, nil
}

// parseRepositories parses repo[:ref] arguments, rejecting empty names.
func parseRepositories(repositories []string) ([]ddindex.RepositoryRef, error) {
	refs := make([]ddindex.RepositoryRef, 0, len(repositories))
	for _, arg := range repositories {
		ref := ddindex.ParseRepositoryRef(arg)
		if ref.Name == "" {
			return nil, fmt.Errorf("%w: empty repository name in %q", ddindex.ErrInvalidConfig, arg)
		}
		if ref.Ref == "" {
			return nil, fmt.Errorf("%w: empty ref in %q", ddindex.ErrInvalidConfig, arg)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
