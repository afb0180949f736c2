package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/foodinme/internal/catalog"
	"github.com/theirongolddev/foodinme/internal/cli"
	"github.com/theirongolddev/foodinme/internal/config"
	"github.com/theirongolddev/foodinme/internal/fileutil"
	"github.com/theirongolddev/foodinme/internal/ledger"
	"github.com/theirongolddev/foodinme/internal/logger"
	"github.com/theirongolddev/foodinme/internal/pipeline"
	"github.com/theirongolddev/foodinme/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagDataDir string
	flagQuiet   bool
	flagNoCache bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "foodinme",
	Short:         "Track what you eat against a daily nutrition goal",
	Long:          "Define food items, record what you eat by date, set a daily goal and compare each day against it.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runShell,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: data/ beside the executable)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip SQLite cache, reparse every ledger file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log diagnostics to stderr")
}

// appEnv bundles what every command needs: the effective config and the
// stores rooted at the resolved data directory.
type appEnv struct {
	cfg     config.Config
	log     *zap.Logger
	files   *fileutil.Store
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
}

func newEnv(cfg config.Config, root string, log *zap.Logger) *appEnv {
	files := fileutil.New(root, log)
	cat := catalog.New(files, log)
	return &appEnv{
		cfg:     cfg,
		log:     log,
		files:   files,
		catalog: cat,
		ledger:  ledger.New(files, cat, log),
	}
}

// openEnv loads config and resolves the data directory with the precedence
// flag > environment > config file > default.
func openEnv() (*appEnv, error) {
	log, err := logger.New(flagVerbose)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	root := resolveDataDir(cfg)
	log.Debug("environment ready", zap.String("data_dir", root), zap.String("config", config.ConfigPath()))
	return newEnv(cfg, root, log), nil
}

func resolveDataDir(cfg config.Config) string {
	switch {
	case flagDataDir != "":
		return flagDataDir
	case cfg.General.DataDir != "":
		return cfg.General.DataDir
	default:
		return fileutil.DefaultRoot()
	}
}

func (e *appEnv) close() {
	logger.Sync(e.log)
}

// loadDays is the shared multi-day loading path used by daily and the
// dashboard. Uses the SQLite cache when available for fast subsequent runs.
func (e *appEnv) loadDays() (*pipeline.LoadResult, error) {
	userDir := e.files.Path(fileutil.UserDirName)

	progressFn := func(current, total int) {
		if flagQuiet {
			return
		}
		if current%50 == 0 || current == total {
			fmt.Fprintf(os.Stderr, "\r  Reading ledger [%d/%d]", current, total)
		}
	}

	if !flagNoCache {
		cache, err := store.Open(pipeline.CachePath())
		if err != nil {
			e.log.Warn("cache unavailable, doing full parse", zap.Error(err))
		} else {
			defer cache.Close()

			cr, err := pipeline.LoadWithCache(userDir, cache, progressFn)
			if err == nil {
				if !flagQuiet && cr.Reparsed > 0 {
					fmt.Fprintf(os.Stderr, "\r  %s cached + %d reparsed    \n",
						cli.FormatNumber(int64(cr.CacheHits)), cr.Reparsed)
				}
				e.reportFileErrors(cr.FileErrors)
				return &cr.LoadResult, nil
			}
			e.log.Warn("cache error, falling back to full parse", zap.Error(err))
		}
	}

	result, err := pipeline.Load(userDir, progressFn)
	if err != nil {
		return nil, err
	}
	if !flagQuiet && result.TotalFiles > 0 {
		fmt.Fprintf(os.Stderr, "\r  Read %s ledger files    \n", cli.FormatNumber(int64(result.ParsedFiles)))
	}
	e.reportFileErrors(result.FileErrors)
	return result, nil
}

func (e *appEnv) reportFileErrors(errs []pipeline.FileError) {
	for _, fe := range errs {
		e.log.Debug("ledger file skipped", zap.String("path", fe.Path), zap.Error(fe.Err))
		if !flagQuiet {
			fmt.Fprintln(os.Stderr, cli.RenderWarning("  skipped: "+fe.Err.Error()))
		}
	}
}
