package application

import (
	"bufio"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/search"
	"github.com/eugenenazirov/minigrep/internal/storage"
)

// App encapsulates the dependencies of a single search run.
type App struct {
	cfg      config.Config
	storage  storage.Storage
	searcher search.Searcher
	out      io.Writer
	logger   *zap.Logger
}

// New wires an App for cfg. Matches are written to out.
func New(cfg config.Config, store storage.Storage, out io.Writer, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &App{
		cfg:      cfg,
		storage:  store,
		searcher: search.New(cfg.IgnoreCase()),
		out:      out,
		logger:   logger,
	}
}

// Run reads the configured file, searches it, and prints every matching line.
// All matches are computed before the first one is written.
func (a *App) Run() error {
	a.logger.Debug("searching file",
		zap.String("query", a.cfg.Query()),
		zap.String("file_path", a.cfg.FilePath()),
		zap.Bool("ignore_case", a.cfg.IgnoreCase()),
	)

	contents, err := a.storage.ReadContents(a.cfg.FilePath())
	if err != nil {
		a.logger.Error("failed to load file", zap.String("file_path", a.cfg.FilePath()), zap.Error(err))
		return fmt.Errorf("load %q: %w", a.cfg.FilePath(), err)
	}

	// matches reference contents, which stays alive until they are written
	matches := a.searcher.Search(a.cfg.Query(), contents)
	a.logger.Debug("search complete", zap.Int("matches", len(matches)))

	if err := writeLines(a.out, matches); err != nil {
		a.logger.Error("failed to write results", zap.Error(err))
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

func writeLines(out io.Writer, lines []string) error {
	w := bufio.NewWriter(out)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}
