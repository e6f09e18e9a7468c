package main

import (
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/minigrep/internal/application"
	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/logging"
	"github.com/eugenenazirov/minigrep/internal/storage"
)

const envLogLevel = "MINIGREP_LOG_LEVEL"

func main() {
	os.Exit(run(os.Args, os.LookupEnv, os.Stdout, os.Stderr))
}

// newCLI describes the command line for usage and error output. Arguments are
// resolved by config.Build: -i takes an optional value and every unknown token
// is rejected, which kingpin's parser does not allow.
func newCLI(stderr io.Writer) *kingpin.Application {
	app := kingpin.New("minigrep", "Print every line of a file that contains a query string.")
	app.ErrorWriter(stderr)
	app.UsageWriter(stderr)
	app.HelpFlag.Hidden()

	app.Flag("query", "Text to search for.").Short('q').PlaceHolder("QUERY").String()
	app.Flag("file_path", "File to search.").Short('f').PlaceHolder("PATH").String()
	app.Flag("ignore_case", "Ignore letter case (0 or 1); overrides the environment.").
		Short('i').Envar(config.EnvIgnoreCase).PlaceHolder("0|1").String()

	return app
}

func run(args []string, lookupEnv config.LookupEnv, stdout, stderr io.Writer) int {
	cli := newCLI(stderr)

	cfg, err := config.Build(args, lookupEnv)
	if err != nil {
		cli.Errorf("problem parsing arguments: %v", err)
		cli.Usage(nil)
		return 1
	}

	var level string
	if lookupEnv != nil {
		level, _ = lookupEnv(envLogLevel)
	}
	logger, err := logging.New(level, stderr)
	if err != nil {
		cli.Errorf("failed to initialize logger: %v", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := application.New(cfg, storage.NewFileStorage(), stdout, logger)
	if err := app.Run(); err != nil {
		logger.Debug("run failed", zap.Error(err))
		cli.Errorf("application error: %v", err)
		return 1
	}

	return 0
}
