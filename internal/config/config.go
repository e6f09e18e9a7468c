package config

// EnvIgnoreCase names the environment variable consulted for the default
// case-sensitivity setting.
const EnvIgnoreCase = "IGNORE_CASE"

// LookupEnv reports the value of an environment variable and whether it is set.
// os.LookupEnv satisfies it.
type LookupEnv func(key string) (string, bool)

// Config holds the resolved run parameters. The zero value searches for the
// empty string in the empty path, case-sensitively.
type Config struct {
	query      string
	filePath   string
	ignoreCase bool
}

// New returns a Config with the given values, bypassing argument parsing.
func New(query, filePath string, ignoreCase bool) Config {
	return Config{
		query:      query,
		filePath:   filePath,
		ignoreCase: ignoreCase,
	}
}

// Query returns the text to search for.
func (c Config) Query() string { return c.query }

// FilePath returns the path of the file to search.
func (c Config) FilePath() string { return c.filePath }

// IgnoreCase reports whether matching ignores letter case.
func (c Config) IgnoreCase() bool { return c.ignoreCase }

// Build resolves a Config from the raw process arguments (args[0] is the
// program path and is skipped) and the environment. Missing -q or -f flags are
// not an error; the fields stay empty.
func Build(args []string, lookupEnv LookupEnv) (Config, error) {
	ignoreCase, err := applyEnvConfig(lookupEnv)
	if err != nil {
		return Config{}, err
	}

	if len(args) > 0 {
		args = args[1:]
	}

	cfg := Config{ignoreCase: ignoreCase}
	if err := applyCLIArgs(&cfg, args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyEnvConfig derives the default case-sensitivity from IGNORE_CASE.
func applyEnvConfig(lookupEnv LookupEnv) (bool, error) {
	if lookupEnv == nil {
		return false, nil
	}

	raw, ok := lookupEnv(EnvIgnoreCase)
	if !ok {
		return false, nil
	}

	value, ok := parseSwitch(raw)
	if !ok {
		return false, errEnvIgnoreCase
	}
	return value, nil
}

// applyCLIArgs scans the arguments left to right. Every flag takes the token
// right after it as its value, whatever that token looks like.
func applyCLIArgs(cfg *Config, args []string) error {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-q", "--query":
			if i+1 >= len(args) {
				return errMissingQuery
			}
			i++
			cfg.query = args[i]

		case "-f", "--file_path":
			if i+1 >= len(args) {
				return errMissingPath
			}
			i++
			cfg.filePath = args[i]

		case "-i", "--ignore_case":
			// the value is optional; a trailing -i keeps the current setting
			if i+1 >= len(args) {
				continue
			}
			i++
			value, ok := parseSwitch(args[i])
			if !ok {
				return errFlagIgnoreCase
			}
			cfg.ignoreCase = value

		default:
			return illegalArgument(args[i])
		}
	}
	return nil
}

func parseSwitch(raw string) (bool, bool) {
	switch raw {
	case "0":
		return false, true
	case "1":
		return true, true
	default:
		return false, false
	}
}
