// Package config loads persisted default flag values from a TOML file,
// following the tqw package's os.ReadFile-then-toml.Unmarshal pattern.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds default CLI flag values so repeated invocations over the
// same grammar don't need to repeat flags on the command line.
type Config struct {
	GrammarFile    string `toml:"grammar_file"`
	SentenceFile   string `toml:"sentence_file"`
	TraceVerbose   bool   `toml:"trace_verbose"`
	AllowAmbiguous bool   `toml:"allow_ambiguous"`
}

// Load reads and decodes a Config from the TOML file at path. A missing
// file is not an error; it yields the zero Config so the CLI's own flag
// defaults apply.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
