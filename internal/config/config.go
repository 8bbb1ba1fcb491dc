// Package config resolves command-line defaults from YAML files and dotenv
// files. Precedence, highest first: flags, environment, YAML config.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/habitlog/internal/constants"
)

// Paths lists the YAML files consulted, in order
var Paths = []string{
	constants.DefaultConfigDir + "/config.yaml",
	"./" + constants.AppName + ".yaml",
}

// YAML is a kong.ConfigurationLoader. Top-level keys match flag names in
// kebab or snake case; a mapping keyed by command name scopes values to
// that command's flags:
//
//	db: ~/habits.db
//	no_color: true
//	report:
//	  type: month
func YAML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid YAML config: %w", err)
	}

	var f kong.ResolverFunc = func(_ *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if cmd := commandName(parent); cmd != "" {
			if nested, ok := values[cmd].(map[string]any); ok {
				if v, ok := lookup(nested, flag.Name); ok {
					return v, nil
				}
			}
		}
		if v, ok := lookup(values, flag.Name); ok {
			return v, nil
		}
		return nil, nil
	}
	return f, nil
}

func commandName(p *kong.Path) string {
	if p == nil || p.Command == nil {
		return ""
	}
	return p.Command.Name
}

func lookup(values map[string]any, name string) (any, bool) {
	if v, ok := values[name]; ok {
		return v, true
	}
	v, ok := values[strings.ReplaceAll(name, "-", "_")]
	return v, ok
}

// LoadEnv loads dotenv files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}
