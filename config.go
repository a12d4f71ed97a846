package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const defaultConfigPath = "javauml.toml"

// fileConfig is the layout of the config file. Every value is optional, so
// that only the ones that are set override the defaults
type fileConfig struct {
	Output    *string  `toml:"output"`
	Directory *string  `toml:"directory"`
	Recursive *bool    `toml:"recursive"`
	Exclude   []string `toml:"exclude"`
	Jobs      *int     `toml:"jobs"`

	DirectMembersOnly *bool `toml:"direct_members_only"`

	Diagram struct {
		FullyQualifiedName *bool `toml:"fully_qualified_name"`
		OmitConstructors   *bool `toml:"omit_constructors"`
		OmitMethods        *bool `toml:"omit_methods"`
		OmitStaticMethods  *bool `toml:"omit_static_methods"`
		PackagePrivate     *bool `toml:"package_private"`
		Relations          *bool `toml:"relations"`
		Realization        *bool `toml:"realization"`
	} `toml:"diagram"`
}

// loadConfig reads a config file. An empty path looks for the default file,
// and is not an error when that file does not exist
func loadConfig(path string) (*fileConfig, string, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil, "", nil
		}
	}

	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, path, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, path, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return &cfg, path, nil
}

// applyConfig fills in the settings from the config file, for every flag that
// was not given on the command line
func applyConfig(flags *pflag.FlagSet, s *settings) error {
	cfg, path, err := loadConfig(s.configPath)
	if err != nil {
		return err
	}
	if cfg == nil {
		return nil
	}
	log.WithField("path", path).Debug("Loaded config")

	setString := func(name string, dst *string, value *string) {
		if value != nil && !flags.Changed(name) {
			*dst = *value
		}
	}
	setBool := func(name string, dst *bool, value *bool) {
		if value != nil && !flags.Changed(name) {
			*dst = *value
		}
	}

	setString("output", &s.output, cfg.Output)
	setString("directory", &s.directory, cfg.Directory)
	setBool("recursive", &s.recursive, cfg.Recursive)
	if cfg.Exclude != nil && !flags.Changed("exclude") {
		s.exclude = cfg.Exclude
	}
	if cfg.Jobs != nil && !flags.Changed("jobs") {
		s.jobs = *cfg.Jobs
	}
	setBool("direct-members-only", &s.parse.DirectMembersOnly, cfg.DirectMembersOnly)

	setBool("fully-qualified-name", &s.diagram.FullyQualifiedNames, cfg.Diagram.FullyQualifiedName)
	setBool("omit-constructors", &s.diagram.OmitConstructors, cfg.Diagram.OmitConstructors)
	setBool("omit-methods", &s.diagram.OmitMethods, cfg.Diagram.OmitMethods)
	setBool("omit-static-methods", &s.diagram.OmitStaticMethods, cfg.Diagram.OmitStaticMethods)
	setBool("package-private", &s.diagram.PackagePrivate, cfg.Diagram.PackagePrivate)
	setBool("relations", &s.diagram.Relations, cfg.Diagram.Relations)
	setBool("realization", &s.diagram.Realization, cfg.Diagram.Realization)

	return nil
}
