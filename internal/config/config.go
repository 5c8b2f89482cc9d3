// Package config loads converter settings from a py2smt.toml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"py2smt/internal/translate"
)

// FileName is the configuration file looked up next to the input.
const FileName = "py2smt.toml"

// File mirrors the on-disk layout:
//
//	[types]
//	parameters = "Int"
//	return = "Int"
//
//	[output]
//	strict = false
//	path = "out.smt2"
type File struct {
	Types  TypesSection  `toml:"types"`
	Output OutputSection `toml:"output"`
}

type TypesSection struct {
	Parameters string `toml:"parameters"`
	Return     string `toml:"return"`
}

type OutputSection struct {
	Strict bool   `toml:"strict"`
	Path   string `toml:"path"`
}

// Load reads and parses one configuration file.
func Load(path string) (*File, error) {
	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file at %q: %w", path, err)
	}

	cfg := &File{}
	if err := toml.Unmarshal(buff, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file at %q: %w", path, err)
	}
	return cfg, nil
}

// Discover looks for py2smt.toml in the directory containing the input
// file. A missing file is not an error; defaults apply.
func Discover(inputPath string) (*File, error) {
	candidate := filepath.Join(filepath.Dir(inputPath), FileName)
	if _, err := os.Stat(candidate); err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, err
	}
	return Load(candidate)
}

// Options converts the file contents into translation options. Unset
// fields stay zero so the translator's own defaults apply.
func (f *File) Options() translate.Options {
	return translate.Options{
		ParamType:  f.Types.Parameters,
		ReturnType: f.Types.Return,
		Strict:     f.Output.Strict,
	}
}
