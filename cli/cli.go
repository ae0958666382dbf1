// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli sets a config struct from, in increasing order of
// precedence, its `default:` struct tags, a TOML or YAML config file,
// and command line flags.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"
)

// Options are the options passed to [Config].
type Options struct {

	// AppName is the name of the app, used for flag usage output.
	AppName string

	// DefaultFiles are the config files tried in order when no
	// config file is given on the command line. Missing files are
	// skipped; only the first existing one is opened.
	DefaultFiles []string
}

// DefaultOptions returns default options for the given app name.
func DefaultOptions(appName string) *Options {
	return &Options{AppName: appName}
}

// Config sets the given config object (a pointer to a struct) from
// its `default:` tags, then from the config file named by the
// --config flag or the first existing [Options.DefaultFiles] entry,
// and finally from the flags in args. It returns the arguments left
// over after flag parsing. If args contains -h or --help, it returns
// [pflag.ErrHelp] after printing usage.
func Config(opts *Options, cfg any, args ...string) ([]string, error) {
	if opts == nil {
		opts = DefaultOptions("")
	}
	if err := SetFromDefaults(cfg); err != nil {
		return nil, err
	}

	// flags are parsed once to find the config file, then again
	// after it has been opened so that they override its values.
	file := ""
	fs, err := newFlagSet(opts, cfg, &file)
	if err != nil {
		return nil, err
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if file != "" {
		if err := Open(cfg, file); err != nil {
			return nil, fmt.Errorf("error opening config file %q: %w", file, err)
		}
		slog.Debug("cli: opened config file", "file", file)
	} else {
		fn, err := openFirst(cfg, opts.DefaultFiles)
		if err != nil {
			return nil, fmt.Errorf("error opening config file %q: %w", fn, err)
		}
		if fn != "" {
			slog.Debug("cli: opened default config file", "file", fn)
		}
	}

	fs, err = newFlagSet(opts, cfg, &file)
	if err != nil {
		return nil, err
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

func newFlagSet(opts *Options, cfg any, file *string) (*pflag.FlagSet, error) {
	fs := pflag.NewFlagSet(opts.AppName, pflag.ContinueOnError)
	fs.StringVar(file, "config", "", "TOML or YAML config file to open")
	if err := AddFlags(fs, cfg); err != nil {
		return nil, err
	}
	return fs, nil
}
