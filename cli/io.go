// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"cogentcore.org/orrery/base/errors"
	"cogentcore.org/orrery/base/iox/tomlx"
	"cogentcore.org/orrery/base/iox/yamlx"
)

// Open reads the given config object from the given file,
// using TOML or YAML encoding based on the file extension.
func Open(cfg any, file string) error {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		return tomlx.Open(cfg, file)
	case ".yaml", ".yml":
		return yamlx.Open(cfg, file)
	}
	return fmt.Errorf("cli.Open: unsupported config file type %q", file)
}

// openFirst opens the first of the given files that exists.
// It returns the name of the opened file, or "" if none exist.
func openFirst(cfg any, files []string) (string, error) {
	for _, fn := range files {
		err := Open(cfg, fn)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return fn, err
	}
	return "", nil
}
