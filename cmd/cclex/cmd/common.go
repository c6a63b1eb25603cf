package cmd

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/clexlang/cclex/internal/config"
	"github.com/clexlang/cclex/lexer"
)

// loadConfig reads .cclex.yaml out of directory, applying --strict-c11
// as an override on top of whatever gnu_extensions says.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(directory)
	if err != nil {
		return config.Config{}, err
	}
	if noGNU {
		cfg.GNUExtensions = false
	}
	return cfg, nil
}

func lexerOptions(cfg config.Config) []lexer.Option {
	if cfg.GNUExtensions {
		return nil
	}
	return []lexer.Option{lexer.StrictC11()}
}

// sourceExtensions are the file extensions collected when a path
// argument turns out to be a directory.
var sourceExtensions = map[string]bool{".c": true, ".h": true}

// expandPaths resolves the tokens/check subcommands' path arguments
// into a concrete list of files. A directory argument is walked
// recursively, collecting every *.c/*.h file found under it. A file
// argument that doesn't exist directly is searched for under directory
// and then cfg.IncludeDirs before being reported missing; one that does
// exist is taken as-is regardless of extension.
func expandPaths(args []string, cfg config.Config) ([]string, error) {
	var out []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			resolved, rerr := cfg.ResolvePath(directory, arg)
			if rerr != nil {
				return nil, err
			}
			out = append(out, resolved)
			continue
		}
		if !info.IsDir() {
			out = append(out, arg)
			continue
		}

		var found []string
		walkErr := filepath.WalkDir(arg, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if sourceExtensions[filepath.Ext(p)] {
				found = append(found, p)
			}
			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
		sort.Strings(found)
		out = append(out, found...)
	}
	return out, nil
}
