// Package config loads commentsync options from config.ini or a YAML file.
//
// Loading never fails: a missing or malformed file yields the built-in
// defaults, and an invalid key falls back to its own default. Every value
// that was ignored is reported as a *commentsync.ConfigError warning.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/commentsync-go/pkg/commentsync"
)

// DefaultFileName is looked up next to the executable when no path is given.
const DefaultFileName = "config.ini"

// Option names used in warnings.
const (
	KeySourceFile     = "SOURCE_FILE"
	KeyTargetFile     = "TARGET_FILE"
	KeyOutputFile     = "OUTPUT_FILE"
	KeyRegionColumn   = "COL_REGION"
	KeyNameColumn     = "COL_NAME"
	KeySyncColumns    = "COLS_TO_SYNC"
	KeyTargetRegion   = "TARGET_REGION"
	KeyMergeComments  = "MERGE_COMMENTS"
	KeyMergeSeparator = "MERGE_SEPARATOR"
	KeyStartRow       = "START_ROW"
	KeyTruncateLength = "TRUNCATE_LENGTH"
)

// DefaultPath returns config.ini in the executable's directory, falling
// back to the working directory when the executable cannot be located.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultFileName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DefaultFileName)
}

// Load reads options from path. Files ending in .yaml or .yml are parsed as
// YAML, everything else as INI. Relative file paths in the result are
// resolved against the directory containing path.
func Load(path string) (commentsync.Options, []*commentsync.ConfigError) {
	l := newLoader()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		l.warn("", "", fmt.Errorf("config file %s not found", path))
	case err != nil:
		l.warn("", "", fmt.Errorf("read config file %s: %w", path, err))
	default:
		if isYAML(path) {
			err = l.applyYAML(data)
		} else {
			err = l.applyINI(data)
		}
		if err != nil {
			l = newLoader()
			l.warn("", "", fmt.Errorf("parse config file %s: %w", path, err))
		}
	}

	l.resolvePaths(filepath.Dir(path))
	return l.opts, l.warnings
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
