package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/commentsync-go/pkg/commentsync"
	"github.com/ukaji3/commentsync-go/pkg/commentsync/models"
	"github.com/ukaji3/commentsync-go/pkg/commentsync/parser"
)

// noFilter disables region filtering when used as the region value.
const noFilter = "none"

// loader applies raw values onto the defaults, one key at a time.
type loader struct {
	opts     commentsync.Options
	warnings []*commentsync.ConfigError
}

func newLoader() *loader {
	return &loader{opts: commentsync.DefaultOptions()}
}

func (l *loader) warn(key, value string, err error) {
	l.warnings = append(l.warnings, commentsync.NewConfigError(key, value, err))
}

func (l *loader) setPath(key string, dst *string, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		l.warn(key, value, errors.New("empty path"))
		return
	}
	*dst = value
}

func (l *loader) setColumn(key string, dst *string, value string) {
	col, err := parser.NormalizeColumn(value)
	if err != nil {
		l.warn(key, value, err)
		return
	}
	*dst = col
}

// setColumns replaces the sync columns. Blank entries are dropped; any
// invalid entry, or a list with nothing left, rejects the whole setting.
func (l *loader) setColumns(values []string) {
	var cols []string
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		col, err := parser.NormalizeColumn(v)
		if err != nil {
			l.warn(KeySyncColumns, strings.Join(values, ","), err)
			return
		}
		cols = append(cols, col)
	}
	if len(cols) == 0 {
		l.warn(KeySyncColumns, strings.Join(values, ","), errors.New("no columns listed"))
		return
	}
	l.opts.SyncColumns = cols
}

// setRegions normalizes the region setting into a filter. An empty list or
// the single value "none" disables filtering.
func (l *loader) setRegions(values []string) {
	var regions []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			regions = append(regions, v)
		}
	}
	if len(regions) == 0 || (len(regions) == 1 && strings.EqualFold(regions[0], noFilter)) {
		l.opts.Regions = models.NoRegionFilter()
		return
	}
	l.opts.Regions = models.NewRegionFilter(regions...)
}

func (l *loader) setSeparator(value string) {
	l.opts.MergeSeparator = decodeEscapes(value)
}

func (l *loader) setPositive(key string, dst *int, value int, raw string) {
	if value < 1 {
		l.warn(key, raw, fmt.Errorf("must be a positive integer"))
		return
	}
	*dst = value
}

// resolvePaths anchors relative workbook paths at base.
func (l *loader) resolvePaths(base string) {
	for _, p := range []*string{&l.opts.SourceFile, &l.opts.TargetFile, &l.opts.OutputFile} {
		if !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
	if l.opts.LogDir == "" {
		l.opts.LogDir = base
	}
}

// decodeEscapes turns the two-character sequences \n and \t into newline and tab.
func decodeEscapes(s string) string {
	return strings.NewReplacer(`\n`, "\n", `\t`, "\t").Replace(s)
}

// splitList splits a comma-separated value.
func splitList(s string) []string {
	return strings.Split(s, ",")
}
