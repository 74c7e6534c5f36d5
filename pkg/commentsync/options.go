// Package commentsync copies cell comments from a source workbook into a
// target workbook, matched by person name and filtered by region.
package commentsync

import (
	"github.com/ukaji3/commentsync-go/pkg/commentsync/engine"
	"github.com/ukaji3/commentsync-go/pkg/commentsync/models"
)

// Default option values.
const (
	DefaultSourceFile     = "source.xlsx"
	DefaultTargetFile     = "target.xlsx"
	DefaultOutputFile     = "target_updated.xlsx"
	DefaultRegionColumn   = "C"
	DefaultNameColumn     = "B"
	DefaultMergeSeparator = "\n---\n"
	DefaultStartRow       = 3
)

// DefaultSyncColumns are the columns synced when none are configured.
var DefaultSyncColumns = []string{"DO", "DP", "DS", "DU"}

// DefaultRegions are the accepted regions when none are configured.
var DefaultRegions = []string{"厦门", "广州", "长泰", "龙岩", "南昌", "石家庄"}

// Options configures a sync run. It is built once and passed by value.
type Options struct {
	// SourceFile is the workbook the comments are read from.
	SourceFile string
	// TargetFile is the workbook the comments are applied to. It is never modified.
	TargetFile string
	// OutputFile receives the updated copy of the target workbook.
	OutputFile string
	// RegionColumn holds the region value checked against Regions.
	RegionColumn string
	// NameColumn holds the person name used as the match key.
	NameColumn string
	// SyncColumns lists the columns whose comments are copied, in log order.
	SyncColumns []string
	// Regions restricts which source rows are indexed.
	Regions models.RegionFilter
	// MergeComments appends to existing target comments instead of replacing them.
	MergeComments bool
	// MergeSeparator joins existing and incoming text when merging.
	MergeSeparator string
	// StartRow is the first data row (1-based) in both sheets.
	StartRow int
	// TruncateLength bounds the text shown in the merge detail section of the log.
	TruncateLength int
	// LogDir is where the sync log is written. Empty means the output file's directory.
	LogDir string
}

// DefaultOptions returns the built-in configuration.
func DefaultOptions() Options {
	return Options{
		SourceFile:     DefaultSourceFile,
		TargetFile:     DefaultTargetFile,
		OutputFile:     DefaultOutputFile,
		RegionColumn:   DefaultRegionColumn,
		NameColumn:     DefaultNameColumn,
		SyncColumns:    append([]string(nil), DefaultSyncColumns...),
		Regions:        models.NewRegionFilter(DefaultRegions...),
		MergeComments:  true,
		MergeSeparator: DefaultMergeSeparator,
		StartRow:       DefaultStartRow,
		TruncateLength: engine.DefaultTruncateLength,
	}
}

// Layout resolves the configured columns for the engine.
func (o Options) Layout() (engine.Layout, error) {
	return engine.NewLayout(o.RegionColumn, o.NameColumn, o.SyncColumns, o.StartRow)
}

// MergePolicy returns the merge settings for the engine.
func (o Options) MergePolicy() engine.MergePolicy {
	return engine.MergePolicy{
		Enabled:        o.MergeComments,
		Separator:      o.MergeSeparator,
		TruncateLength: o.TruncateLength,
	}
}
