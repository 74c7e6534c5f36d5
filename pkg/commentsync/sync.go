package commentsync

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ukaji3/commentsync-go/pkg/commentsync/engine"
	"github.com/ukaji3/commentsync-go/pkg/commentsync/models"
	"github.com/ukaji3/commentsync-go/pkg/commentsync/output"
	"github.com/ukaji3/commentsync-go/pkg/commentsync/parser"
	"github.com/xuri/excelize/v2"
)

// Result summarizes a completed run.
type Result struct {
	Index   *models.AnnotationIndex
	Sync    *engine.Result
	Report  output.Report
	LogPath string
}

// Run loads both workbooks, indexes the source, applies the index to the
// target and writes the output workbook followed by the sync log.
// now stamps the log; nothing is written unless every earlier step succeeds.
func Run(opts Options, now time.Time, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	layout, err := opts.Layout()
	if err != nil {
		return nil, err
	}

	logger.Info("loading source workbook", "path", opts.SourceFile)
	source, err := loadSource(opts.SourceFile)
	if err != nil {
		return nil, err
	}
	logger.Info("source loaded", "rows", len(source.Rows), "annotations", source.AnnotationCount())

	logger.Info("loading target workbook", "path", opts.TargetFile)
	tf, target, err := openWorkbook("target", opts.TargetFile)
	if err != nil {
		return nil, err
	}
	defer tf.Close()
	logger.Info("target loaded", "rows", len(target.Rows), "annotations", target.AnnotationCount())

	logger.Info("building source index")
	index := engine.BuildIndex(&source, layout, opts.Regions)
	logger.Info("index built", "names", index.Len(), "annotations", index.Size())
	logger.Debug("indexed names", "names", index.Names())
	if opts.Regions.Active() {
		logger.Info("region filter", "regions", opts.Regions.Regions())
	}

	logger.Info("syncing annotations")
	res, err := engine.ApplySync(&target, index, layout, opts.MergePolicy())
	if err != nil {
		return nil, err
	}

	if err := parser.WriteAnnotations(tf, &res.Table, res.CellRefs()); err != nil {
		return nil, NewOutputWriteError(opts.OutputFile, err)
	}
	if err := parser.SaveAtomic(tf, opts.OutputFile); err != nil {
		return nil, NewOutputWriteError(opts.OutputFile, err)
	}
	logger.Info("output saved", "path", opts.OutputFile, "updated", res.Counts.Updated, "merged", res.Counts.Merged)

	report := output.Report{
		Time:       now,
		Settings:   settingsOf(opts),
		Counts:     res.Counts,
		Operations: res.Operations,
		Merges:     res.Merges,
	}

	logDir := opts.LogDir
	if logDir == "" {
		logDir = filepath.Dir(opts.OutputFile)
	}
	logPath, err := output.WriteLog(logDir, report)
	if err != nil {
		return nil, NewOutputWriteError(filepath.Join(logDir, output.LogFileName(now)), err)
	}
	logger.Info("log saved", "path", logPath)

	return &Result{
		Index:   index,
		Sync:    res,
		Report:  report,
		LogPath: logPath,
	}, nil
}

func loadSource(path string) (models.Table, error) {
	f, table, err := openWorkbook("source", path)
	if err != nil {
		return models.Table{}, err
	}
	defer f.Close()
	return table, nil
}

// openWorkbook opens path and reads its active sheet. The caller closes the file.
func openWorkbook(role, path string) (*excelize.File, models.Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, models.Table{}, NewInputError(role, path, ErrInputNotFound, nil)
		}
		return nil, models.Table{}, NewInputError(role, path, ErrInputUnreadable, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, models.Table{}, NewInputError(role, path, ErrInputUnreadable, err)
	}

	sheet := parser.ActiveSheet(f)
	if sheet == "" {
		f.Close()
		return nil, models.Table{}, NewInputError(role, path, ErrInputUnreadable, errors.New("no worksheet"))
	}
	table, err := parser.ExtractTable(f, sheet)
	if err != nil {
		f.Close()
		return nil, models.Table{}, NewInputError(role, path, ErrInputUnreadable, fmt.Errorf("sheet %q: %w", sheet, err))
	}
	return f, table, nil
}

func settingsOf(opts Options) output.Settings {
	return output.Settings{
		SourceFile:    opts.SourceFile,
		TargetFile:    opts.TargetFile,
		OutputFile:    opts.OutputFile,
		RegionColumn:  opts.RegionColumn,
		NameColumn:    opts.NameColumn,
		Regions:       opts.Regions.Regions(),
		SyncColumns:   opts.SyncColumns,
		MergeComments: opts.MergeComments,
		StartRow:      opts.StartRow,
	}
}
