// Package main provides the CLI entry point for commentsync-go.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/ukaji3/commentsync-go/pkg/commentsync"
	"github.com/ukaji3/commentsync-go/pkg/commentsync/config"
	"github.com/ukaji3/commentsync-go/pkg/commentsync/output"
)

var (
	configPath string
	logDir     string
	quiet      bool
	jsonOut    bool
	pretty     bool
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "commentsync",
		Short: "Copy cell comments between Excel workbooks",
		Long: `commentsync copies cell comments from a source workbook into a target
workbook, matching rows by person name and filtering source rows by region.
All behavior is driven by config.ini next to the executable.`,
		Args:          cobra.NoArgs,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (default: config.ini next to the executable)")
	rootCmd.Flags().StringVar(&logDir, "log-dir", "", "Directory for the sync log (default: the config file's directory)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print warnings and the final summary")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "Print the sync report as JSON instead of the summary")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	logger := newLogger(cmd.ErrOrStderr(), quiet)

	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}

	opts, warnings := config.Load(path)
	for _, w := range warnings {
		logger.Warn(w.Error())
	}
	if len(warnings) == 0 {
		logger.Info("config loaded", "path", path)
	}
	if logDir != "" {
		opts.LogDir = logDir
	}

	res, err := commentsync.Run(opts, time.Now(), logger)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	if jsonOut {
		data, err := output.ToJSON(res.Report, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(stdout, string(data))
		return nil
	}

	printSummary(stdout, res)
	return nil
}

func newLogger(w io.Writer, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func printSummary(w io.Writer, res *commentsync.Result) {
	counts := res.Sync.Counts
	fmt.Fprintln(w, okStyle.Render(fmt.Sprintf("✓ Synced %d comments for %d matched names", counts.Updated, counts.MatchedNames)))
	if counts.Merged > 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("  %d merged into existing comments", counts.Merged)))
	}
	fmt.Fprintln(w, dimStyle.Render("  output: "+res.Report.Settings.OutputFile))
	fmt.Fprintln(w, dimStyle.Render("  log:    "+res.LogPath))
}
