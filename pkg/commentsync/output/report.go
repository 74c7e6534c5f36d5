// Package output renders sync results as the audit log and as JSON.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ukaji3/commentsync-go/pkg/commentsync/models"
)

const rule = "================================================================================"

// Settings is the configuration echoed at the top of the log.
type Settings struct {
	SourceFile    string   `json:"source_file"`
	TargetFile    string   `json:"target_file"`
	OutputFile    string   `json:"output_file"`
	RegionColumn  string   `json:"col_region"`
	NameColumn    string   `json:"col_name"`
	Regions       []string `json:"target_region"` // empty means no filter
	SyncColumns   []string `json:"cols_to_sync"`
	MergeComments bool     `json:"merge_comments"`
	StartRow      int      `json:"start_row"`
}

// Report is everything a sync log is rendered from.
type Report struct {
	Time       time.Time              `json:"time"`
	Settings   Settings               `json:"settings"`
	Counts     models.Counts          `json:"counts"`
	Operations []models.SyncOperation `json:"operations"`
	Merges     []models.MergeDetail   `json:"merges,omitempty"`
}

var kindLabels = map[models.OperationKind]string{
	models.OpNew:       "新增",
	models.OpOverwrite: "覆盖",
	models.OpMerge:     "合并",
}

// KindLabel returns the log tag for an operation kind.
func KindLabel(k models.OperationKind) string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return string(k)
}

// LogFileName returns the log file name for a run started at t.
func LogFileName(t time.Time) string {
	return "sync_log_" + t.Format("20060102_150405") + ".txt"
}

// FormatOperation renders one line of the operation list.
func FormatOperation(op models.SyncOperation) string {
	return fmt.Sprintf("[%s] %s - 列%s (单元格%s)", KindLabel(op.Kind), op.Name, op.Column, op.CellRef)
}

// RenderLog renders the four-section text report. The output depends only
// on r, so identical inputs produce identical bytes.
func RenderLog(r Report) []byte {
	var b strings.Builder
	s := r.Settings

	b.WriteString(rule + "\n")
	b.WriteString("Excel 批注同步日志\n")
	b.WriteString(rule + "\n\n")

	fmt.Fprintf(&b, "执行时间: %s\n\n", r.Time.Format("2006-01-02 15:04:05"))

	b.WriteString("【配置信息】\n")
	fmt.Fprintf(&b, "源文件: %s\n", s.SourceFile)
	fmt.Fprintf(&b, "目标文件: %s\n", s.TargetFile)
	fmt.Fprintf(&b, "输出文件: %s\n", s.OutputFile)
	fmt.Fprintf(&b, "区域列: %s\n", s.RegionColumn)
	fmt.Fprintf(&b, "姓名列: %s\n", s.NameColumn)
	if len(s.Regions) > 0 {
		fmt.Fprintf(&b, "筛选区域: %s\n", strings.Join(s.Regions, ", "))
	} else {
		b.WriteString("筛选区域: 无筛选\n")
	}
	fmt.Fprintf(&b, "同步列: %s\n", strings.Join(s.SyncColumns, ", "))
	if s.MergeComments {
		b.WriteString("批注合并: 启用\n")
	} else {
		b.WriteString("批注合并: 禁用\n")
	}
	fmt.Fprintf(&b, "数据起始行: %d\n\n", s.StartRow)

	b.WriteString("【统计信息】\n")
	fmt.Fprintf(&b, "匹配人员数: %d 人\n", r.Counts.MatchedNames)
	fmt.Fprintf(&b, "同步批注数: %d 个\n", r.Counts.Updated)
	fmt.Fprintf(&b, "合并批注数: %d 个\n", r.Counts.Merged)
	fmt.Fprintf(&b, "新增/覆盖数: %d 个\n\n", r.Counts.NewOrOverwritten())

	b.WriteString(rule + "\n")
	b.WriteString("【详细操作记录】\n")
	b.WriteString(rule + "\n\n")
	for _, op := range r.Operations {
		b.WriteString(FormatOperation(op) + "\n")
	}

	if len(r.Merges) > 0 {
		b.WriteString("\n" + rule + "\n")
		b.WriteString("【合并批注详情】\n")
		b.WriteString(rule + "\n\n")
		for i, m := range r.Merges {
			fmt.Fprintf(&b, "%d. 姓名: %s | 列: %s | 单元格: %s\n", i+1, m.Name, m.Column, m.CellRef)
			fmt.Fprintf(&b, "   原批注: %s\n", m.Original)
			fmt.Fprintf(&b, "   新批注: %s\n", m.Incoming)
			b.WriteString("\n")
		}
	}

	return []byte(b.String())
}

// WriteLog renders r into dir under LogFileName(r.Time) and returns the path.
func WriteLog(dir string, r Report) (string, error) {
	path := filepath.Join(dir, LogFileName(r.Time))
	if err := os.WriteFile(path, RenderLog(r), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// ToJSON serializes the report.
func ToJSON(r Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}
