package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/commentsync-go/pkg/commentsync/models"
)

var fixedTime = time.Date(2026, 3, 7, 9, 5, 2, 0, time.Local)

func sampleReport() Report {
	return Report{
		Time: fixedTime,
		Settings: Settings{
			SourceFile:    "/data/source.xlsx",
			TargetFile:    "/data/target.xlsx",
			OutputFile:    "/data/target_updated.xlsx",
			RegionColumn:  "C",
			NameColumn:    "B",
			Regions:       []string{"厦门", "广州"},
			SyncColumns:   []string{"DO", "DP"},
			MergeComments: true,
			StartRow:      3,
		},
		Counts: models.Counts{MatchedNames: 2, Updated: 3, Merged: 1},
		Operations: []models.SyncOperation{
			{Kind: models.OpNew, Name: "张三", Column: "DO", CellRef: "DO3"},
			{Kind: models.OpMerge, Name: "张三", Column: "DP", CellRef: "DP3"},
			{Kind: models.OpOverwrite, Name: "李四", Column: "DO", CellRef: "DO7"},
		},
		Merges: []models.MergeDetail{
			{Name: "张三", Column: "DP", CellRef: "DP3", Original: "旧批注", Incoming: "备注1"},
		},
	}
}

func TestRenderLog(t *testing.T) {
	want := strings.Join([]string{
		rule,
		"Excel 批注同步日志",
		rule,
		"",
		"执行时间: 2026-03-07 09:05:02",
		"",
		"【配置信息】",
		"源文件: /data/source.xlsx",
		"目标文件: /data/target.xlsx",
		"输出文件: /data/target_updated.xlsx",
		"区域列: C",
		"姓名列: B",
		"筛选区域: 厦门, 广州",
		"同步列: DO, DP",
		"批注合并: 启用",
		"数据起始行: 3",
		"",
		"【统计信息】",
		"匹配人员数: 2 人",
		"同步批注数: 3 个",
		"合并批注数: 1 个",
		"新增/覆盖数: 2 个",
		"",
		rule,
		"【详细操作记录】",
		rule,
		"",
		"[新增] 张三 - 列DO (单元格DO3)",
		"[合并] 张三 - 列DP (单元格DP3)",
		"[覆盖] 李四 - 列DO (单元格DO7)",
		"",
		rule,
		"【合并批注详情】",
		rule,
		"",
		"1. 姓名: 张三 | 列: DP | 单元格: DP3",
		"   原批注: 旧批注",
		"   新批注: 备注1",
		"",
		"",
	}, "\n")

	got := string(RenderLog(sampleReport()))
	assert.Equal(t, want, got)
	assert.Equal(t, got, string(RenderLog(sampleReport())), "rendering is deterministic")
}

func TestRenderLog_NoMergesNoFilter(t *testing.T) {
	r := sampleReport()
	r.Settings.Regions = nil
	r.Settings.MergeComments = false
	r.Counts = models.Counts{MatchedNames: 1, Updated: 1}
	r.Operations = r.Operations[:1]
	r.Merges = nil

	got := string(RenderLog(r))

	assert.Contains(t, got, "筛选区域: 无筛选\n")
	assert.Contains(t, got, "批注合并: 禁用\n")
	assert.Contains(t, got, "新增/覆盖数: 1 个\n")
	assert.NotContains(t, got, "【合并批注详情】")
	assert.True(t, strings.HasSuffix(got, "[新增] 张三 - 列DO (单元格DO3)\n"))
}

func TestRenderLog_EmptyRun(t *testing.T) {
	r := sampleReport()
	r.Counts = models.Counts{}
	r.Operations = nil
	r.Merges = nil

	got := string(RenderLog(r))

	assert.True(t, strings.HasSuffix(got, "【详细操作记录】\n"+rule+"\n\n"))
}

func TestLogFileName(t *testing.T) {
	assert.Equal(t, "sync_log_20260307_090502.txt", LogFileName(fixedTime))
}

func TestKindLabel(t *testing.T) {
	tests := []struct {
		kind models.OperationKind
		want string
	}{
		{models.OpNew, "新增"},
		{models.OpOverwrite, "覆盖"},
		{models.OpMerge, "合并"},
		{models.OperationKind("other"), "other"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindLabel(tt.kind))
	}
}

func TestWriteLog(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteLog(dir, sampleReport())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "sync_log_20260307_090502.txt"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, RenderLog(sampleReport()), data)
}

func TestWriteLog_MissingDir(t *testing.T) {
	_, err := WriteLog(filepath.Join(t.TempDir(), "missing"), sampleReport())
	assert.Error(t, err)
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleReport(), false)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	counts := decoded["counts"].(map[string]any)
	assert.EqualValues(t, 3, counts["updated"])
	assert.Len(t, decoded["operations"], 3)

	pretty, err := ToJSON(sampleReport(), true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"settings\"")
}
