package parser

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/commentsync-go/pkg/commentsync/models"
	"github.com/xuri/excelize/v2"
)

func TestExtractTable(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "B1", "姓名")
	f.SetCellValue(sheetName, "C1", "区域")
	f.SetCellValue(sheetName, "B3", "张三")
	f.SetCellValue(sheetName, "C3", "厦门")
	f.SetCellValue(sheetName, "A4", 100)
	if err := f.AddComment(sheetName, excelize.Comment{Cell: "D3", Author: "审核人", Text: "备注1"}); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if err := f.AddComment(sheetName, excelize.Comment{
		Cell:   "E6",
		Author: "王五",
		Paragraph: []excelize.RichTextRun{
			{Text: "王五:", Font: &excelize.Font{Bold: true}},
			{Text: "\n需要复核"},
		},
	}); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	table, err := ExtractTable(f2, ActiveSheet(f2))
	if err != nil {
		t.Fatalf("ExtractTable failed: %v", err)
	}

	if table.Sheet != sheetName {
		t.Errorf("Expected sheet %q, got %q", sheetName, table.Sheet)
	}
	// Row 6 only carries a comment but must still be present
	if len(table.Rows) != 6 {
		t.Fatalf("Expected 6 rows, got %d", len(table.Rows))
	}
	for i, row := range table.Rows {
		if row.Number != i+1 {
			t.Errorf("Expected row number %d, got %d", i+1, row.Number)
		}
	}

	if got := table.Rows[2].Value(1); got != "张三" {
		t.Errorf("Expected '张三', got %q", got)
	}
	if got := table.Rows[3].Value(0); got != "100" {
		t.Errorf("Expected '100', got %q", got)
	}
	if got := table.Rows[1].Value(5); got != "" {
		t.Errorf("Expected empty value, got %q", got)
	}

	a := table.Rows[2].Cell(3).Annotation
	if a == nil {
		t.Fatal("Expected annotation on D3")
	}
	if *a != (models.Annotation{Text: "备注1", Author: "审核人"}) {
		t.Errorf("Unexpected D3 annotation: %+v", *a)
	}

	rich := table.Rows[5].Cell(4).Annotation
	if rich == nil {
		t.Fatal("Expected annotation on E6")
	}
	if rich.Text != "王五:\n需要复核" {
		t.Errorf("Expected rich runs concatenated, got %q", rich.Text)
	}

	if n := table.AnnotationCount(); n != 2 {
		t.Errorf("Expected 2 annotations, got %d", n)
	}
}

func TestExtractTable_MalformedCommentRef(t *testing.T) {
	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "B3", "张三")
	if err := f.AddComment("Sheet1", excelize.Comment{Cell: "D3", Author: "审核人", Text: "备注1"}); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	f.Close()

	// Rewrite the comment anchor so it no longer names a cell
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := os.WriteFile(path, rewriteZipEntries(t, buf.Bytes(), "xl/comments", `ref="D3"`, `ref="3D"`), 0644); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	f2, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	_, err = ExtractTable(f2, ActiveSheet(f2))
	if err == nil {
		t.Fatal("Expected error for malformed comment reference")
	}
	if !strings.Contains(err.Error(), `"3D"`) {
		t.Errorf("Expected error to name the reference, got %v", err)
	}
}

func rewriteZipEntries(t *testing.T, data []byte, prefix, old, repl string) []byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}
	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	replaced := false
	for _, zf := range zr.File {
		rc, err := zf.Open()
		if err != nil {
			t.Fatalf("open %s: %v", zf.Name, err)
		}
		body, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", zf.Name, err)
		}
		if strings.HasPrefix(zf.Name, prefix) && bytes.Contains(body, []byte(old)) {
			body = bytes.ReplaceAll(body, []byte(old), []byte(repl))
			replaced = true
		}
		w, err := zw.Create(zf.Name)
		if err != nil {
			t.Fatalf("create %s: %v", zf.Name, err)
		}
		if _, err := w.Write(body); err != nil {
			t.Fatalf("write %s: %v", zf.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	if !replaced {
		t.Fatalf("no %s entry contains %s", prefix, old)
	}
	return out.Bytes()
}

func TestWriteAnnotations(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "B3", "张三")
	f.AddComment(sheetName, excelize.Comment{Cell: "D3", Author: "旧", Text: "旧批注"})
	f.AddComment(sheetName, excelize.Comment{Cell: "E3", Author: "复核", Text: "不动"})

	table, err := ExtractTable(f, sheetName)
	if err != nil {
		t.Fatalf("ExtractTable failed: %v", err)
	}
	// "复核" is already second in the workbook's author list
	table.Rows[2].SetAnnotation(3, models.Annotation{Text: "新批注", Author: "复核"})
	table.Rows[2].SetAnnotation(5, models.Annotation{Text: "新增", Author: "审核人"})

	if err := WriteAnnotations(f, &table, []string{"D3", "F3"}); err != nil {
		t.Fatalf("WriteAnnotations failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "out.xlsx")
	if err := SaveAtomic(f, out); err != nil {
		t.Fatalf("SaveAtomic failed: %v", err)
	}

	f2, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f2.Close()

	comments, err := f2.GetComments(sheetName)
	if err != nil {
		t.Fatalf("GetComments failed: %v", err)
	}
	got := make(map[string]models.Annotation)
	for _, c := range comments {
		if _, dup := got[c.Cell]; dup {
			t.Errorf("Duplicate comment on %s", c.Cell)
		}
		got[c.Cell] = annotationFromComment(c)
	}

	expected := map[string]models.Annotation{
		"D3": {Text: "新批注", Author: "复核"},
		"E3": {Text: "不动", Author: "复核"},
		"F3": {Text: "新增", Author: "审核人"},
	}
	for cell, want := range expected {
		if got[cell] != want {
			t.Errorf("%s: expected %+v, got %+v", cell, want, got[cell])
		}
	}
	if len(got) != len(expected) {
		t.Errorf("Expected %d comments, got %d", len(expected), len(got))
	}

	if v, _ := f2.GetCellValue(sheetName, "B3"); v != "张三" {
		t.Errorf("Expected cell value preserved, got %q", v)
	}
}

func TestWriteAnnotations_OutsideTable(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	table := models.Table{Sheet: "Sheet1"}
	if err := WriteAnnotations(f, &table, []string{"A9"}); err == nil {
		t.Error("Expected error for row outside the table")
	}
	if err := WriteAnnotations(f, &table, []string{"not-a-cell"}); err == nil {
		t.Error("Expected error for invalid reference")
	}
}

func TestSaveAtomic_UnwritableDir(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	out := filepath.Join(t.TempDir(), "missing", "out.xlsx")
	if err := SaveAtomic(f, out); err == nil {
		t.Error("Expected error for missing directory")
	}
}
