package report

import (
	"strings"
	"testing"

	"catalog-gen/internal/domain"
)

func TestSummaryCounts(t *testing.T) {
	entries := []domain.CatalogEntry{
		{CategoryID: "cat001", CategoryName: "Computer Science", Status: "active"},
		{CategoryID: "cat001", CategoryName: "Computer Science", Status: "deleted"},
		{CategoryID: "cat007", CategoryName: "Humanities", Status: "draft"},
	}

	out := Summary(entries)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + 2 categories + total:\n%s", len(lines), out)
	}

	if !strings.HasPrefix(lines[0], "CATEGORY") {
		t.Errorf("missing header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Computer Science") || !strings.Contains(lines[1], "2") {
		t.Errorf("unexpected first row: %q", lines[1])
	}
	if !strings.HasPrefix(lines[3], "TOTAL") || !strings.Contains(lines[3], "3") {
		t.Errorf("unexpected total row: %q", lines[3])
	}
}

func TestSummaryAlignment(t *testing.T) {
	entries := []domain.CatalogEntry{
		{CategoryID: "cat001", CategoryName: "Computer Science", Status: "active"},
		{CategoryID: "cat009", CategoryName: "中文课程", Status: "active"},
	}

	out := Summary(entries)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// the COURSES column must start at the same byte-independent display
	// column on every line; check via the count suffix position after
	// padding (all names pad to the same display width)
	col := strings.Index(lines[0], "COURSES")
	if col < 0 {
		t.Fatalf("no COURSES column: %q", lines[0])
	}
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			t.Errorf("row %q has fewer than 2 columns", line)
		}
	}
}

func TestSummaryEmpty(t *testing.T) {
	out := Summary(nil)
	if !strings.Contains(out, "TOTAL") || !strings.Contains(out, "0") {
		t.Errorf("empty summary should still render a zero total:\n%s", out)
	}
}
