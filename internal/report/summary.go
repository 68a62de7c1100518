// Package report renders the end-of-run summary.
package report

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"catalog-gen/internal/domain"
)

// Summary renders a per-category count table for a finished run.
// Columns are padded by display width so CJK course data lines up.
func Summary(entries []domain.CatalogEntry) string {
	type bucket struct {
		id      string
		name    string
		count   int
		deleted int
	}
	byID := make(map[string]*bucket)
	for _, e := range entries {
		b, ok := byID[e.CategoryID]
		if !ok {
			b = &bucket{id: e.CategoryID, name: e.CategoryName}
			byID[e.CategoryID] = b
		}
		b.count++
		if e.Status == "deleted" {
			b.deleted++
		}
	}

	buckets := make([]*bucket, 0, len(byID))
	for _, b := range byID {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].id < buckets[j].id })

	rows := [][]string{{"CATEGORY", "COURSES", "DELETED"}}
	total, totalDeleted := 0, 0
	for _, b := range buckets {
		rows = append(rows, []string{b.name, strconv.Itoa(b.count), strconv.Itoa(b.deleted)})
		total += b.count
		totalDeleted += b.deleted
	}
	rows = append(rows, []string{"TOTAL", strconv.Itoa(total), strconv.Itoa(totalDeleted)})

	return renderTable(rows)
}

func renderTable(rows [][]string) string {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	widths := make([]int, cols)
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			sb.WriteString(cell)
			if i < len(row)-1 {
				pad := widths[i] - runewidth.StringWidth(cell)
				sb.WriteString(strings.Repeat(" ", pad+2))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
