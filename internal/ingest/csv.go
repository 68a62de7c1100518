// Package ingest reads the source course export into SourceCourse
// records. The input is a conventional comma-separated file with a
// header row; columns are located by name so column order does not
// matter.
package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"catalog-gen/internal/domain"
)

// Input column names, as exported by the scraper.
const (
	colTitle       = "Name"
	colUniversity  = "University"
	colDifficulty  = "Difficulty Level"
	colLink        = "Link"
	colAbout       = "About"
	colDescription = "Course Description"
)

// ReadCourses loads every row of the input file. A missing file or an
// unusable header is fatal to the run; individual missing cells become
// empty strings.
func ReadCourses(path string) ([]domain.SourceCourse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: read %s: %w", path, err)
	}
	courses, err := readCourses(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ingest: %s: %w", path, err)
	}
	return courses, nil
}

func readCourses(r io.Reader) ([]domain.SourceCourse, error) {
	br := newBOMReader(r)

	cr := csv.NewReader(br)
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // ragged rows are completed with sentinels

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := indexHeader(header)
	if _, ok := cols[colTitle]; !ok {
		return nil, fmt.Errorf("header is missing the %q column", colTitle)
	}

	var courses []domain.SourceCourse
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(courses)+2, err)
		}
		courses = append(courses, domain.SourceCourse{
			Title:       cell(record, cols, colTitle),
			University:  cell(record, cols, colUniversity),
			Difficulty:  cell(record, cols, colDifficulty),
			Link:        cell(record, cols, colLink),
			About:       CleanText(cell(record, cols, colAbout)),
			Description: CleanText(cell(record, cols, colDescription)),
		})
	}
	return courses, nil
}

func indexHeader(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	return cols
}

// cell returns the named column of a record, or the empty-string
// sentinel when the column is unknown or the row is short.
func cell(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func newBOMReader(r io.Reader) io.Reader {
	buf := make([]byte, 3)
	n, _ := io.ReadFull(r, buf)
	buf = buf[:n]
	if bytes.Equal(buf, []byte("\xef\xbb\xbf")) {
		return r
	}
	return io.MultiReader(bytes.NewReader(buf), r)
}
