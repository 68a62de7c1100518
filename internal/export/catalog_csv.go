package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"catalog-gen/internal/domain"
)

// Catalog CSV column layout. Keep header order EXACT: downstream
// consumers import by position as well as by name.
var catalogHeader = []string{
	"id",
	"lessontitle",
	"contentTitle",
	"skillName",
	"level",
	"categoryId",
	"catName",
	"subCatName",
	"coverImageId",
	"previewVideoId",
	"createdAt",
	"updatedAt",
	"deletedAt",
	"status",
	"shortDescription",
	"description",
	"university",
	"link",
}

// WriteCatalogCSV serializes all entries to path. The file is written
// to a temporary sibling first and renamed into place on success, so a
// failed run never leaves a partial catalog behind.
func WriteCatalogCSV(path string, entries []domain.CatalogEntry) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("export: create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := writeCatalog(tmp, entries); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("export: close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("export: rename into place: %w", err)
	}
	return nil
}

func writeCatalog(w io.Writer, entries []domain.CatalogEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(catalogHeader); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for i, e := range entries {
		if err := cw.Write(toCatalogRow(e)); err != nil {
			return fmt.Errorf("export: write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func toCatalogRow(e domain.CatalogEntry) []string {
	return []string{
		e.ID,
		e.LessonTitle,
		joinList(e.ContentTitles),
		e.SkillName,
		e.Level,
		e.CategoryID,
		e.CategoryName,
		joinList(e.Subcategories),
		e.CoverImageID,
		e.PreviewVideoID,
		e.CreatedAt,
		e.UpdatedAt,
		e.DeletedAt, // empty cell when the row is not deleted
		e.Status,
		e.ShortDescription,
		e.Description,
		e.University,
		e.Link,
	}
}

// joinList renders a list column as one comma-joined cell.
func joinList(vals []string) string {
	return strings.Join(cleanStrings(vals), ", ")
}

func cleanStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		// keep cells single-line
		s = strings.ReplaceAll(s, "\n", " ")
		s = strings.ReplaceAll(s, "\r", " ")
		out = append(out, s)
	}
	return out
}
