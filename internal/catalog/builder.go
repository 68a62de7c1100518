// Package catalog assembles one CatalogEntry per source row by running
// the classifier, the content decomposer and the identity generator in
// sequence.
package catalog

import (
	"context"
	"fmt"

	"catalog-gen/internal/concurrency"
	"catalog-gen/internal/content"
	"catalog-gen/internal/domain"
	"catalog-gen/internal/identity"
	"catalog-gen/internal/providers/glm"
	"catalog-gen/internal/taxonomy"
)

// Enricher generates content titles from an external model. Optional;
// the rule-based decomposer is always the fallback.
type Enricher interface {
	ContentTitles(ctx context.Context, req glm.TitleRequest) ([]string, error)
}

// Builder holds the immutable tables and the id generator for one run.
type Builder struct {
	Classifier *taxonomy.Classifier
	Decomposer *content.Decomposer
	Gen        *identity.Generator

	// Enricher is consulted by Enrich when non-nil. Its output must
	// still satisfy the 4-5 title invariant or it is discarded.
	Enricher Enricher
}

// New wires a builder from the default tables.
func New(gen *identity.Generator) *Builder {
	return &Builder{
		Classifier: taxonomy.New(taxonomy.Default()),
		Decomposer: content.NewDecomposer(content.Default()),
		Gen:        gen,
	}
}

// Build produces the rule-based catalog entry for one source row. The
// identity generator is not safe for concurrent use, so Build must be
// called from a single goroutine.
func (b *Builder) Build(src domain.SourceCourse) domain.CatalogEntry {
	cat, subcats := b.Classifier.Classify(src.Title, src.Description)

	status := b.Gen.Status()
	createdAt, updatedAt, deletedAt := b.Gen.Timestamps(status)
	coverImage, previewVideo := b.Gen.MediaIDs()

	return domain.CatalogEntry{
		ID:            b.Gen.NewID(),
		LessonTitle:   src.Title,
		ContentTitles: b.Decomposer.Titles(src.Title, src.Description, cat.Name),
		SkillName:     b.Classifier.SkillFor(cat, src.Description),
		Level:         src.Difficulty,
		CategoryID:    cat.ID,
		CategoryName:  cat.Name,
		Subcategories: subcats,

		CoverImageID:   coverImage,
		PreviewVideoID: previewVideo,

		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		Status:    status,

		ShortDescription: src.About,
		Description:      src.Description,
		University:       src.University,
		Link:             src.Link,
	}
}

// Enrich replaces entry.ContentTitles with model output. On any
// failure the entry keeps its rule-based titles and the error reports
// what went wrong.
func (b *Builder) Enrich(ctx context.Context, src domain.SourceCourse, entry *domain.CatalogEntry) error {
	if b.Enricher == nil {
		return nil
	}

	req := glm.TitleRequest{
		LessonTitle: src.Title,
		Description: src.Description,
		Category:    entry.CategoryName,
	}
	if lang, ok := b.Decomposer.Language(src.Title, src.Description); ok {
		req.Language = lang
	}

	titles, err := b.Enricher.ContentTitles(ctx, req)
	if err != nil {
		return fmt.Errorf("enrich %q: %w", src.Title, err)
	}
	if len(titles) < 4 || len(titles) > 5 {
		return fmt.Errorf("enrich %q: got %d titles", src.Title, len(titles))
	}
	entry.ContentTitles = titles
	return nil
}

// BuildAll builds one entry per course. Base rows are built
// sequentially so ids and timestamps come out in row order; when an
// enricher is configured the model calls fan out over a worker pool.
// Every returned entry is usable even when errors are reported.
func (b *Builder) BuildAll(ctx context.Context, courses []domain.SourceCourse) ([]domain.CatalogEntry, []error) {
	entries := make([]domain.CatalogEntry, len(courses))
	for i, src := range courses {
		entries[i] = b.Build(src)
	}
	if b.Enricher == nil {
		return entries, nil
	}

	errs := concurrency.ForEach(ctx, courses, concurrency.DefaultOptions(),
		func(ctx context.Context, i int, src domain.SourceCourse) error {
			return b.Enrich(ctx, src, &entries[i])
		})
	return entries, errs
}
