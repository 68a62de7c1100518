package catalog

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"catalog-gen/internal/domain"
	"catalog-gen/internal/identity"
	"catalog-gen/internal/providers/glm"
)

func testBuilder() *Builder {
	return New(identity.NewAt(time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC), rand.New(rand.NewSource(1))))
}

func TestBuildEndToEnd(t *testing.T) {
	b := testBuilder()

	testCases := []struct {
		title        string
		wantCategory string
		wantTitles   []string
	}{
		{
			title:        "Programming for Everybody (Getting Started with Python)",
			wantCategory: "Computer Science",
			wantTitles: []string{
				"Introduction to Python", "Variables and Operators", "Data Types",
				"Control Structures", "Functions",
			},
		},
		{
			title:        "Justice",
			wantCategory: "Humanities",
			wantTitles: []string{
				"Introduction to Justice", "Legal System", "Criminal Law",
				"Civil Law", "Ethics and Justice",
			},
		},
		{
			title:        "Artificial Intelligence",
			wantCategory: "Computer Science",
			wantTitles: []string{
				"Introduction to AI", "Machine Learning", "Deep Learning",
				"Natural Language Processing", "Computer Vision",
			},
		},
		{
			title:        "Mandarin Chinese Level 1",
			wantCategory: "Computer Science", // no category keyword matches: fallback
			wantTitles: []string{
				"Introduction to Mandarin Chinese", "Pinyin and Characters",
				"Grammar and Sentence Structure", "Reading and Writing",
				"Listening and Speaking",
			},
		},
	}

	for _, tc := range testCases {
		entry := b.Build(domain.SourceCourse{Title: tc.title})
		if entry.CategoryName != tc.wantCategory {
			t.Errorf("%q: category = %q, want %q", tc.title, entry.CategoryName, tc.wantCategory)
		}
		if !reflect.DeepEqual(entry.ContentTitles, tc.wantTitles) {
			t.Errorf("%q: contentTitle =\n  %v\nwant\n  %v", tc.title, entry.ContentTitles, tc.wantTitles)
		}
	}
}

func TestBuildFallbackRow(t *testing.T) {
	b := testBuilder()

	entry := b.Build(domain.SourceCourse{Title: "Unknown Widgetry 404"})

	if entry.CategoryName != "Computer Science" || entry.CategoryID != "cat001" {
		t.Errorf("fallback category = %s/%s", entry.CategoryID, entry.CategoryName)
	}
	if len(entry.ContentTitles) < 4 || len(entry.ContentTitles) > 5 {
		t.Errorf("contentTitle has %d entries, want 4-5", len(entry.ContentTitles))
	}
	for _, ct := range entry.ContentTitles {
		if ct == "" {
			t.Error("empty content title in fallback row")
		}
	}
	if entry.SkillName == "" {
		t.Error("fallback row has no skillName")
	}
	if len(entry.Subcategories) == 0 {
		t.Error("fallback row has no subcategories")
	}
}

func TestBuildInvariants(t *testing.T) {
	b := testBuilder()

	ids := map[string]bool{}
	for i := 0; i < 300; i++ {
		entry := b.Build(domain.SourceCourse{
			Title:       "Introduction to Data Science",
			Description: "statistics and machine learning",
			Difficulty:  "Intermediate",
		})

		for _, id := range []string{entry.ID, entry.CoverImageID, entry.PreviewVideoID} {
			if ids[id] {
				t.Fatalf("duplicate identifier %s", id)
			}
			ids[id] = true
		}

		created := parseTS(t, entry.CreatedAt)
		updated := parseTS(t, entry.UpdatedAt)
		if updated.Before(created) {
			t.Fatalf("updatedAt %s < createdAt %s", entry.UpdatedAt, entry.CreatedAt)
		}
		if entry.Status == "deleted" {
			if entry.DeletedAt == "" {
				t.Fatal("deleted entry without deletedAt")
			}
			if parseTS(t, entry.DeletedAt).Before(updated) {
				t.Fatalf("deletedAt %s < updatedAt %s", entry.DeletedAt, entry.UpdatedAt)
			}
		} else if entry.DeletedAt != "" {
			t.Fatalf("status %q with deletedAt set", entry.Status)
		}
		if !strings.HasSuffix(entry.CreatedAt, "+07:00") || !strings.HasSuffix(entry.UpdatedAt, "+07:00") {
			t.Fatal("timestamps must carry the +07:00 offset")
		}
	}
}

type stubEnricher struct {
	titles []string
	err    error

	mu     sync.Mutex
	calls  int
	gotReq glm.TitleRequest
}

func (s *stubEnricher) ContentTitles(_ context.Context, req glm.TitleRequest) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.gotReq = req
	return s.titles, s.err
}

func TestEnrichReplacesTitles(t *testing.T) {
	b := testBuilder()
	stub := &stubEnricher{titles: []string{"One", "Two", "Three", "Four", "Five"}}
	b.Enricher = stub

	src := domain.SourceCourse{Title: "Justice"}
	entry := b.Build(src)
	if err := b.Enrich(context.Background(), src, &entry); err != nil {
		t.Fatalf("Enrich() error = %v", err)
	}
	if !reflect.DeepEqual(entry.ContentTitles, stub.titles) {
		t.Errorf("contentTitle = %v, want enriched titles", entry.ContentTitles)
	}
	if stub.gotReq.Category != "Humanities" {
		t.Errorf("enricher got category %q", stub.gotReq.Category)
	}
}

func TestEnrichLanguageHint(t *testing.T) {
	b := testBuilder()
	stub := &stubEnricher{titles: []string{"One", "Two", "Three", "Four"}}
	b.Enricher = stub

	src := domain.SourceCourse{Title: "Mandarin Chinese Level 1"}
	entry := b.Build(src)
	if err := b.Enrich(context.Background(), src, &entry); err != nil {
		t.Fatal(err)
	}
	if stub.gotReq.Language != "chinese" {
		t.Errorf("language hint = %q, want chinese", stub.gotReq.Language)
	}
}

func TestEnrichFallback(t *testing.T) {
	testCases := []struct {
		name string
		stub *stubEnricher
	}{
		{"error", &stubEnricher{err: errors.New("boom")}},
		{"too few titles", &stubEnricher{titles: []string{"One"}}},
		{"too many titles", &stubEnricher{titles: []string{"1", "2", "3", "4", "5", "6"}}},
	}

	want := []string{
		"Introduction to Justice", "Legal System", "Criminal Law",
		"Civil Law", "Ethics and Justice",
	}
	for _, tc := range testCases {
		b := testBuilder()
		b.Enricher = tc.stub

		src := domain.SourceCourse{Title: "Justice"}
		entry := b.Build(src)
		if err := b.Enrich(context.Background(), src, &entry); err == nil {
			t.Errorf("%s: expected a reported enrichment error", tc.name)
		}
		if !reflect.DeepEqual(entry.ContentTitles, want) {
			t.Errorf("%s: contentTitle = %v, want rule-based fallback", tc.name, entry.ContentTitles)
		}
	}
}

func TestBuildAll(t *testing.T) {
	b := testBuilder()

	courses := []domain.SourceCourse{
		{Title: "Justice"},
		{Title: "Artificial Intelligence"},
		{Title: "Mandarin Chinese Level 1"},
	}
	entries, errs := b.BuildAll(context.Background(), courses)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(entries) != len(courses) {
		t.Fatalf("got %d entries, want %d", len(entries), len(courses))
	}
	for i, entry := range entries {
		if entry.LessonTitle != courses[i].Title {
			t.Errorf("entry %d is %q, want %q", i, entry.LessonTitle, courses[i].Title)
		}
	}
	// ids must come out in row order
	for i := 1; i < len(entries); i++ {
		if entries[i].ID <= entries[i-1].ID {
			t.Errorf("ids out of order: %s after %s", entries[i].ID, entries[i-1].ID)
		}
	}
}

func TestBuildAllEnriched(t *testing.T) {
	b := testBuilder()
	stub := &stubEnricher{titles: []string{"One", "Two", "Three", "Four"}}
	b.Enricher = stub

	courses := make([]domain.SourceCourse, 20)
	for i := range courses {
		courses[i] = domain.SourceCourse{Title: "Justice"}
	}
	entries, errs := b.BuildAll(context.Background(), courses)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if stub.calls != len(courses) {
		t.Errorf("enricher called %d times, want %d", stub.calls, len(courses))
	}
	for i, entry := range entries {
		if !reflect.DeepEqual(entry.ContentTitles, stub.titles) {
			t.Errorf("entry %d contentTitle = %v, want enriched titles", i, entry.ContentTitles)
		}
	}
}

func TestBuildAllEnrichFailureKeepsRuleBased(t *testing.T) {
	b := testBuilder()
	b.Enricher = &stubEnricher{err: errors.New("model down")}

	entries, errs := b.BuildAll(context.Background(), []domain.SourceCourse{{Title: "Justice"}})
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	want := []string{
		"Introduction to Justice", "Legal System", "Criminal Law",
		"Civil Law", "Ethics and Justice",
	}
	if !reflect.DeepEqual(entries[0].ContentTitles, want) {
		t.Errorf("contentTitle = %v, want rule-based fallback", entries[0].ContentTitles)
	}
}

func parseTS(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return ts
}
