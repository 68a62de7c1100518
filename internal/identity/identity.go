// Package identity generates the synthetic identifiers, timestamps and
// status values attached to each catalog row.
package identity

import (
	cryptorand "crypto/rand"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Bangkok is the fixed civil offset used for every serialized
// timestamp. No DST, always +07:00.
var Bangkok = time.FixedZone("+07:00", 7*60*60)

// Generator produces row ids, media ids, statuses and timestamps.
// Ids are monotonic ULIDs: unique and lexicographically non-decreasing
// in generation order within one run.
type Generator struct {
	entropy *ulid.MonotonicEntropy
	rng     *rand.Rand
	now     time.Time
}

// New returns a generator anchored at the current time with a
// time-seeded random source.
func New() *Generator {
	return NewAt(time.Now(), rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewAt returns a generator anchored at now, drawing the random
// timestamp offsets and statuses from rng. Tests pass a fixed seed.
func NewAt(now time.Time, rng *rand.Rand) *Generator {
	return &Generator{
		entropy: ulid.Monotonic(cryptorand.Reader, 0),
		rng:     rng,
		now:     now,
	}
}

// NewID returns a fresh row identifier. All ids of a run share the
// anchor timestamp; the monotonic entropy keeps them unique and
// ordered.
func (g *Generator) NewID() string {
	return ulid.MustNew(ulid.Timestamp(g.now), g.entropy).String()
}

// MediaIDs returns the cover image and preview video identifiers for a
// row. Both embed independently generated ULIDs, so uniqueness holds
// across the whole output set.
func (g *Generator) MediaIDs() (coverImage, previewVideo string) {
	return "img_" + g.NewID(), "vid_" + g.NewID()
}

// Status draws a weighted row status. Deleted rows are rare; they are
// the only ones that carry a deletedAt timestamp.
func (g *Generator) Status() string {
	switch n := g.rng.Intn(100); {
	case n < 70:
		return "active"
	case n < 85:
		return "draft"
	case n < 95:
		return "archived"
	default:
		return "deleted"
	}
}

// Timestamps draws the row timestamps, serialized in RFC3339 with the
// Bangkok offset. createdAt lies in the past 365 days, updatedAt in
// the past 30 days clamped up to createdAt, and deletedAt is empty
// unless status is "deleted", in which case it is >= updatedAt.
func (g *Generator) Timestamps(status string) (createdAt, updatedAt, deletedAt string) {
	created := g.now.Add(-time.Duration(g.rng.Int63n(int64(365 * 24 * time.Hour))))
	updated := g.now.Add(-time.Duration(g.rng.Int63n(int64(30 * 24 * time.Hour))))
	if updated.Before(created) {
		updated = created
	}

	createdAt = Format(created)
	updatedAt = Format(updated)

	if status == "deleted" {
		ahead := g.now.Sub(updated)
		if ahead > 72*time.Hour {
			ahead = 72 * time.Hour
		}
		deleted := updated
		if ahead > 0 {
			deleted = updated.Add(time.Duration(g.rng.Int63n(int64(ahead))))
		}
		deletedAt = Format(deleted)
	}
	return createdAt, updatedAt, deletedAt
}

// Format renders a timestamp in the catalog's wire form.
func Format(t time.Time) string {
	return t.In(Bangkok).Format(time.RFC3339)
}
