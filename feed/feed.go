// Package feed produces the bounded, always-non-empty, approved-only
// testimonial feed shown on the public landing page.
package feed

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"fitapi/logger"
	"fitapi/metrics"
	"fitapi/models"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/errgroup"
)

// Repository abstracts the testimonial queries the feed needs.
type Repository interface {
	Find(ctx context.Context, filter bson.M, sort bson.D, projection bson.M, limit int64) ([]models.Testimonial, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
}

// Result is the feed payload. Total never reports fewer entries than were
// actually returned.
type Result struct {
	Results      int                `json:"results"`
	Total        int64              `json:"total"`
	IsDefault    bool               `json:"isDefault"`
	Testimonials []models.FeedEntry `json:"testimonials"`
}

type Feed struct {
	repo     Repository
	cap      int
	defaults []models.FeedEntry
}

func New(repo Repository, cap int) *Feed {
	if cap <= 0 {
		cap = 3
	}
	return &Feed{repo: repo, cap: cap, defaults: models.DefaultTestimonials()}
}

// List serves the public feed. Store failures are never surfaced: the feed
// degrades to the built-in defaults instead.
func (f *Feed) List(ctx context.Context, query url.Values) Result {
	filter := BuildFilter(query)
	sort := ResolveSort(query.Get("sort"))
	projection := ResolveFields(query.Get("fields"))

	var (
		page  []models.Testimonial
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = f.repo.Find(gctx, filter, sort, projection, int64(f.cap))
		return err
	})
	g.Go(func() error {
		var err error
		total, err = f.repo.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Warn("testimonial query failed, serving defaults", err)
		metrics.IncFeedFallback()
		entries := f.defaults
		if len(entries) > f.cap {
			entries = entries[:f.cap]
		}
		return Result{
			Results:      len(entries),
			Total:        int64(len(entries)),
			IsDefault:    true,
			Testimonials: entries,
		}
	}

	entries := make([]models.FeedEntry, 0, f.cap)
	seen := make(map[string]bool, f.cap)
	for _, t := range page {
		if len(entries) >= f.cap {
			break
		}
		entries = append(entries, models.FeedEntryOf(t))
		seen[t.Content] = true
	}

	var backfilled uint64
	for _, d := range f.defaults {
		if len(entries) >= f.cap {
			break
		}
		if seen[d.Content] {
			continue
		}
		entries = append(entries, d)
		seen[d.Content] = true
		backfilled++
	}
	metrics.AddFeedBackfill(backfilled)
	metrics.IncFeedServed()

	isDefault := false
	for _, e := range entries {
		if e.IsPlaceholder() {
			isDefault = true
			break
		}
	}
	if total < int64(len(entries)) {
		total = int64(len(entries))
	}
	return Result{
		Results:      len(entries),
		Total:        total,
		IsDefault:    isDefault,
		Testimonials: entries,
	}
}

// control keys recognized on the query string and excluded from the store filter
var controlKeys = map[string]bool{
	"page":   true,
	"limit":  true,
	"sort":   true,
	"fields": true,
}

// BuildFilter turns the caller's query into a store filter. A caller-supplied
// status key is always discarded; the feed only ever serves approved entries.
func BuildFilter(query url.Values) bson.M {
	filter := bson.M{}
	for key, vs := range query {
		if controlKeys[key] || key == "status" || len(vs) == 0 {
			continue
		}
		if n, err := strconv.Atoi(vs[0]); err == nil {
			filter[key] = n
		} else {
			filter[key] = vs[0]
		}
	}
	filter["status"] = models.StatusApproved
	return filter
}

// ResolveSort parses a comma-separated sort spec ("-" prefix = descending).
// Default is newest first.
func ResolveSort(spec string) bson.D {
	if spec == "" {
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	var sort bson.D
	for _, field := range strings.Split(spec, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		dir := 1
		if strings.HasPrefix(field, "-") {
			dir = -1
			field = field[1:]
		}
		sort = append(sort, bson.E{Key: field, Value: dir})
	}
	if len(sort) == 0 {
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	return sort
}

// ResolveFields parses a comma-separated projection list.
func ResolveFields(spec string) bson.M {
	if spec == "" {
		return nil
	}
	projection := bson.M{}
	for _, field := range strings.Split(spec, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		projection[field] = 1
	}
	if len(projection) == 0 {
		return nil
	}
	return projection
}
