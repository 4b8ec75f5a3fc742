package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vncsmyrnk/authlist/internal/core/domain"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// memoryRepository keeps records keyed by email, like the real stores.
type memoryRepository struct {
	mu        sync.Mutex
	records   map[string]domain.AuthorizedUserRecord
	upserts   int
	upsertErr error
	listErr   error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{records: make(map[string]domain.AuthorizedUserRecord)}
}

func (r *memoryRepository) Upsert(ctx context.Context, record *domain.AuthorizedUserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upserts++
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.records[record.Email] = *record
	return nil
}

func (r *memoryRepository) ListAll(ctx context.Context) ([]*domain.AuthorizedUserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	records := make([]*domain.AuthorizedUserRecord, 0, len(r.records))
	for _, rec := range r.records {
		rec := rec
		records = append(records, &rec)
	}
	return records, nil
}

func sortByEmail(views []domain.AuthorizedUserView) {
	sort.Slice(views, func(i, j int) bool { return views[i].Email < views[j].Email })
}
