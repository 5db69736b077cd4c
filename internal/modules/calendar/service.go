// README: TTL-cached calendar store refresh with atomic swap.
package calendar

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"caravan/internal/modules/sheets"
)

// Fetcher retrieves the raw grid for one location identifier.
type Fetcher interface {
	FetchTable(ctx context.Context, id string, bypassLocal bool) (sheets.RawTable, error)
}

// Parser turns one raw grid into a location record. It degrades gracefully:
// a record with an empty calendar is valid output, nil means the table was
// unusable. It never panics outward.
type Parser interface {
	ParseLocation(id string, table sheets.RawTable) *LocationRecord
}

// Service owns the calendar store. Readers get the current store without
// I/O while it is younger than the TTL; at most one refresh is in flight at
// a time and the store reference is swapped atomically, so concurrent
// readers simply observe the stale store until the swap completes.
type Service struct {
	fetcher Fetcher
	parser  Parser
	ids     []string
	ttl     time.Duration

	refreshMu sync.Mutex
	current   atomic.Pointer[Store]
}

func NewService(fetcher Fetcher, parser Parser, ids []string, ttl time.Duration) *Service {
	s := &Service{fetcher: fetcher, parser: parser, ids: ids, ttl: ttl}
	s.current.Store(NewStore())
	return s
}

// GetStore returns the current store, refreshing it first when it has
// outlived the TTL. Refresh failures are logged, never surfaced: callers
// always get the best store available, possibly stale or empty.
func (s *Service) GetStore(ctx context.Context) *Store {
	if st := s.current.Load(); st.Age(time.Now()) < s.ttl {
		return st
	}
	s.refresh(ctx, false)
	return s.current.Load()
}

// Refresh rebuilds the store unconditionally, re-downloading every sheet.
func (s *Service) Refresh(ctx context.Context) *Store {
	s.refresh(ctx, true)
	return s.current.Load()
}

func (s *Service) refresh(ctx context.Context, force bool) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	// Another caller may have refreshed while we waited on the lock.
	if !force && s.current.Load().Age(time.Now()) < s.ttl {
		return
	}

	next := NewStore()
	for _, id := range s.ids {
		table, err := s.fetcher.FetchTable(ctx, id, force)
		if err != nil {
			log.Printf("calendar: fetch %s failed: %v", id, err)
			continue
		}
		rec := s.parser.ParseLocation(id, table)
		if rec == nil {
			log.Printf("calendar: parse %s yielded nothing", id)
			continue
		}
		next.Locations[rec.ID] = rec
	}

	// A refresh that produced nothing keeps the previous store; a partial
	// one simply omits the failed locations.
	if len(next.Locations) == 0 {
		log.Printf("calendar: refresh produced no locations; keeping previous store")
		return
	}

	next.RefreshedAt = time.Now()
	s.current.Store(next)
}
