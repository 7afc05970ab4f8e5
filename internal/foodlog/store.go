// ABOUTME: Date-partitioned food log store over an injected Blob capability.
// ABOUTME: Maintains the date index and an id-to-date index transactionally.
package foodlog

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/harperreed/nosh/internal/models"
	"github.com/harperreed/nosh/internal/storage"
)

const (
	partitionPrefix = "food_logs_" // partitionPrefix + YYYY-MM-DD -> []FoodLogEntry
	dateIndexKey    = "food_log_dates"
	idIndexKey      = "food_log_ids" // id -> date, makes deletion O(1)
)

// ValidationError reports a save rejected for a missing required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "food log entry missing required field: " + e.Field
}

// Store is the date-partitioned food log. Writes touching the same date are
// serialized by a per-date mutex so concurrent read-modify-write cycles on a
// partition blob cannot lose updates; writes to disjoint dates proceed
// independently. The two index blobs are guarded by their own mutex.
type Store struct {
	blob storage.Blob

	dateLocks keyedMutex
	indexMu   sync.Mutex
}

// New creates a Store over the given blob capability.
func New(blob storage.Blob) *Store {
	return &Store{blob: blob}
}

// keyedMutex hands out one mutex per key. Entries are never released; the
// key space is calendar dates, bounded to a few hundred for a personal log.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}

// SaveEntry stores an entry in its date partition, replacing any existing
// entry with the same ID, then records the date in the date index and the
// id-to-date index. Fails with a ValidationError when ID or Timestamp is
// missing; the partition key is always derived from the timestamp.
func (s *Store) SaveEntry(ctx context.Context, e *models.FoodLogEntry) error {
	if e == nil || e.ID == "" {
		return &ValidationError{Field: "id"}
	}
	if e.Timestamp.IsZero() {
		return &ValidationError{Field: "timestamp"}
	}
	date := e.LogDate()

	// An edit can move an entry across dates. Evict the old copy first so
	// replace-by-id holds globally, not just within one partition.
	s.indexMu.Lock()
	ids, err := s.readIDIndex(ctx)
	s.indexMu.Unlock()
	if err != nil {
		return err
	}
	if oldDate, ok := ids[e.ID]; ok && oldDate != date {
		if err := s.DeleteEntry(ctx, e.ID); err != nil {
			return err
		}
	}

	lock := s.dateLocks.get(date)
	lock.Lock()
	defer lock.Unlock()

	entries, err := s.readPartition(ctx, date)
	if err != nil {
		return err
	}

	replaced := false
	for i := range entries {
		if entries[i].ID == e.ID {
			entries[i] = *e
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, *e)
	}

	if err := s.writePartition(ctx, date, entries); err != nil {
		return err
	}
	return s.indexEntry(ctx, e.ID, date)
}

// EntriesForDate returns the partition for date, or an empty list when the
// date is absent. A corrupt partition blob degrades to an empty list with a
// logged warning so the log stays browsable; I/O failures still propagate.
func (s *Store) EntriesForDate(ctx context.Context, date string) ([]models.FoodLogEntry, error) {
	return s.readPartition(ctx, date)
}

// DeleteEntry removes the entry with the given ID, dropping its date from
// the date index when the partition empties. Deleting an unknown ID is a
// successful no-op.
func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}

	date, err := s.lookupDate(ctx, id)
	if err != nil {
		return err
	}
	if date == "" {
		return nil
	}

	lock := s.dateLocks.get(date)
	lock.Lock()
	defer lock.Unlock()

	entries, err := s.readPartition(ctx, date)
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		// Stale id index entry; nothing to remove from the partition.
		return s.unindexEntry(ctx, id, date, false)
	}

	if len(kept) == 0 {
		if err := s.blob.Remove(ctx, partitionPrefix+date); err != nil {
			return err
		}
		return s.unindexEntry(ctx, id, date, true)
	}

	if err := s.writePartition(ctx, date, kept); err != nil {
		return err
	}
	return s.unindexEntry(ctx, id, date, false)
}

// EntriesForRange returns a date-to-entries map for every indexed date within
// [start, end] inclusive whose partition is non-empty. Lexicographic
// comparison is valid date ordering for YYYY-MM-DD keys.
func (s *Store) EntriesForRange(ctx context.Context, start, end string) (map[string][]models.FoodLogEntry, error) {
	dates, err := s.Dates(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.FoodLogEntry)
	for _, d := range dates {
		if d < start || d > end {
			continue
		}
		entries, err := s.readPartition(ctx, d)
		if err != nil {
			return nil, err
		}
		if len(entries) > 0 {
			result[d] = entries
		}
	}
	return result, nil
}

// Dates returns the sorted list of dates holding at least one entry.
func (s *Store) Dates(ctx context.Context) ([]string, error) {
	raw, found, err := s.blob.Get(ctx, dateIndexKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var dates []string
	if err := json.Unmarshal([]byte(raw), &dates); err != nil {
		log.Warn("food log date index is corrupt, treating as empty", "err", err)
		return nil, nil
	}
	return dates, nil
}

// readPartition loads and decodes a date partition. Corrupt JSON reads as
// empty with a warning rather than an error.
func (s *Store) readPartition(ctx context.Context, date string) ([]models.FoodLogEntry, error) {
	raw, found, err := s.blob.Get(ctx, partitionPrefix+date)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.FoodLogEntry{}, nil
	}

	var entries []models.FoodLogEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Warn("food log partition is corrupt, treating as empty", "date", date, "err", err)
		return []models.FoodLogEntry{}, nil
	}
	return entries, nil
}

func (s *Store) writePartition(ctx context.Context, date string, entries []models.FoodLogEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.blob.Set(ctx, partitionPrefix+date, string(data))
}

// indexEntry records date in the date index (idempotent) and id in the
// id-to-date index.
func (s *Store) indexEntry(ctx context.Context, id, date string) error {
	s.indexMu.Lock()
	defer s.indexMu.Unlock()

	dates, err := s.Dates(ctx)
	if err != nil {
		return err
	}
	if !containsDate(dates, date) {
		dates = append(dates, date)
		sort.Strings(dates)
		if err := s.writeDates(ctx, dates); err != nil {
			return err
		}
	}

	ids, err := s.readIDIndex(ctx)
	if err != nil {
		return err
	}
	ids[id] = date
	return s.writeIDIndex(ctx, ids)
}

// unindexEntry drops id from the id index and, when dateEmptied, drops date
// from the date index so the index never holds a date with no entries.
func (s *Store) unindexEntry(ctx context.Context, id, date string, dateEmptied bool) error {
	s.indexMu.Lock()
	defer s.indexMu.Unlock()

	if dateEmptied {
		dates, err := s.Dates(ctx)
		if err != nil {
			return err
		}
		kept := dates[:0]
		for _, d := range dates {
			if d != date {
				kept = append(kept, d)
			}
		}
		if len(kept) == 0 {
			if err := s.blob.Remove(ctx, dateIndexKey); err != nil {
				return err
			}
		} else if err := s.writeDates(ctx, kept); err != nil {
			return err
		}
	}

	ids, err := s.readIDIndex(ctx)
	if err != nil {
		return err
	}
	delete(ids, id)
	return s.writeIDIndex(ctx, ids)
}

// lookupDate resolves an entry ID to its partition date via the id index,
// falling back to a scan of indexed dates for logs written before the id
// index existed.
func (s *Store) lookupDate(ctx context.Context, id string) (string, error) {
	ids, err := s.readIDIndex(ctx)
	if err != nil {
		return "", err
	}
	if date, ok := ids[id]; ok {
		return date, nil
	}

	dates, err := s.Dates(ctx)
	if err != nil {
		return "", err
	}
	for _, d := range dates {
		entries, err := s.readPartition(ctx, d)
		if err != nil {
			return "", err
		}
		for _, e := range entries {
			if e.ID == id {
				return d, nil
			}
		}
	}
	return "", nil
}

func (s *Store) readIDIndex(ctx context.Context) (map[string]string, error) {
	raw, found, err := s.blob.Get(ctx, idIndexKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return map[string]string{}, nil
	}

	var ids map[string]string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.Warn("food log id index is corrupt, rebuilding lazily", "err", err)
		return map[string]string{}, nil
	}
	return ids, nil
}

func (s *Store) writeIDIndex(ctx context.Context, ids map[string]string) error {
	if len(ids) == 0 {
		return s.blob.Remove(ctx, idIndexKey)
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.blob.Set(ctx, idIndexKey, string(data))
}

func (s *Store) writeDates(ctx context.Context, dates []string) error {
	data, err := json.Marshal(dates)
	if err != nil {
		return err
	}
	return s.blob.Set(ctx, dateIndexKey, string(data))
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}
