// Package archive implements the footage record store: a persisted entry
// collection with sequential id assignment, plus the report and notification
// collections and the submission path that feeds it.
package archive

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/pafa-project/pafa/internal/kv"
	"github.com/pafa-project/pafa/pkg/types"
)

// Persisted collection keys. Each key holds one serialized array.
const (
	EntriesKey = "pafa_entries"
	ReportsKey = "pafa_reports"
	NotifyKey  = "pafa_notifications"
)

// IDPrefix is the literal prefix of every generated entry id.
const IDPrefix = "PAFA-"

// idDigits is the zero-padded width of the id counter.
const idDigits = 6

// Store owns the persisted collections. No other component touches the
// storage primitive directly.
type Store struct {
	kv  kv.Store
	log *log.Entry
	now func() time.Time
}

// New creates a Store over the given storage primitive.
func New(backing kv.Store) *Store {
	return &Store{
		kv:  backing,
		log: log.WithField("component", "archive"),
		now: time.Now,
	}
}

// Load returns the persisted entry collection. A missing key or an unparseable
// payload yields an empty collection; Load never fails.
func (s *Store) Load() []types.Entry {
	var entries []types.Entry
	if !s.loadJSON(EntriesKey, &entries) {
		return []types.Entry{}
	}
	if entries == nil {
		entries = []types.Entry{}
	}
	return entries
}

// Save replaces the persisted entry collection in full.
func (s *Store) Save(entries []types.Entry) error {
	return s.saveJSON(EntriesKey, entries)
}

// Add assigns the next sequential id, stamps the submission time, prepends the
// entry to the collection, and persists. The stored entry is returned.
func (s *Store) Add(entry types.Entry) (types.Entry, error) {
	entries := s.Load()
	entry.ID = nextID(entries)
	entry.Submitted = s.now().UTC().Format(time.RFC3339)
	entries = append([]types.Entry{entry}, entries...)
	if err := s.Save(entries); err != nil {
		return types.Entry{}, err
	}
	return entry, nil
}

// Remove deletes the entry with the given id and persists the remainder.
// Returns ErrNotFound, leaving the collection untouched, if no entry matches.
func (s *Store) Remove(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	entries := s.Load()
	kept := make([]types.Entry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		s.log.Warnf("entry %s not found", id)
		return types.ErrNotFound
	}
	return s.Save(kept)
}

// Update shallow-merges fields over the entry with the given id. The id and
// submitted values are pinned: they keep their stored values even when fields
// supplies replacements. Returns ErrNotFound, leaving the collection
// untouched, if no entry matches.
func (s *Store) Update(id string, fields map[string]any) (types.Entry, error) {
	if id == "" {
		return types.Entry{}, types.ErrInvalidID
	}
	entries := s.Load()
	for i, e := range entries {
		if e.ID != id {
			continue
		}
		merged, err := mergeEntry(e, fields)
		if err != nil {
			return types.Entry{}, fmt.Errorf("merging entry %s: %w", id, err)
		}
		entries[i] = merged
		if err := s.Save(entries); err != nil {
			return types.Entry{}, err
		}
		return merged, nil
	}
	s.log.Warnf("entry %s not found", id)
	return types.Entry{}, types.ErrNotFound
}

// Import adds a batch of entries, assigning ids and submission timestamps to
// any that lack them. Ids are assigned against the accumulating collection, so
// a batch of unlabeled entries receives consecutive ids. When replace is true
// the existing collection is discarded first. The collection is persisted once
// at the end.
func (s *Store) Import(batch []types.Entry, replace bool) ([]types.Entry, error) {
	var entries []types.Entry
	if !replace {
		entries = s.Load()
	}

	imported := make([]types.Entry, 0, len(batch))
	for _, e := range batch {
		if e.ID == "" {
			e.ID = nextID(entries)
		}
		if e.Submitted == "" {
			e.Submitted = s.now().UTC().Format(time.RFC3339)
		}
		entries = append([]types.Entry{e}, entries...)
		imported = append(imported, e)
	}

	if err := s.Save(entries); err != nil {
		return nil, err
	}
	s.log.Infof("imported %d entries", len(imported))
	return imported, nil
}

// Clear irreversibly deletes the entire entry collection. Callers must gate
// this behind an explicit confirmation.
func (s *Store) Clear() error {
	if err := s.kv.Delete(EntriesKey); err != nil {
		return fmt.Errorf("%w: %v", types.ErrStorage, err)
	}
	return nil
}

// ExportAll serializes the full collection as indented JSON for offline
// copy or backup.
func (s *Store) ExportAll() (string, error) {
	entries := s.Load()
	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing entries: %w", err)
	}
	return string(out), nil
}

// nextID returns the next sequential id for the collection: the maximum
// parsed numeric suffix plus one, zero-padded. Ids whose suffix does not
// parse as an integer are ignored, so manually imported higher ids raise the
// floor and gaps from deletions are never reused.
func nextID(entries []types.Entry) string {
	maxNum := 0
	for _, e := range entries {
		if e.ID == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(e.ID, IDPrefix))
		if err == nil && n > maxNum {
			maxNum = n
		}
	}
	return fmt.Sprintf("%s%0*d", IDPrefix, idDigits, maxNum+1)
}

// mergeEntry applies a shallow merge of fields over the entry's serialized
// form, restoring id and submitted afterward.
func mergeEntry(entry types.Entry, fields map[string]any) (types.Entry, error) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return types.Entry{}, err
	}
	var flat map[string]any
	if err := json.Unmarshal(raw, &flat); err != nil {
		return types.Entry{}, err
	}

	for k, v := range fields {
		flat[k] = v
	}
	flat["id"] = entry.ID
	if entry.Submitted != "" {
		flat["submitted"] = entry.Submitted
	} else {
		delete(flat, "submitted")
	}

	merged, err := json.Marshal(flat)
	if err != nil {
		return types.Entry{}, err
	}
	var out types.Entry
	if err := json.Unmarshal(merged, &out); err != nil {
		return types.Entry{}, err
	}
	return out, nil
}

// loadJSON reads and parses the payload under key into out. Returns false,
// with a diagnostic, when the key is absent or the payload does not parse;
// corruption is recovered as "no data", never surfaced.
func (s *Store) loadJSON(key string, out any) bool {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.log.WithError(err).Warnf("reading %s", key)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.log.WithError(err).Warnf("discarding unparseable payload under %s", key)
		return false
	}
	return true
}

// saveJSON serializes v and replaces the payload under key. Failures are
// wrapped as ErrStorage so user-initiated mutations can surface them as a
// recoverable condition.
func (s *Store) saveJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: serializing %s: %v", types.ErrStorage, key, err)
	}
	if err := s.kv.Set(key, raw); err != nil {
		return fmt.Errorf("%w: %v", types.ErrStorage, err)
	}
	return nil
}
