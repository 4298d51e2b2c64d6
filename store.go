package carbontrack

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"iter"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Store persists one Record per user as a JSON file in Dir.
//
// The filename for a username is a one-way deterministic transform so stored
// filenames do not leak usernames directly. This is a storage-layout detail,
// not a security boundary.
type Store struct {
	Dir string
}

// NewStore opens (creating if needed) the storage directory and makes sure
// the population baseline exists. A baseline initialization failure is logged
// but does not prevent opening the store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create storage directory %q: %w", dir, err)
	}
	s := &Store{Dir: dir}
	if err := s.EnsureBaseline(); err != nil {
		log.Printf("warning: could not initialize population baseline: %v", err)
	}
	return s, nil
}

// userID derives the on-disk identifier for a username.
func userID(username string) string {
	sum := sha256.Sum256([]byte(username))
	return hex.EncodeToString(sum[:])
}

func (s *Store) path(username string) string {
	return filepath.Join(s.Dir, userID(username)+".json")
}

// Exists reports whether a record is persisted for the username.
func (s *Store) Exists(username string) bool {
	_, err := os.Stat(s.path(username))
	return err == nil
}

// Load returns the persisted record for a username. A missing or corrupt
// backing file is treated as "absent": the condition is logged and a fresh
// default record is returned, never an error. Decoding starts from a default
// record, so fields absent from the file keep their defaults rather than
// collapsing to zero values.
func (s *Store) Load(username string) *Record {
	path := s.path(username)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not read record %q, using defaults: %v", path, err)
		}
		return NewRecord()
	}
	r := NewRecord()
	if err := json.Unmarshal(data, r); err != nil {
		log.Printf("warning: corrupt record %q, using defaults: %v", path, err)
		return NewRecord()
	}
	if r.Logs == nil {
		r.Logs = []LogEntry{}
	}
	return r
}

// Save persists the full record, overwriting prior content. The write goes
// through a temporary file and an atomic rename so readers never observe a
// partially written record.
func (s *Store) Save(username string, r *Record) error {
	return writeJSONFile(s.path(username), r)
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode %q: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("could not replace %q: %w", path, err)
	}
	return nil
}

// Records iterates over all persisted user records, yielding the on-disk
// identifier and the decoded record. Unreadable or corrupt files are logged
// and skipped; the baseline file is not a user record.
func (s *Store) Records() iter.Seq2[string, *Record] {
	return func(yield func(string, *Record) bool) {
		entries, err := os.ReadDir(s.Dir)
		if err != nil {
			log.Printf("warning: could not scan storage directory %q: %v", s.Dir, err)
			return
		}
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !strings.HasSuffix(name, ".json") || name == baselineFile {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.Dir, name))
			if err != nil {
				log.Printf("warning: could not read record %q, skipping: %v", name, err)
				continue
			}
			r := NewRecord()
			if err := json.Unmarshal(data, r); err != nil {
				log.Printf("warning: corrupt record %q, skipping: %v", name, err)
				continue
			}
			if !yield(strings.TrimSuffix(name, ".json"), r) {
				return
			}
		}
	}
}
