package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"syscall"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

// ErrStoreCorrupted indicates the history file exists but contains invalid
// JSON. Read operations still degrade to an empty document; this error is
// surfaced only by explicit health checks.
var ErrStoreCorrupted = errors.New("history file corrupted")

// timestampLayout is a fixed-width UTC ISO-8601 layout. Fixed width keeps
// lexicographic ordering of timestamp strings chronological.
const timestampLayout = "2006-01-02T15:04:05.000000Z"

// Store owns the history document file and serializes access to it.
type Store struct {
	mu       sync.RWMutex
	filePath string
	entropy  *ulid.MonotonicEntropy
	now      func() time.Time
}

// New creates a Store backed by the given file path. If filePath is empty,
// it defaults to ~/.carbontrack/history.json. The backing file is created
// lazily on first write.
func New(filePath string) (*Store, error) {
	if filePath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("determining home directory: %w", err)
		}
		filePath = filepath.Join(homeDir, ".carbontrack", "history.json")
	}

	return &Store{
		filePath: filePath,
		entropy:  ulid.Monotonic(rand.Reader, 0),
		now:      time.Now,
	}, nil
}

// FilePath returns the file path of the history document.
func (s *Store) FilePath() string {
	return s.filePath
}

// lockFilePath returns the path to the lockfile for cross-process
// coordination.
func (s *Store) lockFilePath() string {
	return s.filePath + ".lock"
}

// acquireFileLock acquires a cross-process advisory lockfile.
// Returns a cleanup function that releases the lock.
func (s *Store) acquireFileLock() (func(), error) {
	lockPath := s.lockFilePath()

	if err := os.MkdirAll(filepath.Dir(lockPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	// Try to create lockfile exclusively; retry with stale lock detection
	const maxRetries = 10
	const retryDelay = 100 * time.Millisecond
	const staleLockAge = 30 * time.Second

	for i := 0; i < maxRetries; i++ {
		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err == nil {
			// Write PID for stale lock detection
			_, _ = fmt.Fprintf(f, "%d", os.Getpid())
			_ = f.Close()
			return func() { _ = os.Remove(lockPath) }, nil
		}

		if removeStaleLock(lockPath, staleLockAge) {
			continue
		}
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("could not acquire lock on %s after retries", lockPath)
}

// removeStaleLock checks if a lock file is stale and removes it if so.
// Returns true if the lock was removed (caller should retry).
func removeStaleLock(lockPath string, staleLockAge time.Duration) bool {
	info, statErr := os.Stat(lockPath)
	if statErr != nil || time.Since(info.ModTime()) <= staleLockAge {
		return false
	}

	if isLockHeldByLiveProcess(lockPath) {
		return false
	}

	// PID not readable, not parseable, or process dead — remove stale lock
	_ = os.Remove(lockPath)
	return true
}

// isLockHeldByLiveProcess reads the PID from a lock file and checks if that
// process is still alive.
func isLockHeldByLiveProcess(lockPath string) bool {
	pidData, readErr := os.ReadFile(lockPath)
	if readErr != nil || len(pidData) == 0 {
		return false
	}
	var pid int
	if _, scanErr := fmt.Sscanf(string(pidData), "%d", &pid); scanErr != nil || pid <= 0 {
		return false
	}
	return processExists(pid) == nil
}

// processExists checks whether a process with the given PID is still alive.
func processExists(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	// Signal 0 tests process existence without actually sending a signal
	return proc.Signal(syscall.Signal(0))
}

// read loads the document from disk. Missing or unreadable files degrade
// to an empty-shape document ("degrade to empty" policy): availability is
// preferred over data-loss visibility for reads.
func (s *Store) read() Document {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", s.filePath).Msg("reading history file, starting empty")
		}
		return emptyDocument()
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warn().Err(err).Str("path", s.filePath).Msg("history file corrupted, starting empty")
		return emptyDocument()
	}

	// Repair missing containers from hand-edited or truncated files.
	if doc.Calculations == nil {
		doc.Calculations = []Calculation{}
	}
	if doc.Goals == nil {
		doc.Goals = []Goal{}
	}
	if doc.Settings == nil {
		doc.Settings = map[string]any{}
	}

	return doc
}

// write persists the document atomically via a temp file rename.
func (s *Store) write(doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling history document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0o750); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	tmpPath := s.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("writing history temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.filePath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming history temp file: %w", err)
	}

	return nil
}

// mutate runs fn on the current document and persists the result. It
// reports success as a boolean: write failures are logged and reported,
// never propagated, matching the best-effort persistence policy. A false
// return means the mutation is not guaranteed durable.
func (s *Store) mutate(op string, fn func(doc *Document)) bool {
	unlock, lockErr := s.acquireFileLock()
	if lockErr != nil {
		log.Warn().Err(lockErr).Str("operation", op).Msg("history mutation failed")
		return false
	}
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.read()
	fn(&doc)

	if err := s.write(doc); err != nil {
		log.Warn().Err(err).Str("operation", op).Msg("history mutation failed")
		return false
	}
	return true
}

// SaveCalculation appends a calculation record to the history log,
// assigning a timestamp and ULID if absent. Returns false when the write
// fails; the caller decides whether to warn or retry.
func (s *Store) SaveCalculation(c Calculation) bool {
	if c.Timestamp == "" {
		c.Timestamp = s.now().UTC().Format(timestampLayout)
	}
	if c.ID == "" {
		c.ID = ulid.MustNew(ulid.Timestamp(s.now()), s.entropy).String()
	}

	return s.mutate("save_calculation", func(doc *Document) {
		doc.Calculations = append(doc.Calculations, c)
	})
}

// LoadHistory returns the complete history document. The backing file
// being absent or unreadable yields an empty-shape document, never an
// error.
func (s *Store) LoadHistory() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read()
}

// Calculations returns the calculation log ordered most-recent-first by
// timestamp string. The sort is by field, not insertion order, so records
// saved out of chronological order still come back newest first. A
// positive limit truncates the result after sorting.
func (s *Store) Calculations(limit int) []Calculation {
	doc := s.LoadHistory()

	calcs := doc.Calculations
	sort.SliceStable(calcs, func(i, j int) bool {
		return calcs[i].Timestamp > calcs[j].Timestamp
	})

	if limit > 0 && limit < len(calcs) {
		return calcs[:limit]
	}
	return calcs
}

// LatestCalculation returns the most recent calculation, if any.
func (s *Store) LatestCalculation() (Calculation, bool) {
	calcs := s.Calculations(1)
	if len(calcs) == 0 {
		return Calculation{}, false
	}
	return calcs[0], true
}

// ClearHistory resets the entire document: calculations, the active goal,
// and settings are all destroyed together.
func (s *Store) ClearHistory() bool {
	return s.mutate("clear_history", func(doc *Document) {
		*doc = emptyDocument()
	})
}

// SaveGoal replaces the active goal, assigning a timestamp if absent.
// Saving a zero-value goal clears the slot.
func (s *Store) SaveGoal(g Goal) bool {
	if g.IsZero() {
		return s.ResetGoal()
	}
	if g.Timestamp == "" {
		g.Timestamp = s.now().UTC().Format(timestampLayout)
	}

	return s.mutate("save_goal", func(doc *Document) {
		doc.Goals = []Goal{g}
	})
}

// ResetGoal clears the active goal without touching calculations or
// settings.
func (s *Store) ResetGoal() bool {
	return s.mutate("reset_goal", func(doc *Document) {
		doc.Goals = []Goal{}
	})
}

// ActiveGoal returns the currently active goal, if any.
func (s *Store) ActiveGoal() (Goal, bool) {
	doc := s.LoadHistory()
	if len(doc.Goals) == 0 {
		return Goal{}, false
	}
	return doc.Goals[0], true
}

// UpdateSettings shallow-merges the partial settings map into the
// persisted settings.
func (s *Store) UpdateSettings(partial map[string]any) bool {
	return s.mutate("update_settings", func(doc *Document) {
		for k, v := range partial {
			doc.Settings[k] = v
		}
	})
}

// Settings returns the persisted settings map.
func (s *Store) Settings() map[string]any {
	return s.LoadHistory().Settings
}

// CheckHealth reports whether the backing file, if present, parses as a
// history document. It is the only operation that surfaces
// ErrStoreCorrupted instead of degrading to empty.
func (s *Store) CheckHealth() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading history file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreCorrupted, err)
	}
	return nil
}
