package download

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/handiism/rover/internal/ctxlog"
)

// ProgressLevel indicates the type of progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// State is the position of a batch in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateResolving
	StateFetching
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateResolving:
		return "resolving"
	case StateFetching:
		return "fetching"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Manager runs one resolve-then-fetch batch.
//
// Resolution happens once, up front; a single unknown name fails the batch
// before anything is fetched. Datasets are then fetched one at a time in
// request order, and the first failure ends the batch. Nothing is retried.
type Manager struct {
	catalog    Catalog
	fetcher    Fetcher
	onProgress func(ProgressEvent)

	mu      sync.RWMutex
	state   State
	fetched int
	total   int
	current string
	runID   string
}

// NewManager creates a Manager. onProgress may be nil.
func NewManager(catalog Catalog, fetcher Fetcher, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		catalog:    catalog,
		fetcher:    fetcher,
		onProgress: onProgress,
	}
}

// Execute resolves requested and fetches every dataset.
//
// The returned error is the *UnknownDatasetsError from resolution or the
// first error returned by the Fetcher. A Manager runs once; later calls
// return ErrAlreadyRun.
func (m *Manager) Execute(ctx context.Context, requested []string) error {
	m.mu.Lock()
	if m.state != StateIdle {
		m.mu.Unlock()
		return ErrAlreadyRun
	}
	m.state = StateResolving
	m.runID = uuid.NewString()
	runID := m.runID
	m.mu.Unlock()

	logger := ctxlog.FromContext(ctx).With("run", runID)
	ctx = ctxlog.WithLogger(ctx, logger)

	m.progress(ProgressEvent{Message: fmt.Sprintf("Run %s", runID), Level: LevelVerbose})
	logger.Debug("resolving datasets", "requested", requested)
	datasets, err := Resolve(m.catalog, requested)
	if err != nil {
		m.setState(StateFailed)
		m.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
		return err
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Resolved %d dataset(s)", len(datasets)), Level: LevelVerbose})
	for _, name := range repeated(requested) {
		m.progress(ProgressEvent{Message: fmt.Sprintf("%s requested more than once; it will be fetched again", name), Level: LevelWarning})
	}

	m.mu.Lock()
	m.state = StateFetching
	m.total = len(datasets)
	m.mu.Unlock()

	for i, ds := range datasets {
		// Resolve returns exactly one descriptor per requested name, in order.
		name := requested[i]

		m.mu.Lock()
		m.current = name
		m.mu.Unlock()

		m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching %s (%d/%d)", name, i+1, len(datasets)), Level: LevelInfo})
		m.progress(ProgressEvent{Message: fmt.Sprintf("%s -> %s", ds.URL, ds.Filename), Level: LevelVerbose})
		logger.Debug("fetching dataset", "name", name, "index", i, "url", ds.URL)

		if err := m.fetcher.Fetch(ctx, ds); err != nil {
			m.setState(StateFailed)
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error fetching %s: %v", name, err), Level: LevelError})
			return err
		}

		m.mu.Lock()
		m.fetched++
		m.mu.Unlock()

		m.progress(ProgressEvent{Message: fmt.Sprintf("Saved %s to %s", name, ds.Filename), Level: LevelSuccess})
	}

	m.setState(StateDone)
	logger.Debug("batch complete", "fetched", len(datasets))
	return nil
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// GetProgress returns how many datasets have been fetched, how many the
// batch holds and the name currently being fetched.
func (m *Manager) GetProgress() (fetched, total int, current string) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fetched, m.total, m.current
}

// RunID returns the identifier attached to this batch's log records, or
// "" before Execute.
func (m *Manager) RunID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.runID
}

// repeated returns the names that occur more than once in names, each
// reported once, in order of first repeat.
func repeated(names []string) []string {
	seen := make(map[string]int, len(names))
	var out []string
	for _, name := range names {
		seen[name]++
		if seen[name] == 2 {
			out = append(out, name)
		}
	}
	return out
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
