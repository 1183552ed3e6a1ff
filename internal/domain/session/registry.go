package session

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Registry is an in-memory map of agent sessions keyed by caller-supplied ID.
// Records are created on first access and removed only by an explicit Sweep.
// Nothing survives a process restart.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Record
	archiver Archiver
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithArchiver attaches an archive sink for swept sessions.
func WithArchiver(a Archiver) Option {
	return func(r *Registry) { r.archiver = a }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// NewRegistry creates an empty session registry.
func NewRegistry(logger *slog.Logger, opts ...Option) *Registry {
	r := &Registry{
		sessions: make(map[string]*Record),
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetOrCreate returns the record for id, creating one with default fields
// if none exists. Any non-empty string is a valid identifier; callers are
// expected to reject blank IDs before reaching the registry.
func (r *Registry) GetOrCreate(id string) *Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec, ok := r.sessions[id]; ok {
		return rec
	}
	now := r.now()
	rec := &Record{
		ID:         id,
		State:      StateInitial,
		StartedAt:  now,
		LastUpdate: now,
	}
	r.sessions[id] = rec
	return rec
}

// Get returns the record for id without creating one.
func (r *Registry) Get(id string) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return rec, nil
}

// SetState overwrites the workflow state. Any state may follow any other;
// the registry enforces no transition table.
func (r *Registry) SetState(rec *Record, state State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.State = state
	rec.LastUpdate = r.now()
}

// SetPrimaryIssue records the issue text. A repeated start overwrites the
// issue but leaves the accumulated logs intact.
func (r *Registry) SetPrimaryIssue(rec *Record, issue string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.PrimaryIssue = issue
	rec.LastUpdate = r.now()
}

// AddIntervention appends an operation name to the intervention log.
func (r *Registry) AddIntervention(rec *Record, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.Interventions = append(rec.Interventions, name)
	rec.LastUpdate = r.now()
}

// AddProgress appends a free-text progress indicator.
func (r *Registry) AddProgress(rec *Record, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.Progress = append(rec.Progress, text)
	rec.LastUpdate = r.now()
}

// AddFrustration appends a frustration level to the history.
func (r *Registry) AddFrustration(rec *Record, level int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.FrustrationHistory = append(rec.FrustrationHistory, level)
	rec.LastUpdate = r.now()
}

// Trend reports the current frustration trend for rec.
func (r *Registry) Trend(rec *Record) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return TrendOf(rec.FrustrationHistory)
}

// Snapshot copies rec's current fields under the lock. Callers must not
// read a live *Record directly; concurrent tool calls may be mutating it.
func (r *Registry) Snapshot(rec *Record) Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := *rec
	out.Interventions = append([]string(nil), rec.Interventions...)
	out.Progress = append([]string(nil), rec.Progress...)
	out.FrustrationHistory = append([]int(nil), rec.FrustrationHistory...)
	return out
}

// Summarize builds the derived summary view for id.
func (r *Registry) Summarize(id string) (*Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &Summary{
		SessionID:          rec.ID,
		State:              rec.State,
		PrimaryIssue:       rec.PrimaryIssue,
		DurationMinutes:    r.now().Sub(rec.StartedAt).Minutes(),
		InterventionsTried: append([]string(nil), rec.Interventions...),
		ProgressCount:      len(rec.Progress),
		AverageFrustration: AverageFrustration(rec.FrustrationHistory),
		FrustrationTrend:   TrendOf(rec.FrustrationHistory),
	}, nil
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep deletes every session whose last update is older than maxAge and
// returns the count deleted. Swept records are handed to the archiver, if
// any, before removal; archive failures are logged and do not block the
// sweep. There is no background timer: callers invoke Sweep explicitly.
func (r *Registry) Sweep(ctx context.Context, maxAge time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxAge)
	deleted := 0
	for id, rec := range r.sessions {
		if rec.LastUpdate.After(cutoff) {
			continue
		}
		if r.archiver != nil {
			if err := r.archiver.ArchiveSession(ctx, rec); err != nil && r.logger != nil {
				r.logger.Warn("failed to archive swept session", "session_id", id, "error", err)
			}
		}
		delete(r.sessions, id)
		deleted++
	}
	return deleted
}
