package session

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestGetOrCreateIsIdempotent(t *testing.T) {
	r := NewRegistry(testLogger())

	first := r.GetOrCreate("agent-1")
	second := r.GetOrCreate("agent-1")

	require.Same(t, first, second)
	require.Equal(t, StateInitial, first.State)
	require.Equal(t, 1, r.Len())
}

func TestGetMissingSession(t *testing.T) {
	r := NewRegistry(testLogger())

	_, err := r.Get("nope")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAppendsAccumulate(t *testing.T) {
	r := NewRegistry(testLogger())
	rec := r.GetOrCreate("agent-1")

	r.AddIntervention(rec, "analyze_stuck_pattern")
	r.AddIntervention(rec, "reframe_thought")
	r.AddProgress(rec, "identified the loop")
	r.AddFrustration(rec, 4)
	r.AddFrustration(rec, 6)

	require.Equal(t, []string{"analyze_stuck_pattern", "reframe_thought"}, rec.Interventions)
	require.Equal(t, []string{"identified the loop"}, rec.Progress)
	require.Equal(t, []int{4, 6}, rec.FrustrationHistory)
}

func TestSetPrimaryIssueOverwritesButKeepsLogs(t *testing.T) {
	r := NewRegistry(testLogger())
	rec := r.GetOrCreate("agent-1")

	r.SetPrimaryIssue(rec, "stuck on migration")
	r.AddIntervention(rec, "create_action_plan")
	r.SetPrimaryIssue(rec, "tests keep failing")

	require.Equal(t, "tests keep failing", rec.PrimaryIssue)
	require.Equal(t, []string{"create_action_plan"}, rec.Interventions)
}

func TestSetStateAllowsAnyTransition(t *testing.T) {
	r := NewRegistry(testLogger())
	rec := r.GetOrCreate("agent-1")

	r.SetState(rec, StateResolved)
	r.SetState(rec, StateInitial)
	require.Equal(t, StateInitial, rec.State)
}

func TestSummarize(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base
	r := NewRegistry(testLogger(), WithClock(func() time.Time { return current }))

	rec := r.GetOrCreate("agent-1")
	r.SetPrimaryIssue(rec, "error loop")
	r.AddFrustration(rec, 4)
	r.AddFrustration(rec, 5)
	r.AddFrustration(rec, 6)
	current = base.Add(30 * time.Minute)

	sum, err := r.Summarize("agent-1")
	require.NoError(t, err)
	require.Equal(t, "agent-1", sum.SessionID)
	require.InDelta(t, 30.0, sum.DurationMinutes, 0.001)
	require.InDelta(t, 5.0, sum.AverageFrustration, 0.001)
	require.Equal(t, TrendEscalating, sum.FrustrationTrend)

	_, err = r.Summarize("missing")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSweepZeroMaxAgeDeletesEverything(t *testing.T) {
	r := NewRegistry(testLogger())
	r.GetOrCreate("a")
	r.GetOrCreate("b")
	r.GetOrCreate("c")

	require.Equal(t, 3, r.Sweep(context.Background(), 0))
	require.Equal(t, 0, r.Len())
	require.Equal(t, 0, r.Sweep(context.Background(), 0))
}

func TestSweepKeepsFreshSessions(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base
	r := NewRegistry(testLogger(), WithClock(func() time.Time { return current }))

	old := r.GetOrCreate("old")
	_ = old
	current = base.Add(25 * time.Hour)
	r.GetOrCreate("fresh")

	require.Equal(t, 1, r.Sweep(context.Background(), 24*time.Hour))
	require.Equal(t, 1, r.Len())
	_, err := r.Get("old")
	require.ErrorIs(t, err, ErrSessionNotFound)
	_, err = r.Get("fresh")
	require.NoError(t, err)
}

type captureArchiver struct {
	ids []string
	err error
}

func (c *captureArchiver) ArchiveSession(_ context.Context, rec *Record) error {
	c.ids = append(c.ids, rec.ID)
	return c.err
}

func TestSweepArchivesBeforeDeleting(t *testing.T) {
	arch := &captureArchiver{}
	r := NewRegistry(testLogger(), WithArchiver(arch))
	r.GetOrCreate("a")

	require.Equal(t, 1, r.Sweep(context.Background(), 0))
	require.Equal(t, []string{"a"}, arch.ids)
}

func TestSweepToleratesArchiveFailure(t *testing.T) {
	arch := &captureArchiver{err: errors.New("disk full")}
	r := NewRegistry(testLogger(), WithArchiver(arch))
	r.GetOrCreate("a")
	r.GetOrCreate("b")

	require.Equal(t, 2, r.Sweep(context.Background(), 0))
	require.Equal(t, 0, r.Len())
}

func TestSnapshotIsDetached(t *testing.T) {
	r := NewRegistry(testLogger())
	rec := r.GetOrCreate("agent-1")
	r.SetPrimaryIssue(rec, "error loop")
	r.AddIntervention(rec, "reframe_thought")

	snap := r.Snapshot(rec)
	r.AddIntervention(rec, "wellness_check")
	r.AddFrustration(rec, 6)
	r.SetState(rec, StateEscalated)

	// Later mutations must not show through the copy.
	require.Equal(t, "error loop", snap.PrimaryIssue)
	require.Equal(t, StateInitial, snap.State)
	require.Equal(t, []string{"reframe_thought"}, snap.Interventions)
	require.Empty(t, snap.FrustrationHistory)
}

func TestTrendOf(t *testing.T) {
	require.Equal(t, TrendInsufficientData, TrendOf([]int{5, 6}))
	require.Equal(t, TrendEscalating, TrendOf([]int{2, 5, 5, 7}))
	require.Equal(t, TrendStableOrDeclining, TrendOf([]int{9, 8, 7}))
	require.Equal(t, TrendEscalating, TrendOf([]int{3, 3, 3}))
}
