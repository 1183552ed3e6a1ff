package mcp

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mwhitmore/cbt-agent-mcp/internal/domain/cbt"
	"github.com/mwhitmore/cbt-agent-mcp/internal/domain/session"
	"github.com/mwhitmore/cbt-agent-mcp/internal/domain/thinking"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	return NewServer(Config{
		Name:        "cbt-agent-helper",
		Version:     "test",
		SweepMaxAge: 24 * time.Hour,
		Registry:    session.NewRegistry(logger),
		CBT:         cbt.NewService(logger),
		Thinking:    thinking.NewService(logger, thinking.WithRand(rand.New(rand.NewSource(1)))),
		Logger:      logger,
	})
}

// roundTrip asserts the payload serializes to JSON and back.
func roundTrip(t *testing.T, payload any) map[string]any {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestStartSessionLifecycle(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, out, err := s.handleStartSession(ctx, nil, StartSessionArgs{
		SessionID:      "agent-1",
		InitialProblem: "stuck in an error loop",
	})
	require.NoError(t, err)
	result, ok := out.(StartSessionResult)
	require.True(t, ok)
	require.Equal(t, "agent-1", result.SessionID)
	require.Equal(t, session.StateInProgress, result.State)
	require.Equal(t, "stuck in an error loop", result.PrimaryIssue)

	// Repeat overwrites the issue but keeps accumulated logs.
	_, _, err = s.handleAnalyzeStuckPattern(ctx, nil, AnalyzeStuckPatternArgs{
		CurrentSituation: "migrating",
		StuckPattern:     "error loop",
		SessionID:        "agent-1",
	})
	require.NoError(t, err)

	_, out, err = s.handleStartSession(ctx, nil, StartSessionArgs{
		SessionID:      "agent-1",
		InitialProblem: "now a different problem",
	})
	require.NoError(t, err)

	_, out, err = s.handleGetSessionSummary(ctx, nil, GetSessionSummaryArgs{SessionID: "agent-1"})
	require.NoError(t, err)
	summary, ok := out.(*session.Summary)
	require.True(t, ok)
	require.Equal(t, "now a different problem", summary.PrimaryIssue)
	require.Contains(t, summary.InterventionsTried, "analyze_stuck_pattern")
}

func TestStartSessionGeneratesID(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleStartSession(context.Background(), nil, StartSessionArgs{
		InitialProblem: "no id supplied",
	})
	require.NoError(t, err)
	result := out.(StartSessionResult)
	require.NotEmpty(t, result.SessionID)
}

func TestStartSessionTrimsProblem(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleStartSession(context.Background(), nil, StartSessionArgs{
		SessionID:      "agent-1",
		InitialProblem: "  stuck on migration  ",
	})
	require.NoError(t, err)
	result := out.(StartSessionResult)
	require.Equal(t, "stuck on migration", result.PrimaryIssue)

	_, out, err = s.handleGetSessionSummary(context.Background(), nil, GetSessionSummaryArgs{SessionID: " agent-1 "})
	require.NoError(t, err)
	summary := out.(*session.Summary)
	require.Equal(t, "stuck on migration", summary.PrimaryIssue)
}

func TestStartSessionValidation(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleStartSession(context.Background(), nil, StartSessionArgs{
		SessionID:      "agent-1",
		InitialProblem: "   ",
	})
	require.NoError(t, err)
	payload, ok := out.(ErrorPayload)
	require.True(t, ok)
	require.Equal(t, "failed", payload.Status)
	require.Contains(t, payload.Error, "initial_problem")
}

func TestGetSessionSummaryUnknownSession(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleGetSessionSummary(context.Background(), nil, GetSessionSummaryArgs{SessionID: "nope"})
	require.NoError(t, err)
	payload, ok := out.(ErrorPayload)
	require.True(t, ok)
	require.Equal(t, "failed", payload.Status)
	require.Contains(t, payload.Error, "session not found")
}

func TestCleanupSessions(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, _, err := s.handleStartSession(ctx, nil, StartSessionArgs{SessionID: id, InitialProblem: "p"})
		require.NoError(t, err)
	}

	zero := 0.0
	_, out, err := s.handleCleanupSessions(ctx, nil, CleanupSessionsArgs{MaxAgeHours: &zero})
	require.NoError(t, err)
	result := out.(CleanupSessionsResult)
	require.Equal(t, 3, result.SessionsDeleted)
	require.Equal(t, 0, result.SessionsRemaining)

	// A second sweep has nothing left to delete.
	_, out, err = s.handleCleanupSessions(ctx, nil, CleanupSessionsArgs{MaxAgeHours: &zero})
	require.NoError(t, err)
	require.Equal(t, 0, out.(CleanupSessionsResult).SessionsDeleted)

	// Default max age keeps fresh sessions.
	_, _, err = s.handleStartSession(ctx, nil, StartSessionArgs{SessionID: "fresh", InitialProblem: "p"})
	require.NoError(t, err)
	_, out, err = s.handleCleanupSessions(ctx, nil, CleanupSessionsArgs{})
	require.NoError(t, err)
	result = out.(CleanupSessionsResult)
	require.Equal(t, 0, result.SessionsDeleted)
	require.Equal(t, 1, result.SessionsRemaining)
	require.InDelta(t, 24.0, result.MaxAgeHours, 0.001)
}

func TestCleanupSessionsRejectsNegativeAge(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, _, err := s.handleStartSession(ctx, nil, StartSessionArgs{SessionID: "a", InitialProblem: "p"})
	require.NoError(t, err)

	neg := -1.0
	_, out, err := s.handleCleanupSessions(ctx, nil, CleanupSessionsArgs{MaxAgeHours: &neg})
	require.NoError(t, err)
	payload := out.(ErrorPayload)
	require.Equal(t, "failed", payload.Status)
	require.Contains(t, payload.Error, "max_age_hours")
	require.Equal(t, 1, s.registry.Len())
}

func TestAnalyzeStuckPatternTool(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleAnalyzeStuckPattern(context.Background(), nil, AnalyzeStuckPatternArgs{
		CurrentSituation:   "fixing CI",
		StuckPattern:       "error_loop appeared again",
		AttemptedSolutions: StringList{"retry", "clean build", "pin versions"},
	})
	require.NoError(t, err)
	intervention := out.(*cbt.Intervention)
	require.Equal(t, "Problem Solving", intervention.StrategyApplied)
	require.Contains(t, intervention.SpecificSuggestions, "You've tried multiple approaches - take a step back")

	fields := roundTrip(t, intervention)
	require.Equal(t, "error_loop appeared again", fields["identified_pattern"])
}

func TestRegulateFrustrationEscalation(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, _, err := s.handleStartSession(ctx, nil, StartSessionArgs{SessionID: "agent-1", InitialProblem: "p"})
	require.NoError(t, err)

	var last *cbt.FrustrationResponse
	for _, level := range []int{4, 6, 8} {
		_, out, err := s.handleRegulateFrustration(ctx, nil, RegulateFrustrationArgs{
			FrustrationLevel: level,
			Trigger:          "flaky tests",
			SessionID:        "agent-1",
		})
		require.NoError(t, err)
		last = out.(*cbt.FrustrationResponse)
	}

	// Non-decreasing last three with the newest above 7 escalates the session.
	require.Equal(t, "analyze_stuck_pattern", last.RecommendedAction)
	rec, err := s.registry.Get("agent-1")
	require.NoError(t, err)
	require.Equal(t, session.StateEscalated, s.registry.Snapshot(rec).State)
}

func TestRegulateFrustrationNoSessionNoEscalation(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleRegulateFrustration(context.Background(), nil, RegulateFrustrationArgs{
		FrustrationLevel: 9,
		Trigger:          "flaky tests",
	})
	require.NoError(t, err)
	resp := out.(*cbt.FrustrationResponse)
	require.Empty(t, resp.RecommendedAction)
}

func TestRegulateFrustrationValidationMapping(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, out, err := s.handleRegulateFrustration(ctx, nil, RegulateFrustrationArgs{
		FrustrationLevel: 15,
		Trigger:          "x",
	})
	require.NoError(t, err)
	payload := out.(ErrorPayload)
	require.Equal(t, "failed", payload.Status)

	_, out, err = s.handleRegulateFrustration(ctx, nil, RegulateFrustrationArgs{
		FrustrationLevel: 5,
		Trigger:          "",
	})
	require.NoError(t, err)
	payload = out.(ErrorPayload)
	require.Equal(t, "failed", payload.Status)

	fields := roundTrip(t, payload)
	require.Equal(t, "failed", fields["status"])
	require.NotEmpty(t, fields["error"])
}

func TestWellnessCheckRecordsProgress(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, _, err := s.handleStartSession(ctx, nil, StartSessionArgs{SessionID: "agent-1", InitialProblem: "p"})
	require.NoError(t, err)

	_, out, err := s.handleWellnessCheck(ctx, nil, WellnessCheckArgs{
		CurrentTask:  "  refactor  ",
		TimeOnTask:   10,
		ProgressMade: true,
		SessionID:    "agent-1",
	})
	require.NoError(t, err)
	assessment := out.(*cbt.WellnessAssessment)
	require.Equal(t, "Healthy progress pattern", assessment.Status)

	rec, err := s.registry.Get("agent-1")
	require.NoError(t, err)
	require.Equal(t, []string{"progress reported: refactor"}, s.registry.Snapshot(rec).Progress)
}

func TestThinkingToolsRoundTrip(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, out, err := s.handleInitiateDeepThinking(ctx, nil, InitiateDeepThinkingArgs{Topic: "the cache design"})
	require.NoError(t, err)
	prompts := out.(*thinking.PromptSet)
	require.Equal(t, thinking.DepthModerate, prompts.DesiredDepth)
	require.Equal(t, "balanced", prompts.Style)
	roundTrip(t, prompts)

	_, out, err = s.handleCreateReflectionLoop(ctx, nil, CreateReflectionLoopArgs{InitialThought: "a thought"})
	require.NoError(t, err)
	loop := out.(*thinking.ReflectionLoop)
	require.Equal(t, thinking.DepthDeep, loop.TargetDepth)
	require.Len(t, loop.Iterations, 3)

	_, out, err = s.handleGenerateThoughtExperiments(ctx, nil, GenerateThoughtExperimentsArgs{Concept: "gc"})
	require.NoError(t, err)
	experiments := out.(ThoughtExperimentsResult)
	require.Len(t, experiments.Experiments, 3)
	roundTrip(t, experiments)

	_, out, err = s.handleEvaluateThinkingDepth(ctx, nil, EvaluateThinkingDepthArgs{
		MaxDepthReached: 4,
		ThinkingMinutes: 5,
		Insights:        StringList{"one", "two", "three"},
	})
	require.NoError(t, err)
	metrics := out.(*thinking.Metrics)
	require.Equal(t, 70, metrics.DepthScore)
	roundTrip(t, metrics)
}

func TestThinkingToolValidation(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, out, err := s.handleInitiateDeepThinking(ctx, nil, InitiateDeepThinkingArgs{Topic: " "})
	require.NoError(t, err)
	require.Equal(t, "failed", out.(ErrorPayload).Status)

	_, out, err = s.handleThinkingDepthLadder(ctx, nil, ThinkingDepthLadderArgs{Question: ""})
	require.NoError(t, err)
	require.Equal(t, "failed", out.(ErrorPayload).Status)
}

func TestThinkingToolsTrimInput(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, out, err := s.handleInitiateDeepThinking(ctx, nil, InitiateDeepThinkingArgs{Topic: "  the cache design  "})
	require.NoError(t, err)
	require.Equal(t, "the cache design", out.(*thinking.PromptSet).Topic)

	_, out, err = s.handleGenerateThoughtExperiments(ctx, nil, GenerateThoughtExperimentsArgs{Concept: " gc "})
	require.NoError(t, err)
	experiments := out.(ThoughtExperimentsResult)
	require.Equal(t, "gc", experiments.Concept)
	for _, exp := range experiments.Experiments {
		require.Equal(t, "gc", exp.Concept)
	}

	_, out, err = s.handleGenerateContemplation(ctx, nil, GenerateContemplationArgs{Topic: " recursion "})
	require.NoError(t, err)
	require.Equal(t, "recursion", out.(*thinking.Contemplation).Topic)
}
