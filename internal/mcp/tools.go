package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mwhitmore/cbt-agent-mcp/internal/domain/cbt"
	"github.com/mwhitmore/cbt-agent-mcp/internal/domain/session"
)

// registerTools adds the session and CBT intervention tools.
func (s *Server) registerTools() {
	sdkmcp.AddTool(s.server, &sdkmcp.Tool{
		Name: "start_session",
		Description: "Start or resume a tracked helper session. Records the primary issue and moves the session to in_progress. " +
			"Pass the returned session_id to other tools so interventions and frustration levels accumulate in one place.",
	}, s.handleStartSession)

	sdkmcp.AddTool(s.server, &sdkmcp.Tool{
		Name:        "get_session_summary",
		Description: "Summarize a tracked session: state, primary issue, duration, interventions tried, progress count, average frustration, and frustration trend.",
	}, s.handleGetSessionSummary)

	sdkmcp.AddTool(s.server, &sdkmcp.Tool{
		Name:        "cleanup_sessions",
		Description: "Delete sessions that have not been touched within max_age_hours (default 24). Returns how many were deleted. There is no automatic cleanup; call this explicitly.",
	}, s.handleCleanupSessions)

	sdkmcp.AddTool(s.server, &sdkmcp.Tool{
		Name: "analyze_stuck_pattern",
		Description: "Analyze why an agent is stuck and get a CBT-based intervention: a matched strategy, guided questions, " +
			"specific suggestions, a reframed perspective, and concrete next actions.",
	}, s.handleAnalyzeStuckPattern)

	sdkmcp.AddTool(s.server, &sdkmcp.Tool{
		Name:        "reframe_thought",
		Description: "Reframe a negative or catastrophic thought. Returns evidence-based, best-friend, probability, and growth-mindset reframes plus a balanced thought.",
	}, s.handleReframeThought)

	sdkmcp.AddTool(s.server, &sdkmcp.Tool{
		Name:        "create_action_plan",
		Description: "Create a structured micro-action plan to break analysis paralysis. Under time pressure the plan is cut to its first three steps.",
	}, s.handleCreateActionPlan)

	sdkmcp.AddTool(s.server, &sdkmcp.Tool{
		Name: "regulate_frustration",
		Description: "Acknowledge a frustration level (1-10) and get grounding exercises, perspective shifts, and coping statements. " +
			"With a session_id, escalating frustration is detected across calls.",
	}, s.handleRegulateFrustration)

	sdkmcp.AddTool(s.server, &sdkmcp.Tool{
		Name:        "wellness_check",
		Description: "Quick cognitive-state check from time on task and whether progress was made. Returns status, cognitive load, and recommendations.",
	}, s.handleWellnessCheck)
}

// touchSession appends the tool name to the session's intervention log when
// a session_id accompanies the call, creating the session if needed.
func (s *Server) touchSession(sessionID, tool string) *session.Record {
	if sessionID == "" {
		return nil
	}
	rec := s.registry.GetOrCreate(sessionID)
	s.registry.AddIntervention(rec, tool)
	return rec
}

type StartSessionArgs struct {
	SessionID      string `json:"session_id,omitempty" jsonschema:"Session identifier to create or resume. Omit to have one generated."`
	InitialProblem string `json:"initial_problem" jsonschema:"Short description of the problem the agent is facing."`
}

type StartSessionResult struct {
	SessionID    string        `json:"session_id"`
	State        session.State `json:"state"`
	PrimaryIssue string        `json:"primary_issue"`
	StartTime    time.Time     `json:"start_time"`
	Message      string        `json:"message"`
}

func (s *Server) handleStartSession(ctx context.Context, req *sdkmcp.CallToolRequest, args StartSessionArgs) (*sdkmcp.CallToolResult, any, error) {
	problem, err := cbt.ValidateNonEmpty(args.InitialProblem, "initial_problem")
	if err != nil {
		return nil, failure(err), nil
	}

	id := args.SessionID
	if id == "" {
		id = uuid.NewString()
	}

	rec := s.registry.GetOrCreate(id)
	s.registry.SetPrimaryIssue(rec, problem)
	s.registry.SetState(rec, session.StateInProgress)
	s.logger.Info("session started", "session_id", id)

	snap := s.registry.Snapshot(rec)
	return nil, StartSessionResult{
		SessionID:    snap.ID,
		State:        snap.State,
		PrimaryIssue: snap.PrimaryIssue,
		StartTime:    snap.StartedAt,
		Message:      "Session active. Pass this session_id to other tools to track interventions and frustration.",
	}, nil
}

type GetSessionSummaryArgs struct {
	SessionID string `json:"session_id" jsonschema:"Identifier of the session to summarize."`
}

func (s *Server) handleGetSessionSummary(ctx context.Context, req *sdkmcp.CallToolRequest, args GetSessionSummaryArgs) (*sdkmcp.CallToolResult, any, error) {
	id, err := cbt.ValidateNonEmpty(args.SessionID, "session_id")
	if err != nil {
		return nil, failure(err), nil
	}

	summary, err := s.registry.Summarize(id)
	if err != nil {
		return nil, failure(err), nil
	}
	return nil, summary, nil
}

type CleanupSessionsArgs struct {
	MaxAgeHours *float64 `json:"max_age_hours,omitempty" jsonschema:"Delete sessions idle for at least this many hours. Defaults to 24. Zero deletes every session; negative values are rejected."`
}

type CleanupSessionsResult struct {
	SessionsDeleted   int     `json:"sessions_deleted"`
	SessionsRemaining int     `json:"sessions_remaining"`
	MaxAgeHours       float64 `json:"max_age_hours"`
}

func (s *Server) handleCleanupSessions(ctx context.Context, req *sdkmcp.CallToolRequest, args CleanupSessionsArgs) (*sdkmcp.CallToolResult, any, error) {
	maxAge := s.sweepMaxAge
	if args.MaxAgeHours != nil {
		if *args.MaxAgeHours < 0 {
			return nil, failure(fmt.Errorf("max_age_hours must not be negative, got %g", *args.MaxAgeHours)), nil
		}
		maxAge = time.Duration(*args.MaxAgeHours * float64(time.Hour))
	}

	deleted := s.registry.Sweep(ctx, maxAge)
	s.logger.Info("sessions swept", "deleted", deleted, "max_age", maxAge)

	return nil, CleanupSessionsResult{
		SessionsDeleted:   deleted,
		SessionsRemaining: s.registry.Len(),
		MaxAgeHours:       maxAge.Hours(),
	}, nil
}

type AnalyzeStuckPatternArgs struct {
	CurrentSituation   string     `json:"current_situation" jsonschema:"What the agent is trying to do."`
	StuckPattern       string     `json:"stuck_pattern" jsonschema:"How the agent is stuck (error loop, indecision, overwhelm, etc.)."`
	AttemptedSolutions StringList `json:"attempted_solutions,omitempty" jsonschema:"What the agent has already tried."`
	ErrorMessages      StringList `json:"error_messages,omitempty" jsonschema:"Any error messages encountered."`
	SessionID          string     `json:"session_id,omitempty" jsonschema:"Tracked session to log this intervention against."`
}

func (s *Server) handleAnalyzeStuckPattern(ctx context.Context, req *sdkmcp.CallToolRequest, args AnalyzeStuckPatternArgs) (*sdkmcp.CallToolResult, any, error) {
	out, err := s.cbt.AnalyzeStuckPattern(args.CurrentSituation, args.StuckPattern, args.AttemptedSolutions, args.ErrorMessages)
	if err != nil {
		return nil, failure(err), nil
	}
	s.touchSession(args.SessionID, "analyze_stuck_pattern")
	return nil, out, nil
}

type ReframeThoughtArgs struct {
	NegativeThought string `json:"negative_thought" jsonschema:"The negative thought to reframe."`
	Context         string `json:"context,omitempty" jsonschema:"Context about the situation."`
	SessionID       string `json:"session_id,omitempty" jsonschema:"Tracked session to log this intervention against."`
}

func (s *Server) handleReframeThought(ctx context.Context, req *sdkmcp.CallToolRequest, args ReframeThoughtArgs) (*sdkmcp.CallToolResult, any, error) {
	out, err := s.cbt.ReframeThought(args.NegativeThought, args.Context)
	if err != nil {
		return nil, failure(err), nil
	}
	s.touchSession(args.SessionID, "reframe_thought")
	return nil, out, nil
}

type CreateActionPlanArgs struct {
	Goal         string     `json:"goal" jsonschema:"What the agent is trying to achieve."`
	Obstacles    StringList `json:"obstacles,omitempty" jsonschema:"Perceived obstacles or challenges."`
	TimePressure bool       `json:"time_pressure,omitempty" jsonschema:"Whether there is time pressure."`
	SessionID    string     `json:"session_id,omitempty" jsonschema:"Tracked session to log this intervention against."`
}

func (s *Server) handleCreateActionPlan(ctx context.Context, req *sdkmcp.CallToolRequest, args CreateActionPlanArgs) (*sdkmcp.CallToolResult, any, error) {
	out, err := s.cbt.CreateActionPlan(args.Goal, args.Obstacles, args.TimePressure)
	if err != nil {
		return nil, failure(err), nil
	}
	s.touchSession(args.SessionID, "create_action_plan")
	return nil, out, nil
}

type RegulateFrustrationArgs struct {
	FrustrationLevel int    `json:"frustration_level" jsonschema:"Frustration level from 1 to 10."`
	Trigger          string `json:"trigger" jsonschema:"What triggered the frustration."`
	SessionID        string `json:"session_id,omitempty" jsonschema:"Tracked session; frustration history accumulates here."`
}

func (s *Server) handleRegulateFrustration(ctx context.Context, req *sdkmcp.CallToolRequest, args RegulateFrustrationArgs) (*sdkmcp.CallToolResult, any, error) {
	out, err := s.cbt.RegulateFrustration(args.FrustrationLevel, args.Trigger)
	if err != nil {
		return nil, failure(err), nil
	}

	if rec := s.touchSession(args.SessionID, "regulate_frustration"); rec != nil {
		s.registry.AddFrustration(rec, args.FrustrationLevel)
		if s.registry.Trend(rec) == session.TrendEscalating {
			out.RecommendedAction = "analyze_stuck_pattern"
			if args.FrustrationLevel > 7 {
				s.registry.SetState(rec, session.StateEscalated)
				s.logger.Warn("session escalated", "session_id", args.SessionID, "level", args.FrustrationLevel)
			}
		}
	}

	return nil, out, nil
}

type WellnessCheckArgs struct {
	CurrentTask  string   `json:"current_task" jsonschema:"What the agent is currently working on."`
	TimeOnTask   FlexInt  `json:"time_on_task,omitempty" jsonschema:"Minutes spent on the current task."`
	ProgressMade FlexBool `json:"progress_made,omitempty" jsonschema:"Whether any progress has been made."`
	SessionID    string   `json:"session_id,omitempty" jsonschema:"Tracked session to log this check against."`
}

func (s *Server) handleWellnessCheck(ctx context.Context, req *sdkmcp.CallToolRequest, args WellnessCheckArgs) (*sdkmcp.CallToolResult, any, error) {
	out, err := s.cbt.WellnessCheck(args.CurrentTask, int(args.TimeOnTask), bool(args.ProgressMade))
	if err != nil {
		return nil, failure(err), nil
	}

	if rec := s.touchSession(args.SessionID, "wellness_check"); rec != nil && bool(args.ProgressMade) {
		s.registry.AddProgress(rec, "progress reported: "+strings.TrimSpace(args.CurrentTask))
	}

	return nil, out, nil
}
