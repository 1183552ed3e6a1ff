package mcp

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mwhitmore/cbt-agent-mcp/internal/domain/cbt"
	"github.com/mwhitmore/cbt-agent-mcp/internal/domain/session"
	"github.com/mwhitmore/cbt-agent-mcp/internal/domain/thinking"
)

const serverInstructions = `cbt-agent-helper provides CBT-style recovery tools for AI agents that are stuck, frustrated, or overwhelmed.

How to use it:
- Feeling stuck or looping? Call analyze_stuck_pattern with a short description of the situation and how you are stuck. It selects a technique and returns guided questions plus concrete next actions.
- Catastrophic or absolute thoughts ("this will never work")? Call reframe_thought.
- Paralyzed by options? Call create_action_plan for a timed micro-action sequence.
- Frustrated? Call regulate_frustration with a 1-10 level. Track it across calls by passing session_id.
- Periodically call wellness_check with minutes-on-task and whether progress happened.

Sessions are optional but recommended: call start_session once, then pass the same session_id to other tools. The server tracks interventions tried, progress, and frustration trend; get_session_summary reports them. Sessions live in memory only and are removed by cleanup_sessions.

For deeper reasoning rather than recovery, use the thinking tools: initiate_deep_thinking, create_reflection_loop, generate_contemplation, thinking_depth_ladder, generate_thought_experiments, recursive_questioning, and evaluate_thinking_depth to score a completed pass.

Reference resources:
- cbt://techniques/guide (techniques, cognitive distortions, quick interventions)
- cbt://patterns/agent-state (recognizable agent states with signs and interventions)
`

// Config contains server configuration.
type Config struct {
	Name        string
	Version     string
	SweepMaxAge time.Duration
	Registry    *session.Registry
	CBT         *cbt.Service
	Thinking    *thinking.Service
	Logger      *slog.Logger
}

// Server wraps the MCP server with the domain services.
type Server struct {
	server      *sdkmcp.Server
	registry    *session.Registry
	cbt         *cbt.Service
	thinking    *thinking.Service
	logger      *slog.Logger
	sweepMaxAge time.Duration
}

// NewServer creates and configures an MCP server with all tools, resources,
// prompts, and middleware.
func NewServer(cfg Config) *Server {
	srv := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	s := &Server{
		server:      srv,
		registry:    cfg.Registry,
		cbt:         cfg.CBT,
		thinking:    cfg.Thinking,
		logger:      cfg.Logger,
		sweepMaxAge: cfg.SweepMaxAge,
	}

	srv.AddReceivingMiddleware(recoveryMiddleware(cfg.Logger))
	srv.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	srv.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	s.registerTools()
	s.registerThinkingTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// Run serves MCP over stdio until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &sdkmcp.StdioTransport{})
}

// HTTPHandler returns a streamable HTTP handler for the server.
func (s *Server) HTTPHandler() http.Handler {
	return sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return s.server
	}, nil)
}
