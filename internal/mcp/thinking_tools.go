package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mwhitmore/cbt-agent-mcp/internal/domain/cbt"
	"github.com/mwhitmore/cbt-agent-mcp/internal/domain/thinking"
)

// registerThinkingTools adds the deep thinking scaffolding tools.
func (s *Server) registerThinkingTools() {
	sdkmcp.AddTool(s.server, &sdkmcp.Tool{
		Name: "initiate_deep_thinking",
		Description: "Get a prompt set for thinking deeply about a topic: a contemplation opener, depth-matched Socratic questions, " +
			"a metacognitive check, and an expansion technique. Work through every prompt before concluding.",
	}, s.handleInitiateDeepThinking)

	sdkmcp.AddTool(s.server, &sdkmcp.Tool{
		Name:        "create_reflection_loop",
		Description: "Build a multi-round reflection structure for a thought. Each round deepens the previous; the final round integrates.",
	}, s.handleCreateReflectionLoop)

	sdkmcp.AddTool(s.server, &sdkmcp.Tool{
		Name:        "generate_contemplation",
		Description: "Generate a phased contemplation guide for a topic in philosophical, analytical, or creative style.",
	}, s.handleGenerateContemplation)

	sdkmcp.AddTool(s.server, &sdkmcp.Tool{
		Name:        "thinking_depth_ladder",
		Description: "Build a ladder of up to 7 increasingly deep levels for one question, from surface to transcendent. Climb without skipping rungs.",
	}, s.handleThinkingDepthLadder)

	sdkmcp.AddTool(s.server, &sdkmcp.Tool{
		Name:        "generate_thought_experiments",
		Description: "Generate thought experiments (extreme scaling, time travel, alien perspective, necessity test, pure essence) to explore a concept.",
	}, s.handleGenerateThoughtExperiments)

	sdkmcp.AddTool(s.server, &sdkmcp.Tool{
		Name:        "recursive_questioning",
		Description: "Layer meta-questions over an initial question: answer, question the answer, question the questions, name the remaining mystery.",
	}, s.handleRecursiveQuestioning)

	sdkmcp.AddTool(s.server, &sdkmcp.Tool{
		Name: "evaluate_thinking_depth",
		Description: "Score a completed thinking pass on depth, breadth, integration, insight density, question quality, assumption awareness, " +
			"and perspective diversity, with an overall rating from surface to profound.",
	}, s.handleEvaluateThinkingDepth)
}

type InitiateDeepThinkingArgs struct {
	Topic         string `json:"topic" jsonschema:"The topic or thought to explore."`
	DesiredDepth  string `json:"desired_depth,omitempty" jsonschema:"Target depth: surface, shallow, moderate, deep, or profound. Defaults to moderate."`
	ThinkingStyle string `json:"thinking_style,omitempty" jsonschema:"Preferred thinking style label, echoed in the result. Defaults to balanced."`
}

func (s *Server) handleInitiateDeepThinking(ctx context.Context, req *sdkmcp.CallToolRequest, args InitiateDeepThinkingArgs) (*sdkmcp.CallToolResult, any, error) {
	topic, err := cbt.ValidateNonEmpty(args.Topic, "topic")
	if err != nil {
		return nil, failure(err), nil
	}

	depth := thinking.Depth(args.DesiredDepth)
	if args.DesiredDepth == "" {
		depth = thinking.DepthModerate
	}
	style := args.ThinkingStyle
	if style == "" {
		style = "balanced"
	}

	return nil, s.thinking.Prompts(topic, depth, style), nil
}

type CreateReflectionLoopArgs struct {
	InitialThought string `json:"initial_thought" jsonschema:"The thought to reflect on."`
	TargetDepth    string `json:"target_depth,omitempty" jsonschema:"Target depth: surface, shallow, moderate, deep, or profound. Defaults to deep."`
	MinIterations  int    `json:"min_iterations,omitempty" jsonschema:"Minimum number of reflection rounds. Defaults to 3."`
}

func (s *Server) handleCreateReflectionLoop(ctx context.Context, req *sdkmcp.CallToolRequest, args CreateReflectionLoopArgs) (*sdkmcp.CallToolResult, any, error) {
	thought, err := cbt.ValidateNonEmpty(args.InitialThought, "initial_thought")
	if err != nil {
		return nil, failure(err), nil
	}

	depth := thinking.Depth(args.TargetDepth)
	if args.TargetDepth == "" {
		depth = thinking.DepthDeep
	}

	return nil, s.thinking.ReflectionLoop(thought, depth, args.MinIterations), nil
}

type GenerateContemplationArgs struct {
	Topic string `json:"topic" jsonschema:"The topic to contemplate."`
	Style string `json:"style,omitempty" jsonschema:"Contemplation style: philosophical, analytical, or creative. Defaults to philosophical."`
}

func (s *Server) handleGenerateContemplation(ctx context.Context, req *sdkmcp.CallToolRequest, args GenerateContemplationArgs) (*sdkmcp.CallToolResult, any, error) {
	topic, err := cbt.ValidateNonEmpty(args.Topic, "topic")
	if err != nil {
		return nil, failure(err), nil
	}

	style := args.Style
	if style == "" {
		style = "philosophical"
	}

	return nil, s.thinking.Contemplation(topic, style), nil
}

type ThinkingDepthLadderArgs struct {
	Question string `json:"question" jsonschema:"The question to explore at increasing depth."`
	MaxRungs int    `json:"max_rungs,omitempty" jsonschema:"Number of ladder rungs, 1 to 7. Defaults to 7."`
}

func (s *Server) handleThinkingDepthLadder(ctx context.Context, req *sdkmcp.CallToolRequest, args ThinkingDepthLadderArgs) (*sdkmcp.CallToolResult, any, error) {
	question, err := cbt.ValidateNonEmpty(args.Question, "question")
	if err != nil {
		return nil, failure(err), nil
	}
	return nil, s.thinking.DepthLadder(question, args.MaxRungs), nil
}

type GenerateThoughtExperimentsArgs struct {
	Concept        string `json:"concept" jsonschema:"The concept to explore through thought experiments."`
	NumExperiments int    `json:"num_experiments,omitempty" jsonschema:"How many experiments to generate, up to 5. Defaults to 3."`
}

type ThoughtExperimentsResult struct {
	Concept     string                       `json:"concept"`
	Experiments []thinking.ThoughtExperiment `json:"experiments"`
}

func (s *Server) handleGenerateThoughtExperiments(ctx context.Context, req *sdkmcp.CallToolRequest, args GenerateThoughtExperimentsArgs) (*sdkmcp.CallToolResult, any, error) {
	concept, err := cbt.ValidateNonEmpty(args.Concept, "concept")
	if err != nil {
		return nil, failure(err), nil
	}

	n := args.NumExperiments
	if n <= 0 {
		n = 3
	}

	return nil, ThoughtExperimentsResult{
		Concept:     concept,
		Experiments: s.thinking.ThoughtExperiments(concept, n),
	}, nil
}

type RecursiveQuestioningArgs struct {
	InitialQuestion string `json:"initial_question" jsonschema:"The question to recurse on."`
	RecursionDepth  int    `json:"recursion_depth,omitempty" jsonschema:"How many questioning levels to generate. Defaults to 4."`
}

func (s *Server) handleRecursiveQuestioning(ctx context.Context, req *sdkmcp.CallToolRequest, args RecursiveQuestioningArgs) (*sdkmcp.CallToolResult, any, error) {
	question, err := cbt.ValidateNonEmpty(args.InitialQuestion, "initial_question")
	if err != nil {
		return nil, failure(err), nil
	}
	return nil, s.thinking.RecursiveQuestioning(question, args.RecursionDepth), nil
}

type EvaluateThinkingDepthArgs struct {
	MaxDepthReached        int        `json:"max_depth_reached" jsonschema:"Deepest level reached during the thinking pass."`
	ThinkingMinutes        float64    `json:"thinking_minutes" jsonschema:"Minutes spent thinking."`
	Insights               StringList `json:"insights,omitempty" jsonschema:"Insights generated."`
	QuestionsExplored      StringList `json:"questions_explored,omitempty" jsonschema:"Questions explored along the way."`
	AssumptionsChallenged  StringList `json:"assumptions_challenged,omitempty" jsonschema:"Assumptions that were challenged."`
	PerspectivesConsidered StringList `json:"perspectives_considered,omitempty" jsonschema:"Distinct perspectives considered."`
}

func (s *Server) handleEvaluateThinkingDepth(ctx context.Context, req *sdkmcp.CallToolRequest, args EvaluateThinkingDepthArgs) (*sdkmcp.CallToolResult, any, error) {
	return nil, s.thinking.Metrics(thinking.SessionStats{
		MaxDepthReached:        args.MaxDepthReached,
		ThinkingMinutes:        args.ThinkingMinutes,
		Insights:               args.Insights,
		QuestionsExplored:      args.QuestionsExplored,
		AssumptionsChallenged:  args.AssumptionsChallenged,
		PerspectivesConsidered: args.PerspectivesConsidered,
	}), nil
}
