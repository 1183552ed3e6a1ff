package thinking

// Depth labels how thoroughly a topic has been explored.
type Depth string

const (
	DepthSurface  Depth = "surface"
	DepthShallow  Depth = "shallow"
	DepthModerate Depth = "moderate"
	DepthDeep     Depth = "deep"
	DepthProfound Depth = "profound"
)

// levelOf maps a depth label onto the 1-5 scale used for prompt gating.
// Unknown labels land on moderate.
func levelOf(d Depth) int {
	switch d {
	case DepthSurface:
		return 1
	case DepthShallow:
		return 2
	case DepthModerate:
		return 3
	case DepthDeep:
		return 4
	case DepthProfound:
		return 5
	default:
		return 3
	}
}

// PromptSet is the output of initiating a deep thinking pass.
type PromptSet struct {
	Topic        string   `json:"topic"`
	DesiredDepth Depth    `json:"desired_depth"`
	Style        string   `json:"thinking_style"`
	Prompts      []string `json:"prompts"`
	Instruction  string   `json:"instruction"`
}

// ReflectionIteration is one round of a reflection loop.
type ReflectionIteration struct {
	Round             int      `json:"round"`
	Input             string   `json:"input"`
	ReflectionPrompts []string `json:"reflection_prompts"`
	ExpansionPrompts  []string `json:"expansion_prompts"`
	IntegrationPrompt string   `json:"integration_prompt,omitempty"`
	PauseInstruction  string   `json:"pause_instruction"`
}

// ReflectionLoop is a multi-round structure for deepening a thought.
type ReflectionLoop struct {
	Type               string                `json:"type"`
	TargetDepth        Depth                 `json:"target_depth"`
	Iterations         []ReflectionIteration `json:"iterations"`
	TotalEstimatedTime string                `json:"total_estimated_time"`
	Instruction        string                `json:"instruction"`
}

// ContemplationPhase is one timed phase of a contemplation guide.
type ContemplationPhase struct {
	Name        string `json:"name"`
	Duration    string `json:"duration"`
	Prompt      string `json:"prompt"`
	Instruction string `json:"instruction"`
}

// Contemplation is a structured contemplation guide for a topic.
type Contemplation struct {
	Topic           string               `json:"topic"`
	Style           string               `json:"style"`
	TotalDuration   string               `json:"total_duration"`
	Opening         string               `json:"opening"`
	Phases          []ContemplationPhase `json:"phases"`
	Closing         string               `json:"closing"`
	MetaInstruction string               `json:"meta_instruction"`
}

// LadderRung is one level of the thinking depth ladder.
type LadderRung struct {
	Level        int      `json:"level"`
	Name         string   `json:"name"`
	Prompt       string   `json:"prompt"`
	ThinkingTime string   `json:"thinking_time"`
	DepthMarkers []string `json:"depth_markers"`
	Transition   string   `json:"transition,omitempty"`
}

// DepthLadder guides step-wise deepening on a single question.
type DepthLadder struct {
	Question             string       `json:"question"`
	Type                 string       `json:"type"`
	TotalRungs           int          `json:"total_rungs"`
	Rungs                []LadderRung `json:"rungs"`
	Instructions         []string     `json:"instructions"`
	CompletionReflection string       `json:"completion_reflection"`
}

// ThoughtExperiment is one hypothetical scenario for exploring a concept.
type ThoughtExperiment struct {
	Number          int      `json:"number"`
	Name            string   `json:"name"`
	Concept         string   `json:"concept"`
	Setup           string   `json:"setup"`
	ExplorationTime string   `json:"exploration_time"`
	Questions       []string `json:"questions"`
	Instruction     string   `json:"instruction"`
	DeeperPrompt    string   `json:"deeper_prompt"`
}

// RecursiveBranch is one level of recursive questioning.
type RecursiveBranch struct {
	Level           int      `json:"level"`
	MetaQuestion    string   `json:"meta_question"`
	ExplorationTime string   `json:"exploration_time"`
	Prompts         []string `json:"prompts"`
}

// Integration closes a recursive questioning structure.
type Integration struct {
	Prompt      string `json:"prompt"`
	Time        string `json:"time"`
	Instruction string `json:"instruction"`
}

// RecursiveQuestioning layers meta-questions over an initial question.
type RecursiveQuestioning struct {
	Type            string            `json:"type"`
	InitialQuestion string            `json:"initial_question"`
	Depth           int               `json:"depth"`
	Branches        []RecursiveBranch `json:"branches"`
	Integration     Integration       `json:"integration"`
}

// SessionStats is the caller-reported input to a depth evaluation.
type SessionStats struct {
	MaxDepthReached        int
	ThinkingMinutes        float64
	Insights               []string
	QuestionsExplored      []string
	AssumptionsChallenged  []string
	PerspectivesConsidered []string
}

// Metrics scores a thinking session on several 0-100 axes.
type Metrics struct {
	DepthScore           int     `json:"depth_score"`
	BreadthScore         int     `json:"breadth_score"`
	IntegrationScore     int     `json:"integration_score"`
	InsightDensity       float64 `json:"insight_density"`
	QuestionQuality      int     `json:"question_quality"`
	AssumptionAwareness  int     `json:"assumption_awareness"`
	PerspectiveDiversity int     `json:"perspective_diversity"`
	OverallRating        Depth   `json:"overall_rating"`
}
