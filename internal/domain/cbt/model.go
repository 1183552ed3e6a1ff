package cbt

// Intervention is the output of a stuck-pattern analysis.
type Intervention struct {
	IdentifiedPattern   string   `json:"identified_pattern"`
	StrategyApplied     string   `json:"strategy_applied"`
	GuidedQuestions     []string `json:"guided_questions"`
	SpecificSuggestions []string `json:"specific_suggestions"`
	ReframedPerspective string   `json:"reframed_perspective"`
	NextActions         []string `json:"next_actions"`
}

// Reframe is one alternative framing of a negative thought.
type Reframe struct {
	Type    string `json:"type"`
	Reframe string `json:"reframe"`
}

// ReframeResult bundles several reframes with a balanced closing thought.
type ReframeResult struct {
	OriginalThought string    `json:"original_thought"`
	Context         string    `json:"context"`
	Reframes        []Reframe `json:"reframes"`
	BalancedThought string    `json:"balanced_thought"`
}

// ActionStep is one timed micro-action in a plan.
type ActionStep struct {
	Step     int    `json:"step"`
	Action   string `json:"action"`
	Duration string `json:"duration"`
	Purpose  string `json:"purpose"`
}

// ActionPlan is a structured plan to break analysis paralysis.
type ActionPlan struct {
	Goal             string       `json:"goal"`
	MindsetShift     string       `json:"mindset_shift"`
	ImmediateActions []ActionStep `json:"immediate_actions"`
	BackupStrategies []string     `json:"backup_strategies"`
	SuccessCriteria  string       `json:"success_criteria"`
}

// FrustrationResponse acknowledges frustration and offers coping material.
// RecommendedAction is set only when a session's frustration trend is
// escalating.
type FrustrationResponse struct {
	Validation         string   `json:"validation"`
	GroundingExercises []string `json:"grounding_exercises"`
	PerspectiveShifts  []string `json:"perspective_shifts"`
	CopingStatements   []string `json:"coping_statements"`
	RecommendedAction  string   `json:"recommended_action,omitempty"`
}

// WellnessAssessment reports on an agent's cognitive state.
type WellnessAssessment struct {
	Status                string   `json:"status"`
	Recommendations       []string `json:"recommendations"`
	CognitiveLoad         string   `json:"cognitive_load"`
	SuggestedIntervention string   `json:"suggested_intervention,omitempty"`
}

// TechniqueEntry is one technique in the reference guide resource.
type TechniqueEntry struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	WhenToUse      string   `json:"when_to_use"`
	ExamplePrompts []string `json:"example_prompts"`
}

// TechniquesGuide is the cbt://techniques/guide resource payload.
type TechniquesGuide struct {
	Techniques           []TechniqueEntry      `json:"techniques"`
	CognitiveDistortions []CognitiveDistortion `json:"cognitive_distortions"`
	QuickInterventions   []string              `json:"quick_interventions"`
}

// StatePatterns is the cbt://patterns/agent-state resource payload.
type StatePatterns struct {
	States []AgentStateInfo `json:"states"`
}
