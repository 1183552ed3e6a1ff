package cbt

// Strategy is one pre-authored CBT technique with its guiding prompts.
type Strategy struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Prompts     []string `json:"prompts"`
}

// Strategy keys used by the selector.
const (
	StrategyCognitiveReframing   = "cognitive_reframing"
	StrategyThoughtChallenging   = "thought_challenging"
	StrategyProblemSolving       = "problem_solving"
	StrategyBehavioralActivation = "behavioral_activation"
	StrategyMindfulness          = "mindfulness"
	StrategySocraticQuestioning  = "socratic_questioning"
	StrategyCostBenefitAnalysis  = "cost_benefit_analysis"
	StrategyGradedExposure       = "graded_exposure"
	StrategyAcceptanceCommitment = "acceptance_commitment"
)

// Strategies is the full technique catalog, keyed by strategy key.
var Strategies = map[string]Strategy{
	StrategyCognitiveReframing: {
		Key:         StrategyCognitiveReframing,
		Name:        "Cognitive Reframing",
		Description: "Challenge negative thought patterns and find alternative perspectives",
		Prompts: []string{
			"What evidence supports or contradicts this thought?",
			"Is there another way to look at this situation?",
			"What would you tell another agent in this situation?",
			"Are you catastrophizing or making assumptions?",
		},
	},
	StrategyThoughtChallenging: {
		Key:         StrategyThoughtChallenging,
		Name:        "Thought Challenging",
		Description: "Question automatic negative thoughts and cognitive distortions",
		Prompts: []string{
			"Is this thought based on facts or feelings?",
			"Am I using all-or-nothing thinking?",
			"What's the worst that could realistically happen?",
			"What's the most likely outcome?",
		},
	},
	StrategyProblemSolving: {
		Key:         StrategyProblemSolving,
		Name:        "Problem Solving",
		Description: "Break down problems into manageable steps",
		Prompts: []string{
			"What exactly is the problem?",
			"What are possible solutions?",
			"What are the pros and cons of each solution?",
			"What's the smallest step you can take right now?",
		},
	},
	StrategyBehavioralActivation: {
		Key:         StrategyBehavioralActivation,
		Name:        "Behavioral Activation",
		Description: "Encourage action to break paralysis",
		Prompts: []string{
			"What's one small action you can take?",
			"What has worked in similar situations before?",
			"Can you break this into smaller tasks?",
			"What would success look like?",
		},
	},
	StrategyMindfulness: {
		Key:         StrategyMindfulness,
		Name:        "Mindfulness",
		Description: "Focus on the present moment and observable facts",
		Prompts: []string{
			"What are the facts of the current situation?",
			"What can you control right now?",
			"Are you focused on past failures or future worries?",
			"What information do you have available?",
		},
	},
	StrategySocraticQuestioning: {
		Key:         StrategySocraticQuestioning,
		Name:        "Socratic Questioning",
		Description: "Examine beliefs through systematic questioning",
		Prompts: []string{
			"How do you know this to be true?",
			"What assumptions are you making?",
			"What would change your mind about this?",
			"Is this always the case, or only sometimes?",
		},
	},
	StrategyCostBenefitAnalysis: {
		Key:         StrategyCostBenefitAnalysis,
		Name:        "Cost-Benefit Analysis",
		Description: "Weigh the costs and benefits of continuing versus changing course",
		Prompts: []string{
			"What does this approach cost you in time and effort?",
			"What benefit has it delivered so far?",
			"What would switching approaches cost?",
			"Which option has the better expected payoff?",
		},
	},
	StrategyGradedExposure: {
		Key:         StrategyGradedExposure,
		Name:        "Graded Exposure",
		Description: "Approach an avoided task in small, increasing steps",
		Prompts: []string{
			"What's the smallest version of this task you could attempt?",
			"What slightly harder step would follow?",
			"What did you learn from the last small step?",
			"How does the task feel now compared to before you started?",
		},
	},
	StrategyAcceptanceCommitment: {
		Key:         StrategyAcceptanceCommitment,
		Name:        "Acceptance and Commitment",
		Description: "Accept what cannot be changed and act on what can",
		Prompts: []string{
			"What parts of this situation are outside your control?",
			"Can you proceed even while uncertainty remains?",
			"What action aligns with the overall goal right now?",
			"What would committed action look like in the next five minutes?",
		},
	},
}

// AgentStateInfo describes a recognized agent state with its signs and interventions.
type AgentStateInfo struct {
	State         string   `json:"state"`
	Description   string   `json:"description"`
	Signs         []string `json:"signs"`
	Interventions []string `json:"interventions"`
}

// AgentStates catalogs the states agents commonly present with.
var AgentStates = []AgentStateInfo{
	{
		State:         "stuck",
		Description:   "Unable to proceed with task",
		Signs:         []string{"Repeating same action", "No progress for extended time", "Circular reasoning"},
		Interventions: []string{"Break problem into smallest parts", "Try opposite approach", "Seek different perspective"},
	},
	{
		State:         "overwhelmed",
		Description:   "Too many options or complexity",
		Signs:         []string{"Trying to do everything at once", "Unable to prioritize", "Information overload"},
		Interventions: []string{"List top 3 priorities", "Focus on one thing", "Take systematic break"},
	},
	{
		State:         "confused",
		Description:   "Unclear about requirements or next steps",
		Signs:         []string{"Contradictory actions", "Asking same questions repeatedly", "Misunderstanding requirements"},
		Interventions: []string{"Clarify requirements", "List what you know", "Ask specific questions"},
	},
	{
		State:         "error_loop",
		Description:   "Repeatedly encountering the same error",
		Signs:         []string{"Same error repeatedly", "Not learning from failures", "Trying same solution"},
		Interventions: []string{"Analyze error pattern", "Try minimal test case", "Check assumptions"},
	},
	{
		State:         "indecisive",
		Description:   "Unable to choose between options",
		Signs:         []string{"Endless analysis", "Switching between options", "Unable to commit"},
		Interventions: []string{"Set time limit", "Choose 'good enough'", "List pros/cons quickly"},
	},
	{
		State:         "catastrophizing",
		Description:   "Overestimating negative consequences",
		Signs:         []string{"Worst-case focus", "Paralyzing fear of failure", "Overestimating risks"},
		Interventions: []string{"List realistic outcomes", "Focus on present facts", "Consider best case too"},
	},
	{
		State:         "blocked",
		Description:   "Unable to make any progress due to external constraints",
		Signs:         []string{"Waiting on missing inputs", "Permissions or access failures", "Dependencies unavailable"},
		Interventions: []string{"Name the blocking constraint explicitly", "Work a parallel task", "Escalate with a specific request"},
	},
	{
		State:         "looping",
		Description:   "Repeating the same actions without different results",
		Signs:         []string{"Identical retries", "Same output every attempt", "No new information gathered"},
		Interventions: []string{"Change exactly one variable", "Log what differs between attempts", "Stop and restate the goal"},
	},
	{
		State:         "fragmented",
		Description:   "Jumping between tasks without completing any",
		Signs:         []string{"Many started, none finished", "Context switching every few minutes", "Losing track of prior steps"},
		Interventions: []string{"Pick one task and finish it", "Write down the task queue", "Close out half-done work first"},
	},
	{
		State:         "perfectionist",
		Description:   "Unable to proceed due to unrealistic standards",
		Signs:         []string{"Endless polishing", "Working code rewritten repeatedly", "Fear of shipping"},
		Interventions: []string{"Define 'good enough' upfront", "Ship then iterate", "Time-box the refinement"},
	},
	{
		State:         "analysis_paralysis",
		Description:   "Over-analyzing without taking action",
		Signs:         []string{"Research without output", "Growing list of considerations", "No decision after extended deliberation"},
		Interventions: []string{"Set a decision deadline", "Act on best current information", "Make the choice reversible"},
	},
}

// CognitiveDistortion names a common distortion with an agent-flavored example.
type CognitiveDistortion struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	AgentExample string `json:"agent_example"`
}

// CognitiveDistortions lists the distortions the techniques guide covers.
var CognitiveDistortions = []CognitiveDistortion{
	{
		Name:         "All-or-Nothing Thinking",
		Description:  "Seeing things in black and white",
		AgentExample: "This solution must be perfect or it's worthless",
	},
	{
		Name:         "Catastrophizing",
		Description:  "Expecting the worst possible outcome",
		AgentExample: "If this fails, the entire system will break",
	},
	{
		Name:         "Mind Reading",
		Description:  "Assuming what users want without evidence",
		AgentExample: "The user definitely wants feature X",
	},
	{
		Name:         "Fortune Telling",
		Description:  "Predicting negative outcomes without evidence",
		AgentExample: "This approach will never work",
	},
	{
		Name:         "Personalization",
		Description:  "Taking responsibility for things outside control",
		AgentExample: "The API failure is my fault",
	},
}

// QuickInterventions are short resets applicable to any state.
var QuickInterventions = []string{
	"Pause and breathe (cognitive reset)",
	"State three known facts",
	"Identify one small win",
	"Question your assumptions",
	"Consider alternative perspectives",
}
