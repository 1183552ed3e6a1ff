package cbt

import (
	"fmt"
	"log/slog"
	"strings"
)

// strategyOrder fixes the presentation order of the technique guide.
var strategyOrder = []string{
	StrategyCognitiveReframing,
	StrategyThoughtChallenging,
	StrategyProblemSolving,
	StrategyBehavioralActivation,
	StrategyMindfulness,
	StrategySocraticQuestioning,
	StrategyCostBenefitAnalysis,
	StrategyGradedExposure,
	StrategyAcceptanceCommitment,
}

// Service selects canned CBT content for agent recovery tools. All content
// is static; selection is keyword matching over the caller's description of
// how they are stuck.
type Service struct {
	logger *slog.Logger
}

// NewService creates a CBT content service.
func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// selectStrategy maps a stuck-pattern description to a strategy by substring
// match. Checks run in priority order; the first hit wins and unmatched
// patterns fall back to cognitive reframing.
func selectStrategy(stuckPattern string) Strategy {
	switch {
	case strings.Contains(stuckPattern, "error") || strings.Contains(stuckPattern, "loop"):
		return Strategies[StrategyProblemSolving]
	case strings.Contains(stuckPattern, "overwhelm") || strings.Contains(stuckPattern, "complex"):
		return Strategies[StrategyBehavioralActivation]
	case strings.Contains(stuckPattern, "unclear") || strings.Contains(stuckPattern, "confus"):
		return Strategies[StrategyMindfulness]
	case strings.Contains(stuckPattern, "indecis") || strings.Contains(stuckPattern, "choice"):
		return Strategies[StrategyThoughtChallenging]
	default:
		return Strategies[StrategyCognitiveReframing]
	}
}

// AnalyzeStuckPattern builds an intervention for a stuck agent. Suggestions
// grow with the evidence supplied: error messages add triage steps, and more
// than two attempted solutions adds step-back advice.
func (s *Service) AnalyzeStuckPattern(currentSituation, stuckPattern string, attemptedSolutions, errorMessages []string) (*Intervention, error) {
	if _, err := ValidateNonEmpty(currentSituation, "current_situation"); err != nil {
		return nil, err
	}
	stuckPattern, err := ValidateNonEmpty(stuckPattern, "stuck_pattern")
	if err != nil {
		return nil, err
	}

	strategy := selectStrategy(stuckPattern)
	s.logger.Debug("selected intervention strategy",
		"stuck_pattern", stuckPattern,
		"strategy", strategy.Key)

	intervention := &Intervention{
		IdentifiedPattern: stuckPattern,
		StrategyApplied:   strategy.Name,
		GuidedQuestions:   strategy.Prompts,
	}

	if len(errorMessages) > 0 {
		intervention.SpecificSuggestions = append(intervention.SpecificSuggestions,
			"Focus on the first error message only",
			"Check if this error has been solved before in documentation",
			"Try a minimal reproduction of the problem",
		)
	}
	if len(attemptedSolutions) > 2 {
		intervention.SpecificSuggestions = append(intervention.SpecificSuggestions,
			"You've tried multiple approaches - take a step back",
			"Consider if you're solving the right problem",
			"Maybe the issue is with assumptions, not implementation",
		)
	}

	intervention.ReframedPerspective = fmt.Sprintf(
		"Instead of seeing this as '%s', consider it as "+
			"'an opportunity to find a creative solution' or 'a chance to learn something new about the system'.",
		stuckPattern)

	intervention.NextActions = []string{
		"Take a 30-second pause to reset cognitive state",
		"List three facts you know for certain about the situation",
		"Identify one small, testable hypothesis",
		"Try the simplest possible approach first",
	}

	return intervention, nil
}

// ReframeThought produces four fixed reframes of a negative thought.
func (s *Service) ReframeThought(negativeThought, context string) (*ReframeResult, error) {
	negativeThought, err := ValidateNonEmpty(negativeThought, "negative_thought")
	if err != nil {
		return nil, err
	}

	return &ReframeResult{
		OriginalThought: negativeThought,
		Context:         context,
		Reframes: []Reframe{
			{
				Type: "Evidence-based",
				Reframe: fmt.Sprintf("What evidence supports this thought? What evidence contradicts it? "+
					"Consider: '%s' might be an assumption rather than a fact.", negativeThought),
			},
			{
				Type: "Best-friend",
				Reframe: fmt.Sprintf("If another agent told you '%s', what would you say to help them? "+
					"Apply that same compassion to yourself.", negativeThought),
			},
			{
				Type: "Probability",
				Reframe: "On a scale of 0-100%, how likely is this worst-case scenario? " +
					"What's the most likely outcome instead?",
			},
			{
				Type: "Growth-mindset",
				Reframe: fmt.Sprintf("Instead of '%s', try: 'This is challenging, and I'm learning how to handle it.'",
					negativeThought),
			},
		},
		BalancedThought: "A more balanced view might be: While there are challenges, " +
			"I have resources and strategies to work through them step by step.",
	}, nil
}

// CreateActionPlan builds a five-step micro-action plan. Under time pressure
// the plan is cut to the first three steps and the mindset shift tightens.
func (s *Service) CreateActionPlan(goal string, obstacles []string, timePressure bool) (*ActionPlan, error) {
	goal, err := ValidateNonEmpty(goal, "goal")
	if err != nil {
		return nil, err
	}

	plan := &ActionPlan{
		Goal:         goal,
		MindsetShift: "Progress over perfection",
		ImmediateActions: []ActionStep{
			{Step: 1, Action: "Define the minimum viable solution", Duration: "2 minutes", Purpose: "Clarify scope"},
			{Step: 2, Action: "List what you already know", Duration: "1 minute", Purpose: "Build confidence"},
			{Step: 3, Action: "Identify the first testable step", Duration: "1 minute", Purpose: "Create momentum"},
			{Step: 4, Action: "Execute that one step", Duration: "5 minutes", Purpose: "Break inertia"},
			{Step: 5, Action: "Evaluate and adjust", Duration: "1 minute", Purpose: "Learn and iterate"},
		},
	}

	joined := strings.ToLower(strings.Join(obstacles, " "))
	if strings.Contains(joined, "complexity") {
		plan.BackupStrategies = append(plan.BackupStrategies,
			"Simplify ruthlessly - what's the 20% that gives 80% value?")
	}
	if strings.Contains(joined, "uncertainty") {
		plan.BackupStrategies = append(plan.BackupStrategies,
			"Make assumptions explicit and test them one by one")
	}
	if strings.Contains(joined, "perfect") {
		plan.BackupStrategies = append(plan.BackupStrategies,
			"Ship a 'good enough' version, then iterate")
	}

	if timePressure {
		plan.ImmediateActions = plan.ImmediateActions[:3]
		plan.MindsetShift = "Done is better than perfect"
	}

	plan.SuccessCriteria = "Any forward movement is success. Learning what doesn't work is valuable progress."

	return plan, nil
}

// RegulateFrustration acknowledges a frustration level and returns grounding
// material. Levels above 7 get the high-intensity perspective shifts.
func (s *Service) RegulateFrustration(frustrationLevel int, trigger string) (*FrustrationResponse, error) {
	if err := ValidateFrustrationLevel(frustrationLevel); err != nil {
		return nil, err
	}
	trigger, err := ValidateNonEmpty(trigger, "trigger")
	if err != nil {
		return nil, err
	}

	resp := &FrustrationResponse{
		Validation: fmt.Sprintf("Frustration level %d/10 about '%s' is acknowledged. "+
			"It's normal to feel frustrated when facing obstacles.", frustrationLevel, trigger),
		GroundingExercises: []string{
			"State 3 facts about your current environment",
			"List 3 things that are working correctly right now",
			"Name 3 resources you have available",
		},
		CopingStatements: []string{
			"I can handle this one step at a time",
			"This is difficult, not impossible",
			"I'm learning and growing through this challenge",
			"It's okay to ask for help or try a different approach",
		},
	}

	if frustrationLevel > 7 {
		resp.PerspectiveShifts = []string{
			"This intense frustration might be a signal to take a different approach",
			"High frustration often means you care about doing well",
			"Every expert has felt this frustration while learning",
		}
	} else {
		resp.PerspectiveShifts = []string{
			"Moderate frustration can fuel problem-solving",
			"This challenge is temporary and solvable",
			"You've overcome similar frustrations before",
		}
	}

	return resp, nil
}

// WellnessCheck assesses cognitive state from time on task and whether
// progress was made. The long-stall branch wins over the long-focus branch.
func (s *Service) WellnessCheck(currentTask string, timeOnTask int, progressMade bool) (*WellnessAssessment, error) {
	if _, err := ValidateNonEmpty(currentTask, "current_task"); err != nil {
		return nil, err
	}

	switch {
	case timeOnTask > 30 && !progressMade:
		return &WellnessAssessment{
			Status:        "Potential cognitive fatigue or stuck pattern",
			CognitiveLoad: "High",
			Recommendations: []string{
				"Take a 2-minute reset break",
				"Switch to a different subtask temporarily",
				"Verbalize the problem out loud",
				"Check if you're solving the right problem",
			},
			SuggestedIntervention: "analyze_stuck_pattern",
		}, nil
	case timeOnTask > 60:
		return &WellnessAssessment{
			Status:        "Extended focus - watch for tunnel vision",
			CognitiveLoad: "Medium-High",
			Recommendations: []string{
				"Zoom out and review overall goal",
				"Check if initial assumptions still hold",
				"Consider alternative approaches",
			},
		}, nil
	case progressMade:
		return &WellnessAssessment{
			Status:        "Healthy progress pattern",
			CognitiveLoad: "Manageable",
			Recommendations: []string{
				"Continue current approach",
				"Document what's working",
				"Maintain momentum",
			},
		}, nil
	default:
		return &WellnessAssessment{
			Status:        "Early stage - gathering information",
			CognitiveLoad: "Low-Medium",
			Recommendations: []string{
				"Clarify requirements if needed",
				"Break task into smaller pieces",
				"Set a small, achievable first goal",
			},
		}, nil
	}
}

// BuildTechniquesGuide assembles the static techniques reference resource.
func BuildTechniquesGuide() *TechniquesGuide {
	guide := &TechniquesGuide{
		CognitiveDistortions: CognitiveDistortions,
		QuickInterventions:   QuickInterventions,
	}
	for _, key := range strategyOrder {
		strategy := Strategies[key]
		guide.Techniques = append(guide.Techniques, TechniqueEntry{
			Name:           strategy.Name,
			Description:    strategy.Description,
			WhenToUse:      fmt.Sprintf("Use when agent shows signs of %s issues", strategy.Key),
			ExamplePrompts: strategy.Prompts,
		})
	}
	return guide
}

// BuildStatePatterns assembles the agent-state patterns resource.
func BuildStatePatterns() *StatePatterns {
	return &StatePatterns{States: AgentStates}
}
