package thinking

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Service generates prompt scaffolding that nudges agents toward longer,
// deeper reasoning. Output is assembled from static catalogs; the only
// variation is which catalog entries a call samples.
type Service struct {
	logger *slog.Logger

	// rand.Rand is not safe for concurrent use.
	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Service.
type Option func(*Service)

// WithRand overrides the random source, for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// NewService creates a deep thinking service.
func NewService(logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		logger: logger,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// sample returns n distinct entries from items in random order.
func (s *Service) sample(items []string, n int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n > len(items) {
		n = len(items)
	}
	out := make([]string, 0, n)
	for _, idx := range s.rng.Perm(len(items))[:n] {
		out = append(out, items[idx])
	}
	return out
}

// pick returns one random entry from items.
func (s *Service) pick(items []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return items[s.rng.Intn(len(items))]
}

func (s *Service) pickTechnique() ExpansionTechnique {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ExpansionTechniques[s.rng.Intn(len(ExpansionTechniques))]
}

// Prompts assembles a deep thinking prompt set for a topic. The Socratic
// chain sampled depends on the desired depth; every set also carries one
// metacognitive prompt and one named expansion technique.
func (s *Service) Prompts(topic string, desiredDepth Depth, style string) *PromptSet {
	prompts := []string{
		fmt.Sprintf("Take a moment to sit with this thought: '%s'. What emerges when you give it space?", topic),
	}

	level := levelOf(desiredDepth)
	switch {
	case level < 2:
		prompts = append(prompts, s.sample(SocraticChains[ChainAssumptionExamination], 2)...)
	case level < 4:
		prompts = append(prompts, s.sample(SocraticChains[ChainPerspectiveExpansion], 2)...)
		prompts = append(prompts, s.sample(SocraticChains[ChainImplicationExploration], 1)...)
	default:
		prompts = append(prompts, s.sample(SocraticChains[ChainDepthDrilling], 2)...)
		prompts = append(prompts, s.sample(SocraticChains[ChainComplexityEmbrace], 2)...)
	}

	prompts = append(prompts, s.pick(MetacognitivePrompts["thinking_about_thinking"]))

	technique := s.pickTechnique()
	prompts = append(prompts, fmt.Sprintf("[%s thinking]: %s", titleCase(technique.Name), technique.Prompt))

	return &PromptSet{
		Topic:        topic,
		DesiredDepth: desiredDepth,
		Style:        style,
		Prompts:      prompts,
		Instruction:  "Work through each prompt before forming conclusions. Depth comes from dwelling, not rushing.",
	}
}

// ReflectionLoop builds a fixed sequence of reflection rounds. Rounds grow
// progressively more reflective; deep and profound targets add expansion
// prompts, and the final round always carries the integration prompt.
func (s *Service) ReflectionLoop(initialThought string, targetDepth Depth, minIterations int) *ReflectionLoop {
	if minIterations < 1 {
		minIterations = 3
	}

	iterations := make([]ReflectionIteration, 0, minIterations)
	for i := 0; i < minIterations; i++ {
		iter := ReflectionIteration{
			Round: i + 1,
			Input: initialThought,
		}

		switch i {
		case 0:
			iter.ReflectionPrompts = []string{
				"What's your immediate reaction to this?",
				"What comes to mind first?",
				"What feels important here?",
			}
			iter.PauseInstruction = "Pause for 10 seconds before responding."
		case 1:
			iter.ReflectionPrompts = []string{
				"Now, looking deeper, what else do you notice?",
				"What patterns or connections emerge?",
				"What questions arise from your first thoughts?",
			}
			iter.PauseInstruction = "Take 20 seconds to contemplate before continuing."
		default:
			iter.ReflectionPrompts = []string{
				"Stepping back, what's the bigger picture?",
				"What insights have emerged from this exploration?",
				"What new understanding has developed?",
				"What remains mysterious or unresolved?",
			}
			iter.PauseInstruction = "Spend 30 seconds in quiet reflection before your final thoughts."
		}

		if targetDepth == DepthDeep || targetDepth == DepthProfound {
			iter.ExpansionPrompts = []string{
				"Explore the edges of this thought...",
				"What lives in the spaces between your ideas?",
				"Follow the thread that feels most alive...",
				"What wants to emerge but hasn't yet?",
			}
		}

		if i == minIterations-1 {
			iter.IntegrationPrompt = "Now, weaving together all these threads of thought, " +
				"what comprehensive understanding emerges? " +
				"Take your time to articulate the full picture."
		}

		iterations = append(iterations, iter)
	}

	return &ReflectionLoop{
		Type:               "reflection_loop",
		TargetDepth:        targetDepth,
		Iterations:         iterations,
		TotalEstimatedTime: fmt.Sprintf("%d seconds minimum", minIterations*30),
		Instruction: "Work through each iteration slowly and thoughtfully. " +
			"Don't rush to the next until you've fully explored the current one.",
	}
}

// Contemplation builds a phased contemplation guide. Unknown styles fall
// back to philosophical.
func (s *Service) Contemplation(topic, style string) *Contemplation {
	opening, phases := contemplationPhases(topic, style)
	if phases == nil {
		style = "philosophical"
		opening, phases = contemplationPhases(topic, style)
	}

	return &Contemplation{
		Topic:           topic,
		Style:           style,
		TotalDuration:   "4-6 minutes",
		Opening:         opening,
		Phases:          phases,
		Closing:         fmt.Sprintf("Having contemplated %s deeply, what understanding will you carry forward?", topic),
		MetaInstruction: "Between each phase, pause for 10-15 seconds to let thoughts settle.",
	}
}

func contemplationPhases(topic, style string) (string, []ContemplationPhase) {
	switch style {
	case "philosophical":
		return fmt.Sprintf("Let's engage in deep philosophical contemplation about %s.", topic),
			[]ContemplationPhase{
				{
					Name:        "Wonder",
					Duration:    "30-60 seconds",
					Prompt:      fmt.Sprintf("Approach %s with fresh wonder. What is truly remarkable about it? What mysteries does it hold?", topic),
					Instruction: "Don't analyze yet, just wonder.",
				},
				{
					Name:        "Examination",
					Duration:    "60-90 seconds",
					Prompt:      fmt.Sprintf("Examine %s from multiple angles. What are its essential qualities? Its contradictions? Its boundaries?", topic),
					Instruction: "Be thorough but patient.",
				},
				{
					Name:        "Connection",
					Duration:    "60-90 seconds",
					Prompt:      fmt.Sprintf("How does %s connect to fundamental questions? To other ideas? To lived experience?", topic),
					Instruction: "Draw unexpected connections.",
				},
				{
					Name:        "Synthesis",
					Duration:    "60-90 seconds",
					Prompt:      fmt.Sprintf("What new understanding of %s emerges from this contemplation?", topic),
					Instruction: "Allow insights to crystallize naturally.",
				},
			}
	case "analytical":
		return fmt.Sprintf("Let's systematically analyze %s in depth.", topic),
			[]ContemplationPhase{
				{
					Name:        "Decomposition",
					Duration:    "45-60 seconds",
					Prompt:      fmt.Sprintf("Break down %s into its fundamental components.", topic),
					Instruction: "Be exhaustive in your decomposition.",
				},
				{
					Name:        "Relationships",
					Duration:    "45-60 seconds",
					Prompt:      "How do these components interact? What dependencies exist?",
					Instruction: "Map the full relationship network.",
				},
				{
					Name:        "Dynamics",
					Duration:    "45-60 seconds",
					Prompt:      "How does this system behave over time? What forces act upon it?",
					Instruction: "Consider multiple timescales.",
				},
				{
					Name:        "Implications",
					Duration:    "45-60 seconds",
					Prompt:      "What are all the implications and consequences?",
					Instruction: "Think through nth-order effects.",
				},
			}
	case "creative":
		return fmt.Sprintf("Let's explore %s through creative contemplation.", topic),
			[]ContemplationPhase{
				{
					Name:        "Imagination",
					Duration:    "30-45 seconds",
					Prompt:      fmt.Sprintf("If %s were transformed in unexpected ways, what might emerge?", topic),
					Instruction: "Let imagination run wild.",
				},
				{
					Name:        "Metaphor",
					Duration:    "30-45 seconds",
					Prompt:      fmt.Sprintf("What metaphors illuminate %s? What does it remind you of?", topic),
					Instruction: "Find surprising connections.",
				},
				{
					Name:        "Inversion",
					Duration:    "30-45 seconds",
					Prompt:      fmt.Sprintf("What if everything about %s were inverted or opposite?", topic),
					Instruction: "Explore the inverse space.",
				},
				{
					Name:        "Synthesis",
					Duration:    "30-45 seconds",
					Prompt:      "What creative insights emerge from these explorations?",
					Instruction: "Combine the unexpected.",
				},
			}
	default:
		return "", nil
	}
}

// DepthLadder builds up to seven rungs of increasing depth for a question.
func (s *Service) DepthLadder(question string, maxRungs int) *DepthLadder {
	if maxRungs < 1 || maxRungs > len(ladderLevels) {
		maxRungs = len(ladderLevels)
	}

	rungs := make([]LadderRung, 0, maxRungs)
	for i, level := range ladderLevels[:maxRungs] {
		rung := LadderRung{
			Level:        i + 1,
			Name:         level.name,
			Prompt:       fmt.Sprintf("%s (Regarding: %s)", level.prompt, question),
			ThinkingTime: fmt.Sprintf("%d seconds", 15*(i+1)),
			DepthMarkers: level.markers,
		}
		if i < maxRungs-1 {
			rung.Transition = fmt.Sprintf("Now, let's go deeper. Take a breath and ascend to level %d...", i+2)
		}
		rungs = append(rungs, rung)
	}

	return &DepthLadder{
		Question:   question,
		Type:       "thinking_depth_ladder",
		TotalRungs: len(rungs),
		Rungs:      rungs,
		Instructions: []string{
			"Start at the first rung and work your way up",
			"Don't skip rungs - each builds on the previous",
			"Take the full suggested time for each level",
			"Notice how your understanding evolves",
			"If you feel stuck, that's a sign you're reaching new depth",
		},
		CompletionReflection: "Having climbed this ladder of thought, what new heights of understanding have you reached?",
	}
}

// ThoughtExperiments samples up to five templates and substitutes the
// concept into their setup and questions.
func (s *Service) ThoughtExperiments(concept string, numExperiments int) []ThoughtExperiment {
	if numExperiments < 0 {
		numExperiments = 0
	}
	if numExperiments > len(experimentTemplates) {
		numExperiments = len(experimentTemplates)
	}

	s.mu.Lock()
	order := s.rng.Perm(len(experimentTemplates))[:numExperiments]
	s.mu.Unlock()

	experiments := make([]ThoughtExperiment, 0, numExperiments)
	for i, idx := range order {
		tmpl := experimentTemplates[idx]
		questions := make([]string, len(tmpl.questions))
		for j, q := range tmpl.questions {
			questions[j] = strings.ReplaceAll(q, "{concept}", concept)
		}
		experiments = append(experiments, ThoughtExperiment{
			Number:          i + 1,
			Name:            tmpl.name,
			Concept:         concept,
			Setup:           strings.ReplaceAll(tmpl.setup, "{concept}", concept),
			ExplorationTime: "2-3 minutes",
			Questions:       questions,
			Instruction:     "Don't rush to answers. Live in the experiment for a while.",
			DeeperPrompt:    "What does this experiment reveal that straightforward analysis wouldn't?",
		})
	}
	return experiments
}

// RecursiveQuestioning layers meta-questions over an initial question, one
// branch per recursion level.
func (s *Service) RecursiveQuestioning(initialQuestion string, recursionDepth int) *RecursiveQuestioning {
	if recursionDepth < 1 {
		recursionDepth = 4
	}

	branches := make([]RecursiveBranch, 0, recursionDepth)
	for level := 0; level < recursionDepth; level++ {
		branch := RecursiveBranch{
			Level:           level + 1,
			ExplorationTime: fmt.Sprintf("%d seconds", 20*(level+1)),
		}

		switch level {
		case 0:
			branch.MetaQuestion = "What's your response to the initial question?"
			branch.Prompts = []string{
				"Answer thoughtfully",
				"Note what feels incomplete",
				"Identify assumptions you're making",
			}
		case 1:
			branch.MetaQuestion = "What questions does your answer raise?"
			branch.Prompts = []string{
				"What new questions emerge from your response?",
				"What did you not address?",
				"What complexities are you now aware of?",
			}
		case 2:
			branch.MetaQuestion = "What's behind those questions?"
			branch.Prompts = []string{
				"Why do those particular questions matter?",
				"What deeper issues do they point to?",
				"What patterns do you see in your questioning?",
			}
		default:
			branch.MetaQuestion = "What fundamental mystery remains?"
			branch.Prompts = []string{
				"What essential unknown persists?",
				"What paradox or tension can't be resolved?",
				"What would it mean to fully understand this?",
			}
		}

		branches = append(branches, branch)
	}

	return &RecursiveQuestioning{
		Type:            "recursive_questioning",
		InitialQuestion: initialQuestion,
		Depth:           recursionDepth,
		Branches:        branches,
		Integration: Integration{
			Prompt:      "Having spiraled through these layers of questioning, what comprehensive understanding emerges?",
			Time:        "60-90 seconds",
			Instruction: "Don't try to resolve everything. Embrace both clarity and mystery.",
		},
	}
}

// deepQuestionWords mark questions that probe rather than confirm.
var deepQuestionWords = []string{"why", "how", "what if", "underlying", "essence", "fundamental"}

// Metrics scores a self-reported thinking session. Thresholds are fixed;
// every axis saturates at 100.
func (s *Service) Metrics(stats SessionStats) *Metrics {
	m := &Metrics{}

	switch {
	case stats.MaxDepthReached > 5:
		m.DepthScore = 90
	case stats.MaxDepthReached > 3:
		m.DepthScore = 70
	case stats.MaxDepthReached > 1:
		m.DepthScore = 50
	default:
		m.DepthScore = 30
	}

	m.BreadthScore = capScore(len(stats.PerspectivesConsidered) * 15)

	switch {
	case len(stats.Insights) > 5:
		m.IntegrationScore = 85
	case len(stats.Insights) > 2:
		m.IntegrationScore = 60
	default:
		m.IntegrationScore = 35
	}

	if stats.ThinkingMinutes > 0 {
		density := float64(len(stats.Insights)) / stats.ThinkingMinutes * 20
		if density > 100 {
			density = 100
		}
		m.InsightDensity = density
	}

	deepQuestions := 0
	for _, q := range stats.QuestionsExplored {
		lower := strings.ToLower(q)
		for _, word := range deepQuestionWords {
			if strings.Contains(lower, word) {
				deepQuestions++
				break
			}
		}
	}
	m.QuestionQuality = capScore(deepQuestions * 20)
	m.AssumptionAwareness = capScore(len(stats.AssumptionsChallenged) * 25)
	m.PerspectiveDiversity = capScore(len(stats.PerspectivesConsidered) * 20)

	avg := float64(m.DepthScore+m.BreadthScore+m.IntegrationScore+m.QuestionQuality) / 4
	switch {
	case avg > 80:
		m.OverallRating = DepthProfound
	case avg > 65:
		m.OverallRating = DepthDeep
	case avg > 50:
		m.OverallRating = DepthModerate
	case avg > 35:
		m.OverallRating = DepthShallow
	default:
		m.OverallRating = DepthSurface
	}

	return m
}

func capScore(v int) int {
	if v > 100 {
		return 100
	}
	return v
}

// titleCase uppercases the first letter, enough for the ASCII technique names.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
