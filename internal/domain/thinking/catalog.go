package thinking

// Socratic chain names.
const (
	ChainAssumptionExamination  = "assumption_examination"
	ChainPerspectiveExpansion   = "perspective_expansion"
	ChainImplicationExploration = "implication_exploration"
	ChainDepthDrilling          = "depth_drilling"
	ChainComplexityEmbrace      = "complexity_embrace"
)

// SocraticChains holds question sequences for progressively deeper exploration.
var SocraticChains = map[string][]string{
	ChainAssumptionExamination: {
		"What assumptions am I making here?",
		"Why do I believe this assumption is true?",
		"What evidence supports this assumption?",
		"What would happen if this assumption were false?",
		"Are there alternative assumptions I haven't considered?",
		"How might someone from a different background view this assumption?",
		"What's the deepest assumption underlying all of this?",
	},
	ChainPerspectiveExpansion: {
		"How would I explain this to someone with no context?",
		"What would the opposite perspective look like?",
		"How might this look from a completely different field?",
		"What would a critic say about this?",
		"What would an enthusiast emphasize?",
		"How would this appear 10 years from now?",
		"What cultural or contextual factors am I missing?",
	},
	ChainImplicationExploration: {
		"If this is true, what else must be true?",
		"What are the second-order effects?",
		"What are the third-order effects?",
		"What unexpected consequences might arise?",
		"How does this connect to other areas?",
		"What patterns does this reveal?",
		"What does this mean for the bigger picture?",
	},
	ChainDepthDrilling: {
		"But why is that the case?",
		"And what causes that?",
		"What's underneath that reasoning?",
		"Can we go deeper into this aspect?",
		"What's the root cause here?",
		"What fundamental principle applies?",
		"What's the essence of this issue?",
	},
	ChainComplexityEmbrace: {
		"What nuances am I overlooking?",
		"Where is the complexity I'm avoiding?",
		"What contradictions exist here?",
		"How can multiple things be true at once?",
		"What paradoxes emerge from this?",
		"Where does simple reasoning break down?",
		"What makes this more complicated than it seems?",
	},
}

// MetacognitivePrompts encourage awareness of the thinking process itself.
var MetacognitivePrompts = map[string][]string{
	"thinking_about_thinking": {
		"How am I approaching this problem?",
		"What thinking strategies am I using?",
		"Am I thinking deeply enough about this?",
		"What cognitive biases might be affecting me?",
		"How confident am I in my reasoning?",
		"What's the quality of my thinking right now?",
		"Where are the gaps in my understanding?",
	},
	"process_reflection": {
		"What has my thinking process been so far?",
		"Which approaches have been most fruitful?",
		"Where did I get stuck and why?",
		"What thinking tools haven't I tried yet?",
		"How could I think about this differently?",
		"What would improve my thinking process?",
		"Am I asking the right questions?",
	},
	"depth_assessment": {
		"Have I explored this thoroughly enough?",
		"What aspects deserve deeper investigation?",
		"Where am I being superficial?",
		"What complexity am I avoiding?",
		"How many layers deep have I gone?",
		"What would constitute a complete exploration?",
		"When will I know I've thought enough?",
	},
}

// ExpansionTechnique names a lens for widening a line of thought.
type ExpansionTechnique struct {
	Name   string
	Prompt string
}

// ExpansionTechniques is ordered so seeded selection is deterministic.
var ExpansionTechniques = []ExpansionTechnique{
	{"analogical", "What is this similar to in other domains?"},
	{"causal", "What causes this and what does it cause?"},
	{"compositional", "What are the component parts and how do they interact?"},
	{"temporal", "How does this change over time?"},
	{"spatial", "How does context and environment affect this?"},
	{"probabilistic", "What are the likelihood and uncertainties involved?"},
	{"systemic", "How does this fit into larger systems?"},
	{"evolutionary", "How did this come to be and where is it going?"},
	{"dialectical", "What tensions and contradictions exist?"},
	{"phenomenological", "What is the lived experience of this?"},
}

// ladderLevel is one rung definition for the depth ladder.
type ladderLevel struct {
	name    string
	prompt  string
	markers []string
}

var ladderLevels = []ladderLevel{
	{"Surface", "What's the obvious answer?", []string{"immediate", "obvious", "surface"}},
	{"Factual", "What facts and evidence apply?", []string{"evidence-based", "factual", "concrete"}},
	{"Analytical", "What patterns and relationships exist?", []string{"patterns", "relationships", "analysis"}},
	{"Critical", "What assumptions and biases are present?", []string{"questioning", "challenging", "critical"}},
	{"Synthetic", "How do different perspectives integrate?", []string{"integration", "synthesis", "holistic"}},
	{"Philosophical", "What fundamental principles are at play?", []string{"principles", "essence", "fundamental"}},
	{"Transcendent", "What lies beyond conventional understanding?", []string{"transcendent", "paradox", "mystery"}},
}

// experimentTemplate carries {concept} placeholders substituted at build time.
type experimentTemplate struct {
	name      string
	setup     string
	questions []string
}

var experimentTemplates = []experimentTemplate{
	{
		name:  "Extreme Scaling",
		setup: "Imagine {concept} scaled up by 1000x or down by 1000x.",
		questions: []string{
			"What breaks or changes fundamentally?",
			"What remains constant?",
			"What new properties emerge?",
			"What insights does this reveal about the nature of {concept}?",
		},
	},
	{
		name:  "Time Travel",
		setup: "Transport {concept} 100 years into the past or future.",
		questions: []string{
			"How would it be understood differently?",
			"What context would be missing or added?",
			"What aspects are timeless vs temporal?",
			"What does this reveal about {concept}'s essence?",
		},
	},
	{
		name:  "Alien Perspective",
		setup: "Explain {concept} to an intelligent being with completely different senses and experiences.",
		questions: []string{
			"What assumptions would you need to question?",
			"What universal vs human-specific aspects exist?",
			"How would you convey the essence?",
			"What do you learn from this translation exercise?",
		},
	},
	{
		name:  "Necessity Test",
		setup: "Imagine a world where {concept} doesn't exist or work.",
		questions: []string{
			"What would be different?",
			"What problems would arise or disappear?",
			"What would replace it?",
			"What does this reveal about its true function?",
		},
	},
	{
		name:  "Pure Essence",
		setup: "Strip away everything non-essential from {concept}.",
		questions: []string{
			"What absolutely must remain?",
			"What surprises you about what's essential?",
			"What commonly associated aspects are actually peripheral?",
			"What is the irreducible core?",
		},
	},
}
