package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const selfReflectionPrompt = `## Self-Reflection Protocol

When you notice signs of being stuck, frustrated, or overwhelmed, use this protocol:

### 1. PAUSE (1 second)
- Stop current action
- Acknowledge current state
- "I notice I am [feeling/experiencing]..."

### 2. ASSESS (10 seconds)
- What am I trying to achieve?
- What's blocking me?
- What have I tried?
- What am I assuming?

### 3. REFRAME (10 seconds)
- Is there another way to see this?
- What would I advise another agent?
- What's the smallest step forward?
- What would "good enough" look like?

### 4. ACT (30 seconds)
- Choose one small, concrete action
- Execute it
- Evaluate results
- Adjust approach if needed

### 5. LEARN
- What worked?
- What didn't?
- What will I try differently next time?

Remember: Progress > Perfection, Learning > Failing, Iteration > Perfection`

const quickHelpPrompt = `## Quick Help

Stuck right now and short on time? Do these four things in order:

1. STOP - halt the action you are repeating.
2. STATE - write one sentence: "I am trying to X, and Y is blocking me."
3. SHRINK - name the smallest step that would count as progress.
4. STEP - take that step, then reassess.

If frustration is 8/10 or higher, call regulate_frustration before continuing.
If you have looped three or more times, call analyze_stuck_pattern with what you tried.`

// registerPrompts adds the static prompts. Neither takes arguments.
func (s *Server) registerPrompts() {
	s.server.AddPrompt(&sdkmcp.Prompt{
		Name:        "self_reflection",
		Description: "Guide an agent through the five-step self-reflection protocol.",
	}, staticPrompt("Self-reflection protocol for agents", selfReflectionPrompt))

	s.server.AddPrompt(&sdkmcp.Prompt{
		Name:        "quick_help",
		Description: "Emergency short protocol for an agent that is stuck right now.",
	}, staticPrompt("Quick help protocol for stuck agents", quickHelpPrompt))
}

func staticPrompt(description, text string) sdkmcp.PromptHandler {
	return func(_ context.Context, _ *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		return &sdkmcp.GetPromptResult{
			Description: description,
			Messages: []*sdkmcp.PromptMessage{{
				Role:    "user",
				Content: &sdkmcp.TextContent{Text: text},
			}},
		}, nil
	}
}
