package session

import "time"

// State represents the workflow state of an agent session.
type State string

const (
	StateInitial    State = "initial"
	StateInProgress State = "in_progress"
	StateImproving  State = "improving"
	StateResolved   State = "resolved"
	StateEscalated  State = "escalated"
)

// Record tracks one agent's interaction thread, keyed by a caller-supplied ID.
type Record struct {
	ID                 string    `json:"session_id"`
	State              State     `json:"state"`
	PrimaryIssue       string    `json:"primary_issue"`
	Interventions      []string  `json:"interventions_tried"`
	Progress           []string  `json:"progress_indicators"`
	FrustrationHistory []int     `json:"frustration_history"`
	StartedAt          time.Time `json:"start_time"`
	LastUpdate         time.Time `json:"last_update"`
}

// Summary is a derived read-only view of a session record.
type Summary struct {
	SessionID          string   `json:"session_id"`
	State              State    `json:"state"`
	PrimaryIssue       string   `json:"primary_issue"`
	DurationMinutes    float64  `json:"duration_minutes"`
	InterventionsTried []string `json:"interventions_tried"`
	ProgressCount      int      `json:"progress_count"`
	AverageFrustration float64  `json:"average_frustration"`
	FrustrationTrend   string   `json:"frustration_trend"`
}

// Trend labels for Summary.FrustrationTrend.
const (
	TrendEscalating        = "escalating"
	TrendStableOrDeclining = "stable_or_declining"
	TrendInsufficientData  = "insufficient_data"
)

// TrendOf reports TrendEscalating when the last three frustration entries
// are non-decreasing. Fewer than three entries is TrendInsufficientData.
func TrendOf(history []int) string {
	if len(history) < 3 {
		return TrendInsufficientData
	}
	recent := history[len(history)-3:]
	for i := 0; i < len(recent)-1; i++ {
		if recent[i] > recent[i+1] {
			return TrendStableOrDeclining
		}
	}
	return TrendEscalating
}

// AverageFrustration computes the mean of the frustration history, zero when empty.
func AverageFrustration(history []int) float64 {
	if len(history) == 0 {
		return 0
	}
	total := 0
	for _, level := range history {
		total += level
	}
	return float64(total) / float64(len(history))
}
