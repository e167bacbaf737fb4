// Package moderation holds the pure decision policy that maps sentiment
// scores to moderation actions, plus the reply texts those actions carry.
package moderation

import "fmt"

// Policy thresholds. The policy is stateless and not configurable at
// runtime.
const (
	// WarnThreshold triggers a warning when a single message scores below it.
	WarnThreshold = -0.5
	// MuteThreshold triggers a mute when the cumulative score drops below it.
	MuteThreshold = -4.0
)

// Actions is the set of moderation actions triggered for one message.
// Both can fire independently; the zero value means silence.
type Actions struct {
	Warn bool
	Mute bool
}

// None reports whether no action was triggered.
func (a Actions) None() bool { return !a.Warn && !a.Mute }

// Decide maps (per-message score, cumulative score after update) to the
// triggered actions. Pure function, no side effects.
func Decide(messageScore, cumulativeScore float64) Actions {
	return Actions{
		Warn: messageScore < WarnThreshold,
		Mute: cumulativeScore < MuteThreshold,
	}
}

const (
	// MuteNotice is appended to the reply when the mute succeeded.
	MuteNotice = "\n\n🚨<b>You've been muted for negativity. Try to be more positive!</b>🚨"
	// MuteFailureNotice is appended when the transport rejected the mute.
	MuteFailureNotice = "\nFailed to mute the user."
)

// WarnText composes the warning reply: the classifier's explanation, the
// updated cumulative score to two decimals, and a motivational quote.
func WarnText(explanation string, cumulativeScore float64, quote string) string {
	return fmt.Sprintf(
		"Hey, you are being too negative.\n%s Your score is now %.2f.\n\nHere's a motivational quote for you:\n<b>%s</b>",
		explanation, cumulativeScore, quote,
	)
}
