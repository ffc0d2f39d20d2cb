package score

import (
	"fmt"
	"math"
)

// Tier is one of the four result messages, best first.
type Tier int

const (
	TierAllYes     Tier = iota + 1 // every question answered yes
	TierNearlyAll                  // at most one no
	TierHalfway                    // at least half (rounded down)
	TierSomeday                    // everything else
)

// Message is the fixed display content for a Tier.
type Message struct {
	Emoji       string
	Title       string
	Description string
}

var messages = map[Tier]Message{
	TierAllYes: {
		Emoji:       "💕",
		Title:       "Congratulations!",
		Description: "You said YES to everything! You are absolutely amazing! A match made in heaven! 🌟",
	},
	TierNearlyAll: {
		Emoji:       "😍",
		Title:       "Wonderful!",
		Description: "You care deeply! That's truly beautiful and romantic! 💕",
	},
	TierHalfway: {
		Emoji:       "🥰",
		Title:       "Sweet!",
		Description: "You've got that spark! There's definitely something special here! 💫",
	},
	TierSomeday: {
		Emoji:       "😊",
		Title:       "Interesting!",
		Description: "Every love story is unique! Who knows what the future holds! ✨",
	},
}

// Message returns the display content for t.
func (t Tier) Message() Message {
	return messages[t]
}

// String returns a short name for logs.
func (t Tier) String() string {
	switch t {
	case TierAllYes:
		return "all-yes"
	case TierNearlyAll:
		return "nearly-all"
	case TierHalfway:
		return "halfway"
	case TierSomeday:
		return "someday"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// TierFor evaluates the threshold ladder top to bottom; the first match wins.
func TierFor(yesCount, total int) Tier {
	switch {
	case yesCount == total:
		return TierAllYes
	case yesCount >= total-1:
		return TierNearlyAll
	case yesCount >= total/2:
		return TierHalfway
	default:
		return TierSomeday
	}
}

// Percentage returns round(100 * yesCount / total), halves rounded up.
func Percentage(yesCount, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(100*float64(yesCount)/float64(total) + 0.5))
}

// Result is the derived score for a finished session.
type Result struct {
	YesCount   int
	Total      int
	Percentage int
	Tier       Tier
}

// Compute derives the full Result.
func Compute(yesCount, total int) Result {
	return Result{
		YesCount:   yesCount,
		Total:      total,
		Percentage: Percentage(yesCount, total),
		Tier:       TierFor(yesCount, total),
	}
}

// Fraction renders the score as "yes/total".
func (r Result) Fraction() string {
	return fmt.Sprintf("%d/%d", r.YesCount, r.Total)
}

// ShareText is the one-line summary offered for sharing.
func (r Result) ShareText() string {
	msg := r.Tier.Message()
	return fmt.Sprintf("I scored %s (%d%% Compatible) on the love quiz! %s %s",
		r.Fraction(), r.Percentage, msg.Emoji, msg.Title)
}
