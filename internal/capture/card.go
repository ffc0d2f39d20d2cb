// Package capture rasterizes the results card into a PNG.
package capture

import (
	"errors"

	"github.com/abhisek/lovequiz/internal/score"
)

// ErrEmptyCard is returned when a card has no questions to report on.
var ErrEmptyCard = errors.New("card has no questions")

// Card is the content of the results card, independent of how it is drawn.
type Card struct {
	Emoji       string
	Title       string
	Score       string
	Percentage  int
	Description string
	Accepted    []string
	Total       int
}

// NewCard builds a Card from a computed result and the accepted prompts.
func NewCard(r score.Result, accepted []string) Card {
	msg := r.Tier.Message()
	return Card{
		Emoji:       msg.Emoji,
		Title:       msg.Title,
		Score:       r.Fraction(),
		Percentage:  r.Percentage,
		Description: msg.Description,
		Accepted:    append([]string(nil), accepted...),
		Total:       r.Total,
	}
}
