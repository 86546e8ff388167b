package domain

import (
	"fmt"

	"github.com/go-bingo-api/internal/pkg/validate"
)

// BoardSize is the number of cards on a 3x3 board.
const BoardSize = 9

// Card is a single bingo card. It is embedded in profiles (board) and in
// community toss records, and is re-validated on every ingestion path.
type Card struct {
	ID              string `json:"id" dynamodbav:"id" validate:"required"`
	Text            string `json:"text" dynamodbav:"text"`
	BackgroundColor string `json:"backgroundColor" dynamodbav:"backgroundColor" validate:"required"`
}

// Validate checks the card's shape. Text may be empty; id and
// backgroundColor must not be.
func (c Card) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%s: %w", err, ErrBadRequest)
	}
	return nil
}

// ValidateBoard checks an all-or-nothing board save: exactly BoardSize cards,
// every one valid. No write may happen if any card fails.
func ValidateBoard(cards []Card) error {
	if len(cards) != BoardSize {
		return fmt.Errorf("cards must be a list of %d items: %w", BoardSize, ErrBadRequest)
	}
	for i, c := range cards {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("card %d: %w", i, err)
		}
	}
	return nil
}
