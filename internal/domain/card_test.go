package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCard(i int) Card {
	return Card{ID: fmt.Sprintf("c%d", i), Text: "hello", BackgroundColor: "#fff"}
}

func TestCardValidate_HappyPath(t *testing.T) {
	require.NoError(t, validCard(1).Validate())
}

func TestCardValidate_EmptyTextIsAllowed(t *testing.T) {
	c := Card{ID: "c1", Text: "", BackgroundColor: "#fff"}
	require.NoError(t, c.Validate())
}

func TestCardValidate_MissingID(t *testing.T) {
	c := Card{Text: "x", BackgroundColor: "#fff"}
	err := c.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadRequest))
}

func TestCardValidate_MissingBackgroundColor(t *testing.T) {
	c := Card{ID: "c1", Text: "x"}
	err := c.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadRequest))
}

func TestValidateBoard_ExactlyNineRequired(t *testing.T) {
	for _, n := range []int{0, 8, 10} {
		cards := make([]Card, n)
		for i := range cards {
			cards[i] = validCard(i)
		}
		err := ValidateBoard(cards)
		require.Error(t, err, "count %d", n)
		assert.True(t, errors.Is(err, ErrBadRequest))
	}
}

func TestValidateBoard_AnyBadCardFails(t *testing.T) {
	cards := make([]Card, BoardSize)
	for i := range cards {
		cards[i] = validCard(i)
	}
	cards[4].BackgroundColor = ""
	err := ValidateBoard(cards)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadRequest))
}

func TestValidateBoard_HappyPath(t *testing.T) {
	cards := make([]Card, BoardSize)
	for i := range cards {
		cards[i] = validCard(i)
	}
	require.NoError(t, ValidateBoard(cards))
}
