package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankStrings(t *testing.T) {
	tests := []struct {
		rank  Rank
		wire  string
		value int
	}{
		{Two, "2", 2},
		{Nine, "9", 9},
		{Ten, "10", 10},
		{Jack, "J", 11},
		{Queen, "Q", 12},
		{King, "K", 13},
		{Ace, "A", 14},
	}

	for _, tt := range tests {
		t.Run(tt.wire, func(t *testing.T) {
			assert.Equal(t, tt.wire, tt.rank.String())
			assert.Equal(t, tt.value, tt.rank.Value())

			parsed, err := RankFromString(tt.wire)
			require.NoError(t, err)
			assert.Equal(t, tt.rank, parsed)
		})
	}
}

func TestRankFromStringRejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "1", "11", "ace", "X"} {
		_, err := RankFromString(s)
		assert.Error(t, err, "rank %q should not parse", s)
	}
}

func TestSuitNames(t *testing.T) {
	for _, suit := range []Suit{Spades, Hearts, Diamonds, Clubs} {
		parsed, err := SuitFromName(suit.Name())
		require.NoError(t, err)
		assert.Equal(t, suit, parsed)
	}

	_, err := SuitFromName("coins")
	assert.Error(t, err)
}

func TestSuitColors(t *testing.T) {
	assert.True(t, Hearts.IsRed())
	assert.True(t, Diamonds.IsRed())
	assert.False(t, Spades.IsRed())
	assert.False(t, Clubs.IsRed())
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "A♠", NewCard(Spades, Ace).String())
	assert.Equal(t, "10♥", NewCard(Hearts, Ten).String())
}

func TestCardJSON(t *testing.T) {
	t.Run("marshal uses wire shape", func(t *testing.T) {
		data, err := json.Marshal(NewCard(Hearts, King))
		require.NoError(t, err)
		assert.JSONEq(t, `{"suit":"hearts","rank":"K","value":13}`, string(data))
	})

	t.Run("unmarshal round trip", func(t *testing.T) {
		var card Card
		require.NoError(t, json.Unmarshal([]byte(`{"suit":"clubs","rank":"10","value":10}`), &card))
		assert.Equal(t, NewCard(Clubs, Ten), card)
	})

	t.Run("rank wins over a disagreeing value", func(t *testing.T) {
		var card Card
		require.NoError(t, json.Unmarshal([]byte(`{"suit":"spades","rank":"A","value":3}`), &card))
		assert.Equal(t, Ace, card.Rank)
		assert.Equal(t, 14, card.Value())
	})

	t.Run("unknown suit rejected", func(t *testing.T) {
		var card Card
		assert.Error(t, json.Unmarshal([]byte(`{"suit":"coins","rank":"A","value":14}`), &card))
	})

	t.Run("unknown rank rejected", func(t *testing.T) {
		var card Card
		assert.Error(t, json.Unmarshal([]byte(`{"suit":"spades","rank":"1","value":1}`), &card))
	})
}
