package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTier(t *testing.T) {
	for in, want := range map[string]Tier{"easy": TierEasy, "Medium": TierMedium, " HARD ": TierHard} {
		got, err := ParseTier(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseTier("expert")
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestNewQuestion_Validation(t *testing.T) {
	_, err := NewQuestion("Easy", "   ", 10)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "text", verr.Field)

	_, err = NewQuestion("Easy", "What is Go?", 0)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "time", verr.Field)

	q, err := NewQuestion("easy", " What is Go? ", 30)
	require.NoError(t, err)
	assert.Equal(t, Question{Tier: TierEasy, Text: "What is Go?", TimeLimit: 30}, q)
}

func TestBank_AppendDoesNotMutateOriginal(t *testing.T) {
	bank := DefaultBank()
	next := bank.Append(Question{Tier: TierHard, Text: "Explain the Go memory model.", TimeLimit: 90})

	assert.Len(t, bank.Hard, 3)
	require.Len(t, next.Hard, 4)
	assert.Equal(t, "Explain the Go memory model.", next.Hard[3].Text)
	assert.Equal(t, bank.Hard, next.Hard[:3])
	assert.Equal(t, 10, next.Len())
}

func TestBank_JSONLayout(t *testing.T) {
	data, err := json.Marshal(Bank{Easy: []Question{{Tier: TierEasy, Text: "q", TimeLimit: 20}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"easy":[{"level":"Easy","text":"q","time":20}],"medium":null,"hard":null}`, string(data))
}

func TestSnapshot_JSONLayout(t *testing.T) {
	s := Snapshot{
		ID:        "s1",
		Candidate: Candidate{Name: "Ann", Answers: []Answer{{Question: "q1", Answer: "a1"}}},
		Questions: []Question{
			{Tier: TierEasy, Text: "q1", TimeLimit: 20},
			{Tier: TierEasy, Text: "q2", TimeLimit: 20},
		},
		CurrentIndex: 1,
		Remaining:    12,
		Draft:        "partial",
	}
	data, err := json.Marshal(s)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.EqualValues(t, 1, raw["currentQ"])
	assert.EqualValues(t, 12, raw["timer"])
	assert.Equal(t, "partial", raw["answer"])

	answers := raw["candidate"].(map[string]any)["answers"].([]any)
	assert.Equal(t, map[string]any{"q": "q1", "ans": "a1"}, answers[0])
	assert.NoError(t, s.Validate())
}

func TestSnapshot_Validate(t *testing.T) {
	s := Snapshot{Questions: []Question{{Tier: TierEasy, Text: "q", TimeLimit: 20}}, CurrentIndex: 1}
	assert.ErrorIs(t, s.Validate(), ErrValidation)

	s.CurrentIndex = 0
	s.Remaining = -1
	assert.ErrorIs(t, s.Validate(), ErrValidation)

	s.Remaining = 5
	s.Candidate.Answers = []Answer{{Question: "q", Answer: "a"}}
	assert.ErrorIs(t, s.Validate(), ErrValidation)
}

func TestCandidate_CloneIsDeep(t *testing.T) {
	score := 40
	c := Candidate{Name: "Bob", Answers: []Answer{{Question: "q", Answer: "a"}}, Score: &score}
	cp := c.Clone()
	cp.Answers[0].Answer = "changed"
	*cp.Score = 99

	assert.Equal(t, "a", c.Answers[0].Answer)
	assert.Equal(t, 40, *c.Score)
	assert.True(t, c.Finalized())
}

func TestInsufficientQuestionsError(t *testing.T) {
	err := error(&InsufficientQuestionsError{Tier: TierMedium, Have: 1, Need: 2})
	assert.ErrorIs(t, err, ErrInsufficientQuestions)
	assert.Contains(t, err.Error(), "Medium")
}
