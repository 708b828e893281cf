package start_interview_handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/IT-Nick/interview-assistant/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&model.ValidationError{Field: "name", Message: "please enter candidate name"}, "Пожалуйста, укажите имя: /interview Анна"},
		{model.ErrSessionActive, "Интервью уже идет."},
		{fmt.Errorf("start: %w", model.ErrSessionPending), "Есть незавершенное интервью. Продолжить его или начать заново?"},
		{&model.InsufficientQuestionsError{Tier: model.TierHard, Have: 1, Need: 2}, "В банке недостаточно вопросов для интервью."},
		{errors.New("boom"), "Не удалось начать интервью, попробуйте позже."},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ErrorMessage(tc.err), tc.err.Error())
	}

	assert.Len(t, replyMarkup(model.ErrSessionPending), 1)
	assert.Empty(t, replyMarkup(model.ErrSessionActive))
}
