package start_interview_handler

import (
	"context"
	"errors"
	"strings"

	"github.com/IT-Nick/interview-assistant/internal/app/handlers/telegram/interview_chat"
	interviewService "github.com/IT-Nick/interview-assistant/internal/domain/interview/service"
	"github.com/IT-Nick/interview-assistant/internal/domain/model"
	"gopkg.in/telebot.v4"
)

// StartInterviewHandler обработчик команды /interview <имя>
type StartInterviewHandler struct {
	manager *interviewService.Manager
	chat    *interview_chat.Chat
}

func NewStartInterviewHandler(manager *interviewService.Manager, chat *interview_chat.Chat) *StartInterviewHandler {
	return &StartInterviewHandler{
		manager: manager,
		chat:    chat,
	}
}

// Handle начинает интервью и отправляет первый вопрос. Следующие придут уведомлениями.
func (h *StartInterviewHandler) Handle(c telebot.Context) error {
	name := strings.TrimSpace(c.Message().Payload)
	if name == "" {
		if sender := c.Sender(); sender != nil {
			name = strings.TrimSpace(sender.FirstName + " " + sender.LastName)
		}
	}

	snapshot, err := h.manager.Start(context.Background(), name)
	if err != nil {
		return c.Send(ErrorMessage(err), replyMarkup(err)...)
	}

	h.chat.Bind(c.Recipient(), snapshot.ID)
	return c.Send(interview_chat.FormatQuestion(snapshot, false, false))
}

// ErrorMessage текст для кандидата по ошибке старта
func ErrorMessage(err error) string {
	var validation *model.ValidationError
	switch {
	case errors.As(err, &validation):
		return "Пожалуйста, укажите имя: /interview Анна"
	case errors.Is(err, model.ErrSessionActive):
		return "Интервью уже идет."
	case errors.Is(err, model.ErrSessionPending):
		return "Есть незавершенное интервью. Продолжить его или начать заново?"
	case errors.Is(err, model.ErrInsufficientQuestions):
		return "В банке недостаточно вопросов для интервью."
	default:
		return "Не удалось начать интервью, попробуйте позже."
	}
}

func replyMarkup(err error) []interface{} {
	if errors.Is(err, model.ErrSessionPending) {
		return []interface{}{interview_chat.PendingMarkup()}
	}
	return nil
}
