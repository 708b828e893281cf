package answer_handler

import (
	"context"
	"strings"

	"github.com/IT-Nick/interview-assistant/internal/app/handlers/telegram/interview_chat"
	interviewService "github.com/IT-Nick/interview-assistant/internal/domain/interview/service"
	"gopkg.in/telebot.v4"
)

// AnswerHandler принимает текстовые ответы кандидата
type AnswerHandler struct {
	manager *interviewService.Manager
	chat    *interview_chat.Chat
}

// NewAnswerHandler возвращает новый экземпляр обработчика
func NewAnswerHandler(manager *interviewService.Manager, chat *interview_chat.Chat) *AnswerHandler {
	return &AnswerHandler{
		manager: manager,
		chat:    chat,
	}
}

// Handle отправляет сообщение как ответ на текущий вопрос.
// Если вопрос за это время закрылся по таймеру, ответ не принимается.
func (h *AnswerHandler) Handle(c telebot.Context) error {
	text := strings.TrimSpace(c.Text())
	if strings.HasPrefix(text, "/") {
		return nil
	}

	snapshot, ok := h.manager.Current()
	if !ok {
		return c.Send("Нет активного интервью. Отправьте /start.")
	}
	if !h.chat.Owns(c.Recipient()) {
		return c.Send("Сейчас идет другое интервью, попробуйте позже.")
	}

	out, err := h.manager.Submit(context.Background(), snapshot.CurrentIndex, text)
	if err != nil {
		return c.Send("Интервью уже завершено.")
	}
	if !out.Accepted {
		return c.Send("Время на этот вопрос истекло, ответ не принят.")
	}
	return nil
}
