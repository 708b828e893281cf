package start_handler

import (
	"context"
	"fmt"

	"github.com/IT-Nick/interview-assistant/internal/app/handlers/telegram/interview_chat"
	interviewService "github.com/IT-Nick/interview-assistant/internal/domain/interview/service"
	"gopkg.in/telebot.v4"
)

const welcomeMessage = "Здравствуйте! Это ассистент технического интервью.\n" +
	"Чтобы начать, отправьте /interview и ваше имя, например: /interview Анна"

// StartHandler структура для обработки команды /start
type StartHandler struct {
	manager *interviewService.Manager
	chat    *interview_chat.Chat
}

// NewStartHandler возвращает структуру обработчика
func NewStartHandler(manager *interviewService.Manager, chat *interview_chat.Chat) *StartHandler {
	return &StartHandler{
		manager: manager,
		chat:    chat,
	}
}

// Handle приветствие. Если есть незавершенное интервью, предлагает продолжить его или начать заново.
func (h *StartHandler) Handle(c telebot.Context) error {
	if snapshot, ok := h.manager.Current(); ok {
		if h.chat.Owns(c.Recipient()) {
			return c.Send(interview_chat.FormatQuestion(snapshot, false, false))
		}
		return c.Send("Сейчас идет другое интервью, попробуйте позже.")
	}

	snapshot, ok := h.manager.Pending(context.Background())
	if !ok {
		return c.Send(welcomeMessage)
	}

	return c.Send(fmt.Sprintf("С возвращением! Найдено незавершенное интервью кандидата %s (вопрос %d из %d).",
		snapshot.Candidate.Name, snapshot.CurrentIndex+1, len(snapshot.Questions)),
		interview_chat.PendingMarkup())
}
