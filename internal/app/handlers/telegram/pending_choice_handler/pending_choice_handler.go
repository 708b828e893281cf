package pending_choice_handler

import (
	"context"
	"errors"

	"github.com/IT-Nick/interview-assistant/internal/app/handlers/telegram/interview_chat"
	interviewService "github.com/IT-Nick/interview-assistant/internal/domain/interview/service"
	"github.com/IT-Nick/interview-assistant/internal/domain/model"
	"gopkg.in/telebot.v4"
)

// ResumeHandler обрабатывает нажатие кнопки "Продолжить"
type ResumeHandler struct {
	manager *interviewService.Manager
	chat    *interview_chat.Chat
}

func NewResumeHandler(manager *interviewService.Manager, chat *interview_chat.Chat) *ResumeHandler {
	return &ResumeHandler{
		manager: manager,
		chat:    chat,
	}
}

// Handle восстанавливает интервью в сохраненном состоянии и присылает текущий вопрос
func (h *ResumeHandler) Handle(c telebot.Context) error {
	snapshot, err := h.manager.Resume(context.Background())
	if err != nil {
		text := "Не удалось продолжить интервью."
		switch {
		case errors.Is(err, model.ErrNoSession):
			text = "Сохраненного интервью нет."
		case errors.Is(err, model.ErrSessionActive):
			text = "Интервью уже идет."
		}
		return c.Respond(&telebot.CallbackResponse{Text: text})
	}

	h.chat.Bind(c.Recipient(), snapshot.ID)
	if err := c.Respond(&telebot.CallbackResponse{Text: "Интервью продолжено"}); err != nil {
		return err
	}
	return c.Send(interview_chat.FormatQuestion(snapshot, true, false))
}

// DiscardHandler обрабатывает нажатие кнопки "Начать заново"
type DiscardHandler struct {
	manager *interviewService.Manager
	chat    *interview_chat.Chat
}

func NewDiscardHandler(manager *interviewService.Manager, chat *interview_chat.Chat) *DiscardHandler {
	return &DiscardHandler{
		manager: manager,
		chat:    chat,
	}
}

// Handle удаляет сохраненное интервью, журнал кандидатов не меняется
func (h *DiscardHandler) Handle(c telebot.Context) error {
	if _, ok := h.manager.Current(); ok && !h.chat.Owns(c.Recipient()) {
		return c.Respond(&telebot.CallbackResponse{Text: "Сейчас идет другое интервью."})
	}
	if err := h.manager.Discard(context.Background()); err != nil {
		text := "Не удалось отменить интервью."
		if errors.Is(err, model.ErrNoSession) {
			text = "Сохраненного интервью нет."
		}
		return c.Respond(&telebot.CallbackResponse{Text: text})
	}
	if err := c.Respond(&telebot.CallbackResponse{Text: "Интервью отменено"}); err != nil {
		return err
	}
	return c.Send("Чтобы начать новое интервью, отправьте /interview и ваше имя.")
}
