package interview_handler

import (
	"encoding/json"
	"net/http"

	"github.com/IT-Nick/interview-assistant/internal/domain/dto"
	interviewService "github.com/IT-Nick/interview-assistant/internal/domain/interview/service"
	httpError "github.com/IT-Nick/interview-assistant/pkg/http"
)

// StartInterviewRequest имя кандидата с формы входа
type StartInterviewRequest struct {
	Name string `json:"name"`
}

// AnswerRequest ответ или черновик для вопроса index
type AnswerRequest struct {
	Index  *int   `json:"index"`
	Answer string `json:"answer"`
}

// CurrentInterviewHandler активное интервью
type CurrentInterviewHandler struct {
	manager *interviewService.Manager
}

func NewCurrentInterviewHandler(manager *interviewService.Manager) *CurrentInterviewHandler {
	return &CurrentInterviewHandler{manager: manager}
}

func (h *CurrentInterviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.manager.Current()
	if !ok {
		httpError.ErrorResponse(w, http.StatusNotFound, "No active interview")
		return
	}
	httpError.JSONResponse(w, http.StatusOK, dto.NewInterviewResponse(snapshot))
}

// PendingInterviewHandler сохраненное интервью для предложения продолжить
type PendingInterviewHandler struct {
	manager *interviewService.Manager
}

func NewPendingInterviewHandler(manager *interviewService.Manager) *PendingInterviewHandler {
	return &PendingInterviewHandler{manager: manager}
}

func (h *PendingInterviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.manager.Pending(r.Context())
	if !ok {
		httpError.ErrorResponse(w, http.StatusNotFound, "No saved interview")
		return
	}
	httpError.JSONResponse(w, http.StatusOK, dto.NewInterviewResponse(snapshot))
}

// StartInterviewHandler начинает интервью по имени кандидата
type StartInterviewHandler struct {
	manager *interviewService.Manager
}

// NewStartInterviewHandler создает новый экземпляр обработчика
func NewStartInterviewHandler(manager *interviewService.Manager) *StartInterviewHandler {
	return &StartInterviewHandler{manager: manager}
}

// ServeHTTP метод для обработки запроса
func (h *StartInterviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request StartInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	snapshot, err := h.manager.Start(r.Context(), request.Name)
	if err != nil {
		httpError.DomainError(w, err)
		return
	}
	httpError.JSONResponse(w, http.StatusCreated, dto.NewInterviewResponse(snapshot))
}

// DraftHandler сохраняет набираемый ответ, чтобы он пережил перезапуск
type DraftHandler struct {
	manager *interviewService.Manager
}

func NewDraftHandler(manager *interviewService.Manager) *DraftHandler {
	return &DraftHandler{manager: manager}
}

func (h *DraftHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	request, ok := decodeAnswer(w, r)
	if !ok {
		return
	}

	accepted, err := h.manager.SetDraft(r.Context(), *request.Index, request.Answer)
	if err != nil {
		httpError.DomainError(w, err)
		return
	}
	httpError.JSONResponse(w, http.StatusOK, map[string]bool{"accepted": accepted})
}

// SubmitAnswerHandler отправляет ответ на текущий вопрос
type SubmitAnswerHandler struct {
	manager *interviewService.Manager
}

// NewSubmitAnswerHandler создает новый экземпляр обработчика
func NewSubmitAnswerHandler(manager *interviewService.Manager) *SubmitAnswerHandler {
	return &SubmitAnswerHandler{manager: manager}
}

// ServeHTTP метод для обработки запроса.
// Повторная отправка на уже закрытый вопрос возвращает accepted=false.
func (h *SubmitAnswerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	request, ok := decodeAnswer(w, r)
	if !ok {
		return
	}

	out, err := h.manager.Submit(r.Context(), *request.Index, request.Answer)
	if err != nil {
		httpError.DomainError(w, err)
		return
	}

	response := dto.SubmitResponse{Accepted: out.Accepted, Completed: out.Completed}
	switch {
	case out.Completed && out.Record != nil:
		detail := dto.NewCandidateDetail(*out.Record)
		response.Result = &detail
	case out.Accepted:
		next := dto.NewInterviewResponse(out.Snapshot)
		response.Next = &next
	}
	httpError.JSONResponse(w, http.StatusOK, response)
}

// ResumeInterviewHandler продолжает сохраненное интервью
type ResumeInterviewHandler struct {
	manager *interviewService.Manager
}

func NewResumeInterviewHandler(manager *interviewService.Manager) *ResumeInterviewHandler {
	return &ResumeInterviewHandler{manager: manager}
}

func (h *ResumeInterviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.manager.Resume(r.Context())
	if err != nil {
		httpError.DomainError(w, err)
		return
	}
	httpError.JSONResponse(w, http.StatusOK, dto.NewInterviewResponse(snapshot))
}

// DiscardInterviewHandler отбрасывает сохраненное или активное интервью
type DiscardInterviewHandler struct {
	manager *interviewService.Manager
}

func NewDiscardInterviewHandler(manager *interviewService.Manager) *DiscardInterviewHandler {
	return &DiscardInterviewHandler{manager: manager}
}

func (h *DiscardInterviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.Discard(r.Context()); err != nil {
		httpError.DomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeAnswer(w http.ResponseWriter, r *http.Request) (AnswerRequest, bool) {
	var request AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return request, false
	}
	if request.Index == nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Question index is required")
		return request, false
	}
	return request, true
}
