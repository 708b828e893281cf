package questions_handler

import (
	"encoding/json"
	"net/http"

	"github.com/IT-Nick/interview-assistant/internal/domain/dto"
	questionsService "github.com/IT-Nick/interview-assistant/internal/domain/questions/service"
	httpError "github.com/IT-Nick/interview-assistant/pkg/http"
)

// AddQuestionRequest данные формы добавления вопроса
type AddQuestionRequest struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	Time  int    `json:"time"`
}

// QuestionsHandler текущий банк вопросов
type QuestionsHandler struct {
	bankService *questionsService.BankService
}

func NewQuestionsHandler(bankService *questionsService.BankService) *QuestionsHandler {
	return &QuestionsHandler{bankService: bankService}
}

func (h *QuestionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpError.JSONResponse(w, http.StatusOK, dto.NewQuestionBankResponse(h.bankService.Bank()))
}

// AddQuestionHandler добавляет вопрос в банк
type AddQuestionHandler struct {
	bankService *questionsService.BankService
}

func NewAddQuestionHandler(bankService *questionsService.BankService) *AddQuestionHandler {
	return &AddQuestionHandler{bankService: bankService}
}

func (h *AddQuestionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request AddQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	q, err := h.bankService.Append(r.Context(), request.Level, request.Text, request.Time)
	if err != nil {
		httpError.DomainError(w, err)
		return
	}
	httpError.JSONResponse(w, http.StatusCreated, q)
}
