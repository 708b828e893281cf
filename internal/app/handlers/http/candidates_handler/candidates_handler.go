package candidates_handler

import (
	"net/http"

	candidatesService "github.com/IT-Nick/interview-assistant/internal/domain/candidates/service"
	"github.com/IT-Nick/interview-assistant/internal/domain/dto"
	httpError "github.com/IT-Nick/interview-assistant/pkg/http"
)

// CandidatesHandler таблица завершенных интервью
type CandidatesHandler struct {
	ledger *candidatesService.Ledger
}

// NewCandidatesHandler создает новый экземпляр обработчика
func NewCandidatesHandler(ledger *candidatesService.Ledger) *CandidatesHandler {
	return &CandidatesHandler{ledger: ledger}
}

// ServeHTTP метод для обработки запроса
func (h *CandidatesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpError.JSONResponse(w, http.StatusOK, dto.NewCandidatesResponse(h.ledger.List()))
}

// CandidateDetailHandler ответы одного кандидата по идентификатору записи
type CandidateDetailHandler struct {
	ledger *candidatesService.Ledger
}

func NewCandidateDetailHandler(ledger *candidatesService.Ledger) *CandidateDetailHandler {
	return &CandidateDetailHandler{ledger: ledger}
}

func (h *CandidateDetailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Missing candidate id")
		return
	}

	candidate, ok := h.ledger.Get(id)
	if !ok {
		httpError.ErrorResponse(w, http.StatusNotFound, "Candidate "+id+" not found")
		return
	}
	httpError.JSONResponse(w, http.StatusOK, dto.NewCandidateDetail(candidate))
}
