package metrics_handler

import (
	"net/http"

	interviewService "github.com/IT-Nick/interview-assistant/internal/domain/interview/service"
	httpError "github.com/IT-Nick/interview-assistant/pkg/http"
)

// MetricsHandler счетчики интервью в формате JSON
type MetricsHandler struct {
	manager *interviewService.Manager
}

func NewMetricsHandler(manager *interviewService.Manager) *MetricsHandler {
	return &MetricsHandler{manager: manager}
}

func (h *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpError.JSONResponse(w, http.StatusOK, h.manager.Metrics())
}
