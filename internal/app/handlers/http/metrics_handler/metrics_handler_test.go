package metrics_handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	candidatesService "github.com/IT-Nick/interview-assistant/internal/domain/candidates/service"
	interviewService "github.com/IT-Nick/interview-assistant/internal/domain/interview/service"
	questionsService "github.com/IT-Nick/interview-assistant/internal/domain/questions/service"
	"github.com/IT-Nick/interview-assistant/internal/domain/storage/repository"
	"github.com/IT-Nick/interview-assistant/internal/infra/kv"
	"github.com/IT-Nick/interview-assistant/internal/infra/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsHandler(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSessionStore(kv.NewMemoryStore())
	manager := interviewService.NewManager(repo,
		candidatesService.NewLedger(ctx, repo),
		questionsService.NewBankService(ctx, repo),
		questionsService.NewSelector(1),
		interviewService.Options{TickInterval: time.Hour},
	)
	t.Cleanup(manager.Close)

	_, err := manager.Start(ctx, "Ann")
	require.NoError(t, err)
	_, err = manager.Submit(ctx, 0, "answer")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	NewMetricsHandler(manager).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot metrics.Snapshot
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&snapshot))
	assert.Equal(t, int64(1), snapshot.InterviewsStarted)
	assert.Equal(t, int64(1), snapshot.AnswersSubmitted)
	assert.Equal(t, int64(0), snapshot.AnswersTimedOut)
}
