package candidates_handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	candidatesService "github.com/IT-Nick/interview-assistant/internal/domain/candidates/service"
	"github.com/IT-Nick/interview-assistant/internal/domain/dto"
	"github.com/IT-Nick/interview-assistant/internal/domain/model"
	"github.com/IT-Nick/interview-assistant/internal/domain/storage/repository"
	"github.com/IT-Nick/interview-assistant/internal/infra/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMux(t *testing.T) (*http.ServeMux, *candidatesService.Ledger) {
	t.Helper()
	ctx := context.Background()
	ledger := candidatesService.NewLedger(ctx, repository.NewSessionStore(kv.NewMemoryStore()))
	for _, name := range []string{"Ann", "Ann"} {
		score := 60
		require.NoError(t, ledger.Append(ctx, model.Candidate{
			Name:    name,
			Answers: []model.Answer{{Question: "q", Answer: "a"}},
			Score:   &score,
			Summary: "Candidate Ann scored 60%.",
		}))
	}

	mx := http.NewServeMux()
	mx.Handle("GET /candidates", NewCandidatesHandler(ledger))
	mx.Handle("GET /candidates/{id}", NewCandidateDetailHandler(ledger))
	return mx, ledger
}

func TestCandidatesHandler_List(t *testing.T) {
	mx, _ := newMux(t)
	rec := httptest.NewRecorder()
	mx.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/candidates", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.CandidatesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "Ann", resp.Candidates[1].Name)
	assert.Equal(t, 60, *resp.Candidates[0].Score)
}

func TestCandidateDetailHandler(t *testing.T) {
	mx, ledger := newMux(t)
	id := ledger.List()[1].ID

	rec := httptest.NewRecorder()
	mx.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/candidates/"+id, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var detail dto.CandidateDetail
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&detail))
	assert.Equal(t, id, detail.ID)
	assert.Equal(t, []model.Answer{{Question: "q", Answer: "a"}}, detail.Answers)

	rec = httptest.NewRecorder()
	mx.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/candidates/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
