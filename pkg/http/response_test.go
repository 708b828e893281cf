package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IT-Nick/interview-assistant/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&model.ValidationError{Field: "name", Message: "required"}, http.StatusBadRequest},
		{model.ErrSessionActive, http.StatusConflict},
		{fmt.Errorf("wrapped: %w", model.ErrSessionPending), http.StatusConflict},
		{model.ErrNoSession, http.StatusNotFound},
		{&model.InsufficientQuestionsError{Tier: model.TierHard, Need: 2}, http.StatusUnprocessableEntity},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, StatusFor(c.err), c.err.Error())
	}
}

func TestErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	ErrorResponse(rec, http.StatusTeapot, "short and stout")

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "short and stout", body.Error)
}
