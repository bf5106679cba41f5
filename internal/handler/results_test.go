package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseAssign_Go/internal/domain"
)

func TestResultsHandler(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/results", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sessions":[]}`, w.Body.String())

	require.NoError(t, env.results.SaveSession(context.Background(), &domain.SessionRecord{
		Code:      "ABC234",
		Mode:      domain.ModeGreedy,
		UpdatedAt: time.Now(),
	}))

	w = env.do(t, http.MethodGet, "/results", "", nil)
	assert.JSONEq(t, `{"sessions":["ABC234"]}`, w.Body.String())

	w = env.do(t, http.MethodGet, "/results/ABC234", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ABC234", decode[domain.SessionRecord](t, w).Code)

	w = env.do(t, http.MethodGet, "/results/MISSING", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgRecordNotFoundError)
}
