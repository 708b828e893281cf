package middleware

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"
	"time"

	candidatesService "github.com/IT-Nick/interview-assistant/internal/domain/candidates/service"
	interviewService "github.com/IT-Nick/interview-assistant/internal/domain/interview/service"
	questionsService "github.com/IT-Nick/interview-assistant/internal/domain/questions/service"
	"github.com/IT-Nick/interview-assistant/internal/domain/storage/repository"
	"github.com/IT-Nick/interview-assistant/internal/infra/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"
)

func TestRecover(t *testing.T) {
	var recovered error
	mw := Recover(func(err error, _ tele.Context) { recovered = err })

	err := mw(func(tele.Context) error { panic("boom") })(tele.NewContext(nil, tele.Update{}))
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, err, recovered)

	sentinel := errors.New("handler error")
	err = mw(func(tele.Context) error { return sentinel })(tele.NewContext(nil, tele.Update{}))
	assert.ErrorIs(t, err, sentinel)

	err = Recover()(func(tele.Context) error { panic(42) })(tele.NewContext(nil, tele.Update{}))
	assert.EqualError(t, err, "panic: 42")
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	called := false
	mw := Logger(log.New(&buf, "", 0))

	err := mw(func(tele.Context) error {
		called = true
		return nil
	})(tele.NewContext(nil, tele.Update{ID: 77}))

	require.NoError(t, err)
	assert.True(t, called)
	assert.Contains(t, buf.String(), `"update_id": 77`)
}

func TestDebugMessage(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSessionStore(kv.NewMemoryStore())
	manager := interviewService.NewManager(repo,
		candidatesService.NewLedger(ctx, repo),
		questionsService.NewBankService(ctx, repo),
		questionsService.NewSelector(1),
		interviewService.Options{TickInterval: time.Hour},
	)
	t.Cleanup(manager.Close)

	c := tele.NewContext(nil, tele.Update{Message: &tele.Message{
		Text:   "hello",
		Sender: &tele.User{ID: 5, FirstName: "Ann"},
	}})
	assert.Equal(t, "DEBUG: User: Ann (ID: 5), State: no active interview, Action: Message: hello", DebugMessage(c, manager))

	snap, err := manager.Start(ctx, "Ann")
	require.NoError(t, err)
	msg := DebugMessage(c, manager)
	assert.Contains(t, msg, "interview "+snap.ID+", question 1/3, 20s left")
}
