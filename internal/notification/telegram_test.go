package notification

import (
	"context"
	"testing"

	"github.com/rachmurali02/social-app/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestNewTelegramNotifier_EmptyTokenDisables(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))

	require.NoError(t, err)
	assert.Nil(t, n.bot)
}

func TestTelegramNotifier_DisabledBotSkipsSend(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)

	chatID := int64(42)
	user := &domain.User{ID: "u1", TelegramChatID: &chatID}
	meetup := &domain.Meetup{SelectedOption: domain.Option{Name: "Cafe A"}}

	assert.NotPanics(t, func() {
		n.NotifyInvited(context.Background(), user, meetup)
		n.NotifyMeetupConfirmed(context.Background(), user, meetup)
		n.NotifyAllDeclined(context.Background(), user, meetup)
	})
}

func TestDescribePlace(t *testing.T) {
	assert.Equal(t, "Place: Cafe A", describePlace(domain.Option{Name: "Cafe A"}))
	assert.Equal(t, "Place: Cafe\\_A (Marina Walk)", describePlace(domain.Option{Name: "Cafe_A", Address: "Marina Walk"}))
}

func TestOrDash(t *testing.T) {
	assert.Equal(t, "-", orDash(""))
	assert.Equal(t, "4pm", orDash("4pm"))
}
