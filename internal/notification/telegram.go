package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rachmurali02/social-app/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyInvited(ctx context.Context, user *domain.User, meetup *domain.Meetup) {
	text := fmt.Sprintf(
		"*You are invited to a meetup!*\n\n"+"%s\n"+"When: %s\n\n"+"Open the app to confirm or decline.",
		describePlace(meetup.SelectedOption), orDash(meetup.Preferences.Time),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyMeetupConfirmed(ctx context.Context, user *domain.User, meetup *domain.Meetup) {
	text := fmt.Sprintf(
		"*Meetup confirmed!*\n\n"+"%s\n"+"When: %s",
		describePlace(meetup.SelectedOption), orDash(meetup.Preferences.Time),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyAllDeclined(ctx context.Context, user *domain.User, meetup *domain.Meetup) {
	text := fmt.Sprintf(
		"*Nobody can make it*\n\n"+"Everyone declined the meetup at %s. Try another place or time.",
		escape(meetup.SelectedOption.Name),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func describePlace(o domain.Option) string {
	if o.Address == "" {
		return "Place: " + escape(o.Name)
	}
	return fmt.Sprintf("Place: %s (%s)", escape(o.Name), escape(o.Address))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return escape(s)
}

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

// escape neutralises legacy Markdown control characters in user-supplied text.
func escape(s string) string {
	return markdownEscaper.Replace(s)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
