// Package telegram delivers reminder notifications through a Telegram bot.
package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier sends messages to a fixed chat. It satisfies the task domain's
// Notifier interface.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier creates a Notifier for the given bot token and chat.
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: create bot: %w", err)
	}
	return &Notifier{bot: bot, chatID: chatID}, nil
}

// Notify sends one message with the title as a bold first line.
func (n *Notifier) Notify(ctx context.Context, title, body string) error {
	msg := tgbotapi.NewMessage(n.chatID, fmt.Sprintf("*%s*\n%s", escapeMarkdown(title), escapeMarkdown(body)))
	msg.ParseMode = tgbotapi.ModeMarkdown

	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram: send message: %w", err)
	}
	return nil
}

// escapeMarkdown escapes the characters Telegram's legacy Markdown parser
// treats specially.
func escapeMarkdown(s string) string {
	var out []rune
	for _, r := range s {
		switch r {
		case '*', '_', '`', '[':
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
