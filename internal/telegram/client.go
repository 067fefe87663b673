// Package telegram sends the run summary via the Telegram Bot API.
//
// The client formats the collected statistics into a MarkdownV2 message and
// delivers it with a bounded retry. Notification is optional; a failed send
// never fails the run.
package telegram

import (
	"fmt"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dmastrih/refactiring-wiki-code/internal/stats"
)

// Client handles Telegram notifications
type Client struct {
	bot            *tgbotapi.BotAPI
	chatID         int64
	maxRetries     int
	retryDelayBase time.Duration
}

// NewClient creates a new Telegram client
func NewClient(botToken, chatID string, maxRetries int, retryDelayBase time.Duration) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	chatIDInt, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid chat ID: %w", err)
	}

	if maxRetries <= 0 {
		maxRetries = 3
	}
	if retryDelayBase <= 0 {
		retryDelayBase = time.Second
	}

	return &Client{
		bot:            bot,
		chatID:         chatIDInt,
		maxRetries:     maxRetries,
		retryDelayBase: retryDelayBase,
	}, nil
}

// RunSummary carries the figures of one completed collection run.
type RunSummary struct {
	RunID      string
	Start      time.Time
	End        time.Time
	Stats      stats.Summary
	OutputPath string
}

// SendRunSummary sends the run summary message with retry.
func (c *Client) SendRunSummary(r RunSummary) error {
	msg := tgbotapi.NewMessage(c.chatID, formatRunSummary(r))
	msg.ParseMode = "MarkdownV2"

	var lastErr error
	for i := 0; i < c.maxRetries; i++ {
		_, err := c.bot.Send(msg)
		if err == nil {
			return nil
		}
		lastErr = err
		time.Sleep(c.retryDelayBase * time.Duration(i+1))
	}

	return fmt.Errorf("failed to send message after %d retries: %w", c.maxRetries, lastErr)
}

// formatRunSummary formats one run into a Telegram message
func formatRunSummary(r RunSummary) string {
	message := "*Top articles report ready*\n\n"
	message += fmt.Sprintf("Run: `%s`\n", escapeMarkdownV2(r.RunID))
	message += fmt.Sprintf("Range: %s to %s\n",
		escapeMarkdownV2(r.Start.Format("2006-01-02")),
		escapeMarkdownV2(r.End.Format("2006-01-02")))
	message += fmt.Sprintf("Mean views: %d\n", r.Stats.MeanViews)
	message += fmt.Sprintf("Max views: %d\n", r.Stats.MaxViews)
	message += fmt.Sprintf("Articles: %d\n", r.Stats.UniqueArticles)
	message += fmt.Sprintf("Chart: %s\n", escapeMarkdownV2(r.OutputPath))
	return message
}

// escapeMarkdownV2 escapes special characters for Telegram MarkdownV2
func escapeMarkdownV2(text string) string {
	result := ""
	for _, char := range text {
		switch char {
		case '_', '*', '[', ']', '(', ')', '~', '`', '>', '#', '+', '-', '=', '|', '{', '}', '.', '!':
			result += "\\" + string(char)
		default:
			result += string(char)
		}
	}
	return result
}
