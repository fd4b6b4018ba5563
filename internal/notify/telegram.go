package notify

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// maxMessageLen bounds Telegram text payloads; incident reports are cut to
// fit rather than dropped.
const maxMessageLen = 4000

// Params carries the delivery identity read from the environment at startup.
type Params struct {
	Token  string
	ChatID string
}

// Telegram delivers text and chart images to one fixed chat through the
// Telegram Bot API. Both operations are independently fallible.
type Telegram struct {
	params Params
	client *resty.Client
}

func NewTelegram(params Params, timeout time.Duration) *Telegram {
	client := resty.New()
	client.SetTimeout(timeout)
	return &Telegram{params: params, client: client}
}

func (t *Telegram) SendText(ctx context.Context, msg string) error {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", t.params.Token)

	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"chat_id": t.params.ChatID, "text": msg}).
		Post(url)
	if err != nil {
		return fmt.Errorf("telegram sendMessage: %w", err)
	}
	if resp.StatusCode() >= 300 {
		return fmt.Errorf("telegram sendMessage: http %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

func (t *Telegram) SendPhoto(ctx context.Context, png []byte, caption string) error {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendPhoto", t.params.Token)

	resp, err := t.client.R().
		SetContext(ctx).
		SetFileReader("photo", "chart.png", bytes.NewReader(png)).
		SetFormData(map[string]string{"chat_id": t.params.ChatID, "caption": caption}).
		Post(url)
	if err != nil {
		return fmt.Errorf("telegram sendPhoto: %w", err)
	}
	if resp.StatusCode() >= 300 {
		return fmt.Errorf("telegram sendPhoto: http %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// Truncate bounds a message to the channel's size limit, rune-safe.
func Truncate(msg string) string {
	r := []rune(msg)
	if len(r) <= maxMessageLen {
		return msg
	}
	return string(r[:maxMessageLen])
}
