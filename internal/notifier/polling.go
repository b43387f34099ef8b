package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// CommandHandler turns a chat message into a reply; "" sends nothing.
type CommandHandler func(text string) string

// pollTimeout is the long-poll window asked of getUpdates.
const pollTimeout = 30

type chatMessage struct {
	Text string `json:"text"`
	Chat struct {
		ID int64 `json:"id"`
	} `json:"chat"`
}

type telegramUpdate struct {
	UpdateID int          `json:"update_id"`
	Message  *chatMessage `json:"message"`
}

// StartPolling long-polls getUpdates and answers messages from the
// configured chat. Blocks until ctx is cancelled.
func (t *TelegramNotifier) StartPolling(ctx context.Context, handler CommandHandler) {
	client := &http.Client{Timeout: (pollTimeout + 5) * time.Second}
	if t.Client != nil {
		client.Transport = t.Client.Transport
	}

	offset := 0
	for {
		updates, err := t.getUpdates(ctx, client, offset)
		if ctx.Err() != nil {
			log.Println("[INFO] Telegram polling stopped")
			return
		}
		if err != nil {
			var apiErr *APIError
			if errors.As(err, &apiErr) && apiErr.Permanent() {
				log.Printf("[ERROR] polling rejected, giving up: %v", err)
				return
			}
			log.Printf("[WARN] polling failed: %v", err)
			if sleepCtx(ctx, 5*time.Second) != nil {
				log.Println("[INFO] Telegram polling stopped")
				return
			}
			continue
		}

		for _, u := range updates {
			offset = u.UpdateID + 1
			t.answer(ctx, u.Message, handler)
		}
	}
}

func (t *TelegramNotifier) getUpdates(ctx context.Context, client *http.Client, offset int) ([]telegramUpdate, error) {
	method := fmt.Sprintf("getUpdates?offset=%d&timeout=%d", offset, pollTimeout)
	raw, err := t.call(ctx, client, http.MethodGet, method, nil)
	if err != nil {
		return nil, err
	}
	var updates []telegramUpdate
	if err := json.Unmarshal(raw, &updates); err != nil {
		return nil, fmt.Errorf("decode updates: %w", err)
	}
	return updates, nil
}

func (t *TelegramNotifier) answer(ctx context.Context, msg *chatMessage, handler CommandHandler) {
	if msg == nil {
		return
	}
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}
	if !t.allowed(msg.Chat.ID) {
		log.Printf("[WARN] ignoring message from chat %d", msg.Chat.ID)
		return
	}
	log.Printf("[INFO] received command: %s", text)
	reply := handler(text)
	if reply == "" {
		return
	}
	if err := t.SendWithRetry(ctx, reply, 2); err != nil {
		log.Printf("[ERROR] send reply: %v", err)
	}
}

// allowed restricts the bot to its own chat when one is configured.
func (t *TelegramNotifier) allowed(chatID int64) bool {
	return t.ChatID == "" || strconv.FormatInt(chatID, 10) == t.ChatID
}
