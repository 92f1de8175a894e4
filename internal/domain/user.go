package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	ID             string
	Name           string
	TelegramChatID *int64
}
