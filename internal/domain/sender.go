package domain

// MessageSender — отправка сообщений пользователю; реализуется адаптером Telegram.
type MessageSender interface {
	SendText(chatID int64, text string) error
}
