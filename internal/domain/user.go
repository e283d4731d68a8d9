package domain

import "time"

// User represents a bot user
type User struct {
	ID         int64
	TelegramID int64
	CreatedAt  time.Time
}

// DialogState represents the step of a multi-message command
type DialogState string

const (
	DialogIdle                 DialogState = "idle"
	DialogAwaitingWordToAdd    DialogState = "awaiting_word_to_add"
	DialogAwaitingTranslation  DialogState = "awaiting_translation"
	DialogAwaitingWordToDelete DialogState = "awaiting_word_to_delete"
)

// DialogData holds temporary data for user's current dialog
type DialogData struct {
	State       DialogState
	PendingWord string
}

// Pending reports whether the next free text belongs to the dialog
func (d DialogData) Pending() bool {
	return d.State != "" && d.State != DialogIdle
}
