package handler

import (
	"wordcards/internal/domain"
	"wordcards/internal/middleware"
	"wordcards/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot    *tele.Bot
	quiz   *service.QuizService
	logger *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, quiz *service.QuizService, logger *zap.Logger) *Handler {
	return &Handler{
		bot:    bot,
		quiz:   quiz,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Use(middleware.UpdateLogger(h.logger))

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/cards", h.handleNext)
	h.bot.Handle("/cancel", h.handleCancel)

	// Reply keyboard buttons are matched by their text
	h.bot.Handle(&btnNext, h.handleNext)
	h.bot.Handle(&btnAddWord, h.handleAddWord)
	h.bot.Handle(&btnDeleteWord, h.handleDeleteWord)
	h.bot.Handle(&btnCancel, h.handleCancel)

	// Answers and dialog input
	h.bot.Handle(tele.OnText, h.handleText)
}

// Reply keyboard buttons
var (
	btnNext       = tele.Btn{Text: "Дальше ⏭"}
	btnAddWord    = tele.Btn{Text: "Добавить слово ✚"}
	btnDeleteWord = tele.Btn{Text: "Удалить слово ❌"}
	btnCancel     = tele.Btn{Text: "Отмена ↩"}
)

// triedMark is appended to options already answered wrong.
// No command button may end with it.
const triedMark = "✖"

// commandButtons are shown under every question
func commandButtons() []tele.Btn {
	return []tele.Btn{btnNext, btnAddWord, btnDeleteWord}
}

// menuMarkup returns the keyboard shown when no question is active
func menuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(menu.Split(2, commandButtons())...)
	return menu
}

// cancelMarkup returns the keyboard shown while a dialog waits for input
func cancelMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(menu.Row(btnCancel))
	return menu
}

// quizMarkup returns answer options two per row followed by the commands
func quizMarkup(view domain.QuestionView) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}

	btns := make([]tele.Btn, 0, len(view.Options)+3)
	for _, o := range view.Options {
		btns = append(btns, tele.Btn{Text: optionLabel(o)})
	}
	btns = append(btns, commandButtons()...)

	menu.Reply(menu.Split(2, btns)...)
	return menu
}
