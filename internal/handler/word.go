package handler

import (
	"errors"
	"strings"

	"wordcards/internal/domain"
	"wordcards/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleAddWord starts the add-word dialog
func (h *Handler) handleAddWord(c tele.Context) error {
	h.quiz.BeginAddWord(c.Sender().ID)
	return c.Send(msgEnterWord, cancelMarkup())
}

// handleDeleteWord starts the delete-word dialog
func (h *Handler) handleDeleteWord(c tele.Context) error {
	h.quiz.BeginDeleteWord(c.Sender().ID)
	return c.Send(msgEnterDelete, cancelMarkup())
}

// handleCancel drops the pending dialog and returns to the active card if any
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID
	h.quiz.CancelDialog(userID)

	view, err := h.quiz.ActiveQuestion(userID)
	if err != nil {
		return c.Send(msgCancelled, menuMarkup())
	}
	return c.Send(questionText(view), quizMarkup(view))
}

// handleText routes plain text to the pending dialog or to the quiz
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())
	if strings.HasPrefix(text, "/") {
		return c.Send(msgUnknownCommand)
	}

	if h.quiz.Dialog(c.Sender().ID).Pending() {
		return h.handleDialogInput(c, text)
	}
	return h.handleAnswer(c, text)
}

// handleDialogInput feeds text to the add or delete dialog
func (h *Handler) handleDialogInput(c tele.Context, text string) error {
	userID := c.Sender().ID

	step, err := h.quiz.SubmitDialogInput(userID, text)
	if errors.Is(err, service.ErrNoPendingDialog) {
		return h.handleAnswer(c, text)
	}

	if !step.Committed() {
		if err != nil {
			return c.Send(errorText(err, step.Word), cancelMarkup())
		}
		return c.Send(msgEnterTranslate, cancelMarkup())
	}

	// A committed step always moves on to the next card
	if err != nil {
		if sendErr := h.sendError(c, err, step.Word); sendErr != nil {
			return sendErr
		}
		return h.sendQuestion(c)
	}

	done := msgWordAdded
	if step.From == domain.DialogAwaitingWordToDelete {
		done = wordDeletedText(step.Word)
	}
	if err := c.Send(done); err != nil {
		return err
	}

	h.logger.Debug("Dialog finished",
		zap.Int64("user_id", userID),
		zap.String("from", string(step.From)),
		zap.String("word", step.Word),
	)
	return h.sendQuestion(c)
}
