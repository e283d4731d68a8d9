package handler

import (
	"errors"

	"wordcards/internal/domain"
	"wordcards/internal/middleware"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleNext shows a new card, dropping any unfinished dialog
func (h *Handler) handleNext(c tele.Context) error {
	h.quiz.CancelDialog(c.Sender().ID)
	return h.sendQuestion(c)
}

// sendQuestion builds the next question and shows it with answer buttons
func (h *Handler) sendQuestion(c tele.Context) error {
	userID := c.Sender().ID

	view, err := h.quiz.NextQuestion(userID)
	if err != nil {
		h.logger.Error("Failed to build question",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send(errorText(err, ""), menuMarkup())
	}

	return c.Send(questionText(view), quizMarkup(view))
}

// handleAnswer checks text as an answer to the active question
func (h *Handler) handleAnswer(c tele.Context, text string) error {
	userID := c.Sender().ID
	answer := stripTriedMark(text)

	// The session goes idle on a correct answer, so keep the question for the reply
	view, err := h.quiz.ActiveQuestion(userID)
	if errors.Is(err, domain.ErrNoActiveSession) {
		return c.Send(msgNoActiveSession, menuMarkup())
	}
	if err != nil {
		return h.sendError(c, err, "")
	}

	outcome, err := h.quiz.HandleAnswer(userID, answer)
	if err != nil {
		return h.sendError(c, err, "")
	}

	if outcome == domain.OutcomeCorrect {
		if err := c.Send(correctText(view)); err != nil {
			return err
		}
		return h.sendQuestion(c)
	}

	view, err = h.quiz.ActiveQuestion(userID)
	if err != nil {
		return h.sendError(c, err, "")
	}
	return c.Send(incorrectText(view), quizMarkup(view))
}

// sendError logs err and reports it to the user
func (h *Handler) sendError(c tele.Context, err error, word string) error {
	h.logger.Warn("Request failed",
		zap.String("request_id", middleware.RequestID(c)),
		zap.Int64("user_id", c.Sender().ID),
		zap.String("word", word),
		zap.Error(err),
	)
	return c.Send(errorText(err, word))
}
