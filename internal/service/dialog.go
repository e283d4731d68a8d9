package service

import (
	"wordcards/internal/domain"
)

// DialogStep describes a transition made by SubmitDialogInput
type DialogStep struct {
	From domain.DialogState
	To   domain.DialogState
	// Word is the word being added or deleted
	Word string
}

// Committed reports whether the step ended the dialog by writing to storage
func (d DialogStep) Committed() bool {
	return d.From == domain.DialogAwaitingTranslation || d.From == domain.DialogAwaitingWordToDelete
}

// Dialog returns the user's pending dialog
func (s *QuizService) Dialog(telegramID int64) domain.DialogData {
	var dialog domain.DialogData
	_ = s.sessions.Update(telegramID, func(sess *Session) error {
		dialog = sess.Dialog
		return nil
	})
	return dialog
}

// BeginAddWord starts the add-word dialog: word first, then translation
func (s *QuizService) BeginAddWord(telegramID int64) {
	s.setDialog(telegramID, domain.DialogData{State: domain.DialogAwaitingWordToAdd})
}

// BeginDeleteWord starts the delete-word dialog
func (s *QuizService) BeginDeleteWord(telegramID int64) {
	s.setDialog(telegramID, domain.DialogData{State: domain.DialogAwaitingWordToDelete})
}

// CancelDialog drops any pending dialog. The active question is kept.
func (s *QuizService) CancelDialog(telegramID int64) {
	s.setDialog(telegramID, domain.DialogData{State: domain.DialogIdle})
}

// SubmitDialogInput advances the pending dialog with the user's text.
// Committing steps always end the dialog, even when the write fails.
func (s *QuizService) SubmitDialogInput(telegramID int64, text string) (DialogStep, error) {
	dialog := s.Dialog(telegramID)
	step := DialogStep{From: dialog.State, To: domain.DialogIdle}

	switch dialog.State {
	case domain.DialogAwaitingWordToAdd:
		word := domain.CleanWord(text)
		if err := validateWord(word); err != nil {
			step.To = dialog.State
			return step, err
		}
		step.To = domain.DialogAwaitingTranslation
		step.Word = word
		s.setDialog(telegramID, domain.DialogData{State: step.To, PendingWord: word})
		return step, nil

	case domain.DialogAwaitingTranslation:
		step.Word = dialog.PendingWord
		s.CancelDialog(telegramID)
		return step, s.AddWordCommand(telegramID, dialog.PendingWord, text)

	case domain.DialogAwaitingWordToDelete:
		step.Word = domain.CleanWord(text)
		s.CancelDialog(telegramID)
		return step, s.DeleteWordCommand(telegramID, text)
	}

	step.From = domain.DialogIdle
	return step, ErrNoPendingDialog
}

func (s *QuizService) setDialog(telegramID int64, dialog domain.DialogData) {
	_ = s.sessions.Update(telegramID, func(sess *Session) error {
		sess.Dialog = dialog
		return nil
	})
}
