package service

import (
	"errors"
	"fmt"

	"wordcards/internal/domain"

	"go.uber.org/zap"
)

// ErrNoPendingDialog is returned when dialog input arrives with no dialog in progress
var ErrNoPendingDialog = errors.New("no pending dialog")

// QuizService drives quiz questions and word commands for every user
type QuizService struct {
	vocab    *VocabularyService
	sessions SessionStore
	rnd      RandomSource
	logger   *zap.Logger
}

// NewQuizService creates a new quiz service
func NewQuizService(vocab *VocabularyService, sessions SessionStore, rnd RandomSource, logger *zap.Logger) *QuizService {
	return &QuizService{
		vocab:    vocab,
		sessions: sessions,
		rnd:      rnd,
		logger:   logger,
	}
}

// NextQuestion builds a new question for the user, replacing any active one.
// When no question can be built the previous one is dropped as well.
func (s *QuizService) NextQuestion(telegramID int64) (domain.QuestionView, error) {
	quiz, buildErr := s.buildQuestion(telegramID)

	var view domain.QuestionView
	err := s.sessions.Update(telegramID, func(sess *Session) error {
		sess.Quiz = quiz
		if quiz != nil {
			view = quiz.View()
		}
		return nil
	})
	if buildErr != nil {
		return domain.QuestionView{}, buildErr
	}
	return view, err
}

func (s *QuizService) buildQuestion(telegramID int64) (*domain.QuizSession, error) {
	user, err := s.vocab.EnsureUser(telegramID)
	if err != nil {
		return nil, err
	}

	linked, err := s.vocab.LinkCatalogDefaults(user.ID)
	if err != nil {
		return nil, err
	}
	if linked > 0 {
		s.logger.Info("Catalog words linked",
			zap.Int64("user_id", telegramID),
			zap.Int64("linked", linked),
		)
	}

	entry, err := s.vocab.PickRandomEntry(user.ID)
	if errors.Is(err, domain.ErrEmpty) {
		return nil, fmt.Errorf("%w: %v", domain.ErrNoWordsAvailable, err)
	}
	if err != nil {
		return nil, err
	}

	distractors, err := s.vocab.SampleOtherTranslations(entry.Translation, domain.DistractorCount)
	if err != nil {
		return nil, err
	}

	quiz, err := domain.BeginQuiz(entry.Word, entry.Translation, distractors)
	if err != nil {
		return nil, err
	}
	quiz.Shuffle(shuffler(s.rnd))
	return quiz, nil
}

// HandleAnswer checks an answer against the user's active question
func (s *QuizService) HandleAnswer(telegramID int64, text string) (domain.Outcome, error) {
	var outcome domain.Outcome
	err := s.sessions.Update(telegramID, func(sess *Session) error {
		var err error
		outcome, err = sess.Quiz.Submit(text)
		return err
	})
	if err != nil {
		return domain.OutcomeIncorrect, err
	}

	s.logger.Debug("Answer checked",
		zap.Int64("user_id", telegramID),
		zap.Stringer("outcome", outcome),
	)
	return outcome, nil
}

// ActiveQuestion returns the question the user is answering, with tried options marked
func (s *QuizService) ActiveQuestion(telegramID int64) (domain.QuestionView, error) {
	var view domain.QuestionView
	err := s.sessions.Update(telegramID, func(sess *Session) error {
		if sess.Quiz.State() != domain.QuizAwaitingAnswer {
			return domain.ErrNoActiveSession
		}
		view = sess.Quiz.View()
		return nil
	})
	return view, err
}

// AddWordCommand adds a custom word to the user's vocabulary
func (s *QuizService) AddWordCommand(telegramID int64, word, translation string) error {
	user, err := s.vocab.EnsureUser(telegramID)
	if err != nil {
		return err
	}
	if err := s.vocab.AddWord(user.ID, word, translation); err != nil {
		return err
	}

	s.logger.Info("Word added",
		zap.Int64("user_id", telegramID),
		zap.String("word", word),
		zap.String("translation", translation),
	)
	return nil
}

// DeleteWordCommand removes a word from the user's vocabulary
func (s *QuizService) DeleteWordCommand(telegramID int64, word string) error {
	user, err := s.vocab.EnsureUser(telegramID)
	if err != nil {
		return err
	}
	if err := s.vocab.DeleteWord(user.ID, word); err != nil {
		return err
	}

	s.logger.Info("Word deleted",
		zap.Int64("user_id", telegramID),
		zap.String("word", word),
	)
	return nil
}
