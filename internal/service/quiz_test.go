package service

import (
	"fmt"
	"testing"

	"wordcards/internal/domain"
	"wordcards/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryQuizService(rnd RandomSource, pairs ...domain.WordPair) (*QuizService, *testutil.MemoryVocabulary) {
	vocabService, _, vocab := newMemoryVocabularyService(rnd, pairs...)
	return NewQuizService(vocabService, NewMemorySessionStore(), rnd, testutil.NewTestLogger()), vocab
}

func TestQuizService_NextQuestion_Deterministic(t *testing.T) {
	service, vocab := newMemoryQuizService(testutil.StaticRand(0), testCatalog...)

	view, err := service.NextQuestion(42)

	require.NoError(t, err)
	assert.Equal(t, "Лес", view.Prompt)
	assert.Equal(t, "Forest", view.CorrectOption)
	assert.Equal(t, []string{"Morning", "Evening", "Sky", "Forest"}, view.OptionTexts())

	user, _ := vocab.EnsureUser(42)
	words, _ := vocab.GetWords(user.ID)
	assert.Len(t, words, 4)
}

func TestQuizService_NextQuestion_OptionsProperty(t *testing.T) {
	service, _ := newMemoryQuizService(NewRandomSource(1), domain.DefaultCatalog...)
	translations := map[string]string{}
	for _, p := range domain.DefaultCatalog {
		translations[p.Word] = p.Translation
	}

	for i := 0; i < 100; i++ {
		view, err := service.NextQuestion(42)
		require.NoError(t, err)
		require.Len(t, view.Options, 4)

		assert.Equal(t, translations[view.Prompt], view.CorrectOption)

		seen := map[string]int{}
		for _, o := range view.OptionTexts() {
			seen[o]++
		}
		assert.Len(t, seen, 4, "options must be pairwise distinct")
		assert.Equal(t, 1, seen[view.CorrectOption])
	}
}

func TestQuizService_NextQuestion_Errors(t *testing.T) {
	t.Run("empty catalog", func(t *testing.T) {
		service, _ := newMemoryQuizService(testutil.StaticRand(0))

		_, err := service.NextQuestion(42)

		assert.ErrorIs(t, err, domain.ErrNoWordsAvailable)
	})

	t.Run("catalog too small for distractors", func(t *testing.T) {
		service, _ := newMemoryQuizService(testutil.StaticRand(0), testCatalog[:3]...)

		_, err := service.NextQuestion(42)

		assert.ErrorIs(t, err, domain.ErrInsufficientData)
	})

	t.Run("user storage failure", func(t *testing.T) {
		mockUsers := new(testutil.MockUserRepository)
		mockUsers.On("EnsureUser", int64(42)).Return(nil, &domain.StorageError{Op: "ensure user", Err: fmt.Errorf("db down")})
		vocab := NewVocabularyService(mockUsers, new(testutil.MockCatalogRepository), new(testutil.MockVocabularyRepository), testutil.StaticRand(0))
		service := NewQuizService(vocab, NewMemorySessionStore(), testutil.StaticRand(0), testutil.NewTestLogger())

		_, err := service.NextQuestion(42)

		assert.ErrorIs(t, err, domain.ErrStorageFailure)
		mockUsers.AssertExpectations(t)
	})

	t.Run("link failure", func(t *testing.T) {
		mockUsers := new(testutil.MockUserRepository)
		mockUsers.On("EnsureUser", int64(42)).Return(testutil.NewTestUser(7, 42), nil)
		mockVocab := new(testutil.MockVocabularyRepository)
		mockVocab.On("LinkCatalogWords", int64(7)).Return(int64(0), &domain.StorageError{Op: "link", Err: fmt.Errorf("deadlock")})
		vocab := NewVocabularyService(mockUsers, new(testutil.MockCatalogRepository), mockVocab, testutil.StaticRand(0))
		service := NewQuizService(vocab, NewMemorySessionStore(), testutil.StaticRand(0), testutil.NewTestLogger())

		_, err := service.NextQuestion(42)

		assert.ErrorIs(t, err, domain.ErrStorageFailure)
		mockVocab.AssertExpectations(t)
	})
}

func TestQuizService_NextQuestion_FailureDropsPreviousQuestion(t *testing.T) {
	service, _ := newMemoryQuizService(testutil.StaticRand(0), testCatalog...)

	view, err := service.NextQuestion(42)
	require.NoError(t, err)
	require.Equal(t, "Лес", view.Prompt)

	for _, p := range testCatalog {
		require.NoError(t, service.DeleteWordCommand(42, p.Word))
	}

	_, err = service.NextQuestion(42)
	require.ErrorIs(t, err, domain.ErrNoWordsAvailable)

	outcome, err := service.HandleAnswer(42, "Forest")
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
	assert.Equal(t, domain.OutcomeIncorrect, outcome)

	_, err = service.ActiveQuestion(42)
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestQuizService_Scenario(t *testing.T) {
	service, _ := newMemoryQuizService(NewRandomSource(3), testCatalog...)

	view, err := service.NextQuestion(42)
	require.NoError(t, err)

	var wrong string
	for _, o := range view.OptionTexts() {
		if o != view.CorrectOption {
			wrong = o
			break
		}
	}

	outcome, err := service.HandleAnswer(42, wrong)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeIncorrect, outcome)

	active, err := service.ActiveQuestion(42)
	require.NoError(t, err)
	assert.Equal(t, view.Prompt, active.Prompt)
	for _, o := range active.Options {
		assert.Equal(t, o.Text == wrong, o.Tried, o.Text)
	}

	outcome, err = service.HandleAnswer(42, view.CorrectOption)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCorrect, outcome)

	_, err = service.ActiveQuestion(42)
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestQuizService_HandleAnswer_NoSession(t *testing.T) {
	service, _ := newMemoryQuizService(testutil.StaticRand(0), testCatalog...)

	outcome, err := service.HandleAnswer(42, "Forest")

	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
	assert.Equal(t, domain.OutcomeIncorrect, outcome)
}

func TestQuizService_SessionsAreIsolated(t *testing.T) {
	service, _ := newMemoryQuizService(testutil.StaticRand(0), testCatalog...)

	_, err := service.NextQuestion(42)
	require.NoError(t, err)

	_, err = service.HandleAnswer(43, "Forest")
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestQuizService_NextQuestionReplacesSession(t *testing.T) {
	service, _ := newMemoryQuizService(testutil.StaticRand(0), testCatalog...)

	_, err := service.NextQuestion(42)
	require.NoError(t, err)
	_, err = service.HandleAnswer(42, "Morning")
	require.NoError(t, err)

	_, err = service.NextQuestion(42)
	require.NoError(t, err)

	active, err := service.ActiveQuestion(42)
	require.NoError(t, err)
	for _, o := range active.Options {
		assert.False(t, o.Tried)
	}
}

func TestQuizService_AddWordCommand(t *testing.T) {
	service, vocab := newMemoryQuizService(testutil.StaticRand(0), testCatalog...)

	require.NoError(t, service.AddWordCommand(42, "Облако", "Cloud"))
	err := service.AddWordCommand(42, "Облако", "Cloud")

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	user, _ := vocab.EnsureUser(42)
	words, _ := vocab.GetWords(user.ID)
	assert.Len(t, words, 1)
}

func TestQuizService_DeleteWordCommand(t *testing.T) {
	service, _ := newMemoryQuizService(testutil.StaticRand(0), testCatalog...)
	_, err := service.NextQuestion(42)
	require.NoError(t, err)

	require.NoError(t, service.DeleteWordCommand(42, "Небо"))
	err = service.DeleteWordCommand(42, "Небо")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuizService_DeletedCatalogWordStaysDeleted(t *testing.T) {
	service, _ := newMemoryQuizService(NewRandomSource(5), testCatalog...)
	_, err := service.NextQuestion(42)
	require.NoError(t, err)
	require.NoError(t, service.DeleteWordCommand(42, "Лес"))

	// linking on every question must not bring the word back
	for i := 0; i < 50; i++ {
		view, err := service.NextQuestion(42)
		require.NoError(t, err)
		assert.NotEqual(t, "Лес", view.Prompt)
	}

	require.NoError(t, service.AddWordCommand(42, "Лес", "Forest"))
	seen := false
	for i := 0; i < 100 && !seen; i++ {
		view, err := service.NextQuestion(42)
		require.NoError(t, err)
		seen = view.Prompt == "Лес"
	}
	assert.True(t, seen)
}
