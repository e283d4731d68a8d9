package service

import (
	"fmt"

	"wordcards/internal/domain"

	"github.com/go-playground/validator/v10"
)

// maxWordLength bounds words and translations; Telegram buttons get unreadable past it
const maxWordLength = 64

var validate = validator.New()

type wordInput struct {
	Word        string `validate:"required,max=64"`
	Translation string `validate:"required,max=64"`
}

func validateWordPair(word, translation string) error {
	if err := validate.Struct(wordInput{Word: word, Translation: translation}); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func validateWord(word string) error {
	if err := validate.Var(word, fmt.Sprintf("required,max=%d", maxWordLength)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
