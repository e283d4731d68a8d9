package handler

import (
	"errors"
	"fmt"
	"strings"

	"wordcards/internal/domain"
)

const (
	msgGreeting        = "Привет! Давай учить английский!"
	msgEnterWord       = "Введите слово:"
	msgEnterTranslate  = "Введите перевод:"
	msgEnterDelete     = "Введите слово для удаления:"
	msgWordAdded       = "Слово добавлено!"
	msgCancelled       = "Отменено."
	msgGenericError    = "Произошла ошибка. Попробуйте позже."
	msgUnknownCommand  = "Не знаю такой команды. Нажмите /cards, чтобы получить карточку."
	msgInvalidWord     = "Слово и перевод не должны быть пустыми и длиннее 64 символов."
	msgNoWords         = "Извините, не удалось найти слова для изучения."
	msgTooFewWords     = "В словаре слишком мало слов, чтобы составить варианты ответа."
	msgNoActiveSession = "Нажмите «Дальше ⏭», чтобы получить новую карточку."
)

func questionText(view domain.QuestionView) string {
	return fmt.Sprintf("Выберите перевод:\n🇷🇺 %s", view.Prompt)
}

func correctText(view domain.QuestionView) string {
	return fmt.Sprintf("Это правильный ответ! 👍\n%s -> %s", view.Prompt, view.CorrectOption)
}

func incorrectText(view domain.QuestionView) string {
	return fmt.Sprintf("Ошибка!\nПопробуйте ещё раз 🇷🇺%s", view.Prompt)
}

func wordDeletedText(word string) string {
	return fmt.Sprintf("Слово \"%s\" удалено.", word)
}

// optionLabel is the button text for an answer option
func optionLabel(o domain.Option) string {
	if o.Tried {
		return o.Text + " " + triedMark
	}
	return o.Text
}

// stripTriedMark turns a tapped button label back into the option text
func stripTriedMark(text string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), triedMark))
}

// errorText maps a core error to the message shown to the user
func errorText(err error, word string) string {
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		return fmt.Sprintf("Ошибка! Слово \"%s\" уже есть в базе данных.", word)
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Sprintf("Ошибка! Слово \"%s\" отсутствует в базе данных.", word)
	case errors.Is(err, domain.ErrInvalidInput):
		return msgInvalidWord
	case errors.Is(err, domain.ErrNoWordsAvailable), errors.Is(err, domain.ErrEmpty):
		return msgNoWords
	case errors.Is(err, domain.ErrInsufficientData):
		return msgTooFewWords
	case errors.Is(err, domain.ErrNoActiveSession):
		return msgNoActiveSession
	}
	return msgGenericError
}
