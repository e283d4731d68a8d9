package domain

import "fmt"

// DistractorCount is the number of wrong options shown with every question
const DistractorCount = 3

// QuizState is the state of a quiz session
type QuizState string

const (
	QuizIdle           QuizState = "idle"
	QuizAwaitingAnswer QuizState = "awaiting_answer"
)

// Outcome is the result of a submitted answer
type Outcome int

const (
	OutcomeIncorrect Outcome = iota
	OutcomeCorrect
)

func (o Outcome) String() string {
	if o == OutcomeCorrect {
		return "correct"
	}
	return "incorrect"
}

// Option is one answer button of a question
type Option struct {
	Text  string
	Tried bool
}

// QuestionView is the data the transport renders for a question
type QuestionView struct {
	Prompt        string
	Options       []Option
	CorrectOption string
}

// OptionTexts returns option texts in display order
func (v QuestionView) OptionTexts() []string {
	texts := make([]string, len(v.Options))
	for i, o := range v.Options {
		texts[i] = o.Text
	}
	return texts
}

// QuizSession holds the active question of one user.
// Options always contain TargetWord exactly once.
type QuizSession struct {
	Prompt     string
	TargetWord string
	Options    []Option
	state      QuizState
}

// BeginQuiz starts a session awaiting targetWord as the answer to prompt.
// Distractors must be DistractorCount distinct strings, none equal to targetWord.
func BeginQuiz(prompt, targetWord string, distractors []string) (*QuizSession, error) {
	if len(distractors) != DistractorCount {
		return nil, fmt.Errorf("%w: want %d distractors, got %d", ErrInsufficientData, DistractorCount, len(distractors))
	}

	seen := map[string]bool{targetWord: true}
	options := []Option{{Text: targetWord}}
	for _, d := range distractors {
		if seen[d] {
			return nil, fmt.Errorf("%w: duplicate option %q", ErrInvalidInput, d)
		}
		seen[d] = true
		options = append(options, Option{Text: d})
	}

	return &QuizSession{
		Prompt:     prompt,
		TargetWord: targetWord,
		Options:    options,
		state:      QuizAwaitingAnswer,
	}, nil
}

// State returns the current session state
func (q *QuizSession) State() QuizState {
	if q == nil || q.state == "" {
		return QuizIdle
	}
	return q.state
}

// Shuffle reorders options. It has the signature of rand.Shuffle.
func (q *QuizSession) Shuffle(shuffle func(n int, swap func(i, j int))) {
	shuffle(len(q.Options), func(i, j int) {
		q.Options[i], q.Options[j] = q.Options[j], q.Options[i]
	})
}

// Submit checks an answer. The comparison is exact and case-sensitive.
// A wrong answer keeps the question active and marks the matching option as tried.
func (q *QuizSession) Submit(answer string) (Outcome, error) {
	if q.State() != QuizAwaitingAnswer {
		return OutcomeIncorrect, ErrNoActiveSession
	}

	if answer == q.TargetWord {
		q.state = QuizIdle
		return OutcomeCorrect, nil
	}

	for i := range q.Options {
		if q.Options[i].Text == answer {
			q.Options[i].Tried = true
			break
		}
	}
	return OutcomeIncorrect, nil
}

// View returns a copy of the session safe to hand to the transport
func (q *QuizSession) View() QuestionView {
	options := make([]Option, len(q.Options))
	copy(options, q.Options)
	return QuestionView{
		Prompt:        q.Prompt,
		Options:       options,
		CorrectOption: q.TargetWord,
	}
}
