package examgen

import (
	"errors"
	"fmt"

	"github.com/Freeeeeet/admin_bot/internal/model"
)

var (
	ErrInsufficientQuestions = errors.New("insufficient questions")
	ErrInvalidCount          = errors.New("structure item count must be positive")
)

// InsufficientQuestionsError в пуле не хватает вопросов для элемента структуры
type InsufficientQuestionsError struct {
	Difficulty     model.Difficulty
	KnowledgeBlock string
	Requested      int
	Available      int
}

func (e *InsufficientQuestionsError) Error() string {
	return fmt.Sprintf("%s for difficulty %q and knowledge block %q: requested %d, available %d",
		ErrInsufficientQuestions, e.Difficulty, e.KnowledgeBlock, e.Requested, e.Available)
}

func (e *InsufficientQuestionsError) Is(target error) bool {
	return target == ErrInsufficientQuestions
}
