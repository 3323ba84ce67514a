// question.go
package models

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Category is one of the six scored cognitive dimensions.
type Category string

const (
	CategoryMemory       Category = "memory"
	CategoryLanguage     Category = "language"
	CategoryCalculation  Category = "calculation"
	CategoryAttention    Category = "attention"
	CategoryExecutive    Category = "executive"
	CategoryVisuospatial Category = "visuospatial"
)

// Categories returns all scored categories in their canonical display order.
func Categories() []Category {
	return []Category{
		CategoryMemory,
		CategoryLanguage,
		CategoryCalculation,
		CategoryAttention,
		CategoryExecutive,
		CategoryVisuospatial,
	}
}

// categoryMaxScores are fixed per category and sum to 100, so a total score
// is already on a 0-100 scale.
var categoryMaxScores = map[Category]int{
	CategoryMemory:       20,
	CategoryLanguage:     20,
	CategoryCalculation:  15,
	CategoryAttention:    15,
	CategoryExecutive:    15,
	CategoryVisuospatial: 15,
}

// MaxScore returns the fixed maximum score for the category.
func (c Category) MaxScore() int {
	return categoryMaxScores[c]
}

// Valid reports whether c is one of the six scored categories.
func (c Category) Valid() bool {
	_, ok := categoryMaxScores[c]
	return ok
}

// QuestionType identifies how a question is presented and answered.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeText           QuestionType = "text"
	TypeSequence       QuestionType = "sequence"
	TypePattern        QuestionType = "pattern"
	TypeReaction       QuestionType = "reaction"
	TypeRecall         QuestionType = "recall"
)

var validQuestionTypes = map[QuestionType]bool{
	TypeMultipleChoice: true,
	TypeText:           true,
	TypeSequence:       true,
	TypePattern:        true,
	TypeReaction:       true,
	TypeRecall:         true,
}

// AnswerKeyKind tags the shape of a question's correct answer.
type AnswerKeyKind int

const (
	// KeyScalar is a single correct value.
	KeyScalar AnswerKeyKind = iota
	// KeyOrdered is a list matched element by element, order-sensitive.
	// Only sequence questions carry ordered keys.
	KeyOrdered
	// KeyAnyOf is a set of acceptable values; a list candidate must cover
	// all of them, a scalar candidate must match one of them.
	KeyAnyOf
)

// AnswerKey is the tagged union for a question's correct answer. The YAML
// catalog writes it as either a scalar or a list; whether a list key is
// ordered is decided by the question type during bank validation.
type AnswerKey struct {
	Kind   AnswerKeyKind
	Value  string
	Values []string
}

// UnmarshalYAML accepts a scalar node or a sequence of scalars.
func (k *AnswerKey) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		k.Kind = KeyScalar
		k.Value = node.Value
		return nil
	case yaml.SequenceNode:
		var values []string
		if err := node.Decode(&values); err != nil {
			return fmt.Errorf("answer list must contain scalars: %w", err)
		}
		k.Kind = KeyAnyOf
		k.Values = values
		return nil
	default:
		return fmt.Errorf("answer must be a scalar or a list, got yaml kind %d", node.Kind)
	}
}

// IsList reports whether the key holds multiple values.
func (k AnswerKey) IsList() bool {
	return k.Kind != KeyScalar
}

// Question is one immutable catalog entry.
type Question struct {
	ID         string       `yaml:"id"`
	Category   Category     `yaml:"category"`
	Type       QuestionType `yaml:"type"`
	Difficulty int          `yaml:"difficulty"`
	Text       string       `yaml:"question"`
	Options    []string     `yaml:"options,omitempty"`
	Answer     AnswerKey    `yaml:"answer"`
	TimeLimit  int          `yaml:"time_limit"` // seconds
	Points     int          `yaml:"points"`
	Hint       string       `yaml:"hint,omitempty"`
}

// TimeLimitDuration returns the nominal answer window.
func (q Question) TimeLimitDuration() time.Duration {
	return time.Duration(q.TimeLimit) * time.Second
}

// QuestionBank holds the full static catalog.
type QuestionBank struct {
	Questions []Question `yaml:"questions"`
}

// LoadQuestionBank reads and parses the questions catalog, then validates it.
func LoadQuestionBank(path string) (*QuestionBank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question catalog: %w", err)
	}

	var bank QuestionBank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("failed to unmarshal question catalog: %w", err)
	}

	if err := bank.validate(); err != nil {
		return nil, err
	}
	return &bank, nil
}

// validate checks catalog integrity and finalizes answer-key kinds. Sequence
// questions get order-sensitive keys; every other list key is any-of. The
// per-category point totals must equal the fixed category maxima so that a
// perfect run scores exactly 100.
func (b *QuestionBank) validate() error {
	if len(b.Questions) == 0 {
		return fmt.Errorf("question catalog is empty")
	}

	seen := make(map[string]bool, len(b.Questions))
	pointTotals := make(map[Category]int)

	for i := range b.Questions {
		q := &b.Questions[i]
		if q.ID == "" {
			return fmt.Errorf("question %d has no id", i)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		if !q.Category.Valid() {
			return fmt.Errorf("question %q: unknown category %q", q.ID, q.Category)
		}
		if !validQuestionTypes[q.Type] {
			return fmt.Errorf("question %q: unknown type %q", q.ID, q.Type)
		}
		if q.Difficulty < 1 || q.Difficulty > 3 {
			return fmt.Errorf("question %q: difficulty %d out of range 1-3", q.ID, q.Difficulty)
		}
		if q.TimeLimit <= 0 {
			return fmt.Errorf("question %q: time_limit must be positive", q.ID)
		}
		if q.Points <= 0 {
			return fmt.Errorf("question %q: points must be positive", q.ID)
		}

		if q.Type == TypeSequence {
			if !q.Answer.IsList() {
				return fmt.Errorf("question %q: sequence questions need a list answer", q.ID)
			}
			q.Answer.Kind = KeyOrdered
		}

		pointTotals[q.Category] += q.Points
	}

	for _, c := range Categories() {
		if pointTotals[c] != c.MaxScore() {
			return fmt.Errorf("category %q: question points sum to %d, want %d", c, pointTotals[c], c.MaxScore())
		}
	}
	return nil
}

// ByCategory returns the catalog questions for one category, in file order.
func (b *QuestionBank) ByCategory(c Category) []Question {
	var out []Question
	for _, q := range b.Questions {
		if q.Category == c {
			out = append(out, q)
		}
	}
	return out
}

// SessionQuestions builds the question list for a new session: categories in
// canonical order, questions shuffled within each category.
func (b *QuestionBank) SessionQuestions() []Question {
	var out []Question
	for _, c := range Categories() {
		group := b.ByCategory(c)
		rand.Shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})
		out = append(out, group...)
	}
	return out
}
