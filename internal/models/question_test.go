package models

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validCatalog = `
questions:
  - id: mem-1
    category: memory
    type: recall
    difficulty: 2
    question: "Recall the three words."
    answer: ["apple", "train", "river"]
    time_limit: 45
    points: 20
  - id: lang-1
    category: language
    type: text
    difficulty: 1
    question: "Opposite of wide?"
    answer: "narrow"
    time_limit: 20
    points: 20
  - id: calc-1
    category: calculation
    type: text
    difficulty: 2
    question: "100 minus 7?"
    answer: 93
    time_limit: 25
    points: 15
  - id: attn-1
    category: attention
    type: pattern
    difficulty: 2
    question: "Count the As."
    answer: "4"
    time_limit: 30
    points: 15
  - id: exec-1
    category: executive
    type: sequence
    difficulty: 2
    question: "Order the steps."
    options: ["boil", "pour", "drink"]
    answer: ["boil", "pour", "drink"]
    time_limit: 45
    points: 15
  - id: visuo-1
    category: visuospatial
    type: multiple_choice
    difficulty: 1
    question: "Which clock shows 11:10?"
    options: ["A", "B"]
    answer: "B"
    time_limit: 30
    points: 15
`

func writeCatalog(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadQuestionBank(t *testing.T) {
	bank, err := LoadQuestionBank(writeCatalog(t, validCatalog))
	if err != nil {
		t.Fatalf("LoadQuestionBank: %v", err)
	}
	if len(bank.Questions) != 6 {
		t.Fatalf("got %d questions, want 6", len(bank.Questions))
	}

	// Scalar keys stay scalar, even numeric ones.
	calc := bank.Questions[2]
	if calc.Answer.Kind != KeyScalar || calc.Answer.Value != "93" {
		t.Errorf("calc answer = %+v, want scalar 93", calc.Answer)
	}

	// A list key on a sequence question becomes order-sensitive.
	exec := bank.Questions[4]
	if exec.Answer.Kind != KeyOrdered {
		t.Errorf("sequence answer kind = %v, want KeyOrdered", exec.Answer.Kind)
	}

	// A list key on any other question type is any-of.
	mem := bank.Questions[0]
	if mem.Answer.Kind != KeyAnyOf {
		t.Errorf("recall answer kind = %v, want KeyAnyOf", mem.Answer.Kind)
	}
}

func TestLoadQuestionBank_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{
			name:    "duplicate id",
			mutate:  func(s string) string { return strings.Replace(s, "id: lang-1", "id: mem-1", 1) },
			wantErr: "duplicate question id",
		},
		{
			name:    "unknown category",
			mutate:  func(s string) string { return strings.Replace(s, "category: attention", "category: focus", 1) },
			wantErr: "unknown category",
		},
		{
			name:    "points do not sum to category max",
			mutate:  func(s string) string { return strings.Replace(s, "points: 20", "points: 19", 1) },
			wantErr: "question points sum to",
		},
		{
			name:    "sequence needs a list answer",
			mutate:  func(s string) string { return strings.Replace(s, `answer: ["boil", "pour", "drink"]`, `answer: "boil"`, 1) },
			wantErr: "sequence questions need a list answer",
		},
		{
			name:    "difficulty out of range",
			mutate:  func(s string) string { return strings.Replace(s, "difficulty: 1", "difficulty: 4", 1) },
			wantErr: "difficulty",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadQuestionBank(writeCatalog(t, tc.mutate(validCatalog)))
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("err = %v, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestSessionQuestions_CategoryOrder(t *testing.T) {
	bank, err := LoadQuestionBank(writeCatalog(t, validCatalog))
	if err != nil {
		t.Fatal(err)
	}

	questions := bank.SessionQuestions()
	if len(questions) != len(bank.Questions) {
		t.Fatalf("got %d questions, want %d", len(questions), len(bank.Questions))
	}

	// Categories appear grouped in canonical order even after shuffling.
	var got []Category
	for _, q := range questions {
		if len(got) == 0 || got[len(got)-1] != q.Category {
			got = append(got, q.Category)
		}
	}
	want := Categories()
	if len(got) != len(want) {
		t.Fatalf("category groups = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("group %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCategoryMaxima(t *testing.T) {
	total := 0
	for _, c := range Categories() {
		total += c.MaxScore()
	}
	if total != 100 {
		t.Errorf("category maxima sum to %d, want 100", total)
	}
}
