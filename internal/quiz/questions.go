package quiz

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var defaultQuestionsYAML []byte

// QuestionSet is the ordered, immutable list of prompts for a session.
type QuestionSet struct {
	prompts []string
}

// questionFile is the on-disk YAML layout.
type questionFile struct {
	Questions []string `yaml:"questions"`
}

// NewQuestionSet validates prompts and returns a QuestionSet.
func NewQuestionSet(prompts []string) (QuestionSet, error) {
	if len(prompts) == 0 {
		return QuestionSet{}, ErrNoQuestions
	}
	out := make([]string, len(prompts))
	for i, p := range prompts {
		p = strings.TrimSpace(p)
		if p == "" {
			return QuestionSet{}, fmt.Errorf("question %d: %w", i+1, ErrBlankQuestion)
		}
		out[i] = p
	}
	return QuestionSet{prompts: out}, nil
}

// Default returns the built-in five-question set.
func Default() QuestionSet {
	qs, err := Parse(defaultQuestionsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded questions: %v", err))
	}
	return qs
}

// Parse decodes a YAML question document.
func Parse(data []byte) (QuestionSet, error) {
	var f questionFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return QuestionSet{}, fmt.Errorf("decode questions: %w", err)
	}
	return NewQuestionSet(f.Questions)
}

// LoadFile reads a question set from a YAML file.
func LoadFile(path string) (QuestionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return QuestionSet{}, fmt.Errorf("read questions: %w", err)
	}
	qs, err := Parse(data)
	if err != nil {
		return QuestionSet{}, fmt.Errorf("%s: %w", path, err)
	}
	return qs, nil
}

// Len returns the number of prompts.
func (q QuestionSet) Len() int {
	return len(q.prompts)
}

// At returns the prompt at the 0-based index i.
func (q QuestionSet) At(i int) string {
	return q.prompts[i]
}

// All returns a copy of the prompts.
func (q QuestionSet) All() []string {
	out := make([]string, len(q.prompts))
	copy(out, q.prompts)
	return out
}
