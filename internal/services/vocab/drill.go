// drill.go generates multiple-choice drills from a vocabulary set.
package vocab

import (
	"fmt"
	"math/rand"

	"github.com/lingokit/lingo-api/internal/models"
)

// Drill size bounds. A drill can never be larger than the set, and tiny sets
// reduce the number of distractors available per question.
const (
	DefaultDrillSize = 10
	MaxDrillSize     = 50
	DefaultChoices   = 4
	MaxChoices       = 8
)

// Question is one multiple-choice drill item: a term plus shuffled meaning
// options, one of which is correct.
type Question struct {
	Term    string   `json:"term"`
	Reading string   `json:"reading,omitempty"`
	Choices []string `json:"choices"`
	Answer  int      `json:"answer"` // index into Choices
}

// Drill is the generated quiz returned to the client.
type Drill struct {
	SetSlug   string     `json:"set_slug"`
	Questions []Question `json:"questions"`
}

// BuildDrill samples questions from a set's words. size and choices of 0
// mean "use defaults". Words are sampled without replacement; distractor
// meanings are drawn from the rest of the set.
func BuildDrill(setSlug string, words []models.VocabWord, size, choices int) (*Drill, error) {
	if len(words) < 2 {
		return nil, fmt.Errorf("set %s has too few words for a drill (%d)", setSlug, len(words))
	}

	if size < 1 {
		size = DefaultDrillSize
	}
	if size > MaxDrillSize {
		size = MaxDrillSize
	}
	if size > len(words) {
		size = len(words)
	}

	if choices < 2 {
		choices = DefaultChoices
	}
	if choices > MaxChoices {
		choices = MaxChoices
	}
	if choices > len(words) {
		choices = len(words)
	}

	// Sample words without replacement
	perm := rand.Perm(len(words))
	drill := &Drill{
		SetSlug:   setSlug,
		Questions: make([]Question, 0, size),
	}

	for _, wi := range perm[:size] {
		word := words[wi]
		q := Question{
			Term:    word.Term,
			Reading: word.Reading,
			Choices: make([]string, 0, choices),
		}

		// Collect distractor meanings from other words
		q.Choices = append(q.Choices, word.Meaning)
		for _, di := range rand.Perm(len(words)) {
			if len(q.Choices) == choices {
				break
			}
			if di == wi || words[di].Meaning == word.Meaning {
				continue
			}
			q.Choices = append(q.Choices, words[di].Meaning)
		}

		// Shuffle the options and track where the answer landed
		rand.Shuffle(len(q.Choices), func(i, j int) {
			q.Choices[i], q.Choices[j] = q.Choices[j], q.Choices[i]
		})
		for i, choice := range q.Choices {
			if choice == word.Meaning {
				q.Answer = i
				break
			}
		}

		drill.Questions = append(drill.Questions, q)
	}

	return drill, nil
}
