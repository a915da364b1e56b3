package corpus

import (
	"math/rand/v2"

	"github.com/gubarz/snipmd/internal/parser"
)

// Sampler picks snippets uniformly at random
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler. A nil rng uses the runtime-seeded source.
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Pick returns one snippet, each with probability 1/len(c)
func (s *Sampler) Pick(c parser.Corpus) (parser.Snippet, error) {
	if len(c) == 0 {
		return parser.Snippet{}, ErrEmptyCorpus
	}
	return c[s.intN(len(c))], nil
}

func (s *Sampler) intN(n int) int {
	if s.rng == nil {
		return rand.IntN(n)
	}
	return s.rng.IntN(n)
}

// Pick returns one snippet using the default source
func Pick(c parser.Corpus) (parser.Snippet, error) {
	return NewSampler(nil).Pick(c)
}
