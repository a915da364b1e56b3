package corpus

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/gubarz/snipmd/internal/parser"
)

func TestSamplerUniform(t *testing.T) {
	c := parser.Corpus{{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"}}
	sampler := NewSampler(rand.New(rand.NewPCG(1, 2)))

	const draws = 10000
	counts := make(map[string]int)
	for i := 0; i < draws; i++ {
		s, err := sampler.Pick(c)
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		counts[s.Text]++
	}

	// 4 standard deviations of a binomial(10000, 0.25) is about 173
	expected := draws / len(c)
	tolerance := 4 * math.Sqrt(draws*0.25*0.75)
	for _, s := range c {
		if diff := math.Abs(float64(counts[s.Text] - expected)); diff > tolerance {
			t.Errorf("snippet %q drawn %d times, expected %d±%.0f", s.Text, counts[s.Text], expected, tolerance)
		}
	}
}

func TestSamplerDefaultSource(t *testing.T) {
	c := parser.Corpus{{Text: "only"}}
	s, err := Pick(c)
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if s.Text != "only" {
		t.Errorf("expected only, got %q", s.Text)
	}
}

func TestSamplerEmpty(t *testing.T) {
	if _, err := Pick(nil); !errors.Is(err, ErrEmptyCorpus) {
		t.Errorf("expected ErrEmptyCorpus, got %v", err)
	}
}
