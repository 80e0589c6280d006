package nlp

import (
	"fmt"
	"math"
	"sync"
)

// Classifier owns the two-phase lifecycle around the trained model:
// Build() trains from the corpus and is idempotent, Ready() reports whether
// a model is available. The trained Model itself is immutable and safe for
// unlimited concurrent readers.
type Classifier struct {
	corpus []TrainingExample

	mu    sync.Mutex
	model *Model
}

// NewClassifier creates an untrained classifier over the given corpus.
// Pass DefaultCorpus unless a corpus file override is configured.
func NewClassifier(corpus []TrainingExample) *Classifier {
	return &Classifier{corpus: corpus}
}

// Build trains the model. Training is pure with respect to the corpus and
// repeatable; calling Build on an already-trained classifier is a no-op.
func (c *Classifier) Build() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.model != nil {
		return nil
	}
	if len(c.corpus) == 0 {
		return fmt.Errorf("classifier corpus is empty")
	}

	examples := make([]trainedExample, 0, len(c.corpus))
	for _, ex := range c.corpus {
		tokens := Tokenize(Normalize(ex.Utterance))
		if len(tokens) == 0 {
			continue
		}
		set := make(map[string]struct{}, len(tokens))
		for _, t := range tokens {
			set[t] = struct{}{}
		}
		examples = append(examples, trainedExample{intent: ex.Intent, tokens: set})
	}
	if len(examples) == 0 {
		return fmt.Errorf("classifier corpus produced no trainable examples")
	}

	c.model = &Model{examples: examples}
	return nil
}

// CorpusSize is the number of training examples the classifier was
// created with.
func (c *Classifier) CorpusSize() int {
	return len(c.corpus)
}

// Ready reports whether Build has completed.
func (c *Classifier) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.model != nil
}

// Classify normalizes the utterance, scores it against the trained model
// and extracts named entities. It lazily builds the model if needed so a
// cold classifier degrades to a slow first call instead of an error.
func (c *Classifier) Classify(utterance string) (ClassificationResult, error) {
	c.mu.Lock()
	model := c.model
	c.mu.Unlock()

	if model == nil {
		if err := c.Build(); err != nil {
			return ClassificationResult{}, err
		}
		c.mu.Lock()
		model = c.model
		c.mu.Unlock()
	}

	normalized := Normalize(utterance)
	intent, confidence := model.score(normalized)

	return ClassificationResult{
		Intent:     intent,
		Confidence: confidence,
		Entities:   ExtractEntities(normalized),
	}, nil
}

type trainedExample struct {
	intent Intent
	tokens map[string]struct{}
}

// Model is the immutable trained classifier.
type Model struct {
	examples []trainedExample
}

// score returns the best-matching intent and a cosine-overlap confidence in
// [0,1]. Ties break toward the lexicographically smaller intent name so
// repeated calls are deterministic.
func (m *Model) score(normalized string) (Intent, float64) {
	tokens := Tokenize(normalized)
	if len(tokens) == 0 {
		return IntentUnknown, 0
	}

	query := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		query[t] = struct{}{}
	}

	best := IntentUnknown
	bestScore := 0.0

	for _, ex := range m.examples {
		overlap := 0
		for t := range query {
			if _, ok := ex.tokens[t]; ok {
				overlap++
			}
		}
		if overlap == 0 {
			continue
		}
		score := float64(overlap) / math.Sqrt(float64(len(query))*float64(len(ex.tokens)))
		if score > bestScore || (score == bestScore && best != IntentUnknown && ex.intent < best) {
			best = ex.intent
			bestScore = score
		}
	}

	if bestScore > 1 {
		bestScore = 1
	}
	return best, bestScore
}
