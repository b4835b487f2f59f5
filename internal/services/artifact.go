package services

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"
)

// MatchModel is the trained vectorizer + classifier capability. The real
// implementation is backed by an artifact file fitted offline; when no
// artifact is available a no-op model stands in and dependent scores
// degrade to zero.
type MatchModel interface {
	// Vectorize transforms text into a TF-IDF feature vector. Returns nil
	// when no vectorizer is loaded.
	Vectorize(text string) []float64

	// PredictProbability returns the classifier's positive-class
	// probability in [0, 1] for a feature vector.
	PredictProbability(vec []float64) (float64, error)
}

// matchArtifact mirrors the JSON layout written by scripts/train_model.go:
// a fitted TF-IDF vocabulary with idf weights plus logistic-regression
// coefficients over the same feature space.
type matchArtifact struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
	Coef       []float64      `json:"coef"`
	Intercept  float64        `json:"intercept"`
}

type matchModel struct {
	artifact matchArtifact
}

// tfidfTokenRe matches the scikit-learn default token pattern \b\w\w+\b
// that the artifact was fitted with.
var tfidfTokenRe = regexp.MustCompile(`\b\w\w+\b`)

// LoadMatchModel reads the trained artifact from disk. A missing or
// unreadable file is reported so the caller can fall back to NewNopMatchModel.
func LoadMatchModel(path string) (MatchModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var artifact matchArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}

	if len(artifact.Vocabulary) == 0 {
		return nil, fmt.Errorf("model artifact has empty vocabulary")
	}
	if len(artifact.IDF) != len(artifact.Vocabulary) {
		return nil, fmt.Errorf("model artifact idf size %d does not match vocabulary size %d",
			len(artifact.IDF), len(artifact.Vocabulary))
	}

	return &matchModel{artifact: artifact}, nil
}

// Vectorize implements MatchModel.
func (m *matchModel) Vectorize(text string) []float64 {
	vec := make([]float64, len(m.artifact.Vocabulary))

	tokens := tfidfTokenRe.FindAllString(strings.ToLower(text), -1)
	for _, token := range tokens {
		if idx, ok := m.artifact.Vocabulary[token]; ok {
			vec[idx] += m.artifact.IDF[idx]
		}
	}

	// L2 normalization, matching the vectorizer the artifact was fitted with
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}

	return vec
}

// PredictProbability implements MatchModel.
func (m *matchModel) PredictProbability(vec []float64) (float64, error) {
	if len(m.artifact.Coef) != len(vec) {
		return 0, fmt.Errorf("feature vector size %d does not match classifier size %d",
			len(vec), len(m.artifact.Coef))
	}

	z := m.artifact.Intercept
	for i, v := range vec {
		z += m.artifact.Coef[i] * v
	}

	return 1 / (1 + math.Exp(-z)), nil
}

// CosineSimilarity returns the cosine of the angle between two vectors,
// or 0 when either has zero norm.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0.0
	}

	dot, normA, normB := 0.0, 0.0, 0.0
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
