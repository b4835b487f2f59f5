package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"regexp"
	"sort"
	"strings"
)

// Fits the resume/job match model and writes the artifact the API loads at
// startup: a TF-IDF vocabulary with idf weights plus logistic-regression
// coefficients. Run with:
//
//	go run scripts/train_model.go -out career_model.json

type trainingRow struct {
	Resume string
	Job    string
	Label  float64
}

var trainingData = []trainingRow{
	{"java python sql", "backend developer", 1},
	{"html css javascript react", "frontend developer", 1},
	{"aws docker linux", "cloud engineer", 1},
	{"accounting finance", "software engineer", 0},
	{"python flask api", "backend developer", 1},
	{"react ui design", "frontend developer", 1},
	{"sql data analysis", "data scientist", 1},
}

type artifact struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
	Coef       []float64      `json:"coef"`
	Intercept  float64        `json:"intercept"`
}

var tokenRe = regexp.MustCompile(`\b\w\w+\b`)

func main() {
	out := flag.String("out", "career_model.json", "artifact output path")
	iterations := flag.Int("iters", 5000, "gradient descent iterations")
	learningRate := flag.Float64("lr", 0.5, "gradient descent learning rate")
	flag.Parse()

	// Combine resume + job text, as the classifier scores the pair
	docs := make([][]string, len(trainingData))
	labels := make([]float64, len(trainingData))
	for i, row := range trainingData {
		docs[i] = tokenRe.FindAllString(strings.ToLower(row.Resume+" "+row.Job), -1)
		labels[i] = row.Label
	}

	vocabulary, idf := fitTFIDF(docs)
	log.Printf("Fitted vectorizer: %d terms over %d documents", len(vocabulary), len(docs))

	features := make([][]float64, len(docs))
	for i, tokens := range docs {
		features[i] = transform(tokens, vocabulary, idf)
	}

	coef, intercept := fitLogisticRegression(features, labels, *iterations, *learningRate)
	log.Printf("Fitted classifier: %d coefficients, intercept %.4f", len(coef), intercept)

	data, err := json.MarshalIndent(artifact{
		Vocabulary: vocabulary,
		IDF:        idf,
		Coef:       coef,
		Intercept:  intercept,
	}, "", "  ")
	if err != nil {
		log.Fatalf("failed to encode artifact: %v", err)
	}

	if err := os.WriteFile(*out, data, 0644); err != nil {
		log.Fatalf("failed to write artifact: %v", err)
	}

	fmt.Printf("Model artifact written to %s\n", *out)
}

// fitTFIDF builds the term index and smoothed idf weights
// (ln((1+n)/(1+df)) + 1), with terms indexed in sorted order.
func fitTFIDF(docs [][]string) (map[string]int, []float64) {
	df := make(map[string]int)
	for _, tokens := range docs {
		seen := make(map[string]bool, len(tokens))
		for _, token := range tokens {
			if !seen[token] {
				seen[token] = true
				df[token]++
			}
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocabulary := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	n := float64(len(docs))
	for i, term := range terms {
		vocabulary[term] = i
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	return vocabulary, idf
}

// transform maps tokens to an L2-normalized tf-idf vector.
func transform(tokens []string, vocabulary map[string]int, idf []float64) []float64 {
	vec := make([]float64, len(vocabulary))
	for _, token := range tokens {
		if idx, ok := vocabulary[token]; ok {
			vec[idx] += idf[idx]
		}
	}

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

// fitLogisticRegression runs full-batch gradient descent on the log loss.
// The corpus is tiny, so nothing fancier is warranted.
func fitLogisticRegression(features [][]float64, labels []float64, iterations int, learningRate float64) ([]float64, float64) {
	if len(features) == 0 {
		return nil, 0
	}

	dims := len(features[0])
	coef := make([]float64, dims)
	intercept := 0.0
	n := float64(len(features))

	for iter := 0; iter < iterations; iter++ {
		gradCoef := make([]float64, dims)
		gradIntercept := 0.0

		for i, x := range features {
			z := intercept
			for j, v := range x {
				z += coef[j] * v
			}
			err := 1/(1+math.Exp(-z)) - labels[i]

			for j, v := range x {
				gradCoef[j] += err * v
			}
			gradIntercept += err
		}

		for j := range coef {
			coef[j] -= learningRate * gradCoef[j] / n
		}
		intercept -= learningRate * gradIntercept / n
	}

	return coef, intercept
}
