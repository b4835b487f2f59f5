package services

// SemanticScorer derives the two model-backed sub-scores. Both degrade
// gracefully to 0.0 when the artifact is absent or prediction fails; the
// rest of the report stays meaningful without them.
type SemanticScorer struct {
	model MatchModel
}

func NewSemanticScorer(model MatchModel) *SemanticScorer {
	return &SemanticScorer{model: model}
}

// SimilarityScore vectorizes resume and job text independently and maps
// their cosine similarity onto a 0-10 scale.
func (s *SemanticScorer) SimilarityScore(resumeText, jobText string) float64 {
	resumeVec := s.model.Vectorize(resumeText)
	jobVec := s.model.Vectorize(jobText)
	if resumeVec == nil || jobVec == nil {
		return 0.0
	}

	return round2(CosineSimilarity(resumeVec, jobVec) * 10)
}

// ProbabilityScore vectorizes the concatenated texts and maps the
// classifier's positive-class probability onto a 0-10 scale.
func (s *SemanticScorer) ProbabilityScore(resumeText, jobText string) float64 {
	vec := s.model.Vectorize(resumeText + " " + jobText)
	if vec == nil {
		return 0.0
	}

	prob, err := s.model.PredictProbability(vec)
	if err != nil {
		return 0.0
	}

	return round2(prob * 10)
}
