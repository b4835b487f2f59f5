package models

// SkillVocabulary is the ordered list of canonical skill keywords the
// analyzer recognizes. Loaded once at startup and never mutated.
type SkillVocabulary []string

// ScoreWeights controls how much each sub-signal contributes to the
// composite score. The four weights are expected to sum to 100.
type ScoreWeights struct {
	SkillMatch         float64
	KeywordCoverage    float64
	SemanticSimilarity float64
	ModelProbability   float64
}

// DefaultScoreWeights returns the production weighting.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		SkillMatch:         30,
		KeywordCoverage:    20,
		SemanticSimilarity: 30,
		ModelProbability:   20,
	}
}

type ScoreBreakdown struct {
	SkillMatchPercent      float64 `json:"skill_match_percent"`
	KeywordCoveragePercent float64 `json:"keyword_coverage_percent"`
	SemanticSimilarity     float64 `json:"semantic_similarity"`
	ModelProbabilityScore  float64 `json:"model_probability_score"`
}

// AnalysisReport is the full result of one scoring run. It is built fresh
// per request and never stored server-side; clients keep it around if they
// want chat follow-up.
type AnalysisReport struct {
	FinalScore              float64        `json:"final_score"`
	ScoreBreakdown          ScoreBreakdown `json:"score_breakdown"`
	MatchedSkills           []string       `json:"matched_skills"`
	MissingSkills           []string       `json:"missing_skills"`
	YearsExperienceEstimate float64        `json:"years_experience_estimate"`
	Recommendations         []string       `json:"recommendations"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

type ChatResponse struct {
	Answer string `json:"answer"`
}
