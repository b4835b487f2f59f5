package services

import (
	"github.com/Nehalakshmi23/carrer-campus/internal/models"
)

// AnalyzerService scores a resume against a job description and assembles
// the full report. Analyze is a pure function of its inputs plus the
// immutable vocabulary, weights and trained artifact, so concurrent
// requests need no synchronization.
type AnalyzerService interface {
	Analyze(resumeText, jobText string) (*models.AnalysisReport, error)
}

type analyzerService struct {
	extractor   *SkillExtractor
	semantic    *SemanticScorer
	recommender *RecommendationBuilder
	weights     models.ScoreWeights
}

func NewAnalyzerService(
	vocabulary models.SkillVocabulary,
	weights models.ScoreWeights,
	model MatchModel,
) AnalyzerService {
	return &analyzerService{
		extractor:   NewSkillExtractor(vocabulary),
		semantic:    NewSemanticScorer(model),
		recommender: NewRecommendationBuilder(),
		weights:     weights,
	}
}

// Analyze implements AnalyzerService.
func (a *analyzerService) Analyze(resumeText, jobText string) (*models.AnalysisReport, error) {
	resume := NormalizeText(resumeText)
	job := NormalizeText(jobText)

	if resume == "" || job == "" {
		return nil, models.ErrInputMissing
	}

	// Matching is entirely job-text-driven: only skills the job mentions
	// can be matched or missing.
	jobSkills := a.extractor.Extract(job)
	resumeSkills := a.extractor.Extract(resume)

	inResume := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		inResume[skill] = true
	}

	matched := []string{}
	missing := []string{}
	for _, skill := range jobSkills {
		if inResume[skill] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	skillDenominator := len(jobSkills)
	if skillDenominator == 0 {
		skillDenominator = 1
	}
	skillMatch := round2(100 * float64(len(matched)) / float64(skillDenominator))

	keywordCoverage := KeywordCoverage(resume, job)
	similarity := a.semantic.SimilarityScore(resume, job)
	probability := a.semantic.ProbabilityScore(resume, job)

	finalScore := round2((skillMatch/100*a.weights.SkillMatch +
		keywordCoverage/100*a.weights.KeywordCoverage +
		similarity/10*a.weights.SemanticSimilarity +
		probability/10*a.weights.ModelProbability) / 100 * 10)

	return &models.AnalysisReport{
		FinalScore: finalScore,
		ScoreBreakdown: models.ScoreBreakdown{
			SkillMatchPercent:      skillMatch,
			KeywordCoveragePercent: keywordCoverage,
			SemanticSimilarity:     similarity,
			ModelProbabilityScore:  probability,
		},
		MatchedSkills:           matched,
		MissingSkills:           missing,
		YearsExperienceEstimate: EstimateExperience(resume),
		Recommendations:         a.recommender.Build(resume, job, missing),
	}, nil
}
