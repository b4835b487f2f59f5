package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nehalakshmi23/carrer-campus/internal/models"
)

// fixedModel returns a constant vector and probability so aggregation can
// be tested with known semantic sub-scores.
type fixedModel struct {
	vec  []float64
	prob float64
}

func (f *fixedModel) Vectorize(_ string) []float64 {
	return f.vec
}

func (f *fixedModel) PredictProbability(_ []float64) (float64, error) {
	return f.prob, nil
}

func newTestAnalyzer(model MatchModel) AnalyzerService {
	vocab := models.SkillVocabulary{"python", "sql", "flask", "aws"}
	return NewAnalyzerService(vocab, models.DefaultScoreWeights(), model)
}

func TestAnalyzeSkillPartition(t *testing.T) {
	analyzer := newTestAnalyzer(NewNopMatchModel())

	report, err := analyzer.Analyze("python flask api", "backend developer python sql")
	require.NoError(t, err)

	// Matching is job-text-driven: flask is on the resume but the job
	// never asks for it, so it is neither matched nor missing.
	assert.Equal(t, []string{"python"}, report.MatchedSkills)
	assert.Equal(t, []string{"sql"}, report.MissingSkills)
	assert.Equal(t, 50.0, report.ScoreBreakdown.SkillMatchPercent)

	// matched and missing partition the job's detected skill set
	for _, m := range report.MatchedSkills {
		assert.NotContains(t, report.MissingSkills, m)
	}
}

func TestAnalyzeInputMissing(t *testing.T) {
	analyzer := newTestAnalyzer(NewNopMatchModel())

	tests := []struct {
		name   string
		resume string
		job    string
	}{
		{"empty resume", "", "backend developer"},
		{"whitespace resume", "   \n\t", "backend developer"},
		{"empty job", "python developer", ""},
		{"both empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := analyzer.Analyze(tt.resume, tt.job)
			assert.ErrorIs(t, err, models.ErrInputMissing)
			assert.Nil(t, report)
		})
	}
}

func TestAnalyzeNoJobSkillsDetected(t *testing.T) {
	analyzer := newTestAnalyzer(NewNopMatchModel())

	report, err := analyzer.Analyze("python developer", "looking for a great colleague")
	require.NoError(t, err)

	assert.Empty(t, report.MatchedSkills)
	assert.Empty(t, report.MissingSkills)
	assert.Equal(t, 0.0, report.ScoreBreakdown.SkillMatchPercent)
}

func TestAnalyzeCompositeScore(t *testing.T) {
	// Identical constant vectors give cosine similarity 1.0 -> 10.0,
	// probability 0.8 -> 8.0.
	analyzer := newTestAnalyzer(&fixedModel{vec: []float64{1, 0}, prob: 0.8})

	report, err := analyzer.Analyze("python sql developer", "python sql")
	require.NoError(t, err)

	assert.Equal(t, 100.0, report.ScoreBreakdown.SkillMatchPercent)
	assert.Equal(t, 100.0, report.ScoreBreakdown.KeywordCoveragePercent)
	assert.Equal(t, 10.0, report.ScoreBreakdown.SemanticSimilarity)
	assert.Equal(t, 8.0, report.ScoreBreakdown.ModelProbabilityScore)

	// (1.0*30 + 1.0*20 + 1.0*30 + 0.8*20) / 100 * 10 = 9.6
	assert.InDelta(t, 9.6, report.FinalScore, 0.001)
}

func TestAnalyzeDegradesWithoutModel(t *testing.T) {
	analyzer := newTestAnalyzer(NewNopMatchModel())

	report, err := analyzer.Analyze("python sql developer", "python sql")
	require.NoError(t, err)

	assert.Equal(t, 0.0, report.ScoreBreakdown.SemanticSimilarity)
	assert.Equal(t, 0.0, report.ScoreBreakdown.ModelProbabilityScore)
	// (1.0*30 + 1.0*20) / 100 * 10 = 5.0
	assert.InDelta(t, 5.0, report.FinalScore, 0.001)
}

func TestAnalyzeFinalScoreRange(t *testing.T) {
	analyzer := newTestAnalyzer(&fixedModel{vec: []float64{1, 1}, prob: 1.0})

	pairs := [][2]string{
		{"python sql flask aws developer", "python sql flask aws"},
		{"accountant", "python sql flask aws"},
		{"python", "unrelated text entirely"},
	}
	for _, pair := range pairs {
		report, err := analyzer.Analyze(pair[0], pair[1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, report.FinalScore, 0.0)
		assert.LessOrEqual(t, report.FinalScore, 10.0)
	}
}

func TestAnalyzeExperienceEstimate(t *testing.T) {
	analyzer := newTestAnalyzer(NewNopMatchModel())

	report, err := analyzer.Analyze("python developer with 4 years experience", "python backend")
	require.NoError(t, err)
	assert.Equal(t, 4.0, report.YearsExperienceEstimate)
}

func TestRecommendationRules(t *testing.T) {
	rb := NewRecommendationBuilder()

	t.Run("missing skills named first, generic advice last", func(t *testing.T) {
		recs := rb.Build("python developer", "needs sql and aws", []string{"sql", "aws"})
		assert.Contains(t, recs[0], "sql, aws")
		assert.Contains(t, recs[len(recs)-1], "exact keywords")
	})

	t.Run("caps named missing skills at eight", func(t *testing.T) {
		missing := []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7", "h8", "i9", "j10"}
		recs := rb.Build("resume", "job", missing)
		assert.Contains(t, recs[0], "h8")
		assert.NotContains(t, recs[0], "i9")
	})

	t.Run("project advice when resume mentions projects", func(t *testing.T) {
		recs := rb.Build("built several project pipelines", "job text", nil)
		assert.Contains(t, recs[0], "projects")
	})

	t.Run("cloud advice when job mentions cloud and resume does not", func(t *testing.T) {
		recs := rb.Build("python developer", "deploys to aws", nil)
		assert.Contains(t, recs[0], "cloud platforms")
	})

	t.Run("no cloud advice when resume already has cloud", func(t *testing.T) {
		recs := rb.Build("aws certified developer", "deploys to aws", nil)
		for _, r := range recs {
			assert.NotContains(t, r, "cloud platforms")
		}
	})

	t.Run("generic advice always present", func(t *testing.T) {
		recs := rb.Build("x", "y", nil)
		assert.Len(t, recs, 1)
		assert.Contains(t, recs[0], "exact keywords")
	})
}
