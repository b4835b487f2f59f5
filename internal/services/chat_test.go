package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/Nehalakshmi23/carrer-campus/internal/models"
)

func reportJSON(skillMatch, keywordCoverage, years float64, matched, missing []string) gjson.Result {
	quote := func(items []string) string {
		if len(items) == 0 {
			return "[]"
		}
		return `["` + strings.Join(items, `","`) + `"]`
	}
	return gjson.Parse(fmt.Sprintf(`{
		"score_breakdown": {
			"skill_match_percent": %f,
			"keyword_coverage_percent": %f
		},
		"years_experience_estimate": %f,
		"matched_skills": %s,
		"missing_skills": %s
	}`, skillMatch, keywordCoverage, years, quote(matched), quote(missing)))
}

func TestChatMissingAnalysis(t *testing.T) {
	chat := NewChatService()

	tests := []struct {
		name     string
		analysis gjson.Result
	}{
		{"absent", gjson.Result{}},
		{"not an object", gjson.Parse(`"just a string"`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := chat.Respond(tt.analysis, "how can i improve?")
			assert.ErrorIs(t, err, models.ErrChatContextMissing)
		})
	}
}

func TestChatImproveBranches(t *testing.T) {
	chat := NewChatService()

	tests := []struct {
		name   string
		report gjson.Result
		want   string
	}{
		{
			name:   "low skill match gets the action plan",
			report: reportJSON(30, 80, 5, []string{"python"}, []string{"sql", "aws"}),
			want:   "Your biggest gap is skills coverage",
		},
		{
			name:   "low keyword coverage gets ATS rewrite advice",
			report: reportJSON(60, 40, 5, []string{"python"}, nil),
			want:   "light on the job's own vocabulary",
		},
		{
			name:   "junior profile advice",
			report: reportJSON(60, 80, 0, []string{"python"}, nil),
			want:   "little formal experience",
		},
		{
			name:   "general strengthening advice",
			report: reportJSON(80, 80, 5, []string{"python"}, nil),
			want:   "already a solid match",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, err := chat.Respond(tt.report, "How can I improve?")
			require.NoError(t, err)
			assert.Contains(t, answer, tt.want)
		})
	}
}

func TestChatImproveNamesMissingSkills(t *testing.T) {
	chat := NewChatService()

	answer, err := chat.Respond(
		reportJSON(30, 80, 5, nil, []string{"sql", "aws"}), "what could make this better?")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(answer, "Your biggest gap is skills coverage"))
	assert.Contains(t, answer, "sql, aws")
}

func TestChatSkillsRule(t *testing.T) {
	chat := NewChatService()

	answer, err := chat.Respond(
		reportJSON(50, 50, 3, []string{"python", "flask"}, []string{"sql"}),
		"what should i study next?")
	require.NoError(t, err)
	assert.Contains(t, answer, "python, flask")
	assert.Contains(t, answer, "sql")
}

func TestChatReadinessRule(t *testing.T) {
	chat := NewChatService()

	t.Run("ready above threshold", func(t *testing.T) {
		answer, err := chat.Respond(
			reportJSON(75, 80, 5, []string{"python"}, nil), "am i ready to apply?")
		require.NoError(t, err)
		assert.Contains(t, answer, "ready to apply")
	})

	t.Run("partial readiness below threshold", func(t *testing.T) {
		answer, err := chat.Respond(
			reportJSON(40, 80, 5, []string{"python"}, []string{"sql"}), "am i eligible?")
		require.NoError(t, err)
		assert.Contains(t, answer, "Not quite there yet")
		assert.Contains(t, answer, "sql")
	})
}

func TestChatRulePrecedence(t *testing.T) {
	chat := NewChatService()

	// "improve" outranks "skills" when both trigger words appear
	answer, err := chat.Respond(
		reportJSON(30, 80, 5, nil, []string{"sql"}),
		"how do i improve my skills?")
	require.NoError(t, err)
	assert.Contains(t, answer, "Your biggest gap is skills coverage")
}

func TestChatFallback(t *testing.T) {
	chat := NewChatService()

	answer, err := chat.Respond(reportJSON(50, 50, 3, nil, nil), "what's the weather like?")
	require.NoError(t, err)
	assert.Contains(t, answer, "Try:")
}

func TestChatAcceptsFlattenedReport(t *testing.T) {
	chat := NewChatService()

	flat := gjson.Parse(`{
		"skill_match": 30,
		"keyword_coverage": 80,
		"experience_estimate": 5,
		"matched_skills": ["python"],
		"missing_skills": ["sql"]
	}`)
	answer, err := chat.Respond(flat, "how can i improve?")
	require.NoError(t, err)
	assert.Contains(t, answer, "Your biggest gap is skills coverage")
}
