package services

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/Nehalakshmi23/carrer-campus/internal/models"
)

// ChatService answers free-text questions about a previously returned
// analysis report. One-shot keyword classification, no conversation state.
type ChatService interface {
	Respond(analysis gjson.Result, question string) (string, error)
}

// reportContext is the subset of report fields the chat rules branch on.
type reportContext struct {
	SkillMatch      float64
	KeywordCoverage float64
	YearsExperience float64
	MatchedSkills   []string
	MissingSkills   []string
}

// chatRule pairs trigger keywords with a handler. Rules are evaluated in
// order with first-match-wins semantics so precedence stays explicit.
type chatRule struct {
	triggers []string
	handler  func(ctx reportContext) string
}

type chatService struct {
	rules []chatRule
}

func NewChatService() ChatService {
	return &chatService{
		rules: []chatRule{
			{triggers: []string{"improve", "better", "enhance"}, handler: answerImprove},
			{triggers: []string{"skills", "learn", "study"}, handler: answerSkills},
			{triggers: []string{"ready", "eligible", "apply"}, handler: answerReadiness},
		},
	}
}

// Respond implements ChatService. The analysis argument is the report as
// the client sent it back, read leniently so both the raw report shape and
// the flattened frontend shape work.
func (c *chatService) Respond(analysis gjson.Result, question string) (string, error) {
	if !analysis.Exists() || !analysis.IsObject() {
		return "", models.ErrChatContextMissing
	}

	ctx := reportContext{
		SkillMatch:      firstFloat(analysis, "score_breakdown.skill_match_percent", "skill_match"),
		KeywordCoverage: firstFloat(analysis, "score_breakdown.keyword_coverage_percent", "keyword_coverage"),
		YearsExperience: firstFloat(analysis, "years_experience_estimate", "experience_estimate"),
		MatchedSkills:   stringList(analysis.Get("matched_skills")),
		MissingSkills:   stringList(analysis.Get("missing_skills")),
	}

	q := strings.ToLower(question)
	for _, rule := range c.rules {
		for _, trigger := range rule.triggers {
			if strings.Contains(q, trigger) {
				return rule.handler(ctx), nil
			}
		}
	}

	return "I can answer questions about this report. Try: " +
		"'How can I improve?', 'What skills should I learn?' or 'Am I ready to apply?'", nil
}

func answerImprove(ctx reportContext) string {
	switch {
	case ctx.SkillMatch < 40:
		return fmt.Sprintf(
			"Your biggest gap is skills coverage. Build an action plan around the missing skills: %s. "+
				"Pick the top two, finish a small project with each, then put them on your resume.",
			joinOr(ctx.MissingSkills, "the skills named in the job description"))
	case ctx.KeywordCoverage < 50:
		return "Your resume is light on the job's own vocabulary. Rewrite your bullet points to reuse " +
			"the exact keywords from the description so ATS filters pick them up."
	case ctx.YearsExperience < 1:
		return "With little formal experience, lead with projects, internships and coursework. " +
			"Quantify outcomes so a junior profile still shows impact."
	default:
		return "You are already a solid match. Strengthen the resume by quantifying achievements " +
			"and tailoring the summary line to this specific role."
	}
}

func answerSkills(ctx reportContext) string {
	return fmt.Sprintf(
		"You already match: %s. Focus your study time on: %s. "+
			"Start with whichever missing skill the job description mentions first.",
		joinOr(ctx.MatchedSkills, "none of the listed skills yet"),
		joinOr(ctx.MissingSkills, "nothing specific, the listed skills are covered"))
}

func answerReadiness(ctx reportContext) string {
	if ctx.SkillMatch >= 70 {
		return fmt.Sprintf(
			"You look ready to apply: your skills line up with %.0f%% of what the job asks for. "+
				"Polish the wording and send it.", ctx.SkillMatch)
	}
	return fmt.Sprintf(
		"Not quite there yet. Close the gap on %s first, then apply with a tailored resume.",
		joinOr(ctx.MissingSkills, "the skills the job asks for"))
}

// firstFloat returns the first path that exists in the report.
func firstFloat(analysis gjson.Result, paths ...string) float64 {
	for _, path := range paths {
		if v := analysis.Get(path); v.Exists() {
			return v.Float()
		}
	}
	return 0
}

func stringList(result gjson.Result) []string {
	var out []string
	for _, item := range result.Array() {
		if s := item.String(); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
