package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Nehalakshmi23/carrer-campus/internal/models"
)

// NormalizeText collapses whitespace runs to single spaces, lowercases and
// trims. Idempotent; nil-safe in the sense that empty input yields "".
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// isTokenChar reports whether c continues a token. Anything else acts as a
// token boundary, which is what lets "c++" or "node.js" match literally
// without regex metacharacter surprises.
func isTokenChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

// hasWholeToken reports whether term occurs in text at token boundaries.
// Both inputs are expected to be normalized already.
func hasWholeToken(text, term string) bool {
	if term == "" || text == "" {
		return false
	}

	for start := 0; ; {
		idx := strings.Index(text[start:], term)
		if idx < 0 {
			return false
		}
		idx += start

		boundedLeft := idx == 0 || !isTokenChar(text[idx-1])
		end := idx + len(term)
		boundedRight := end == len(text) || !isTokenChar(text[end])
		if boundedLeft && boundedRight {
			return true
		}

		start = idx + 1
	}
}

// SkillExtractor finds occurrences of a fixed vocabulary in normalized
// text, preserving vocabulary order and de-duplicating.
type SkillExtractor struct {
	vocabulary models.SkillVocabulary
}

func NewSkillExtractor(vocabulary models.SkillVocabulary) *SkillExtractor {
	normalized := make(models.SkillVocabulary, 0, len(vocabulary))
	seen := make(map[string]bool, len(vocabulary))
	for _, skill := range vocabulary {
		skill = NormalizeText(skill)
		if skill == "" || seen[skill] {
			continue
		}
		seen[skill] = true
		normalized = append(normalized, skill)
	}

	return &SkillExtractor{vocabulary: normalized}
}

// Vocabulary returns the canonical skill list the extractor matches against.
func (e *SkillExtractor) Vocabulary() models.SkillVocabulary {
	return e.vocabulary
}

// Extract returns the vocabulary entries present in text, in vocabulary
// order. The result is always a subset of the vocabulary.
func (e *SkillExtractor) Extract(text string) []string {
	found := []string{}
	for _, skill := range e.vocabulary {
		if hasWholeToken(text, skill) {
			found = append(found, skill)
		}
	}
	return found
}

var keywordTokenRe = regexp.MustCompile(`[a-z0-9+#.\-]+`)

// KeywordCoverage computes the percentage of unique job-description tokens
// (length > 2) that appear whole-token in the resume. Returns 0.0 when the
// job text yields no qualifying tokens.
func KeywordCoverage(resumeText, jobText string) float64 {
	tokens := keywordTokenRe.FindAllString(jobText, -1)

	seen := make(map[string]bool, len(tokens))
	matched := 0
	total := 0
	for _, token := range tokens {
		if len(token) <= 2 || seen[token] {
			continue
		}
		seen[token] = true
		total++
		if hasWholeToken(resumeText, token) {
			matched++
		}
	}

	if total == 0 {
		return 0.0
	}
	return round2(100 * float64(matched) / float64(total))
}

var experienceRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*\+?\s*(?:years|yrs)`)

// EstimateExperience derives a rough years-of-experience figure from the
// resume. Numeric "N years"/"N yrs" patterns win (maximum value); otherwise
// seniority keywords set a coarse default. An estimate, nothing more.
func EstimateExperience(resumeText string) float64 {
	matches := experienceRe.FindAllStringSubmatch(resumeText, -1)
	if len(matches) > 0 {
		max := 0.0
		for _, m := range matches {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > max {
				max = v
			}
		}
		return max
	}

	switch {
	case strings.Contains(resumeText, "senior"):
		return 5.0
	case strings.Contains(resumeText, "mid"):
		return 3.0
	case strings.Contains(resumeText, "junior"):
		return 1.0
	}
	return 0.0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
