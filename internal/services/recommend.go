package services

import (
	"fmt"
	"strings"
)

// RecommendationBuilder turns scoring outcomes into free-text improvement
// suggestions. All applicable rules fire, in a fixed order.
type RecommendationBuilder struct{}

func NewRecommendationBuilder() *RecommendationBuilder {
	return &RecommendationBuilder{}
}

const maxNamedMissingSkills = 8

var cloudKeywords = []string{"aws", "azure", "gcp"}

// Build produces the ordered recommendation list for one analysis. Inputs
// are normalized resume/job text plus the missing-skills result.
func (rb *RecommendationBuilder) Build(resumeText, jobText string, missingSkills []string) []string {
	recommendations := []string{}

	if len(missingSkills) > 0 {
		named := missingSkills
		if len(named) > maxNamedMissingSkills {
			named = named[:maxNamedMissingSkills]
		}
		recommendations = append(recommendations, fmt.Sprintf(
			"Add the skills this job asks for that your resume does not mention: %s.",
			strings.Join(named, ", ")))
	}

	if strings.Contains(resumeText, "project") {
		recommendations = append(recommendations,
			"Move the projects that most closely match this job description to the top of your resume.")
	}

	if containsAnyToken(jobText, cloudKeywords) && !containsAnyToken(resumeText, cloudKeywords) {
		recommendations = append(recommendations,
			"This role mentions cloud platforms. Add any AWS, Azure or GCP experience, including coursework or personal projects.")
	}

	recommendations = append(recommendations,
		"Use the exact keywords from the job description; automated screeners match on exact terms.")

	return recommendations
}

func containsAnyToken(text string, terms []string) bool {
	for _, term := range terms {
		if hasWholeToken(text, term) {
			return true
		}
	}
	return false
}
