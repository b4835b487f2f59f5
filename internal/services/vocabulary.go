package services

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Nehalakshmi23/carrer-campus/internal/models"
)

// defaultSkillVocabulary is the compiled-in skill list used when no
// external vocabulary file is configured. Lowercase, matched whole-token.
var defaultSkillVocabulary = models.SkillVocabulary{
	"python", "java", "javascript", "typescript", "go", "c++", "c#", "c",
	"ruby", "php", "kotlin", "swift", "rust", "scala", "r",
	"html", "css", "react", "react js", "angular", "vue", "next.js",
	"node.js", "express", "django", "flask", "fastapi", "spring", "spring boot",
	"sql", "mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins",
	"git", "linux", "bash", "ci/cd", "rest", "graphql", "grpc",
	"machine learning", "deep learning", "nlp", "pandas", "numpy",
	"tensorflow", "pytorch", "scikit-learn", "data analysis", "tableau",
	"power bi", "excel", "agile", "scrum", "jira",
}

// DefaultSkillVocabulary returns a copy of the built-in skill list.
func DefaultSkillVocabulary() models.SkillVocabulary {
	vocab := make(models.SkillVocabulary, len(defaultSkillVocabulary))
	copy(vocab, defaultSkillVocabulary)
	return vocab
}

// LoadSkillVocabulary reads a newline-delimited skill list. Blank lines and
// lines starting with '#' are skipped. An empty path yields the default
// vocabulary.
func LoadSkillVocabulary(path string) (models.SkillVocabulary, error) {
	if path == "" {
		return DefaultSkillVocabulary(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary file: %w", err)
	}
	defer f.Close()

	var vocab models.SkillVocabulary
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		vocab = append(vocab, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	if len(vocab) == 0 {
		return nil, fmt.Errorf("vocabulary file %s contains no skills", path)
	}

	return vocab, nil
}
