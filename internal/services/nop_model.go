package services

import "github.com/Nehalakshmi23/carrer-campus/internal/models"

// NopMatchModel is used when no trained artifact is available. Scores that
// depend on the model degrade to zero instead of failing the analysis.
type NopMatchModel struct{}

// NewNopMatchModel returns a NopMatchModel.
func NewNopMatchModel() *NopMatchModel {
	return &NopMatchModel{}
}

// Vectorize returns nil; there is no vectorizer to delegate to.
func (n *NopMatchModel) Vectorize(_ string) []float64 {
	return nil
}

// PredictProbability always reports the artifact as unavailable.
func (n *NopMatchModel) PredictProbability(_ []float64) (float64, error) {
	return 0, models.ErrArtifactUnavailable
}
