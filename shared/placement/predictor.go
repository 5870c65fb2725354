package placement

import (
	"fmt"
	"strings"

	"github.com/Bipul-Dubey/placement-dashboard/shared/models"
	"github.com/go-playground/validator/v10"
)

const placedClass = 1

// Predictor runs encode -> classify against one set of artifacts.
type Predictor struct {
	artifacts *Artifacts
	validate  *validator.Validate
}

func NewPredictor(artifacts *Artifacts) *Predictor {
	return &Predictor{
		artifacts: artifacts,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate rejects records outside the collector's bounds.
func (p *Predictor) Validate(r models.StudentRecord) error {
	if err := p.validate.Struct(r); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(fields, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func (p *Predictor) Encode(r models.StudentRecord) EncodedFeatureVector {
	return BuildFeatures(r, p.artifacts.BranchEncoder(), p.artifacts.InternEncoder())
}

// PredictVector classifies an already encoded vector.
func (p *Predictor) PredictVector(v EncodedFeatureVector) (models.PredictionResult, error) {
	class, err := p.artifacts.Classifier().Predict(v.Values())
	if err != nil {
		return "", err
	}
	if class == placedClass {
		return models.Placed, nil
	}
	return models.NotPlaced, nil
}

// Predict validates, encodes and classifies one record.
func (p *Predictor) Predict(r models.StudentRecord) (models.PredictionResult, EncodedFeatureVector, error) {
	if err := p.Validate(r); err != nil {
		return "", EncodedFeatureVector{}, err
	}
	v := p.Encode(r)
	result, err := p.PredictVector(v)
	if err != nil {
		return "", v, err
	}
	return result, v, nil
}
