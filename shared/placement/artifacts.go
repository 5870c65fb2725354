package placement

import (
	"fmt"
	"path/filepath"
)

const (
	DefaultClassifierFile    = "random_forest_model.json"
	DefaultBranchEncoderFile = "branch_encoder.json"
	DefaultInternEncoderFile = "intern_encoder.json"
)

// ArtifactPaths locates the three pre-trained artifacts.
type ArtifactPaths struct {
	Classifier    string
	BranchEncoder string
	InternEncoder string
}

// DefaultArtifactPaths returns the standard file names under dir.
func DefaultArtifactPaths(dir string) ArtifactPaths {
	return ArtifactPaths{
		Classifier:    filepath.Join(dir, DefaultClassifierFile),
		BranchEncoder: filepath.Join(dir, DefaultBranchEncoderFile),
		InternEncoder: filepath.Join(dir, DefaultInternEncoderFile),
	}
}

// Artifacts bundles the loaded model and encoders. A value is built once at
// startup and only read afterwards, so it can be shared between requests.
type Artifacts struct {
	classifier    *Classifier
	branchEncoder *LabelEncoder
	internEncoder *LabelEncoder
}

func NewArtifacts(classifier *Classifier, branchEncoder, internEncoder *LabelEncoder) (*Artifacts, error) {
	if classifier == nil || branchEncoder == nil || internEncoder == nil {
		return nil, fmt.Errorf("%w: all three artifacts are required", ErrArtifactLoad)
	}
	return &Artifacts{
		classifier:    classifier,
		branchEncoder: branchEncoder,
		internEncoder: internEncoder,
	}, nil
}

// LoadArtifacts reads all three artifacts. Any failure wraps ErrArtifactLoad.
func LoadArtifacts(paths ArtifactPaths) (*Artifacts, error) {
	classifier, err := LoadClassifier(paths.Classifier)
	if err != nil {
		return nil, err
	}
	branchEncoder, err := LoadLabelEncoder("branch", paths.BranchEncoder)
	if err != nil {
		return nil, err
	}
	internEncoder, err := LoadLabelEncoder("internship", paths.InternEncoder)
	if err != nil {
		return nil, err
	}
	return NewArtifacts(classifier, branchEncoder, internEncoder)
}

func (a *Artifacts) Classifier() *Classifier {
	return a.classifier
}

func (a *Artifacts) BranchEncoder() *LabelEncoder {
	return a.branchEncoder
}

func (a *Artifacts) InternEncoder() *LabelEncoder {
	return a.internEncoder
}
