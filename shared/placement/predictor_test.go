package placement_test

import (
	"errors"
	"math"
	"os"
	"testing"

	"github.com/Bipul-Dubey/placement-dashboard/shared/models"
	"github.com/Bipul-Dubey/placement-dashboard/shared/placement"
	"github.com/Bipul-Dubey/placement-dashboard/shared/placement/placementtest"
)

func TestPredictorPredictsFixtureProfiles(t *testing.T) {
	p := placement.NewPredictor(placementtest.Artifacts(t))

	result, _, err := p.Predict(placementtest.StrongRecord())
	if err != nil {
		t.Fatalf("Predict strong: %v", err)
	}
	if result != models.Placed {
		t.Fatalf("expected strong profile to be placed, got %s", result)
	}

	result, _, err = p.Predict(placementtest.WeakRecord())
	if err != nil {
		t.Fatalf("Predict weak: %v", err)
	}
	if result != models.NotPlaced {
		t.Fatalf("expected weak profile not to be placed, got %s", result)
	}
}

func TestPredictorIsDeterministic(t *testing.T) {
	p := placement.NewPredictor(placementtest.Artifacts(t))
	r := placementtest.StrongRecord()
	r.CGPA = 7.0
	r.Communication = 5

	first, _, err := p.Predict(r)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, _, err := p.Predict(r)
		if err != nil {
			t.Fatalf("Predict: %v", err)
		}
		if again != first {
			t.Fatalf("prediction changed between calls: %s then %s", first, again)
		}
	}
}

func TestPredictorFallbackBranchIsNotAnError(t *testing.T) {
	p := placement.NewPredictor(placementtest.Artifacts(t))
	r := placementtest.StrongRecord()
	r.Branch = "AI&DS"

	result, v, err := p.Predict(r)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if result != models.Placed {
		t.Fatalf("expected placed, got %s", result)
	}
	if v.BranchCode != 0 || len(v.Fallbacks) != 1 || v.Fallbacks[0] != "branch" {
		t.Fatalf("expected branch fallback to code 0, got %+v", v)
	}
}

func TestPredictorRejectsOutOfBoundsRecords(t *testing.T) {
	p := placement.NewPredictor(placementtest.Artifacts(t))

	tests := []struct {
		name   string
		mutate func(r *models.StudentRecord)
	}{
		{"cgpa above 10", func(r *models.StudentRecord) { r.CGPA = 10.5 }},
		{"negative cgpa", func(r *models.StudentRecord) { r.CGPA = -1 }},
		{"unknown branch", func(r *models.StudentRecord) { r.Branch = "Civil" }},
		{"empty branch", func(r *models.StudentRecord) { r.Branch = "" }},
		{"too many major projects", func(r *models.StudentRecord) { r.MajorProjects = 6 }},
		{"negative mini projects", func(r *models.StudentRecord) { r.MiniProjects = -1 }},
		{"too many mini projects", func(r *models.StudentRecord) { r.MiniProjects = 11 }},
		{"communication zero", func(r *models.StudentRecord) { r.Communication = 0 }},
		{"communication above 10", func(r *models.StudentRecord) { r.Communication = 11 }},
		{"internship maybe", func(r *models.StudentRecord) { r.Internship = "Maybe" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := placementtest.StrongRecord()
			tt.mutate(&r)
			if _, _, err := p.Predict(r); !errors.Is(err, placement.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestPredictVectorRejectsNonFiniteValues(t *testing.T) {
	p := placement.NewPredictor(placementtest.Artifacts(t))
	v := p.Encode(placementtest.StrongRecord())
	v.CGPA = math.NaN()

	if _, err := p.PredictVector(v); !errors.Is(err, placement.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLoadArtifactsFromDisk(t *testing.T) {
	dir := t.TempDir()
	paths := placementtest.WriteArtifacts(t, dir)

	a, err := placement.LoadArtifacts(paths)
	if err != nil {
		t.Fatalf("LoadArtifacts: %v", err)
	}
	result, _, err := placement.NewPredictor(a).Predict(placementtest.StrongRecord())
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if result != models.Placed {
		t.Fatalf("expected placed, got %s", result)
	}
}

func TestLoadArtifactsMissingFileIsArtifactError(t *testing.T) {
	for _, missing := range []string{"classifier", "branch", "intern"} {
		t.Run(missing, func(t *testing.T) {
			paths := placementtest.WriteArtifacts(t, t.TempDir())
			var target string
			switch missing {
			case "classifier":
				target = paths.Classifier
			case "branch":
				target = paths.BranchEncoder
			default:
				target = paths.InternEncoder
			}
			if err := os.Remove(target); err != nil {
				t.Fatalf("remove: %v", err)
			}
			if _, err := placement.LoadArtifacts(paths); !errors.Is(err, placement.ErrArtifactLoad) {
				t.Fatalf("expected ErrArtifactLoad, got %v", err)
			}
		})
	}
}
