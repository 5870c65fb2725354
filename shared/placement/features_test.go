package placement_test

import (
	"reflect"
	"testing"

	"github.com/Bipul-Dubey/placement-dashboard/shared/models"
	"github.com/Bipul-Dubey/placement-dashboard/shared/placement"
	"github.com/Bipul-Dubey/placement-dashboard/shared/placement/placementtest"
)

func TestBuildFeaturesKeepsTrainingOrder(t *testing.T) {
	a := placementtest.Artifacts(t)
	r := models.StudentRecord{
		CGPA:          7.8,
		Branch:        "IT",
		MajorProjects: 2,
		MiniProjects:  4,
		Communication: 6,
		Internship:    "Yes",
	}

	v := placement.BuildFeatures(r, a.BranchEncoder(), a.InternEncoder())

	want := []float64{7.8, 3, 2, 4, 6, 1}
	if got := v.Values(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Values()=%v, want %v", got, want)
	}
	if len(v.Values()) != placement.NumFeatures {
		t.Fatalf("expected %d features", placement.NumFeatures)
	}
	if v.UsedFallback() {
		t.Fatalf("expected no fallbacks, got %v", v.Fallbacks)
	}
}

func TestBuildFeaturesIsIdempotent(t *testing.T) {
	a := placementtest.Artifacts(t)
	r := placementtest.StrongRecord()

	first := placement.BuildFeatures(r, a.BranchEncoder(), a.InternEncoder())
	second := placement.BuildFeatures(r, a.BranchEncoder(), a.InternEncoder())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("encoding differs between calls: %+v vs %+v", first, second)
	}
}

func TestBuildFeaturesFallsBackForUnknownCategories(t *testing.T) {
	a := placementtest.Artifacts(t)

	tests := []struct {
		name          string
		branch        string
		internship    string
		wantFallbacks []string
	}{
		{"branch missing from encoder", "AI&DS", "Yes", []string{"branch"}},
		{"branch outside the dashboard list", "Civil", "No", []string{"branch"}},
		{"both unknown", "Civil", "Maybe", []string{"branch", "internship"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := placementtest.StrongRecord()
			r.Branch = tt.branch
			r.Internship = tt.internship

			v := placement.BuildFeatures(r, a.BranchEncoder(), a.InternEncoder())

			if v.BranchCode != placement.FallbackCode {
				t.Fatalf("expected branch code %d, got %d", placement.FallbackCode, v.BranchCode)
			}
			if !reflect.DeepEqual(v.Fallbacks, tt.wantFallbacks) {
				t.Fatalf("Fallbacks=%v, want %v", v.Fallbacks, tt.wantFallbacks)
			}
		})
	}
}
