// Package placementtest builds small deterministic artifacts for tests.
package placementtest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Bipul-Dubey/placement-dashboard/shared/models"
	"github.com/Bipul-Dubey/placement-dashboard/shared/placement"
)

// BranchClasses deliberately leaves out AI&DS so the fallback path is
// reachable with valid input.
var BranchClasses = []string{"CSE", "ECE", "EEE", "IT", "MECH"}

var InternClasses = []string{"No", "Yes"}

// Trees is a three tree forest: strong profiles vote placed, weak ones not.
func Trees() []placement.Tree {
	return []placement.Tree{
		{Nodes: []placement.TreeNode{
			{Feature: 0, Threshold: 6.5, Left: 1, Right: 2},
			{Left: -1, Right: -1, Value: []float64{9, 1}},
			{Feature: 4, Threshold: 5.5, Left: 3, Right: 4},
			{Left: -1, Right: -1, Value: []float64{6, 4}},
			{Left: -1, Right: -1, Value: []float64{1, 9}},
		}},
		{Nodes: []placement.TreeNode{
			{Feature: 5, Threshold: 0.5, Left: 1, Right: 2},
			{Left: -1, Right: -1, Value: []float64{7, 3}},
			{Feature: 2, Threshold: 0.5, Left: 3, Right: 4},
			{Left: -1, Right: -1, Value: []float64{5, 5}},
			{Left: -1, Right: -1, Value: []float64{2, 8}},
		}},
		{Nodes: []placement.TreeNode{
			{Feature: 3, Threshold: 1.5, Left: 1, Right: 2},
			{Left: -1, Right: -1, Value: []float64{8, 2}},
			{Feature: 0, Threshold: 7.5, Left: 3, Right: 4},
			{Left: -1, Right: -1, Value: []float64{5, 5}},
			{Left: -1, Right: -1, Value: []float64{1, 9}},
		}},
	}
}

func Artifacts(t testing.TB) *placement.Artifacts {
	t.Helper()
	classifier, err := placement.NewClassifier([]int{0, 1}, Trees())
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}
	branch, err := placement.NewLabelEncoder("branch", BranchClasses)
	if err != nil {
		t.Fatalf("branch encoder: %v", err)
	}
	intern, err := placement.NewLabelEncoder("internship", InternClasses)
	if err != nil {
		t.Fatalf("internship encoder: %v", err)
	}
	a, err := placement.NewArtifacts(classifier, branch, intern)
	if err != nil {
		t.Fatalf("NewArtifacts: %v", err)
	}
	return a
}

// WriteArtifacts writes the fixture artifacts as JSON files into dir.
func WriteArtifacts(t testing.TB, dir string) placement.ArtifactPaths {
	t.Helper()
	paths := placement.DefaultArtifactPaths(dir)

	forest := map[string]any{
		"n_features":    placement.NumFeatures,
		"feature_names": placement.FeatureNames[:],
		"classes":       []int{0, 1},
		"trees":         Trees(),
	}
	writeJSON(t, paths.Classifier, forest)
	writeJSON(t, paths.BranchEncoder, map[string]any{"classes": BranchClasses})
	writeJSON(t, paths.InternEncoder, map[string]any{"classes": InternClasses})
	return paths
}

func writeJSON(t testing.TB, path string, v any) {
	t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("marshal %s: %v", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// StrongRecord is predicted placed by the fixture forest and triggers no
// improvement suggestions.
func StrongRecord() models.StudentRecord {
	return models.StudentRecord{
		CGPA:          9.0,
		Branch:        "CSE",
		MajorProjects: 3,
		MiniProjects:  5,
		Communication: 9,
		Internship:    "Yes",
	}
}

// WeakRecord is predicted not placed and triggers all four rules.
func WeakRecord() models.StudentRecord {
	return models.StudentRecord{
		CGPA:          5.0,
		Branch:        "CSE",
		MajorProjects: 0,
		MiniProjects:  1,
		Communication: 4,
		Internship:    "No",
	}
}
