package placement

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// NumFeatures is the width of the vector the classifier was trained on.
const NumFeatures = 6

// FeatureNames lists the training columns in order.
var FeatureNames = [NumFeatures]string{
	"CGPA",
	"Branch",
	"Major Projects",
	"Mini Projects",
	"Communication Skill Rating",
	"Internship",
}

// leafChild marks a node without children.
const leafChild = -1

// TreeNode is one node of an exported decision tree. Split nodes send
// x[Feature] <= Threshold to Left, everything else to Right. Leaves have both
// children set to -1 and carry per-class sample counts in Value.
type TreeNode struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Value     []float64 `json:"value,omitempty"`
}

func (n TreeNode) isLeaf() bool {
	return n.Left == leafChild && n.Right == leafChild
}

type Tree struct {
	Nodes []TreeNode `json:"nodes"`
}

type forestFile struct {
	NFeatures    int      `json:"n_features"`
	FeatureNames []string `json:"feature_names"`
	Classes      []int    `json:"classes"`
	Trees        []Tree   `json:"trees"`
}

// Classifier is a random forest that votes by averaging the class
// distributions of the leaves each tree reaches.
type Classifier struct {
	classes []int
	trees   []Tree
}

func NewClassifier(classes []int, trees []Tree) (*Classifier, error) {
	if len(classes) != 2 {
		return nil, fmt.Errorf("%w: classifier must be binary, got %d classes", ErrArtifactLoad, len(classes))
	}
	seen := map[int]bool{}
	for _, c := range classes {
		if c != 0 && c != 1 {
			return nil, fmt.Errorf("%w: unexpected class label %d", ErrArtifactLoad, c)
		}
		seen[c] = true
	}
	if len(seen) != 2 {
		return nil, fmt.Errorf("%w: classifier classes must be 0 and 1", ErrArtifactLoad)
	}
	if len(trees) == 0 {
		return nil, fmt.Errorf("%w: classifier has no trees", ErrArtifactLoad)
	}
	for i, t := range trees {
		if err := validateTree(t, len(classes)); err != nil {
			return nil, fmt.Errorf("%w: tree %d: %v", ErrArtifactLoad, i, err)
		}
	}
	return &Classifier{
		classes: append([]int(nil), classes...),
		trees:   trees,
	}, nil
}

// children always have larger indices than their parent, which rules out
// cycles and guarantees every walk ends on a leaf.
func validateTree(t Tree, numClasses int) error {
	if len(t.Nodes) == 0 {
		return fmt.Errorf("empty tree")
	}
	for i, n := range t.Nodes {
		if n.isLeaf() {
			if len(n.Value) != numClasses {
				return fmt.Errorf("leaf %d has %d values, want %d", i, len(n.Value), numClasses)
			}
			var total float64
			for _, v := range n.Value {
				if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
					return fmt.Errorf("leaf %d has invalid value %v", i, v)
				}
				total += v
			}
			if total == 0 {
				return fmt.Errorf("leaf %d has no samples", i)
			}
			continue
		}
		if n.Feature < 0 || n.Feature >= NumFeatures {
			return fmt.Errorf("node %d splits on feature %d", i, n.Feature)
		}
		if math.IsNaN(n.Threshold) {
			return fmt.Errorf("node %d has NaN threshold", i)
		}
		for _, child := range []int{n.Left, n.Right} {
			if child <= i || child >= len(t.Nodes) {
				return fmt.Errorf("node %d has child %d out of range", i, child)
			}
		}
	}
	return nil
}

// LoadClassifier reads a forest exported as JSON.
func LoadClassifier(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: classifier: %v", ErrArtifactLoad, err)
	}
	var f forestFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: classifier: %v", ErrArtifactLoad, err)
	}
	if f.NFeatures != NumFeatures {
		return nil, fmt.Errorf("%w: classifier expects %d features, want %d", ErrArtifactLoad, f.NFeatures, NumFeatures)
	}
	if len(f.FeatureNames) > 0 {
		if len(f.FeatureNames) != NumFeatures {
			return nil, fmt.Errorf("%w: classifier lists %d feature names", ErrArtifactLoad, len(f.FeatureNames))
		}
		for i, name := range f.FeatureNames {
			if name != FeatureNames[i] {
				return nil, fmt.Errorf("%w: feature %d is %q, want %q", ErrArtifactLoad, i, name, FeatureNames[i])
			}
		}
	}
	return NewClassifier(f.Classes, f.Trees)
}

// Predict returns the class label for one feature vector.
func (c *Classifier) Predict(x []float64) (int, error) {
	if len(x) != NumFeatures {
		return 0, fmt.Errorf("%w: expected %d features, got %d", ErrInvalidInput, NumFeatures, len(x))
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: feature %q is not finite", ErrInvalidInput, FeatureNames[i])
		}
	}

	proba := make([]float64, len(c.classes))
	for _, t := range c.trees {
		leaf := t.leafFor(x)
		var total float64
		for _, v := range leaf.Value {
			total += v
		}
		for k, v := range leaf.Value {
			proba[k] += v / total
		}
	}

	best := 0
	for k := 1; k < len(proba); k++ {
		if proba[k] > proba[best] {
			best = k
		}
	}
	return c.classes[best], nil
}

func (t Tree) leafFor(x []float64) TreeNode {
	n := t.Nodes[0]
	for !n.isLeaf() {
		if x[n.Feature] <= n.Threshold {
			n = t.Nodes[n.Left]
		} else {
			n = t.Nodes[n.Right]
		}
	}
	return n
}

func (c *Classifier) NumTrees() int {
	return len(c.trees)
}
