package placement

import (
	"encoding/json"
	"fmt"
	"os"
)

// LabelEncoder maps a fixed set of known categories to integer codes.
// The code of a category is its index in Classes.
type LabelEncoder struct {
	name    string
	classes []string
	codes   map[string]int
}

type labelEncoderFile struct {
	Classes []string `json:"classes"`
}

func NewLabelEncoder(name string, classes []string) (*LabelEncoder, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("%w: encoder %s has no classes", ErrArtifactLoad, name)
	}
	codes := make(map[string]int, len(classes))
	for i, c := range classes {
		if _, dup := codes[c]; dup {
			return nil, fmt.Errorf("%w: encoder %s has duplicate class %q", ErrArtifactLoad, name, c)
		}
		codes[c] = i
	}
	return &LabelEncoder{
		name:    name,
		classes: append([]string(nil), classes...),
		codes:   codes,
	}, nil
}

// LoadLabelEncoder reads an encoder exported as {"classes": [...]}.
func LoadLabelEncoder(name, path string) (*LabelEncoder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: encoder %s: %v", ErrArtifactLoad, name, err)
	}
	var f labelEncoderFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: encoder %s: %v", ErrArtifactLoad, name, err)
	}
	return NewLabelEncoder(name, f.Classes)
}

func (e *LabelEncoder) Name() string {
	return e.name
}

// Encode returns the code for value and whether value is a known category.
func (e *LabelEncoder) Encode(value string) (int, bool) {
	code, ok := e.codes[value]
	return code, ok
}

func (e *LabelEncoder) Knows(value string) bool {
	_, ok := e.codes[value]
	return ok
}

// Classes returns a copy of the known categories in code order.
func (e *LabelEncoder) Classes() []string {
	return append([]string(nil), e.classes...)
}
