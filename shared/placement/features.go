package placement

import (
	"log"

	"github.com/Bipul-Dubey/placement-dashboard/shared/models"
)

// FallbackCode is used for categories an encoder has never seen. It is also a
// valid code for a known category, which is why fallbacks are recorded in
// EncodedFeatureVector.Fallbacks.
const FallbackCode = 0

type EncodedFeatureVector struct {
	CGPA           float64 `json:"cgpa"`
	BranchCode     int     `json:"branch_code"`
	MajorProjects  int     `json:"major_projects"`
	MiniProjects   int     `json:"mini_projects"`
	Communication  int     `json:"communication"`
	InternshipCode int     `json:"internship_code"`

	// Fallbacks names the categorical fields encoded with FallbackCode
	// because their raw value was unknown.
	Fallbacks []string `json:"fallbacks,omitempty"`
}

// Values returns the vector in training column order.
func (v EncodedFeatureVector) Values() []float64 {
	return []float64{
		v.CGPA,
		float64(v.BranchCode),
		float64(v.MajorProjects),
		float64(v.MiniProjects),
		float64(v.Communication),
		float64(v.InternshipCode),
	}
}

func (v EncodedFeatureVector) UsedFallback() bool {
	return len(v.Fallbacks) > 0
}

// BuildFeatures encodes a record. Unknown categories become FallbackCode
// without an error.
func BuildFeatures(r models.StudentRecord, branchEncoder, internEncoder *LabelEncoder) EncodedFeatureVector {
	v := EncodedFeatureVector{
		CGPA:          r.CGPA,
		MajorProjects: r.MajorProjects,
		MiniProjects:  r.MiniProjects,
		Communication: r.Communication,
	}
	v.BranchCode = encodeOrFallback(branchEncoder, r.Branch, &v)
	v.InternshipCode = encodeOrFallback(internEncoder, r.Internship, &v)
	return v
}

func encodeOrFallback(e *LabelEncoder, value string, v *EncodedFeatureVector) int {
	if code, ok := e.Encode(value); ok {
		return code
	}
	log.Printf("[WARN] %s encoder does not know %q, using code %d", e.Name(), value, FallbackCode)
	v.Fallbacks = append(v.Fallbacks, e.Name())
	return FallbackCode
}
