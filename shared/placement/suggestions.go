package placement

import (
	"github.com/Bipul-Dubey/placement-dashboard/shared/constants"
	"github.com/Bipul-Dubey/placement-dashboard/shared/models"
)

type SuggestionKind string

const (
	SuggestAcademics     SuggestionKind = "academics"
	SuggestCommunication SuggestionKind = "communication"
	SuggestProjects      SuggestionKind = "projects"
	SuggestInternship    SuggestionKind = "internship"
	SuggestEncouragement SuggestionKind = "encouragement"
)

type Suggestion struct {
	Kind    SuggestionKind `json:"kind"`
	Message string         `json:"message"`
}

// IsImprovement is false only for the encouragement message.
func (s Suggestion) IsImprovement() bool {
	return s.Kind != SuggestEncouragement
}

const (
	cgpaThreshold          = 6.5
	communicationThreshold = 6
	minMajorProjects       = 1
	minMiniProjects        = 2
)

// Suggest applies the advice rules to the raw record. Rules are independent
// and always reported in the same order. The prediction plays no part.
func Suggest(r models.StudentRecord) []Suggestion {
	var out []Suggestion
	if r.CGPA < cgpaThreshold {
		out = append(out, Suggestion{SuggestAcademics, "Improve CGPA with consistent academic performance."})
	}
	if r.Communication < communicationThreshold {
		out = append(out, Suggestion{SuggestCommunication, "Enhance communication and presentation skills."})
	}
	if r.MajorProjects < minMajorProjects || r.MiniProjects < minMiniProjects {
		out = append(out, Suggestion{SuggestProjects, "Take part in more projects or internships."})
	}
	if r.Internship == string(constants.InternshipNo) {
		out = append(out, Suggestion{SuggestInternship, "Do at least one internship for real-world exposure."})
	} else {
		out = append(out, Suggestion{SuggestEncouragement, "Great! Keep enhancing your technical expertise."})
	}
	return out
}

func Messages(suggestions []Suggestion) []string {
	out := make([]string, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Message
	}
	return out
}
