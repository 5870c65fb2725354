package constants

type BranchEnum string

const (
	BranchCSE  BranchEnum = "CSE"
	BranchIT   BranchEnum = "IT"
	BranchECE  BranchEnum = "ECE"
	BranchEEE  BranchEnum = "EEE"
	BranchMECH BranchEnum = "MECH"
	BranchAIDS BranchEnum = "AI&DS"
)

// Branches is the order the dashboard offers branches in.
var Branches = []BranchEnum{BranchCSE, BranchIT, BranchECE, BranchEEE, BranchMECH, BranchAIDS}

type InternshipEnum string

const (
	InternshipYes InternshipEnum = "Yes"
	InternshipNo  InternshipEnum = "No"
)

var Internships = []InternshipEnum{InternshipYes, InternshipNo}

// Column names looked up in uploaded datasets.
const (
	ColumnPlacementStatus = "PlacementStatus"
	ColumnBranch          = "Branch"
)

func BranchNames() []string {
	names := make([]string, len(Branches))
	for i, b := range Branches {
		names[i] = string(b)
	}
	return names
}

func InternshipNames() []string {
	names := make([]string, len(Internships))
	for i, v := range Internships {
		names[i] = string(v)
	}
	return names
}
