package generator

import "strings"

// TemplateBranch selects which fixture template family a question is
// built from. The mapping from exam type is closed: every input lands on
// exactly one branch, unknown exam types on BranchGeneral.
type TemplateBranch int

const (
	BranchGeneral TemplateBranch = iota
	BranchCivilServices
	BranchStaffSelection
	BranchEngineeringMedical
)

func (b TemplateBranch) String() string {
	switch b {
	case BranchCivilServices:
		return "civil-services"
	case BranchStaffSelection:
		return "staff-selection"
	case BranchEngineeringMedical:
		return "engineering-medical"
	default:
		return "general"
	}
}

// BranchFor maps an exam type to its template branch. Exact keys for the
// civil-services and staff-selection families, a family match for the
// science entrance exams, general for everything else.
func BranchFor(examType string) TemplateBranch {
	switch {
	case examType == "upsc-cse":
		return BranchCivilServices
	case examType == "ssc-cgl" || examType == "ssc-chsl":
		return BranchStaffSelection
	case strings.Contains(examType, "jee") || examType == "neet":
		return BranchEngineeringMedical
	default:
		return BranchGeneral
	}
}
