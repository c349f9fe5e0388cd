package exam

// ExamType is one entry of the closed catalog of supported exams.
type ExamType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var catalog = []ExamType{
	{ID: "upsc", Name: "UPSC Civil Services"},
	{ID: "ssc-cgl", Name: "SSC CGL"},
	{ID: "ssc-chsl", Name: "SSC CHSL"},
	{ID: "ibps-po", Name: "IBPS PO"},
	{ID: "ibps-clerk", Name: "IBPS Clerk"},
	{ID: "rrb-ntpc", Name: "RRB NTPC"},
	{ID: "rrb-group-d", Name: "RRB Group D"},
	{ID: "sbi-po", Name: "SBI PO"},
	{ID: "neet", Name: "NEET"},
	{ID: "jee-main", Name: "JEE Main"},
	{ID: "ctet", Name: "CTET"},
}

// Catalog returns the supported exam types. Adding an exam is a code
// change here, not a data migration.
func Catalog() []ExamType {
	out := make([]ExamType, len(catalog))
	copy(out, catalog)
	return out
}
