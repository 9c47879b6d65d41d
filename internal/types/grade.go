package types

type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
)

var AllGrades = []Grade{GradeA, GradeB, GradeC, GradeD, GradeE}

type GradeMeta struct {
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

var gradeMeta = map[Grade]GradeMeta{
	GradeA: {Icon: "🌱", Color: "#4CAF50", Description: "Highly sustainable"},
	GradeB: {Icon: "♻️", Color: "#8BC34A", Description: "Good environmental impact"},
	GradeC: {Icon: "⚖️", Color: "#FFC107", Description: "Average environmental impact"},
	GradeD: {Icon: "⚠️", Color: "#FF9800", Description: "Poor environmental impact"},
	GradeE: {Icon: "🚨", Color: "#F44336", Description: "Very poor environmental impact"},
}

func (g Grade) Meta() GradeMeta {
	return gradeMeta[g]
}

func (g Grade) Valid() bool {
	_, ok := gradeMeta[g]
	return ok
}

func ParseGrade(s string) (Grade, bool) {
	g := Grade(s)
	return g, g.Valid()
}

// GradeCutoffs are the minimum scores for grades A through D; anything
// below DMin is an E.
type GradeCutoffs struct {
	AMin float64
	BMin float64
	CMin float64
	DMin float64
}

func DefaultGradeCutoffs() GradeCutoffs {
	return GradeCutoffs{AMin: 80.0, BMin: 60.0, CMin: 40.0, DMin: 20.0}
}

func GradeForScore(score float64, cutoffs GradeCutoffs) Grade {
	switch {
	case score >= cutoffs.AMin:
		return GradeA
	case score >= cutoffs.BMin:
		return GradeB
	case score >= cutoffs.CMin:
		return GradeC
	case score >= cutoffs.DMin:
		return GradeD
	default:
		return GradeE
	}
}
