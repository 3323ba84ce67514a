package scoring

// RiskLevel is the coarse classification of an overall assessment percentage.
type RiskLevel string

const (
	RiskExcellent   RiskLevel = "excellent"
	RiskMildCaution RiskLevel = "mild_caution"
	RiskCaution     RiskLevel = "caution"
	RiskSevere      RiskLevel = "severe"
)

// RiskAssessment pairs a level with its fixed presentation text.
type RiskAssessment struct {
	Level       RiskLevel `json:"level"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
}

// riskBands are evaluated top down; each band is inclusive of its lower
// bound, so exactly 80 classifies as excellent and exactly 60 as
// mild_caution.
var riskBands = []struct {
	min        int
	assessment RiskAssessment
}{
	{80, RiskAssessment{
		Level:       RiskExcellent,
		Label:       "Excellent",
		Description: "Cognitive performance is in the healthy range. Keep up regular training to maintain it.",
	}},
	{60, RiskAssessment{
		Level:       RiskMildCaution,
		Label:       "Mild caution",
		Description: "Some categories scored below the healthy range. Regular training on the weaker categories is recommended.",
	}},
	{50, RiskAssessment{
		Level:       RiskCaution,
		Label:       "Caution",
		Description: "Several categories scored noticeably low. Consider more frequent screening and focused training.",
	}},
	{0, RiskAssessment{
		Level:       RiskSevere,
		Label:       "Severe",
		Description: "Overall performance is well below the healthy range. A consultation with a specialist is advised.",
	}},
}

// ClassifyRisk maps a 0-100 percentage to its risk band.
func ClassifyRisk(percentage int) RiskAssessment {
	for _, band := range riskBands {
		if percentage >= band.min {
			return band.assessment
		}
	}
	// Negative input falls through to the lowest band.
	return riskBands[len(riskBands)-1].assessment
}
