package analysis

type RiskItem struct {
	Text        string `json:"text"`
	Explanation string `json:"explanation"`
	Replacement string `json:"replacement"`
}

// RiskReport always encodes its buckets as arrays, never null.
type RiskReport struct {
	High   []RiskItem `json:"high"`
	Medium []RiskItem `json:"medium"`
	Low    []RiskItem `json:"low"`
}

func EmptyRiskReport() RiskReport {
	return RiskReport{High: []RiskItem{}, Medium: []RiskItem{}, Low: []RiskItem{}}
}

func (r RiskReport) Len() int {
	return len(r.High) + len(r.Medium) + len(r.Low)
}

// LegalAspects maps aspect keys to beautified HTML. Values are strings, or
// one-level objects of strings when the model nests a field.
type LegalAspects map[string]any

var AspectKeys = []string{"irac", "guidelines", "consideration", "parties", "indemnity", "obligations", "jurisdiction"}

type ProcessResult struct {
	Summary      string       `json:"summary"`
	RiskAnalysis RiskReport   `json:"riskAnalysis"`
	LegalAspects LegalAspects `json:"legalAspects"`
}
