package model

// AppreciationRates is the fixed three-scenario annual appreciation table.
// Exactly these three named points are always computed; "expected" is the one
// that feeds all downstream monetary planning figures.
type AppreciationRates struct {
	Conservative float64 `json:"conservative"`
	Expected     float64 `json:"expected"`
	Aggressive   float64 `json:"aggressive"`
}

// PriceProjection holds the projected property price under each scenario.
type PriceProjection struct {
	CurrentPrice      int64             `json:"currentPrice"`
	Conservative      int64             `json:"conservative"`
	Expected          int64             `json:"expected"`
	Aggressive        int64             `json:"aggressive"`
	AppreciationRates AppreciationRates `json:"appreciationRates"`
}

// AnalysisResult is the affordability analysis embedded in a profile.
// The JSON field names are part of the external interface: the dashboard,
// chat grounding, and the public retrieval endpoint echo them verbatim.
type AnalysisResult struct {
	AffordabilityScore      int             `json:"affordabilityScore"`
	EstimatedEMI            int64           `json:"estimatedEMI"`
	MonthlySavingsRequired  int64           `json:"monthlySavingsRequired"`
	MonthlySavingsPotential int64           `json:"monthlySavingsPotential"`
	LoanAmount              int64           `json:"loanAmount"`
	TargetDownPayment       int64           `json:"targetDownPayment"`
	MLScore                 *float64        `json:"mlScore"`
	PriceProjection         PriceProjection `json:"priceProjection"`
	AIAnalysisMarkdown      string          `json:"aiAnalysisMarkdown"`
}
