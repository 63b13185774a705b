package models

// Complexity levels, from easiest to hardest to manufacture.
const (
	ComplexitySimple   = "simple"
	ComplexityModerate = "moderate"
	ComplexityHigh     = "high"
	ComplexityCritical = "critical"
)

// ComplexityAnalysis is the derived difficulty assessment of an order.
// It is computed fresh per matching request from the order's fields, used
// immediately and discarded; it is never the authoritative persisted record.
type ComplexityAnalysis struct {
	Score float64 `json:"score"` // 0-10 composite
	Level string  `json:"level"` // simple, moderate, high, critical

	// Sub-dimension scores, each normalized to 0-1
	ProcessScore     float64 `json:"process_score"`
	MaterialScore    float64 `json:"material_score"`
	PrecisionScore   float64 `json:"precision_score"`
	TimelinePressure float64 `json:"timeline_pressure"`
	CustomScore      float64 `json:"custom_requirements_score"`

	// Human-readable contributing factors
	Factors []string `json:"factors"`

	// How many ranked options the caller should present for this order
	RecommendedOptions int `json:"recommended_options"`
}
