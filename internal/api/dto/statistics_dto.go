package dto

// StatisticCreateRequest payload for inserting a statistic row.
type StatisticCreateRequest struct {
	Category string `json:"category"`
	Value    int    `json:"value"`
	Region   string `json:"region"`
}

// Validate reports field-level issues keyed by field name.
func (r StatisticCreateRequest) Validate() map[string]any {
	issues := make(map[string]any)
	if r.Category == "" {
		issues["category"] = "Category is required"
	}
	if r.Value < 0 {
		issues["value"] = "Value must not be negative"
	}
	return issues
}
