package dto

// SkillCreateRequest payload for a skill submission.
type SkillCreateRequest struct {
	UserID            int    `json:"userId"`
	SkillName         string `json:"skillName"`
	Category          string `json:"category"`
	ProficiencyLevel  string `json:"proficiencyLevel"`
	YearsOfExperience int    `json:"yearsOfExperience"`
	Certifications    string `json:"certifications"`
}

// Validate reports field-level issues keyed by field name.
func (r SkillCreateRequest) Validate() map[string]any {
	issues := make(map[string]any)
	if r.UserID <= 0 {
		issues["userId"] = "User id is required"
	}
	if r.SkillName == "" {
		issues["skillName"] = "Skill name is required"
	}
	if r.Category == "" {
		issues["category"] = "Category is required"
	}
	if r.ProficiencyLevel == "" {
		issues["proficiencyLevel"] = "Proficiency level is required"
	}
	if r.YearsOfExperience < 0 {
		issues["yearsOfExperience"] = "Years of experience must not be negative"
	}
	return issues
}
