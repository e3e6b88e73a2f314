package domain

// License is the normalized license attached to output content.
type License struct {
	ID              LicenseID `json:"license_id"`
	CopyrightHolder string    `json:"copyright_holder"`
	Description     string    `json:"description,omitempty"`
}

// MasteryModel describes when a learner has mastered an exercise.
// M and N are only set for the m-of-n threshold model.
type MasteryModel struct {
	Model MasteryModelName `json:"mastery_model"`
	M     int              `json:"m,omitempty"`
	N     int              `json:"n,omitempty"`
}

// IsThreshold reports whether the model is an m-of-n threshold model.
func (m MasteryModel) IsThreshold() bool {
	return m.Model == MasteryModelMOfN
}
