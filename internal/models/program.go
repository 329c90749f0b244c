package models

type Program struct {
	CatalogBase

	Category     string `gorm:"size:100" json:"category"`
	Eligibility  string `gorm:"type:text" json:"eligibility"`
	FeeStructure string `gorm:"size:200" json:"fee_structure"`
	Features     string `gorm:"type:text" json:"features"`
}

func (p *Program) EntityName() string { return "program" }

func (p *Program) TextFields() map[string]*string {
	return map[string]*string{
		"short_description": &p.ShortDescription,
		"description":       &p.Description,
		"duration":          &p.Duration,
		"category":          &p.Category,
		"eligibility":       &p.Eligibility,
		"fee_structure":     &p.FeeStructure,
		"features":          &p.Features,
	}
}
