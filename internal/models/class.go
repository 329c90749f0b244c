package models

type Class struct {
	CatalogBase

	Level      string `gorm:"size:100" json:"level"`
	Instructor string `gorm:"size:100" json:"instructor"`
	Price      string `gorm:"size:100" json:"price"`
	Schedule   string `gorm:"size:200" json:"schedule"`
}

func (c *Class) EntityName() string { return "class" }

// TextFields maps the payload keys a client may set to their columns.
// Title and status are handled by the store, never through this map.
func (c *Class) TextFields() map[string]*string {
	return map[string]*string{
		"short_description": &c.ShortDescription,
		"description":       &c.Description,
		"duration":          &c.Duration,
		"level":             &c.Level,
		"instructor":        &c.Instructor,
		"price":             &c.Price,
		"schedule":          &c.Schedule,
	}
}
