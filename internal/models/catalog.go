package models

import "time"

// CatalogBase carries the columns shared by every media-backed catalog
// entity. Slug is unique per table, so the same title may exist as both
// a class and a program.
type CatalogBase struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title string `gorm:"size:200;not null" json:"title"`
	Slug  string `gorm:"size:200;uniqueIndex;not null" json:"slug"`

	// Relative storage path ("/uploads/<filename>"), empty when no media
	// is attached.
	Image string `gorm:"size:255" json:"image"`

	ShortDescription string `gorm:"type:text" json:"short_description"`
	Description      string `gorm:"type:text" json:"description"`
	Duration         string `gorm:"size:100" json:"duration"`

	Status string `gorm:"size:20;default:'active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *CatalogBase) GetID() uint          { return b.ID }
func (b *CatalogBase) GetTitle() string     { return b.Title }
func (b *CatalogBase) SetTitle(v string)    { b.Title = v }
func (b *CatalogBase) GetSlug() string      { return b.Slug }
func (b *CatalogBase) SetSlug(v string)     { b.Slug = v }
func (b *CatalogBase) GetImage() string     { return b.Image }
func (b *CatalogBase) SetImage(v string)    { b.Image = v }
func (b *CatalogBase) GetStatus() string    { return b.Status }
func (b *CatalogBase) SetStatus(v string)   { b.Status = v }
func (b *CatalogBase) Touch(now time.Time) { b.UpdatedAt = now }
