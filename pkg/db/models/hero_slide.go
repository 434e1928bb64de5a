package models

// HeroSlide is one slide of the homepage hero carousel.
type HeroSlide struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ImageURL  string `gorm:"type:text;not null" json:"image_url"`
	Title     string `gorm:"type:text;not null" json:"title"`
	Subtitle  string `gorm:"type:text;not null;default:''" json:"subtitle"`
	IsActive  bool   `gorm:"not null;default:true" json:"is_active"`
	SortOrder int    `gorm:"not null;default:0" json:"sort_order"`
}

func (HeroSlide) TableName() string {
	return "hero_slides"
}
