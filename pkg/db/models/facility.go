package models

// Facility is one amenity advertised on the public site.
type Facility struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Icon        string `gorm:"type:text;not null;default:'fa-check'" json:"icon"`
	Title       string `gorm:"type:text;not null" json:"title"`
	Description string `gorm:"type:text;not null;default:''" json:"description"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`
	SortOrder   int    `gorm:"not null;default:0" json:"sort_order"`
}

func (Facility) TableName() string {
	return "facilities"
}
