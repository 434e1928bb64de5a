package models

// GalleryImage is one photo of the facility gallery.
type GalleryImage struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ImageURL  string `gorm:"type:text;not null" json:"image_url"`
	Caption   string `gorm:"type:text;not null;default:''" json:"caption"`
	IsActive  bool   `gorm:"not null;default:true" json:"is_active"`
	SortOrder int    `gorm:"not null;default:0" json:"sort_order"`
}

func (GalleryImage) TableName() string {
	return "gallery_images"
}
