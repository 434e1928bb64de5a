package models

// Shift is one bookable study time slot.
type Shift struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Icon        string `gorm:"type:text;not null;default:'fa-clock'" json:"icon"`
	TimeSlot    string `gorm:"type:text;not null" json:"time_slot"`
	Description string `gorm:"type:text;not null;default:''" json:"description"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`
	SortOrder   int    `gorm:"not null;default:0" json:"sort_order"`
}

func (Shift) TableName() string {
	return "shifts"
}
