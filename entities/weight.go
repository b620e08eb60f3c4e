package entities

import "gorm.io/datatypes"

type Weight struct {
	ID     uint           `gorm:"primaryKey" json:"id"`
	UserID uint           `gorm:"not null;index" json:"user_id"`
	Value  float64        `json:"value"`
	Date   datatypes.Date `gorm:"not null" json:"date"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}
