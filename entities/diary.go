package entities

import "gorm.io/datatypes"

// Diary is a user's container for a single day. (UserID, Date) acts as the
// natural key but is not enforced by the schema.
type Diary struct {
	ID     uint           `gorm:"primaryKey" json:"id"`
	UserID uint           `gorm:"not null;index" json:"user_id"`
	Date   datatypes.Date `gorm:"not null" json:"date"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}
