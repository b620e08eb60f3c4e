package entities

import "gorm.io/datatypes"

type Discipline struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"size:30;not null" json:"name"`
	CaloriesBurn float64 `json:"calories_burn"` // per hour

	Timestamp
}

type Activity struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	DiaryID      uint           `gorm:"not null;index" json:"diary_id"`
	DisciplineID uint           `gorm:"not null;index" json:"discipline_id"`
	Time         datatypes.Time `gorm:"not null" json:"time"`

	Diary      *Diary      `gorm:"foreignKey:DiaryID;constraint:OnDelete:CASCADE"`
	Discipline *Discipline `gorm:"foreignKey:DisciplineID"`
	Timestamp
}
