package entities

// Product nutrition facts are per 100g.
type Product struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"size:30;not null" json:"name"`
	Kcal     float64 `json:"kcal"`
	Carbs    float64 `json:"carbs"`
	Proteins float64 `json:"proteins"`
	Fat      float64 `json:"fat"`

	Timestamp
}
