package entities

// MealType is a named slot of a diary, e.g. breakfast or dinner.
type MealType struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	DiaryID uint   `gorm:"not null;index" json:"diary_id"`
	Name    string `gorm:"size:30;not null" json:"name"`

	Diary *Diary `gorm:"foreignKey:DiaryID;constraint:OnDelete:CASCADE"`
	Timestamp
}

// Meal totals are supplied by the client and never derived from ingredients.
type Meal struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	MealTypeID    uint     `gorm:"not null;index" json:"meal_type_id"`
	TotalKcal     *float64 `json:"total_kcal"`
	TotalCarbs    *float64 `json:"total_carbs"`
	TotalProteins *float64 `json:"total_proteins"`
	TotalFat      *float64 `json:"total_fat"`

	MealType *MealType `gorm:"foreignKey:MealTypeID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type Ingredient struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ProductID uint    `gorm:"not null;index" json:"product_id"`
	MealID    *uint   `gorm:"index" json:"meal_id"`
	Amount    float64 `json:"amount"`

	Product *Product `gorm:"foreignKey:ProductID"`
	Meal    *Meal    `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE"`
	Timestamp
}
