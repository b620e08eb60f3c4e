package entities

// User holds the credentials of an account. Physical and dietary attributes
// live in Profile, which shares the user's ID.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Password string `gorm:"size:128;not null" json:"-"`
	Email    string `gorm:"size:254" json:"email"`

	Timestamp
}

type Profile struct {
	UserID        uint     `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Height        *int     `json:"height"`
	Gender        string   `gorm:"size:1" json:"gender"`
	DailyKcal     *float64 `json:"daily_kcal"`
	DailyCarbs    *float64 `json:"daily_carbs"`
	DailyFat      *float64 `json:"daily_fat"`
	DailyProteins *float64 `json:"daily_proteins"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}
