package migration

import (
	"diet-diary/entities"
	"fmt"

	"gorm.io/gorm"
)

// Models lists every table in dependency order.
func Models() []any {
	return []any{
		&entities.User{},
		&entities.Profile{},
		&entities.Weight{},
		&entities.Diary{},
		&entities.MealType{},
		&entities.Meal{},
		&entities.Product{},
		&entities.Ingredient{},
		&entities.Discipline{},
		&entities.Activity{},
	}
}

func Migrate(db *gorm.DB) error {
	for _, model := range Models() {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrate %T: %w", model, err)
		}
	}
	return nil
}
