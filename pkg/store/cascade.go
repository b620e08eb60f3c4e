package store

import (
	"diet-diary/entities"

	"gorm.io/gorm"
)

// The Delete* helpers remove rows together with everything they own. They
// must run inside a transaction.

func DeleteMeals(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Where("meal_id IN ?", ids).Delete(&entities.Ingredient{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&entities.Meal{}).Error
}

func DeleteMealTypes(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	var mealIDs []uint
	if err := tx.Model(&entities.Meal{}).Where("meal_type_id IN ?", ids).Pluck("id", &mealIDs).Error; err != nil {
		return err
	}
	if err := DeleteMeals(tx, mealIDs); err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&entities.MealType{}).Error
}

func DeleteDiaries(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Where("diary_id IN ?", ids).Delete(&entities.Activity{}).Error; err != nil {
		return err
	}
	var mealTypeIDs []uint
	if err := tx.Model(&entities.MealType{}).Where("diary_id IN ?", ids).Pluck("id", &mealTypeIDs).Error; err != nil {
		return err
	}
	if err := DeleteMealTypes(tx, mealTypeIDs); err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&entities.Diary{}).Error
}

func DeleteUsers(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Where("user_id IN ?", ids).Delete(&entities.Weight{}).Error; err != nil {
		return err
	}
	var diaryIDs []uint
	if err := tx.Model(&entities.Diary{}).Where("user_id IN ?", ids).Pluck("id", &diaryIDs).Error; err != nil {
		return err
	}
	if err := DeleteDiaries(tx, diaryIDs); err != nil {
		return err
	}
	if err := tx.Where("user_id IN ?", ids).Delete(&entities.Profile{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&entities.User{}).Error
}
