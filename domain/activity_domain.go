package domain

import "gorm.io/datatypes"

var (
	MessageSuccessGetDiscipline     = "discipline retrieved successfully"
	MessageSuccessSearchDisciplines = "disciplines found successfully"
	MessageSuccessGetActivity       = "activity retrieved successfully"
	MessageSuccessCreateActivity    = "activity created successfully"
	MessageSuccessDeleteActivity    = "activity deleted successfully"
	MessageSuccessGetActivities     = "activities retrieved successfully"

	MessageFailedGetDiscipline     = "failed to get discipline"
	MessageFailedSearchDisciplines = "failed to search disciplines"
	MessageFailedGetActivity       = "failed to get activity"
	MessageFailedCreateActivity    = "failed to create activity"
	MessageFailedDeleteActivity    = "failed to delete activity"
	MessageFailedGetActivities     = "failed to get activities"
)

type (
	DisciplineSearchRequest struct {
		Name string `form:"name" validate:"notblank,max=30"`
	}

	// DisciplineCreateRequest is used by fixture loading; disciplines are not
	// created over HTTP.
	DisciplineCreateRequest struct {
		Name         string  `json:"name" form:"name" validate:"notblank,max=30"`
		CaloriesBurn float64 `json:"calories_burn" form:"calories_burn"`
	}

	DisciplineResponse struct {
		Name         string  `json:"name"`
		CaloriesBurn float64 `json:"calories_burn"`
	}

	DisciplineListItem struct {
		ID           uint    `json:"id"`
		Name         string  `json:"name"`
		CaloriesBurn float64 `json:"calories_burn"`
	}

	ActivityCreateRequest struct {
		DiaryID      uint           `form:"diary_id"`
		DisciplineID uint           `form:"discipline_id"`
		Time         datatypes.Time `form:"time"`
	}

	ActivitiesRequest struct {
		DiaryID uint `form:"diary_id"`
	}

	ActivityResponse struct {
		Name         string  `json:"name"`
		CaloriesBurn float64 `json:"calories_burn"`
		Time         string  `json:"time"`
	}
)
