package domain

import "gorm.io/datatypes"

var (
	MessageSuccessGetDiary    = "diary retrieved successfully"
	MessageSuccessCreateDiary = "diary created successfully"

	MessageFailedGetDiary    = "failed to get diary"
	MessageFailedCreateDiary = "failed to create diary"
)

type (
	DiaryRequest struct {
		UserID uint           `form:"user_id"`
		Date   datatypes.Date `form:"date"`
	}

	DiaryResponse struct {
		DiaryID uint `json:"diary_id"`
	}
)
