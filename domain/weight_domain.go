package domain

import "gorm.io/datatypes"

var (
	MessageSuccessGetWeight    = "weight retrieved successfully"
	MessageSuccessCreateWeight = "weight created successfully"
	MessageSuccessDeleteWeight = "weight deleted successfully"
	MessageSuccessGetWeights   = "weights retrieved successfully"

	MessageFailedGetWeight    = "failed to get weight"
	MessageFailedCreateWeight = "failed to create weight"
	MessageFailedDeleteWeight = "failed to delete weight"
	MessageFailedGetWeights   = "failed to get weights"
)

type (
	WeightRequest struct {
		UserID uint           `form:"user_id"`
		Date   datatypes.Date `form:"date"`
	}

	WeightCreateRequest struct {
		UserID uint           `form:"user_id"`
		Date   datatypes.Date `form:"date"`
		Value  float64        `form:"value"`
	}

	WeightsRequest struct {
		UserID uint `form:"user_id"`
	}

	WeightResponse struct {
		WeightID uint `json:"weight_id"`
	}

	WeightListItem struct {
		Value float64 `json:"value"`
		Date  string  `json:"date"`
	}
)
