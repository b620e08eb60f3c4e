package domain

var (
	MessageSuccessCreateUser = "user created successfully"
	MessageSuccessUpdateUser = "user updated successfully"
	MessageSuccessDeleteUser = "user deleted successfully"
	MessageSuccessGetProfile = "profile retrieved successfully"
	MessageSuccessLogin      = "logged in successfully"

	MessageFailedCreateUser = "failed to create user"
	MessageFailedUpdateUser = "failed to update user"
	MessageFailedDeleteUser = "failed to delete user"
	MessageFailedGetProfile = "failed to get profile"
	MessageFailedLogin      = "failed to login"
)

type (
	UserCreateRequest struct {
		Username string `json:"username" form:"username" validate:"notblank,max=150"`
		Password string `json:"password" form:"password" validate:"notblank,max=128"`
		Email    string `json:"email" form:"email" validate:"notblank,emailaddr"`
	}

	UserUpdateRequest struct {
		ID            uint     `form:"id"`
		Height        *int     `form:"height,omitempty"`
		Gender        *string  `form:"gender,omitempty" validate:"omitempty,max=1"`
		DailyKcal     *float64 `form:"daily_kcal,omitempty"`
		DailyCarbs    *float64 `form:"daily_carbs,omitempty"`
		DailyFat      *float64 `form:"daily_fat,omitempty"`
		DailyProteins *float64 `form:"daily_proteins,omitempty"`
	}

	UserDeleteRequest struct {
		ID       uint   `form:"id"`
		Password string `form:"password" validate:"notblank,max=128"`
	}

	LoginRequest struct {
		Username string `form:"username" validate:"notblank,max=150"`
		Password string `form:"password" validate:"notblank,max=128"`
	}

	UserCreatedResponse struct {
		UserID uint `json:"user_id"`
	}

	ProfileResponse struct {
		Username      string   `json:"username"`
		Height        *int     `json:"height"`
		Gender        string   `json:"gender"`
		DailyCarbs    *float64 `json:"daily_carbs"`
		DailyProteins *float64 `json:"daily_proteins"`
		DailyFat      *float64 `json:"daily_fat"`
	}

	LoginResponse struct {
		UserID uint `json:"user_id"`
	}
)
