package controller

type CredentialsRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type SetGoalRequest struct {
	NewGoal *int `json:"newGoal" form:"newGoal" binding:"required"`
}

type NutritionSearchRequest struct {
	Query string `json:"query" form:"query" binding:"required"`
}
