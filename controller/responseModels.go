package controller

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

type GoalResponse struct {
	CalorieGoal int `json:"calorieGoal"`
}

var (
	MissingCredentialsResponse = ErrorResponse{Error: "Missing username or password"}
	UsernameTakenResponse      = ErrorResponse{Error: "Username already exists"}
	InvalidCredentialsResponse = ErrorResponse{Error: "Invalid username or password"}
	UserNotFoundResponse       = ErrorResponse{Error: "User not found"}
	MissingGoalResponse        = ErrorResponse{Error: "Missing newGoal"}

	RegisteredResponse = MessageResponse{Message: "User registered successfully"}

	MissingQueryTextResponse  = ErrorResponse{Error: "Missing query text"}
	MissingQueryParamResponse = ErrorResponse{Error: "Missing 'query' parameter"}
	MissingBodyResponse       = ErrorResponse{Error: "Missing JSON body"}
	NotConfiguredResponse     = ErrorResponse{Error: "Nutrition service not configured"}
	UpstreamErrorResponse     = ErrorResponse{Error: "Nutritionix returned an error"}
)
