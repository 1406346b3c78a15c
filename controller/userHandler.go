package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ctserver/logger"
	"ctserver/store"
)

type UserController struct {
	Store *store.Store
}

func NewUserController(s *store.Store) *UserController {
	return &UserController{Store: s}
}

func (uc *UserController) logFields(c *gin.Context, api string) *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"conn-type": "http",
		"api":       api,
		"addr":      c.Request.RemoteAddr,
		"req-id":    c.GetString(RequestIdKey),
	})
}

func (uc *UserController) RegisterHandler(c *gin.Context) {
	log := uc.logFields(c, "register")
	log.Info("User register")
	var data CredentialsRequest
	if err := c.ShouldBindJSON(&data); err != nil {
		log.Warn("Parameter error: ", err)
		c.JSON(http.StatusBadRequest, MissingCredentialsResponse)
		return
	}
	err := uc.Store.CreateUser(data.Username, data.Password)
	if errors.Is(err, store.ErrUsernameTaken) {
		log.Info("Registering username already exists")
		c.JSON(http.StatusBadRequest, UsernameTakenResponse)
		return
	}
	if err != nil {
		log.Error("Failed to create the user: ", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register the user"})
		return
	}
	c.JSON(http.StatusCreated, RegisteredResponse)
	log.Info("User register succeed")
}

// Login only confirms the credentials; no session token is issued and every
// request is authenticated on its own.
func (uc *UserController) LoginHandler(c *gin.Context) {
	log := uc.logFields(c, "login")
	log.Info("User login")
	var data CredentialsRequest
	if err := c.ShouldBindJSON(&data); err != nil {
		log.Warn("Parameter error: ", err)
		c.JSON(http.StatusBadRequest, MissingCredentialsResponse)
		return
	}
	if err := uc.Store.Authenticate(data.Username, data.Password); err != nil {
		// Unknown user and wrong password answer identically.
		log.Info("Invalid credentials")
		c.JSON(http.StatusUnauthorized, InvalidCredentialsResponse)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{
		Message:  "Login successful",
		Username: data.Username,
	})
	log.Info("User login succeed")
}

func (uc *UserController) GetGoalHandler(c *gin.Context) {
	log := uc.logFields(c, "get_goal")
	username := c.Param("username")
	goal, err := uc.Store.Goal(username)
	if err != nil {
		log.Info("User not found: ", username)
		c.JSON(http.StatusNotFound, UserNotFoundResponse)
		return
	}
	c.JSON(http.StatusOK, GoalResponse{CalorieGoal: goal})
	log.Info("Calorie goal sent")
}

func (uc *UserController) SetGoalHandler(c *gin.Context) {
	log := uc.logFields(c, "set_goal")
	log.Info("User update calorie goal")
	username := c.Param("username")
	var data SetGoalRequest
	if err := c.ShouldBindJSON(&data); err != nil {
		log.Warn("Parameter error: ", err)
		c.JSON(http.StatusBadRequest, MissingGoalResponse)
		return
	}
	goal, err := uc.Store.SetGoal(username, *data.NewGoal)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info("User not found: ", username)
		c.JSON(http.StatusNotFound, UserNotFoundResponse)
		return
	}
	if err != nil {
		log.Error("Failed to update the calorie goal: ", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update the calorie goal"})
		return
	}
	c.JSON(http.StatusOK, GoalResponse{CalorieGoal: goal})
	log.Info("Calorie goal updated")
}
