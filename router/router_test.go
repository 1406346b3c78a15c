package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ctserver/controller"
	"ctserver/model"
	"ctserver/nutrition"
	"ctserver/router"
	"ctserver/store"
)

func newTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "Failed to open the in-memory database")
	require.NoError(t, db.AutoMigrate(&model.User{}))
	uc := controller.NewUserController(store.New(db))
	nc := controller.NewNutritionController(nutrition.NewClient("", ""))
	app := gin.New()
	router.InitRouter(app, uc, nc)
	return app
}

func doRequest(app *gin.Engine, method string, path string, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	app.ServeHTTP(w, req)
	return w
}

func TestLiveness(t *testing.T) {
	app := newTestApp(t)
	w := doRequest(app, "GET", "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Backend is running!", w.Body.String())
}

func TestAccountLifecycle(t *testing.T) {
	app := newTestApp(t)

	w := doRequest(app, "POST", "/register", `{"username":"alice","password":"pw1"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "User registered successfully")

	w = doRequest(app, "POST", "/login", `{"username":"alice","password":"pw1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Login successful","username":"alice"}`, w.Body.String())

	w = doRequest(app, "GET", "/user/alice/goal", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"calorieGoal":2000}`, w.Body.String())

	w = doRequest(app, "POST", "/user/alice/goal", `{"newGoal":1600}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"calorieGoal":1600}`, w.Body.String())

	w = doRequest(app, "GET", "/user/alice/goal", "")
	assert.JSONEq(t, `{"calorieGoal":1600}`, w.Body.String())
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app := newTestApp(t)

	w := doRequest(app, "POST", "/register", `{"username":"alice","password":"pw1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(app, "POST", "/register", `{"username":"alice","password":"different"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Username already exists")
}

func TestRegisterMissingFields(t *testing.T) {
	app := newTestApp(t)

	for _, body := range []string{`{}`, `{"username":"alice"}`, `{"password":"pw1"}`} {
		w := doRequest(app, "POST", "/register", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
		assert.Contains(t, w.Body.String(), "Missing username or password")
	}
}

func TestRegisterHashFailureIsNotAConflict(t *testing.T) {
	app := newTestApp(t)

	// bcrypt rejects passwords longer than 72 bytes; that is a server-side
	// failure, not a duplicate username.
	longPassword := strings.Repeat("x", 100)
	w := doRequest(app, "POST", "/register", `{"username":"alice","password":"`+longPassword+`"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "Username already exists")
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	app := newTestApp(t)
	doRequest(app, "POST", "/register", `{"username":"alice","password":"pw1"}`)

	wrongPassword := doRequest(app, "POST", "/login", `{"username":"alice","password":"pw2"}`)
	unknownUser := doRequest(app, "POST", "/login", `{"username":"bob","password":"pw1"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
	assert.Contains(t, wrongPassword.Body.String(), "Invalid username or password")
}

func TestGoalUnknownUser(t *testing.T) {
	app := newTestApp(t)

	w := doRequest(app, "GET", "/user/ghost/goal", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")

	w = doRequest(app, "POST", "/user/ghost/goal", `{"newGoal":1500}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetGoalMissingField(t *testing.T) {
	app := newTestApp(t)
	doRequest(app, "POST", "/register", `{"username":"alice","password":"pw1"}`)

	w := doRequest(app, "POST", "/user/alice/goal", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing newGoal")
}

func TestUnmatchedRouteAnswersStructured404(t *testing.T) {
	app := newTestApp(t)

	w := doRequest(app, "GET", "/no/such/route", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not Found","path":"/no/such/route"}`, w.Body.String())
}

func TestCorsHeadersOnEveryRoute(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/", "/register", "/api/nutrition/search"} {
		w := doRequest(app, "POST", path, `{}`)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), "path %s", path)
	}
}

func TestPreflightAnswers204(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{
		"/api/nutrition/search",
		"/api/nutrition/search/instant",
		"/api/nutrition/natural/nutrients",
	} {
		w := doRequest(app, "OPTIONS", path, "")
		assert.Equal(t, http.StatusNoContent, w.Code, "path %s", path)
		assert.Empty(t, w.Body.String())
	}
}

func TestRequestIdHeader(t *testing.T) {
	app := newTestApp(t)

	w := doRequest(app, "GET", "/", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}
