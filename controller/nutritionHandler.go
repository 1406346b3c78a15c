package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ctserver/logger"
	"ctserver/nutrition"
)

type NutritionController struct {
	Client *nutrition.Client
}

func NewNutritionController(client *nutrition.Client) *NutritionController {
	return &NutritionController{Client: client}
}

func (nc *NutritionController) logFields(c *gin.Context, api string) *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"conn-type": "http",
		"api":       api,
		"addr":      c.Request.RemoteAddr,
		"req-id":    c.GetString(RequestIdKey),
	})
}

// SearchHandler proxies a natural-language food description to the
// /natural/nutrients endpoint.
func (nc *NutritionController) SearchHandler(c *gin.Context) {
	log := nc.logFields(c, "nutrition_search")
	log.Info("Nutrition search")
	var data NutritionSearchRequest
	if err := c.ShouldBindJSON(&data); err != nil {
		log.Warn("Parameter error: ", err)
		c.JSON(http.StatusBadRequest, MissingQueryTextResponse)
		return
	}
	payload := gin.H{"query": data.Query}
	result, err := nc.Client.Natural(payload)
	if err != nil {
		nc.answerProxyError(c, log, err, "Failed to reach Nutritionix")
		return
	}
	c.JSON(http.StatusOK, result)
	log.Info("Nutrition search result sent")
}

// SearchInstantHandler proxies a short search term to the /search/instant
// endpoint.
func (nc *NutritionController) SearchInstantHandler(c *gin.Context) {
	log := nc.logFields(c, "nutrition_search_instant")
	log.Info("Nutrition instant search")
	query := c.Query("query")
	if query == "" {
		log.Warn("Missing query parameter")
		c.JSON(http.StatusBadRequest, MissingQueryParamResponse)
		return
	}
	result, err := nc.Client.Instant(query)
	if err != nil {
		nc.answerProxyError(c, log, err, "Nutritionix instant search failed")
		return
	}
	c.JSON(http.StatusOK, result)
	log.Info("Nutrition instant search result sent")
}

// NaturalNutrientsHandler forwards an arbitrary JSON payload verbatim to the
// /natural/nutrients endpoint.
func (nc *NutritionController) NaturalNutrientsHandler(c *gin.Context) {
	log := nc.logFields(c, "nutrition_natural_nutrients")
	log.Info("Nutrition nutrient lookup")
	var payload interface{}
	if err := c.ShouldBindJSON(&payload); err != nil || emptyPayload(payload) {
		log.Warn("Missing JSON body")
		c.JSON(http.StatusBadRequest, MissingBodyResponse)
		return
	}
	result, err := nc.Client.Natural(payload)
	if err != nil {
		nc.answerProxyError(c, log, err, "Nutritionix request failed")
		return
	}
	c.JSON(http.StatusOK, result)
	log.Info("Nutrition nutrient lookup result sent")
}

// emptyPayload reports whether a decoded JSON body carries nothing worth
// forwarding. The payload is otherwise not validated; objects, arrays and
// scalars all pass through verbatim.
func emptyPayload(payload interface{}) bool {
	switch v := payload.(type) {
	case nil:
		return true
	case map[string]interface{}:
		return len(v) == 0
	case []interface{}:
		return len(v) == 0
	case string:
		return v == ""
	case float64:
		return v == 0
	case bool:
		return !v
	}
	return false
}

// answerProxyError maps the client's error kinds onto HTTP statuses. Missing
// credentials answer 500, an upstream error status is relayed with a generic
// body, and anything network-shaped becomes a 502.
func (nc *NutritionController) answerProxyError(c *gin.Context, log *logrus.Entry, err error, gatewayMessage string) {
	var upstream *nutrition.UpstreamError
	switch {
	case errors.Is(err, nutrition.ErrNotConfigured):
		log.Warn("Missing Nutritionix credentials")
		c.JSON(http.StatusInternalServerError, NotConfiguredResponse)
	case errors.As(err, &upstream):
		log.Warn("Nutritionix error status: ", upstream.Status)
		c.JSON(upstream.Status, UpstreamErrorResponse)
	default:
		log.Error("Nutritionix request failed: ", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: gatewayMessage})
	}
}
