package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fablink/fablink-api/config"
	"github.com/fablink/fablink-api/matching"
	"github.com/fablink/fablink-api/models"
	"github.com/fablink/fablink-api/services"
)

// RecommendationRequest represents the request body for a matching run.
// All fields are optional; zero values select engine defaults.
type RecommendationRequest struct {
	MaxRecommendations int     `json:"max_recommendations" binding:"omitempty,gte=1,lte=15"`
	MinScoreFloor      float64 `json:"min_score_floor" binding:"omitempty,gte=0,lte=100"`
	UrgencyBoost       float64 `json:"urgency_boost" binding:"omitempty,gte=1,lte=3"`
}

// matchCacheTTL returns the configured cache TTL, defaulting when the
// config was never loaded (tests).
func matchCacheTTL() time.Duration {
	if cfg := config.GetConfig(); cfg != nil && cfg.MatchCacheTTL > 0 {
		return cfg.MatchCacheTTL
	}
	return 15 * time.Minute
}

// GetRecommendations handles POST /api/v1/orders/:id/recommendations -
// runs the matching engine for an order against the full manufacturer pool.
func GetRecommendations(c *gin.Context) {
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}

	var req RecommendationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "Invalid request data",
					"details": err.Error(),
				},
			})
			return
		}
	}

	db := config.GetDB()
	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	opts := matching.Options{
		MaxRecommendations: req.MaxRecommendations,
		MinScoreFloor:      req.MinScoreFloor,
		UrgencyBoost:       req.UrgencyBoost,
	}

	// Serve from cache when a previous identical run is still fresh.
	cache := services.GetMatchCache()
	cacheKey := services.MatchCacheKey(order.ID, opts.MaxRecommendations, opts.MinScoreFloor, opts.UrgencyBoost)
	if cache != nil {
		if cached, err := cache.Get(c.Request.Context(), cacheKey); err != nil {
			log.Printf("match cache read failed: %v", err)
		} else if cached != nil {
			cached.FromCache = true
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"data":    cached,
			})
			return
		}
	}

	var pool []models.ManufacturerProfile
	if err := db.Find(&pool).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load manufacturer pool",
			},
		})
		return
	}

	engine := matching.NewEngine(services.GetQuoteService())
	result, err := engine.RankManufacturers(&order, pool, opts)
	if err != nil {
		if matching.IsInvalidInput(err) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_ORDER",
					"message": err.Error(),
				},
			})
			return
		}

		// Internal engine failure: degrade to the fallback heuristic
		// rather than returning a bare 500.
		log.Printf("matching engine failed for order %d, using fallback: %v", order.ID, err)
		result, err = matching.NewFallbackHeuristic().Recommend(&order, pool, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "MATCHING_FAILED",
					"message": "Failed to produce recommendations",
				},
			})
			return
		}
	}

	if cache != nil && result.Source == models.SourceFullEngine {
		if err := cache.Set(c.Request.Context(), cacheKey, result, matchCacheTTL()); err != nil {
			log.Printf("match cache write failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// GetOrderComplexity handles GET /api/v1/orders/:id/complexity - runs the
// complexity analyzer alone, without ranking.
func GetOrderComplexity(c *gin.Context) {
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	analysis := matching.AnalyzeComplexity(&order, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    analysis,
	})
}

// ClearMatchCache handles DELETE /api/v1/matching/cache - drops all cached
// ranking results.
func ClearMatchCache(c *gin.Context) {
	cache := services.GetMatchCache()
	if cache == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "No cache configured",
		})
		return
	}

	if err := cache.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CACHE_ERROR",
				"message": "Failed to clear match cache",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Match cache cleared",
	})
}

// parseOrderID reads the :id path parameter, writing the error response
// itself when the value is not a positive integer.
func parseOrderID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ORDER_ID",
				"message": "Order id must be a positive integer",
			},
		})
		return 0, false
	}
	return uint(id), true
}
