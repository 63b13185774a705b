package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fablink/fablink-api/config"
	"github.com/fablink/fablink-api/models"
	"github.com/fablink/fablink-api/services"
	"github.com/fablink/fablink-api/utils"
)

// UploadDrawing handles POST /api/v1/orders/:id/drawings - attaches a
// technical drawing (PDF/STEP/DXF/DWG) to an order.
func UploadDrawing(c *gin.Context) {
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

	fileHeader, err := c.FormFile("drawing")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_FILE",
				"message": "A 'drawing' file field is required",
			},
		})
		return
	}

	drawingService := services.GetDrawingService()
	if drawingService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORAGE_UNAVAILABLE",
				"message": "Drawing storage is not configured",
			},
		})
		return
	}

	s3Key, err := drawingService.UploadDrawing(fileHeader, order.ID)
	if err != nil {
		var uploadErr *utils.FileUploadError
		if errors.As(err, &uploadErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    uploadErr.Code,
					"message": uploadErr.Message,
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_FAILED",
				"message": "Failed to store drawing",
			},
		})
		return
	}

	// Replace any previous drawing.
	oldKey := order.DrawingS3Key
	order.DrawingS3Key = &s3Key
	if err := db.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to save drawing reference",
			},
		})
		return
	}
	if oldKey != nil && *oldKey != s3Key {
		// Old drawing is unreferenced now; removal failure is not fatal.
		_ = drawingService.DeleteDrawing(*oldKey)
	}

	if url, err := drawingService.GetDrawingURL(s3Key); err == nil && url != "" {
		order.DrawingURL = &url
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}

// GetDrawingURL handles GET /api/v1/orders/:id/drawing - returns a
// presigned URL for the order's technical drawing.
func GetDrawingURL(c *gin.Context) {
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

	if order.DrawingS3Key == nil || *order.DrawingS3Key == "" {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DRAWING_NOT_FOUND",
				"message": "Order has no drawing attached",
			},
		})
		return
	}

	drawingService := services.GetDrawingService()
	if drawingService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORAGE_UNAVAILABLE",
				"message": "Drawing storage is not configured",
			},
		})
		return
	}

	url, err := drawingService.GetDrawingURL(*order.DrawingS3Key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "URL_GENERATION_FAILED",
				"message": "Failed to generate drawing URL",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"drawing_url": url,
		},
	})
}
