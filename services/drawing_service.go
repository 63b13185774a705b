package services

import (
	"fmt"
	"mime/multipart"

	"github.com/fablink/fablink-api/utils"
)

// DrawingService handles technical drawing attachments on orders: upload,
// URL generation and deletion.
type DrawingService interface {
	// UploadDrawing validates and uploads a drawing file, returns the storage key
	UploadDrawing(fileHeader *multipart.FileHeader, orderID uint) (string, error)

	// GetDrawingURL generates a URL for accessing an uploaded drawing
	GetDrawingURL(drawingKey string) (string, error)

	// DeleteDrawing removes a drawing from storage
	DeleteDrawing(drawingKey string) error
}

// S3DrawingService implements DrawingService using S3 for storage
type S3DrawingService struct {
	s3Service S3Interface
}

var drawingServiceInstance DrawingService

// InitDrawingService initializes the drawing service with S3 backend
func InitDrawingService(s3Service S3Interface) DrawingService {
	drawingServiceInstance = &S3DrawingService{
		s3Service: s3Service,
	}
	return drawingServiceInstance
}

// GetDrawingService returns the initialized drawing service instance
func GetDrawingService() DrawingService {
	return drawingServiceInstance
}

// SetDrawingService sets the drawing service instance (primarily for testing)
func SetDrawingService(service DrawingService) {
	drawingServiceInstance = service
}

// UploadDrawing validates and uploads a technical drawing to S3
func (s *S3DrawingService) UploadDrawing(fileHeader *multipart.FileHeader, orderID uint) (string, error) {
	if err := utils.ValidateDrawingFile(fileHeader); err != nil {
		return "", err
	}

	keyPrefix := fmt.Sprintf("drawings/order_%d", orderID)
	s3Key, err := s.s3Service.UploadFile(fileHeader, keyPrefix)
	if err != nil {
		return "", fmt.Errorf("failed to upload drawing: %w", err)
	}

	return s3Key, nil
}

// GetDrawingURL generates a presigned URL for accessing a drawing
func (s *S3DrawingService) GetDrawingURL(drawingKey string) (string, error) {
	if drawingKey == "" {
		return "", nil
	}

	url, err := s.s3Service.GetPresignedURL(drawingKey)
	if err != nil {
		return "", fmt.Errorf("failed to generate drawing URL: %w", err)
	}

	return url, nil
}

// DeleteDrawing deletes a drawing from S3
func (s *S3DrawingService) DeleteDrawing(drawingKey string) error {
	if drawingKey == "" {
		return nil
	}

	if err := s.s3Service.DeleteFile(drawingKey); err != nil {
		return fmt.Errorf("failed to delete drawing: %w", err)
	}

	return nil
}
