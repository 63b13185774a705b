package utils

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

const (
	// MaxDrawingSize is 25MB in bytes
	MaxDrawingSize = 25 * 1024 * 1024
)

// AllowedDrawingFormats are the technical drawing file extensions accepted
// for order attachments.
var AllowedDrawingFormats = map[string]bool{
	".pdf":  true,
	".step": true,
	".stp":  true,
	".dxf":  true,
	".dwg":  true,
}

// FileUploadError represents a file upload validation error
type FileUploadError struct {
	Code    string
	Message string
}

func (e *FileUploadError) Error() string {
	return e.Message
}

// ValidateDrawingFile validates the uploaded drawing's format and size
func ValidateDrawingFile(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > MaxDrawingSize {
		return &FileUploadError{
			Code:    "FILE_TOO_LARGE",
			Message: fmt.Sprintf("File size exceeds maximum allowed size of %d MB", MaxDrawingSize/(1024*1024)),
		}
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !AllowedDrawingFormats[ext] {
		return &FileUploadError{
			Code:    "INVALID_FILE_FORMAT",
			Message: "Only PDF, STEP, DXF and DWG files are allowed",
		}
	}

	return nil
}
