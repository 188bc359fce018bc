package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nbbaier/smartrecipe/internal/middleware"
	"github.com/nbbaier/smartrecipe/internal/models"
)

// ScanReceipt uploads a receipt photo, OCRs it and returns pantry
// restock candidates. The client reviews the parsed items and posts the
// keepers to the pantry bulk endpoint.
func (h *Handler) ScanReceipt(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if h.storage == nil || h.ocr == nil {
		return Error(c, fiber.StatusServiceUnavailable, "receipt scanning is not configured")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "image file is required")
	}

	contentType := file.Header.Get("Content-Type")
	if !isValidImageType(contentType) {
		return Error(c, fiber.StatusBadRequest, "invalid image type. Supported: JPEG, PNG, WebP")
	}

	if file.Size > 10*1024*1024 {
		return Error(c, fiber.StatusBadRequest, "file too large. Maximum size is 10MB")
	}

	src, err := file.Open()
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to read file")
	}
	defer src.Close()

	// Held in memory for both the S3 upload and OCR
	imageBytes, err := io.ReadAll(src)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to read file")
	}

	s3Key := receiptKey(userID, file.Filename)
	if _, err := h.storage.Upload(c.Context(), s3Key, bytes.NewReader(imageBytes), file.Size, contentType); err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to upload image")
	}

	ocrResult, err := h.ocr.ProcessImage(imageBytes)
	if err != nil {
		if deleteErr := h.storage.Delete(c.Context(), s3Key); deleteErr != nil {
			log.Printf("Warning: failed to clean up S3 object %s after OCR failure: %v", s3Key, deleteErr)
		}
		return Error(c, fiber.StatusInternalServerError, "OCR processing failed")
	}

	parsed, err := h.parser.Parse(ocrResult.Text)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to parse receipt")
	}
	parsed.RawText = ocrResult.Text

	pantry, err := h.db.GetAllPantryItems(c.Context(), userID)
	if err == nil {
		pantryNames := make([]string, 0, len(pantry))
		for _, item := range pantry {
			pantryNames = append(pantryNames, item.Name)
		}
		h.parser.MatchPantry(parsed, pantryNames)
	}

	imageURL, _ := h.storage.GetPresignedURL(c.Context(), s3Key, 1*time.Hour)

	return Success(c, models.ScanReceiptResponse{
		StorageKey: s3Key,
		ImageURL:   imageURL,
		Receipt:    parsed,
	})
}

// DeleteReceiptImage removes an uploaded receipt photo
func (h *Handler) DeleteReceiptImage(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if h.storage == nil {
		return Error(c, fiber.StatusServiceUnavailable, "receipt scanning is not configured")
	}

	key := c.Query("key")
	if !strings.HasPrefix(key, fmt.Sprintf("receipts/%d/", userID)) {
		return Error(c, fiber.StatusForbidden, "access denied")
	}

	if err := h.storage.Delete(c.Context(), key); err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to delete image")
	}

	return Success(c, fiber.Map{"deleted": true})
}

// isValidImageType checks if the content type is a valid image
func isValidImageType(contentType string) bool {
	validTypes := []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/webp",
	}

	for _, t := range validTypes {
		if strings.EqualFold(contentType, t) {
			return true
		}
	}
	return false
}

// receiptKey generates a unique S3 key for a receipt image
func receiptKey(userID int, filename string) string {
	timestamp := time.Now().UnixNano()
	ext := ""
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		ext = strings.ToLower(filename[idx:])
	}
	if ext == "" {
		ext = ".jpg"
	}
	return fmt.Sprintf("receipts/%d/%d%s", userID, timestamp, ext)
}
