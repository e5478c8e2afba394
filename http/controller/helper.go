package controller

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/herocatalog/superhero-catalog/entity"
	"github.com/herocatalog/superhero-catalog/http/controller/dto"
	"github.com/herocatalog/superhero-catalog/infra"
	"github.com/herocatalog/superhero-catalog/utils"
)

const (
	MaxUploadFiles   = 10
	MaxFileSizeBytes = 10 << 20 // 10MB

	detailCacheTTL = 5 * time.Minute
)

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// uploadError is a rejected upload batch: errMsg goes into the envelope's
// error field, message into its message field.
type uploadError struct {
	errMsg  string
	message string
}

// validateUploadBatch enforces count, per-file size and MIME type limits.
// Any single violation rejects the whole batch.
func validateUploadBatch(files []*multipart.FileHeader) *uploadError {
	if len(files) > MaxUploadFiles {
		return &uploadError{
			errMsg:  "Too many files uploaded",
			message: fmt.Sprintf("At most %d images are allowed per request", MaxUploadFiles),
		}
	}
	for _, file := range files {
		if !allowedMimeTypes[file.Header.Get("Content-Type")] {
			return &uploadError{
				errMsg:  "Invalid file type",
				message: "Only JPEG, PNG, GIF, and WebP images are allowed",
			}
		}
		if file.Size > MaxFileSizeBytes {
			return &uploadError{
				errMsg:  "File too large",
				message: "File size must be less than 10MB",
			}
		}
	}
	return nil
}

// bindingErrorDetails turns a gin binding error into the per-field detail
// list of the envelope.
func bindingErrorDetails(err error) []utils.FieldError {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []utils.FieldError{{Field: "request", Message: err.Error()}}
	}

	details := make([]utils.FieldError, 0, len(validationErrs))
	for _, e := range validationErrs {
		details = append(details, utils.FieldError{
			Field:   lowerFirst(e.Field()),
			Message: fieldErrorMessage(e),
		})
	}
	return details
}

func fieldErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", lowerFirst(e.Field()))
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", lowerFirst(e.Field()), e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", lowerFirst(e.Field()), e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be less than %s characters", lowerFirst(e.Field()), e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", lowerFirst(e.Field()), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", lowerFirst(e.Field()))
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}

// saveUploadedFiles writes every file in the batch to storage and returns the
// metadata rows to insert. If any write fails, files already stored for this
// batch are removed again.
func (ctrl *Controller) saveUploadedFiles(ctx context.Context, superheroID uuid.UUID, files []*multipart.FileHeader) ([]entity.SuperheroImage, error) {
	images := make([]entity.SuperheroImage, 0, len(files))

	for _, fileHeader := range files {
		src, err := fileHeader.Open()
		if err != nil {
			ctrl.removeStoredFiles(ctx, images)
			return nil, fmt.Errorf("failed to open uploaded file %s: %w", fileHeader.Filename, err)
		}

		filename := infra.GenerateFilename(fileHeader.Filename)
		contentType := fileHeader.Header.Get("Content-Type")

		path, err := ctrl.Infra.Storage.Save(ctx, filename, contentType, src, fileHeader.Size)
		src.Close()
		if err != nil {
			ctrl.removeStoredFiles(ctx, images)
			return nil, fmt.Errorf("failed to store file %s: %w", fileHeader.Filename, err)
		}

		images = append(images, entity.SuperheroImage{
			ID:           uuid.New(),
			SuperheroID:  superheroID,
			Filename:     filename,
			OriginalName: fileHeader.Filename,
			MimeType:     contentType,
			Size:         fileHeader.Size,
			Path:         path,
		})
	}

	return images, nil
}

// removeStoredFiles is best-effort cleanup: failures are logged and ignored.
func (ctrl *Controller) removeStoredFiles(ctx context.Context, images []entity.SuperheroImage) {
	for _, image := range images {
		if err := ctrl.Infra.Storage.Remove(ctx, image.Filename); err != nil {
			ctrl.Infra.Logger.Warningf("[Image] Failed to delete stored file %s: %v", image.Filename, err)
		}
	}
}

func toListItems(superheroes []entity.Superhero) []dto.SuperheroListItem {
	items := make([]dto.SuperheroListItem, 0, len(superheroes))
	for _, superhero := range superheroes {
		item := dto.SuperheroListItem{
			ID:       superhero.ID,
			Nickname: superhero.Nickname,
		}
		if len(superhero.Images) > 0 {
			first := superhero.Images[0]
			item.Image = &dto.ImageSummary{
				ID:       first.ID,
				Filename: first.Filename,
				Path:     first.Path,
			}
		}
		items = append(items, item)
	}
	return items
}

func toImageDetails(images []entity.SuperheroImage) []dto.ImageDetail {
	details := make([]dto.ImageDetail, 0, len(images))
	for _, image := range images {
		details = append(details, dto.ImageDetail{
			ID:           image.ID,
			Filename:     image.Filename,
			OriginalName: image.OriginalName,
			Path:         image.Path,
			Size:         image.Size,
			MimeType:     image.MimeType,
		})
	}
	return details
}

func detailCacheKey(id uuid.UUID) string {
	return "superhero:" + id.String()
}

func (ctrl *Controller) invalidateDetailCache(ctx context.Context, id uuid.UUID) {
	if err := ctrl.Infra.Cache.Delete(ctx, detailCacheKey(id)); err != nil {
		ctrl.Infra.Logger.Warningf("[Cache] Failed to invalidate %s: %v", detailCacheKey(id), err)
	}
}

func formFiles(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["images"]
}
