package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/herocatalog/superhero-catalog/utils"
)

func (ctrl *Controller) AddImages(c *gin.Context) {
	ctx := c.Request.Context()

	superheroID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid superhero id")
		return
	}

	exists, err := ctrl.Repository.SuperheroRepo.ExistsByID(superheroID)
	if err != nil {
		ctrl.Infra.Logger.Errorf("[Image] Error checking superhero existence: %v", err)
		utils.JSON500(c, "Error checking superhero existence")
		return
	}
	if !exists {
		utils.JSON404(c, "Superhero not found")
		return
	}

	files := formFiles(c)
	if len(files) == 0 {
		utils.JSON400(c, "No images provided")
		return
	}
	if uploadErr := validateUploadBatch(files); uploadErr != nil {
		ctrl.Infra.Logger.Warningf("[Image] Rejected upload batch for superhero %s: %s", superheroID, uploadErr.errMsg)
		utils.JSON400WithMessage(c, uploadErr.errMsg, uploadErr.message)
		return
	}

	images, err := ctrl.saveUploadedFiles(ctx, superheroID, files)
	if err != nil {
		ctrl.Infra.Logger.Errorf("[Image] Failed to store uploaded images: %v", err)
		utils.JSON500(c, "Failed to store uploaded images")
		return
	}

	if err := ctrl.Repository.ImageRepo.CreateBatch(images); err != nil {
		ctrl.removeStoredFiles(ctx, images)
		ctrl.Infra.Logger.Errorf("[Image] Failed to persist image metadata: %v", err)
		utils.JSON500(c, "Failed to persist image metadata")
		return
	}

	ctrl.invalidateDetailCache(ctx, superheroID)

	all, err := ctrl.Repository.ImageRepo.FindBySuperheroID(superheroID)
	if err != nil {
		ctrl.Infra.Logger.Errorf("[Image] Failed to list images for superhero %s: %v", superheroID, err)
		utils.JSON500(c, "Failed to list images")
		return
	}

	ctrl.Infra.Logger.Infof("[Image] Added %d images to superhero %s", len(images), superheroID)
	utils.JSON200WithMessage(c, toImageDetails(all), "Images added successfully")
}

func (ctrl *Controller) RemoveImage(c *gin.Context) {
	ctx := c.Request.Context()

	superheroID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid superhero id")
		return
	}
	imageID, err := uuid.Parse(c.Param("imageId"))
	if err != nil {
		utils.JSON400(c, "Invalid image id")
		return
	}

	exists, err := ctrl.Repository.SuperheroRepo.ExistsByID(superheroID)
	if err != nil {
		ctrl.Infra.Logger.Errorf("[Image] Error checking superhero existence: %v", err)
		utils.JSON500(c, "Error checking superhero existence")
		return
	}
	if !exists {
		utils.JSON404(c, "Superhero not found")
		return
	}

	// Lookup scoped to the claimed owner: an image id belonging to another
	// superhero is treated as not found.
	image, err := ctrl.Repository.ImageRepo.FindScoped(imageID, superheroID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Image not found")
			return
		}
		ctrl.Infra.Logger.Errorf("[Image] Failed to load image %s: %v", imageID, err)
		utils.JSON500(c, "Failed to load image")
		return
	}

	// Best-effort file cleanup: the metadata row is removed even when the
	// stored file cannot be deleted.
	if err := ctrl.Infra.Storage.Remove(ctx, image.Filename); err != nil {
		ctrl.Infra.Logger.Warningf("[Image] Failed to delete stored file %s: %v", image.Filename, err)
	}

	if err := ctrl.Repository.ImageRepo.Delete(imageID); err != nil {
		ctrl.Infra.Logger.Errorf("[Image] Failed to delete image %s: %v", imageID, err)
		utils.JSON500(c, "Failed to delete image")
		return
	}

	ctrl.invalidateDetailCache(ctx, superheroID)

	ctrl.Infra.Logger.Infof("[Image] Removed image %s from superhero %s", imageID, superheroID)
	utils.JSONMessage(c, "Image removed successfully")
}
