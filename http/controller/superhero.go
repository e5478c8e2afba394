package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/herocatalog/superhero-catalog/entity"
	"github.com/herocatalog/superhero-catalog/http/controller/dto"
	"github.com/herocatalog/superhero-catalog/repository"
	"github.com/herocatalog/superhero-catalog/utils"
)

func (ctrl *Controller) CreateSuperhero(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateSuperheroRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.JSON400WithDetails(c, "Validation failed", bindingErrorDetails(err))
		return
	}

	files := formFiles(c)
	if uploadErr := validateUploadBatch(files); uploadErr != nil {
		ctrl.Infra.Logger.Warningf("[Superhero] Rejected upload batch: %s", uploadErr.errMsg)
		utils.JSON400WithMessage(c, uploadErr.errMsg, uploadErr.message)
		return
	}

	nicknameExists, err := ctrl.Repository.SuperheroRepo.NicknameExists(req.Nickname, nil)
	if err != nil {
		ctrl.Infra.Logger.Errorf("[Superhero] Error checking nickname existence: %v", err)
		utils.JSON500(c, "Error checking nickname existence")
		return
	}
	if nicknameExists {
		utils.JSON409(c, "Nickname already exists", "A superhero with this nickname already exists")
		return
	}

	superhero := &entity.Superhero{
		ID:                uuid.New(),
		Nickname:          req.Nickname,
		RealName:          req.RealName,
		OriginDescription: req.OriginDescription,
		Superpowers:       req.Superpowers,
		CatchPhrase:       req.CatchPhrase,
	}

	images, err := ctrl.saveUploadedFiles(ctx, superhero.ID, files)
	if err != nil {
		ctrl.Infra.Logger.Errorf("[Superhero] Failed to store uploaded images: %v", err)
		utils.JSON500(c, "Failed to store uploaded images")
		return
	}

	err = ctrl.Repository.Transaction(func(txRepo *repository.Repository) error {
		if err := txRepo.SuperheroRepo.Create(superhero); err != nil {
			return err
		}
		return txRepo.ImageRepo.CreateBatch(images)
	})
	if err != nil {
		// The files are already on disk; undo them before reporting.
		ctrl.removeStoredFiles(ctx, images)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.JSON409(c, "Nickname already exists", "A superhero with this nickname already exists")
			return
		}
		ctrl.Infra.Logger.Errorf("[Superhero] Failed to create superhero: %v", err)
		utils.JSON500(c, "Failed to create superhero")
		return
	}

	detail, err := ctrl.Repository.SuperheroRepo.FindByID(superhero.ID)
	if err != nil {
		ctrl.Infra.Logger.Errorf("[Superhero] Failed to load created superhero: %v", err)
		utils.JSON500(c, "Failed to load created superhero")
		return
	}

	ctrl.Infra.Logger.Infof("[Superhero] Created superhero %s (%s) with %d images",
		detail.ID, detail.Nickname, len(detail.Images))
	utils.JSON201(c, detail)
}

func (ctrl *Controller) GetSuperheroByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid superhero id")
		return
	}

	var cached entity.Superhero
	if found, err := ctrl.Infra.Cache.Get(ctx, detailCacheKey(id), &cached); err != nil {
		ctrl.Infra.Logger.Warningf("[Cache] Failed to read %s: %v", detailCacheKey(id), err)
	} else if found {
		utils.JSON200(c, &cached)
		return
	}

	superhero, err := ctrl.Repository.SuperheroRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Superhero not found")
			return
		}
		ctrl.Infra.Logger.Errorf("[Superhero] Failed to load superhero %s: %v", id, err)
		utils.JSON500(c, "Failed to load superhero")
		return
	}

	if err := ctrl.Infra.Cache.Set(ctx, detailCacheKey(id), superhero, detailCacheTTL); err != nil {
		ctrl.Infra.Logger.Warningf("[Cache] Failed to write %s: %v", detailCacheKey(id), err)
	}

	utils.JSON200(c, superhero)
}

func (ctrl *Controller) ListSuperheroes(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.JSON400WithDetails(c, "Validation failed", bindingErrorDetails(err))
		return
	}

	superheroes, total, err := ctrl.Repository.SuperheroRepo.ListPage(query.Page, query.Limit)
	if err != nil {
		ctrl.Infra.Logger.Errorf("[Superhero] Failed to list superheroes: %v", err)
		utils.JSON500(c, "Failed to list superheroes")
		return
	}

	pagination := utils.NewPagination(query.Page, query.Limit, total)
	utils.JSON200WithPagination(c, toListItems(superheroes), pagination)
}

func (ctrl *Controller) UpdateSuperhero(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid superhero id")
		return
	}

	var req dto.UpdateSuperheroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400WithDetails(c, "Validation failed", bindingErrorDetails(err))
		return
	}

	exists, err := ctrl.Repository.SuperheroRepo.ExistsByID(id)
	if err != nil {
		ctrl.Infra.Logger.Errorf("[Superhero] Error checking superhero existence: %v", err)
		utils.JSON500(c, "Error checking superhero existence")
		return
	}
	if !exists {
		utils.JSON404(c, "Superhero not found")
		return
	}

	if req.Nickname != nil {
		nicknameExists, err := ctrl.Repository.SuperheroRepo.NicknameExists(*req.Nickname, &id)
		if err != nil {
			ctrl.Infra.Logger.Errorf("[Superhero] Error checking nickname existence: %v", err)
			utils.JSON500(c, "Error checking nickname existence")
			return
		}
		if nicknameExists {
			utils.JSON409(c, "Nickname already exists", "A superhero with this nickname already exists")
			return
		}
	}

	if err := ctrl.Repository.SuperheroRepo.Update(id, req.Fields()); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.JSON409(c, "Nickname already exists", "A superhero with this nickname already exists")
			return
		}
		ctrl.Infra.Logger.Errorf("[Superhero] Failed to update superhero %s: %v", id, err)
		utils.JSON500(c, "Failed to update superhero")
		return
	}

	ctrl.invalidateDetailCache(ctx, id)

	detail, err := ctrl.Repository.SuperheroRepo.FindByID(id)
	if err != nil {
		ctrl.Infra.Logger.Errorf("[Superhero] Failed to load updated superhero: %v", err)
		utils.JSON500(c, "Failed to load updated superhero")
		return
	}

	utils.JSON200(c, detail)
}

func (ctrl *Controller) DeleteSuperhero(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid superhero id")
		return
	}

	// Snapshot the image rows first; the FK cascade removes them with the
	// record, but their files still need best-effort cleanup afterwards.
	images, err := ctrl.Repository.ImageRepo.FindBySuperheroID(id)
	if err != nil {
		ctrl.Infra.Logger.Errorf("[Superhero] Failed to load images for superhero %s: %v", id, err)
		utils.JSON500(c, "Failed to delete superhero")
		return
	}

	deleted, err := ctrl.Repository.SuperheroRepo.Delete(id)
	if err != nil {
		ctrl.Infra.Logger.Errorf("[Superhero] Failed to delete superhero %s: %v", id, err)
		utils.JSON500(c, "Failed to delete superhero")
		return
	}
	if !deleted {
		utils.JSON404(c, "Superhero not found")
		return
	}

	ctrl.removeStoredFiles(ctx, images)
	ctrl.invalidateDetailCache(ctx, id)

	ctrl.Infra.Logger.Infof("[Superhero] Deleted superhero %s and %d images", id, len(images))
	utils.JSONMessage(c, "Superhero deleted successfully")
}
