package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/herocatalog/superhero-catalog/entity"
)

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// CreateBatch bulk-inserts one metadata row per uploaded file.
func (r *ImageRepository) CreateBatch(images []entity.SuperheroImage) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.Create(&images).Error
}

// FindScoped looks an image up by its own id AND its owning superhero id, so
// one record's delete flow can never touch another record's images.
func (r *ImageRepository) FindScoped(imageID, superheroID uuid.UUID) (*entity.SuperheroImage, error) {
	var image entity.SuperheroImage
	err := r.db.Where("id = ? AND superhero_id = ?", imageID, superheroID).First(&image).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) FindBySuperheroID(superheroID uuid.UUID) ([]entity.SuperheroImage, error) {
	var images []entity.SuperheroImage
	err := r.db.Where("superhero_id = ?", superheroID).Order("created_at ASC").Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ImageRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&entity.SuperheroImage{}, "id = ?", id).Error
}
