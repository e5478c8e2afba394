package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/herocatalog/superhero-catalog/entity"
)

type SuperheroRepository struct {
	db *gorm.DB
}

func NewSuperheroRepository(db *gorm.DB) *SuperheroRepository {
	return &SuperheroRepository{db: db}
}

func (r *SuperheroRepository) Create(superhero *entity.Superhero) error {
	return r.db.Create(superhero).Error
}

// FindByID loads the detail projection: all fields plus images ordered by
// creation time ascending.
func (r *SuperheroRepository) FindByID(id uuid.UUID) (*entity.Superhero, error) {
	var superhero entity.Superhero
	err := r.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&superhero).Error
	if err != nil {
		return nil, err
	}
	if superhero.Images == nil {
		superhero.Images = []entity.SuperheroImage{}
	}
	return &superhero, nil
}

// ListPage returns one page of superheroes ordered most-recent first, along
// with the total record count. Images are preloaded oldest-first so callers
// can take the first one as the thumbnail.
func (r *SuperheroRepository) ListPage(page, limit int) ([]entity.Superhero, int64, error) {
	var total int64
	if err := r.db.Model(&entity.Superhero{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var superheroes []entity.Superhero
	err := r.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&superheroes).Error
	if err != nil {
		return nil, 0, err
	}

	return superheroes, total, nil
}

// Update applies only the given columns. updated_at is always touched, so an
// empty partial update still bumps the timestamp.
func (r *SuperheroRepository) Update(id uuid.UUID, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	return r.db.Model(&entity.Superhero{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes the record and reports whether it existed. Image rows go
// with it via the FK cascade.
func (r *SuperheroRepository) Delete(id uuid.UUID) (bool, error) {
	result := r.db.Delete(&entity.Superhero{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *SuperheroRepository) ExistsByID(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Superhero{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// NicknameExists checks for an exact, case-sensitive nickname match,
// optionally excluding one record (used when updating that record itself).
func (r *SuperheroRepository) NicknameExists(nickname string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&entity.Superhero{}).Where("nickname = ?", nickname)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
