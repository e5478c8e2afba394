package repository

import (
	"gorm.io/gorm"

	"github.com/herocatalog/superhero-catalog/infra"
)

type Repository struct {
	SuperheroRepo *SuperheroRepository
	ImageRepo     *ImageRepository
}

func InitRepository(infra *infra.Infra) *Repository {
	return &Repository{
		SuperheroRepo: NewSuperheroRepository(infra.Postgres.DB),
		ImageRepo:     NewImageRepository(infra.Postgres.DB),
	}
}

// WithTransaction returns a Repository whose repos all run on tx.
func (r *Repository) WithTransaction(tx *gorm.DB) *Repository {
	return &Repository{
		SuperheroRepo: NewSuperheroRepository(tx),
		ImageRepo:     NewImageRepository(tx),
	}
}

func (r *Repository) Transaction(fn func(txRepo *Repository) error) error {
	return r.SuperheroRepo.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTransaction(tx))
	})
}
