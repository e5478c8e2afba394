package controller

import (
	"github.com/herocatalog/superhero-catalog/config"
	"github.com/herocatalog/superhero-catalog/infra"
	"github.com/herocatalog/superhero-catalog/repository"
)

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Repository *repository.Repository
}

func NewController(config *config.Config, infra *infra.Infra, repo *repository.Repository) *Controller {
	return &Controller{
		Config:     config,
		Infra:      infra,
		Repository: repo,
	}
}
