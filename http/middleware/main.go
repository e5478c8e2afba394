package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/herocatalog/superhero-catalog/http/controller"
)

type Middlewares struct {
	CORSMiddleware gin.HandlerFunc
}

func NewMiddlewares(ctrl *controller.Controller) *Middlewares {
	return &Middlewares{
		CORSMiddleware: CORSMiddleware(ctrl.Config.EnvConfig),
	}
}
