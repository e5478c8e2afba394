package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/herocatalog/superhero-catalog/http/controller"
	middlewares "github.com/herocatalog/superhero-catalog/http/middleware"
	"github.com/herocatalog/superhero-catalog/infra"
	"github.com/herocatalog/superhero-catalog/utils"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles := middlewares.NewMiddlewares(ctrl)
	r.Use(middles.CORSMiddleware)

	r.GET("/health", ctrl.GetHealth)

	// Uploaded files are only served directly when stored on local disk;
	// the MinIO driver hands out absolute object URLs instead.
	if local, ok := ctrl.Infra.Storage.(*infra.LocalStorage); ok {
		r.Static("/uploads", local.Dir())
	}

	apiRoutes := r.Group("/api")
	{
		superheroRoutes := apiRoutes.Group("/superheroes")
		{
			superheroRoutes.GET("", ctrl.ListSuperheroes)
			superheroRoutes.GET("/:id", ctrl.GetSuperheroByID)
			superheroRoutes.POST("", ctrl.CreateSuperhero)
			superheroRoutes.PUT("/:id", ctrl.UpdateSuperhero)
			superheroRoutes.DELETE("/:id", ctrl.DeleteSuperhero)

			superheroRoutes.POST("/:id/images", ctrl.AddImages)
			superheroRoutes.DELETE("/:id/images/:imageId", ctrl.RemoveImage)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.Response{
			Success: false,
			Error:   "Route not found",
			Message: fmt.Sprintf("Cannot %s %s", c.Request.Method, c.Request.URL.Path),
		})
	})

	return r
}
