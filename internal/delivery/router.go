package delivery

import (
	"catalog_service/internal/i18n"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RouteRegistrar is implemented by every handler in this package.
type RouteRegistrar interface {
	RegisterRoutes(router gin.IRouter)
}

// NewRouter builds the gin engine with recovery, request logging and
// language selection in front of the given handlers.
func NewRouter(logger *logrus.Logger, tr *i18n.Translator, handlers ...RouteRegistrar) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))
	router.Use(Localize(tr))

	for _, h := range handlers {
		h.RegisterRoutes(router)
	}
	logger.Info("API Routes registered.")
	return router
}
