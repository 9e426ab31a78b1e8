package delivery

import (
	"net/http"
	"strconv"

	"catalog_service/internal/domain"
	"catalog_service/internal/i18n"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type LookbookHandler struct {
	useCase usecase.LookbookUseCase
	tr      *i18n.Translator
	log     *logrus.Logger
}

func NewLookbookHandler(uc usecase.LookbookUseCase, tr *i18n.Translator, logger *logrus.Logger) *LookbookHandler {
	return &LookbookHandler{useCase: uc, tr: tr, log: logger}
}

func (h *LookbookHandler) RegisterRoutes(router gin.IRouter) {
	lookbook := router.Group("/lookbook")
	{
		lookbook.GET("", h.ListCollections)
		lookbook.GET("/:collection", h.GetCollection)
		lookbook.GET("/:collection/looks/:look", h.GetLook)
		lookbook.GET("/:collection/looks/:look/next", h.NextLook)
		lookbook.GET("/:collection/looks/:look/prev", h.PrevLook)
	}
}

func (h *LookbookHandler) ListCollections(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Collections retrieved successfully", h.useCase.Collections())
}

// GetCollection falls back to the most recent collection for unknown ids.
func (h *LookbookHandler) GetCollection(c *gin.Context) {
	collection, ok := h.useCase.Collection(c.Param("collection"))
	if !ok {
		respondError(c, h.tr, domain.ErrLookNotFound)
		return
	}
	SuccessResponse(c, http.StatusOK, "Collection retrieved successfully", collection)
}

func (h *LookbookHandler) GetLook(c *gin.Context) {
	h.serveLook(c, h.useCase.Look)
}

func (h *LookbookHandler) NextLook(c *gin.Context) {
	h.serveLook(c, h.useCase.Next)
}

func (h *LookbookHandler) PrevLook(c *gin.Context) {
	h.serveLook(c, h.useCase.Prev)
}

func (h *LookbookHandler) serveLook(c *gin.Context, find func(string, int) (domain.Look, error)) {
	collectionID := c.Param("collection")
	lookStr := c.Param("look")
	lookID, err := strconv.Atoi(lookStr)
	if err != nil {
		h.log.Warnf("Invalid look ID parameter: %s", lookStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid look ID format")
		return
	}

	look, err := find(collectionID, lookID)
	if err != nil {
		h.log.Warnf("Failed to get look %d in collection %q: %v", lookID, collectionID, err)
		respondError(c, h.tr, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Look retrieved successfully", look)
}
