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

type CatalogHandler struct {
	useCase usecase.CatalogUseCase
	tr      *i18n.Translator
	log     *logrus.Logger
}

type categoryPage struct {
	Category domain.CategoryInfo `json:"category"`
	Products []domain.Product    `json:"products"`
}

type productPage struct {
	Product domain.Product   `json:"product"`
	Related []domain.Product `json:"related"`
}

func NewCatalogHandler(uc usecase.CatalogUseCase, tr *i18n.Translator, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		useCase: uc,
		tr:      tr,
		log:     logger,
	}
}

func (h *CatalogHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/categories/:id", h.GetCategory)

	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/recommended", h.ListRecommended)
		products.GET("/:id", h.GetProduct)
	}
}

// GetCategory serves the category page: localized metadata and the matching
// products. Unknown identifiers get the placeholder metadata, not a 404.
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	identifier := domain.NormalizeKey(c.Param("id"))
	info, products := h.useCase.Category(identifier)

	h.log.Infof("Category %q resolved to %d products", identifier, len(products))
	SuccessResponse(c, http.StatusOK, "Category retrieved successfully", categoryPage{
		Category: h.tr.Category(languageOf(c, h.tr), info),
		Products: products,
	})
}

// ListProducts returns the whole catalog, or the products of ?category= when given.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	if identifier := c.Query("category"); identifier != "" {
		_, products := h.useCase.Category(domain.NormalizeKey(identifier))
		h.log.Infof("Listing %d products for category %q", len(products), identifier)
		SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
		return
	}

	products := h.useCase.Products()
	h.log.Infof("Retrieved %d products", len(products))
	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}

func (h *CatalogHandler) ListRecommended(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Recommended products retrieved successfully", h.useCase.Recommended())
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid product ID parameter: %s", idStr)
		respondError(c, h.tr, domain.ErrInvalidID)
		return
	}

	product, related, err := h.useCase.Product(id)
	if err != nil {
		h.log.Warnf("Failed to get product by ID %d: %v", id, err)
		respondError(c, h.tr, err)
		return
	}

	h.log.Infof("Product retrieved successfully: ID %d", id)
	SuccessResponse(c, http.StatusOK, "Product retrieved successfully", productPage{Product: product, Related: related})
}

// HealthHandler reports liveness and where the catalog was loaded from.
type HealthHandler struct {
	store *usecase.ProductStore
}

func NewHealthHandler(store *usecase.ProductStore) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/health", h.Health)
}

func (h *HealthHandler) Health(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "ok", gin.H{
		"catalog":  h.store.Report(),
		"products": len(h.store.Products()),
	})
}
