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

type AdminHandler struct {
	useCase usecase.AdminUseCase
	auth    usecase.AuthUseCase
	tr      *i18n.Translator
	log     *logrus.Logger
}

type colorRequest struct {
	Name  string `json:"name" binding:"required"`
	Hex   string `json:"hex" binding:"required,hexcolor"`
	Image string `json:"image"`
}

type productRequest struct {
	Name          string         `json:"name" binding:"required"`
	Category      string         `json:"category" binding:"required"`
	Subcategory   string         `json:"subcategory" binding:"required"`
	Event         domain.Event   `json:"event"`
	Price         float64        `json:"price" binding:"gte=0"`
	ImageURL      string         `json:"imageUrl"`
	Images        []string       `json:"images"`
	Colors        []colorRequest `json:"colors" binding:"dive"`
	Sizes         []string       `json:"sizes"`
	Description   string         `json:"description"`
	Material      string         `json:"material"`
	Care          string         `json:"care"`
	IsRecommended bool           `json:"isRecommended"`
}

func (r productRequest) draft() domain.ProductDraft {
	colors := make([]domain.Color, 0, len(r.Colors))
	for _, c := range r.Colors {
		colors = append(colors, domain.Color{Name: c.Name, Hex: c.Hex, Image: c.Image})
	}
	return domain.ProductDraft{
		Name:          r.Name,
		Category:      r.Category,
		Subcategory:   r.Subcategory,
		Event:         r.Event,
		Price:         r.Price,
		ImageURL:      r.ImageURL,
		Images:        r.Images,
		Colors:        colors,
		Sizes:         r.Sizes,
		Description:   r.Description,
		Material:      r.Material,
		Care:          r.Care,
		IsRecommended: r.IsRecommended,
	}
}

func NewAdminHandler(uc usecase.AdminUseCase, auth usecase.AuthUseCase, tr *i18n.Translator, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		useCase: uc,
		auth:    auth,
		tr:      tr,
		log:     logger,
	}
}

func (h *AdminHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/admin/products", RequireAdmin(h.auth, h.tr, h.log))
	{
		products.GET("", h.ListProducts)
		products.POST("", h.CreateProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
}

func (h *AdminHandler) ListProducts(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", h.useCase.List())
}

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for create product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.useCase.Create(c.Request.Context(), req.draft())
	if err != nil {
		h.log.Errorf("Failed to create product '%s': %v", req.Name, err)
		respondError(c, h.tr, err)
		return
	}

	h.log.Infof("Product created successfully: ID %d, Name %s", created.ID, created.Name)
	SuccessResponse(c, http.StatusCreated, "Product created successfully", created)
}

// UpdateProduct replaces the whole record; the id comes from the path.
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for update product ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.useCase.Update(c.Request.Context(), req.draft().WithID(id))
	if err != nil {
		h.log.Errorf("Failed to update product ID %d: %v", id, err)
		respondError(c, h.tr, err)
		return
	}

	h.log.Infof("Product updated successfully: ID %d", updated.ID)
	SuccessResponse(c, http.StatusOK, "Product updated successfully", updated)
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		h.log.Warnf("Failed to delete product ID %d: %v", id, err)
		respondError(c, h.tr, err)
		return
	}

	h.log.Infof("Product deleted successfully: ID %d", id)
	SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil)
}

func (h *AdminHandler) pathID(c *gin.Context) (int, bool) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid product ID parameter: %s", idStr)
		respondError(c, h.tr, domain.ErrInvalidID)
		return 0, false
	}
	return id, true
}
