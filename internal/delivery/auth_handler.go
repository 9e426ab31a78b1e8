package delivery

import (
	"net/http"

	"catalog_service/internal/i18n"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	useCase usecase.AuthUseCase
	tr      *i18n.Translator
	log     *logrus.Logger
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func NewAuthHandler(uc usecase.AuthUseCase, tr *i18n.Translator, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{useCase: uc, tr: tr, log: logger}
}

// RegisterRoutes mounts login publicly; logout requires the session it ends.
func (h *AuthHandler) RegisterRoutes(router gin.IRouter) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", RequireAdmin(h.useCase, h.tr, h.log), h.Logout)
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for login: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	token, ok, err := h.useCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.log.Errorf("Login failed: %v", err)
		respondError(c, h.tr, err)
		return
	}
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, h.tr.Translate(languageOf(c, h.tr), "Invalid email or password"))
		return
	}

	SuccessResponse(c, http.StatusOK, "Logged in successfully", loginResponse{Token: token})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.useCase.Logout(c.Request.Context()); err != nil {
		h.log.Errorf("Logout failed: %v", err)
		respondError(c, h.tr, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}
