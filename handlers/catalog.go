package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookwell/middleware"
	"bookwell/models"
	"bookwell/services/catalog"
)

// CatalogHandler exposes category and service endpoints.
type CatalogHandler struct {
	Service catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	created, err := h.Service.CreateCategory(c.Request.Context(), cat)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	cats, err := h.Service.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}
	if cats == nil {
		cats = []models.Category{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.Service.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	providerID := c.GetString(middleware.CtxProviderID)
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	created, err := h.Service.CreateService(c.Request.Context(), providerID, svc)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.Service.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *CatalogHandler) ListByProvider(c *gin.Context) {
	svcs, err := h.Service.ListByProvider(c.Request.Context(), c.Param("providerId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list services"})
		return
	}
	if svcs == nil {
		svcs = []models.Service{}
	}
	c.JSON(http.StatusOK, gin.H{"services": svcs})
}

func (h *CatalogHandler) ListByCategory(c *gin.Context) {
	svcs, err := h.Service.ListByCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list services"})
		return
	}
	if svcs == nil {
		svcs = []models.Service{}
	}
	c.JSON(http.StatusOK, gin.H{"services": svcs})
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	providerID := c.GetString(middleware.CtxProviderID)
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	svc, err := h.Service.UpdateService(c.Request.Context(), providerID, c.Param("id"), fields)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *CatalogHandler) DeactivateService(c *gin.Context) {
	providerID := c.GetString(middleware.CtxProviderID)
	if err := h.Service.DeactivateService(c.Request.Context(), providerID, c.Param("id")); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}
