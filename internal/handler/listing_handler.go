package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atta-hamamah/MemberShift/internal/middleware"
	"github.com/atta-hamamah/MemberShift/internal/model"
	"github.com/atta-hamamah/MemberShift/internal/service"
)

// ListingHandler exposes the listing operations over HTTP.
type ListingHandler struct {
	Svc *service.ListingService
}

// RegisterRoutes регистрирует все роуты для Listings.
func (h *ListingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/listings", h.SearchListings)
	rg.GET("/listings/:id", h.GetListingByID)
	rg.GET("/my/listings", h.GetMyListings)

	rg.POST("/listings", h.CreateListing)
	rg.PUT("/listings/:id", h.UpdateListing)
	rg.DELETE("/listings/:id", h.DeleteListing)
}

// GET /api/listings?query=...&type=...&category=...&location=...
func (h *ListingHandler) SearchListings(c *gin.Context) {
	filter := model.SearchFilter{
		Query:    c.Query("query"),
		Type:     c.Query("type"),
		Category: c.Query("category"),
		Location: c.Query("location"),
	}

	list, err := h.Svc.Search(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/listings/:id
func (h *ListingHandler) GetListingByID(c *gin.Context) {
	listing, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// GET /api/my/listings
func (h *ListingHandler) GetMyListings(c *gin.Context) {
	list, err := h.Svc.MyListings(c.Request.Context(), c.GetString(middleware.IdentityKey))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/listings
func (h *ListingHandler) CreateListing(c *gin.Context) {
	var sub model.Submission
	if err := c.ShouldBind(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	id, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.IdentityKey), sub)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/listings/:id
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	var sub model.Submission
	if err := c.ShouldBind(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := h.Svc.Update(c.Request.Context(), c.GetString(middleware.IdentityKey), c.Param("id"), sub); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

// DELETE /api/listings/:id
func (h *ListingHandler) DeleteListing(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.GetString(middleware.IdentityKey), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// writeError maps the service error taxonomy onto HTTP: field errors for
// the form, 401/403 for denied access, 404 for unknown IDs, 500 otherwise.
func writeError(c *gin.Context, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
		return
	}

	var aerr *service.AuthorizationError
	if errors.As(err, &aerr) {
		status := http.StatusForbidden
		if aerr.Reason == service.DenyUnauthenticated {
			status = http.StatusUnauthorized
		}
		c.JSON(status, gin.H{"error": aerr.Error()})
		return
	}

	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
