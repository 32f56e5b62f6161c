package api

import (
	"errors"
	"net/http"

	reqdto "restaurant-pos/internal/handler/dto/request"
	resdto "restaurant-pos/internal/handler/dto/response"
	"restaurant-pos/internal/usecase/commands"
	"restaurant-pos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoryHandler struct {
	categoryCommands commands.CategoryCommands
	catalogQueries   queries.CatalogQueries
}

func NewCategoryHandler(categoryCommands commands.CategoryCommands, catalogQueries queries.CatalogQueries) *CategoryHandler {
	return &CategoryHandler{
		categoryCommands: categoryCommands,
		catalogQueries:   catalogQueries,
	}
}

// @Summary List categories
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.CategoryResponse
// @Router /admin/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	views, err := h.catalogQueries.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCategoryViews(views))
}

// @Summary Create category
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCategoryRequest true "Category"
// @Success 201 {object} resdto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req reqdto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.categoryCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCategoryView(view))
}

// @Summary Update category
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body reqdto.UpdateCategoryRequest true "Category"
// @Success 200 {object} resdto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category ID",
		})
		return
	}

	var req reqdto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.categoryCommands.Update(c.Request.Context(), categoryID, req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCategoryView(view))
}

// @Summary Delete category
// @Tags admin
// @Param id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category ID",
		})
		return
	}

	if err := h.categoryCommands.Delete(c.Request.Context(), categoryID); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Category not found",
		})
	case errors.Is(err, commands.ErrCategoryNotEmpty):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Category still has products",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Category validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
