package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Scarred95/CloudCookbook/internal/cookbook"
	"github.com/Scarred95/CloudCookbook/internal/util"

	"github.com/gin-gonic/gin"
)

// RecipeHandler exposes recipe CRUD on top of the cookbook store.
type RecipeHandler struct {
	Store *cookbook.Store
}

func NewRecipeHandler(store *cookbook.Store) *RecipeHandler {
	return &RecipeHandler{Store: store}
}

type recipeReq struct {
	Name         string           `json:"recipe_name" binding:"required,min=3,max=50"`
	Description  string           `json:"description" binding:"max=200"`
	CreatorID    uint             `json:"recipe_creator"`
	TimeNeeded   int              `json:"time_needed" binding:"required,gt=0,lte=600"`
	Ingredients  map[string]int64 `json:"recipe_ingredients" binding:"required"`
	Instructions []string         `json:"instructions" binding:"required"`
}

func (r *recipeReq) toRecipe() *cookbook.Recipe {
	return &cookbook.Recipe{
		Name:         r.Name,
		Description:  r.Description,
		CreatorID:    r.CreatorID,
		TimeNeeded:   r.TimeNeeded,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
	}
}

func parseRecipeID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid recipe id")
		return 0, false
	}
	return uint(id), true
}

// Create adds a new recipe with its ingredients and steps.
func (h *RecipeHandler) Create(c *gin.Context) {
	var req recipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	id, err := h.Store.Create(req.toRecipe())
	if err != nil {
		if errors.Is(err, cookbook.ErrValidation) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not create recipe")
		}
		return
	}

	util.Created(c, util.Response{
		"message":   "Recipe created",
		"recipe_id": id,
	})
}

// Get returns one full recipe.
func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := parseRecipeID(c)
	if !ok {
		return
	}

	recipe, err := h.Store.Get(id)
	if err != nil {
		if errors.Is(err, cookbook.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "recipe not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return
	}

	util.Success(c, util.Response{
		"recipe": recipe,
	})
}

// List returns recipe summaries in catalog order; ?limit=N caps the count.
func (h *RecipeHandler) List(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n <= 0 {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid limit")
			return
		}
		limit = n
	}

	summaries, err := h.Store.Summaries(limit)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	util.Success(c, util.Response{
		"recipes": summaries,
	})
}

// Update replaces an existing recipe.
func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := parseRecipeID(c)
	if !ok {
		return
	}

	var req recipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	if err := h.Store.Update(id, req.toRecipe()); err != nil {
		switch {
		case errors.Is(err, cookbook.ErrNotFound):
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "recipe not found")
		case errors.Is(err, cookbook.ErrValidation):
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		default:
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "update failed")
		}
		return
	}

	recipe, err := h.Store.Get(id)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	util.Success(c, util.Response{
		"recipe": recipe,
	})
}
