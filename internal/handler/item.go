package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Scarred95/CloudCookbook/internal/catalog"
	"github.com/Scarred95/CloudCookbook/internal/util"

	"github.com/gin-gonic/gin"
)

// ItemHandler exposes the global ingredient catalog.
type ItemHandler struct {
	Catalog *catalog.Catalog
}

func NewItemHandler(cat *catalog.Catalog) *ItemHandler {
	return &ItemHandler{Catalog: cat}
}

type createItemReq struct {
	IngredientName string `json:"ingredient_name" binding:"required"`
}

// GetName resolves an ingredient id to its name.
func (h *ItemHandler) GetName(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid item id")
		return
	}

	name, err := h.Catalog.NameOf(uint(id))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "item not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "lookup failed")
		}
		return
	}

	util.Success(c, util.Response{
		"ingredient_id":   id,
		"ingredient_name": name,
	})
}

// Search resolves an ingredient name to its id (?name=milk).
func (h *ItemHandler) Search(c *gin.Context) {
	name := c.Query("name")
	if err := util.ValidateIngredientName(name); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	id, err := h.Catalog.Resolve(name)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "item not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "lookup failed")
		}
		return
	}

	util.Success(c, util.Response{
		"ingredient_id":   id,
		"ingredient_name": catalog.Normalize(name),
	})
}

// Create adds a new global ingredient.
func (h *ItemHandler) Create(c *gin.Context) {
	var req createItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if err := util.ValidateIngredientName(req.IngredientName); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	id, err := h.Catalog.Create(req.IngredientName)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrExists):
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "item already exists")
		case errors.Is(err, catalog.ErrInvalidName):
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid ingredient name")
		default:
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create failed")
		}
		return
	}

	util.Created(c, util.Response{
		"ingredient_id": id,
		"message":       fmt.Sprintf("Item %q created successfully.", catalog.Normalize(req.IngredientName)),
	})
}
