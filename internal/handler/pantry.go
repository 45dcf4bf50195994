package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Scarred95/CloudCookbook/internal/pantry"
	"github.com/Scarred95/CloudCookbook/internal/util"

	"github.com/gin-gonic/gin"
)

// PantryHandler exposes the per-user pantry ledger.
type PantryHandler struct {
	Ledger *pantry.Ledger
}

func NewPantryHandler(ledger *pantry.Ledger) *PantryHandler {
	return &PantryHandler{Ledger: ledger}
}

type modifyPantryReq struct {
	IngredientName string `json:"ingredient_name" binding:"required"`
	Amount         int64  `json:"amount" binding:"required"`
	Action         string `json:"action" binding:"required,oneof=add remove"`
}

func parseUserID(c *gin.Context) (uint, bool) {
	uid, err := strconv.Atoi(c.Param("uid"))
	if err != nil || uid <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid user id")
		return 0, false
	}
	return uint(uid), true
}

// Get returns the user's pantry as an ingredient_name -> amount mapping.
func (h *PantryHandler) Get(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	entries, err := h.Ledger.List(userID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	mapping := make(map[string]int64, len(entries))
	for _, e := range entries {
		mapping[e.Name] = e.Amount
	}

	util.Success(c, util.Response{
		"uid":    userID,
		"pantry": mapping,
	})
}

// Modify adds to or removes from the pantry.
func (h *PantryHandler) Modify(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req modifyPantryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	dir, err := pantry.ParseDirection(req.Action)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "action must be add or remove")
		return
	}

	if err := h.Ledger.Apply(userID, req.IngredientName, req.Amount, dir); err != nil {
		switch {
		case errors.Is(err, pantry.ErrValidation):
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		case errors.Is(err, pantry.ErrUnknownIngredient), errors.Is(err, pantry.ErrNotInPantry):
			util.Error(c, http.StatusNotFound, util.CodeNotFound, err.Error())
		default:
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "updating pantry failed")
		}
		return
	}

	util.Created(c, util.Response{
		"message": fmt.Sprintf("Pantry updated: %s %d %s", req.Action, req.Amount, req.IngredientName),
	})
}

// RemoveAll deletes one ingredient from the pantry completely, whatever
// the stored amount.
func (h *PantryHandler) RemoveAll(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	name := c.Param("ingredient")
	if err := util.ValidateIngredientName(name); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	if err := h.Ledger.RemoveAll(userID, name); err != nil {
		switch {
		case errors.Is(err, pantry.ErrValidation):
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		case errors.Is(err, pantry.ErrUnknownIngredient), errors.Is(err, pantry.ErrNotInPantry):
			util.Error(c, http.StatusNotFound, util.CodeNotFound, err.Error())
		default:
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "removing item failed")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
