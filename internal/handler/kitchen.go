package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Scarred95/CloudCookbook/internal/kitchen"
	"github.com/Scarred95/CloudCookbook/internal/util"

	"github.com/gin-gonic/gin"
)

// KitchenHandler exposes matchmaking and the cooking transaction.
type KitchenHandler struct {
	Matchmaker *kitchen.Matchmaker
	Cooker     *kitchen.Cooker
}

func NewKitchenHandler(mm *kitchen.Matchmaker, cooker *kitchen.Cooker) *KitchenHandler {
	return &KitchenHandler{Matchmaker: mm, Cooker: cooker}
}

// FindCookable lists the recipes the user can cook right now.
func (h *KitchenHandler) FindCookable(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	recipes, err := h.Matchmaker.FindCookable(userID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "matchmaking failed")
		return
	}

	util.Success(c, util.Response{
		"recipes": recipes,
	})
}

// Cook attempts to cook a recipe and debit the pantry.
// Shortfalls map to 400 with the itemized missing list; unknown recipes
// to 404; storage failures to 500 with the ledger untouched.
func (h *KitchenHandler) Cook(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	recipeID, err := strconv.Atoi(c.Param("recipe_id"))
	if err != nil || recipeID <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid recipe id")
		return
	}

	result, err := h.Cooker.Cook(userID, uint(recipeID))
	if err != nil {
		if errors.Is(err, kitchen.ErrRecipeNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "recipe not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "database error during cooking")
		}
		return
	}

	if result.Status == kitchen.StatusFailed {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    util.CodeConflict,
			"status":  result.Status,
			"message": result.Message,
			"missing": result.Missing,
		})
		return
	}

	util.Success(c, util.Response{
		"status":  result.Status,
		"message": result.Message,
	})
}
