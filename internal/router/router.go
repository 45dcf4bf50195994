package router

import (
	"github.com/Scarred95/CloudCookbook/internal/catalog"
	"github.com/Scarred95/CloudCookbook/internal/config"
	"github.com/Scarred95/CloudCookbook/internal/cookbook"
	"github.com/Scarred95/CloudCookbook/internal/handler"
	"github.com/Scarred95/CloudCookbook/internal/kitchen"
	"github.com/Scarred95/CloudCookbook/internal/middleware"
	"github.com/Scarred95/CloudCookbook/internal/pantry"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services and handlers onto a Gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.AccessLog(), gin.Recovery())

	cat := catalog.New(db)
	ledger := pantry.New(db, cat)
	store := cookbook.New(db, cat)
	matchmaker := kitchen.NewMatchmaker(db, ledger)
	cooker := kitchen.NewCooker(db, ledger, store)

	itemHandler := handler.NewItemHandler(cat)
	r.GET("/items/:id", itemHandler.GetName)
	r.GET("/items", itemHandler.Search) // ?name=milk
	r.POST("/items", itemHandler.Create)

	pantryHandler := handler.NewPantryHandler(ledger)
	r.GET("/pantry/:uid", pantryHandler.Get)
	r.POST("/pantry/:uid", pantryHandler.Modify)
	r.DELETE("/pantry/:uid/:ingredient", pantryHandler.RemoveAll)

	exportHandler := handler.NewExportHandler(ledger)
	r.GET("/pantry/:uid/export/csv", exportHandler.ExportCSV)
	r.GET("/pantry/:uid/export/xlsx", exportHandler.ExportXLSX)

	recipeHandler := handler.NewRecipeHandler(store)
	r.POST("/recipes", recipeHandler.Create)
	r.GET("/recipes", recipeHandler.List)
	r.GET("/recipes/:id", recipeHandler.Get)
	r.PUT("/recipes/:id", recipeHandler.Update)

	userHandler := handler.NewUserHandler(db)
	r.POST("/users", userHandler.Create)
	r.GET("/users", userHandler.Search) // ?username=ADMIN
	r.GET("/users/:uid", userHandler.Get)
	r.PUT("/users/:uid", userHandler.Update)

	kitchenHandler := handler.NewKitchenHandler(matchmaker, cooker)
	r.GET("/matchmaking/:uid", kitchenHandler.FindCookable)
	r.POST("/cook/:uid/:recipe_id", kitchenHandler.Cook)

	return r
}
