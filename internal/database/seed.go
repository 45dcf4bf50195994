package database

import (
	"fmt"

	"github.com/Scarred95/CloudCookbook/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// standard accounts created on first start
var seedUsers = []string{"ADMIN", "Auren_1337", "Memelord_Tommy", "Nerd_Tubbe"}

// top-100 standard ingredient catalog
var seedIngredients = []string{
	// Dairy & Eggs
	"butter", "eggs", "milk", "cheddar cheese", "parmesan cheese",
	"mozzarella", "heavy cream", "yogurt", "sour cream", "cream cheese",
	// Veggies
	"onion", "garlic", "tomato", "potato", "carrot",
	"bell pepper", "broccoli", "spinach", "cucumber", "lettuce",
	"mushroom", "zucchini", "ginger", "celery", "green onion",
	"corn", "avocado", "cauliflower", "sweet potato", "chili pepper",
	"peas", "green beans", "asparagus", "cabbage", "eggplant",
	"kale", "leek", "brussels sprouts", "beets", "radish",
	// Fruits
	"lemon", "lime", "apple", "banana", "orange",
	"strawberry", "blueberry", "pineapple", "mango", "grapes",
	"peach", "pear", "watermelon", "cherry", "raspberry",
	// Meat
	"chicken breast", "ground beef", "bacon", "sausage", "salmon",
	"tuna", "shrimp", "pork chop", "steak", "tofu",
	"ham", "turkey", "chicken thighs", "ground pork", "pepperoni",
	// Grains
	"rice", "spaghetti", "pasta", "flour", "bread",
	"oats", "breadcrumbs", "tortilla", "noodles", "quinoa",
	// Condiments
	"olive oil", "vegetable oil", "soy sauce", "white vinegar", "balsamic vinegar",
	"sugar", "brown sugar", "honey", "mustard", "ketchup",
	"mayonnaise", "tomato paste", "tomato sauce", "chicken stock", "beef stock",
	"worcestershire sauce", "hot sauce", "maple syrup", "sesame oil", "bbq sauce",
	// Spices
	"basil", "oregano", "cumin", "paprika", "cinnamon",
	"thyme", "rosemary", "parsley", "coriander", "turmeric",
	"chili powder", "garlic powder", "onion powder", "nutmeg", "bay leaf",
	"cayenne pepper", "cloves", "vanilla extract", "cocoa powder", "chocolate chips",
	// Baking/Nuts
	"baking powder", "baking soda", "yeast", "cornstarch", "almonds",
	"walnuts", "peanuts", "peanut butter", "cashews", "raisins",
}

type seedRecipe struct {
	Name        string
	Description string
	CreatorID   uint
	TimeNeeded  int
	Ingredients map[string]int64
	Steps       []string
}

var seedRecipes = []seedRecipe{
	{
		Name:        "classic pancakes",
		Description: "Fluffy sunday breakfast pancakes. (Single Portion)",
		CreatorID:   2,
		TimeNeeded:  20,
		Ingredients: map[string]int64{
			"flour": 60, "milk": 100, "eggs": 1,
			"butter": 1, "sugar": 1, "baking powder": 1,
		},
		Steps: []string{
			"Mix flour, sugar and baking powder in a large bowl.",
			"Whisk milk and eggs in a separate jug.",
			"Combine wet and dry ingredients.",
			"Melt butter in pan and fry batter until golden.",
		},
	},
	{
		Name:        "spaghetti aglio e olio",
		Description: "Simple, garlic-infused pasta. (Single Portion)",
		CreatorID:   3,
		TimeNeeded:  15,
		Ingredients: map[string]int64{
			"spaghetti": 125, "garlic": 1, "olive oil": 1,
			"parsley": 1, "parmesan cheese": 1,
		},
		Steps: []string{
			"Boil spaghetti in salted water until al dente.",
			"Slice garlic thinly and fry in olive oil gently.",
			"Toss pasta into the garlic oil.",
			"Add parsley and grated cheese before serving.",
		},
	},
	{
		Name:        "chicken stir-fry",
		Description: "Healthy and quick weeknight dinner. (Single Portion)",
		CreatorID:   4,
		TimeNeeded:  25,
		Ingredients: map[string]int64{
			"chicken breast": 1, "rice": 1, "soy sauce": 1,
			"broccoli": 1, "onion": 1, "ginger": 1,
		},
		Steps: []string{
			"Cook rice according to package instructions.",
			"Cut chicken into strips and fry in a hot wok.",
			"Add chopped vegetables and stir-fry for 5 minutes.",
			"Add soy sauce and ginger, serve over rice.",
		},
	},
	{
		Name:        "caprese salad",
		Description: "Fresh Italian summer salad. (Single Portion)",
		CreatorID:   1,
		TimeNeeded:  10,
		Ingredients: map[string]int64{
			"tomato": 2, "mozzarella": 125, "basil": 1,
			"olive oil": 1, "balsamic vinegar": 1,
		},
		Steps: []string{
			"Slice tomatoes and mozzarella cheese.",
			"Arrange slices alternately on a plate.",
			"Sprinkle fresh basil leaves on top.",
			"Drizzle with olive oil and balsamic vinegar.",
		},
	},
}

// Seed fills an empty database with the standard users, the ingredient
// catalog and a handful of starter recipes. Existing rows are left alone,
// so it is safe to run on every start.
func Seed(db *gorm.DB) error {
	for _, name := range seedUsers {
		u := models.User{Username: name, Active: true}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&u).Error; err != nil {
			return fmt.Errorf("seed user %q: %w", name, err)
		}
	}

	for _, name := range seedIngredients {
		ing := models.Ingredient{Name: name}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&ing).Error; err != nil {
			return fmt.Errorf("seed ingredient %q: %w", name, err)
		}
	}

	// recipes only on a fresh database, they have no natural unique key
	var recipeCount int64
	if err := db.Model(&models.Recipe{}).Count(&recipeCount).Error; err != nil {
		return fmt.Errorf("count recipes: %w", err)
	}
	if recipeCount > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, sr := range seedRecipes {
			recipe := models.Recipe{
				Name:        sr.Name,
				Description: sr.Description,
				TimeNeeded:  sr.TimeNeeded,
				CreatorID:   sr.CreatorID,
			}
			if err := tx.Create(&recipe).Error; err != nil {
				return fmt.Errorf("seed recipe %q: %w", sr.Name, err)
			}

			for name, needed := range sr.Ingredients {
				var ing models.Ingredient
				if err := tx.Where("name = ?", name).First(&ing).Error; err != nil {
					return fmt.Errorf("seed recipe %q ingredient %q: %w", sr.Name, name, err)
				}
				link := models.RecipeIngredient{
					RecipeID:     recipe.ID,
					IngredientID: ing.ID,
					Needed:       needed,
				}
				if err := tx.Create(&link).Error; err != nil {
					return fmt.Errorf("seed recipe %q link %q: %w", sr.Name, name, err)
				}
			}

			for i, instruction := range sr.Steps {
				step := models.RecipeStep{
					RecipeID:    recipe.ID,
					StepNumber:  i + 1,
					Instruction: instruction,
				}
				if err := tx.Create(&step).Error; err != nil {
					return fmt.Errorf("seed recipe %q step %d: %w", sr.Name, i+1, err)
				}
			}
		}
		return nil
	})
}
