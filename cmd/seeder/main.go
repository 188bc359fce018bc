package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"

	"github.com/nbbaier/smartrecipe/internal/config"
	"github.com/nbbaier/smartrecipe/internal/database"
	"github.com/nbbaier/smartrecipe/internal/models"
)

// seedRecipe is one catalog entry; ingredients are "name|quantity"
// pairs, quantity optional
type seedRecipe struct {
	Title       string
	Description string
	PrepMinutes int
	CookMinutes int
	Servings    int
	Difficulty  models.Difficulty
	Cuisine     string
	Ingredients []string
}

var starterCatalog = []seedRecipe{
	{
		Title:       "Vegetable Stir Fry",
		Description: "Quick weeknight stir fry that takes whatever vegetables are about to turn.",
		PrepMinutes: 15, CookMinutes: 10, Servings: 2,
		Difficulty: models.DifficultyEasy, Cuisine: "Chinese",
		Ingredients: []string{"broccoli|1 head", "bell pepper|2", "carrot|2", "garlic|3 cloves", "soy sauce|3 tbsp", "rice|2 cups"},
	},
	{
		Title:       "Spinach and Feta Omelette",
		Description: "Three-egg omelette, good for using up greens and soft cheese.",
		PrepMinutes: 5, CookMinutes: 10, Servings: 1,
		Difficulty: models.DifficultyEasy, Cuisine: "Greek",
		Ingredients: []string{"eggs|3", "spinach|2 cups", "feta cheese|50 g", "butter|1 tbsp"},
	},
	{
		Title:       "Chicken Noodle Soup",
		Description: "Comfort soup from stock, root vegetables and leftover chicken.",
		PrepMinutes: 15, CookMinutes: 30, Servings: 4,
		Difficulty: models.DifficultyEasy, Cuisine: "American",
		Ingredients: []string{"chicken breast|300 g", "egg noodles|200 g", "carrot|2", "celery|2 stalks", "onion|1", "chicken stock|1.5 l"},
	},
	{
		Title:       "Banana Bread",
		Description: "The canonical rescue for overripe bananas.",
		PrepMinutes: 15, CookMinutes: 60, Servings: 8,
		Difficulty: models.DifficultyMedium, Cuisine: "American",
		Ingredients: []string{"banana|3", "flour|250 g", "sugar|150 g", "eggs|2", "butter|100 g", "baking soda|1 tsp"},
	},
	{
		Title:       "Tomato Basil Pasta",
		Description: "Fresh tomatoes cooked down into a quick sauce with garlic and basil.",
		PrepMinutes: 10, CookMinutes: 20, Servings: 3,
		Difficulty: models.DifficultyEasy, Cuisine: "Italian",
		Ingredients: []string{"pasta|300 g", "tomato|6", "garlic|2 cloves", "basil|1 bunch", "olive oil|3 tbsp", "parmesan cheese|50 g"},
	},
	{
		Title:       "Beef and Vegetable Curry",
		Description: "Slow-simmered curry that absorbs any vegetables past their prime.",
		PrepMinutes: 20, CookMinutes: 90, Servings: 4,
		Difficulty: models.DifficultyMedium, Cuisine: "Indian",
		Ingredients: []string{"beef chuck|500 g", "potato|3", "carrot|2", "onion|2", "curry paste|3 tbsp", "coconut milk|400 ml", "rice|2 cups"},
	},
	{
		Title:       "Greek Yogurt Parfait",
		Description: "Layered yogurt, fruit and granola; uses dairy close to its date.",
		PrepMinutes: 5, CookMinutes: 0, Servings: 1,
		Difficulty: models.DifficultyEasy, Cuisine: "Greek",
		Ingredients: []string{"greek yogurt|250 g", "honey|1 tbsp", "granola|50 g", "berries|100 g"},
	},
	{
		Title:       "Mushroom Risotto",
		Description: "Creamy risotto that rewards patient stirring.",
		PrepMinutes: 10, CookMinutes: 35, Servings: 3,
		Difficulty: models.DifficultyHard, Cuisine: "Italian",
		Ingredients: []string{"arborio rice|300 g", "mushroom|400 g", "onion|1", "white wine|150 ml", "vegetable stock|1 l", "parmesan cheese|80 g", "butter|50 g"},
	},
	{
		Title:       "Fish Tacos",
		Description: "Pan-seared white fish with slaw in warm tortillas.",
		PrepMinutes: 20, CookMinutes: 10, Servings: 3,
		Difficulty: models.DifficultyMedium, Cuisine: "Mexican",
		Ingredients: []string{"white fish|400 g", "tortillas|6", "cabbage|0.5 head", "lime|2", "sour cream|100 g", "cilantro|1 bunch"},
	},
	{
		Title:       "Lentil Soup",
		Description: "Pantry-staple soup; vegan and forgiving of substitutions.",
		PrepMinutes: 10, CookMinutes: 40, Servings: 4,
		Difficulty: models.DifficultyEasy, Cuisine: "Mediterranean",
		Ingredients: []string{"red lentils|300 g", "onion|1", "carrot|2", "garlic|2 cloves", "cumin|1 tsp", "vegetable stock|1.25 l"},
	},
}

func main() {
	dryRun := flag.Bool("dry-run", false, "Preview changes without writing to database")
	flag.Parse()

	godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	seeded, skipped := 0, 0
	for _, seed := range starterCatalog {
		var exists bool
		err := db.Pool.QueryRow(ctx,
			"SELECT EXISTS(SELECT 1 FROM recipes WHERE LOWER(title) = LOWER($1))", seed.Title,
		).Scan(&exists)
		if err != nil {
			log.Fatalf("Failed to check for recipe %q: %v", seed.Title, err)
		}
		if exists {
			skipped++
			continue
		}

		if *dryRun {
			fmt.Printf("[dry-run] would seed %q (%d ingredients)\n", seed.Title, len(seed.Ingredients))
			seeded++
			continue
		}

		req := &models.CreateRecipeRequest{
			Title:           seed.Title,
			Description:     &seed.Description,
			PrepTimeMinutes: seed.PrepMinutes,
			CookTimeMinutes: seed.CookMinutes,
			Servings:        seed.Servings,
			Difficulty:      seed.Difficulty,
			CuisineType:     &seed.Cuisine,
			Ingredients:     parseIngredients(seed.Ingredients),
		}

		// Seeded recipes have no owner; users can't edit or delete them
		if _, err := db.CreateSystemRecipe(ctx, req); err != nil {
			log.Fatalf("Failed to seed recipe %q: %v", seed.Title, err)
		}
		seeded++
	}

	if *dryRun {
		fmt.Printf("Dry run complete: %d recipe(s) would be seeded, %d already present\n", seeded, skipped)
		return
	}
	fmt.Printf("Seeded %d recipe(s), skipped %d already present\n", seeded, skipped)
}

func parseIngredients(lines []string) []models.CreateRecipeIngredient {
	out := make([]models.CreateRecipeIngredient, 0, len(lines))
	for _, line := range lines {
		name, quantity, found := strings.Cut(line, "|")
		ing := models.CreateRecipeIngredient{Name: name}
		if found && quantity != "" {
			q := quantity
			ing.Quantity = &q
		}
		out = append(out, ing)
	}
	return out
}
