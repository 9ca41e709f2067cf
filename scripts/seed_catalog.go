package main

import (
	"context"
	"log"
	"time"

	"bookmart/internal/config"
	"bookmart/internal/database"
	"bookmart/internal/model"
	"bookmart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// seedCatalog inserts a handful of sample books so the API has data to
// serve out of the box. Safe to run repeatedly; every run adds new rows.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	logger := zerolog.Nop()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool, logger); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	books := []model.Product{
		{Title: "The Martian Dusk", Author: "H. Okafor", Price: 14.99, Category: model.CategoryFiction, Description: "A colony novel.", Quantity: 12},
		{Title: "Entropy for Everyone", Author: "L. Marenkov", Price: 22.50, Category: model.CategoryScience, Description: "Thermodynamics without tears.", Quantity: 5},
		{Title: "Deep Work Habits", Author: "A. Reyes", Price: 18.00, Category: model.CategorySelfDevelopment, Description: "Focus in a noisy world.", Quantity: 20},
		{Title: "Salt and Cedar", Author: "M. Haddad", Price: 11.25, Category: model.CategoryPoetry, Description: "Collected poems.", Quantity: 7},
		{Title: "Desert Fathers", Author: "J. Ansgar", Price: 16.75, Category: model.CategoryReligious, Description: "Early monastic writings.", Quantity: 3},
	}

	repo := repository.NewProductRepository(pool, logger)
	for i := range books {
		books[i].ID = uuid.New()
		books[i].InStock = books[i].Quantity > 0
		books[i].CreatedAt = time.Now()

		if err := repo.Create(ctx, &books[i]); err != nil {
			log.Fatalf("Failed to insert %q: %v", books[i].Title, err)
		}
		log.Printf("Inserted %q (%s)", books[i].Title, books[i].ID)
	}

	log.Printf("Seeded %d books", len(books))
}
