package store

import (
	"context"
	"testing"

	"github.com/biharidelicacies/marketplace-api/models"
	"go.uber.org/zap"
)

func TestSeedFillsEmptyCollectionsOnce(t *testing.T) {
	s := setupFileStore(t, false)
	ctx := context.Background()
	log := zap.NewNop().Sugar()

	if err := Seed(ctx, s, log); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if err := Seed(ctx, s, log); err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}

	sellers, _ := s.ReadAll(ctx, models.CollectionSellers)
	products, _ := s.ReadAll(ctx, models.CollectionProducts)
	recipes, _ := s.ReadAll(ctx, models.CollectionRecipes)
	categories, _ := s.ReadAll(ctx, models.CollectionCategories)

	if len(sellers) != len(demoSellers) {
		t.Errorf("Expected %d sellers, got %d", len(demoSellers), len(sellers))
	}
	if len(products) != len(demoProducts) {
		t.Errorf("Expected %d products, got %d", len(demoProducts), len(products))
	}
	if len(recipes) != len(demoRecipes) || len(categories) != len(demoCategories) {
		t.Errorf("Unexpected recipes/categories: %d/%d", len(recipes), len(categories))
	}

	sellerIDs := map[string]bool{}
	for _, seller := range sellers {
		sellerIDs[seller.IDString()] = true
	}
	for _, p := range products {
		if !sellerIDs[models.IDString(p[models.ProductSellerIDField])] {
			t.Errorf("Product %v references unknown seller %v", p["name"], p[models.ProductSellerIDField])
		}
	}
}

func TestSeedLeavesExistingDataAlone(t *testing.T) {
	s := setupFileStore(t, false)
	ctx := context.Background()

	s.Insert(ctx, models.CollectionRecipes, models.Record{"title": "Mine"})
	if err := Seed(ctx, s, zap.NewNop().Sugar()); err != nil {
		t.Fatal(err)
	}

	recipes, _ := s.ReadAll(ctx, models.CollectionRecipes)
	if len(recipes) != 1 || recipes[0]["title"] != "Mine" {
		t.Errorf("Existing recipes must not be touched, got %v", recipes)
	}
}
