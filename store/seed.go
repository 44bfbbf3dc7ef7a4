package store

import (
	"context"
	"fmt"

	"github.com/biharidelicacies/marketplace-api/models"
	"go.uber.org/zap"
)

var demoSellers = []models.Seller{
	{BusinessName: "Gaya Tilkut Bhandar", OwnerName: "Ramesh Prasad", Location: "Gaya", Specialty: "Tilkut", Description: "Hand-pounded sesame and jaggery tilkut since 1962.", Rating: 4.8},
	{BusinessName: "Silao Khaja Ghar", OwnerName: "Sunita Devi", Location: "Silao, Nalanda", Specialty: "Khaja", Description: "Flaky layered khaja from the town that made it famous.", Rating: 4.6},
	{BusinessName: "Patna Litti Corner", OwnerName: "Manoj Kumar", Location: "Patna", Specialty: "Litti Chokha", Description: "Sattu-stuffed litti kits and chokha masala.", Rating: 4.5},
}

// demoProducts refer to demoSellers by index.
var demoProducts = []struct {
	seller  int
	product models.Product
}{
	{0, models.Product{Name: "Gaya Tilkut (500g)", Category: "Sweets", Price: 350, OriginalPrice: 400, Stock: 40, Weight: 0.5, Unit: "box", Description: "Crisp sesame tilkut made with winter jaggery."}},
	{0, models.Product{Name: "Anarsa (12 pcs)", Category: "Sweets", Price: 280, Stock: 25, Weight: 0.4, Unit: "box", Description: "Rice and jaggery anarsa coated in poppy seeds."}},
	{1, models.Product{Name: "Silao Khaja (1kg)", Category: "Sweets", Price: 420, OriginalPrice: 450, Stock: 30, Weight: 1, Unit: "box", Description: "Layered wheat-flour khaja soaked in light syrup."}},
	{1, models.Product{Name: "Thekua (750g)", Category: "Snacks", Price: 240, Stock: 50, Weight: 0.75, Unit: "pack", Description: "Chhath-style thekua with jaggery and coconut."}},
	{2, models.Product{Name: "Litti Chokha Kit (serves 4)", Category: "Ready to cook", Price: 320, Stock: 20, Weight: 1.2, Unit: "kit", Description: "Sattu filling, dough mix and roasted chokha masala."}},
	{2, models.Product{Name: "Sattu (1kg)", Category: "Staples", Price: 160, Stock: 80, Weight: 1, Unit: "pack", Description: "Stone-ground roasted gram flour."}},
}

var demoRecipes = []models.Recipe{
	{
		Title:       "Litti Chokha",
		Region:      "Bhojpur",
		Description: "Baked wheat balls stuffed with spiced sattu, served with smoky mashed brinjal.",
		Ingredients: []string{"wheat flour", "sattu", "mustard oil", "ajwain", "brinjal", "tomato", "potato", "garlic", "green chilli"},
		Steps:       []string{"Knead a stiff dough.", "Mix sattu with spices, lemon and mustard oil.", "Stuff, shape and bake or roast the litti.", "Roast brinjal, tomato and potato; mash with garlic and chilli.", "Dip litti in ghee and serve with chokha."},
		PrepMinutes: 60,
	},
	{
		Title:       "Thekua",
		Region:      "Magadh",
		Description: "The Chhath festival cookie of wheat flour, jaggery and ghee.",
		Ingredients: []string{"wheat flour", "jaggery", "ghee", "grated coconut", "fennel", "cardamom"},
		Steps:       []string{"Melt jaggery in a little water.", "Rub ghee into flour, add coconut and spices.", "Bind with jaggery syrup.", "Press into moulds and deep fry on low heat."},
		PrepMinutes: 45,
	},
	{
		Title:       "Sattu Paratha",
		Region:      "Bihar",
		Description: "Flatbread stuffed with tangy roasted gram flour.",
		Ingredients: []string{"wheat flour", "sattu", "onion", "garlic", "pickle masala", "lemon"},
		Steps:       []string{"Prepare a soft dough.", "Mix sattu with onion, garlic, lemon and pickle oil.", "Stuff, roll and cook on a hot tawa with ghee."},
		PrepMinutes: 30,
	},
}

var demoCategories = []models.Category{
	{Name: "Sweets", Slug: "sweets"},
	{Name: "Snacks", Slug: "snacks"},
	{Name: "Ready to cook", Slug: "ready-to-cook"},
	{Name: "Staples", Slug: "staples"},
}

// Seed fills empty demo collections. Collections that already hold records are left alone.
func Seed(ctx context.Context, s RecordStore, log *zap.SugaredLogger) error {
	sellerIDs, err := seedSellers(ctx, s, log)
	if err != nil {
		return err
	}

	if empty, err := isEmpty(ctx, s, models.CollectionProducts); err != nil {
		return err
	} else if empty && sellerIDs != nil {
		for _, p := range demoProducts {
			p.product.SellerID = sellerIDs[p.seller]
			if err := insertTyped(ctx, s, models.CollectionProducts, p.product); err != nil {
				return err
			}
		}
		log.Infow("seeded demo data", "collection", models.CollectionProducts, "count", len(demoProducts))
	}

	if err := seedTyped(ctx, s, log, models.CollectionRecipes, demoRecipes); err != nil {
		return err
	}
	return seedTyped(ctx, s, log, models.CollectionCategories, demoCategories)
}

// seedSellers returns the new seller ids, or nil when sellers already existed.
func seedSellers(ctx context.Context, s RecordStore, log *zap.SugaredLogger) ([]any, error) {
	empty, err := isEmpty(ctx, s, models.CollectionSellers)
	if err != nil || !empty {
		return nil, err
	}

	ids := make([]any, 0, len(demoSellers))
	for _, seller := range demoSellers {
		rec, err := models.ToRecord(seller)
		if err != nil {
			return nil, err
		}
		created, err := s.Insert(ctx, models.CollectionSellers, rec)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", models.CollectionSellers, err)
		}
		ids = append(ids, created.ID())
	}
	log.Infow("seeded demo data", "collection", models.CollectionSellers, "count", len(ids))
	return ids, nil
}

func seedTyped[T any](ctx context.Context, s RecordStore, log *zap.SugaredLogger, collection string, items []T) error {
	empty, err := isEmpty(ctx, s, collection)
	if err != nil || !empty {
		return err
	}
	for _, item := range items {
		if err := insertTyped(ctx, s, collection, item); err != nil {
			return err
		}
	}
	log.Infow("seeded demo data", "collection", collection, "count", len(items))
	return nil
}

func insertTyped(ctx context.Context, s RecordStore, collection string, v any) error {
	rec, err := models.ToRecord(v)
	if err != nil {
		return err
	}
	if _, err := s.Insert(ctx, collection, rec); err != nil {
		return fmt.Errorf("seed %s: %w", collection, err)
	}
	return nil
}

func isEmpty(ctx context.Context, s RecordStore, collection string) (bool, error) {
	records, err := s.ReadAll(ctx, collection)
	if err != nil {
		return false, err
	}
	return len(records) == 0, nil
}
