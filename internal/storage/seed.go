package storage

import "github.com/antonio25x/pet-cheap/internal/model"

var sampleProducts = []model.Product{
	{
		ID:          "premium-dog-food",
		Name:        "Premium Dog Food",
		Description: "High-quality nutrition for adult dogs with real chicken as the first ingredient. Supports healthy digestion and shiny coat.",
		Price:       "29.99",
		Image:       "https://images.unsplash.com/photo-1589924691995-400dc9ecc119?auto=format&fit=crop&w=800&h=500",
		Category:    "Food",
		InStock:     50,
	},
	{
		ID:          "cat-toy-set",
		Name:        "Interactive Cat Toy Set",
		Description: "Keep your feline friend entertained for hours with this engaging toy collection. Includes feather wands, balls, and mice.",
		Price:       "19.99",
		Image:       "https://images.unsplash.com/photo-1574144611937-0df059b5ef3e?auto=format&fit=crop&w=800&h=500",
		Category:    "Toys",
		InStock:     30,
	},
	{
		ID:          "cozy-pet-bed",
		Name:        "Cozy Pet Bed",
		Description: "Ultra-soft orthopedic bed for cats and small dogs. Machine washable cover with a non-slip base.",
		Price:       "39.99",
		Image:       "https://images.unsplash.com/photo-1541781774459-bb2af2f05b55?auto=format&fit=crop&w=800&h=500",
		Category:    "Accessories",
		InStock:     20,
	},
	{
		ID:          "adjustable-leash",
		Name:        "Adjustable Dog Leash",
		Description: "Durable nylon leash with padded handle, adjustable from 4 to 6 feet. Reflective stitching for night walks.",
		Price:       "14.99",
		Image:       "https://images.unsplash.com/photo-1601758228041-f3b2795255f1?auto=format&fit=crop&w=800&h=500",
		Category:    "Accessories",
		InStock:     45,
	},
}

// Seed loads the sample catalog into an empty store. A non-empty catalog
// is left untouched.
func Seed(s Storage) error {
	existing, err := s.GetProducts()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for i := range sampleProducts {
		p := sampleProducts[i]
		if err := s.CreateProduct(&p); err != nil {
			return err
		}
	}
	return nil
}
