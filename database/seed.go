package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

type seedProduct struct {
	name        string
	description string
	price       string
	stock       int
	category    string
	imageURL    string
	sizes       string
	colors      string
}

var seedProducts = []seedProduct{
	{
		name:        "Filipiniana Modern Dress",
		description: "Elegant modern take on traditional Filipiniana dress with butterfly sleeves",
		price:       "4999.99",
		stock:       50,
		category:    "Dresses",
		imageURL:    "https://images.unsplash.com/photo-1566174053879-31528523f8ae?w=800&auto=format&fit=crop&q=60",
		sizes:       "XS,S,M,L",
		colors:      "Gold,Rose Gold",
	},
	{
		name:        "Pearl Embellished Gown",
		description: "Stunning evening gown with pearl embellishments",
		price:       "6999.99",
		stock:       30,
		category:    "Dresses",
		imageURL:    "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=800&auto=format&fit=crop&q=60",
		sizes:       "S,M,L",
		colors:      "White,Champagne",
	},
	{
		name:        "Classic Stiletto Heels",
		description: "Timeless stiletto heels perfect for any occasion",
		price:       "2999.99",
		stock:       100,
		category:    "Shoes",
		imageURL:    "https://images.unsplash.com/photo-1543163521-1bf539c55dd2?w=800&auto=format&fit=crop&q=60",
		sizes:       "35,36,37,38,39,40",
		colors:      "Black,Nude,Red",
	},
	{
		name:        "Designer Tote Bag",
		description: "Spacious and stylish tote bag for everyday use",
		price:       "3499.99",
		stock:       75,
		category:    "Bags",
		imageURL:    "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=800&auto=format&fit=crop&q=60",
		sizes:       "One Size",
		colors:      "Brown,Black,Navy",
	},
	{
		name:        "Crystal Statement Necklace",
		description: "Eye-catching crystal necklace for special occasions",
		price:       "1499.99",
		stock:       60,
		category:    "Accessories",
		imageURL:    "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=800&auto=format&fit=crop&q=60",
		sizes:       "One Size",
		colors:      "Silver,Gold",
	},
	{
		name:        "Summer Floral Dress",
		description: "Light and breezy floral dress perfect for summer",
		price:       "2499.99",
		stock:       80,
		category:    "Dresses",
		imageURL:    "https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?w=800&auto=format&fit=crop&q=60",
		sizes:       "XS,S,M,L,XL",
		colors:      "Blue Floral,Pink Floral",
	},
}

// SeedProducts inserts the sample catalog. It is a no-op when the products
// table already has rows, so it is safe to run at every startup.
func (db *DB) SeedProducts() error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		log.Debug().Int("existing", count).Msg("Products table not empty, skipping seed")
		return nil
	}

	query := `
		INSERT INTO products (name, description, price, stock, category, image_url, sizes, colors)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, p := range seedProducts {
		if _, err := db.Exec(query,
			p.name, p.description, p.price, p.stock,
			p.category, p.imageURL, p.sizes, p.colors,
		); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.name, err)
		}
	}

	log.Info().Int("count", len(seedProducts)).Msg("Seeded sample products")
	return nil
}
