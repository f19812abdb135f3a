package main

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shopfast/internal/domain/model"
)

// カタログが空のときだけカテゴリと商品のfixtureを投入する。
func seedFixtures(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		categories := fixtureCategories()
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}

		bySlug := make(map[string]string, len(categories))
		for _, c := range categories {
			bySlug[c.Slug] = c.ID
		}

		products := fixtureProducts(bySlug)
		if err := tx.Create(&products).Error; err != nil {
			return err
		}

		return nil
	})
}

func fixtureCategories() []model.Category {
	return []model.Category{
		{Name: "Electronics", Slug: "electronics", Description: "Latest technology and electronic devices"},
		{Name: "Fashion", Slug: "fashion", Description: "Trending fashion and apparel"},
		{Name: "Home & Garden", Slug: "home-garden", Description: "Everything for your home and garden"},
		{Name: "Sports & Outdoors", Slug: "sports-outdoors", Description: "Sports equipment and outdoor gear"},
		{Name: "Books & Media", Slug: "books-media", Description: "Books, movies, and entertainment"},
	}
}

func fixtureProducts(categoryBySlug map[string]string) []model.Product {
	price := func(s string) decimal.Decimal {
		return decimal.RequireFromString(s)
	}
	cat := func(slug string) *string {
		id, ok := categoryBySlug[slug]
		if !ok {
			return nil
		}
		return &id
	}

	return []model.Product{
		{CategoryID: cat("electronics"), Name: "iPhone 15 Pro Max", Slug: "iphone-15-pro-max", Description: "Latest flagship iPhone with A17 Pro chip, titanium design, and advanced camera system.", Price: price("1299.99"), Stock: 50, Featured: true},
		{CategoryID: cat("electronics"), Name: "Samsung Galaxy S24 Ultra", Slug: "samsung-galaxy-s24-ultra", Description: "Premium Android flagship with AI features, S Pen, and 200MP camera.", Price: price("1199.99"), Stock: 45, Featured: true},
		{CategoryID: cat("electronics"), Name: "MacBook Pro 16\" M3 Max", Slug: "macbook-pro-16-m3-max", Description: "Professional laptop with M3 Max chip, 36GB RAM, 1TB SSD.", Price: price("3499.99"), Stock: 25, Featured: true},
		{CategoryID: cat("electronics"), Name: "Sony WH-1000XM5", Slug: "sony-wh-1000xm5", Description: "Industry-leading noise canceling wireless headphones with 30-hour battery life.", Price: price("399.99"), Stock: 80, Featured: true},
		{CategoryID: cat("electronics"), Name: "AirPods Pro (2nd Gen)", Slug: "airpods-pro-2nd-gen", Description: "Active noise cancellation, adaptive audio, and personalized spatial audio.", Price: price("249.99"), Stock: 100},
		{CategoryID: cat("fashion"), Name: "Premium Leather Jacket", Slug: "premium-leather-jacket", Description: "Genuine leather jacket with classic biker style.", Price: price("399.99"), Stock: 45, Featured: true},
		{CategoryID: cat("fashion"), Name: "Nike Air Max 2024", Slug: "nike-air-max-2024", Description: "Latest Air Max technology with sustainable materials.", Price: price("179.99"), Stock: 200, Featured: true},
		{CategoryID: cat("fashion"), Name: "High-Waisted Jeans", Slug: "high-waisted-jeans", Description: "Classic high-waisted denim jeans with stretch.", Price: price("99.99"), Stock: 110},
		{CategoryID: cat("home-garden"), Name: "Modern Velvet Sofa", Slug: "modern-velvet-sofa", Description: "Luxurious 3-seater velvet sofa with deep cushions and solid wood frame.", Price: price("1299.99"), Stock: 20, Featured: true},
		{CategoryID: cat("home-garden"), Name: "Ergonomic Office Chair", Slug: "ergonomic-office-chair", Description: "Premium mesh office chair with lumbar support and adjustable armrests.", Price: price("449.99"), Stock: 55, Featured: true},
		{CategoryID: cat("home-garden"), Name: "KitchenAid Stand Mixer", Slug: "kitchenaid-stand-mixer", Description: "Professional 5-quart stand mixer with 10 speeds.", Price: price("429.99"), Stock: 45, Featured: true},
		{CategoryID: cat("sports-outdoors"), Name: "Adjustable Dumbbell Set", Slug: "adjustable-dumbbell-set", Description: "Space-saving adjustable dumbbells, 5-52.5 lbs per dumbbell.", Price: price("349.99"), Stock: 65, Featured: true},
		{CategoryID: cat("sports-outdoors"), Name: "Hiking Backpack 65L", Slug: "hiking-backpack-65l", Description: "Professional hiking backpack with adjustable suspension system.", Price: price("229.99"), Stock: 70, Featured: true},
		{CategoryID: cat("sports-outdoors"), Name: "Professional Yoga Mat", Slug: "professional-yoga-mat", Description: "Extra-thick 6mm yoga mat with superior grip.", Price: price("79.99"), Stock: 150},
		{CategoryID: cat("books-media"), Name: "The Midnight Library", Slug: "midnight-library", Description: "Bestselling novel by Matt Haig about parallel lives and infinite possibilities.", Price: price("27.99"), Stock: 200, Featured: true},
		{CategoryID: cat("books-media"), Name: "Atomic Habits", Slug: "atomic-habits", Description: "James Clear's transformative guide to building good habits.", Price: price("24.99"), Stock: 250, Featured: true},
		{CategoryID: cat("books-media"), Name: "Clean Code", Slug: "clean-code", Description: "Robert C. Martin's handbook of agile software craftsmanship.", Price: price("44.99"), Stock: 140, Featured: true},
	}
}
