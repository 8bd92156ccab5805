package main

import (
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func seedProducts(unit currency.Unit) []domain.Product {
	price := func(amount int64) domain.Money {
		return domain.NewMoney(decimal.NewFromInt(amount), unit)
	}

	return []domain.Product{
		{
			Name:        "Sony Bravia XR 65\" OLED",
			Description: "Cinematic OLED TV with Cognitive Processor XR for stunning visuals.",
			Brand:       "Sony",
			Category:    "electronics",
			Image:       "https://images.example.com/products/sony-bravia-xr-65.jpg",
			Price:       price(199990),
			Stock:       10,
		},
		{
			Name:        "LG QNED 86 75\" 4K Smart TV",
			Description: "Next-gen LED display with Quantum Dot and NanoCell technology.",
			Brand:       "LG",
			Category:    "electronics",
			Image:       "https://images.example.com/products/lg-qned-86-75.jpg",
			Price:       price(179990),
			Stock:       8,
		},
		{
			Name:        "Samsung Neo QLED 8K 65\"",
			Description: "Immersive 8K experience with Quantum Matrix Technology.",
			Brand:       "Samsung",
			Category:    "electronics",
			Image:       "https://images.example.com/products/samsung-neo-qled-8k.jpg",
			Price:       price(329999),
			Stock:       6,
		},
		{
			Name:        "iPhone 14 Pro",
			Description: "Apple's powerful device with Dynamic Island and A16 Bionic chip.",
			Brand:       "Apple",
			Category:    "electronics",
			Image:       "https://images.example.com/products/iphone-14-pro.jpg",
			Price:       price(129900),
			Stock:       30,
		},
		{
			Name:        "Samsung Galaxy S24 Ultra",
			Description: "Samsung's top-tier phone with integrated S Pen and quad camera.",
			Brand:       "Samsung",
			Category:    "electronics",
			Image:       "https://images.example.com/products/galaxy-s24-ultra.jpg",
			Price:       price(134999),
			Stock:       20,
		},
		{
			Name:        "Google Pixel 8 Pro",
			Description: "Google's flagship phone with Tensor G3 chip and advanced AI features.",
			Brand:       "Google",
			Category:    "electronics",
			Image:       "https://images.example.com/products/pixel-8-pro.jpg",
			Price:       price(106999),
			Stock:       25,
		},
		{
			Name:        "Dell XPS 15 Laptop",
			Description: "Sleek laptop with InfinityEdge display and 12th Gen Intel Core.",
			Brand:       "Dell",
			Category:    "computers",
			Image:       "https://images.example.com/products/dell-xps-15.jpg",
			Price:       price(184990),
			Stock:       12,
		},
		{
			Name:        "MacBook Air M2",
			Description: "Ultra-light Apple laptop with the M2 chip and all-day battery.",
			Brand:       "Apple",
			Category:    "computers",
			Image:       "https://images.example.com/products/macbook-air-m2.jpg",
			Price:       price(114900),
			Stock:       18,
		},
		{
			Name:        "Sony WH-1000XM5",
			Description: "Industry-leading noise cancelling wireless headphones.",
			Brand:       "Sony",
			Category:    "audio",
			Image:       "https://images.example.com/products/sony-wh-1000xm5.jpg",
			Price:       price(29990),
			Stock:       40,
		},
		{
			Name:        "Bose SoundLink Flex",
			Description: "Rugged portable Bluetooth speaker with deep, clear sound.",
			Brand:       "Bose",
			Category:    "audio",
			Image:       "https://images.example.com/products/bose-soundlink-flex.jpg",
			Price:       price(14990),
			Stock:       35,
		},
		{
			Name:        "Canon EOS R6 Mark II",
			Description: "Full-frame mirrorless camera with fast, accurate autofocus.",
			Brand:       "Canon",
			Category:    "cameras",
			Image:       "https://images.example.com/products/canon-eos-r6-ii.jpg",
			Price:       price(239990),
			Stock:       7,
		},
		{
			Name:        "PlayStation 5",
			Description: "Next-gen console with ultra-fast SSD and ray tracing.",
			Brand:       "Sony",
			Category:    "gaming",
			Image:       "https://images.example.com/products/playstation-5.jpg",
			Price:       price(54990),
			Stock:       15,
		},
	}
}
