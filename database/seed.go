package database

import (
	"log"
	"time"

	"github.com/lumierehotels/booking-api/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedCatalog loads the hotel/room/season/extra reference data. Idempotent:
// existing slugs are left untouched.
func SeedCatalog() {
	hotels := []models.Hotel{
		{
			Name:        "Lumière Palace",
			Slug:        "lumiere-palace-barcelona",
			Tagline:     "Donde el Mediterráneo se encuentra con el lujo",
			Description: "Situado en el corazón de Barcelona, Lumière Palace ofrece una experiencia de hospedaje sin igual, con vistas panorámicas al mar Mediterráneo.",
			Location:    "Barcelona, España",
			Country:     "España",
			Lat:         41.3851, Lng: 2.1734,
			Rating: 4.9, ReviewCount: 1247, Stars: 5,
			Image:      "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=1200&q=80",
			Amenities:  []string{"Spa", "Piscina Infinity", "Restaurante Michelin", "Gimnasio", "Concierge 24h", "WiFi Premium", "Parking", "Bar Rooftop"},
			Highlights: []string{"Vista al mar", "Terraza privada", "Servicio de mayordomo"},
			PriceFrom:  32000,
		},
		{
			Name:        "Grand Hotel Aurora",
			Slug:        "grand-hotel-aurora-madrid",
			Tagline:     "El arte de la hospitalidad en la capital",
			Description: "En pleno centro de Madrid, Grand Hotel Aurora redefine el concepto de lujo urbano en un edificio histórico del siglo XIX.",
			Location:    "Madrid, España",
			Country:     "España",
			Lat:         40.4168, Lng: -3.7038,
			Rating: 4.8, ReviewCount: 983, Stars: 5,
			Image:      "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=1200&q=80",
			Amenities:  []string{"Spa", "Piscina Interior", "Restaurante Gourmet", "Gimnasio", "Concierge 24h", "WiFi Premium", "Parking", "Salones de evento"},
			Highlights: []string{"Edificio histórico", "Ubicación céntrica", "Gastronomía de autor"},
			PriceFrom:  28000,
		},
		{
			Name:        "Villa Serena Marbella",
			Slug:        "villa-serena-marbella",
			Tagline:     "Tu refugio de lujo en la Costa del Sol",
			Description: "Villa Serena es un resort boutique exclusivo en primera línea de playa en Marbella, con solo 40 suites.",
			Location:    "Marbella, España",
			Country:     "España",
			Lat:         36.5099, Lng: -4.8862,
			Rating: 4.95, ReviewCount: 567, Stars: 5,
			Image:      "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=1200&q=80",
			Amenities:  []string{"Spa Holístico", "Piscina Infinity", "Restaurante en la playa", "Yoga", "Concierge 24h", "WiFi Premium", "Club de Playa", "Campo de Golf"},
			Highlights: []string{"Primera línea de playa", "Solo 40 suites", "Spa holístico"},
			PriceFrom:  42000,
		},
	}

	hotelIDs := map[string]models.Hotel{}
	for i := range hotels {
		var existing models.Hotel
		if err := DB.Where("slug = ?", hotels[i].Slug).First(&existing).Error; err == nil {
			hotelIDs[existing.Slug] = existing
			continue
		}
		if err := DB.Create(&hotels[i]).Error; err != nil {
			log.Fatalf("🔥 Failed to seed hotel %s: %v", hotels[i].Slug, err)
		}
		hotelIDs[hotels[i].Slug] = hotels[i]
	}

	barcelona := hotelIDs["lumiere-palace-barcelona"]
	madrid := hotelIDs["grand-hotel-aurora-madrid"]
	marbella := hotelIDs["villa-serena-marbella"]

	rooms := []models.Room{
		{HotelID: barcelona.ID, Name: "Habitación Deluxe", Slug: "deluxe", Type: models.RoomTypeDeluxe, Capacity: 2, SizeSqm: 45, BedType: "King Size", BasePrice: 32000,
			Description: "Espaciosa habitación con vistas parciales al mar, decorada con materiales nobles.",
			Amenities:   []string{"Minibar", "Caja fuerte", "TV 55\"", "Cafetera Nespresso", "Albornoz"},
			Features:    []string{"Vista parcial al mar", "Balcón privado", "Bañera de hidromasaje"}},
		{HotelID: barcelona.ID, Name: "Suite Premium", Slug: "suite-premium", Type: models.RoomTypeSuite, Capacity: 3, SizeSqm: 85, BedType: "King Size + Sofá Cama", BasePrice: 58000,
			Description: "Suite excepcional con salón independiente y terraza privada con vistas panorámicas.",
			Amenities:   []string{"Minibar Premium", "TV 65\"", "Cafetera Nespresso", "Amenities Hermès"},
			Features:    []string{"Vista panorámica al mar", "Terraza 30m²", "Jacuzzi exterior"}},
		{HotelID: barcelona.ID, Name: "Suite Presidencial", Slug: "suite-presidencial", Type: models.RoomTypePresidential, Capacity: 4, SizeSqm: 200, BedType: "King Size + Twin", BasePrice: 120000,
			Description: "200m² de puro lujo con sala de estar, comedor privado y terraza con piscina privada.",
			Amenities:   []string{"Minibar Premium", "TV 75\"", "Sistema Sonos", "Cocina completa"},
			Features:    []string{"Vista 360°", "Piscina privada", "Mayordomo 24h", "Transfers incluidos"}},
		{HotelID: madrid.ID, Name: "Habitación Superior", Slug: "superior", Type: models.RoomTypeSuperior, Capacity: 2, SizeSqm: 35, BedType: "Queen Size", BasePrice: 28000,
			Description: "Habitación elegante con techos altos y molduras originales del siglo XIX.",
			Amenities:   []string{"Minibar", "Caja fuerte", "TV 50\"", "Cafetera"},
			Features:    []string{"Techos altos", "Decoración de época", "Vista a la ciudad"}},
		{HotelID: madrid.ID, Name: "Junior Suite", Slug: "junior-suite", Type: models.RoomTypeSuite, Capacity: 2, SizeSqm: 55, BedType: "King Size", BasePrice: 45000,
			Description: "Amplia junior suite con zona de estar separada y vistas al jardín interior.",
			Amenities:   []string{"Minibar Premium", "TV 60\"", "Cafetera Nespresso", "Amenities L'Occitane"},
			Features:    []string{"Zona de estar", "Vista al jardín", "Baño de mármol"}},
		{HotelID: marbella.ID, Name: "Suite Garden", Slug: "suite-garden", Type: models.RoomTypeSuite, Capacity: 2, SizeSqm: 65, BedType: "King Size", BasePrice: 42000,
			Description: "Suite con acceso directo al jardín tropical y piscina privada.",
			Amenities:   []string{"Minibar Premium", "TV 60\"", "Cafetera Nespresso", "Terraza privada"},
			Features:    []string{"Jardín privado", "Piscina privada", "Ducha exterior"}},
		{HotelID: marbella.ID, Name: "Villa Oceanfront", Slug: "villa-oceanfront", Type: models.RoomTypePresidential, Capacity: 4, SizeSqm: 180, BedType: "King Size + Twin", BasePrice: 95000,
			Description: "Villa independiente de 180m² frente al mar con todas las comodidades de lujo.",
			Amenities:   []string{"Cocina completa", "TV 75\"", "Sistema Sonos", "Piscina infinity privada"},
			Features:    []string{"Frente al mar", "Piscina infinity", "Chef privado disponible"}},
	}
	for i := range rooms {
		var count int64
		DB.Model(&models.Room{}).Where("hotel_id = ? AND slug = ?", rooms[i].HotelID, rooms[i].Slug).Count(&count)
		if count > 0 {
			continue
		}
		if err := DB.Create(&rooms[i]).Error; err != nil {
			log.Fatalf("🔥 Failed to seed room %s: %v", rooms[i].Slug, err)
		}
	}

	for _, hotel := range []models.Hotel{barcelona, madrid, marbella} {
		seasons := []models.Season{
			{HotelID: hotel.ID, Name: "Baja", StartDate: date(2025, time.November, 1), EndDate: date(2026, time.March, 31), Multiplier: 0.8},
			{HotelID: hotel.ID, Name: "Media", StartDate: date(2025, time.April, 1), EndDate: date(2025, time.June, 30), Multiplier: 1.0},
			{HotelID: hotel.ID, Name: "Alta", StartDate: date(2025, time.July, 1), EndDate: date(2025, time.September, 30), Multiplier: 1.3},
			{HotelID: hotel.ID, Name: "Especial", StartDate: date(2025, time.December, 20), EndDate: date(2026, time.January, 6), Multiplier: 1.6},
		}
		for i := range seasons {
			var count int64
			DB.Model(&models.Season{}).Where("hotel_id = ? AND name = ?", hotel.ID, seasons[i].Name).Count(&count)
			if count > 0 {
				continue
			}
			if err := DB.Create(&seasons[i]).Error; err != nil {
				log.Fatalf("🔥 Failed to seed season %s: %v", seasons[i].Name, err)
			}
		}
	}

	extras := []models.Extra{
		{Slug: "spa-bienestar", Name: "Spa & Bienestar", Category: "Bienestar", PricePerNight: 12000,
			Description: "Acceso diario al circuito de spa con tratamientos exclusivos."},
		{Slug: "gastronomia", Name: "Gastronomía de Autor", Category: "Gastronomía", PricePerNight: 18000,
			Description: "Media pensión en nuestros restaurantes de la mano de chefs Michelin."},
		{Slug: "tour-velero", Name: "Tour en Velero", Category: "Aventura", PricePerNight: 35000,
			Description: "Navega por la costa mediterránea en un velero privado con champagne."},
		{Slug: "cata-vinos", Name: "Cata de Vinos", Category: "Gastronomía", PricePerNight: 9500,
			Description: "Visita bodegas selectas y degusta los mejores vinos de la región."},
		{Slug: "yoga", Name: "Yoga al Amanecer", Category: "Bienestar", PricePerNight: 4500,
			Description: "Comienza el día con una sesión de yoga frente al mar."},
		{Slug: "tour-cultural", Name: "Tour Cultural Privado", Category: "Cultura", PricePerNight: 15000,
			Description: "Explora los monumentos y la historia de la ciudad con un guía privado."},
	}
	for i := range extras {
		var count int64
		DB.Model(&models.Extra{}).Where("slug = ?", extras[i].Slug).Count(&count)
		if count > 0 {
			continue
		}
		if err := DB.Create(&extras[i]).Error; err != nil {
			log.Fatalf("🔥 Failed to seed extra %s: %v", extras[i].Slug, err)
		}
	}

	log.Println("✅ Catalog seeded")
}
