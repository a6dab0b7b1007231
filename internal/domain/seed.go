package domain

// Seed returns the fixed sample restaurants installed when no collection has
// been persisted yet. Callers receive a fresh copy on every call.
func Seed() []Restaurant {
	return []Restaurant{
		{
			ID:   1,
			Name: "UN PIZZA",
			DeliveryZones: []DeliveryZone{
				{Zone: "جبل الحسين", Price: 1, DeliveryTime: 25},
				{Zone: "العبدلي", Price: 2, DeliveryTime: 30},
				{Zone: "خلدا", Price: 3, DeliveryTime: 35},
			},
		},
		{
			ID:   2,
			Name: "جوسي وكرنشي - أبو نصير",
			DeliveryZones: []DeliveryZone{
				{Zone: "جبل الحسين", Price: 1, DeliveryTime: 25},
				{Zone: "العبدلي", Price: 2, DeliveryTime: 30},
				{Zone: "خلدا", Price: 3, DeliveryTime: 35},
				{Zone: "الوحدات", Price: 4, DeliveryTime: 45},
			},
		},
		{
			ID:   3,
			Name: "جوسي وكرنشي - خلدا",
			DeliveryZones: []DeliveryZone{
				{Zone: "جبل الحسين", Price: 1, DeliveryTime: 25},
				{Zone: "العبدلي", Price: 2, DeliveryTime: 30},
				{Zone: "خلدا", Price: 3, DeliveryTime: 35},
			},
		},
	}
}
