package render

import "github.com/jafar554/satr-panel/internal/domain"

// DetailZoneView is a numbered zone entry in the detail view.
type DetailZoneView struct {
	Number       int    `json:"number"`
	Zone         string `json:"zone"`
	Price        string `json:"price"`
	DeliveryTime string `json:"deliveryTime"`
}

// DetailView shows a restaurant with its full zone list, no truncation.
type DetailView struct {
	ID    int              `json:"id"`
	Name  string           `json:"name"`
	Zones []DetailZoneView `json:"zones"`
}

func Detail(restaurant domain.Restaurant) DetailView {
	zones := make([]DetailZoneView, 0, len(restaurant.DeliveryZones))
	for i, zone := range restaurant.DeliveryZones {
		zones = append(zones, DetailZoneView{
			Number:       i + 1,
			Zone:         zone.Zone,
			Price:        FormatPrice(zone.Price),
			DeliveryTime: FormatDeliveryTime(zone.DeliveryTime),
		})
	}
	return DetailView{ID: restaurant.ID, Name: restaurant.Name, Zones: zones}
}
