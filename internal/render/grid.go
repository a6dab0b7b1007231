package render

import (
	"fmt"

	"github.com/jafar554/satr-panel/internal/domain"
)

// summaryZoneLimit is how many zones a summary card shows before the
// overflow marker.
const summaryZoneLimit = 3

// ZoneView is one formatted zone line.
type ZoneView struct {
	Zone         string `json:"zone"`
	Price        string `json:"price"`
	DeliveryTime string `json:"deliveryTime"`
}

// CardView is one restaurant summary card.
type CardView struct {
	ID               int        `json:"id"`
	Name             string     `json:"name"`
	Zones            []ZoneView `json:"zones"`
	MoreZones        string     `json:"moreZones,omitempty"`
	ShowAdminActions bool       `json:"showAdminActions"`
}

// GridView is the restaurant overview.
type GridView struct {
	Cards            []CardView `json:"cards"`
	CanAddRestaurant bool       `json:"canAddRestaurant"`
}

// Grid builds the summary grid. Admin mode attaches the mutation
// affordances to every card and the add-restaurant affordance to the grid.
func Grid(restaurants []domain.Restaurant, admin bool) GridView {
	cards := make([]CardView, 0, len(restaurants))
	for _, restaurant := range restaurants {
		cards = append(cards, card(restaurant, admin))
	}
	return GridView{Cards: cards, CanAddRestaurant: admin}
}

func card(restaurant domain.Restaurant, admin bool) CardView {
	shown := restaurant.DeliveryZones
	overflow := ""
	if len(shown) > summaryZoneLimit {
		overflow = fmt.Sprintf("و%d مناطق أخرى", len(shown)-summaryZoneLimit)
		shown = shown[:summaryZoneLimit]
	}

	zones := make([]ZoneView, 0, len(shown))
	for _, zone := range shown {
		zones = append(zones, ZoneView{
			Zone:         zone.Zone,
			Price:        FormatPrice(zone.Price),
			DeliveryTime: FormatDeliveryTime(zone.DeliveryTime),
		})
	}

	return CardView{
		ID:               restaurant.ID,
		Name:             restaurant.Name,
		Zones:            zones,
		MoreZones:        overflow,
		ShowAdminActions: admin,
	}
}
