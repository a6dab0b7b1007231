package render

import (
	"fmt"

	"github.com/jafar554/satr-panel/internal/domain"
)

// FormRow is one editable zone row. Removable is false when it is the only
// row, matching the form's remove-button rule.
type FormRow struct {
	Zone         string `json:"zone"`
	Price        int    `json:"price"`
	DeliveryTime int    `json:"deliveryTime"`
	Removable    bool   `json:"removable"`
}

// FormView is the create/edit form model.
type FormView struct {
	Title string    `json:"title"`
	ID    int       `json:"id,omitempty"`
	Name  string    `json:"name"`
	Zones []FormRow `json:"zones"`
}

// Form builds the edit form for an existing restaurant, or the create form
// (one blank row) when restaurant is nil.
func Form(restaurant *domain.Restaurant) FormView {
	if restaurant == nil {
		blank := domain.BlankZone()
		return FormView{
			Title: "إضافة مطعم جديد",
			Zones: []FormRow{{Zone: blank.Zone, Price: blank.Price, DeliveryTime: blank.DeliveryTime}},
		}
	}

	removable := len(restaurant.DeliveryZones) > 1
	rows := make([]FormRow, 0, len(restaurant.DeliveryZones))
	for _, zone := range restaurant.DeliveryZones {
		rows = append(rows, FormRow{
			Zone:         zone.Zone,
			Price:        zone.Price,
			DeliveryTime: zone.DeliveryTime,
			Removable:    removable,
		})
	}

	return FormView{
		Title: fmt.Sprintf("تعديل %s", restaurant.Name),
		ID:    restaurant.ID,
		Name:  restaurant.Name,
		Zones: rows,
	}
}
