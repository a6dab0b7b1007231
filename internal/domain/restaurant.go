package domain

// DeliveryZone is a named delivery area with a price and an estimated
// delivery time in minutes. Zones carry no identity of their own; they are
// addressed by position within their restaurant's list.
type DeliveryZone struct {
	Zone         string `json:"zone"`
	Price        int    `json:"price"`
	DeliveryTime int    `json:"deliveryTime"`
}

// Restaurant is a directory entry with an ordered list of delivery zones.
type Restaurant struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	DeliveryZones []DeliveryZone `json:"deliveryZones"`
}

const (
	// DefaultZoneName is the placeholder zone installed when a save carries
	// no valid zone rows.
	DefaultZoneName = "منطقة افتراضية"

	DefaultPrice        = 1
	DefaultDeliveryTime = 30

	MinPrice        = 1
	MinDeliveryTime = 10
)

// BlankZone returns the zone appended by the add-zone action. Its name is
// empty until the user edits it through the form.
func BlankZone() DeliveryZone {
	return DeliveryZone{Zone: "", Price: DefaultPrice, DeliveryTime: DefaultDeliveryTime}
}

// DefaultZone returns the fallback zone used when a save ends up with no
// valid zones.
func DefaultZone() DeliveryZone {
	return DeliveryZone{Zone: DefaultZoneName, Price: DefaultPrice, DeliveryTime: DefaultDeliveryTime}
}
