// Package render maps store state and the current role into display-ready
// view models. It owns no state; every function is a pure mapping.
package render

import "fmt"

// Display strings are a fixed locale; there is no i18n layer.
const (
	currencyUnit = "دينار"
	minuteUnit   = "دقيقة"

	statusOnline  = "متصل"
	statusOffline = "غير متصل"
)

// FormatPrice renders a price with the currency suffix, e.g. "3 دينار".
func FormatPrice(price int) string {
	return fmt.Sprintf("%d %s", price, currencyUnit)
}

// FormatDeliveryTime renders minutes with the unit suffix, e.g. "35 دقيقة".
func FormatDeliveryTime(minutes int) string {
	return fmt.Sprintf("%d %s", minutes, minuteUnit)
}

// StatusLabel renders the connectivity indicator text.
func StatusLabel(online bool) string {
	if online {
		return statusOnline
	}
	return statusOffline
}
