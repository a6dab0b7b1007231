package render

import (
	"fmt"

	"github.com/jafar554/satr-panel/internal/app"
)

const searchPlaceholder = "أدخل اسم المنطقة أو الرمز البريدي للبحث عن مناطق التوصيل"

// SearchResultView is one formatted match, styled like the detail view.
type SearchResultView struct {
	RestaurantName string `json:"restaurantName"`
	ZoneName       string `json:"zoneName"`
	Price          string `json:"price"`
	DeliveryTime   string `json:"deliveryTime"`
}

// SearchView covers the three states: no search performed (Placeholder),
// performed with no matches (Empty), or the match list.
type SearchView struct {
	Performed   bool               `json:"performed"`
	Query       string             `json:"query,omitempty"`
	Placeholder string             `json:"placeholder,omitempty"`
	Empty       string             `json:"empty,omitempty"`
	Results     []SearchResultView `json:"results"`
}

func SearchResults(out app.SearchOutcome) SearchView {
	if !out.Performed {
		return SearchView{Placeholder: searchPlaceholder, Results: []SearchResultView{}}
	}

	view := SearchView{
		Performed: true,
		Query:     out.Query,
		Results:   make([]SearchResultView, 0, len(out.Matches)),
	}
	if len(out.Matches) == 0 {
		view.Empty = fmt.Sprintf("لم يتم العثور على مناطق توصيل لـ \"%s\"", out.Query)
		return view
	}

	for _, match := range out.Matches {
		view.Results = append(view.Results, SearchResultView{
			RestaurantName: match.RestaurantName,
			ZoneName:       match.ZoneName,
			Price:          FormatPrice(match.Price),
			DeliveryTime:   FormatDeliveryTime(match.DeliveryTime),
		})
	}
	return view
}
