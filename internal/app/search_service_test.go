package app

import (
	"context"
	"testing"

	"github.com/jafar554/satr-panel/internal/domain"
)

type staticLister struct {
	restaurants []domain.Restaurant
}

func (s staticLister) List(context.Context) ([]domain.Restaurant, error) {
	return s.restaurants, nil
}

func TestSearchService_EmptyQueryIsNotPerformed(t *testing.T) {
	svc := NewSearchService(staticLister{restaurants: domain.Seed()})

	for _, query := range []string{"", "   ", "\t"} {
		out, err := svc.Search(context.Background(), query)
		if err != nil {
			t.Fatalf("search %q: %v", query, err)
		}
		if out.Performed {
			t.Fatalf("expected %q to yield the no-query state", query)
		}
	}
}

func TestSearchService_MatchesSeedZonesInOrder(t *testing.T) {
	svc := NewSearchService(staticLister{restaurants: domain.Seed()})

	out, err := svc.Search(context.Background(), "خلدا")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !out.Performed {
		t.Fatal("expected search performed")
	}

	// Each seed restaurant has exactly one خلدا zone; order follows the
	// restaurant iteration order.
	wantRestaurants := []string{"UN PIZZA", "جوسي وكرنشي - أبو نصير", "جوسي وكرنشي - خلدا"}
	if len(out.Matches) != len(wantRestaurants) {
		t.Fatalf("expected %d matches, got %d", len(wantRestaurants), len(out.Matches))
	}
	for i, match := range out.Matches {
		if match.RestaurantName != wantRestaurants[i] {
			t.Fatalf("match %d: expected restaurant %q, got %q", i, wantRestaurants[i], match.RestaurantName)
		}
		if match.ZoneName != "خلدا" {
			t.Fatalf("match %d: expected zone خلدا, got %q", i, match.ZoneName)
		}
		if match.Price != 3 || match.DeliveryTime != 35 {
			t.Fatalf("match %d: expected price 3 / time 35, got %d / %d", i, match.Price, match.DeliveryTime)
		}
	}
}

func TestSearchService_CaseInsensitiveSubstring(t *testing.T) {
	svc := NewSearchService(staticLister{restaurants: []domain.Restaurant{
		{
			ID:   1,
			Name: "Testaurant",
			DeliveryZones: []domain.DeliveryZone{
				{Zone: "Downtown West", Price: 2, DeliveryTime: 20},
				{Zone: "Uptown", Price: 3, DeliveryTime: 30},
			},
		},
	}})

	out, err := svc.Search(context.Background(), "dOwN")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(out.Matches) != 1 || out.Matches[0].ZoneName != "Downtown West" {
		t.Fatalf("expected one case-insensitive substring match, got %+v", out.Matches)
	}
}

func TestSearchService_NoMatchesIsDistinctFromNoQuery(t *testing.T) {
	svc := NewSearchService(staticLister{restaurants: domain.Seed()})

	out, err := svc.Search(context.Background(), "لا وجود لها")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !out.Performed {
		t.Fatal("expected search performed")
	}
	if len(out.Matches) != 0 {
		t.Fatalf("expected zero matches, got %d", len(out.Matches))
	}
}
