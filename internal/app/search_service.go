package app

import (
	"context"
	"strings"

	"github.com/jafar554/satr-panel/internal/domain"
)

// RestaurantLister is the minimal read surface the search engine needs.
type RestaurantLister interface {
	List(ctx context.Context) ([]domain.Restaurant, error)
}

// ZoneMatch projects one (restaurant, zone) pair into a search result.
type ZoneMatch struct {
	RestaurantName string
	ZoneName       string
	Price          int
	DeliveryTime   int
}

// SearchOutcome distinguishes "no search performed" (empty query) from a
// performed search with zero matches.
type SearchOutcome struct {
	Performed bool
	Query     string
	Matches   []ZoneMatch
}

// SearchService filters (restaurant, zone) pairs by case-insensitive
// substring match on the zone name.
type SearchService struct {
	restaurants RestaurantLister
}

func NewSearchService(restaurants RestaurantLister) *SearchService {
	return &SearchService{restaurants: restaurants}
}

// Search keeps matching pairs in restaurant-then-zone order. No ranking.
func (s *SearchService) Search(ctx context.Context, query string) (SearchOutcome, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return SearchOutcome{}, nil
	}

	restaurants, err := s.restaurants.List(ctx)
	if err != nil {
		return SearchOutcome{}, err
	}

	needle := strings.ToLower(trimmed)
	matches := []ZoneMatch{}
	for _, restaurant := range restaurants {
		for _, zone := range restaurant.DeliveryZones {
			if strings.Contains(strings.ToLower(zone.Zone), needle) {
				matches = append(matches, ZoneMatch{
					RestaurantName: restaurant.Name,
					ZoneName:       zone.Zone,
					Price:          zone.Price,
					DeliveryTime:   zone.DeliveryTime,
				})
			}
		}
	}

	return SearchOutcome{Performed: true, Query: trimmed, Matches: matches}, nil
}
