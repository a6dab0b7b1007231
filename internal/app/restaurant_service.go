package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/jafar554/satr-panel/internal/domain"
	"github.com/jafar554/satr-panel/internal/kv"
	"github.com/jafar554/satr-panel/internal/notify"
)

// RoleGuard gates mutating operations on the current session role.
type RoleGuard interface {
	RequireAdmin() error
}

// RestaurantService owns the in-memory restaurant collection. Every
// mutation rewrites the whole serialized collection to the kv store.
type RestaurantService struct {
	store     kv.Store
	guard     RoleGuard
	notifier  Notifier
	confirmer Confirmer

	mu          sync.RWMutex
	restaurants []domain.Restaurant
}

func NewRestaurantService(store kv.Store, guard RoleGuard, opts ...RestaurantOption) *RestaurantService {
	svc := &RestaurantService{
		store:     store,
		guard:     guard,
		notifier:  nopNotifier{},
		confirmer: AcceptAll{},
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type RestaurantOption func(*RestaurantService)

// WithNotifier routes store toasts to n.
func WithNotifier(n Notifier) RestaurantOption {
	return func(s *RestaurantService) {
		s.notifier = n
	}
}

// WithConfirmer sets the confirmation capability used before deletes.
func WithConfirmer(c Confirmer) RestaurantOption {
	return func(s *RestaurantService) {
		s.confirmer = c
	}
}

// Load reads the persisted collection. An absent collection installs the
// seed set; a corrupt one recovers with the seed set and reports recovered
// so the caller can surface a warning.
func (s *RestaurantService) Load(ctx context.Context) (recovered bool, err error) {
	value, ok, err := s.store.Get(ctx, kv.RestaurantsKey)
	if err != nil {
		return false, fmt.Errorf("read restaurants: %w", err)
	}

	if !ok {
		seed := domain.Seed()
		if err := s.persist(ctx, seed); err != nil {
			return false, err
		}
		s.mu.Lock()
		s.restaurants = seed
		s.mu.Unlock()
		return false, nil
	}

	var restaurants []domain.Restaurant
	if err := json.Unmarshal([]byte(value), &restaurants); err != nil {
		seed := domain.Seed()
		if err := s.persist(ctx, seed); err != nil {
			return false, err
		}
		s.mu.Lock()
		s.restaurants = seed
		s.mu.Unlock()
		s.notifier.Notify("تعذر قراءة البيانات المخزنة، تمت استعادة البيانات الافتراضية", notify.LevelError)
		return true, nil
	}

	s.mu.Lock()
	s.restaurants = restaurants
	s.mu.Unlock()
	return false, nil
}

// List returns a copy of the collection in stable order.
func (s *RestaurantService) List(ctx context.Context) ([]domain.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.restaurants), nil
}

// Get returns the restaurant with the given id.
func (s *RestaurantService) Get(ctx context.Context, id int) (domain.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.restaurants {
		if r.ID == id {
			return clone(r), nil
		}
	}
	return domain.Restaurant{}, domain.ErrRestaurantNotFound
}

// ZoneInput is one zone row as submitted by the form. Price and
// DeliveryTime arrive as raw strings; unparseable values coerce to the
// defaults instead of rejecting the save.
type ZoneInput struct {
	Zone         string
	Price        string
	DeliveryTime string
}

type CreateInput struct {
	Name  string
	Zones []ZoneInput
}

// Create appends a new restaurant with the next id and persists.
func (s *RestaurantService) Create(ctx context.Context, in CreateInput) (domain.Restaurant, error) {
	if err := s.guard.RequireAdmin(); err != nil {
		return domain.Restaurant{}, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Restaurant{}, domain.ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	restaurant := domain.Restaurant{
		ID:            nextID(s.restaurants),
		Name:          name,
		DeliveryZones: sanitizeZones(in.Zones),
	}

	next := append(cloneAll(s.restaurants), restaurant)
	if err := s.persist(ctx, next); err != nil {
		return domain.Restaurant{}, err
	}
	s.restaurants = next

	s.notifier.Notify(fmt.Sprintf("تم إضافة مطعم \"%s\" بنجاح!", name), notify.LevelSuccess)
	return clone(restaurant), nil
}

type UpdateInput struct {
	ID    int
	Name  string
	Zones []ZoneInput
}

// Update replaces the entry's name and zones wholesale. The id never
// changes.
func (s *RestaurantService) Update(ctx context.Context, in UpdateInput) (domain.Restaurant, error) {
	if err := s.guard.RequireAdmin(); err != nil {
		return domain.Restaurant{}, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Restaurant{}, domain.ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, r := range s.restaurants {
		if r.ID == in.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return domain.Restaurant{}, domain.ErrRestaurantNotFound
	}

	restaurant := domain.Restaurant{
		ID:            in.ID,
		Name:          name,
		DeliveryZones: sanitizeZones(in.Zones),
	}

	next := cloneAll(s.restaurants)
	next[index] = restaurant
	if err := s.persist(ctx, next); err != nil {
		return domain.Restaurant{}, err
	}
	s.restaurants = next

	s.notifier.Notify("تم تحديث المطعم بنجاح!", notify.LevelSuccess)
	return clone(restaurant), nil
}

// Delete removes the restaurant after user confirmation. A declined
// confirmation and an unknown id are both benign no-ops.
func (s *RestaurantService) Delete(ctx context.Context, id int) (deleted bool, err error) {
	if err := s.guard.RequireAdmin(); err != nil {
		return false, err
	}
	if !s.confirmer.Confirm("هل أنت متأكد من حذف هذا المطعم؟ هذا الإجراء لا يمكن التراجع عنه.") {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Restaurant, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		if r.ID != id {
			next = append(next, clone(r))
		}
	}
	if len(next) == len(s.restaurants) {
		return false, nil
	}

	if err := s.persist(ctx, next); err != nil {
		return false, err
	}
	s.restaurants = next

	s.notifier.Notify("تم حذف المطعم بنجاح", notify.LevelSuccess)
	return true, nil
}

// AddZone appends one blank zone to the restaurant. The zone stays invalid
// (empty name) until edited through the form. Unknown ids are benign no-ops.
func (s *RestaurantService) AddZone(ctx context.Context, id int) (added bool, err error) {
	if err := s.guard.RequireAdmin(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, r := range s.restaurants {
		if r.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return false, nil
	}

	next := cloneAll(s.restaurants)
	next[index].DeliveryZones = append(next[index].DeliveryZones, domain.BlankZone())
	if err := s.persist(ctx, next); err != nil {
		return false, err
	}
	s.restaurants = next

	s.notifier.Notify("تمت إضافة منطقة توصيل جديدة", notify.LevelSuccess)
	return true, nil
}

// persist serializes the whole collection; there is no partial write.
func (s *RestaurantService) persist(ctx context.Context, restaurants []domain.Restaurant) error {
	payload, err := json.Marshal(restaurants)
	if err != nil {
		return fmt.Errorf("encode restaurants: %w", err)
	}
	if err := s.store.Set(ctx, kv.RestaurantsKey, string(payload)); err != nil {
		return fmt.Errorf("persist restaurants: %w", err)
	}
	return nil
}

func nextID(restaurants []domain.Restaurant) int {
	max := 0
	for _, r := range restaurants {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

// sanitizeZones drops rows with an empty name, coerces bad numeric input to
// the defaults, and falls back to one default zone when nothing survives.
func sanitizeZones(rows []ZoneInput) []domain.DeliveryZone {
	zones := make([]domain.DeliveryZone, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Zone)
		if name == "" {
			continue
		}
		zones = append(zones, domain.DeliveryZone{
			Zone:         name,
			Price:        coerce(row.Price, domain.DefaultPrice, domain.MinPrice),
			DeliveryTime: coerce(row.DeliveryTime, domain.DefaultDeliveryTime, domain.MinDeliveryTime),
		})
	}
	if len(zones) == 0 {
		zones = append(zones, domain.DefaultZone())
	}
	return zones
}

func coerce(raw string, fallback, min int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	if value < min {
		return min
	}
	return value
}

func clone(r domain.Restaurant) domain.Restaurant {
	out := r
	out.DeliveryZones = make([]domain.DeliveryZone, len(r.DeliveryZones))
	copy(out.DeliveryZones, r.DeliveryZones)
	return out
}

func cloneAll(restaurants []domain.Restaurant) []domain.Restaurant {
	out := make([]domain.Restaurant, len(restaurants))
	for i, r := range restaurants {
		out[i] = clone(r)
	}
	return out
}
