package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/jafar554/satr-panel/internal/app"
	"github.com/jafar554/satr-panel/internal/domain"
	"github.com/jafar554/satr-panel/internal/render"
)

// RestaurantStore is the minimal interface needed by restaurant endpoints.
type RestaurantStore interface {
	List(ctx context.Context) ([]domain.Restaurant, error)
	Get(ctx context.Context, id int) (domain.Restaurant, error)
	Create(ctx context.Context, in app.CreateInput) (domain.Restaurant, error)
	Update(ctx context.Context, in app.UpdateInput) (domain.Restaurant, error)
	Delete(ctx context.Context, id int) (bool, error)
	AddZone(ctx context.Context, id int) (bool, error)
}

// RoleReader exposes the current session role to read-only views.
type RoleReader interface {
	Admin() bool
}

type zoneRowRequest struct {
	Zone         string `json:"zone"`
	Price        string `json:"price"`
	DeliveryTime string `json:"deliveryTime"`
}

type saveRestaurantRequest struct {
	Name          string           `json:"name"`
	DeliveryZones []zoneRowRequest `json:"deliveryZones"`
}

func (r saveRestaurantRequest) zones() []app.ZoneInput {
	zones := make([]app.ZoneInput, 0, len(r.DeliveryZones))
	for _, row := range r.DeliveryZones {
		zones = append(zones, app.ZoneInput{
			Zone:         row.Zone,
			Price:        row.Price,
			DeliveryTime: row.DeliveryTime,
		})
	}
	return zones
}

// HandleRestaurants serves the grid view and restaurant creation.
func HandleRestaurants(svc RestaurantStore, session RoleReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			restaurants, err := svc.List(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
			writeJSON(w, http.StatusOK, render.Grid(restaurants, session.Admin()))
		case http.MethodPost:
			var req saveRestaurantRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			restaurant, err := svc.Create(r.Context(), app.CreateInput{
				Name:  req.Name,
				Zones: req.zones(),
			})
			if err != nil {
				switch err {
				case domain.ErrNameRequired:
					writeError(w, http.StatusBadRequest, codeNameRequired, err.Error())
				case domain.ErrAdminRequired:
					writeError(w, http.StatusForbidden, codeAdminRequired, err.Error())
				default:
					writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				}
				return
			}
			writeJSON(w, http.StatusCreated, restaurant)
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// HandleRestaurantByID serves the detail view, the edit/create form models,
// updates, deletes, and the add-zone action.
func HandleRestaurantByID(svc RestaurantStore, session RoleReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if len(parts) < 2 || parts[0] != "restaurants" {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		// /restaurants/form is the create form, no id involved.
		if parts[1] == "form" {
			if len(parts) != 2 {
				writeError(w, http.StatusNotFound, codeNotFound, "not found")
				return
			}
			if r.Method != http.MethodGet {
				writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
				return
			}
			writeJSON(w, http.StatusOK, render.Form(nil))
			return
		}

		id, err := strconv.Atoi(parts[1])
		if err != nil || id <= 0 {
			writeError(w, http.StatusBadRequest, codeInvalidID, "invalid id")
			return
		}

		switch len(parts) {
		case 2:
			handleRestaurant(w, r, svc, id)
		case 3:
			switch parts[2] {
			case "zones":
				handleAddZone(w, r, svc, id)
			case "form":
				handleEditForm(w, r, svc, id)
			default:
				writeError(w, http.StatusNotFound, codeNotFound, "not found")
			}
		default:
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
		}
	}
}

func handleRestaurant(w http.ResponseWriter, r *http.Request, svc RestaurantStore, id int) {
	switch r.Method {
	case http.MethodGet:
		restaurant, err := svc.Get(r.Context(), id)
		if err != nil {
			switch err {
			case domain.ErrRestaurantNotFound:
				writeError(w, http.StatusNotFound, codeRestaurantNotFound, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}
		writeJSON(w, http.StatusOK, render.Detail(restaurant))
	case http.MethodPut:
		var req saveRestaurantRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		restaurant, err := svc.Update(r.Context(), app.UpdateInput{
			ID:    id,
			Name:  req.Name,
			Zones: req.zones(),
		})
		if err != nil {
			switch err {
			case domain.ErrNameRequired:
				writeError(w, http.StatusBadRequest, codeNameRequired, err.Error())
			case domain.ErrRestaurantNotFound:
				writeError(w, http.StatusNotFound, codeRestaurantNotFound, err.Error())
			case domain.ErrAdminRequired:
				writeError(w, http.StatusForbidden, codeAdminRequired, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}
		writeJSON(w, http.StatusOK, restaurant)
	case http.MethodDelete:
		deleted, err := svc.Delete(r.Context(), id)
		if err != nil {
			switch err {
			case domain.ErrAdminRequired:
				writeError(w, http.StatusForbidden, codeAdminRequired, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
	default:
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	}
}

func handleAddZone(w http.ResponseWriter, r *http.Request, svc RestaurantStore, id int) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}

	added, err := svc.AddZone(r.Context(), id)
	if err != nil {
		switch err {
		case domain.ErrAdminRequired:
			writeError(w, http.StatusForbidden, codeAdminRequired, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"added": added})
}

func handleEditForm(w http.ResponseWriter, r *http.Request, svc RestaurantStore, id int) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}

	restaurant, err := svc.Get(r.Context(), id)
	if err != nil {
		switch err {
		case domain.ErrRestaurantNotFound:
			writeError(w, http.StatusNotFound, codeRestaurantNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		}
		return
	}
	writeJSON(w, http.StatusOK, render.Form(&restaurant))
}
