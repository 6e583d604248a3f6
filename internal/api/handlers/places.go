package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"treasure-map-service/internal/api/dto"
	"treasure-map-service/internal/forms"
	"treasure-map-service/internal/platform/obs"
	"treasure-map-service/internal/ports"
	"treasure-map-service/internal/services"
)

var (
	pointField    = forms.LatLongField{Name: "point", Required: true}
	entranceField = forms.LatLongField{Name: "entrance"}
)

// PlaceHandler exposes place storage and the place pickers.
type PlaceHandler struct {
	Repo      ports.PlaceRepository
	Provider  ports.MapProvider
	Templates *forms.Templates
	Metrics   *obs.Metrics
}

func (h *PlaceHandler) List(w http.ResponseWriter, r *http.Request) {
	places, err := h.Repo.ListPlaces(r.Context())
	if err != nil {
		render.Render(w, r, ErrInternal(r, err))
		return
	}

	res := dto.ListPlacesResponse{
		Places: make([]dto.PlaceResponse, 0, len(places)),
	}
	for _, p := range places {
		res.Places = append(res.Places, dto.NewPlaceResponse(p))
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, res)
}

func (h *PlaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		render.Render(w, r, ErrInvalidRequest(errors.New("id must be a positive integer")))
		return
	}

	p, err := h.Repo.GetPlace(r.Context(), id)
	if err != nil {
		render.Render(w, r, ErrDomain(r, err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, dto.NewPlaceResponse(p))
}

// Create accepts either an HTML form post with split coordinate inputs or
// a JSON body.
func (h *PlaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.CreatePlaceRequest

	if render.GetRequestContentType(r) == render.ContentTypeForm {
		if err := r.ParseForm(); err != nil {
			render.Render(w, r, ErrInvalidRequest(err))
			return
		}

		point, err := pointField.Clean(r.PostForm)
		if err != nil {
			render.Render(w, r, ErrInvalidRequest(err))
			return
		}
		entrance, err := entranceField.Clean(r.PostForm)
		if err != nil {
			render.Render(w, r, ErrInvalidRequest(err))
			return
		}

		req = services.CreatePlaceRequest{
			Name:     strings.TrimSpace(r.PostForm.Get("name")),
			Point:    *point,
			Entrance: entrance,
		}
	} else {
		data := &dto.PlaceRequest{}
		if err := render.Bind(r, data); err != nil {
			render.Render(w, r, ErrInvalidRequest(err))
			return
		}
		if errR := validateStruct(*data); errR != nil {
			render.Render(w, r, errR)
			return
		}

		req = services.CreatePlaceRequest{
			PlaceID:  data.PlaceID,
			Name:     data.Name,
			Point:    *data.Point,
			Entrance: data.Entrance,
		}
	}

	p, err := services.CreatePlace(r.Context(), req, h.Repo)
	if err != nil {
		render.Render(w, r, ErrDomain(r, err))
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, dto.NewPlaceResponse(p))
}

// Widgets renders the admin pickers for every stored place.
func (h *PlaceHandler) Widgets(w http.ResponseWriter, r *http.Request) {
	widget := forms.NewAdminMapWidget(h.Provider, h.Templates)

	widgets, err := services.RenderPlaceWidgets(r.Context(), h.Repo, widget.Render)
	h.Metrics.ObserveWidgetRender(h.Provider.Name(), true, err)
	if err != nil {
		render.Render(w, r, ErrInternal(r, err))
		return
	}

	res := dto.ListPlaceWidgetsResponse{
		Widgets: make([]dto.PlaceWidgetResponse, 0, len(widgets)),
	}
	for _, pw := range widgets {
		res.Widgets = append(res.Widgets, dto.PlaceWidgetResponse{
			PlaceID:  pw.PlaceID,
			Name:     pw.Name,
			Point:    pw.Point,
			Entrance: pw.Entrance,
		})
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, res)
}
