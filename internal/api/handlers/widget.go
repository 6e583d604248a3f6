package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/render"

	"treasure-map-service/internal/api/dto"
	"treasure-map-service/internal/domain"
	"treasure-map-service/internal/forms"
	"treasure-map-service/internal/platform/obs"
	"treasure-map-service/internal/ports"
)

const defaultFieldName = "point"

// WidgetHandler renders the map picker outside of any form.
type WidgetHandler struct {
	Provider  ports.MapProvider
	Templates *forms.Templates
	Metrics   *obs.Metrics
}

func (h *WidgetHandler) widget(admin bool) *forms.MapWidget {
	if admin {
		return forms.NewAdminMapWidget(h.Provider, h.Templates)
	}
	return forms.NewMapWidget(h.Provider, h.Templates)
}

// Render handles GET /widget?name=&value=&admin=.
func (h *WidgetHandler) Render(w http.ResponseWriter, r *http.Request) {
	// url.ParseQuery drops pairs holding a bare ';'.
	if strings.Contains(r.URL.RawQuery, ";") {
		render.Render(w, r, ErrInvalidRequest(errors.New("query must encode ';' as %3B")))
		return
	}
	q := r.URL.Query()

	name := strings.TrimSpace(q.Get("name"))
	if name == "" {
		name = defaultFieldName
	}

	admin := false
	if v := q.Get("admin"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			render.Render(w, r, ErrInvalidRequest(errors.New("admin must be a boolean")))
			return
		}
		admin = b
	}

	var value *domain.LatLong
	if v := strings.TrimSpace(q.Get("value")); v != "" {
		ll, err := domain.ParseLatLong(v)
		if err != nil {
			render.Render(w, r, ErrInvalidRequest(err))
			return
		}
		value = &ll
	}

	var buf bytes.Buffer
	err := h.widget(admin).Render(&buf, name, value)
	h.Metrics.ObserveWidgetRender(h.Provider.Name(), admin, err)
	if err != nil {
		render.Render(w, r, ErrInternal(r, err))
		return
	}

	render.Status(r, http.StatusOK)
	render.HTML(w, r, buf.String())
}

// Media handles GET /widget/media.
func (h *WidgetHandler) Media(w http.ResponseWriter, r *http.Request) {
	js, err := h.widget(false).Media()
	if err != nil {
		render.Render(w, r, ErrDomain(r, err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, dto.MediaResponse{JS: js})
}
