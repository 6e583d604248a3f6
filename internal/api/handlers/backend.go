package handlers

import (
	"net/http"

	"github.com/go-chi/render"

	"treasure-map-service/internal/api/dto"
	"treasure-map-service/internal/ports"
	"treasure-map-service/internal/services"
)

// BackendHandler describes the active map backend.
type BackendHandler struct {
	Provider ports.MapProvider
}

func (h *BackendHandler) Describe(w http.ResponseWriter, r *http.Request) {
	d, err := services.DescribeBackend(h.Provider)
	if err != nil {
		render.Render(w, r, ErrDomain(r, err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, dto.BackendResponse{
		Name:           d.Name,
		APIURL:         d.APIURL,
		APIJS:          d.APIJS,
		JS:             d.JS,
		WidgetTemplate: d.WidgetTemplate,
		OnlyMap:        d.OnlyMap,
		Size:           dto.SizeResponse{Width: d.Width, Height: d.Height},
		AdminSize:      dto.SizeResponse{Width: d.AdminWidth, Height: d.AdminHeight},
		MapOptions:     d.MapOptions,
	})
}
