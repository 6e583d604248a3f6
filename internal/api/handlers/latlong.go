package handlers

import (
	"net/http"

	"github.com/go-chi/render"

	"treasure-map-service/internal/api/dto"
	"treasure-map-service/internal/domain"
	"treasure-map-service/internal/forms"
)

// NormalizeLatLong handles POST /latlong/normalize and answers with the
// canonical text of the submitted point.
func NormalizeLatLong(w http.ResponseWriter, r *http.Request) {
	data := &dto.NormalizeRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if errR := validateStruct(*data); errR != nil {
		render.Render(w, r, errR)
		return
	}

	var (
		ll  domain.LatLong
		err error
	)
	if data.Value != "" {
		ll, err = domain.ParseLatLong(data.Value)
	} else {
		ll, err = forms.MergeFromInput(data.Latitude, data.Longitude)
	}
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, dto.LatLongResponse{
		Value:     ll.String(),
		Latitude:  ll.FormatLatitude(),
		Longitude: ll.FormatLongitude(),
	})
}
