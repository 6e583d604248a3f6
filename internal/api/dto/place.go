package dto

import (
	"errors"
	"net/http"
	"strings"

	"treasure-map-service/internal/domain"
)

type PlaceRequest struct {
	PlaceID  int             `json:"place_id" validate:"gte=0"`
	Name     string          `json:"name" validate:"required,max=200"`
	Point    *domain.LatLong `json:"point" validate:"required"`
	Entrance *domain.LatLong `json:"entrance"`
}

func (p *PlaceRequest) Bind(r *http.Request) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Point == nil {
		return errors.New("point is required")
	}
	return nil
}

type PlaceResponse struct {
	PlaceID  int             `json:"place_id"`
	Name     string          `json:"name"`
	Point    domain.LatLong  `json:"point"`
	Entrance *domain.LatLong `json:"entrance"`
}

func NewPlaceResponse(p *domain.Place) PlaceResponse {
	return PlaceResponse{
		PlaceID:  p.PlaceID,
		Name:     p.Name,
		Point:    p.Point,
		Entrance: p.Entrance,
	}
}

type ListPlacesResponse struct {
	Places []PlaceResponse `json:"places"`
}

type PlaceWidgetResponse struct {
	PlaceID  int    `json:"place_id"`
	Name     string `json:"name"`
	Point    string `json:"point_html"`
	Entrance string `json:"entrance_html"`
}

type ListPlaceWidgetsResponse struct {
	Widgets []PlaceWidgetResponse `json:"widgets"`
}
