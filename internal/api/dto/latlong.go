package dto

import (
	"errors"
	"net/http"
	"strings"
)

// NormalizeRequest carries either the "lat;lon" text or the two components.
type NormalizeRequest struct {
	Value     string `json:"value" validate:"required_without_all=Latitude Longitude,max=64"`
	Latitude  string `json:"latitude" validate:"required_with=Longitude"`
	Longitude string `json:"longitude" validate:"required_with=Latitude"`
}

func (n *NormalizeRequest) Bind(r *http.Request) error {
	n.Value = strings.TrimSpace(n.Value)
	if n.Value != "" && (n.Latitude != "" || n.Longitude != "") {
		return errors.New("send either value or latitude and longitude")
	}
	return nil
}

type LatLongResponse struct {
	Value     string `json:"value"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}
