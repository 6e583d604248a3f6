package dto

import "treasure-map-service/internal/ports"

type SizeResponse struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type BackendResponse struct {
	Name           string           `json:"name"`
	APIURL         string           `json:"api_url"`
	APIJS          string           `json:"api_js"`
	JS             string           `json:"js"`
	WidgetTemplate string           `json:"widget_template"`
	OnlyMap        bool             `json:"only_map"`
	Size           SizeResponse     `json:"size"`
	AdminSize      SizeResponse     `json:"admin_size"`
	MapOptions     ports.MapOptions `json:"map_options"`
}

type MediaResponse struct {
	JS []string `json:"js"`
}
