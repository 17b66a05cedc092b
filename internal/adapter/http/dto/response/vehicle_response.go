package response

import "instant_offer/internal/domain/entities"

type NameListResponse struct {
	Items []string `json:"items"`
}

func FromNames(names []string) NameListResponse {
	if names == nil {
		names = []string{}
	}
	return NameListResponse{Items: names}
}

type VINDecodeResponse struct {
	Vehicle entities.VehicleAttributes `json:"vehicle"`
	Partial bool                       `json:"partial"`
}
