package interfaces

import (
	"context"
	"errors"

	"instant_offer/internal/domain/entities"
)

var (
	ErrVehicleServiceUnavailable = errors.New("vehicle data service unavailable")
	ErrVINNotDecodable           = errors.New("vin could not be decoded")
	// ErrVINPartialData comes with a partially filled VehicleAttributes.
	ErrVINPartialData = errors.New("vin decoded with partial data")
)

// IVehicleDataProvider abstracts the external vehicle catalogue.
type IVehicleDataProvider interface {
	Makes(ctx context.Context, year int) ([]string, error)
	Models(ctx context.Context, year int, vehicleMake string) ([]string, error)
	DecodeVIN(ctx context.Context, vin string) (entities.VehicleAttributes, error)
}
