package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"instant_offer/internal/domain/entities"
	"instant_offer/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IVehicleUseCase fronts the vehicle catalogue used during intake.
type IVehicleUseCase interface {
	Makes(ctx context.Context, year int) ([]string, error)
	Models(ctx context.Context, year int, vehicleMake string) ([]string, error)
	DecodeVIN(ctx context.Context, vin string) (entities.VehicleAttributes, error)
}

type VehicleUseCase struct {
	provider interfaces.IVehicleDataProvider
	logger   *zap.Logger
	opts     options
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(provider interfaces.IVehicleDataProvider, logger *zap.Logger, opts ...Option) *VehicleUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VehicleUseCase{provider: provider, logger: logger, opts: buildOptions(opts)}
}

func (u *VehicleUseCase) Makes(ctx context.Context, year int) ([]string, error) {
	if err := u.checkYear(year); err != nil {
		return nil, err
	}
	makes, err := u.provider.Makes(ctx, year)
	if err != nil {
		u.logger.Warn("[vehicle][makes] lookup failed", zap.Int("year", year), zap.Error(err))
		return nil, err
	}
	return sortedUnique(makes), nil
}

func (u *VehicleUseCase) Models(ctx context.Context, year int, vehicleMake string) ([]string, error) {
	if err := u.checkYear(year); err != nil {
		return nil, err
	}
	vehicleMake = strings.TrimSpace(vehicleMake)
	if vehicleMake == "" {
		return nil, ErrInvalidVehicle
	}
	models, err := u.provider.Models(ctx, year, vehicleMake)
	if err != nil {
		u.logger.Warn("[vehicle][models] lookup failed", zap.Int("year", year), zap.String("make", vehicleMake), zap.Error(err))
		return nil, err
	}
	return sortedUnique(models), nil
}

// DecodeVIN validates the VIN locally before asking the provider. On
// ErrVINPartialData the partial attributes are returned with the error.
func (u *VehicleUseCase) DecodeVIN(ctx context.Context, vin string) (entities.VehicleAttributes, error) {
	vin = strings.ToUpper(strings.TrimSpace(vin))
	if !entities.ValidVIN(vin) {
		return entities.VehicleAttributes{}, ErrInvalidVIN
	}
	attrs, err := u.provider.DecodeVIN(ctx, vin)
	switch {
	case err == nil:
	case errors.Is(err, interfaces.ErrVINPartialData):
		attrs = attrs.Normalize()
		attrs.VIN = vin
		return attrs, err
	default:
		u.logger.Warn("[vehicle][decode] vin decode failed", zap.String("vin", vin), zap.Error(err))
		return entities.VehicleAttributes{}, err
	}
	attrs = attrs.Normalize()
	attrs.VIN = vin
	return attrs, nil
}

func (u *VehicleUseCase) checkYear(year int) error {
	if year < 1981 || year > u.opts.clock().Year()+1 {
		return ErrInvalidVehicle
	}
	return nil
}

func sortedUnique(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
