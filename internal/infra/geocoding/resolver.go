package geocoding

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"doorstep/config"
	deliverycontext "doorstep/internal/delivery/context"
	"doorstep/internal/domain/constants"
	"doorstep/internal/domain/entity"
	"doorstep/internal/domain/service"

	"go.uber.org/fx"
)

// searcher is the primary lookup.
type searcher interface {
	Search(ctx context.Context, address string) (*entity.LatLng, error)
}

type resolver struct {
	primary  searcher
	fallback *FallbackTable
	logger   *slog.Logger
}

// ResolverParams holds dependencies for the Geocoder, injected by Fx
type ResolverParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewResolver creates the Geocoder from configuration. With geocoding
// disabled only the fallback table answers.
func NewResolver(params ResolverParams) service.Geocoder {
	cfg := params.Config.Geocoding
	table := NewFallbackTable(cfg.Fallback, cfg.Default)

	if !cfg.Enabled {
		params.Logger.Info("Geocoding disabled, using fallback table only")

		return newResolver(nil, table, params.Logger)
	}

	params.Logger.Info("Geocoding enabled",
		slog.String("endpoint", cfg.Endpoint),
		slog.Duration("timeout", cfg.Timeout),
	)

	return newResolver(NewNominatimClient(cfg.Endpoint, cfg.UserAgent, cfg.Timeout), table, params.Logger)
}

func newResolver(primary searcher, fallback *FallbackTable, logger *slog.Logger) *resolver {
	return &resolver{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Resolve tries the primary lookup and falls back to the table on any failure.
func (r *resolver) Resolve(ctx context.Context, address string) service.GeocodeResult {
	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)

	if r.primary != nil && strings.TrimSpace(address) != "" {
		start := time.Now()
		position, err := r.primary.Search(ctx, address)
		if err == nil {
			logger.Debug("Geocoded address",
				slog.String("address", address),
				slog.Duration("latency", time.Since(start)),
			)

			return service.GeocodeResult{Position: position, Source: constants.GeocodeSourceNominatim}
		}

		logger.Warn("Geocoding failed, using fallback",
			slog.String("address", address),
			slog.Any("error", err),
		)
	}

	position := r.fallback.Lookup(address)
	if position == nil {
		return service.GeocodeResult{Source: constants.GeocodeSourceNone}
	}

	return service.GeocodeResult{Position: position, Source: constants.GeocodeSourceFallback}
}
