package main

import (
	"context"
	"log/slog"
	"os"

	"doorstep/config"
	"doorstep/internal/delivery"
	"doorstep/internal/delivery/api"
	"doorstep/internal/delivery/api/router/handler"
	"doorstep/internal/domain/service"
	"doorstep/internal/infra/geo"
	"doorstep/internal/infra/geocoding"
	logs "doorstep/internal/infra/log"
	"doorstep/internal/infra/persistence/memory"
	"doorstep/internal/infra/pubsub"
	"doorstep/internal/infra/qrcode"
	"doorstep/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		memory.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewAddressRepository,
			memory.NewSessionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			impl.NewWizardPolicy,
			geocoding.NewResolver,
			geo.NewExporter,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service from the defaulted config.
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAddressService,
			impl.NewWizardService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAddressHandler,
			handler.NewSessionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
