package main

import (
	"context"
	"log/slog"
	"os"

	"vexor/config"
	"vexor/internal/delivery"
	"vexor/internal/delivery/http"
	"vexor/internal/delivery/http/middleware"
	"vexor/internal/delivery/http/router/handler"
	"vexor/internal/infra/auth"
	logs "vexor/internal/infra/log"
	"vexor/internal/infra/payment"
	"vexor/internal/infra/persistence/postgres"
	"vexor/internal/infra/persistence/redis"
	"vexor/internal/infra/pubsub"
	"vexor/internal/usecase/impl"

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
		injectMiddleware(),
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
		postgres.New,
		redis.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewCouponRepository,
			postgres.NewAddressRepository,
			postgres.NewReviewRepository,
			postgres.NewWishlistRepository,
			postgres.NewTransactionManager,
			redis.NewCartStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			payment.NewRazorpayService,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartService,
			impl.NewPricingService,
			impl.NewOrderService,
			impl.NewCatalogService,
			impl.NewCouponService,
			impl.NewInvoiceService,
			impl.NewAddressService,
			impl.NewReviewService,
			impl.NewWishlistService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewCouponHandler,
			handler.NewAddressHandler,
			handler.NewReviewHandler,
			handler.NewWishlistHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
