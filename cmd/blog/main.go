package main

import (
	"context"
	"log/slog"

	"blog/config"
	"blog/internal/delivery"
	"blog/internal/delivery/http"
	"blog/internal/delivery/http/mapper"
	"blog/internal/delivery/http/router/handler"
	"blog/internal/infra/auth"
	logs "blog/internal/infra/log"
	"blog/internal/infra/persistence/postgres"
	"blog/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMapper(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		postgres.NewUserRepository,
		postgres.NewPostRepository,
		postgres.NewTransactionManager,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		auth.NewBcryptHasher,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewUserService,
		impl.NewPostService,
	)
}

func injectMapper() fx.Option {
	return fx.Provide(
		mapper.NewUserMapper,
		mapper.NewPostMapper,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewUserHandler,
		handler.NewPostHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			http.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

func startServer(params startServerParams) {
	for _, d := range params.Deliveries {
		serving := d
		params.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				go func() {
					if err := serving.Serve(context.Background()); err != nil {
						params.Logger.Error("Delivery stopped", slog.Any("error", err))
					}
				}()

				return nil
			},
		})
	}
}
