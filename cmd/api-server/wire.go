//go:build wireinject
// +build wireinject

package main

import (
	"Patchwork/config"
	"Patchwork/dao"
	"Patchwork/handler"
	"Patchwork/pkg/client"
	"Patchwork/pkg/database"
	"Patchwork/pkg/imagegen"
	"Patchwork/pkg/server"
	"Patchwork/pkg/storage"
	"Patchwork/service"
	"context"

	"github.com/google/wire"
)

func InitServer(ctx context.Context, cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		config.ProvideStorageConfig,
		config.ProvideOpenAIConfig,
		database.NewDB,
		storage.NewObjectStore,
		imagegen.NewOpenAIEditor,
		wire.Bind(new(imagegen.Editor), new(*imagegen.OpenAIEditor)),
		client.NewDownloader,
		server.NewGinEngine,

		dao.ProviderSet,
		service.ProviderSet,
		handler.ProviderSet,

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil, nil
}
