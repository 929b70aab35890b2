package main

import (
	"Patchwork/config"
	"Patchwork/pkg/database"
	"Patchwork/pkg/log"
	"Patchwork/pkg/server"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	// 本地开发时从 .env 读取密钥, 线上直接使用环境变量
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.L.Warn("load .env", zap.Error(err))
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	cfg := config.New(fmt.Sprintf("configs/config.%s.yaml", env))
	log.SetDebug(cfg.Debug())

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "patchwork daily collaborative art backend",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					app, err := InitServer(ctx.Context, cfg)
					if err != nil {
						return err
					}
					return server.Run(ctx, app)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update the Image, Day and User tables",
				Action: func(ctx *cli.Context) error {
					db, err := database.NewDB(cfg)
					if err != nil {
						return err
					}
					if err := database.Migrate(db); err != nil {
						return err
					}
					log.L.Info("migrate success")
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("api-server exited", zap.Error(err))
	}
}
