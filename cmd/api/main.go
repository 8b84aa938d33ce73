package main

import (
	_ "measure_service/docs"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"measure_service/internal/adapter/http/routes"
	"measure_service/internal/config"
)

// @title           Measure Service API
// @version         1.0
// @description     Meter reading intake, confirmation and listing with a monthly duplicate guard.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			newLogger,
			newMeasureRepository,
			newAnalysisGateway,
			newImageResolver,
			newEventPublisher,
			newMeasureUseCase,
			newMeasureHandler,
			routes.NewRouter,
			newHTTPServer,
		),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Invoke(startHTTPServer),
	).Run()
}
