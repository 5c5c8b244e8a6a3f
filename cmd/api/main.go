package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/swaggo/swag"

	"github.com/jhoicas/retail-dashboard-api/docs"
	"github.com/jhoicas/retail-dashboard-api/internal/application/ingest"
	"github.com/jhoicas/retail-dashboard-api/internal/application/simulation"
	"github.com/jhoicas/retail-dashboard-api/internal/application/usecase"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/retail-dashboard-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/retail-dashboard-api/internal/infrastructure/pdf"
	"github.com/jhoicas/retail-dashboard-api/internal/infrastructure/random"
	"github.com/jhoicas/retail-dashboard-api/internal/infrastructure/realtime"
	"github.com/jhoicas/retail-dashboard-api/internal/infrastructure/scheduler"
	httpRouter "github.com/jhoicas/retail-dashboard-api/internal/interfaces/http"
	"github.com/jhoicas/retail-dashboard-api/pkg/config"
	"github.com/jhoicas/retail-dashboard-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Upload.Dir).Msg("crear directorio de carga")
	}

	now := time.Now
	rnd := random.Global{}

	var initial []entity.SalesRecord
	if cfg.App.SeedSampleData {
		initial = memory.SampleSalesRecords(now())
	}
	salesStore := memory.NewSalesStore(initial)
	productStore := memory.NewProductStore()
	businessStore := memory.NewBusinessStore()
	settingsStore := memory.NewSettingsStore()

	hub := realtime.NewHub(cfg.Realtime.Buffer, log.Named("realtime"))
	snapshots := usecase.NewSnapshotService(salesStore, hub, now, log.Named("snapshots"))

	parser := ingest.NewParser(rnd, now)
	uploadUC := usecase.NewUploadUseCase(parser, snapshots, log.Named("upload"))
	productUC := usecase.NewProductUseCase(productStore, snapshots, now)
	businessUC := usecase.NewBusinessUseCase(businessStore, hub, now)
	settingsUC := usecase.NewSettingsUseCase(settingsStore, hub, now)
	insightsUC := usecase.NewInsightsUseCase(snapshots, rnd, now)

	// PDF: reporte imprimible de inventario
	reportUC := usecase.NewReportUseCase(snapshots, settingsStore, infrapdf.NewMarotoPDFGenerator(), now)

	// Simulación: un cambio de stock por tick, publicado a todos los clientes
	var cron *scheduler.CronScheduler
	if cfg.Simulation.Enabled {
		sim := simulation.NewSimulator(simulation.NewRandomWalk(rnd), snapshots, log.Named("simulation"))
		cron, err = scheduler.NewCronScheduler(cfg.Simulation.TimeZone, log.Named("scheduler"))
		if err != nil {
			log.Fatal().Err(err).Msg("crear scheduler")
		}
		if err := cron.Add(cfg.Simulation.Schedule, "simulacion-inventario", func(ctx context.Context) error {
			_, err := sim.Tick(ctx)
			return err
		}); err != nil {
			log.Fatal().Err(err).Msg("programar simulación")
		}
		cron.Start()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.Upload.MaxBytes(),
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowMethods: "GET,POST,PUT,OPTIONS",
	}))

	// Swagger UI en local: http://localhost:<port>/docs (requiere swag init)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Retail Dashboard API",
		}))
	}
	app.Get("/api/docs/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": cfg.App.Name,
			"clients": hub.Count(),
			"records": salesStore.Len(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Snapshots:  snapshots,
		InsightsUC: insightsUC,
		UploadUC:   uploadUC,
		ProductUC:  productUC,
		BusinessUC: businessUC,
		SettingsUC: settingsUC,
		ReportUC:   reportUC,
		Hub:        hub,
		UploadDir:  cfg.Upload.Dir,
		Log:        log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if cron != nil {
		if err := cron.Stop(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("detener scheduler")
		}
	}
	hub.Close()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
