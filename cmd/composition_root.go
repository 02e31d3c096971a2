package cmd

import (
	"log/slog"
	"os"

	"console/internal/adapters/in/http"
	"console/internal/adapters/out/kafka"
	"console/internal/adapters/out/notify"
	"console/internal/adapters/out/orderservice"
	"console/internal/adapters/out/postgres/actionlogrepo"
	"console/internal/adapters/out/postgres/sessionrepo"
	"console/internal/adapters/out/redis/snapshotrepo"
	"console/internal/core/application/usecases/commands"
	"console/internal/core/application/usecases/queries"
	"console/internal/core/ports"
	"console/internal/jobs"
	"console/internal/pkg/inflight"
	"console/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs Config
	gormDB  *gorm.DB
	logger  *slog.Logger

	redisClient *goredis.Client
	publisher   *kafka.OrderChangedPublisher

	sessions    ports.SessionStore
	environment commands.Environment
	metrics     *metrics.WorkflowMetrics
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	redisClient := goredis.NewClient(&goredis.Options{Addr: configs.RedisAddr})
	publisher := kafka.NewOrderChangedPublisher([]string{configs.KafkaHost}, configs.KafkaOrderChangedTopic)

	sessions := sessionrepo.NewGormSessionRepository(gormDB)
	workflowMetrics := metrics.NewWorkflowMetrics(prometheus.DefaultRegisterer)

	gateway := orderservice.NewClient(configs.OrderServiceBaseURL, nil, sessions, workflowMetrics, logger)

	environment := commands.Environment{
		Gateway:   gateway,
		Snapshots: snapshotrepo.NewRedisSnapshotStore(redisClient, snapshotrepo.DefaultTTL),
		Events:    publisher,
		Notifier:  notify.NewSlogSink(logger),
		Actions:   actionlogrepo.NewGormActionLogRepository(gormDB),
		Locks:     inflight.NewRegistry(),
		Logger:    logger,
	}

	return CompositionRoot{
		configs:     configs,
		gormDB:      gormDB,
		logger:      logger,
		redisClient: redisClient,
		publisher:   publisher,
		sessions:    sessions,
		environment: environment,
		metrics:     workflowMetrics,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateSubmitPaymentCommandHandler() commands.SubmitPaymentCommandHandler {
	return commands.NewSubmitPaymentCommandHandler(c.environment)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.environment)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.environment)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.environment)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.environment.Gateway, c.environment.Snapshots, c.logger)
}

func (c *CompositionRoot) CreateGetOrderActionsQueryHandler() queries.GetOrderActionsQueryHandler {
	return queries.NewGetOrderActionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreateSubmitPaymentCommandHandler(),
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateUpdateDeliveryStatusCommandHandler(),
		c.CreateAdvanceOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrderActionsQueryHandler(),
		c.sessions,
		c.configs.SessionTTL,
		c.metrics,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.sessions, c.logger)
}

// Close releases the outbound connections. Call on shutdown.
func (c *CompositionRoot) Close() error {
	if err := c.publisher.Close(); err != nil {
		return err
	}
	return c.redisClient.Close()
}
