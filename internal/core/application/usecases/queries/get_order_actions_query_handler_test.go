package queries_test

import (
	"context"
	"testing"
	"time"

	"console/internal/adapters/out/postgres/actionlogrepo"
	"console/internal/core/application/usecases/queries"
	"console/internal/core/domain/model/kernel"
	"console/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderActionsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderActionsQueryHandler
	repo      *actionlogrepo.GormActionLogRepository
}

func (suite *GetOrderActionsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&actionlogrepo.ActionEntryDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderActionsQueryHandler(db)
	suite.repo = actionlogrepo.NewGormActionLogRepository(db)
}

func (suite *GetOrderActionsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderActionsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE action_log").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderActionsQueryHandlerTestSuite) mustOrderID(id int64) kernel.OrderID {
	orderID, err := kernel.NewOrderID(id)
	suite.Require().NoError(err)
	return orderID
}

func (suite *GetOrderActionsQueryHandlerTestSuite) appendEntry(orderID int64, action string, at time.Time) {
	err := suite.repo.Append(context.Background(), ports.ActionEntry{
		OrderID:    orderID,
		Action:     action,
		Outcome:    "success",
		OccurredAt: at,
	})
	suite.Require().NoError(err)
}

func (suite *GetOrderActionsQueryHandlerTestSuite) TestHandle_EmptyLog_ReturnsEmptySlice() {
	query, err := queries.NewGetOrderActionsQuery(suite.mustOrderID(42), 0)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrderActionsQueryHandlerTestSuite) TestHandle_ReturnsNewestFirst() {
	base := time.Now().UTC().Truncate(time.Second)
	suite.appendEntry(42, "payment", base)
	suite.appendEntry(42, "delivery_create", base.Add(time.Minute))
	suite.appendEntry(42, "advance", base.Add(2*time.Minute))

	query, err := queries.NewGetOrderActionsQuery(suite.mustOrderID(42), 0)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("advance", result[0].Action)
	suite.Equal("delivery_create", result[1].Action)
	suite.Equal("payment", result[2].Action)
}

func (suite *GetOrderActionsQueryHandlerTestSuite) TestHandle_FiltersByOrder() {
	now := time.Now().UTC().Truncate(time.Second)
	suite.appendEntry(42, "payment", now)
	suite.appendEntry(43, "payment", now)
	suite.appendEntry(42, "advance", now.Add(time.Second))

	query, err := queries.NewGetOrderActionsQuery(suite.mustOrderID(42), 0)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 2)
}

func (suite *GetOrderActionsQueryHandlerTestSuite) TestHandle_RespectsLimit() {
	base := time.Now().UTC().Truncate(time.Second)
	for i := range 5 {
		suite.appendEntry(42, "advance", base.Add(time.Duration(i)*time.Second))
	}

	query, err := queries.NewGetOrderActionsQuery(suite.mustOrderID(42), 2)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	// The two most recent survive the cut.
	suite.True(result[0].OccurredAt.After(result[1].OccurredAt) ||
		result[0].OccurredAt.Equal(result[1].OccurredAt))
}

func (suite *GetOrderActionsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetOrderActionsQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrGetOrderActionsQueryIsNotConstructed)
}

func TestGetOrderActionsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderActionsQueryHandlerTestSuite))
}
