package sessionrepo_test

import (
	"context"
	"testing"
	"time"

	"console/internal/adapters/out/postgres/sessionrepo"
	"console/internal/core/ports"
	"console/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type SessionRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *sessionrepo.GormSessionRepository
}

func (suite *SessionRepositoryTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&sessionrepo.SessionDTO{})
	suite.Require().NoError(err)

	suite.repo = sessionrepo.NewGormSessionRepository(db)
}

func (suite *SessionRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *SessionRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE sessions").Error
	suite.Require().NoError(err)
}

func (suite *SessionRepositoryTestSuite) testSession(token string, expiresAt time.Time) ports.Session {
	return ports.Session{
		Token:     token,
		Role:      "dealer_manager",
		UserName:  "Nguyen Van A",
		StartedAt: time.Now().UTC().Truncate(time.Second),
		ExpiresAt: expiresAt,
	}
}

func (suite *SessionRepositoryTestSuite) TestSaveAndCurrent() {
	ctx := context.Background()
	session := suite.testSession("tok-1", time.Now().UTC().Add(time.Hour).Truncate(time.Second))

	err := suite.repo.Save(ctx, session)
	suite.Require().NoError(err)

	current, err := suite.repo.Current(ctx)
	suite.Require().NoError(err)
	suite.Equal(session.Token, current.Token)
	suite.Equal(session.Role, current.Role)
	suite.Equal(session.UserName, current.UserName)
}

func (suite *SessionRepositoryTestSuite) TestSave_ReplacesPreviousSession() {
	ctx := context.Background()
	expiry := time.Now().UTC().Add(time.Hour)

	err := suite.repo.Save(ctx, suite.testSession("tok-old", expiry))
	suite.Require().NoError(err)
	err = suite.repo.Save(ctx, suite.testSession("tok-new", expiry))
	suite.Require().NoError(err)

	current, err := suite.repo.Current(ctx)
	suite.Require().NoError(err)
	suite.Equal("tok-new", current.Token)

	var count int64
	err = suite.db.Model(&sessionrepo.SessionDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *SessionRepositoryTestSuite) TestSave_EmptyToken() {
	err := suite.repo.Save(context.Background(), ports.Session{})

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *SessionRepositoryTestSuite) TestCurrent_NoSession() {
	_, err := suite.repo.Current(context.Background())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *SessionRepositoryTestSuite) TestClear() {
	ctx := context.Background()
	err := suite.repo.Save(ctx, suite.testSession("tok-1", time.Now().UTC().Add(time.Hour)))
	suite.Require().NoError(err)

	err = suite.repo.Clear(ctx)
	suite.Require().NoError(err)

	_, err = suite.repo.Current(ctx)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *SessionRepositoryTestSuite) TestClear_EmptyStoreIsNoOp() {
	err := suite.repo.Clear(context.Background())
	suite.NoError(err)
}

func (suite *SessionRepositoryTestSuite) TestPurgeExpired() {
	ctx := context.Background()
	now := time.Now().UTC()

	err := suite.repo.Save(ctx, suite.testSession("tok-expired", now.Add(-time.Minute)))
	suite.Require().NoError(err)

	purged, err := suite.repo.PurgeExpired(ctx, now)
	suite.Require().NoError(err)
	suite.Equal(int64(1), purged)

	_, err = suite.repo.Current(ctx)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *SessionRepositoryTestSuite) TestPurgeExpired_KeepsLiveSession() {
	ctx := context.Background()
	now := time.Now().UTC()

	err := suite.repo.Save(ctx, suite.testSession("tok-live", now.Add(time.Hour)))
	suite.Require().NoError(err)

	purged, err := suite.repo.PurgeExpired(ctx, now)
	suite.Require().NoError(err)
	suite.Zero(purged)

	current, err := suite.repo.Current(ctx)
	suite.Require().NoError(err)
	suite.Equal("tok-live", current.Token)
}

func TestSessionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SessionRepositoryTestSuite))
}
