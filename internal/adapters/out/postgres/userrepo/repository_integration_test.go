package userrepo_test

import (
	"context"
	"testing"
	"time"

	"fabtrack/internal/adapters/out/postgres/userrepo"
	"fabtrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UserRepositoryIntegrationTestSuite provides integration tests for
// GormUserRepository using PostgreSQL containers.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// TranslateError maps the unique-index violation to gorm.ErrDuplicatedKey,
	// same as the production configuration.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users RESTART IDENTITY").Error)
	suite.repository = userrepo.NewGormUserRepository(suite.db)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestCreate_AssignsIdentity() {
	user := &userrepo.UserDTO{Email: "ops@acme.test", Name: "Ops", PasswordHash: "hash"}

	suite.Require().NoError(suite.repository.Create(context.Background(), user))

	suite.Positive(user.ID)
}

func (suite *UserRepositoryIntegrationTestSuite) TestCreate_DuplicateEmail_ReturnsConflict() {
	ctx := context.Background()
	first := &userrepo.UserDTO{Email: "ops@acme.test", Name: "Ops", PasswordHash: "hash"}
	suite.Require().NoError(suite.repository.Create(ctx, first))

	second := &userrepo.UserDTO{Email: "ops@acme.test", Name: "Other", PasswordHash: "hash2"}
	err := suite.repository.Create(ctx, second)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrStateConflict)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByEmail_RoundTrips() {
	ctx := context.Background()
	user := &userrepo.UserDTO{Email: "ops@acme.test", Name: "Ops", PasswordHash: "hash"}
	suite.Require().NoError(suite.repository.Create(ctx, user))

	found, err := suite.repository.GetByEmail(ctx, "ops@acme.test")

	suite.Require().NoError(err)
	suite.Equal(user.ID, found.ID)
	suite.Equal("Ops", found.Name)
	suite.Equal("hash", found.PasswordHash)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByEmail_Unknown_ReturnsNotFound() {
	_, err := suite.repository.GetByEmail(context.Background(), "nobody@acme.test")

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByID_Unknown_ReturnsNotFound() {
	_, err := suite.repository.GetByID(context.Background(), 99999)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
