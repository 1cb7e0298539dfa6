package reciperepo_test

import (
	"context"
	"testing"
	"time"

	"kitchen/internal/adapters/out/postgres/reciperepo"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/recipe"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// RecipeRepositoryIntegrationTestSuite provides integration tests for RecipeRepository
// using PostgreSQL containers to verify database persistence behavior.
type RecipeRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *reciperepo.GormRecipeRepository
	tracker    *MockAggregateTracker
}

func (suite *RecipeRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&reciperepo.RecipeDTO{}))
}

func (suite *RecipeRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE recipes").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = reciperepo.NewGormRecipeRepository(suite.db, suite.tracker)
}

func (suite *RecipeRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RecipeRepositoryIntegrationTestSuite) TestAdd_ValidRecipe_Success() {
	ctx := context.Background()

	testRecipe := suite.createTestRecipe()

	suite.tracker.On("TrackAggregate", testRecipe.ID(), testRecipe).Once()

	err := suite.repository.Add(ctx, testRecipe)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&reciperepo.RecipeDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RecipeRepositoryIntegrationTestSuite) TestAdd_NotConstructedRecipe_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, &recipe.Recipe{})
	suite.Require().Error(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&reciperepo.RecipeDTO{}).Count(&count).Error)
	suite.Equal(int64(0), count)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *RecipeRepositoryIntegrationTestSuite) TestGet_ExistingRecipe_RoundTrip() {
	ctx := context.Background()

	testRecipe := suite.createTestRecipe()
	suite.tracker.On("TrackAggregate", testRecipe.ID(), testRecipe).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testRecipe))

	restored, err := suite.repository.Get(ctx, testRecipe.ID())
	suite.Require().NoError(err)

	suite.True(restored.ID().IsEqual(testRecipe.ID()))
	suite.Equal(testRecipe.Name(), restored.Name())
	suite.Equal(testRecipe.PrepTime(), restored.PrepTime())
	suite.Equal(testRecipe.CookTime(), restored.CookTime())
	suite.Equal(testRecipe.TotalTime(), restored.TotalTime())
}

func (suite *RecipeRepositoryIntegrationTestSuite) TestGet_NonExistentRecipe_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RecipeRepositoryIntegrationTestSuite) createTestRecipe() *recipe.Recipe {
	testRecipe, err := recipe.NewRecipe(kernel.NewUUID(), "Mushroom Risotto", 15*time.Minute, 25*time.Minute)
	suite.Require().NoError(err)

	return testRecipe
}

func TestRecipeRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeRepositoryIntegrationTestSuite))
}
