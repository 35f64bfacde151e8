package queries_test

import (
	"context"
	"testing"
	"time"

	"fleet/internal/adapters/out/cache"
	"fleet/internal/adapters/out/postgres/vehiclerepo"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetFreeVehiclesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	cache     *cache.LRUCache
	handler   queries.GetFreeVehiclesQueryHandler
}

func (suite *GetFreeVehiclesQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&vehiclerepo.VehicleDTO{}))
}

func (suite *GetFreeVehiclesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetFreeVehiclesQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE vehicles").Error)

	suite.cache = cache.NewLRUCache(time.Minute)
	suite.handler = queries.NewGetFreeVehiclesQueryHandler(suite.db, suite.cache)
}

func (suite *GetFreeVehiclesQueryHandlerTestSuite) insertVehicle(plate string, active bool, withDriver bool) {
	dto := vehiclerepo.VehicleDTO{
		ID:       kernel.NewUUID().Bytes(),
		Plate:    plate,
		Capacity: 1000,
		Active:   active,
	}
	if withDriver {
		driverID := kernel.NewUUID().Bytes()
		dto.DriverID = &driverID
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func (suite *GetFreeVehiclesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetFreeVehiclesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetFreeVehiclesQueryHandlerTestSuite) TestHandle_ReturnsOnlyFreeVehiclesOrderedByPlate() {
	suite.insertVehicle("C 300", true, false)
	suite.insertVehicle("A 100", true, false)
	suite.insertVehicle("B 200", true, true)   // manned
	suite.insertVehicle("D 400", false, false) // inactive

	result, err := suite.handler.Handle(context.Background(), queries.NewGetFreeVehiclesQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("A 100", result[0].Plate)
	suite.Equal("C 300", result[1].Plate)
}

func (suite *GetFreeVehiclesQueryHandlerTestSuite) TestHandle_SecondCallServedFromCache() {
	suite.insertVehicle("A 100", true, false)

	first, err := suite.handler.Handle(context.Background(), queries.NewGetFreeVehiclesQuery())
	suite.Require().NoError(err)
	suite.Require().Len(first, 1)

	// A direct DB write does not invalidate the cache; the stale view is
	// served until the entry expires or an assignment drops it.
	suite.insertVehicle("B 200", true, false)

	second, err := suite.handler.Handle(context.Background(), queries.NewGetFreeVehiclesQuery())
	suite.Require().NoError(err)
	suite.Len(second, 1)
}

func (suite *GetFreeVehiclesQueryHandlerTestSuite) TestHandle_InvalidationForcesReload() {
	suite.insertVehicle("A 100", true, false)

	first, err := suite.handler.Handle(context.Background(), queries.NewGetFreeVehiclesQuery())
	suite.Require().NoError(err)
	suite.Require().Len(first, 1)

	suite.insertVehicle("B 200", true, false)
	suite.cache.Invalidate(ports.FreeVehiclesCacheKey)

	second, err := suite.handler.Handle(context.Background(), queries.NewGetFreeVehiclesQuery())
	suite.Require().NoError(err)
	suite.Len(second, 2)
}

func (suite *GetFreeVehiclesQueryHandlerTestSuite) TestHandle_InvalidQuery_Fails() {
	var query queries.GetFreeVehiclesQuery

	_, err := suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, queries.ErrGetFreeVehiclesQueryIsNotConstructed)
}

func TestGetFreeVehiclesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetFreeVehiclesQueryHandlerTestSuite))
}
