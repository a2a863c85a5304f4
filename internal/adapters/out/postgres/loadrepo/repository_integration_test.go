package loadrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/loadrepo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

type LoadRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	tracker   *MockAggregateTracker
	repo      *loadrepo.GormLoadRepository
}

func (suite *LoadRepositoryIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&loadrepo.LoadDTO{}, &loadrepo.HistoryDTO{})
	suite.Require().NoError(err)
}

func (suite *LoadRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *LoadRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE loads, load_history").Error
	suite.Require().NoError(err)

	suite.tracker = &MockAggregateTracker{}
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repo = loadrepo.NewGormLoadRepository(suite.db, suite.tracker)
}

func (suite *LoadRepositoryIntegrationTestSuite) newPostedLoad(businessID kernel.UUID, weight float64) *load.Load {
	origin, err := kernel.NewGeoPoint(52.5200, 13.4050)
	suite.Require().NoError(err)
	destination, err := kernel.NewGeoPoint(53.5511, 9.9937)
	suite.Require().NoError(err)

	l, err := load.NewLoad(kernel.NewUUID(), businessID, load.Details{
		Origin:              "Berlin",
		Destination:         "Hamburg",
		OriginPoint:         &origin,
		DestinationPoint:    &destination,
		CargoType:           "pallets",
		Weight:              weight,
		Price:               850,
		VehicleTypeRequired: "box_truck",
		Mode:                load.ModePartial,
		PickupDate:          time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	}, time.Now())
	suite.Require().NoError(err)
	return l
}

func (suite *LoadRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	businessID := kernel.NewUUID()
	original := suite.newPostedLoad(businessID, 1200)

	err := suite.repo.Add(ctx, original)
	suite.Require().NoError(err)

	restored, err := suite.repo.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(restored.ID().IsEqual(original.ID()))
	suite.True(restored.CreatedBy().IsEqual(businessID))
	suite.Equal(load.StatusPosted, restored.Status())
	suite.Equal("Berlin", restored.Details().Origin)
	suite.Require().NotNil(restored.Details().OriginPoint)
	suite.InDelta(52.5200, restored.Details().OriginPoint.Lat(), 1e-6)
	suite.InDelta(1200, restored.Weight(), 1e-9)
	suite.Equal(load.ModePartial, restored.Mode())

	history := restored.History()
	suite.Require().Len(history, 1)
	suite.Equal(load.StatusPosted, history[0].Status())
	suite.True(history[0].ActorID().IsEqual(businessID))
}

func (suite *LoadRepositoryIntegrationTestSuite) TestGet_MissingLoad_ReturnsNotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	var notFound *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFound)
}

func (suite *LoadRepositoryIntegrationTestSuite) TestTransition_PersistsStatusAndHistory() {
	ctx := context.Background()
	haulerID := kernel.NewUUID()
	l := suite.newPostedLoad(kernel.NewUUID(), 1200)
	suite.Require().NoError(suite.repo.Add(ctx, l))

	suite.Require().NoError(l.Claim(haulerID, time.Now()))
	err := suite.repo.Transition(ctx, l, load.StatusPosted)
	suite.Require().NoError(err)

	restored, err := suite.repo.Get(ctx, l.ID())
	suite.Require().NoError(err)
	suite.Equal(load.StatusMatched, restored.Status())
	suite.Require().NotNil(restored.AssignedTo())
	suite.True(restored.AssignedTo().IsEqual(haulerID))

	history := restored.History()
	suite.Require().Len(history, 2)
	suite.Equal(load.StatusMatched, history[1].Status())
	suite.True(history[1].ActorID().IsEqual(haulerID))
}

func (suite *LoadRepositoryIntegrationTestSuite) TestTransition_StaleExpectedStatus_ReturnsConflict() {
	ctx := context.Background()
	l := suite.newPostedLoad(kernel.NewUUID(), 1200)
	suite.Require().NoError(suite.repo.Add(ctx, l))

	// Another actor wins the race first.
	winner, err := suite.repo.Get(ctx, l.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(winner.Claim(kernel.NewUUID(), time.Now()))
	suite.Require().NoError(suite.repo.Transition(ctx, winner, load.StatusPosted))

	// The loser still believes the load is posted.
	suite.Require().NoError(l.Claim(kernel.NewUUID(), time.Now()))
	err = suite.repo.Transition(ctx, l, load.StatusPosted)

	suite.Require().Error(err)
	var conflict *load.StatusConflictError
	suite.Require().ErrorAs(err, &conflict)
	suite.Equal(load.StatusPosted, conflict.Expected)
	suite.Equal(load.StatusMatched, conflict.Observed)
}

func (suite *LoadRepositoryIntegrationTestSuite) TestTransition_MissingLoad_ReturnsNotFound() {
	ctx := context.Background()
	l := suite.newPostedLoad(kernel.NewUUID(), 1200)
	suite.Require().NoError(l.Claim(kernel.NewUUID(), time.Now()))

	err := suite.repo.Transition(ctx, l, load.StatusPosted)

	suite.Require().Error(err)
	var notFound *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFound)
}

func (suite *LoadRepositoryIntegrationTestSuite) TestTransition_ConcurrentClaims_ExactlyOneWinner() {
	ctx := context.Background()
	l := suite.newPostedLoad(kernel.NewUUID(), 1200)
	suite.Require().NoError(suite.repo.Add(ctx, l))

	const claimers = 5
	var wg sync.WaitGroup
	results := make(chan error, claimers)

	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			view, err := suite.repo.Get(ctx, l.ID())
			if err != nil {
				results <- err
				return
			}
			if err = view.Claim(kernel.NewUUID(), time.Now()); err != nil {
				results <- err
				return
			}
			results <- suite.repo.Transition(ctx, view, load.StatusPosted)
		}()
	}

	wg.Wait()
	close(results)

	winners := 0
	for err := range results {
		if err == nil {
			winners++
		} else {
			var conflict *load.StatusConflictError
			suite.Require().ErrorAs(err, &conflict)
		}
	}
	suite.Equal(1, winners)
}

func (suite *LoadRepositoryIntegrationTestSuite) TestGetAllByCreator_NewestFirst() {
	ctx := context.Background()
	businessID := kernel.NewUUID()

	first := suite.newPostedLoad(businessID, 500)
	suite.Require().NoError(suite.repo.Add(ctx, first))
	time.Sleep(10 * time.Millisecond)
	second := suite.newPostedLoad(businessID, 700)
	suite.Require().NoError(suite.repo.Add(ctx, second))

	foreign := suite.newPostedLoad(kernel.NewUUID(), 900)
	suite.Require().NoError(suite.repo.Add(ctx, foreign))

	loads, err := suite.repo.GetAllByCreator(ctx, businessID)

	suite.Require().NoError(err)
	suite.Require().Len(loads, 2)
	suite.True(loads[0].ID().IsEqual(second.ID()))
	suite.True(loads[1].ID().IsEqual(first.ID()))
}

func (suite *LoadRepositoryIntegrationTestSuite) TestGetAllByAssignee_ReturnsClaimedLoads() {
	ctx := context.Background()
	haulerID := kernel.NewUUID()

	mine := suite.newPostedLoad(kernel.NewUUID(), 500)
	suite.Require().NoError(suite.repo.Add(ctx, mine))
	suite.Require().NoError(mine.Claim(haulerID, time.Now()))
	suite.Require().NoError(suite.repo.Transition(ctx, mine, load.StatusPosted))

	unclaimed := suite.newPostedLoad(kernel.NewUUID(), 700)
	suite.Require().NoError(suite.repo.Add(ctx, unclaimed))

	loads, err := suite.repo.GetAllByAssignee(ctx, haulerID)

	suite.Require().NoError(err)
	suite.Require().Len(loads, 1)
	suite.True(loads[0].ID().IsEqual(mine.ID()))
}

func (suite *LoadRepositoryIntegrationTestSuite) TestGetAllReserving_ReturnsOnlyCapacityHolders() {
	ctx := context.Background()
	haulerID := kernel.NewUUID()

	posted := suite.newPostedLoad(kernel.NewUUID(), 500)
	suite.Require().NoError(suite.repo.Add(ctx, posted))

	assigned := suite.newPostedLoad(kernel.NewUUID(), 700)
	suite.Require().NoError(suite.repo.Add(ctx, assigned))
	suite.Require().NoError(assigned.Claim(haulerID, time.Now()))
	suite.Require().NoError(suite.repo.Transition(ctx, assigned, load.StatusPosted))
	suite.Require().NoError(assigned.Assign(time.Now()))
	suite.Require().NoError(suite.repo.Transition(ctx, assigned, load.StatusMatched))

	loads, err := suite.repo.GetAllReserving(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(loads, 1)
	suite.True(loads[0].ID().IsEqual(assigned.ID()))
	suite.Equal(load.StatusAssigned, loads[0].Status())
}

func (suite *LoadRepositoryIntegrationTestSuite) TestFindAvailable_FiltersByCapacityTypeAndMode() {
	ctx := context.Background()

	fits := suite.newPostedLoad(kernel.NewUUID(), 1000)
	suite.Require().NoError(suite.repo.Add(ctx, fits))

	tooHeavy := suite.newPostedLoad(kernel.NewUUID(), 9000)
	suite.Require().NoError(suite.repo.Add(ctx, tooHeavy))

	claimed := suite.newPostedLoad(kernel.NewUUID(), 800)
	suite.Require().NoError(suite.repo.Add(ctx, claimed))
	suite.Require().NoError(claimed.Claim(kernel.NewUUID(), time.Now()))
	suite.Require().NoError(suite.repo.Transition(ctx, claimed, load.StatusPosted))

	loads, err := suite.repo.FindAvailable(ctx, ports.AvailableLoadsFilter{
		MaxWeight:   2000,
		VehicleType: "box_truck",
		RadiusKm:    100,
		Limit:       20,
	})

	suite.Require().NoError(err)
	suite.Require().Len(loads, 1)
	suite.True(loads[0].ID().IsEqual(fits.ID()))
}

func (suite *LoadRepositoryIntegrationTestSuite) TestFindAvailable_RestrictsToPartialMode() {
	ctx := context.Background()

	partial := suite.newPostedLoad(kernel.NewUUID(), 500)
	suite.Require().NoError(suite.repo.Add(ctx, partial))

	origin, err := kernel.NewGeoPoint(52.5200, 13.4050)
	suite.Require().NoError(err)
	full, err := load.NewLoad(kernel.NewUUID(), kernel.NewUUID(), load.Details{
		Origin:              "Berlin",
		Destination:         "Munich",
		OriginPoint:         &origin,
		CargoType:           "machinery",
		Weight:              600,
		Price:               1400,
		VehicleTypeRequired: "box_truck",
		Mode:                load.ModeFull,
		PickupDate:          time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
	}, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, full))

	loads, err := suite.repo.FindAvailable(ctx, ports.AvailableLoadsFilter{
		MaxWeight:   2000,
		VehicleType: "box_truck",
		PartialOnly: true,
		RadiusKm:    100,
		Limit:       20,
	})

	suite.Require().NoError(err)
	suite.Require().Len(loads, 1)
	suite.True(loads[0].ID().IsEqual(partial.ID()))
}

func (suite *LoadRepositoryIntegrationTestSuite) TestFindAvailable_AppliesRadiusAroundOrigin() {
	ctx := context.Background()

	near := suite.newPostedLoad(kernel.NewUUID(), 500) // Berlin
	suite.Require().NoError(suite.repo.Add(ctx, near))

	farOrigin, err := kernel.NewGeoPoint(48.1351, 11.5820) // Munich
	suite.Require().NoError(err)
	far, err := load.NewLoad(kernel.NewUUID(), kernel.NewUUID(), load.Details{
		Origin:              "Munich",
		Destination:         "Hamburg",
		OriginPoint:         &farOrigin,
		CargoType:           "pallets",
		Weight:              500,
		Price:               900,
		VehicleTypeRequired: "box_truck",
		Mode:                load.ModePartial,
		PickupDate:          time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
	}, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, far))

	berlin, err := kernel.NewGeoPoint(52.5200, 13.4050)
	suite.Require().NoError(err)

	loads, err := suite.repo.FindAvailable(ctx, ports.AvailableLoadsFilter{
		MaxWeight:   2000,
		VehicleType: "box_truck",
		Origin:      &berlin,
		RadiusKm:    100,
		Limit:       20,
	})

	suite.Require().NoError(err)
	suite.Require().Len(loads, 1)
	suite.True(loads[0].ID().IsEqual(near.ID()))
}

func (suite *LoadRepositoryIntegrationTestSuite) TestFindAvailable_AppliesLimitNewestFirst() {
	ctx := context.Background()

	var ids []kernel.UUID
	for i := 0; i < 3; i++ {
		l := suite.newPostedLoad(kernel.NewUUID(), 500)
		suite.Require().NoError(suite.repo.Add(ctx, l))
		ids = append(ids, l.ID())
		time.Sleep(10 * time.Millisecond)
	}

	loads, err := suite.repo.FindAvailable(ctx, ports.AvailableLoadsFilter{
		MaxWeight:   2000,
		VehicleType: "box_truck",
		RadiusKm:    100,
		Limit:       2,
	})

	suite.Require().NoError(err)
	suite.Require().Len(loads, 2)
	suite.True(loads[0].ID().IsEqual(ids[2]))
	suite.True(loads[1].ID().IsEqual(ids[1]))
}

func (suite *LoadRepositoryIntegrationTestSuite) TestFindAvailable_AppliesLimitWithinRadius() {
	ctx := context.Background()

	var ids []kernel.UUID
	for i := 0; i < 4; i++ {
		l := suite.newPostedLoad(kernel.NewUUID(), 500)
		suite.Require().NoError(suite.repo.Add(ctx, l))
		ids = append(ids, l.ID())
		time.Sleep(10 * time.Millisecond)
	}

	berlin, err := kernel.NewGeoPoint(52.5200, 13.4050)
	suite.Require().NoError(err)

	loads, err := suite.repo.FindAvailable(ctx, ports.AvailableLoadsFilter{
		MaxWeight:   2000,
		VehicleType: "box_truck",
		Origin:      &berlin,
		RadiusKm:    100,
		Limit:       2,
	})

	suite.Require().NoError(err)
	suite.Require().Len(loads, 2)
	suite.True(loads[0].ID().IsEqual(ids[3]))
	suite.True(loads[1].ID().IsEqual(ids[2]))
}

func TestLoadRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LoadRepositoryIntegrationTestSuite))
}
