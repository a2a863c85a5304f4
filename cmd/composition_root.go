package cmd

import (
	"log/slog"
	"os"

	"freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/postgres/haulerrepo"
	"freight/internal/adapters/out/postgres/loadrepo"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) CreatePostLoadCommandHandler() commands.PostLoadCommandHandler {
	var f commands.LoadUoWFactory = FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPostLoadCommandHandler(f)
}

func (c *CompositionRoot) CreateClaimLoadCommandHandler() commands.ClaimLoadCommandHandler {
	return commands.NewClaimLoadCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateAssignLoadCommandHandler() commands.AssignLoadCommandHandler {
	return commands.NewAssignLoadCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCancelLoadCommandHandler() commands.CancelLoadCommandHandler {
	var f commands.LoadUoWFactory = FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelLoadCommandHandler(f)
}

func (c *CompositionRoot) CreatePickupLoadCommandHandler() commands.PickupLoadCommandHandler {
	var f commands.LoadUoWFactory = FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPickupLoadCommandHandler(f)
}

func (c *CompositionRoot) CreateDeliverLoadCommandHandler() commands.DeliverLoadCommandHandler {
	return commands.NewDeliverLoadCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCloseLoadCommandHandler() commands.CloseLoadCommandHandler {
	var f commands.LoadUoWFactory = FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloseLoadCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterHaulerCommandHandler() commands.RegisterHaulerCommandHandler {
	var f commands.HaulerUoWFactory = FuncHaulerUoWFactory(func() commands.HaulerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterHaulerCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateHaulerProfileCommandHandler() commands.UpdateHaulerProfileCommandHandler {
	var f commands.HaulerUoWFactory = FuncHaulerUoWFactory(func() commands.HaulerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateHaulerProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateReconcileCapacityCommandHandler() commands.ReconcileCapacityCommandHandler {
	return commands.NewReconcileCapacityCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateGetMyLoadsQueryHandler() queries.GetMyLoadsQueryHandler {
	return queries.NewGetMyLoadsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMyJobsQueryHandler() queries.GetMyJobsQueryHandler {
	return queries.NewGetMyJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLoadDetailsQueryHandler() queries.GetLoadDetailsQueryHandler {
	return queries.NewGetLoadDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableLoadsQueryHandler() queries.GetAvailableLoadsQueryHandler {
	tracker := readOnlyTracker{}
	return queries.NewGetAvailableLoadsQueryHandler(
		loadrepo.NewGormLoadRepository(c.gormDB, tracker),
		haulerrepo.NewGormHaulerRepository(c.gormDB, tracker),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReconcileCapacityCommandHandler(), c.logger)
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// readOnlyTracker serves repositories wired outside a unit of work, on the
// query side, where change tracking has no meaning.
type readOnlyTracker struct{}

func (readOnlyTracker) TrackAggregate(id kernel.UUID, aggregate any) {}

type FuncLoadUoWFactory func() commands.LoadUoW

func (f FuncLoadUoWFactory) Create() commands.LoadUoW {
	return f()
}

type FuncHaulerUoWFactory func() commands.HaulerUoW

func (f FuncHaulerUoWFactory) Create() commands.HaulerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
