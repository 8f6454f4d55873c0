package cmd

import (
	"log/slog"

	httpadapter "housebuilder/internal/adapters/in/http"
	"housebuilder/internal/adapters/out/postgres"
	"housebuilder/internal/core/application/usecases/commands"
	"housebuilder/internal/core/application/usecases/queries"
	"housebuilder/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateConstructHouseCommandHandler() commands.ConstructHouseCommandHandler {
	return commands.NewConstructHouseCommandHandler(c.createUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateOrderHouseCommandHandler() commands.OrderHouseCommandHandler {
	return commands.NewOrderHouseCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateFinishHousesCommandHandler() commands.FinishHousesCommandHandler {
	return commands.NewFinishHousesCommandHandler(c.createUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetAllHousesQueryHandler() queries.GetAllHousesQueryHandler {
	return queries.NewGetAllHousesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetHouseQueryHandler() queries.GetHouseQueryHandler {
	return queries.NewGetHouseQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	constructHandler := c.CreateConstructHouseCommandHandler()
	orderHandler := c.CreateOrderHouseCommandHandler()

	return httpadapter.NewServer(
		&constructHandler,
		&orderHandler,
		c.CreateGetAllHousesQueryHandler(),
		c.CreateGetHouseQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	finishHandler := c.CreateFinishHousesCommandHandler()
	return jobs.NewJobManager(&finishHandler, c.config.JobSchedule, c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
