package cmd

import (
	"log/slog"

	"freight/internal/adapters/out/legacy"
	"freight/internal/adapters/out/notify"
	"freight/internal/adapters/out/postgres"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	legacy     ports.LegacyRecorder
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	legacyRecorder, err := legacy.NewGormLegacyRecorder(gormDB, config.LegacyNodeID)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		legacy:     legacyRecorder,
		notifier:   notify.NewSlogNotifier(logger),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	return commands.NewCreateBookingCommandHandler(c.bookingUoWFactory())
}

func (c *CompositionRoot) CreateCancelBookingCommandHandler() commands.CancelBookingCommandHandler {
	return commands.NewCancelBookingCommandHandler(c.bookingUoWFactory())
}

func (c *CompositionRoot) CreateDeliverBookingCommandHandler() commands.DeliverBookingCommandHandler {
	return commands.NewDeliverBookingCommandHandler(c.bookingUoWFactory())
}

func (c *CompositionRoot) CreateCreateManifestCommandHandler() commands.CreateManifestCommandHandler {
	return commands.NewCreateManifestCommandHandler(c.manifestUoWFactory())
}

func (c *CompositionRoot) CreateLoadBookingsCommandHandler() commands.LoadBookingsCommandHandler {
	return commands.NewLoadBookingsCommandHandler(c.manifestUoWFactory())
}

func (c *CompositionRoot) CreateDepartManifestCommandHandler() commands.DepartManifestCommandHandler {
	return commands.NewDepartManifestCommandHandler(c.manifestUoWFactory())
}

func (c *CompositionRoot) CreateUnloadManifestCommandHandler() commands.UnloadManifestCommandHandler {
	return commands.NewUnloadManifestCommandHandler(
		c.UnloadingUoWFactory(), c.legacy, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateGetActiveBookingsQueryHandler() queries.GetActiveBookingsQueryHandler {
	return queries.NewGetActiveBookingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetIncomingManifestsQueryHandler() queries.GetIncomingManifestsQueryHandler {
	return queries.NewGetIncomingManifestsQueryHandler(c.gormDB, c.logger)
}

// UnloadingUoWFactory is exposed for the saga resume job, which sweeps
// incomplete sagas outside any HTTP request.
func (c *CompositionRoot) UnloadingUoWFactory() commands.UnloadingUoWFactory {
	return FuncUnloadingUoWFactory(func() commands.UnloadingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) bookingUoWFactory() commands.BookingUoWFactory {
	return FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) manifestUoWFactory() commands.ManifestUoWFactory {
	return FuncManifestUoWFactory(func() commands.ManifestUoW {
		return c.uowFactory.Create()
	})
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncManifestUoWFactory func() commands.ManifestUoW

func (f FuncManifestUoWFactory) Create() commands.ManifestUoW {
	return f()
}

type FuncUnloadingUoWFactory func() commands.UnloadingUoW

func (f FuncUnloadingUoWFactory) Create() commands.UnloadingUoW {
	return f()
}
