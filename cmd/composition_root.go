package cmd

import (
	"log/slog"

	"giftmarket/internal/adapters/out/geo"
	"giftmarket/internal/adapters/out/payments"
	"giftmarket/internal/adapters/out/postgres"
	"giftmarket/internal/core/application/usecases/commands"
	"giftmarket/internal/core/application/usecases/queries"
	"giftmarket/internal/core/domain/model/pricing"
	"giftmarket/internal/jobs"
	"giftmarket/internal/scan"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into application handlers.
type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	geoService   geo.HaversineService
	gateway      payments.EventLogGateway
	calculator   pricing.Calculator
	scanListener *scan.Listener
	logger       *slog.Logger
}

// NewCompositionRoot builds the object graph from config and an open
// database handle.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	calculator, err := pricing.NewCalculator(config.PricingConfig())
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		geoService:   geo.NewHaversineService(),
		gateway:      payments.NewEventLogGateway(logger),
		calculator:   calculator,
		scanListener: scan.NewListener(config.ScanTimeout()),
		logger:       logger,
	}, nil
}

// ScanListener returns the shared scan feed for the verify endpoint.
func (c *CompositionRoot) ScanListener() *scan.Listener {
	return c.scanListener
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.geoService, c.calculator)
}

func (c *CompositionRoot) CreateAcceptRequestCommandHandler() commands.AcceptRequestCommandHandler {
	return commands.NewAcceptRequestCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeclineRequestCommandHandler() commands.DeclineRequestCommandHandler {
	return commands.NewDeclineRequestCommandHandler(c.orderUoWFactory(), c.gateway)
}

func (c *CompositionRoot) CreateMarkReadyForDispatchCommandHandler() commands.MarkReadyForDispatchCommandHandler {
	return commands.NewMarkReadyForDispatchCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePinDeliveryLocationCommandHandler() commands.PinDeliveryLocationCommandHandler {
	return commands.NewPinDeliveryLocationCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateFinalizeHandoverCommandHandler() commands.FinalizeHandoverCommandHandler {
	return commands.NewFinalizeHandoverCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateQuoteTotalsQueryHandler() queries.QuoteTotalsQueryHandler {
	return queries.NewQuoteTotalsQueryHandler(c.geoService, c.calculator)
}

func (c *CompositionRoot) CreateVerifyTokenQueryHandler() queries.VerifyTokenQueryHandler {
	return queries.NewVerifyTokenQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateWalletViewQueryHandler() queries.WalletViewQueryHandler {
	return queries.NewWalletViewQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPreparationDueQueryHandler() queries.GetPreparationDueQueryHandler {
	return queries.NewGetPreparationDueQueryHandler(c.gormDB)
}

// CreateJobManager wires the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetPreparationDueQueryHandler(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
