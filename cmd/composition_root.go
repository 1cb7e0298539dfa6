package cmd

import (
	"time"

	"kitchen/internal/adapters/out/postgres"
	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     services.CapacityPolicy
	capability services.StationCapability
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	kitchenConfig, err := services.NewKitchenConfig(
		config.MaxConcurrentOrders,
		time.Duration(config.MaxPreparationTimeMinutes)*time.Minute,
		config.CriticalCapacityRatio,
		config.OrdersPerStaff,
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	policy, err := services.NewCapacityPolicy(kitchenConfig)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     policy,
		capability: services.NewAllowAllCapability(),
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeItemStatusCommandHandler() commands.ChangeItemStatusCommandHandler {
	return commands.NewChangeItemStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignStationCommandHandler() commands.AssignStationCommandHandler {
	var f commands.AssignStationUoWFactory = FuncAssignStationUoWFactory(func() commands.AssignStationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignStationCommandHandler(f, c.capability)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateEscalatePrioritiesCommandHandler() commands.EscalatePrioritiesCommandHandler {
	return commands.NewEscalatePrioritiesCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetKitchenQueueQueryHandler() queries.GetKitchenQueueQueryHandler {
	return queries.NewGetKitchenQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncAssignStationUoWFactory func() commands.AssignStationUoW

func (f FuncAssignStationUoWFactory) Create() commands.AssignStationUoW {
	return f()
}
