package cmd

import (
	"fabtrack/internal/adapters/in/http"
	"fabtrack/internal/adapters/out/postgres"
	"fabtrack/internal/adapters/out/postgres/userrepo"
	"fabtrack/internal/core/application/usecases/commands"
	"fabtrack/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory(), c.config.RequireReadyToComplete)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddComponentCommandHandler() commands.AddComponentCommandHandler {
	return commands.NewAddComponentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveComponentCommandHandler() commands.RemoveComponentCommandHandler {
	return commands.NewRemoveComponentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeComponentStatusCommandHandler() commands.ChangeComponentStatusCommandHandler {
	return commands.NewChangeComponentStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeComponentDescriptionCommandHandler() commands.ChangeComponentDescriptionCommandHandler {
	return commands.NewChangeComponentDescriptionCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueOrdersQueryHandler() queries.GetOverdueOrdersQueryHandler {
	return queries.NewGetOverdueOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateAddComponentCommandHandler(),
		c.CreateRemoveComponentCommandHandler(),
		c.CreateChangeComponentStatusCommandHandler(),
		c.CreateChangeComponentDescriptionCommandHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetOverdueOrdersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateAuthServer() *http.AuthServer {
	return http.NewAuthServer(userrepo.NewGormUserRepository(c.gormDB), c.config.JWTSecret)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
