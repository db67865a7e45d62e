package routes

import (
	"context"
	"fmt"
	"log"

	"motorcar_consultancy/internal/adapter/persistence/repository"
	"motorcar_consultancy/internal/infrastructure/config"
	"motorcar_consultancy/internal/infrastructure/database"
	"motorcar_consultancy/internal/usecase/interfaces"
)

// Storage bundles the repositories of one driver and how to release it.
type Storage struct {
	Orders     interfaces.IOrderRepository
	Selections interfaces.IServiceSelectionRepository
	Contacts   interfaces.IContactMessageRepository
	Health     interfaces.IStorageHealthChecker
	Close      func(ctx context.Context) error
}

// OpenStorage connects the driver named by cfg.StorageDriver.
func OpenStorage(ctx context.Context, cfg config.Config) (*Storage, error) {
	switch cfg.StorageDriver {
	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Storage{
			Orders:     repository.NewOrderDynamoRepository(ddb, cfg.OrdersTable),
			Selections: repository.NewServiceSelectionDynamoRepository(ddb, cfg.SelectionsTable),
			Contacts:   repository.NewContactMessageDynamoRepository(ddb, cfg.ContactTable),
			Health:     repository.NewDynamoHealthChecker(ddb, cfg.OrdersTable),
			Close:      func(context.Context) error { return nil },
		}, nil

	case config.DriverMongoDB:
		client, db, err := database.ConnectMongoDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Storage{
			Orders:     repository.NewOrderMongoRepository(db, cfg.OrdersTable),
			Selections: repository.NewServiceSelectionMongoRepository(db, cfg.SelectionsTable),
			Contacts:   repository.NewContactMessageMongoRepository(db, cfg.ContactTable),
			Health:     repository.NewMongoHealthChecker(client),
			Close: func(ctx context.Context) error {
				log.Printf("[database][mongodb] disconnecting")
				return client.Disconnect(ctx)
			},
		}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
