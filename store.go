// Package clinicstore wires the doctor and prescription services to their
// stores: postgres for doctors, mongo for prescriptions, redis in front of both.
package clinicstore

import (
	"context"
	"errors"
	"log"

	"clinicstore/cache"
	"clinicstore/configuration"
	"clinicstore/repository"
	"clinicstore/services"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

var (
	connectPostgres = configuration.ConnectPostgres
	connectMongo    = configuration.ConnectMongo
	connectRedis    = configuration.InitRedis
)

type Store struct {
	Doctors       *services.DoctorService
	Prescriptions *services.PrescriptionService

	sql   *gorm.DB
	mongo *mongo.Client
	redis *redis.Client
}

// OpenFromEnv loads the configuration from .env and the environment and opens the store.
func OpenFromEnv(ctx context.Context) (*Store, error) {
	cfg, err := configuration.Load()
	if err != nil {
		log.Println("Error from configuration load: ", err)
		return nil, err
	}
	return Open(ctx, cfg)
}

/*
* Connect postgres and create the doctor tables
* Connect mongo and redis
* Build the repositories, the cache and the services on top
* Anything already opened is closed again when a later step fails
 */
func Open(ctx context.Context, cfg configuration.Config) (*Store, error) {
	db, err := connectPostgres(cfg)
	if err != nil {
		return nil, err
	}
	doctors := repository.NewDoctorRepository(db)
	if err := doctors.AutoMigrate(); err != nil {
		log.Println("Error from AutoMigrate: ", err)
		closeSQL(db)
		return nil, err
	}

	mc, err := connectMongo(ctx, cfg)
	if err != nil {
		closeSQL(db)
		return nil, err
	}

	rc, err := connectRedis(ctx, cfg)
	if err != nil {
		closeSQL(db)
		_ = mc.Disconnect(ctx)
		return nil, err
	}

	c := cache.New(rc, cfg.CacheTTL)
	prescriptions := repository.NewPrescriptionRepository(mc.Database(cfg.MongoDatabase))

	return &Store{
		Doctors:       services.NewDoctorService(doctors, c),
		Prescriptions: services.NewPrescriptionService(prescriptions, c),
		sql:           db,
		mongo:         mc,
		redis:         rc,
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	var errs []error
	if sqlDB, err := s.sql.DB(); err != nil {
		errs = append(errs, err)
	} else if err := sqlDB.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := s.mongo.Disconnect(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := s.redis.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func closeSQL(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Println("Error closing postgres: ", err)
	}
}
