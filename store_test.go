package clinicstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinicstore/configuration"
	"clinicstore/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubConnectors points Open at in-memory sqlite, an undialed mongo client
// and miniredis.
func stubConnectors(t *testing.T) {
	t.Helper()
	pg, mg, rd := connectPostgres, connectMongo, connectRedis
	t.Cleanup(func() { connectPostgres, connectMongo, connectRedis = pg, mg, rd })

	srv := miniredis.RunT(t)
	connectPostgres = func(configuration.Config) (*gorm.DB, error) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	}
	connectMongo = func(ctx context.Context, _ configuration.Config) (*mongo.Client, error) {
		return mongo.Connect(ctx, options.Client().ApplyURI("mongodb://127.0.0.1:1"))
	}
	connectRedis = func(context.Context, configuration.Config) (*redis.Client, error) {
		return redis.NewClient(&redis.Options{Addr: srv.Addr()}), nil
	}
}

func testConfig() configuration.Config {
	return configuration.Config{MongoDatabase: "clinic", CacheTTL: time.Minute}
}

func TestOpen_WiresServices(t *testing.T) {
	stubConnectors(t)
	ctx := context.Background()

	store, err := Open(ctx, testConfig())
	require.NoError(t, err)
	require.NotNil(t, store.Doctors)
	require.NotNil(t, store.Prescriptions)

	created, err := store.Doctors.CreateDoctor(ctx, models.DoctorRequest{
		Name:           "Dr. Farah Khan",
		Specialty:      "Oncology",
		Email:          "farah.khan@clinic.example",
		Password:       "secret-123",
		Phone:          "9000000001",
		AvailableTimes: []string{"SAT 09:00"},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	fetched, err := store.Doctors.FetchDoctor(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)

	assert.NoError(t, store.Close(ctx))
}

func TestOpen_PostgresFailure(t *testing.T) {
	stubConnectors(t)
	boom := errors.New("postgres down")
	connectPostgres = func(configuration.Config) (*gorm.DB, error) { return nil, boom }

	store, err := Open(context.Background(), testConfig())
	assert.Nil(t, store)
	assert.ErrorIs(t, err, boom)
}

func TestOpen_RedisFailure(t *testing.T) {
	stubConnectors(t)
	boom := errors.New("redis down")
	connectRedis = func(context.Context, configuration.Config) (*redis.Client, error) { return nil, boom }

	store, err := Open(context.Background(), testConfig())
	assert.Nil(t, store)
	assert.ErrorIs(t, err, boom)
}
