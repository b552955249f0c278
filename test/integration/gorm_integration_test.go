package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"estateflow-be/internal/entity"
	"estateflow-be/internal/repository/unitofwork"
	"estateflow-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.PropertyRepository())
	assert.NotNil(t, uow.ConversationRepository())
	assert.NotNil(t, uow.SubscriptionRepository())
	assert.NotNil(t, uow.StatisticsRepository())
	assert.NotNil(t, uow.FilterRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Property Repository", func(t *testing.T) {
		count, err := uow.PropertyRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Property count: %d", count)
	})

	t.Run("Check Filter Aggregates", func(t *testing.T) {
		priceRange, err := uow.FilterRepository().PriceRange(context.Background())
		assert.NoError(t, err)
		assert.NotNil(t, priceRange)
	})

	t.Run("Check Transactional Property Create", func(t *testing.T) {
		ctx := context.Background()

		owner := &entity.User{
			Id:           uuid.New(),
			Username:     "integration-" + uuid.New().String()[:8],
			Email:        "test-integration-" + uuid.New().String() + "@example.com",
			Role:         entity.UserRoleAgency,
			ListingLimit: entity.ListingLimitForRole(entity.UserRoleAgency),
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		err := uow.UserRepository().Create(ctx, owner)
		assert.NoError(t, err)

		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		property := &entity.Property{
			Id:              uuid.New(),
			OwnerId:         owner.Id,
			Title:           "Integration test listing",
			PropertyType:    entity.PropertyTypeApartment,
			TransactionType: entity.TransactionTypeSale,
			Status:          entity.PropertyStatusActive,
			Price:           100000,
			Currency:        "USD",
			Address:         "Київська область, тестова адреса",
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		}
		err = uow.PropertyRepository().Create(ctx, property)
		assert.NoError(t, err)

		record := &entity.PricingHistory{
			Id:            uuid.New(),
			PropertyId:    property.Id,
			Price:         property.Price,
			Currency:      property.Currency,
			EffectiveDate: time.Now(),
			CreatedAt:     time.Now(),
		}
		err = uow.PropertyRepository().AddPricingHistory(ctx, record)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		t.Log("Successfully created Property with Pricing History in Transaction")
	})
}
