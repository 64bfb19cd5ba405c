package service

import (
	"testing"
	"time"

	"soletrack/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB spins up an isolated in-memory database per test.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&model.Sneaker{}, &model.Sale{}, &model.Listing{}, &model.User{})
	require.NoError(t, err)
	return db
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testSneaker() *model.Sneaker {
	sku := "DD1391-100"
	return &model.Sneaker{
		SKU:           &sku,
		Brand:         "Nike",
		Model:         "Dunk Low",
		Colorway:      "Panda",
		Size:          "10",
		Condition:     "New",
		PurchasePrice: money("100"),
		PurchaseDate:  time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
	}
}
