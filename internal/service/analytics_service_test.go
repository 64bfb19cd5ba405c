package service

import (
	"testing"
	"time"

	"soletrack/internal/model"
	"soletrack/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSummary(t *testing.T) {
	db := openTestDB(t)
	sneakerRepo := repository.NewSneakerRepo(db)
	saleRepo := repository.NewSaleRepo(db)

	inv := NewInventoryService(sneakerRepo, db)
	sales := NewSalesService(saleRepo, sneakerRepo, db)
	svc := NewAnalyticsService(sneakerRepo, saleRepo)

	sold := testSneaker()
	require.NoError(t, inv.CreateSneaker(sold, "tester"))

	held := testSneaker()
	held.SKU = nil
	held.Brand = "Adidas"
	held.Model = "Samba OG"
	held.PurchasePrice = money("80")
	require.NoError(t, inv.CreateSneaker(held, "tester"))

	require.NoError(t, sales.RecordSale(&model.Sale{
		SneakerID: sold.ID,
		SalePrice: money("150"),
		Fees:      money("10"),
		SaleDate:  time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
		Platform:  "StockX",
	}, "tester"))

	summary, err := svc.GetSummary()
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalSneakers)
	assert.Equal(t, 1, summary.TotalSales)
	assert.Equal(t, 1, summary.AvailableInventory)
	assert.True(t, money("180").Equal(summary.TotalInvested))
	assert.True(t, money("150").Equal(summary.TotalRevenue))
	assert.True(t, money("40").Equal(summary.TotalProfit))
	require.Len(t, summary.BrandPerformance, 1)
	assert.Equal(t, "Nike", summary.BrandPerformance[0].Brand)
	require.Len(t, summary.MonthlyProfits, 1)
	assert.Equal(t, "2024-05", summary.MonthlyProfits[0].Month)
}

func TestGetSummaryEmptyDatabase(t *testing.T) {
	db := openTestDB(t)
	svc := NewAnalyticsService(repository.NewSneakerRepo(db), repository.NewSaleRepo(db))

	summary, err := svc.GetSummary()
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalSneakers)
	assert.True(t, summary.TotalProfit.IsZero())
	assert.Empty(t, summary.BrandPerformance)
}
