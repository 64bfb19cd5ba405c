package service

import (
	"testing"
	"time"

	"soletrack/internal/model"
	"soletrack/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newInventoryService(t *testing.T) (InventoryService, *testDeps) {
	t.Helper()
	db := openTestDB(t)
	deps := &testDeps{
		db:          db,
		sneakerRepo: repository.NewSneakerRepo(db),
		saleRepo:    repository.NewSaleRepo(db),
		listingRepo: repository.NewListingRepo(db),
	}
	return NewInventoryService(deps.sneakerRepo, db), deps
}

type testDeps struct {
	db          *gorm.DB
	sneakerRepo repository.SneakerRepository
	saleRepo    repository.SaleRepository
	listingRepo repository.ListingRepository
}

func TestCreateSneaker(t *testing.T) {
	svc, _ := newInventoryService(t)

	sneaker := testSneaker()
	err := svc.CreateSneaker(sneaker, "tester")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, sneaker.ID)
	assert.Equal(t, "tester", sneaker.CreatedBy)
	assert.Equal(t, model.CategoryMens, sneaker.Category) // defaulted

	found, err := svc.GetSneaker(sneaker.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dunk Low", found.Model)
	assert.True(t, money("100").Equal(found.PurchasePrice))
}

func TestCreateSneakerRejectsBadCategory(t *testing.T) {
	svc, _ := newInventoryService(t)

	sneaker := testSneaker()
	sneaker.Category = "Unisex"
	err := svc.CreateSneaker(sneaker, "tester")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestCreateSneakerRejectsMissingBrand(t *testing.T) {
	svc, _ := newInventoryService(t)

	sneaker := testSneaker()
	sneaker.Brand = ""
	err := svc.CreateSneaker(sneaker, "tester")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Brand")
}

func TestCreateSneakerRejectsNegativePurchasePrice(t *testing.T) {
	svc, _ := newInventoryService(t)

	sneaker := testSneaker()
	sneaker.PurchasePrice = money("-5")
	err := svc.CreateSneaker(sneaker, "tester")
	require.Error(t, err)
}

func TestUpdateSneaker(t *testing.T) {
	svc, _ := newInventoryService(t)

	sneaker := testSneaker()
	require.NoError(t, svc.CreateSneaker(sneaker, "tester"))

	edit := testSneaker()
	edit.Colorway = "Triple White"
	edit.PurchasePrice = money("95")

	updated, err := svc.UpdateSneaker(sneaker.ID, edit, "editor")
	require.NoError(t, err)
	assert.Equal(t, "Triple White", updated.Colorway)
	assert.True(t, money("95").Equal(updated.PurchasePrice))
	assert.Equal(t, "editor", updated.UpdatedBy)
	assert.Equal(t, "tester", updated.CreatedBy)
}

func TestUpdateSneakerNotFound(t *testing.T) {
	svc, _ := newInventoryService(t)

	_, err := svc.UpdateSneaker(uuid.New(), testSneaker(), "editor")
	assert.ErrorIs(t, err, ErrSneakerNotFound)
}

func TestDuplicateSneaker(t *testing.T) {
	svc, _ := newInventoryService(t)

	sneaker := testSneaker()
	require.NoError(t, svc.CreateSneaker(sneaker, "tester"))

	clone, err := svc.DuplicateSneaker(sneaker.ID, "tester")
	require.NoError(t, err)

	assert.NotEqual(t, sneaker.ID, clone.ID)
	require.NotNil(t, clone.SKU)
	assert.Equal(t, "DD1391-100-COPY", *clone.SKU)
	assert.Equal(t, sneaker.Brand, clone.Brand)
	assert.Equal(t, sneaker.Size, clone.Size)
	assert.True(t, sneaker.PurchasePrice.Equal(clone.PurchasePrice))
	// Fresh acquisition: purchase date resets to today
	assert.WithinDuration(t, time.Now(), clone.PurchaseDate, time.Minute)

	all, err := svc.GetSneakers(repository.SneakerFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteSneakerCascades(t *testing.T) {
	svc, deps := newInventoryService(t)

	sneaker := testSneaker()
	require.NoError(t, svc.CreateSneaker(sneaker, "tester"))

	sale := &model.Sale{
		SneakerID: sneaker.ID,
		SalePrice: money("150"),
		SaleDate:  time.Now(),
	}
	require.NoError(t, deps.db.Create(sale).Error)

	listing := &model.Listing{
		SneakerID:    sneaker.ID,
		Platform:     model.PlatformStockX,
		ListingPrice: money("160"),
		Status:       model.ListingActive,
		DateListed:   time.Now(),
	}
	require.NoError(t, deps.db.Create(listing).Error)

	require.NoError(t, svc.DeleteSneaker(sneaker.ID))

	_, err := svc.GetSneaker(sneaker.ID)
	assert.ErrorIs(t, err, ErrSneakerNotFound)

	sales, err := deps.saleRepo.FindBySneakerID(sneaker.ID)
	require.NoError(t, err)
	assert.Empty(t, sales)

	listings, err := deps.listingRepo.FindBySneakerID(sneaker.ID)
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestDeleteSneakerNotFound(t *testing.T) {
	svc, _ := newInventoryService(t)
	assert.ErrorIs(t, svc.DeleteSneaker(uuid.New()), ErrSneakerNotFound)
}

func TestGetSneakersFilters(t *testing.T) {
	svc, _ := newInventoryService(t)

	nike := testSneaker()
	require.NoError(t, svc.CreateSneaker(nike, "tester"))

	samba := testSneaker()
	samba.SKU = nil
	samba.Brand = "Adidas"
	samba.Model = "Samba OG"
	samba.Colorway = "Black/White"
	samba.Condition = "Used"
	require.NoError(t, svc.CreateSneaker(samba, "tester"))

	byBrand, err := svc.GetSneakers(repository.SneakerFilter{Brand: "Adidas"})
	require.NoError(t, err)
	require.Len(t, byBrand, 1)
	assert.Equal(t, "Samba OG", byBrand[0].Model)

	byCondition, err := svc.GetSneakers(repository.SneakerFilter{Condition: "Used"})
	require.NoError(t, err)
	assert.Len(t, byCondition, 1)

	bySearch, err := svc.GetSneakers(repository.SneakerFilter{Search: "dunk"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Nike", bySearch[0].Brand)

	all, err := svc.GetSneakers(repository.SneakerFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBrands(t *testing.T) {
	svc, _ := newInventoryService(t)

	first := testSneaker()
	require.NoError(t, svc.CreateSneaker(first, "tester"))
	second := testSneaker()
	second.SKU = nil
	second.Brand = "Adidas"
	require.NoError(t, svc.CreateSneaker(second, "tester"))
	third := testSneaker()
	third.SKU = nil
	require.NoError(t, svc.CreateSneaker(third, "tester"))

	brands, err := svc.Brands()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Nike", "Adidas"}, brands)
}
