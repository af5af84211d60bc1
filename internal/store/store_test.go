package store

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"tableside/backend/internal/firebase"
	"tableside/backend/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A store over an empty client bundle behaves as if no backend exists:
// saves and deletes succeed without effect, loads return empty slices,
// subscriptions hand back no handle. These tests pin that contract for
// every entity kind.

func disabledStore(t *testing.T) *Store {
	t.Helper()
	return New(&firebase.Clients{}, zerolog.Nop())
}

func TestDisabledSavesAreNoOps(t *testing.T) {
	s := disabledStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSettings(ctx, models.Settings{RestaurantName: "Trattoria"}))
	require.NoError(t, s.SaveMenuItem(ctx, models.MenuItem{ID: "m1", Name: "Carbonara"}))
	require.NoError(t, s.SaveCategory(ctx, models.Category{ID: "c1", Name: "Pasta"}))
	require.NoError(t, s.SaveOrder(ctx, models.Order{ID: "o1", Timestamp: time.Now()}))
	require.NoError(t, s.SaveTable(ctx, models.Table{ID: "t1", Name: "4"}))
	require.NoError(t, s.SaveZone(ctx, models.Zone{ID: "z1", Name: "Terrace"}))
	require.NoError(t, s.SaveInventoryItem(ctx, models.InventoryItem{ID: "i1", Name: "Flour"}))
	require.NoError(t, s.SaveCustomer(ctx, models.Customer{ID: "cu1", Name: "Dana"}))
	require.NoError(t, s.SaveCoupon(ctx, models.Coupon{ID: "cp1", Code: "TEN"}))
	require.NoError(t, s.SaveBooking(ctx, models.Booking{ID: "b1", Name: "Dana"}))
	require.NoError(t, s.SaveUser(ctx, models.User{ID: "u1", DisplayName: "Sam"}))
	require.NoError(t, s.SaveRole(ctx, models.Role{ID: "r1", Name: "manager"}))
}

func TestSaveRequiresID(t *testing.T) {
	s := disabledStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.SaveMenuItem(ctx, models.MenuItem{Name: "no id"}), ErrMissingID)
	assert.ErrorIs(t, s.SaveOrder(ctx, models.Order{}), ErrMissingID)
	assert.ErrorIs(t, s.SaveCustomer(ctx, models.Customer{Name: "no id"}), ErrMissingID)
	assert.ErrorIs(t, s.SaveTable(ctx, models.Table{}), ErrMissingID)
	assert.ErrorIs(t, s.SaveRole(ctx, models.Role{}), ErrMissingID)
}

func TestDisabledLoadsReturnEmpty(t *testing.T) {
	s := disabledStore(t)
	ctx := context.Background()

	menu, err := s.LoadMenu(ctx)
	require.NoError(t, err)
	assert.Empty(t, menu)

	cats, err := s.LoadCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)

	orders, err := s.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	tables, err := s.LoadTables(ctx)
	require.NoError(t, err)
	assert.Empty(t, tables)

	zones, err := s.LoadZones(ctx)
	require.NoError(t, err)
	assert.Empty(t, zones)

	inv, err := s.LoadInventory(ctx)
	require.NoError(t, err)
	assert.Empty(t, inv)

	customers, err := s.LoadCustomers(ctx)
	require.NoError(t, err)
	assert.Empty(t, customers)

	coupons, err := s.LoadCoupons(ctx)
	require.NoError(t, err)
	assert.Empty(t, coupons)

	bookings, err := s.LoadBookings(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)

	users, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	roles, err := s.LoadRoles(ctx)
	require.NoError(t, err)
	assert.Empty(t, roles)

	set, err := s.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Nil(t, set)
}

func TestDisabledDeletesAreNoOps(t *testing.T) {
	s := disabledStore(t)
	ctx := context.Background()

	for _, del := range []func(context.Context, string) error{
		s.DeleteMenuItem, s.DeleteCategory, s.DeleteOrder, s.DeleteTable,
		s.DeleteZone, s.DeleteInventoryItem, s.DeleteCustomer, s.DeleteCoupon,
		s.DeleteBooking, s.DeleteUser, s.DeleteRole,
	} {
		assert.NoError(t, del(ctx, "missing"))
		// Repeating a delete is also a no-op.
		assert.NoError(t, del(ctx, "missing"))
	}
	assert.NoError(t, s.DeleteSettings(ctx))
}

func TestDisabledSubscriptionsReturnNoHandle(t *testing.T) {
	s := disabledStore(t)
	ctx := context.Background()

	assert.Nil(t, s.SubscribeOrders(ctx, func([]models.Order) { t.Fatal("unexpected delivery") }))
	assert.Nil(t, s.SubscribeTables(ctx, func([]models.Table) { t.Fatal("unexpected delivery") }))
}

func TestDisabledDatabaseReadsAsEmpty(t *testing.T) {
	s := disabledStore(t)
	ctx := context.Background()

	empty, err := s.IsDatabaseEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, s.InitializeDatabase(ctx, models.SeedBundle{
		Settings: models.Settings{RestaurantName: "Trattoria"},
	}))
}

func TestSearchOnDisabledStore(t *testing.T) {
	s := disabledStore(t)
	ctx := context.Background()

	menu, err := s.SearchMenu(ctx, "pasta", 10)
	require.NoError(t, err)
	assert.Empty(t, menu)

	customers, err := s.SearchCustomers(ctx, "dana", 10)
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestBestEffortOrderPolicyToggle(t *testing.T) {
	on := New(&firebase.Clients{}, zerolog.Nop())
	assert.True(t, on.bestEffortOrders)

	off := New(&firebase.Clients{}, zerolog.Nop(), WithBestEffortOrderSaves(false))
	assert.False(t, off.bestEffortOrders)
}

// Documents that fail to decode are dropped from load results, so the
// drop must leave a trace naming the collection and document.
func TestSkipDocLogsCollectionAndID(t *testing.T) {
	var buf bytes.Buffer
	s := New(&firebase.Clients{}, zerolog.New(&buf))

	s.skipDoc(ColOrders, "o-broken", errors.New("firestore: cannot decode field timestamp"))

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"collection":"orders"`)
	assert.Contains(t, out, `"doc":"o-broken"`)
}
