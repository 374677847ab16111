package orders_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/audit"
	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/orders"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders []*entity.Order
}

func (r *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	clone := *o
	r.orders = append(r.orders, &clone)
	return nil
}

func (r *fakeOrderRepo) List(_ context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if f.ProductID != nil && o.ProductID != *f.ProductID {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

// fakeProductLookup solo sirve GetByName; órdenes no tocan nada más.
type fakeProductLookup struct {
	products map[string]*entity.Product
	updated  bool
}

func (r *fakeProductLookup) GetByName(_ context.Context, name string) (*entity.Product, error) {
	return r.products[name], nil
}
func (r *fakeProductLookup) GetOrCreateForUpdate(context.Context, string) (*entity.Product, error) {
	panic("órdenes no deben bloquear productos")
}
func (r *fakeProductLookup) GetByNameForUpdate(context.Context, string) (*entity.Product, error) {
	panic("órdenes no deben bloquear productos")
}
func (r *fakeProductLookup) GetByIDForUpdate(context.Context, int64) (*entity.Product, error) {
	panic("órdenes no deben bloquear productos")
}
func (r *fakeProductLookup) UpdateTotals(context.Context, *entity.Product) error {
	r.updated = true
	return nil
}
func (r *fakeProductLookup) List(context.Context) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductLookup) ListNames(context.Context) ([]string, error)     { return nil, nil }

type nullActivityRepo struct{}

func (nullActivityRepo) Insert(context.Context, *entity.ActivityLog) error { return nil }
func (nullActivityRepo) ListRecent(context.Context, int) ([]repository.ActivityLogRow, error) {
	return nil, nil
}

func newOrdersFixture() (*orders.UseCase, *fakeOrderRepo, *fakeProductLookup) {
	orderRepo := &fakeOrderRepo{}
	productRepo := &fakeProductLookup{products: map[string]*entity.Product{
		"Widget": {ID: 7, Name: "Widget", TotalAddedQty: 15, AvailableStock: 7},
	}}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := orders.NewUseCase(orderRepo, productRepo, audit.NewRecorder(nullActivityRepo{}, log))
	return uc, orderRepo, productRepo
}

var testActor = &audit.Actor{UserID: 1, Username: "editor1", Role: entity.RoleEditor}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOrder_RegistraSinTocarAcumulados(t *testing.T) {
	uc, orderRepo, productRepo := newOrdersFixture()

	order, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		ProductName:  "Widget",
		QuantitySold: 3,
		TotalAmount:  decimal.RequireFromString("29.999"),
		CustomerName: "Carlos",
	}, testActor)
	require.NoError(t, err)

	_, err = uuid.Parse(order.ID)
	assert.NoError(t, err, "el ID de la orden debe ser un UUID")
	assert.Equal(t, int64(7), order.ProductID)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("30.00")),
		"el monto se redondea a 2 decimales")
	assert.Equal(t, "editor1", order.CreatedBy)
	require.Len(t, orderRepo.orders, 1)

	// La orden es registro comercial: el ledger no se entera.
	assert.False(t, productRepo.updated, "crear una orden no debe escribir acumulados")
}

func TestCreateOrder_ProductoInexistente(t *testing.T) {
	uc, orderRepo, _ := newOrdersFixture()

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		ProductName:  "Fantasma",
		QuantitySold: 1,
		TotalAmount:  decimal.New(10, 0),
	}, testActor)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, orderRepo.orders)
}

func TestCreateOrder_Validacion(t *testing.T) {
	uc, _, _ := newOrdersFixture()
	ctx := context.Background()

	cases := []dto.CreateOrderRequest{
		{ProductName: "", QuantitySold: 1, TotalAmount: decimal.New(10, 0)},
		{ProductName: "Widget", QuantitySold: 0, TotalAmount: decimal.New(10, 0)},
		{ProductName: "Widget", QuantitySold: 2, TotalAmount: decimal.New(-1, 0)},
	}
	for _, in := range cases {
		_, err := uc.Create(ctx, in, testActor)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %+v debía rechazarse", in)
	}
}

func TestCreateOrder_ClienteOpcional(t *testing.T) {
	uc, orderRepo, _ := newOrdersFixture()

	order, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		ProductName:  "Widget",
		QuantitySold: 1,
		TotalAmount:  decimal.New(10, 0),
	}, testActor)
	require.NoError(t, err)
	assert.Empty(t, order.CustomerName)
	require.Len(t, orderRepo.orders, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// List / Export
// ──────────────────────────────────────────────────────────────────────────────

func TestListOrders_FiltroDeFechaInvalido(t *testing.T) {
	uc, _, _ := newOrdersFixture()
	bad := "01/01/2024"

	_, err := uc.List(context.Background(), repository.OrderFilter{StartDate: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

type captureExporter struct {
	got []*entity.Order
}

func (e *captureExporter) Export(orders []*entity.Order) ([]byte, error) {
	e.got = orders
	return []byte("exportado"), nil
}

func TestExport_EntregaTodasLasOrdenes(t *testing.T) {
	uc, _, _ := newOrdersFixture()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := uc.Create(ctx, dto.CreateOrderRequest{
			ProductName:  "Widget",
			QuantitySold: 1,
			TotalAmount:  decimal.New(10, 0),
		}, testActor)
		require.NoError(t, err)
	}

	exp := &captureExporter{}
	data, err := uc.Export(ctx, exp)
	require.NoError(t, err)
	assert.Equal(t, []byte("exportado"), data)
	assert.Len(t, exp.got, 3)
}
