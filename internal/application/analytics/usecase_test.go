package analytics_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/analytics"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de solo lectura
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) GetOrCreateForUpdate(context.Context, string) (*entity.Product, error) {
	panic("no usado en analítica")
}
func (r *fakeProductRepo) GetByNameForUpdate(context.Context, string) (*entity.Product, error) {
	panic("no usado en analítica")
}
func (r *fakeProductRepo) GetByIDForUpdate(context.Context, int64) (*entity.Product, error) {
	panic("no usado en analítica")
}
func (r *fakeProductRepo) GetByName(context.Context, string) (*entity.Product, error) {
	panic("no usado en analítica")
}
func (r *fakeProductRepo) UpdateTotals(context.Context, *entity.Product) error {
	panic("no usado en analítica")
}
func (r *fakeProductRepo) List(context.Context) ([]*entity.Product, error) {
	return r.products, nil
}
func (r *fakeProductRepo) ListNames(context.Context) ([]string, error) {
	names := make([]string, 0, len(r.products))
	for _, p := range r.products {
		names = append(names, p.Name)
	}
	return names, nil
}

type fakeAnalyticsRepo struct {
	rows map[entity.EntryKind][]repository.TransactionRow
}

func (r *fakeAnalyticsRepo) RangeTotals(_ context.Context, kind entity.EntryKind, start, end string) (int64, decimal.Decimal, error) {
	var qty int64
	amount := decimal.Zero
	for _, row := range r.rows[kind] {
		if row.Date >= start && row.Date <= end {
			qty += row.Quantity
			amount = amount.Add(row.TotalAmount)
		}
	}
	return qty, amount, nil
}

func (r *fakeAnalyticsRepo) ListTransactions(_ context.Context, kind entity.EntryKind, start, end *string) ([]repository.TransactionRow, error) {
	var out []repository.TransactionRow
	for _, row := range r.rows[kind] {
		if start != nil && (row.Date < *start || row.Date > *end) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func product(name string, addedQty int64, addedAmount string, soldQty int64, soldAmount string) *entity.Product {
	p := &entity.Product{
		Name:             name,
		TotalAddedQty:    addedQty,
		TotalAddedAmount: dec(addedAmount),
		TotalSoldQty:     soldQty,
		TotalSoldAmount:  dec(soldAmount),
	}
	p.RecalcAvailable()
	return p
}

func row(id int64, date, name, kind string, qty int64, price, total string) repository.TransactionRow {
	return repository.TransactionRow{
		ID: id, Date: date, ProductName: name, Type: kind,
		Quantity: qty, UnitPrice: dec(price), TotalAmount: dec(total),
	}
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// EnhancedSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestEnhancedSummary_PromediosYProfitLoss(t *testing.T) {
	// Escenario Widget: 15 comprados por $80, 8 vendidos por $80.
	uc := analytics.NewUseCase(
		&fakeProductRepo{products: []*entity.Product{product("Widget", 15, "80.00", 8, "80.00")}},
		&fakeAnalyticsRepo{},
	)

	out, err := uc.EnhancedSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)

	w := out[0]
	require.NotNil(t, w.AvgPurchasePrice)
	assert.True(t, w.AvgPurchasePrice.Round(4).Equal(dec("5.3333")),
		"promedio de compra: esperado 80/15, obtenido %s", w.AvgPurchasePrice)
	require.NotNil(t, w.AvgSellingPrice)
	assert.True(t, w.AvgSellingPrice.Equal(dec("10")))
	assert.True(t, w.ProfitLoss.IsZero(), "vendido 80 - comprado 80 = 0")
}

func TestEnhancedSummary_PromediosAusentesConDenominadorCero(t *testing.T) {
	uc := analytics.NewUseCase(
		&fakeProductRepo{products: []*entity.Product{
			product("SoloCompras", 10, "50.00", 0, "0"),
			product("Vacio", 0, "0", 0, "0"),
		}},
		&fakeAnalyticsRepo{},
	)

	out, err := uc.EnhancedSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	soloCompras := out[0]
	assert.NotNil(t, soloCompras.AvgPurchasePrice)
	assert.Nil(t, soloCompras.AvgSellingPrice, "sin ventas el promedio de venta es ausente, no cero")
	assert.True(t, soloCompras.ProfitLoss.Equal(dec("-50.00")),
		"profit_loss está definido aunque un lado sea cero")

	vacio := out[1]
	assert.Nil(t, vacio.AvgPurchasePrice)
	assert.Nil(t, vacio.AvgSellingPrice)
	assert.True(t, vacio.ProfitLoss.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// RangeSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestRangeSummary_TotalesAcotadosRosterCompleto(t *testing.T) {
	products := []*entity.Product{
		product("Widget", 15, "80.00", 8, "80.00"),
		product("Gadget", 3, "30.00", 0, "0"),
	}
	rows := map[entity.EntryKind][]repository.TransactionRow{
		entity.EntryAdd: {
			row(1, "2024-01-10", "Widget", "add", 10, "5.00", "50.00"),
			row(2, "2024-01-20", "Widget", "add", 5, "6.00", "30.00"),
			row(3, "2024-02-01", "Gadget", "add", 3, "10.00", "30.00"),
		},
		entity.EntrySell: {
			row(1, "2024-01-12", "Widget", "sell", 8, "10.00", "80.00"),
		},
	}
	uc := analytics.NewUseCase(&fakeProductRepo{products: products}, &fakeAnalyticsRepo{rows: rows})

	out, err := uc.RangeSummary(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	// Totales: solo enero. Roster: TODOS los productos, sin filtrar por rango.
	assert.Equal(t, int64(15), out.TotalAddedQtyInRange)
	assert.True(t, out.TotalAddedAmountInRange.Equal(dec("80.00")))
	assert.Equal(t, int64(8), out.TotalSoldQtyInRange)
	assert.True(t, out.TotalSoldAmountInRange.Equal(dec("80.00")))
	assert.Len(t, out.Products, 2, "el roster no se filtra al rango")
}

func TestRangeSummary_FechasInvalidas(t *testing.T) {
	uc := analytics.NewUseCase(&fakeProductRepo{}, &fakeAnalyticsRepo{})

	_, err := uc.RangeSummary(context.Background(), "2024-01-01", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.RangeSummary(context.Background(), "01/01/2024", "2024-01-31")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// DailyHistory
// ──────────────────────────────────────────────────────────────────────────────

func TestDailyHistory_UneDiasDeAmbosJournals(t *testing.T) {
	rows := map[entity.EntryKind][]repository.TransactionRow{
		entity.EntryAdd: {
			row(1, "2024-01-10", "Widget", "add", 10, "5.00", "50.00"),
			row(2, "2024-01-10", "Gadget", "add", 2, "10.00", "20.00"),
		},
		entity.EntrySell: {
			// Día solo con ventas: debe aparecer con el lado de compras en cero.
			row(1, "2024-01-12", "Widget", "sell", 8, "10.00", "80.00"),
		},
	}
	uc := analytics.NewUseCase(&fakeProductRepo{}, &fakeAnalyticsRepo{rows: rows})

	out, err := uc.DailyHistory(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Orden ascendente por fecha.
	assert.Equal(t, "2024-01-10", out[0].Date)
	assert.Equal(t, int64(12), out[0].TotalAddedQty, "mismo día se agrega entre productos")
	assert.True(t, out[0].TotalAddedAmount.Equal(dec("70.00")))
	assert.Equal(t, int64(0), out[0].TotalSoldQty)

	assert.Equal(t, "2024-01-12", out[1].Date)
	assert.Equal(t, int64(0), out[1].TotalAddedQty, "día de solo ventas con compras en cero")
	assert.Equal(t, int64(8), out[1].TotalSoldQty)
	assert.True(t, out[1].TotalSoldAmount.Equal(dec("80.00")))
}

func TestDailyHistory_RangoConUnSoloLimite(t *testing.T) {
	uc := analytics.NewUseCase(&fakeProductRepo{}, &fakeAnalyticsRepo{})

	_, err := uc.DailyHistory(context.Background(), strPtr("2024-01-01"), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rango con un solo límite debe rechazarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// TransactionHistory
// ──────────────────────────────────────────────────────────────────────────────

func TestTransactionHistory_DescendentePorFecha(t *testing.T) {
	rows := map[entity.EntryKind][]repository.TransactionRow{
		entity.EntryAdd: {
			row(1, "2024-01-10", "Widget", "add", 10, "5.00", "50.00"),
			row(2, "2024-01-20", "Widget", "add", 5, "6.00", "30.00"),
		},
		entity.EntrySell: {
			row(1, "2024-01-12", "Widget", "sell", 8, "10.00", "80.00"),
		},
	}
	uc := analytics.NewUseCase(&fakeProductRepo{}, &fakeAnalyticsRepo{rows: rows})

	out, err := uc.TransactionHistory(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "2024-01-20", out[0].Date)
	assert.Equal(t, "2024-01-12", out[1].Date)
	assert.Equal(t, "2024-01-10", out[2].Date)
	assert.Equal(t, "sell", out[1].TransactionType)
	assert.Equal(t, "Widget", out[1].ProductName)
}

func TestTransactionHistory_RangoFiltra(t *testing.T) {
	rows := map[entity.EntryKind][]repository.TransactionRow{
		entity.EntryAdd: {
			row(1, "2024-01-10", "Widget", "add", 10, "5.00", "50.00"),
			row(2, "2024-02-05", "Widget", "add", 5, "6.00", "30.00"),
		},
	}
	uc := analytics.NewUseCase(&fakeProductRepo{}, &fakeAnalyticsRepo{rows: rows})

	out, err := uc.TransactionHistory(context.Background(), strPtr("2024-01-01"), strPtr("2024-01-31"))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2024-01-10", out[0].Date)
}
