package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// UseCase derivaciones de solo lectura sobre acumulados y journals.
// No muta nada: es seguro ejecutarlo en concurrencia con cualquier mutación.
type UseCase struct {
	productRepo   repository.ProductRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewUseCase construye el motor de analítica.
func NewUseCase(productRepo repository.ProductRepository, analyticsRepo repository.AnalyticsRepository) *UseCase {
	return &UseCase{productRepo: productRepo, analyticsRepo: analyticsRepo}
}

const dateLayout = "2006-01-02"

// Summary devuelve todos los productos con sus acumulados actuales.
func (uc *UseCase) Summary(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.List(ctx)
}

// ProductNames devuelve los nombres de producto (para selección en UI).
func (uc *UseCase) ProductNames(ctx context.Context) ([]string, error) {
	return uc.productRepo.ListNames(ctx)
}

// EnhancedSummary añade los derivados financieros por producto.
// Los promedios quedan ausentes (nil) con denominador cero: nunca división
// por cero, nunca un cero engañoso. ProfitLoss es sold - added, un proxy de
// margen simplificado definido incluso cuando un lado es cero.
func (uc *UseCase) EnhancedSummary(ctx context.Context) ([]dto.ProductAnalyticsDTO, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductAnalyticsDTO, 0, len(products))
	for _, p := range products {
		item := dto.ProductAnalyticsDTO{
			ProductDTO: *dto.ToProductDTO(p),
			ProfitLoss: p.TotalSoldAmount.Sub(p.TotalAddedAmount),
		}
		if p.TotalAddedQty > 0 {
			avg := p.TotalAddedAmount.Div(decimal.NewFromInt(p.TotalAddedQty))
			item.AvgPurchasePrice = &avg
		}
		if p.TotalSoldQty > 0 {
			avg := p.TotalSoldAmount.Div(decimal.NewFromInt(p.TotalSoldQty))
			item.AvgSellingPrice = &avg
		}
		out = append(out, item)
	}
	return out, nil
}

// RangeSummary suma los journals con date en [start, end] (inclusivo).
// La lista de productos es el roster completo actual; solo los totales están
// acotados al rango (asimetría que el reporte preserva a propósito).
func (uc *UseCase) RangeSummary(ctx context.Context, start, end string) (*dto.RangeSummaryResponse, error) {
	if _, err := time.Parse(dateLayout, start); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse(dateLayout, end); err != nil {
		return nil, domain.ErrInvalidInput
	}
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	addedQty, addedAmount, err := uc.analyticsRepo.RangeTotals(ctx, entity.EntryAdd, start, end)
	if err != nil {
		return nil, err
	}
	soldQty, soldAmount, err := uc.analyticsRepo.RangeTotals(ctx, entity.EntrySell, start, end)
	if err != nil {
		return nil, err
	}
	resp := &dto.RangeSummaryResponse{
		Products:                make([]dto.ProductDTO, 0, len(products)),
		TotalAddedQtyInRange:    addedQty,
		TotalAddedAmountInRange: addedAmount,
		TotalSoldQtyInRange:     soldQty,
		TotalSoldAmountInRange:  soldAmount,
	}
	for _, p := range products {
		resp.Products = append(resp.Products, *dto.ToProductDTO(p))
	}
	return resp, nil
}

// DailyHistory agrupa ambos journals por fecha, sumando cada lado por
// separado, y une las claves de fecha de los dos: un día con solo ventas
// aparece con las entradas en cero. Buckets en orden ascendente por fecha.
func (uc *UseCase) DailyHistory(ctx context.Context, start, end *string) ([]dto.DailyBucketDTO, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	addRows, err := uc.analyticsRepo.ListTransactions(ctx, entity.EntryAdd, start, end)
	if err != nil {
		return nil, err
	}
	sellRows, err := uc.analyticsRepo.ListTransactions(ctx, entity.EntrySell, start, end)
	if err != nil {
		return nil, err
	}

	buckets := map[string]*dto.DailyBucketDTO{}
	bucket := func(date string) *dto.DailyBucketDTO {
		b, ok := buckets[date]
		if !ok {
			b = &dto.DailyBucketDTO{
				Date:             date,
				TotalAddedAmount: decimal.Zero,
				TotalSoldAmount:  decimal.Zero,
			}
			buckets[date] = b
		}
		return b
	}
	for _, r := range addRows {
		b := bucket(r.Date)
		b.TotalAddedQty += r.Quantity
		b.TotalAddedAmount = b.TotalAddedAmount.Add(r.TotalAmount)
	}
	for _, r := range sellRows {
		b := bucket(r.Date)
		b.TotalSoldQty += r.Quantity
		b.TotalSoldAmount = b.TotalSoldAmount.Add(r.TotalAmount)
	}

	out := make([]dto.DailyBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// TransactionHistory devuelve la lista plana de ambos journals, cada entrada
// unida al nombre de su producto y etiquetada con transaction_type, en orden
// descendente por fecha (el desempate dentro de una fecha no está definido).
func (uc *UseCase) TransactionHistory(ctx context.Context, start, end *string) ([]dto.TransactionDTO, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	addRows, err := uc.analyticsRepo.ListTransactions(ctx, entity.EntryAdd, start, end)
	if err != nil {
		return nil, err
	}
	sellRows, err := uc.analyticsRepo.ListTransactions(ctx, entity.EntrySell, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TransactionDTO, 0, len(addRows)+len(sellRows))
	for _, rows := range [][]repository.TransactionRow{addRows, sellRows} {
		for _, r := range rows {
			out = append(out, dto.TransactionDTO{
				ID:              r.ID,
				Date:            r.Date,
				ProductName:     r.ProductName,
				TransactionType: r.Type,
				Quantity:        r.Quantity,
				UnitPrice:       r.UnitPrice,
				TotalAmount:     r.TotalAmount,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

// validateRange exige ambos límites o ninguno, con formato de fecha válido.
func validateRange(start, end *string) error {
	if (start == nil) != (end == nil) {
		return domain.ErrInvalidInput
	}
	if start == nil {
		return nil
	}
	if _, err := time.Parse(dateLayout, *start); err != nil {
		return domain.ErrInvalidInput
	}
	if _, err := time.Parse(dateLayout, *end); err != nil {
		return domain.ErrInvalidInput
	}
	return nil
}
