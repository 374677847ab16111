package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-ledger/internal/application/audit"
	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// Exporter serializa un listado de órdenes a un formato de descarga
// (XLSX o PDF). Implementaciones en internal/infrastructure.
type Exporter interface {
	Export(orders []*entity.Order) ([]byte, error)
}

// UseCase órdenes de venta a cliente. Deliberadamente desacoplado del motor
// del ledger: crear una orden NO toca los acumulados de Product ni el journal
// sell_history (orders = registro comercial; sell_history = ledger de precios).
type UseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	recorder    *audit.Recorder
}

// NewUseCase construye el caso de uso de órdenes.
func NewUseCase(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, recorder *audit.Recorder) *UseCase {
	return &UseCase{orderRepo: orderRepo, productRepo: productRepo, recorder: recorder}
}

// Create registra una orden contra un producto existente.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateOrderRequest, actor *audit.Actor) (*entity.Order, error) {
	if in.ProductName == "" || in.QuantitySold <= 0 || in.TotalAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByName(ctx, in.ProductName)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	createdBy := ""
	if actor != nil {
		createdBy = actor.Username
	}
	order := &entity.Order{
		ID:              uuid.New().String(),
		ProductID:       product.ID,
		ProductName:     product.Name,
		QuantitySold:    in.QuantitySold,
		TotalAmount:     in.TotalAmount.Round(2),
		CustomerName:    in.CustomerName,
		CustomerAddress: in.CustomerAddress,
		CustomerPhone:   in.CustomerPhone,
		SaleDate:        time.Now().UTC(),
		CreatedBy:       createdBy,
	}
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, actor, "Create Order", "product "+product.Name,
		fmt.Sprintf("Sold %d units to %s (Total: $%s)", in.QuantitySold, customerOrDefault(in.CustomerName), order.TotalAmount.StringFixed(2)))
	return order, nil
}

// List devuelve órdenes aplicando los filtros presentes.
func (uc *UseCase) List(ctx context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	if err := validateFilterDates(f); err != nil {
		return nil, err
	}
	return uc.orderRepo.List(ctx, f)
}

// Export serializa todas las órdenes con el exporter dado.
func (uc *UseCase) Export(ctx context.Context, exporter Exporter) ([]byte, error) {
	orders, err := uc.orderRepo.List(ctx, repository.OrderFilter{})
	if err != nil {
		return nil, err
	}
	return exporter.Export(orders)
}

func validateFilterDates(f repository.OrderFilter) error {
	for _, d := range []*string{f.StartDate, f.EndDate} {
		if d == nil {
			continue
		}
		if _, err := time.Parse("2006-01-02", *d); err != nil {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func customerOrDefault(name string) string {
	if name == "" {
		return "Customer"
	}
	return name
}
