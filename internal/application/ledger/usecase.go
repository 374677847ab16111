package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger/internal/application/audit"
	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// UseCase mantiene los acumulados de Product consistentes con los journals.
// Cada operación corre dentro de UNA transacción (TxRunner) con la fila del
// producto bloqueada (SELECT FOR UPDATE): dos ventas concurrentes del mismo
// producto se serializan y no pueden sobrevender contra una lectura obsoleta.
// La auditoría se emite después del commit y nunca lo revierte.
type UseCase struct {
	txRunner TxRunner
	recorder *audit.Recorder
}

// NewUseCase construye el motor del ledger.
func NewUseCase(txRunner TxRunner, recorder *audit.Recorder) *UseCase {
	return &UseCase{txRunner: txRunner, recorder: recorder}
}

const dateLayout = "2006-01-02"

// validateMovement valida los campos comunes de add y sell.
func validateMovement(name string, quantity int64, unitPrice decimal.Decimal, date string) error {
	if name == "" || quantity <= 0 || unitPrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return domain.ErrInvalidInput
	}
	return nil
}

// AddStock registra una entrada de stock:
// resuelve (o crea con acumulados en cero) el producto por nombre con la fila
// bloqueada, inserta en add_history, suma a total_added_* y recalcula el
// disponible. Todo o nada: en cualquier fallo no queda estado parcial.
func (uc *UseCase) AddStock(ctx context.Context, in dto.AddStockRequest, actor *audit.Actor) (*entity.Product, error) {
	if err := validateMovement(in.ProductName, in.Quantity, in.UnitPrice, in.Date); err != nil {
		return nil, err
	}
	total := in.UnitPrice.Mul(decimal.NewFromInt(in.Quantity)).Round(2)

	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		entryRepo repository.LedgerEntryRepository,
	) error {
		product, err := productRepo.GetOrCreateForUpdate(ctx, in.ProductName)
		if err != nil {
			return err
		}
		entry := &entity.LedgerEntry{
			ProductID:   product.ID,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			TotalAmount: total,
			Date:        in.Date,
		}
		if err := entryRepo.Insert(ctx, entity.EntryAdd, entry); err != nil {
			return err
		}
		product.TotalAddedQty += in.Quantity
		product.TotalAddedAmount = product.TotalAddedAmount.Add(total)
		product.RecalcAvailable()
		if err := productRepo.UpdateTotals(ctx, product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, actor, "Add Product", "product "+in.ProductName,
		fmt.Sprintf("Added %d units at $%s each (Total: $%s)", in.Quantity, in.UnitPrice.StringFixed(2), total.StringFixed(2)))
	return updated, nil
}

// SellStock registra una venta. Falla con ErrNotFound si el producto no existe
// y con ErrInsufficientStock si available_stock < quantity; en ambos casos no
// se persiste nada (la venta es todo o nada, el disponible nunca queda
// negativo por esta familia de operaciones).
func (uc *UseCase) SellStock(ctx context.Context, in dto.SellStockRequest, actor *audit.Actor) (*entity.Product, error) {
	if err := validateMovement(in.ProductName, in.Quantity, in.UnitPrice, in.Date); err != nil {
		return nil, err
	}
	total := in.UnitPrice.Mul(decimal.NewFromInt(in.Quantity)).Round(2)

	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		entryRepo repository.LedgerEntryRepository,
	) error {
		product, err := productRepo.GetByNameForUpdate(ctx, in.ProductName)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.AvailableStock < in.Quantity {
			return domain.ErrInsufficientStock
		}
		entry := &entity.LedgerEntry{
			ProductID:   product.ID,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			TotalAmount: total,
			Date:        in.Date,
		}
		if err := entryRepo.Insert(ctx, entity.EntrySell, entry); err != nil {
			return err
		}
		product.TotalSoldQty += in.Quantity
		product.TotalSoldAmount = product.TotalSoldAmount.Add(total)
		product.RecalcAvailable()
		if err := productRepo.UpdateTotals(ctx, product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, actor, "Sell Product", "product "+in.ProductName,
		fmt.Sprintf("Sold %d units at $%s each (Total: $%s)", in.Quantity, in.UnitPrice.StringFixed(2), total.StringFixed(2)))
	return updated, nil
}

// DeleteAddEntry elimina una entrada de add_history revirtiendo exactamente su
// efecto sobre los acumulados (ley inversa). La resta es mecánica: si borrar
// la entrada deja el disponible negativo, se permite sin re-validar.
func (uc *UseCase) DeleteAddEntry(ctx context.Context, id int64, actor *audit.Actor) (*entity.Product, error) {
	return uc.deleteEntry(ctx, entity.EntryAdd, id, actor)
}

// DeleteSellEntry elimina una entrada de sell_history revirtiendo su efecto.
func (uc *UseCase) DeleteSellEntry(ctx context.Context, id int64, actor *audit.Actor) (*entity.Product, error) {
	return uc.deleteEntry(ctx, entity.EntrySell, id, actor)
}

func (uc *UseCase) deleteEntry(ctx context.Context, kind entity.EntryKind, id int64, actor *audit.Actor) (*entity.Product, error) {
	var (
		updated *entity.Product
		deleted *entity.LedgerEntry
	)
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		entryRepo repository.LedgerEntryRepository,
	) error {
		entry, err := entryRepo.GetByIDForUpdate(ctx, kind, id)
		if err != nil {
			return err
		}
		if entry == nil {
			// Incluye el caso de dos borradores concurrentes: el segundo
			// espera el lock y encuentra la fila ya eliminada.
			return domain.ErrNotFound
		}
		product, err := productRepo.GetByIDForUpdate(ctx, entry.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			// FK colgante: corrupción previa de datos, no un 404 normal.
			return domain.ErrIntegrity
		}
		switch kind {
		case entity.EntryAdd:
			product.TotalAddedQty -= entry.Quantity
			product.TotalAddedAmount = product.TotalAddedAmount.Sub(entry.TotalAmount)
		case entity.EntrySell:
			product.TotalSoldQty -= entry.Quantity
			product.TotalSoldAmount = product.TotalSoldAmount.Sub(entry.TotalAmount)
		default:
			return domain.ErrInvalidInput
		}
		product.RecalcAvailable()
		ok, err := entryRepo.Delete(ctx, kind, id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		if err := productRepo.UpdateTotals(ctx, product); err != nil {
			return err
		}
		updated = product
		deleted = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := "Delete Add History"
	label := "add"
	if kind == entity.EntrySell {
		action = "Delete Sell History"
		label = "sell"
	}
	uc.recorder.Record(ctx, actor, action, "product "+updated.Name,
		fmt.Sprintf("Deleted %s history record (ID: %d) - %d units @ $%s", label, id, deleted.Quantity, deleted.UnitPrice.StringFixed(2)))
	return updated, nil
}
