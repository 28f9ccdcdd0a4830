// Package stockview implementa la página de listado de stock del taller:
// tres adaptadores independientes que traducen el esquema propio del backend
// a la forma genérica que consume el componente compartido de stock.
package stockview

import (
	"context"
	"fmt"
	"time"

	"github.com/invorya/pos-views/internal/application/dto"
	"github.com/invorya/pos-views/internal/domain/entity"
	"github.com/invorya/pos-views/pkg/logger"
)

// Gateway puerto hacia el backend POS.
type Gateway interface {
	GetWorkshopBranch(ctx context.Context) (*entity.Branch, error)
	GetWorkshopStock(ctx context.Context) ([]entity.StockEntry, error)
	GetLowStock(ctx context.Context, branchID int64) ([]entity.LowStockItem, error)
}

// Exporter puerto de exportación del listado a archivo.
type Exporter interface {
	WriteStockListing(branch *entity.Branch, entries []entity.StockEntry) ([]byte, error)
}

// UseCase adaptadores de la página de stock. Sin estado propio: cada llamada
// consulta el backend de nuevo; los fallos se propagan sin reintentos al
// componente que compone la página.
type UseCase struct {
	api      Gateway
	exporter Exporter
	log      *logger.Logger
}

// New construye el caso de uso.
func New(api Gateway, exporter Exporter, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{api: api, exporter: exporter, log: log}
}

// Branches envuelve la sucursal fija del taller en una secuencia de un elemento:
// el componente compartido espera una lista aunque la sucursal no sea seleccionable.
func (uc *UseCase) Branches(ctx context.Context) ([]dto.BranchResponse, error) {
	branch, err := uc.api.GetWorkshopBranch(ctx)
	if err != nil {
		return nil, fmt.Errorf("stockview: sucursal del taller: %w", err)
	}
	return []dto.BranchResponse{{ID: branch.ID, Name: branch.Name}}, nil
}

// Stock devuelve el listado ya normalizado (available_qty -> quantity, límite
// ausente sigue ausente, precio de compra siempre ausente).
func (uc *UseCase) Stock(ctx context.Context) ([]dto.StockEntryResponse, error) {
	entries, err := uc.api.GetWorkshopStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("stockview: stock del taller: %w", err)
	}
	out := make([]dto.StockEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.StockEntryResponse{
			ID:            e.ID,
			Name:          e.Name,
			Quantity:      e.Quantity,
			Limit:         e.Limit,
			PurchasePrice: e.PurchasePrice,
		})
	}
	return out, nil
}

// LowStock resuelve primero el identificador de la sucursal fija y luego pide
// las violaciones de umbral filtradas por ese identificador. La sucursal se
// resuelve de nuevo en cada llamada aunque Branches ya la haya consultado:
// ambos adaptadores son independientes y no comparten estado.
func (uc *UseCase) LowStock(ctx context.Context) ([]dto.LowStockItemResponse, error) {
	branch, err := uc.api.GetWorkshopBranch(ctx)
	if err != nil {
		return nil, fmt.Errorf("stockview: sucursal del taller: %w", err)
	}
	items, err := uc.api.GetLowStock(ctx, branch.ID)
	if err != nil {
		return nil, fmt.Errorf("stockview: bajo stock: %w", err)
	}
	out := make([]dto.LowStockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.LowStockItemResponse{
			ID:       it.ID,
			Name:     it.Name,
			Branch:   it.Branch,
			Quantity: it.Quantity,
			Limit:    it.Limit,
		})
	}
	return out, nil
}

// Page compone los tres adaptadores para la página completa.
func (uc *UseCase) Page(ctx context.Context) (*dto.StockPageResponse, error) {
	branches, err := uc.Branches(ctx)
	if err != nil {
		return nil, err
	}
	stock, err := uc.Stock(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StockPageResponse{
		Branches: branches,
		Stock:    stock,
		LowStock: lowStock,
	}, nil
}

// ExportXLSX exporta el listado de stock a un libro XLSX y devuelve los bytes
// con el nombre de archivo sugerido.
func (uc *UseCase) ExportXLSX(ctx context.Context) (doc []byte, filename string, err error) {
	if uc.exporter == nil {
		return nil, "", fmt.Errorf("stockview: exportador no configurado")
	}
	branch, err := uc.api.GetWorkshopBranch(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("stockview: sucursal del taller: %w", err)
	}
	entries, err := uc.api.GetWorkshopStock(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("stockview: stock del taller: %w", err)
	}
	doc, err = uc.exporter.WriteStockListing(branch, entries)
	if err != nil {
		return nil, "", fmt.Errorf("stockview: exportar listado: %w", err)
	}
	filename = fmt.Sprintf("stock_%s.xlsx", time.Now().Format("20060102"))
	return doc, filename, nil
}
