package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/invorya/pos-views/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades del total: subtotal = cantidad × precio exacto (sin redondeo
// previo al formato) y total = suma de subtotales, cero para venta vacía.
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleItem_SubtotalExacto(t *testing.T) {
	item := entity.SaleItem{
		Quantity: decimal.NewFromInt(2),
		Price:    decimal.NewFromInt(100),
	}
	assert.True(t, item.Subtotal().Equal(decimal.NewFromInt(200)))
}

func TestSaleItem_SubtotalFraccionarioSinRedondeo(t *testing.T) {
	// 1.5 × 33.33 = 49.995: el subtotal conserva los tres decimales;
	// el redondeo ocurre recién al formatear.
	item := entity.SaleItem{
		Quantity: decimal.NewFromFloat(1.5),
		Price:    decimal.NewFromFloat(33.33),
	}
	want, _ := decimal.NewFromString("49.995")
	assert.True(t, item.Subtotal().Equal(want),
		"subtotal = %s, esperado 49.995", item.Subtotal())
}

func TestSale_TotalSumaLineas(t *testing.T) {
	// Venta del enunciado: 2×100 + 3×50 = 350.
	sale := entity.Sale{
		Items: []entity.SaleItem{
			{Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(100)},
			{Quantity: decimal.NewFromInt(3), Price: decimal.NewFromInt(50)},
		},
	}
	assert.True(t, sale.Total().Equal(decimal.NewFromInt(350)),
		"total = %s, esperado 350", sale.Total())
}

func TestSale_TotalVentaVaciaEsCero(t *testing.T) {
	assert.True(t, entity.Sale{}.Total().IsZero())
	assert.True(t, entity.Sale{Items: []entity.SaleItem{}}.Total().IsZero())
}

func TestSale_TotalSeRecalculaAlCambiarItems(t *testing.T) {
	sale := entity.Sale{
		Items: []entity.SaleItem{
			{Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(100)},
		},
	}
	assert.True(t, sale.Total().Equal(decimal.NewFromInt(200)))

	// El total no se cachea: al cambiar la secuencia de líneas, cambia el resultado.
	sale.Items = append(sale.Items, entity.SaleItem{
		Quantity: decimal.NewFromInt(3), Price: decimal.NewFromInt(50),
	})
	assert.True(t, sale.Total().Equal(decimal.NewFromInt(350)))
}
