// Package pdf implementa el comprobante de recepción imprimible de una orden
// de servicio usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + NIT  │  N° Orden + Fecha + Estado        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + contacto                                 │
//	│  EQUIPO: Marca / Modelo / IMEI / Estado / Accesorios        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Total                 │
//	│  TOTAL DE LA ORDEN                                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TÉRMINO DE RESPONSABILIDAD + FIRMAS                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Taller-api/internal/application/serviceorder"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 26, Green: 26, Blue: 46}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ serviceorder.PrintoutGenerator = (*OrderPrintoutGenerator)(nil)

// OrderPrintoutGenerator genera el comprobante de recepción en PDF.
type OrderPrintoutGenerator struct{}

// NewOrderPrintoutGenerator construye el generador.
func NewOrderPrintoutGenerator() *OrderPrintoutGenerator { return &OrderPrintoutGenerator{} }

// Generate genera el PDF del comprobante y devuelve sus bytes.
func (g *OrderPrintoutGenerator) Generate(
	company *entity.Company,
	customer *entity.Customer,
	order *entity.ServiceOrder,
	items []*entity.ServiceOrderItem,
	descriptions map[string]string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de Servicio", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(deviceRows(order)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items, descriptions) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(items))

	m.AddRows(line.NewRow(3))
	m.AddRows(termRows(order)...)
	m.AddRows(signatureRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: empresa (izq) y número de orden + fecha + estado (der).
func headerRow(company *entity.Company, order *entity.ServiceOrder) core.Row {
	fecha := order.OpenedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+nonEmpty(company.TaxID, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDEN DE SERVICIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+shortID(order.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("Fecha: %s   Estado: %s", fecha, order.Status), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente que entrega el equipo.
func customerRow(customer *entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s   |   Dirección: %s",
				nonEmpty(customer.Email, "—"),
				nonEmpty(customer.Phone, "—"),
				nonEmpty(customer.Address, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// deviceRows: descripción del equipo recibido.
func deviceRows(order *entity.ServiceOrder) []core.Row {
	warranty := "No"
	if order.HasWarranty {
		warranty = "Sí"
	}
	invoice := "No"
	if order.HasInvoice {
		invoice = "Sí"
	}

	return []core.Row{
		row.New(12).Add(col.New(12).Add(
			text.New("EQUIPO RECIBIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s %s   |   Color: %s   |   IMEI: %s",
				order.DeviceBrand, order.DeviceModel,
				nonEmpty(order.DeviceColor, "—"),
				nonEmpty(order.DeviceIMEI, "—"),
			), props.Text{Style: fontstyle.Bold, Size: 9, Top: 7}),
		)),
		row.New(10).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Estado: %s   |   Accesorios: %s   |   Garantía: %s   |   Factura: %s",
				nonEmpty(order.DeviceCondition, "—"),
				nonEmpty(order.DeviceAccessories, "—"),
				warranty, invoice,
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		)),
	}
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 6, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableItemRows: una fila por línea de la orden.
func tableItemRows(items []*entity.ServiceOrderItem, descriptions map[string]string) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				itemLabel(it.Item, descriptions),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+it.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+it.Total.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total de la orden (suma de las líneas).
func totalRow(items []*entity.ServiceOrderItem) core.Row {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Total)
	}

	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("$"+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// termRows: término de responsabilidad y notas, si existen.
func termRows(order *entity.ServiceOrder) []core.Row {
	var rows []core.Row
	if order.ResponsibilityTerm != "" {
		rows = append(rows,
			row.New(5).Add(col.New(12).Add(
				text.New("TÉRMINO DE RESPONSABILIDAD", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
				}),
			)),
			row.New(12).Add(col.New(12).Add(
				text.New(order.ResponsibilityTerm, props.Text{Size: 7.5, Color: colorGray, Top: 1}),
			)),
		)
	}
	if order.Notes != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Notas: "+order.Notes, props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	return rows
}

// signatureRow: líneas de firma del cliente y del técnico.
func signatureRow() core.Row {
	sig := func(label string) core.Col {
		return col.New(5).Add(
			text.New("______________________________", props.Text{
				Size: 9, Align: align.Center, Top: 14,
			}),
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Top: 20, Color: colorGray,
			}),
		)
	}
	return row.New(26).Add(
		col.New(1),
		sig("Firma del cliente"),
		sig("Firma del técnico"),
		col.New(1),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// itemLabel arma la descripción visible de la línea: descripción de catálogo
// si se conoce, si no la referencia recortada.
func itemLabel(ref entity.ItemRef, descriptions map[string]string) string {
	if desc, ok := descriptions[ref.ID]; ok && desc != "" {
		return desc
	}
	switch ref.Type {
	case entity.ItemTypeService:
		return "Servicio " + shortID(ref.ID)
	case entity.ItemTypeProduct:
		return "Producto " + shortID(ref.ID)
	}
	return shortID(ref.ID)
}

// shortID recorta un UUID a su primer bloque para mostrarlo en el comprobante.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
