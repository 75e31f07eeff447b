package http

import (
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/generated/servers"

	"github.com/shopspring/decimal"
)

func createOrderInput(body servers.NewOrder) commands.CreateOrderInput {
	in := commands.CreateOrderInput{
		CustomerLocationID: body.CasinoId,
		DeliveryDate:       body.FechaEntrega,
		DeliveryTime:       body.HoraEntrega,
		DriverID:           body.ChoferId,
		Lines:              lineDrafts(body.Detalles),
	}
	if body.Notas != nil {
		in.Notes = *body.Notas
	}
	if body.Recurrente != nil {
		in.Recurring = *body.Recurrente
	}
	if body.DiasRecurrencia != nil {
		in.RecurrenceDays = *body.DiasRecurrencia
	}
	if body.Origen != nil {
		in.Origin = string(*body.Origen)
	}
	return in
}

func updateOrderInput(id int64, body servers.OrderPatch) commands.UpdateOrderInput {
	in := commands.UpdateOrderInput{
		OrderID:        id,
		DeliveryDate:   body.FechaEntrega,
		DeliveryTime:   body.HoraEntrega,
		Notes:          body.Notas,
		Recurring:      body.Recurrente,
		RecurrenceDays: body.DiasRecurrencia,
		DriverID:       body.ChoferId,
		EmailSent:      body.EmailEnviado,
		MessageSent:    body.MensajeEnviado,
	}
	if body.Estado != nil {
		estado := string(*body.Estado)
		in.Status = &estado
	}
	if body.Origen != nil {
		origen := string(*body.Origen)
		in.Origin = &origen
	}
	if body.Detalles != nil {
		lines := lineDrafts(*body.Detalles)
		in.Lines = &lines
	}
	return in
}

func lineDrafts(lines []servers.NewOrderLine) []order.LineDraft {
	drafts := make([]order.LineDraft, len(lines))
	for i, l := range lines {
		drafts[i] = order.LineDraft{
			ProductID: l.ProductoId,
			Quantity:  decimal.NewFromFloat(l.Cantidad),
			UnitPrice: decimal.NewFromFloat(l.PrecioUnitario),
		}
		if l.ProductoNombre != nil {
			drafts[i].ProductName = *l.ProductoNombre
		}
		if l.Unidad != nil {
			drafts[i].Unit = string(*l.Unidad)
		}
	}
	return drafts
}

func orderResponse(o *order.Order) servers.Order {
	lines := o.Lines()
	detalles := make([]servers.OrderLine, len(lines))
	for i, l := range lines {
		detalles[i] = servers.OrderLine{
			Id:             l.ID(),
			PedidoId:       l.OrderID(),
			ProductoId:     l.ProductID(),
			ProductoNombre: l.ProductName(),
			Cantidad:       l.Quantity().InexactFloat64(),
			Unidad:         servers.Unit(l.Unit()),
			PrecioUnitario: l.UnitPrice().InexactFloat64(),
			Subtotal:       l.Subtotal().InexactFloat64(),
		}
	}

	return servers.Order{
		Id:              o.ID(),
		CasinoId:        o.CustomerLocationID(),
		EmpresaId:       o.CompanyID(),
		FechaPedido:     o.CreatedOn().String(),
		FechaEntrega:    o.DeliveryDate().String(),
		HoraEntrega:     o.DeliveryTime().String(),
		CreadoEn:        o.CreatedAt(),
		Estado:          servers.Status(o.Status()),
		Total:           o.Total().InexactFloat64(),
		Notas:           o.Notes(),
		Recurrente:      o.Recurring(),
		DiasRecurrencia: kernel.WeekdayStrings(o.RecurrenceDays()),
		Origen:          servers.Origin(o.Origin()),
		ChoferId:        o.DriverID(),
		EmailEnviado:    o.EmailSent(),
		MensajeEnviado:  o.MessageSent(),
		Detalles:        detalles,
	}
}
