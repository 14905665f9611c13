package bot

import (
	"bytes"
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xuri/excelize/v2"
)

// exportInventory sends the current parts list as an .xlsx document.
func (b *Bot) exportInventory(ctx context.Context, chatID int64, token string) {
	list, err := b.client.ListParts(ctx, token, "")
	if err != nil {
		b.reply(chatID, "Could not load inventory: "+err.Error())
		return
	}
	if len(list) == 0 {
		b.reply(chatID, "Inventory is empty, nothing to export.")
		return
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{"sku", "name", "category", "quantity", "price", "min_stock_level", "location"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		b.reply(chatID, "Could not build the export file.")
		return
	}

	row := 2
	for _, p := range list {
		excelRow := []interface{}{p.SKU, p.Name, p.Category, p.Quantity, p.Price, p.MinStockLevel, p.Location}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			b.reply(chatID, "Could not build the export file.")
			return
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			b.reply(chatID, "Could not build the export file.")
			return
		}
		row++
	}

	b.sendWorkbook(chatID, f, fmt.Sprintf("inventory_%s.xlsx", b.now().Format("20060102_150405")),
		fmt.Sprintf("Inventory export, %d parts.", len(list)))
}

// exportHistory sends the sale history as an .xlsx document, one row per
// sold line so totals can be pivoted by part.
func (b *Bot) exportHistory(ctx context.Context, chatID int64, token string) {
	list, err := b.client.ListSales(ctx, token)
	if err != nil {
		b.reply(chatID, "Could not load sales: "+err.Error())
		return
	}
	if len(list) == 0 {
		b.reply(chatID, "No sales recorded yet, nothing to export.")
		return
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"created_at", "invoice", "customer",
		"sku", "item", "quantity", "unit_price", "line_total",
		"subtotal", "gst_rate", "gst_amount", "grand_total",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		b.reply(chatID, "Could not build the export file.")
		return
	}

	row := 2
	for _, s := range list {
		created := s.CreatedAt.In(b.tz).Format(time.RFC3339)
		for _, it := range s.Items {
			excelRow := []interface{}{
				created, invoiceNo(s.ID), s.CustomerName,
				it.SKU, it.Name, it.Quantity, it.Price, it.Total,
				s.Subtotal, s.GSTRate, s.GSTAmount, s.GrandTotal,
			}
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				b.reply(chatID, "Could not build the export file.")
				return
			}
			if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
				b.reply(chatID, "Could not build the export file.")
				return
			}
			row++
		}
	}

	b.sendWorkbook(chatID, f, fmt.Sprintf("sales_%s.xlsx", b.now().Format("20060102_150405")),
		fmt.Sprintf("Sales export, %d sales.", len(list)))
}

func (b *Bot) sendWorkbook(chatID int64, f *excelize.File, name, caption string) {
	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		b.reply(chatID, "Could not write the export file.")
		return
	}
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: buf.Bytes()})
	doc.Caption = caption
	b.send(doc)
}
