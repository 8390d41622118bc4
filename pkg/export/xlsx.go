package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Transaction is the exportable view of one completed sale. Amounts are
// in the smallest currency unit.
type Transaction struct {
	ID       string
	Date     string
	Time     string
	Items    []Item
	Subtotal int64
	Tax      int64
	Total    int64
}

// Item is one exported line item.
type Item struct {
	Name      string
	Quantity  int
	UnitPrice int64
}

const sheetName = "Riwayat Penjualan"

var headers = []string{
	"No Transaksi", "Tanggal", "Waktu", "Nama Item", "Jumlah",
	"Harga Satuan", "Subtotal Item", "Subtotal Transaksi", "Pajak", "Total",
}

// SalesWorkbook renders the sales history into an XLSX workbook: one row
// per line item, with the per-transaction subtotal, tax and total on the
// first row of each transaction, followed by a grand-total row.
func SalesWorkbook(txs []Transaction) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}

	row := 2
	var grandTotal int64
	for _, tx := range txs {
		grandTotal += tx.Total
		for i, item := range tx.Items {
			values := []interface{}{
				tx.ID, tx.Date, tx.Time, item.Name, item.Quantity,
				item.UnitPrice, int64(item.Quantity) * item.UnitPrice,
				nil, nil, nil,
			}
			if i == 0 {
				values[7] = tx.Subtotal
				values[8] = tx.Tax
				values[9] = tx.Total
			}
			if err := setRow(f, row, values); err != nil {
				return nil, err
			}
			row++
		}
	}

	// Blank spacer row, then the grand total.
	row++
	total := []interface{}{
		fmt.Sprintf("TOTAL PENJUALAN (%d transaksi)", len(txs)),
		nil, nil, nil, nil, nil, nil, nil, nil, grandTotal,
	}
	if err := setRow(f, row, total); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	for col, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return err
		}
	}
	return nil
}
