package service

import (
	"context"
	"time"

	"github.com/sangkips/kasirpos/internal/config"
	"github.com/sangkips/kasirpos/internal/domain/entity"
	"github.com/sangkips/kasirpos/internal/domain/repository"
	"github.com/sangkips/kasirpos/pkg/apperror"
	"github.com/sangkips/kasirpos/pkg/export"
	"github.com/sangkips/kasirpos/pkg/receipt"
)

// SalesService reads the sales ledger: history, daily views, summaries,
// spreadsheet export and receipt rendering.
type SalesService struct {
	ledger  repository.LedgerRepository
	store   *config.StoreConfig
	printer receipt.Printer
	width   int
}

func NewSalesService(ledger repository.LedgerRepository, store *config.StoreConfig, printer receipt.Printer, width int) *SalesService {
	return &SalesService{
		ledger:  ledger,
		store:   store,
		printer: printer,
		width:   width,
	}
}

// DateGroup is one day of sales, in recording order within the day.
type DateGroup struct {
	Date         string               `json:"date"`
	Transactions []entity.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
	Total        int64                `json:"total"`
}

// SalesSummary aggregates the whole ledger.
type SalesSummary struct {
	TransactionCount int   `json:"transaction_count"`
	ItemsSold        int   `json:"items_sold"`
	Subtotal         int64 `json:"subtotal"`
	Tax              int64 `json:"tax"`
	Total            int64 `json:"total"`
}

// List returns the full history, most recent first.
func (s *SalesService) List(ctx context.Context) ([]entity.Transaction, error) {
	return s.ledger.List(ctx)
}

// Today returns the sales recorded under today's date string.
func (s *SalesService) Today(ctx context.Context) ([]entity.Transaction, error) {
	txs, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format(entity.TransactionDateLayout)
	filtered := make([]entity.Transaction, 0)
	for _, tx := range txs {
		if tx.Date == today {
			filtered = append(filtered, tx)
		}
	}
	return filtered, nil
}

// GroupByDate buckets the history by recorded date, preserving the
// order dates first appear in the most-recent-first listing.
func (s *SalesService) GroupByDate(ctx context.Context) ([]DateGroup, error) {
	txs, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	groups := make([]DateGroup, 0)
	for _, tx := range txs {
		i, ok := index[tx.Date]
		if !ok {
			i = len(groups)
			index[tx.Date] = i
			groups = append(groups, DateGroup{Date: tx.Date})
		}
		groups[i].Transactions = append(groups[i].Transactions, tx)
		groups[i].Count++
		groups[i].Total += tx.Total
	}
	return groups, nil
}

// GetByID fetches a single recorded sale.
func (s *SalesService) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	tx, err := s.ledger.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return tx, nil
}

// Summary totals the whole ledger.
func (s *SalesService) Summary(ctx context.Context) (*SalesSummary, error) {
	txs, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &SalesSummary{TransactionCount: len(txs)}
	for _, tx := range txs {
		summary.Subtotal += tx.Subtotal
		summary.Tax += tx.Tax
		summary.Total += tx.Total
		for _, item := range tx.Items {
			summary.ItemsSold += item.Quantity
		}
	}
	return summary, nil
}

// ExportXLSX renders the full history into an XLSX workbook.
func (s *SalesService) ExportXLSX(ctx context.Context) ([]byte, error) {
	txs, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]export.Transaction, 0, len(txs))
	for _, tx := range txs {
		row := export.Transaction{
			ID:       tx.ID,
			Date:     tx.Date,
			Time:     tx.Time,
			Subtotal: tx.Subtotal,
			Tax:      tx.Tax,
			Total:    tx.Total,
		}
		for _, item := range tx.Items {
			row.Items = append(row.Items, export.Item{
				Name:      item.Name,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			})
		}
		rows = append(rows, row)
	}
	return export.SalesWorkbook(rows)
}

// Receipt renders a recorded sale as an ESC/POS byte stream.
func (s *SalesService) Receipt(ctx context.Context, id, cashier string) ([]byte, error) {
	tx, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return receipt.Format(s.receiptOf(tx, cashier), s.width), nil
}

// PrintReceipt sends a recorded sale to the configured printer.
func (s *SalesService) PrintReceipt(ctx context.Context, id, cashier string) error {
	data, err := s.Receipt(ctx, id, cashier)
	if err != nil {
		return err
	}
	return s.printer.Print(data)
}

func (s *SalesService) receiptOf(tx *entity.Transaction, cashier string) *receipt.Receipt {
	r := &receipt.Receipt{
		StoreName:     s.store.Name,
		StoreAddress:  s.store.Address,
		StorePhone:    s.store.Phone,
		TransactionID: tx.ID,
		Date:          tx.Date,
		Time:          tx.Time,
		Cashier:       cashier,
		PaymentMethod: tx.PaymentMethod.String(),
		Subtotal:      tx.Subtotal,
		Tax:           tx.Tax,
		Total:         tx.Total,
		Tendered:      tx.Tendered,
		Change:        tx.Change,
	}
	for _, item := range tx.Items {
		r.Items = append(r.Items, receipt.Item{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.UnitPrice * int64(item.Quantity),
		})
	}
	return r
}
