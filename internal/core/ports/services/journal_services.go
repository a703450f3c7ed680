package services

import (
	"context"
	"io"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/SscSPs/pos_ledger_app/internal/dto"
)

// JournalReaderSvc defines read operations for the sales journal
type JournalReaderSvc interface {
	GetSaleByID(ctx context.Context, saleID int64) (*domain.SaleRecord, error)

	// QuerySales lists sales in the inclusive day range, oldest first. Nil bounds are open.
	QuerySales(ctx context.Context, params dto.ListSalesParams) ([]domain.SaleRecord, error)
}

// JournalWriterSvc defines the append operation of the sales journal
type JournalWriterSvc interface {
	RecordSale(ctx context.Context, sale domain.SaleRecord) (*domain.SaleRecord, error)
}

// JournalExportSvc renders the journal for auditors.
type JournalExportSvc interface {
	// ExportSales writes the sales in range as an XLSX workbook to w.
	ExportSales(ctx context.Context, params dto.ListSalesParams, w io.Writer) error
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	JournalExportSvc
}
