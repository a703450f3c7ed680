package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShopIdentity is the header printed on every receipt.
type ShopIdentity struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	TaxID   string `json:"taxID"`
}

// ReceiptLine mirrors one cart line, in cart order.
type ReceiptLine struct {
	ProductID int64           `json:"productID"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Receipt is the value handed to the rendering collaborator after a committed checkout.
type Receipt struct {
	SaleID         int64           `json:"saleID"`
	Shop           ShopIdentity    `json:"shop"`
	Lines          []ReceiptLine   `json:"lines"`
	Total          decimal.Decimal `json:"total"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
	NetAmount      decimal.Decimal `json:"netAmount"`
	PaymentMethod  string          `json:"paymentMethod"`
	Timestamp      time.Time       `json:"timestamp"`
}

// NewReceipt assembles a receipt from a committed sale and the cart it came from.
func NewReceipt(shop ShopIdentity, sale SaleRecord, lines []CartLine) Receipt {
	receiptLines := make([]ReceiptLine, len(lines))
	for i, l := range lines {
		receiptLines[i] = ReceiptLine{ProductID: l.ProductID, Name: l.Name, UnitPrice: l.UnitPrice}
	}
	return Receipt{
		SaleID:         sale.SaleID,
		Shop:           shop,
		Lines:          receiptLines,
		Total:          sale.TotalAmount,
		TaxAmount:      sale.TaxAmount,
		TaxRatePercent: sale.TaxRatePercent,
		NetAmount:      sale.NetAmount(),
		PaymentMethod:  sale.PaymentMethod,
		Timestamp:      sale.Timestamp,
	}
}

// ItemsSummary rebuilds the journal summary from the receipt lines.
func (r Receipt) ItemsSummary() string {
	names := make([]string, len(r.Lines))
	for i, l := range r.Lines {
		names[i] = l.Name
	}
	return SummarizeItems(names)
}
