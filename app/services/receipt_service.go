package services

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"RestoPos/app/models"
	"RestoPos/app/store"
)

const receiptWidth = 40

// ReceiptService renders printable receipts for settled orders
type ReceiptService struct {
	store *store.Store
}

// NewReceiptService creates a new receipt service
func NewReceiptService(st *store.Store) *ReceiptService {
	return &ReceiptService{store: st}
}

// Render produces the plain-text receipt for an order
func (s *ReceiptService) Render(order models.Order) string {
	settings := s.store.Settings.Get()

	var b strings.Builder
	center(&b, settings.Name)
	center(&b, settings.Address)
	center(&b, settings.Phone)
	b.WriteString(strings.Repeat("-", receiptWidth) + "\n")
	b.WriteString(fmt.Sprintf("Order #%d\n", order.ID))
	b.WriteString(fmt.Sprintf("Table %d (%s)\n", order.TableNumber, order.Area))
	b.WriteString(fmt.Sprintf("%s\n", order.CreatedAt.Format("2006-01-02 15:04")))
	b.WriteString(strings.Repeat("-", receiptWidth) + "\n")

	for _, item := range order.Items {
		lineTotal := item.UnitPrice * (1 - item.Discount/100) * float64(item.Quantity)
		b.WriteString(fmt.Sprintf("%-26s %2dx %8.2f\n", trim(item.MenuItem.Name, 26), item.Quantity, lineTotal))
		for _, sel := range item.Customizations {
			if sel.Single != nil {
				b.WriteString(fmt.Sprintf("  + %s\n", sel.Single.Name))
			}
			for _, opt := range sel.Multi {
				b.WriteString(fmt.Sprintf("  + %s\n", opt.Name))
			}
		}
		for _, ing := range item.RemovedIngredients {
			b.WriteString(fmt.Sprintf("  - no %s\n", ing))
		}
		if item.Discount > 0 {
			b.WriteString(fmt.Sprintf("  (%.0f%% off)\n", item.Discount))
		}
	}

	b.WriteString(strings.Repeat("-", receiptWidth) + "\n")
	b.WriteString(fmt.Sprintf("%-30s %9.2f\n", "Subtotal", order.Subtotal))
	b.WriteString(fmt.Sprintf("%-30s %9.2f\n", "Tax", order.Tax))
	b.WriteString(fmt.Sprintf("%-30s %9.2f\n", "TOTAL", order.Total))
	if order.PaymentDetails != nil {
		b.WriteString(fmt.Sprintf("Paid by %s\n", order.PaymentDetails.Method))
		for _, p := range order.PaymentDetails.Payments {
			b.WriteString(fmt.Sprintf("  %-6s %9.2f\n", p.Method, p.Amount))
		}
	}
	b.WriteString(strings.Repeat("-", receiptWidth) + "\n")
	center(&b, settings.Footer)

	return b.String()
}

// QRCode returns a PNG QR code encoding the order reference, for the bottom
// of printed receipts.
func (s *ReceiptService) QRCode(order models.Order) ([]byte, error) {
	payload := fmt.Sprintf("%s|order:%d|total:%.2f", s.store.Settings.Get().Name, order.ID, order.Total)
	return qrcode.Encode(payload, qrcode.Medium, 256)
}

func center(b *strings.Builder, line string) {
	if line == "" {
		return
	}
	if pad := (receiptWidth - len(line)) / 2; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(line + "\n")
}

func trim(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
