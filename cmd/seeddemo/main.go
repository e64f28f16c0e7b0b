// Command seeddemo generates a SQL seed file with a small demo ledger:
// bills, invoices, payments, a pending suggestion, and an active promo
// configuration.
// Usage: go run ./cmd/seeddemo
// Output: db/seeds/demo.sql
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bookkeeper/internal/domain"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outPath := "db/seeds/demo.sql"

	billID := uuid.New()
	invoiceID := uuid.New()
	paymentBillID := uuid.New()
	paymentInvoiceID := uuid.New()
	suggestionID := uuid.New()

	now := time.Now().UTC()
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}

	promoCfg := domain.PromoConfig{
		SchemaVersion: domain.PromoConfigSchemaVersion,
		PromoCodes: []domain.PromoCode{
			{
				Code:          "SAVE20",
				Description:   "20% off any plan",
				DiscountType:  domain.DiscountTypePercentage,
				DiscountValue: dec(20),
				IsActive:      true,
			},
			{
				Code:          "FLAT100",
				Description:   "AED 100 off orders over AED 500",
				DiscountType:  domain.DiscountTypeFixed,
				DiscountValue: dec(100),
				MinOrderValue: decPtr(500),
				IsActive:      true,
			},
		},
	}
	promoJSON, err := json.Marshal(promoCfg)
	if err != nil {
		return fmt.Errorf("marshal promo config: %w", err)
	}

	reasons := `[{"rule":"amount_exact","score":0.6,"reason":"amounts match to the fils"},{"rule":"date_proximity","score":0.3,"reason":"paid 2 days after bill date"}]`

	stmts := []string{
		"-- Demo ledger seed data.",
		"-- Apply with: psql $DATABASE_URL -f db/seeds/demo.sql",
		"BEGIN;",
		"",
		fmt.Sprintf(
			"INSERT INTO bookkeeper_bills (id, reference_number, total_amount, bill_date, due_date, vendor_name, status) VALUES ('%s', 'BILL-1001', 4200.00, '%s', '%s', 'Desert Office Supplies LLC', 'pending');",
			billID, day(-10), day(20)),
		fmt.Sprintf(
			"INSERT INTO bookkeeper_invoices (id, reference_number, total_amount, invoice_date, due_date, customer_name, status) VALUES ('%s', 'INV-2001', 15750.00, '%s', '%s', 'Gulf Trading FZE', 'sent');",
			invoiceID, day(-45), day(-15)),
		fmt.Sprintf(
			"INSERT INTO bookkeeper_payments (id, reference_number, amount, payment_date, payment_type) VALUES ('%s', 'PAY-3001', 4200.00, '%s', 'bank_transfer');",
			paymentBillID, day(-8)),
		fmt.Sprintf(
			"INSERT INTO bookkeeper_payments (id, reference_number, amount, payment_date, payment_type) VALUES ('%s', 'PAY-3002', 15750.00, '%s', 'cheque');",
			paymentInvoiceID, day(-2)),
		fmt.Sprintf(
			"INSERT INTO bookkeeper_ai_suggestions (id, suggestion_type, source_type, source_id, target_type, target_id, confidence_score, match_reasons, status) VALUES ('%s', 'payment_match', 'bill', '%s', 'payment', '%s', 0.90, '%s', 'pending');",
			suggestionID, billID, paymentBillID, reasons),
		fmt.Sprintf(
			"INSERT INTO webflow_configurations (name, config_data, is_active) VALUES ('webflow', '%s', true);",
			string(promoJSON)),
		"",
		"COMMIT;",
	}

	if err := os.WriteFile(outPath, []byte(strings.Join(stmts, "\n")+"\n"), 0o644); err != nil {
		return fmt.Errorf("write seed file: %w", err)
	}
	log.Printf("wrote %s", outPath)
	return nil
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func decPtr(n int64) *decimal.Decimal { v := dec(n); return &v }
