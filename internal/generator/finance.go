package generator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// transactions post each amount to exactly one side of the ledger.
func (g *Generator) transactions(accountIDs []int64) ([]FinancialTransaction, error) {
	txs := make([]FinancialTransaction, g.cfg.Counts.Transactions)
	for i := range txs {
		account, err := g.pickID(accountIDs)
		if err != nil {
			return nil, fmt.Errorf("transaction %d account: %w", i+1, err)
		}
		debit, credit := decimal.Zero, decimal.Zero
		if g.chance(0.5) {
			debit = g.money(100, 50000)
		} else {
			credit = g.money(100, 50000)
		}

		txs[i] = FinancialTransaction{
			ID:              int64(i + 1),
			AccountID:       account,
			TransactionDate: g.daysAgo(0, 365),
			Description:     g.pick(g.cfg.Pools.TransactionDetails),
			DebitAmount:     debit,
			CreditAmount:    credit,
			ReferenceNumber: fmt.Sprintf("REF%06d", g.intBetween(100000, 999999)),
		}
	}
	return txs, nil
}
