package ledger

import "github.com/shopspring/decimal"

// Totals is the reduction of a transaction set to its signed summary.
type Totals struct {
	Gave     decimal.Decimal `json:"totalGave"`
	Received decimal.Decimal `json:"totalReceived"`
	Balance  decimal.Decimal `json:"balance"`
}

// SumByType returns the sum of amounts for all transactions of the given
// type. An empty input yields zero.
func SumByType(txs []*Transaction, t EntryType) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txs {
		if tx.Type == t {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum
}

// Balance reduces a transaction set to received − gave. Positive means the
// business owner will receive money; negative means the owner will give.
// The same formula applies whether txs is one customer's entries or the
// whole business's log.
func Balance(txs []*Transaction) decimal.Decimal {
	return SumByType(txs, TypeReceived).Sub(SumByType(txs, TypeGave))
}

// Summarize computes all three totals in one pass over txs.
func Summarize(txs []*Transaction) Totals {
	gave := SumByType(txs, TypeGave)
	received := SumByType(txs, TypeReceived)
	return Totals{
		Gave:     gave,
		Received: received,
		Balance:  received.Sub(gave),
	}
}

// BalancesByCustomer folds a business's transaction set into one derived
// balance per customer. Customers with no transactions are simply absent.
func BalancesByCustomer(txs []*Transaction) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		b, ok := balances[tx.CustomerID]
		if !ok {
			b = decimal.Zero
		}
		switch tx.Type {
		case TypeGave:
			b = b.Sub(tx.Amount)
		case TypeReceived:
			b = b.Add(tx.Amount)
		}
		balances[tx.CustomerID] = b
	}
	return balances
}

// BalanceLabel maps a balance to the phrase shown next to it: who pays next.
func BalanceLabel(b decimal.Decimal) string {
	switch b.Sign() {
	case 1:
		return "You'll receive"
	case -1:
		return "You'll give"
	default:
		return "Settled"
	}
}
