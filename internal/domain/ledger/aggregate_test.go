package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func tx(customerID string, t EntryType, amount string) *Transaction {
	return &Transaction{
		ID:         customerID + "-" + amount,
		BusinessID: "biz-1",
		CustomerID: customerID,
		Type:       t,
		Amount:     dec(amount),
	}
}

func TestSumByType_Empty(t *testing.T) {
	if got := SumByType(nil, TypeGave); !got.Equal(decimal.Zero) {
		t.Errorf("SumByType(nil, gave) = %s, want 0", got)
	}
	if got := SumByType([]*Transaction{}, TypeReceived); !got.Equal(decimal.Zero) {
		t.Errorf("SumByType([], received) = %s, want 0", got)
	}
}

func TestSumByType_NeverNegative(t *testing.T) {
	txs := []*Transaction{
		tx("c1", TypeGave, "100"),
		tx("c1", TypeReceived, "40"),
		tx("c2", TypeGave, "5.50"),
	}

	for _, typ := range []EntryType{TypeGave, TypeReceived} {
		if got := SumByType(txs, typ); got.IsNegative() {
			t.Errorf("SumByType(%s) = %s, want non-negative", typ, got)
		}
	}
}

func TestBalance_CustomerScenario(t *testing.T) {
	// gave 100, received 40 => balance = 40 - 100 = -60, owner will give.
	txs := []*Transaction{
		tx("c1", TypeGave, "100"),
		tx("c1", TypeReceived, "40"),
	}

	got := Balance(txs)
	if !got.Equal(dec("-60")) {
		t.Fatalf("Balance() = %s, want -60", got)
	}
	if label := BalanceLabel(got); label != "You'll give" {
		t.Errorf("BalanceLabel(-60) = %q, want %q", label, "You'll give")
	}
}

func TestBalance_BusinessEqualsCustomerSum(t *testing.T) {
	// Customer balances +30 and -60; the business balance must come out to
	// -30 via the raw transaction sum, not by re-adding derived balances.
	txs := []*Transaction{
		tx("c1", TypeReceived, "30"),
		tx("c2", TypeGave, "100"),
		tx("c2", TypeReceived, "40"),
	}

	business := Balance(txs)
	if !business.Equal(dec("-30")) {
		t.Fatalf("business Balance() = %s, want -30", business)
	}

	perCustomer := BalancesByCustomer(txs)
	if !perCustomer["c1"].Equal(dec("30")) {
		t.Errorf("c1 balance = %s, want 30", perCustomer["c1"])
	}
	if !perCustomer["c2"].Equal(dec("-60")) {
		t.Errorf("c2 balance = %s, want -60", perCustomer["c2"])
	}

	sum := decimal.Zero
	for _, b := range perCustomer {
		sum = sum.Add(b)
	}
	if !sum.Equal(business) {
		t.Errorf("sum of customer balances = %s, business balance = %s; must be equal", sum, business)
	}
}

func TestBalance_Idempotent(t *testing.T) {
	txs := []*Transaction{
		tx("c1", TypeGave, "12.34"),
		tx("c1", TypeReceived, "56.78"),
	}

	first := Balance(txs)
	second := Balance(txs)
	if !first.Equal(second) {
		t.Errorf("Balance() not idempotent: %s then %s", first, second)
	}
	if !txs[0].Amount.Equal(dec("12.34")) {
		t.Error("Balance() mutated its input")
	}
}

func TestSumByType_NoDecimalDrift(t *testing.T) {
	// 1000 additions of 0.10 must be exactly 100, not 99.999... as with
	// binary floats.
	var txs []*Transaction
	for i := 0; i < 1000; i++ {
		txs = append(txs, tx("c1", TypeReceived, "0.10"))
	}

	if got := SumByType(txs, TypeReceived); !got.Equal(dec("100")) {
		t.Errorf("SumByType over 1000 x 0.10 = %s, want exactly 100", got)
	}
}

func TestSummarize(t *testing.T) {
	txs := []*Transaction{
		tx("c1", TypeGave, "100"),
		tx("c1", TypeReceived, "40"),
	}

	totals := Summarize(txs)
	if !totals.Gave.Equal(dec("100")) || !totals.Received.Equal(dec("40")) || !totals.Balance.Equal(dec("-60")) {
		t.Errorf("Summarize() = %+v, want gave=100 received=40 balance=-60", totals)
	}
}

func TestBalanceLabel(t *testing.T) {
	tests := []struct {
		balance string
		want    string
	}{
		{"10", "You'll receive"},
		{"-0.01", "You'll give"},
		{"0", "Settled"},
	}

	for _, tt := range tests {
		if got := BalanceLabel(dec(tt.balance)); got != tt.want {
			t.Errorf("BalanceLabel(%s) = %q, want %q", tt.balance, got, tt.want)
		}
	}
}
