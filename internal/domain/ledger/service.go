package ledger

import (
	"context"
	"log"
	"sync"
	"time"
)

// Service contains the business logic for the transaction log: appends,
// statements, reports and dashboard aggregates. All reads are scoped to one
// business and balances are recomputed from the log on every call.
type Service struct {
	repo      Repository
	customers CustomerDirectory
	publisher Publisher // nil disables event publishing
	now       func() time.Time
}

// NewService creates a new ledger service. publisher may be nil.
func NewService(repo Repository, customers CustomerDirectory, publisher Publisher) *Service {
	return &Service{
		repo:      repo,
		customers: customers,
		publisher: publisher,
		now:       time.Now,
	}
}

// RecordEntry validates and appends a transaction. The customer must belong
// to the same business as the entry; nothing is written when validation
// fails.
func (s *Service) RecordEntry(ctx context.Context, params CreateParams) (*Transaction, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	ok, err := s.customers.BelongsToBusiness(ctx, params.CustomerID, params.BusinessID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCustomerMismatch
	}

	tx, err := s.repo.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	s.publish(tx)
	return tx, nil
}

// publish emits an EntryRecorded event. Failures are logged and swallowed:
// the log row already committed and there is no background error channel.
func (s *Service) publish(tx *Transaction) {
	if s.publisher == nil {
		return
	}
	event := EntryRecorded{
		TransactionID: tx.ID,
		BusinessID:    tx.BusinessID,
		CustomerID:    tx.CustomerID,
		Type:          tx.Type,
		Amount:        tx.Amount,
		OccurredAt:    tx.TransactionDate,
	}
	if err := s.publisher.Publish(TopicEntries, event); err != nil {
		log.Printf("Failed to publish entry event for transaction %s: %v", tx.ID, err)
	}
}

// Statement is one customer's view of the ledger: their entries newest
// first, plus derived totals.
type Statement struct {
	Transactions []*Transaction `json:"transactions"`
	Totals       Totals         `json:"totals"`
}

// Statement returns the full statement for one customer of a business.
func (s *Service) Statement(ctx context.Context, businessID, customerID string) (*Statement, error) {
	txs, err := s.repo.ListByBusiness(ctx, Query{
		BusinessID: businessID,
		CustomerID: customerID,
	})
	if err != nil {
		return nil, err
	}
	return &Statement{
		Transactions: txs,
		Totals:       Summarize(txs),
	}, nil
}

// Report is a period-filtered view over the whole business's log.
type Report struct {
	Period       Period         `json:"period"`
	Transactions []*Transaction `json:"transactions"`
	Totals       Totals         `json:"totals"`
}

// Report lists a business's transactions within the period ending now,
// newest first, together with the period totals. The filter only narrows
// the query; it never alters stored data.
func (s *Service) Report(ctx context.Context, businessID string, period Period) (*Report, error) {
	q := Query{BusinessID: businessID}
	if from, ok := period.LowerBound(s.now()); ok {
		q.From = &from
	}

	txs, err := s.repo.ListByBusiness(ctx, q)
	if err != nil {
		return nil, err
	}
	return &Report{
		Period:       period,
		Transactions: txs,
		Totals:       Summarize(txs),
	}, nil
}

// ExportReport renders the period-filtered log as a CSV document.
func (s *Service) ExportReport(ctx context.Context, businessID string, period Period) ([]byte, error) {
	report, err := s.Report(ctx, businessID, period)
	if err != nil {
		return nil, err
	}
	return ExportCSV(report.Transactions), nil
}

// recentLimit caps the dashboard's recent-transaction list.
const recentLimit = 5

// Dashboard is the business overview: all-time totals, customer count and
// the most recent entries.
type Dashboard struct {
	Totals        Totals         `json:"totals"`
	CustomerCount int64          `json:"customerCount"`
	Recent        []*Transaction `json:"recentTransactions"`
}

// Dashboard aggregates the overview for one business. The three inputs are
// independent queries, so they are fetched concurrently and joined before
// any aggregation runs; a failure in any one fails the whole call.
func (s *Service) Dashboard(ctx context.Context, businessID string) (*Dashboard, error) {
	var (
		wg       sync.WaitGroup
		all      []*Transaction
		recent   []*Transaction
		count    int64
		allErr   error
		recErr   error
		countErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		all, allErr = s.repo.ListByBusiness(ctx, Query{BusinessID: businessID})
	}()
	go func() {
		defer wg.Done()
		recent, recErr = s.repo.ListByBusiness(ctx, Query{BusinessID: businessID, Limit: recentLimit})
	}()
	go func() {
		defer wg.Done()
		count, countErr = s.customers.CountByBusiness(ctx, businessID)
	}()
	wg.Wait()

	for _, err := range []error{allErr, recErr, countErr} {
		if err != nil {
			return nil, err
		}
	}

	return &Dashboard{
		Totals:        Summarize(all),
		CustomerCount: count,
		Recent:        recent,
	}, nil
}
