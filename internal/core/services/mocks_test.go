package services_test

import (
	"context"
	"io"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// MockSourceReader implements every record reader so one mock can back a whole SourceProvider.
type MockSourceReader struct {
	mock.Mock
}

func (m *MockSourceReader) ListCashAccounts(ctx context.Context, scope domain.Scope, limit int) ([]domain.CashAccount, error) {
	args := m.Called(ctx, scope, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashAccount), args.Error(1)
}

func (m *MockSourceReader) ListClientInvoices(ctx context.Context, scope domain.Scope, limit int) ([]domain.ClientInvoice, error) {
	args := m.Called(ctx, scope, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientInvoice), args.Error(1)
}

func (m *MockSourceReader) ListSupplierInvoices(ctx context.Context, scope domain.Scope, limit int) ([]domain.SupplierInvoice, error) {
	args := m.Called(ctx, scope, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplierInvoice), args.Error(1)
}

func (m *MockSourceReader) ListExpenses(ctx context.Context, scope domain.Scope, limit int) ([]domain.Expense, error) {
	args := m.Called(ctx, scope, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockSourceReader) ListLedgerTransactions(ctx context.Context, scope domain.Scope, limit int) ([]domain.LedgerTransaction, error) {
	args := m.Called(ctx, scope, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerTransaction), args.Error(1)
}

func (m *MockSourceReader) provider() portsrepo.SourceProvider {
	return portsrepo.SourceProvider{
		CashAccounts:       m,
		ClientInvoices:     m,
		SupplierInvoices:   m,
		Expenses:           m,
		LedgerTransactions: m,
	}
}

// MockSnapshotFetcher is a mock type for the SnapshotFetcher interface
type MockSnapshotFetcher struct {
	mock.Mock
}

func (m *MockSnapshotFetcher) Fetch(ctx context.Context, scope domain.Scope) (*domain.Snapshot, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

// MockDashboardReader is a mock type for the DashboardReaderSvc interface
type MockDashboardReader struct {
	mock.Mock
}

func (m *MockDashboardReader) GetDashboard(ctx context.Context, scope domain.Scope) (*domain.DashboardViews, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardViews), args.Error(1)
}

func (m *MockDashboardReader) RefreshDashboard(ctx context.Context, scope domain.Scope) (*domain.DashboardViews, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardViews), args.Error(1)
}

var _ io.Writer = (*failingWriter)(nil)

type failingWriter struct{ err error }

func (w *failingWriter) Write([]byte) (int, error) { return 0, w.err }
