package services

import (
	"context"

	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/app/repositories"
	"golang.org/x/sync/errgroup"
)

// ReportService defines the interface for the read-only financial summaries
type ReportService interface {
	Dashboard(ctx context.Context, filter models.DashboardFilter) (*models.DashboardSummary, error)
	Breakdown(ctx context.Context) ([]models.BreakdownYear, error)
	FeeStatus(ctx context.Context, filter models.StudentFilter) ([]models.FeeStatusYear, error)
}

type reportServiceImpl struct {
	reportRepo repositories.IReportRepository
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo repositories.IReportRepository) ReportService {
	return &reportServiceImpl{reportRepo: reportRepo}
}

// Dashboard computes the filtered collection and expense totals together with the unfiltered
// per-year and per-mode collection statistics. The three reads run concurrently.
func (s *reportServiceImpl) Dashboard(ctx context.Context, filter models.DashboardFilter) (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{}
	var modes []models.ModeTotal

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		collection, expense, err := s.reportRepo.Totals(gctx, filter.TransactionFilter())
		if err != nil {
			return err
		}
		summary.Collection = collection
		summary.Expense = expense
		return nil
	})
	g.Go(func() error {
		years, err := s.reportRepo.CollectionsByYear(gctx)
		if err != nil {
			return err
		}
		summary.YearStats = years
		return nil
	})
	g.Go(func() error {
		var err error
		modes, err = s.reportRepo.CollectionsByMode(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary.Balance = summary.Collection.Sub(summary.Expense)
	if summary.YearStats == nil {
		summary.YearStats = []models.YearStat{}
	}
	summary.ModeStats = FoldModeStats(modes)
	return summary, nil
}

// Breakdown returns collections grouped by year, then department, split by payment mode
func (s *reportServiceImpl) Breakdown(ctx context.Context) ([]models.BreakdownYear, error) {
	rows, err := s.reportRepo.BreakdownRows(ctx)
	if err != nil {
		return nil, err
	}
	return BuildBreakdown(rows), nil
}

// FeeStatus returns per-class fee account summaries grouped by year
func (s *reportServiceImpl) FeeStatus(ctx context.Context, filter models.StudentFilter) ([]models.FeeStatusYear, error) {
	rows, err := s.reportRepo.FeeStatusRows(ctx, filter)
	if err != nil {
		return nil, err
	}
	return BuildFeeStatus(rows), nil
}
