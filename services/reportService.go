package services

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/models"
)

const topItemsLimit = 10

// ReportService builds the daily closing report over the archival store.
type ReportService struct {
	resolver  *TenantResolver
	completed CompletedOrderStore
	log       *logrus.Logger
}

func NewReportService(resolver *TenantResolver, completed CompletedOrderStore, log *logrus.Logger) *ReportService {
	return &ReportService{resolver: resolver, completed: completed, log: log}
}

// Generate aggregates every completed order of the current local day for the
// tenant and then batch-marks them includedInReport. The aggregation does not
// filter on that flag: the report is a regenerable view of the whole day, so
// re-running it returns the same day totals rather than a delta. A day with
// no completed orders yields the explicit empty shape, never an error.
func (s *ReportService) Generate(ctx context.Context, identifier string) (*models.DailyReport, error) {
	business, err := s.resolver.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}

	from := localMidnight(time.Now())
	to := from.Add(24 * time.Hour)
	orders, err := s.completed.FindByBusinessAndWindow(ctx, business.BusinessID, from, to)
	if err != nil {
		return nil, err
	}

	report := &models.DailyReport{
		BusinessID: business.BusinessID,
		Date:       from.Format("2006-01-02"),
		OrdersByType: map[string]models.TypeBreakdown{
			models.TypeInSite:   {},
			models.TypeTakeaway: {},
			models.TypeDelivery: {},
		},
		TopItems: []models.ReportItem{},
	}
	if len(orders) == 0 {
		return report, nil
	}

	itemTally := make(map[string]*models.ReportItem)
	ids := make([]string, 0, len(orders))
	for _, order := range orders {
		report.TotalOrders++
		report.TotalSales += order.TotalAmount

		breakdown := report.OrdersByType[order.OrderType]
		breakdown.Count++
		breakdown.Total += order.TotalAmount
		report.OrdersByType[order.OrderType] = breakdown

		for _, item := range order.Items {
			tally, ok := itemTally[item.Name]
			if !ok {
				tally = &models.ReportItem{Name: item.Name}
				itemTally[item.Name] = tally
			}
			tally.Quantity += item.Quantity
			tally.Revenue += item.Subtotal()
		}
		ids = append(ids, order.CompletedOrderID)
	}

	for _, tally := range itemTally {
		report.TopItems = append(report.TopItems, *tally)
	}
	sort.Slice(report.TopItems, func(i, j int) bool {
		if report.TopItems[i].Quantity != report.TopItems[j].Quantity {
			return report.TopItems[i].Quantity > report.TopItems[j].Quantity
		}
		return report.TopItems[i].Name < report.TopItems[j].Name
	})
	if len(report.TopItems) > topItemsLimit {
		report.TopItems = report.TopItems[:topItemsLimit]
	}

	if err := s.completed.MarkIncludedInReport(ctx, business.BusinessID, ids); err != nil {
		s.log.WithFields(logrus.Fields{
			"businessId": business.BusinessID,
			"action":     "mark_included_in_report",
		}).Error("batch mark failed: ", err)
		return nil, err
	}
	return report, nil
}

// Cleanup deletes the listed completed orders for the tenant, returning how
// many were removed. Used after a report has been viewed or exported.
func (s *ReportService) Cleanup(ctx context.Context, identifier string, completedOrderIDs []string) (int64, error) {
	business, err := s.resolver.Resolve(ctx, identifier)
	if err != nil {
		return 0, err
	}
	if len(completedOrderIDs) == 0 {
		return 0, newValidationError("completedOrderIds", "at least one id is required")
	}
	return s.completed.DeleteByIDs(ctx, business.BusinessID, completedOrderIDs)
}
