// Package insights derives spending analytics and heuristic insights from a
// user's bills and balances. Everything here is advisory output computed on
// the fly; "now" is always injected so results stay reproducible in tests.
package insights

import (
	"sort"
	"time"

	"github.com/evensplit/evensplit/internal/models"
)

// CategoryStat aggregates the bills of one category.
type CategoryStat struct {
	Category models.Category `json:"category"`
	Total    float64         `json:"total"`
	Count    int             `json:"count"`
	Avg      float64         `json:"avg"`
}

// MonthStat aggregates the bills of one calendar month (YYYY-MM).
type MonthStat struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
	Avg   float64 `json:"avg"`
}

// BillRef identifies a single notable bill in a summary.
type BillRef struct {
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Category    models.Category `json:"category"`
}

// TrendWindow totals the bills created within one 30-day window.
type TrendWindow struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// Summary holds the scalar spending stats for one user.
type Summary struct {
	TotalBills     int         `json:"total_bills"`
	TotalAmount    float64     `json:"total_amount"`
	AvgBillAmount  float64     `json:"avg_bill_amount"`
	MostExpensive  BillRef     `json:"most_expensive_bill"`
	Last30Days     TrendWindow `json:"last_30_days"`
	Previous30Days TrendWindow `json:"previous_30_days"`
}

// Report is the full analytics response for one user.
type Report struct {
	ByCategory []CategoryStat `json:"by_category"`
	ByMonth    []MonthStat    `json:"by_month"`
	Summary    Summary        `json:"summary"`
}

// Analyze aggregates the given bills by category and calendar month and
// computes summary stats, including a trailing-30-days versus
// prior-30-days trend comparison anchored at now.
func Analyze(bills []models.Bill, now time.Time) Report {
	report := Report{
		ByCategory: []CategoryStat{},
		ByMonth:    []MonthStat{},
	}

	byCategory := make(map[models.Category]*CategoryStat)
	byMonth := make(map[string]*MonthStat)

	last30Start := now.AddDate(0, 0, -30)
	prev30Start := now.AddDate(0, 0, -60)

	for _, bill := range bills {
		createdAt := time.Unix(bill.CreatedAt, 0)

		stat, ok := byCategory[bill.Category]
		if !ok {
			stat = &CategoryStat{Category: bill.Category}
			byCategory[bill.Category] = stat
		}
		stat.Total += bill.Amount
		stat.Count++

		month := createdAt.Format("2006-01")
		mstat, ok := byMonth[month]
		if !ok {
			mstat = &MonthStat{Month: month}
			byMonth[month] = mstat
		}
		mstat.Total += bill.Amount
		mstat.Count++

		report.Summary.TotalBills++
		report.Summary.TotalAmount += bill.Amount
		if bill.Amount > report.Summary.MostExpensive.Amount {
			report.Summary.MostExpensive = BillRef{
				Description: bill.Description,
				Amount:      bill.Amount,
				Category:    bill.Category,
			}
		}

		switch {
		case !createdAt.Before(last30Start):
			report.Summary.Last30Days.Total += bill.Amount
			report.Summary.Last30Days.Count++
		case !createdAt.Before(prev30Start):
			report.Summary.Previous30Days.Total += bill.Amount
			report.Summary.Previous30Days.Count++
		}
	}

	if report.Summary.TotalBills > 0 {
		report.Summary.AvgBillAmount = report.Summary.TotalAmount / float64(report.Summary.TotalBills)
	}

	for _, stat := range byCategory {
		stat.Avg = stat.Total / float64(stat.Count)
		report.ByCategory = append(report.ByCategory, *stat)
	}
	sort.Slice(report.ByCategory, func(i, j int) bool {
		return report.ByCategory[i].Total > report.ByCategory[j].Total
	})

	for _, stat := range byMonth {
		stat.Avg = stat.Total / float64(stat.Count)
		report.ByMonth = append(report.ByMonth, *stat)
	}
	sort.Slice(report.ByMonth, func(i, j int) bool {
		return report.ByMonth[i].Month < report.ByMonth[j].Month
	})

	return report
}
