package insights

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/evensplit/evensplit/internal/models"
)

// Priority ranks insights for display; higher ranks sort first.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var priorityRank = map[Priority]int{
	PriorityHigh:   3,
	PriorityMedium: 2,
	PriorityLow:    1,
}

// Insight is one heuristic observation about a user's spending.
type Insight struct {
	Type     string   `json:"type"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Priority Priority `json:"priority"`
}

// maxInsights caps how many insights a single response carries.
const maxInsights = 5

var titleCaser = cases.Title(language.English)

// Generate evaluates the insight rules against a user's bills and balances
// and returns at most maxInsights results, stably ordered by priority.
//
// A user with no bills gets a single welcome insight and nothing else. All
// other rules are independent; every one that fires contributes an insight.
// Thresholds are strict: a category at exactly 50% of spend or a trend
// change of exactly 20% does not fire.
func Generate(bills []models.Bill, balances map[string]float64, now time.Time) []Insight {
	if len(bills) == 0 {
		return []Insight{{
			Type:     "welcome",
			Title:    "Welcome to EvenSplit!",
			Message:  "Start by creating your first bill to track expenses with friends.",
			Priority: PriorityHigh,
		}}
	}

	var results []Insight

	// Dominant category: one category above half of total spend.
	report := Analyze(bills, now)
	if len(report.ByCategory) > 0 && report.Summary.TotalAmount > 0 {
		top := report.ByCategory[0]
		percentage := top.Total * 100 / report.Summary.TotalAmount
		if percentage > 50 {
			results = append(results, Insight{
				Type:  "spending_pattern",
				Title: fmt.Sprintf("High %s Spending", titleCaser.String(string(top.Category))),
				Message: fmt.Sprintf(
					"You spend %.1f%% of your money on %s. Consider balancing your expenses across categories.",
					percentage, top.Category),
				Priority: PriorityMedium,
			})
		}
	}

	// Trend: trailing 30 days versus the 30 days before that.
	recent := report.Summary.Last30Days.Total
	previous := report.Summary.Previous30Days.Total
	if previous > 0 {
		change := (recent - previous) * 100 / previous
		if change > 20 {
			results = append(results, Insight{
				Type:  "trend",
				Title: "Spending Increased",
				Message: fmt.Sprintf(
					"Your spending increased by %.1f%% this month. Consider reviewing your recent expenses.", change),
				Priority: PriorityHigh,
			})
		} else if change < -20 {
			results = append(results, Insight{
				Type:  "trend",
				Title: "Nice Work Saving",
				Message: fmt.Sprintf(
					"Your spending decreased by %.1f%% this month. Keep it up!", -change),
				Priority: PriorityLow,
			})
		}
	}

	// Outstanding debt and credit across all counterparties.
	var totalDebt, totalOwed float64
	for _, amount := range balances {
		if amount < 0 {
			totalDebt += amount
		} else {
			totalOwed += amount
		}
	}
	if -totalDebt > 100 {
		results = append(results, Insight{
			Type:  "debt",
			Title: "Outstanding Debts",
			Message: fmt.Sprintf(
				"You owe %.2f to friends. Consider settling some payments.", -totalDebt),
			Priority: PriorityMedium,
		})
	}
	if totalOwed > 100 {
		results = append(results, Insight{
			Type:  "credit",
			Title: "Money Owed to You",
			Message: fmt.Sprintf(
				"Friends owe you %.2f. You might want to remind them about pending payments.", totalOwed),
			Priority: PriorityLow,
		})
	}

	// Activity over the trailing week.
	weekStart := now.AddDate(0, 0, -7)
	billsThisWeek := 0
	for _, bill := range bills {
		if !time.Unix(bill.CreatedAt, 0).Before(weekStart) {
			billsThisWeek++
		}
	}
	if billsThisWeek == 0 {
		results = append(results, Insight{
			Type:     "activity",
			Title:    "Quiet Week",
			Message:  "No bills this week. Planning any outings with friends?",
			Priority: PriorityLow,
		})
	} else if billsThisWeek > 10 {
		results = append(results, Insight{
			Type:     "activity",
			Title:    "Active Week",
			Message:  fmt.Sprintf("%d bills this week. You're staying social!", billsThisWeek),
			Priority: PriorityLow,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return priorityRank[results[i].Priority] > priorityRank[results[j].Priority]
	})
	if len(results) > maxInsights {
		results = results[:maxInsights]
	}
	return results
}
