package dashboard

import (
	"sort"
	"time"

	"github.com/challenge-dashboard-api/internal/models"
)

// ComputeStats aggregates a contact collection into the dashboard stats
// record. Revenue is paid members times the configured unit price; the
// conversion rate is paid over completed as a percentage, or exactly 0
// when nobody has completed yet. An empty collection yields zero counts
// and empty distributions, never an error.
func ComputeStats(contacts []models.Contact, unitPrice float64) models.Stats {
	stats := models.Stats{
		StatusDistribution: make(map[models.ContactStatus]int),
		DayDistribution:    []models.DayCount{},
	}

	dayCounts := make(map[int]int)

	for _, c := range contacts {
		stats.Total++
		switch c.Status {
		case models.StatusChallengeRunning:
			stats.Active++
		case models.StatusChallengeCompleted:
			stats.Completed++
		case models.StatusPaidMember:
			stats.Paid++
		}
		stats.StatusDistribution[c.Status]++
		dayCounts[c.CurrentDay]++
	}

	stats.Revenue = float64(stats.Paid) * unitPrice
	if stats.Completed > 0 {
		stats.ConversionRate = float64(stats.Paid) / float64(stats.Completed) * 100
	}

	for day, count := range dayCounts {
		stats.DayDistribution = append(stats.DayDistribution, models.DayCount{Day: day, Count: count})
	}
	sort.Slice(stats.DayDistribution, func(i, j int) bool {
		return stats.DayDistribution[i].Day < stats.DayDistribution[j].Day
	})

	stats.DailySignups = DailySignups(contacts)

	return stats
}

// DailySignups buckets contacts by UTC signup date, sorted
// chronologically.
func DailySignups(contacts []models.Contact) []models.SignupPoint {
	counts := make(map[string]int)
	for _, c := range contacts {
		counts[signupDate(c.CreatedAt)]++
	}

	points := make([]models.SignupPoint, 0, len(counts))
	for date, count := range counts {
		points = append(points, models.SignupPoint{Date: date, Count: count})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// StatusOverTime buckets contacts by UTC signup date and status. Callers
// pass a date-bounded collection (see FilterByDateRange); points come back
// sorted by date, then status.
func StatusOverTime(contacts []models.Contact) []models.StatusSeriesPoint {
	type bucket struct {
		date   string
		status models.ContactStatus
	}

	counts := make(map[bucket]int)
	for _, c := range contacts {
		counts[bucket{signupDate(c.CreatedAt), c.Status}]++
	}

	points := make([]models.StatusSeriesPoint, 0, len(counts))
	for b, count := range counts {
		points = append(points, models.StatusSeriesPoint{Date: b.date, Status: b.status, Count: count})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Date != points[j].Date {
			return points[i].Date < points[j].Date
		}
		return points[i].Status < points[j].Status
	})
	return points
}

// RangeSummary aggregates a date-bounded window of contacts. Rates are
// relative to the window total; an empty window yields all zeros.
func RangeSummary(contacts []models.Contact) models.RangeSummary {
	summary := models.RangeSummary{Signups: len(contacts)}
	if len(contacts) == 0 {
		return summary
	}

	var daySum, completed, paid int
	for _, c := range contacts {
		daySum += c.CurrentDay
		switch c.Status {
		case models.StatusChallengeCompleted:
			completed++
		case models.StatusPaidMember:
			paid++
		}
	}

	total := float64(len(contacts))
	summary.AvgCurrentDay = float64(daySum) / total
	summary.CompletionRate = float64(completed) / total * 100
	summary.PaidRate = float64(paid) / total * 100
	return summary
}

// RecentSignups returns the n most recently created contacts, newest
// first. Ties on created_at break by ascending id so the order is
// deterministic. The input is never mutated; every call returns a fresh
// slice.
func RecentSignups(contacts []models.Contact, n int) []models.Contact {
	if n <= 0 {
		return []models.Contact{}
	}

	sorted := make([]models.Contact, len(contacts))
	copy(sorted, contacts)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// CompletingToday returns the contacts sitting on targetDay with the
// challenge still running. Paid or completed contacts on that day are
// excluded.
func CompletingToday(contacts []models.Contact, targetDay int) []models.Contact {
	result := []models.Contact{}
	for _, c := range contacts {
		if c.CurrentDay == targetDay && c.Status == models.StatusChallengeRunning {
			result = append(result, c)
		}
	}
	return result
}

// signupDate is the UTC calendar date of a timestamp as YYYY-MM-DD.
// Lexicographic order on the result matches chronological order.
func signupDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
