package benchmark

import (
	"fmt"
	"testing"
	"time"

	"github.com/challenge-dashboard-api/internal/dashboard"
	"github.com/challenge-dashboard-api/internal/models"
	"github.com/challenge-dashboard-api/internal/validation"
)

// syntheticContacts builds a collection spread across statuses, days
// and signup dates, roughly like a real funnel
func syntheticContacts(n int) []models.Contact {
	statuses := []models.ContactStatus{
		models.StatusLeadNew,
		models.StatusChallengeRunning,
		models.StatusChallengeCompleted,
		models.StatusPaidMember,
	}

	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	contacts := make([]models.Contact, n)
	for i := 0; i < n; i++ {
		contacts[i] = models.Contact{
			ID:         int64(i + 1),
			FirstName:  fmt.Sprintf("Contact %d", i),
			Email:      fmt.Sprintf("contact%d@example.com", i),
			Phone:      fmt.Sprintf("+49151%08d", i),
			Status:     statuses[i%len(statuses)],
			CurrentDay: i % 31,
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		}
	}
	return contacts
}

// BenchmarkComputeStats benchmarks the full stats aggregation
func BenchmarkComputeStats(b *testing.B) {
	contacts := syntheticContacts(1000)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		dashboard.ComputeStats(contacts, 9.99)
	}

	b.ReportMetric(float64(1000*b.N)/b.Elapsed().Seconds(), "rows/sec")
}

// BenchmarkFilter benchmarks conjunctive status/day/query filtering
func BenchmarkFilter(b *testing.B) {
	contacts := syntheticContacts(1000)
	criteria := dashboard.Criteria{
		Statuses: []models.ContactStatus{models.StatusChallengeRunning, models.StatusPaidMember},
		Days:     []int{5, 10, 15},
		Query:    "contact1",
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		dashboard.Filter(contacts, criteria)
	}

	b.ReportMetric(float64(1000*b.N)/b.Elapsed().Seconds(), "rows/sec")
}

// BenchmarkFilterByDateRange benchmarks the date-window filter
func BenchmarkFilterByDateRange(b *testing.B) {
	contacts := syntheticContacts(1000)
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		dashboard.FilterByDateRange(contacts, start, end)
	}
}

// BenchmarkRecentSignups benchmarks the sort-copy recency listing
func BenchmarkRecentSignups(b *testing.B) {
	contacts := syntheticContacts(1000)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		dashboard.RecentSignups(contacts, 5)
	}
}

// BenchmarkValidation benchmarks the challenge update validator
func BenchmarkValidation(b *testing.B) {
	day := 12
	req := &models.UpdateContactRequest{
		Status:     "challenge_running",
		CurrentDay: &day,
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		validation.ValidateChallengeUpdate(req)
	}
}
