package dashboard

import (
	"strings"
	"time"

	"github.com/challenge-dashboard-api/internal/models"
)

// Criteria describes a contact filter. An empty Statuses or Days set is
// unrestricted, not "match nothing": a zero Criteria returns the whole
// collection. Non-empty sets require membership.
type Criteria struct {
	Statuses []models.ContactStatus
	Days     []int
	Query    string
}

// Filter returns the contacts matching every restriction in c. Input
// order is preserved and the input slice is never mutated.
func Filter(contacts []models.Contact, c Criteria) []models.Contact {
	statuses := make(map[models.ContactStatus]bool, len(c.Statuses))
	for _, s := range c.Statuses {
		statuses[s] = true
	}
	days := make(map[int]bool, len(c.Days))
	for _, d := range c.Days {
		days[d] = true
	}
	query := strings.ToLower(c.Query)

	result := []models.Contact{}
	for _, contact := range contacts {
		if len(statuses) > 0 && !statuses[contact.Status] {
			continue
		}
		if len(days) > 0 && !days[contact.CurrentDay] {
			continue
		}
		if query != "" && !matchesQuery(contact, query) {
			continue
		}
		result = append(result, contact)
	}
	return result
}

// FilterByDateRange returns contacts whose created_at falls on a UTC
// calendar date within [start, end], both ends inclusive. A start after
// end yields an empty result, not an error.
func FilterByDateRange(contacts []models.Contact, start, end time.Time) []models.Contact {
	result := []models.Contact{}

	startDate := toUTCDate(start)
	endDate := toUTCDate(end)
	if startDate.After(endDate) {
		return result
	}

	for _, c := range contacts {
		date := toUTCDate(c.CreatedAt)
		if date.Before(startDate) || date.After(endDate) {
			continue
		}
		result = append(result, c)
	}
	return result
}

// matchesQuery reports whether the lowercased query is a substring of
// first_name, email or phone. NULL columns scan as empty strings and an
// empty string never contains a non-empty query, so missing values never
// match.
func matchesQuery(c models.Contact, query string) bool {
	return strings.Contains(strings.ToLower(c.FirstName), query) ||
		strings.Contains(strings.ToLower(c.Email), query) ||
		strings.Contains(strings.ToLower(c.Phone), query)
}

func toUTCDate(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
