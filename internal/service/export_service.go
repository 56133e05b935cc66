package service

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/challenge-dashboard-api/internal/models"
	"github.com/rs/zerolog"
)

// exportService is the concrete implementation of ExportService
type exportService struct {
	log zerolog.Logger
}

// newExportService creates a new ExportService
func newExportService(log zerolog.Logger) *exportService {
	return &exportService{
		log: log.With().Str("service", "export").Logger(),
	}
}

// WriteContactsCSV writes the collection as CSV: a header row of field
// names, then one row per contact. Consent flags render as
// "true"/"false" and NULL consent as an empty cell.
func (s *exportService) WriteContactsCSV(w io.Writer, contacts []models.Contact) error {
	writer := csv.NewWriter(w)

	header := []string{
		"id", "first_name", "email", "phone", "status",
		"current_day", "consent_whatsapp", "consent_email", "created_at",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, c := range contacts {
		record := []string{
			strconv.FormatInt(c.ID, 10),
			c.FirstName,
			c.Email,
			c.Phone,
			string(c.Status),
			strconv.Itoa(c.CurrentDay),
			formatConsent(c.ConsentWhatsApp),
			formatConsent(c.ConsentEmail),
			c.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	s.log.Info().Int("count", len(contacts)).Msg("Contacts export completed")
	return nil
}

func formatConsent(v *bool) string {
	if v == nil {
		return ""
	}
	if *v {
		return "true"
	}
	return "false"
}
