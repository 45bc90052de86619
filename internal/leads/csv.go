package leads

import (
	"strconv"
	"time"
)

// csvHeaders returns the CSV column headers for lead exports.
func csvHeaders() []string {
	return []string{
		"id", "name", "email", "phone", "city", "monthly_income",
		"preferred_card_type", "source", "created_at",
	}
}

// leadToCSVRow converts a lead to a CSV row (matching csvHeaders order).
func leadToCSVRow(l Lead) []string {
	return []string{
		l.ID,
		l.Name,
		l.Email,
		l.Phone,
		l.City,
		strconv.FormatFloat(l.MonthlyIncome, 'f', -1, 64),
		l.PreferredCardType,
		l.Source,
		l.CreatedAt.Format(time.RFC3339),
	}
}
