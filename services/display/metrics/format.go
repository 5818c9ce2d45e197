package metrics

import (
	"strconv"
	"strings"
)

const (
	fieldSeparator = ","
	maxFields      = 4
	missingField   = "N/A"
)

// splitFields returns exactly maxFields fields of the record, empty or missing ones replaced by N/A
func splitFields(record string) []string {
	parts := strings.Split(record, fieldSeparator)
	fields := make([]string, maxFields)
	for i := range fields {
		fields[i] = missingField
		if i < len(parts) && parts[i] != "" {
			fields[i] = parts[i]
		}
	}

	return fields
}

// FormatRecord substitutes the {0}..{3} placeholders of the template with the record fields
func FormatRecord(template string, record string) string {
	fields := splitFields(record)
	pairs := make([]string, 0, 2*maxFields)
	for i, field := range fields {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", field)
	}

	return strings.NewReplacer(pairs...).Replace(template)
}

// PrimaryField returns the first field of the record, the canonical value of a metric
func PrimaryField(record string) string {
	first, _, _ := strings.Cut(record, fieldSeparator)

	return strings.TrimSpace(first)
}
