package probe

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// extractFields turns a JSON probe output into a comma-delimited record, one field per path
func extractFields(output string, paths []string) (string, error) {
	if !gjson.Valid(output) {
		return "", errors.New("probe output is not a valid JSON document")
	}

	results := gjson.GetMany(output, paths...)
	fields := make([]string, 0, len(results))
	for i, result := range results {
		if !result.Exists() {
			return "", errPathNotFound(paths[i])
		}

		fields = append(fields, strings.ReplaceAll(result.String(), ",", " "))
	}

	return strings.Join(fields, ","), nil
}
