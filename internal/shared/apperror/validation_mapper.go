package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError converts go-playground validation errors into an
// AppError carrying a field-keyed detail map, so every violation is
// reported at once instead of only the first one.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make(map[string]string, len(errs))
		for _, e := range errs {
			field := e.Field()
			switch e.Tag() {
			case "required":
				fields[field] = formatFieldName(field) + " is required"
			default:
				fields[field] = formatFieldName(field) + " is invalid"
			}
		}
		return New(
			CodeInvalidInput,
			"Validation failed",
			http.StatusBadRequest,
		).WithDetails(fields)
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
