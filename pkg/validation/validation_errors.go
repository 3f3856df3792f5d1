package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Auth fields
	"Email":                "Email",
	"Password":             "Password",
	"PasswordConfirmation": "Konfirmasi Password",
	"Name":                 "Nama",

	// Application fields
	"JobID":    "Lowongan",
	"Birth":    "Tanggal Lahir",
	"Gender":   "Jenis Kelamin",
	"Domicile": "Domisili",
	"Phone":    "Nomor Telepon",
	"Linkedin": "LinkedIn",
	"Photo":    "Foto",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// HasTag reports whether any failed rule in err carries the given tag.
func HasTag(err error, tag string) bool {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return false
	}
	for _, e := range validationErrors {
		if e.Tag() == tag {
			return true
		}
	}
	return false
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: Wajib diisi", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Minimal %s karakter", label, param)
		}
		return fmt.Sprintf("%s: Minimal %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s: Harus salah satu dari: %s", label, strings.ReplaceAll(param, " ", ", "))
	case "eqfield":
		return fmt.Sprintf("%s: Harus sama dengan %s", label, getFieldLabel(param))
	default:
		return fmt.Sprintf("%s: Validasi gagal (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
