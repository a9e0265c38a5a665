// Package sanitizer normalizes accepted signup data before it leaves the
// validation layer and masks personal data for logs.
//
//	name := sanitizer.PlainText(req.FirstName) // "<b>Jane</b>  " -> "Jane"
//	log.Info("signup accepted", slog.String("email", sanitizer.MaskEmail(email)))
//
// StripHTML uses bluemonday's strict policy. Sanitizing never replaces
// validation: values are validated first, then cleaned.
package sanitizer
