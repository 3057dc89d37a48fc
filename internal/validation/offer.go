package validation

import (
	"strconv"
	"strings"
)

// Field order fixed so callers always get errors in submission-form order.
var offerRequiredFields = []string{
	"name",
	"wage",
	"distance",
	"city_from",
	"street_from",
	"street_from_number",
	"city_to",
	"street_to",
	"street_to_number",
}

// DeliveryOfferForm checks the raw offer form values and returns every error
// found; an empty slice means the form is valid. The description and extras
// keys are deleted from the given map before iterating, so a caller that
// still needs them has to pass a copy.
//
// A blank required field is reported once with a single generic message, no
// matter how many fields are blank. The format checks run independently of
// each other, so one submission can collect several errors.
func DeliveryOfferForm(fields map[string]string) []string {
	delete(fields, "description")
	delete(fields, "extras")

	errors := []string{}
	blankField := false
	for _, field := range offerRequiredFields {
		value := fields[field]
		if value == "" {
			blankField = true
			continue
		}

		switch field {
		case "wage":
			errors = append(errors, WageFormat(value)...)
		case "distance":
			errors = append(errors, DistanceFormat(value)...)
		case "street_from_number", "street_to_number":
			errors = append(errors, StreetNumberFormat(value)...)
		}
	}

	if blankField {
		errors = append(errors, "Fill in all required fields.")
	}

	return errors
}

// WageFormat accepts numbers with at most 2 digits after the decimal point.
func WageFormat(value string) []string {
	var errors []string
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		errors = append(errors, "Provide a valid price.")
	}
	if fractionDigits(value) > 2 {
		errors = append(errors, "Provide a valid price format (max 2 digits after the decimal point).")
	}

	return errors
}

// DistanceFormat accepts numbers with at most 3 digits after the decimal point.
func DistanceFormat(value string) []string {
	var errors []string
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		errors = append(errors, "Provide a valid distance.")
	}
	if fractionDigits(value) > 3 {
		errors = append(errors, "Provide a valid distance format (max 3 digits after the decimal point).")
	}

	return errors
}

func StreetNumberFormat(value string) []string {
	if _, err := strconv.Atoi(value); err != nil {
		return []string{"Provide a valid building number."}
	}

	return nil
}

func fractionDigits(value string) int {
	dot := strings.Index(value, ".")
	if dot < 0 {
		return 0
	}

	return len(value) - dot - 1
}
