package validation

import "strconv"

// UserBid checks a raw bid value. A blank bid short-circuits to a single
// error; otherwise the numeric checks run, at most 2 digits after the
// decimal point.
func UserBid(bid string) []string {
	if bid == "" {
		return []string{"Provide your offer."}
	}

	var errors []string
	if _, err := strconv.ParseFloat(bid, 64); err != nil {
		errors = append(errors, "Provide a number.")
	}
	if fractionDigits(bid) > 2 {
		errors = append(errors, "Provide a valid offer format (max 2 digits after the decimal point).")
	}

	return errors
}
