package models

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrPriceUnavailable is returned when a catalogue price label carries no usable amount
var ErrPriceUnavailable = errors.New("price unavailable")

var priceLabelRegex = regexp.MustCompile(`(\d+(?:[.,]\d{1,2})?)`)

// digitGroupRegex matches a thousands separator: a space, no-break space or
// narrow no-break space followed by exactly three digits
var digitGroupRegex = regexp.MustCompile(`(\d)[ \x{00A0}\x{202F}](\d{3})\b`)

// ParsePriceLabel extracts the billable amount from a catalogue price label.
// Ranges such as "50€ - 100€" bill their lower bound; "1 200€" is 1200 euros.
func ParsePriceLabel(label string) (Money, error) {
	match := priceLabelRegex.FindString(joinDigitGroups(label))
	if match == "" {
		return Money{}, ErrPriceUnavailable
	}

	match = strings.Replace(match, ",", ".", 1)
	whole, fraction, _ := strings.Cut(match, ".")

	euros, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, errors.Wrap(ErrPriceUnavailable, err.Error())
	}

	var cents int64
	if fraction != "" {
		if len(fraction) == 1 {
			fraction += "0"
		}
		cents, err = strconv.ParseInt(fraction, 10, 64)
		if err != nil {
			return Money{}, errors.Wrap(ErrPriceUnavailable, err.Error())
		}
	}

	price := Euros(euros*100 + cents)
	if !price.IsPositive() {
		return Money{}, ErrPriceUnavailable
	}

	return price, nil
}

// joinDigitGroups removes thousands separators so "1 200 000" reads as one
// number. Matches cannot overlap, hence the loop.
func joinDigitGroups(label string) string {
	for {
		joined := digitGroupRegex.ReplaceAllString(label, "$1$2")
		if joined == label {
			return joined
		}
		label = joined
	}
}
