package shipment

import (
	"math/rand/v2"
	"strconv"
)

// numberLength is the length of a shipment number: 7 data digits plus the
// trailing check digit, matching the EAN-8 form.
const numberLength = 8

// NewNumber generates a shipment number: an 8-digit numeric code in EAN-8
// form, i.e. 7 random digits followed by a GS1 check digit.
//
// The generator does not consult storage, so the result is not guaranteed
// unique. Callers that persist the number must verify it against storage
// and regenerate on collision; the shipments table additionally carries a
// unique index on the number column.
func NewNumber() string {
	digits := make([]byte, numberLength)
	for i := 0; i < numberLength-1; i++ {
		digits[i] = byte('0' + rand.IntN(10))
	}
	digits[numberLength-1] = byte('0' + checkDigit(digits[:numberLength-1]))

	return string(digits)
}

// IsValidNumber reports whether s is a well-formed shipment number:
// exactly 8 digits with a correct EAN-8 check digit.
func IsValidNumber(s string) bool {
	if len(s) != numberLength {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return checkDigit([]byte(s[:numberLength-1])) == int(s[numberLength-1]-'0')
}

// checkDigit computes the GS1 check digit for the given data digits.
// For EAN-8 the leftmost digit carries weight 3, alternating 3,1,3,1...
func checkDigit(digits []byte) int {
	sum := 0
	for i, c := range digits {
		d, _ := strconv.Atoi(string(c))
		if i%2 == 0 {
			sum += d * 3
		} else {
			sum += d
		}
	}
	return (10 - sum%10) % 10
}
