package extract

import (
	"fmt"
	"math"
)

// FormatDimension converts a raw length in decimal feet into a conventional
// architectural dimension string, e.g. 65.71 -> `65'-8 1/2"`. Sub-inch
// remainders round to the nearest half inch: below a quarter inch drops,
// a quarter up to three quarters becomes " 1/2", and three quarters or
// more rounds the inch up. A rounded-up twelfth inch carries into feet.
func FormatDimension(decimalFeet float64) string {
	feet := int(math.Floor(decimalFeet))
	remainder := decimalFeet - math.Floor(decimalFeet)

	exactInches := remainder * 12
	inches := int(math.Floor(exactInches))
	fraction := exactInches - math.Floor(exactInches)

	half := ""
	switch {
	case fraction >= 0.75:
		inches++
	case fraction >= 0.25:
		half = " 1/2"
	}

	// Carry an overflowed inch component into the feet component.
	if inches == 12 {
		feet++
		inches = 0
	}

	return fmt.Sprintf(`%d'-%d%s"`, feet, inches, half)
}
