package sqlite

import "fmt"

// FormatDateForDB joins three date components into the stored form: a
// "-"-delimited string of plain unpadded integers. The hour and minute
// columns need no formatting; they are stored as the zero-padded strings the
// domain already carries.
func FormatDateForDB(year, month, day int) string {
	return fmt.Sprintf("%d-%d-%d", year, month, day)
}
