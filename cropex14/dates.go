package cropex14

// Flight date identifiers of the CROPEX 2014 campaign.
const (
	May12 = "MAY-12" // Flight 1
	May15 = "MAY-15" // Flight 2
	May22 = "MAY-22" // Flight 3
	May23 = "MAY-23" // Flight 4
	Jun03 = "JUN-03" // Flight 5
	Jun04 = "JUN-04" // Flight 6
	Jun12 = "JUN-12" // Flight 7
	Jun13 = "JUN-13" // Flight 8
	Jun18 = "JUN-18" // Flight 9
	Jun23 = "JUN-23" // Flight 10
	Jul03 = "JUL-03" // Flight 11
	Jul04 = "JUL-04" // Flight 12
	Jul24 = "JUL-24" // Flight 13
	Jul25 = "JUL-25" // Flight 14
	Aug04 = "AUG-04" // Flight 15
	Sep11 = "SEP-11" // Flight 16, different geocoding LUT
)

// FlightDates lists the flight date identifiers in campaign order.
var FlightDates = []string{
	May12, May15, May22, May23,
	Jun03, Jun04, Jun12, Jun13, Jun18, Jun23,
	Jul03, Jul04, Jul24, Jul25,
	Aug04, Sep11,
}

// FlightNumber returns the 1-based flight number of a date identifier,
// 0 when the identifier is unknown.
func FlightNumber(date string) int {
	for i, d := range FlightDates {
		if d == date {
			return i + 1
		}
	}
	return 0
}
