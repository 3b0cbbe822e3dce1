// Package calendar maps Gregorian dates onto the Maya Tzolkin and Long Count
//
// All functions are pure and use whole-day arithmetic on the proleptic
// Gregorian calendar, so results are bit-exact for any date.
package calendar

import (
	"fmt"
	"time"
)

// Correlation is the GMT correlation constant: JDN of Long Count 0.0.0.0.0
const Correlation = 584283

// Reference date 2012-12-21 is 4 Ajaw (tone 4, sign 20) and Long Count 13.0.0.0.0
const (
	referenceTone = 4
	referenceSign = 20
)

var referenceJDN = JDN(2012, time.December, 21)

// Tzolkin is one day of the 260-day count
type Tzolkin struct {
	Tone      int    // 1..13
	SignIndex int    // 1..20
	SignName  string // K'iche' name of the day sign
}

func (t Tzolkin) String() string {
	return fmt.Sprintf("%d %s", t.Tone, t.SignName)
}

// JDN returns the Julian Day Number of a proleptic Gregorian date at noon
func JDN(year int, month time.Month, day int) int {
	a := (14 - int(month)) / 12
	y := year + 4800 - a
	m := int(month) + 12*a - 3
	return day + (153*m+2)/5 + 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
}

// JDNFromTime returns the JDN of t's calendar date in t's own location
func JDNFromTime(t time.Time) int {
	y, m, d := t.Date()
	return JDN(y, m, d)
}

// TzolkinFromDate returns the tone and day sign of date
func TzolkinFromDate(date time.Time) Tzolkin {
	delta := JDNFromTime(date) - referenceJDN
	tone := ((referenceTone-1+delta)%13+13)%13 + 1
	sign := ((referenceSign-1+delta)%20+20)%20 + 1
	return Tzolkin{Tone: tone, SignIndex: sign, SignName: signNames[sign-1]}
}

// LongCount is a Maya Long Count date
type LongCount struct {
	Baktun, Katun, Tun, Uinal, Kin int
}

func (lc LongCount) String() string {
	return fmt.Sprintf("%d.%d.%d.%d.%d", lc.Baktun, lc.Katun, lc.Tun, lc.Uinal, lc.Kin)
}

// LongCountFromDate converts date to a Long Count; dates before the epoch return ok=false
func LongCountFromDate(date time.Time) (LongCount, bool) {
	days := JDNFromTime(date) - Correlation
	if days < 0 {
		return LongCount{}, false
	}
	lc := LongCount{}
	lc.Baktun, days = days/144000, days%144000
	lc.Katun, days = days/7200, days%7200
	lc.Tun, days = days/360, days%360
	lc.Uinal, lc.Kin = days/20, days%20
	return lc, true
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
