package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestTzolkinFromDate_Reference(t *testing.T) {
	tz := TzolkinFromDate(date(2012, time.December, 21))
	assert.Equal(t, 4, tz.Tone)
	assert.Equal(t, 20, tz.SignIndex)
	assert.Equal(t, "Ajpu", tz.SignName)

	next := TzolkinFromDate(date(2012, time.December, 22))
	assert.Equal(t, 5, next.Tone)
	assert.Equal(t, 1, next.SignIndex)
}

func TestTzolkinFromDate_RangesAndCycle(t *testing.T) {
	start := date(1900, time.January, 1)
	for i := 0; i < 3*260; i++ {
		d := start.AddDate(0, 0, i)
		tz := TzolkinFromDate(d)
		require.GreaterOrEqual(t, tz.Tone, 1)
		require.LessOrEqual(t, tz.Tone, 13)
		require.GreaterOrEqual(t, tz.SignIndex, 1)
		require.LessOrEqual(t, tz.SignIndex, 20)

		again := TzolkinFromDate(d.AddDate(0, 0, 260))
		require.Equal(t, tz.Tone, again.Tone)
		require.Equal(t, tz.SignIndex, again.SignIndex)
	}
}

func TestTzolkinFromDate_BeforeReference(t *testing.T) {
	tz := TzolkinFromDate(date(2012, time.December, 20))
	assert.Equal(t, 3, tz.Tone)
	assert.Equal(t, 19, tz.SignIndex)
}

func TestTzolkinFromDate_IgnoresClockTime(t *testing.T) {
	morning := time.Date(2012, time.December, 21, 0, 1, 0, 0, time.UTC)
	night := time.Date(2012, time.December, 21, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, TzolkinFromDate(morning), TzolkinFromDate(night))
}

func TestJDN_KnownValues(t *testing.T) {
	assert.Equal(t, 2451545, JDN(2000, time.January, 1))
	assert.Equal(t, 2456283, JDN(2012, time.December, 21))
	assert.Equal(t, Correlation, JDN(-3113, time.August, 11))
}

func TestLongCount(t *testing.T) {
	lc, ok := LongCountFromDate(date(2012, time.December, 21))
	require.True(t, ok)
	assert.Equal(t, "13.0.0.0.0", lc.String())

	lc, ok = LongCountFromDate(date(2012, time.December, 22))
	require.True(t, ok)
	assert.Equal(t, LongCount{13, 0, 0, 0, 1}, lc)

	_, ok = LongCountFromDate(date(-3200, time.January, 1))
	assert.False(t, ok)
}

func TestSignName_Localized(t *testing.T) {
	assert.Equal(t, "Ajpu", SignName(20))
	assert.Equal(t, "Sun", SignName(20, language.English))
	assert.Equal(t, "Sun", SignName(20, language.BritishEnglish))
	assert.Equal(t, "Солнце", SignName(20, language.Russian))
	assert.Equal(t, "Imox", SignName(21))
	assert.Equal(t, "Imox", SignName(1, language.Japanese))
	assert.Equal(t, "Cocodrilo", SignName(1, ParseLanguage("es-MX")))
	assert.Equal(t, language.Und, ParseLanguage("???"))
}
