package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnualizePeriodizeRoundTrip(t *testing.T) {
	for _, x := range []int64{0, 1, 104_750, 300_000, 1_257_000} {
		for _, freq := range []PayFrequency{FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly} {
			assert.Equal(t, x, Periodize(Annualize(x, freq), freq), "x=%d freq=%s", x, freq)
		}
	}
}

func TestPeriodize(t *testing.T) {
	assert.Equal(t, int64(104_750), Periodize(1_257_000, FrequencyMonthly))
	assert.Equal(t, int64(24_173), Periodize(1_257_000, FrequencyWeekly)) // 24,173.08 rounds down
	assert.Equal(t, int64(41_667), Periodize(500_000, FrequencyMonthly))  // 41,666.67 rounds up
	assert.Equal(t, int64(-104_750), Periodize(-1_257_000, FrequencyMonthly))
	assert.Zero(t, Periodize(1_000_000, PayFrequency("unknown")))
}

func TestPayFrequencyPeriods(t *testing.T) {
	assert.Equal(t, int64(52), FrequencyWeekly.PeriodsPerYear())
	assert.Equal(t, int64(26), FrequencyBiweekly.PeriodsPerYear())
	assert.Equal(t, int64(12), FrequencyMonthly.PeriodsPerYear())
	assert.False(t, PayFrequency("quarterly").Valid())
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, int64(2), RoundHalfUp(1.5))
	assert.Equal(t, int64(1), RoundHalfUp(1.49))
	assert.Equal(t, int64(0), RoundHalfUp(0.4))
}
