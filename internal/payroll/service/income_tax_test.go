package service

import (
	"testing"

	payrolldomain "github.com/paydeck/paydeck/internal/payroll/domain"
	"github.com/paydeck/paydeck/internal/taxyear"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc := NewService(Params{Log: zap.NewNop(), Tables: taxyear.Current()})
	impl, ok := svc.(*Service)
	require.True(t, ok)
	return impl
}

func calculate(t *testing.T, svc *Service, in payrolldomain.CalculationInput) *payrolldomain.CalculationResult {
	t.Helper()
	result, err := svc.Calculate(in)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func monthlyInput(gross int64, code string) payrolldomain.CalculationInput {
	return payrolldomain.CalculationInput{
		GrossPay:     gross,
		TaxCode:      code,
		PayFrequency: payrolldomain.FrequencyMonthly,
		PeriodNumber: 1,
		NICategory:   payrolldomain.NICategoryStandard,
	}
}

func TestPAYE_ZeroBelowAllowance(t *testing.T) {
	svc := newTestService(t)

	// Period allowance for 1257L monthly is 104,750p.
	for _, gross := range []int64{0, 50_000, 104_750} {
		result := calculate(t, svc, monthlyInput(gross, "1257L"))
		assert.Zero(t, result.IncomeTax, "gross=%d", gross)
		assert.Zero(t, result.TaxableIncome, "gross=%d", gross)
	}
}

func TestPAYE_SpecialCodes(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		code  string
		gross int64
		want  int64
	}{
		{"BR", 200_000, 40_000},
		{"BR", 123_457, 24_691}, // 24691.4 rounds down
		{"D0", 200_000, 80_000},
		{"D1", 200_000, 90_000},
		{"NT", 200_000, 0},
		{"0T", 300_000, 60_000}, // all within the periodized basic band
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			result := calculate(t, svc, monthlyInput(tt.gross, tt.code))
			assert.Equal(t, tt.want, result.IncomeTax)
		})
	}
}

func TestPAYE_BasicRateCumulative(t *testing.T) {
	svc := newTestService(t)

	result := calculate(t, svc, monthlyInput(300_000, "1257L"))

	// taxable = 300,000 - 104,750 = 195,250, all basic rate.
	assert.Equal(t, int64(195_250), result.TaxableIncome)
	assert.Equal(t, int64(104_750), result.PersonalAllowance)
	assert.Equal(t, int64(39_050), result.IncomeTax)
	require.Len(t, result.Bands, 1)
	assert.Equal(t, "basic", result.Bands[0].Name)
}

func TestPAYE_CumulativeThreading(t *testing.T) {
	svc := newTestService(t)

	first := calculate(t, svc, monthlyInput(300_000, "1257L"))

	second := monthlyInput(300_000, "1257L")
	second.PeriodNumber = 2
	second.CumulativeTaxableIncome = first.NewCumulativeTaxableIncome
	second.CumulativeTaxPaid = first.NewCumulativeTaxPaid
	result := calculate(t, svc, second)

	assert.Equal(t, 2*first.TaxableIncome, result.NewCumulativeTaxableIncome)
	assert.GreaterOrEqual(t, result.NewCumulativeTaxPaid, first.NewCumulativeTaxPaid)
	// Identical gross both periods: identical tax.
	assert.Equal(t, first.IncomeTax, result.IncomeTax)
}

func TestPAYE_CumulativeRefundClampsAtZero(t *testing.T) {
	svc := newTestService(t)

	// Prior periods paid more tax than the cumulative income warrants; the
	// engine withholds nothing rather than refunding.
	in := monthlyInput(110_000, "1257L")
	in.PeriodNumber = 3
	in.CumulativeTaxableIncome = 100_000
	in.CumulativeTaxPaid = 50_000
	result := calculate(t, svc, in)

	assert.Zero(t, result.IncomeTax)
	assert.Equal(t, int64(50_000), result.NewCumulativeTaxPaid)
}

func TestPAYE_KCodeIncreasesTaxable(t *testing.T) {
	svc := newTestService(t)

	result := calculate(t, svc, monthlyInput(200_000, "K475"))

	// Periodized K allowance is -39,583; taxable = 200,000 + 39,583.
	assert.Equal(t, int64(239_583), result.TaxableIncome)
	assert.Equal(t, int64(-39_583), result.PersonalAllowance)
	assert.Equal(t, int64(47_917), result.IncomeTax) // 239,583 * 0.20 = 47,916.6
}

func TestPAYE_EmergencyCodeIgnoresCumulatives(t *testing.T) {
	svc := newTestService(t)

	in := monthlyInput(300_000, "1257L W1")
	in.PeriodNumber = 5
	in.CumulativeTaxableIncome = 40_000_000
	in.CumulativeTaxPaid = 10_000_000
	result := calculate(t, svc, in)

	// Same as a period-1 standard calculation within the basic band.
	assert.Equal(t, int64(39_050), result.IncomeTax)
}

func TestPAYE_ScottishBands(t *testing.T) {
	svc := newTestService(t)

	ruk := calculate(t, svc, monthlyInput(300_000, "1257L"))
	sco := calculate(t, svc, monthlyInput(300_000, "S1257L"))

	// Same taxable income, different band tables.
	assert.Equal(t, ruk.TaxableIncome, sco.TaxableIncome)
	assert.NotEqual(t, ruk.IncomeTax, sco.IncomeTax)
	// starter 19% on 282,700 + basic 20% on the rest (195,250 cumulative is
	// split 2,827.00 @19 within... full taxable sits across starter/basic).
	assert.Greater(t, sco.IncomeTax, int64(0))
}

func TestPAYE_HigherRateCrossedCumulatively(t *testing.T) {
	svc := newTestService(t)

	// One very large period pushes cumulative taxable past the basic band.
	result := calculate(t, svc, monthlyInput(5_000_000, "1257L"))

	// taxable = 5,000,000 - 104,750 = 4,895,250:
	// basic 3,770,000 @20% = 754,000; higher 1,125,250 @40% = 450,100.
	assert.Equal(t, int64(4_895_250), result.TaxableIncome)
	assert.Equal(t, int64(1_204_100), result.IncomeTax)
	require.Len(t, result.Bands, 2)
	assert.Equal(t, "higher", result.Bands[1].Name)
}
