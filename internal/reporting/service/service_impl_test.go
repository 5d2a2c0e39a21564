package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	payrundomain "github.com/paydeck/paydeck/internal/payrun/domain"
	reportingdomain "github.com/paydeck/paydeck/internal/reporting/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (reportingdomain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&payrundomain.PayRun{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return NewService(Params{Log: zap.NewNop(), DB: db}), db, node
}

func seedRun(t *testing.T, db *gorm.DB, node *snowflake.Node, period int, tax, eeNI, erNI, studentLoan int64) {
	t.Helper()

	run := &payrundomain.PayRun{
		ID:           node.Generate(),
		EmployeeID:   node.Generate(),
		TaxYear:      "2025-26",
		PeriodNumber: period,
		GrossPay:     300_000,
		IncomeTax:    tax,
		EmployeeNI:   eeNI,
		EmployerNI:   erNI,
		StudentLoan:  studentLoan,
		NetPay:       300_000 - tax - eeNI - studentLoan,
	}
	require.NoError(t, db.Create(run).Error)
}

func TestPeriodSummaryAggregates(t *testing.T) {
	svc, db, node := newTestService(t)

	seedRun(t, db, node, 1, 39_050, 15_620, 38_750, 0)
	seedRun(t, db, node, 1, 24_691, 9_000, 30_000, 7_451)
	seedRun(t, db, node, 2, 39_050, 15_620, 38_750, 0)

	summary, err := svc.PeriodSummary(context.Background(), "2025-26", 1)
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.RunCount)
	assert.Equal(t, int64(600_000), summary.GrossPay)
	assert.Equal(t, int64(63_741), summary.IncomeTax)
	assert.Equal(t, int64(24_620), summary.EmployeeNI)
	assert.Equal(t, int64(68_750), summary.EmployerNI)
	assert.Equal(t, int64(7_451), summary.StudentLoan)
	assert.Equal(t, int64(63_741+24_620+68_750+7_451), summary.HMRCLiability)
}

func TestPeriodSummaryEmptyPeriod(t *testing.T) {
	svc, _, _ := newTestService(t)

	summary, err := svc.PeriodSummary(context.Background(), "2025-26", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.RunCount)
	assert.Equal(t, int64(0), summary.HMRCLiability)
}

func TestPeriodSummaryPaymentDeadline(t *testing.T) {
	svc, _, _ := newTestService(t)

	// Period 1 covers April 2025; PAYE is due electronically by 22 May.
	summary, err := svc.PeriodSummary(context.Background(), "2025-26", 1)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.May, 22, 0, 0, 0, 0, time.UTC), summary.PaymentDeadline)

	// Period 10 covers January 2026.
	summary, err = svc.PeriodSummary(context.Background(), "2025-26", 10)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.February, 22, 0, 0, 0, 0, time.UTC), summary.PaymentDeadline)
}

func TestPeriodSummaryRejectsBadInput(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.PeriodSummary(context.Background(), "2025/26", 1)
	assert.ErrorIs(t, err, reportingdomain.ErrInvalidTaxYear)

	_, err = svc.PeriodSummary(context.Background(), "2025-26", 0)
	assert.ErrorIs(t, err, reportingdomain.ErrInvalidPeriod)

	_, err = svc.PeriodSummary(context.Background(), "2025-26", 53)
	assert.ErrorIs(t, err, reportingdomain.ErrInvalidPeriod)
}
