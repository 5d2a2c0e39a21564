package service

import (
	payrolldomain "github.com/paydeck/paydeck/internal/payroll/domain"
	"github.com/paydeck/paydeck/internal/taxcode"
	"github.com/paydeck/paydeck/internal/taxyear"
)

type incomeTaxResult struct {
	tax       int64
	taxable   int64
	allowance int64
	bands     []payrolldomain.BandAmount
}

// calculatePAYE computes this period's income tax from the parsed code.
//
// Cumulative codes are taxed on the year-to-date taxable income through the
// full annual band table, minus tax already paid; this keeps year-to-date
// withholding correct across irregular period amounts. Emergency (W1/M1)
// codes are taxed per period against period-equivalent band thresholds.
func (s *Service) calculatePAYE(gross int64, code taxcode.TaxCode, freq payrolldomain.PayFrequency, cumTaxable, cumPaid int64) incomeTaxResult {
	switch code.Special {
	case taxcode.SpecialNT:
		return incomeTaxResult{}
	case taxcode.SpecialBR:
		return flatRate(gross, "basic", 0.20)
	case taxcode.SpecialD0:
		return flatRate(gross, "higher", 0.40)
	case taxcode.SpecialD1:
		return flatRate(gross, "additional", 0.45)
	case taxcode.Special0T:
		// Standard bands over the full gross, no allowance, per period.
		tax, bands := taxByBands(gross, periodizeBands(s.regionBands(code), freq))
		return incomeTaxResult{tax: tax, taxable: gross, bands: bands}
	}

	allowance := payrolldomain.Periodize(code.Allowance, freq)
	taxable := gross - allowance
	if taxable < 0 {
		taxable = 0
	}

	bands := s.regionBands(code)

	if code.Cumulative && !code.Emergency {
		due, bandAmounts := taxByBands(cumTaxable+taxable, bands)
		tax := due - cumPaid
		if tax < 0 {
			tax = 0
		}
		return incomeTaxResult{tax: tax, taxable: taxable, allowance: allowance, bands: bandAmounts}
	}

	tax, bandAmounts := taxByBands(taxable, periodizeBands(bands, freq))
	return incomeTaxResult{tax: tax, taxable: taxable, allowance: allowance, bands: bandAmounts}
}

func (s *Service) regionBands(code taxcode.TaxCode) []taxyear.Band {
	// Welsh codes currently reuse the rest-of-UK rates.
	if code.Scottish {
		return s.tables.BandsScotland
	}
	return s.tables.BandsRestOfUK
}

func flatRate(gross int64, name string, rate float64) incomeTaxResult {
	tax := payrolldomain.RoundHalfUp(float64(gross) * rate)
	return incomeTaxResult{
		tax:     tax,
		taxable: gross,
		bands: []payrolldomain.BandAmount{
			{Name: name, Rate: rate, Taxable: gross, Tax: tax},
		},
	}
}

// taxByBands walks an ascending contiguous band table and taxes the slice of
// taxable income falling into each band, rounding per band before summation.
func taxByBands(taxable int64, bands []taxyear.Band) (int64, []payrolldomain.BandAmount) {
	if taxable <= 0 {
		return 0, nil
	}

	var total int64
	var amounts []payrolldomain.BandAmount

	for _, band := range bands {
		if taxable <= band.Lower {
			break
		}

		upper := band.Upper
		if taxable < upper {
			upper = taxable
		}
		inBand := upper - band.Lower
		if inBand <= 0 {
			continue
		}

		tax := payrolldomain.RoundHalfUp(float64(inBand) * band.Rate)
		total += tax
		amounts = append(amounts, payrolldomain.BandAmount{
			Name:    band.Name,
			Rate:    band.Rate,
			Taxable: inBand,
			Tax:     tax,
		})
	}

	return total, amounts
}

func periodizeBands(bands []taxyear.Band, freq payrolldomain.PayFrequency) []taxyear.Band {
	out := make([]taxyear.Band, len(bands))
	for i, band := range bands {
		out[i] = band
		out[i].Lower = payrolldomain.Periodize(band.Lower, freq)
		if band.Upper != taxyear.NoUpperBound {
			out[i].Upper = payrolldomain.Periodize(band.Upper, freq)
		}
	}
	return out
}
