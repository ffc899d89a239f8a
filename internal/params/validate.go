package params

import (
	"fmt"
	"math"

	"github.com/mbaillet/immosim/pkg/constants"
)

// Validate checks that a simple parameter set is transmittable. It returns
// hard errors for payloads the engine would reject and warnings for values
// that are legal but suspicious, in the same spirit as configuration
// validation: warnings never block a submission.
func (p SimpleParams) Validate() ([]string, error) {
	if err := checkFinite(map[string]float64{
		"price":         p.Price,
		"surface_sqm":   p.SurfaceSqm,
		"monthly_rent":  p.MonthlyRent,
		"apport":        p.Apport,
		"loan_rate_pct": p.LoanRatePct,
	}); err != nil {
		return nil, err
	}

	if p.Price <= 0 {
		return nil, fmt.Errorf("price must be positive, got %v", p.Price)
	}
	if p.SurfaceSqm <= 0 {
		return nil, fmt.Errorf("surface_sqm must be positive, got %v", p.SurfaceSqm)
	}
	if p.MonthlyRent <= 0 {
		return nil, fmt.Errorf("monthly_rent must be positive, got %v", p.MonthlyRent)
	}
	if p.Apport < 0 {
		return nil, fmt.Errorf("apport must not be negative, got %v", p.Apport)
	}
	if p.LoanRatePct < 0 || p.LoanRatePct > 15 {
		return nil, fmt.Errorf("loan_rate_pct must be within [0, 15], got %v", p.LoanRatePct)
	}

	var warnings []string
	if p.Apport > p.Price {
		warnings = append(warnings, "down payment exceeds the property price")
	}
	if yearlyYield := p.MonthlyRent * constants.MonthsPerYear / p.Price; yearlyYield < 0.02 {
		warnings = append(warnings, fmt.Sprintf("gross yield %.1f%% is unusually low", yearlyYield*100))
	}
	return warnings, nil
}

// Validate checks that an expert parameter set is transmittable.
func (p ExpertParams) Validate() ([]string, error) {
	fields := map[string]float64{
		"price":                p.Price,
		"surface_sqm":          p.SurfaceSqm,
		"agency_fees_pct":      p.AgencyFeesPct,
		"notary_fees_pct":      p.NotaryFeesPct,
		"initial_renovation":   p.InitialRenovation,
		"furnishing_costs":     p.FurnishingCosts,
		"apport":               p.Apport,
		"loan_rate_pct":        p.LoanRatePct,
		"loan_insurance_pct":   p.LoanInsurancePct,
		"rent_growth_pct":      p.RentGrowthPct,
		"property_tax_yearly":  p.PropertyTaxYearly,
		"condo_fees_monthly":   p.CondoFeesMonthly,
		"pno_insurance_yearly": p.PNOInsuranceYearly,
		"maintenance_pct":      p.MaintenancePct,
		"management_fee_pct":   p.ManagementFeePct,
		"tmi_pct":              p.TMIPct,
		"property_growth_pct":  p.PropertyGrowthPct,
		"exit_fees_pct":        p.ExitFeesPct,
		"discount_rate_pct":    p.DiscountRatePct,
	}
	if p.Lease.LongTerm != nil {
		fields["monthly_rent"] = p.Lease.LongTerm.MonthlyRent
		fields["vacancy_rate_pct"] = p.Lease.LongTerm.VacancyRatePct
	}
	if p.Lease.ShortLet != nil {
		fields["daily_rate"] = p.Lease.ShortLet.DailyRate
		fields["occupancy_rate_pct"] = p.Lease.ShortLet.OccupancyRatePct
	}
	if err := checkFinite(fields); err != nil {
		return nil, err
	}

	if err := p.Lease.validate(); err != nil {
		return nil, err
	}
	if p.Price <= 0 {
		return nil, fmt.Errorf("price must be positive, got %v", p.Price)
	}
	if p.SurfaceSqm <= 0 {
		return nil, fmt.Errorf("surface_sqm must be positive, got %v", p.SurfaceSqm)
	}
	if p.HoldingYears < 1 {
		return nil, fmt.Errorf("holding_years must be a positive integer, got %d", p.HoldingYears)
	}
	if p.LoanDurationYears < 1 {
		return nil, fmt.Errorf("loan_duration_years must be a positive integer, got %d", p.LoanDurationYears)
	}
	for name, value := range map[string]float64{
		"agency_fees_pct":    p.AgencyFeesPct,
		"notary_fees_pct":    p.NotaryFeesPct,
		"loan_insurance_pct": p.LoanInsurancePct,
		"maintenance_pct":    p.MaintenancePct,
		"management_fee_pct": p.ManagementFeePct,
		"tmi_pct":            p.TMIPct,
		"exit_fees_pct":      p.ExitFeesPct,
	} {
		if value < 0 || value > 100 {
			return nil, fmt.Errorf("%s must be within [0, 100], got %v", name, value)
		}
	}
	for name, value := range map[string]float64{
		"apport":               p.Apport,
		"initial_renovation":   p.InitialRenovation,
		"furnishing_costs":     p.FurnishingCosts,
		"property_tax_yearly":  p.PropertyTaxYearly,
		"condo_fees_monthly":   p.CondoFeesMonthly,
		"pno_insurance_yearly": p.PNOInsuranceYearly,
	} {
		if value < 0 {
			return nil, fmt.Errorf("%s must not be negative, got %v", name, value)
		}
	}

	var warnings []string
	if p.Lease.LongTerm != nil && p.Lease.LongTerm.VacancyRatePct > 30 {
		warnings = append(warnings, fmt.Sprintf("vacancy rate %.0f%% is unusually high", p.Lease.LongTerm.VacancyRatePct))
	}
	if p.Lease.ShortLet != nil && p.Lease.ShortLet.OccupancyRatePct < 30 {
		warnings = append(warnings, fmt.Sprintf("occupancy rate %.0f%% is unusually low", p.Lease.ShortLet.OccupancyRatePct))
	}
	if p.TMIPct == 0 {
		warnings = append(warnings, "marginal tax rate is zero; fiscal comparison will be meaningless")
	}
	if p.LoanRatePct > 10 {
		warnings = append(warnings, fmt.Sprintf("loan rate %.1f%% is unusually high", p.LoanRatePct))
	}
	return warnings, nil
}

func checkFinite(fields map[string]float64) error {
	for name, value := range fields {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return fmt.Errorf("%s must be a finite number", name)
		}
	}
	return nil
}
