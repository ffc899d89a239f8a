// Package params defines the user-editable simulation parameter sets, their
// validation, and their conversion to engine wire requests. Percent fields
// hold whole-number percents exactly as entered; the single division by 100
// happens in the Request builders.
package params

import (
	"github.com/mbaillet/immosim/internal/engine"
	"github.com/mbaillet/immosim/pkg/constants"
)

// SimpleParams is the simple-mode parameter set.
type SimpleParams struct {
	Location    string  `json:"location" yaml:"location"`
	Price       float64 `json:"price" yaml:"price"`
	SurfaceSqm  float64 `json:"surface_sqm" yaml:"surfaceSqm"`
	MonthlyRent float64 `json:"monthly_rent" yaml:"monthlyRent"`
	Apport      float64 `json:"apport" yaml:"apport"`

	// LoanRatePct is the loan rate as entered (3.5 means 3.5%). Zero means
	// "not entered" and falls back to the engine default.
	LoanRatePct float64 `json:"loan_rate_pct" yaml:"loanRatePct"`
}

// Request converts the parameter set to the engine wire shape.
func (p SimpleParams) Request() engine.SimpleSimulationRequest {
	loanRate := FromPercent(p.LoanRatePct)
	if p.LoanRatePct == 0 {
		loanRate = constants.DefaultLoanRate
	}

	return engine.SimpleSimulationRequest{
		Location:    p.Location,
		Price:       p.Price,
		SurfaceSqm:  p.SurfaceSqm,
		MonthlyRent: p.MonthlyRent,
		Apport:      p.Apport,
		LoanRate:    loanRate,
	}
}

// ExpertParams is the expert-mode parameter set.
type ExpertParams struct {
	Location   string  `json:"location" yaml:"location"`
	Price      float64 `json:"price" yaml:"price"`
	SurfaceSqm float64 `json:"surface_sqm" yaml:"surfaceSqm"`

	AgencyFeesPct     float64 `json:"agency_fees_pct" yaml:"agencyFeesPct"`
	NotaryFeesPct     float64 `json:"notary_fees_pct" yaml:"notaryFeesPct"`
	InitialRenovation float64 `json:"initial_renovation" yaml:"initialRenovation"`
	FurnishingCosts   float64 `json:"furnishing_costs" yaml:"furnishingCosts"`

	Apport            float64 `json:"apport" yaml:"apport"`
	LoanRatePct       float64 `json:"loan_rate_pct" yaml:"loanRatePct"`
	LoanDurationYears int     `json:"loan_duration_years" yaml:"loanDurationYears"`
	LoanInsurancePct  float64 `json:"loan_insurance_pct" yaml:"loanInsurancePct"`

	Lease         LeaseTerms `json:"-" yaml:"-"`
	RentGrowthPct float64    `json:"rent_growth_pct" yaml:"rentGrowthPct"`

	PropertyTaxYearly  float64 `json:"property_tax_yearly" yaml:"propertyTaxYearly"`
	CondoFeesMonthly   float64 `json:"condo_fees_monthly" yaml:"condoFeesMonthly"`
	PNOInsuranceYearly float64 `json:"pno_insurance_yearly" yaml:"pnoInsuranceYearly"`
	MaintenancePct     float64 `json:"maintenance_pct" yaml:"maintenancePct"`
	ManagementFeePct   float64 `json:"management_fee_pct" yaml:"managementFeePct"`

	TMIPct float64 `json:"tmi_pct" yaml:"tmiPct"`

	HoldingYears      int     `json:"holding_years" yaml:"holdingYears"`
	PropertyGrowthPct float64 `json:"property_growth_pct" yaml:"propertyGrowthPct"`
	ExitFeesPct       float64 `json:"exit_fees_pct" yaml:"exitFeesPct"`
	DiscountRatePct   float64 `json:"discount_rate_pct" yaml:"discountRatePct"`
}

// Request converts the parameter set to the engine wire shape. The wire
// format is flat for engine compatibility; only the active lease branch is
// populated, so the engine never sees stale values from the inactive one.
func (p ExpertParams) Request() engine.ExpertSimulationRequest {
	req := engine.ExpertSimulationRequest{
		Location:           p.Location,
		PropertyPrice:      p.Price,
		SurfaceSqm:         p.SurfaceSqm,
		AgencyFeesPct:      FromPercent(p.AgencyFeesPct),
		NotaryFeesPct:      FromPercent(p.NotaryFeesPct),
		InitialRenovation:  p.InitialRenovation,
		FurnishingCosts:    p.FurnishingCosts,
		Apport:             p.Apport,
		LoanRate:           FromPercent(p.LoanRatePct),
		LoanDurationYears:  p.LoanDurationYears,
		LoanInsuranceRate:  FromPercent(p.LoanInsurancePct),
		LeaseType:          string(p.Lease.Type),
		RentGrowthRate:     FromPercent(p.RentGrowthPct),
		PropertyTaxYearly:  p.PropertyTaxYearly,
		CondoFeesMonthly:   p.CondoFeesMonthly,
		PNOInsuranceYearly: p.PNOInsuranceYearly,
		MaintenancePct:     FromPercent(p.MaintenancePct),
		ManagementFeePct:   FromPercent(p.ManagementFeePct),
		TMI:                FromPercent(p.TMIPct),
		HoldingYears:       p.HoldingYears,
		PropertyGrowthRate: FromPercent(p.PropertyGrowthPct),
		ExitFeesPct:        FromPercent(p.ExitFeesPct),
		DiscountRate:       FromPercent(p.DiscountRatePct),
	}

	switch {
	case p.Lease.ShortLet != nil:
		req.DailyRate = p.Lease.ShortLet.DailyRate
		req.OccupancyRate = FromPercent(p.Lease.ShortLet.OccupancyRatePct)
	case p.Lease.LongTerm != nil:
		req.MonthlyRent = p.Lease.LongTerm.MonthlyRent
		req.VacancyRate = FromPercent(p.Lease.LongTerm.VacancyRatePct)
	}

	return req
}

// ExpertForm is the flat shape a form submits. BuildParams turns it into an
// ExpertParams with the lease variant resolved: fields belonging to the
// inactive lease branch are discarded here, never forwarded.
type ExpertForm struct {
	ExpertParams

	LeaseType        string  `json:"lease_type" yaml:"leaseType"`
	MonthlyRent      float64 `json:"monthly_rent" yaml:"monthlyRent"`
	VacancyRatePct   float64 `json:"vacancy_rate_pct" yaml:"vacancyRatePct"`
	DailyRate        float64 `json:"daily_rate" yaml:"dailyRate"`
	OccupancyRatePct float64 `json:"occupancy_rate_pct" yaml:"occupancyRatePct"`
}

// BuildParams resolves the lease variant and returns the parameter set.
func (f ExpertForm) BuildParams() (ExpertParams, error) {
	leaseType, err := ParseLeaseType(f.LeaseType)
	if err != nil {
		return ExpertParams{}, err
	}

	p := f.ExpertParams
	if leaseType == LeaseShortLet {
		p.Lease = NewShortLetLease(f.DailyRate, f.OccupancyRatePct)
	} else {
		p.Lease, err = NewLongTermLease(leaseType, f.MonthlyRent, f.VacancyRatePct)
		if err != nil {
			return ExpertParams{}, err
		}
	}
	return p, nil
}
