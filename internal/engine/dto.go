package engine

// Wire types exchanged with the calculation engine. All rate fields are
// fractions in both directions (0.08, never 8); all monetary fields are in
// whole currency units.

// Lease type values understood by the engine.
const (
	LeaseFurnished1Yr   = "furnished_1yr"
	LeaseUnfurnished3Yr = "unfurnished_3yr"
	LeaseShortLet       = "airbnb"
)

// SimpleSimulationRequest is the payload for POST /api/v1/simulate/simple.
type SimpleSimulationRequest struct {
	Location    string  `json:"location"`
	Price       float64 `json:"price"`
	SurfaceSqm  float64 `json:"surface_sqm"`
	MonthlyRent float64 `json:"monthly_rent"`
	Apport      float64 `json:"apport"`
	LoanRate    float64 `json:"loan_rate"`
}

// ExpertSimulationRequest is the payload for POST /api/v1/expert/simulate.
// When LeaseType is the short-let type, DailyRate and OccupancyRate are the
// authoritative rental terms; otherwise MonthlyRent and VacancyRate are.
type ExpertSimulationRequest struct {
	Location           string  `json:"location"`
	PropertyPrice      float64 `json:"property_price"`
	SurfaceSqm         float64 `json:"surface_sqm"`
	AgencyFeesPct      float64 `json:"agency_fees_pct"`
	NotaryFeesPct      float64 `json:"notary_fees_pct"`
	InitialRenovation  float64 `json:"initial_renovation"`
	FurnishingCosts    float64 `json:"furnishing_costs"`
	Apport             float64 `json:"apport"`
	LoanRate           float64 `json:"loan_rate"`
	LoanDurationYears  int     `json:"loan_duration_years"`
	LoanInsuranceRate  float64 `json:"loan_insurance_rate"`
	LeaseType          string  `json:"lease_type"`
	MonthlyRent        float64 `json:"monthly_rent"`
	VacancyRate        float64 `json:"vacancy_rate"`
	DailyRate          float64 `json:"daily_rate"`
	OccupancyRate      float64 `json:"occupancy_rate"`
	RentGrowthRate     float64 `json:"rent_growth_rate"`
	PropertyTaxYearly  float64 `json:"property_tax_yearly"`
	CondoFeesMonthly   float64 `json:"condo_fees_monthly"`
	PNOInsuranceYearly float64 `json:"pno_insurance_yearly"`
	MaintenancePct     float64 `json:"maintenance_pct"`
	ManagementFeePct   float64 `json:"management_fee_pct"`
	TMI                float64 `json:"tmi"`
	HoldingYears       int     `json:"holding_years"`
	PropertyGrowthRate float64 `json:"property_growth_rate"`
	ExitFeesPct        float64 `json:"exit_fees_pct"`
	DiscountRate       float64 `json:"discount_rate"`
}

// Metrics holds the headline investment metrics returned by the engine.
type Metrics struct {
	IRR               float64 `json:"irr"`
	NPV               float64 `json:"npv"`
	MonthlyCashflow   float64 `json:"monthly_cashflow"`
	CashOnCash        float64 `json:"cash_on_cash"`
	EquityMultiple    float64 `json:"equity_multiple"`
	ExitPropertyValue float64 `json:"exit_property_value"`
	NetExitProceeds   float64 `json:"net_exit_proceeds"`
	CapitalGainsTax   float64 `json:"capital_gains_tax"`
	CapitalGain       float64 `json:"capital_gain"`
	RemainingLoan     float64 `json:"remaining_loan"`
	SellingCosts      float64 `json:"selling_costs"`
}

// YearlyCashFlow is one entry of the per-year cash flow sequence.
// Cumulative is the running sum of NetChange up to and including Year.
type YearlyCashFlow struct {
	Year       int     `json:"year"`
	NetChange  float64 `json:"net_change"`
	Cumulative float64 `json:"cumulative"`
}

// Alert classification values.
const (
	AlertSuccess = "success"
	AlertWarning = "warning"
	AlertError   = "error"
)

// Alert is a localized profitability alert. Engine order is preserved.
type Alert struct {
	Type      string `json:"type"`
	Icon      string `json:"icon"`
	MessageFR string `json:"message_fr"`
	MessageEN string `json:"message_en"`
}

// FiscalScenario is the tax outcome under one regime.
type FiscalScenario struct {
	Regime        string  `json:"regime"`
	GrossRevenue  float64 `json:"gross_revenue"`
	TaxableIncome float64 `json:"taxable_income"`
	TotalTax      float64 `json:"total_tax"`
	EffectiveRate float64 `json:"effective_rate"`
}

// FiscalComparison compares the micro and réel regimes.
type FiscalComparison struct {
	Recommended   string         `json:"recommended"`
	Reason        string         `json:"reason"`
	AnnualSavings float64        `json:"annual_savings"`
	Micro         FiscalScenario `json:"micro"`
	Reel          FiscalScenario `json:"reel"`
}

// SimulationResponse is the engine reply for a simple simulation. Optional
// sections are nil when the engine omits them, which is not an error.
type SimulationResponse struct {
	Success         bool              `json:"success"`
	Metrics         *Metrics          `json:"metrics,omitempty"`
	Fiscal          *FiscalComparison `json:"fiscal,omitempty"`
	YearlyCashflows []YearlyCashFlow  `json:"yearly_cashflows,omitempty"`
	Alerts          []Alert           `json:"alerts,omitempty"`
	Error           string            `json:"error,omitempty"`
}

// ExpertSimulationResponse adds the LMP status section to the simple reply.
type ExpertSimulationResponse struct {
	SimulationResponse
	LMPStatus *LMPStatus `json:"lmp_status,omitempty"`
}

// LMPStatus reports the professional furnished-rental qualification. The
// engine historically returned implications under three different keys;
// normalize() collapses them once at the API boundary so downstream code
// never branches on shape.
type LMPStatus struct {
	IsLMP               bool    `json:"is_lmp"`
	RevenueThresholdMet bool    `json:"revenue_threshold_met"`
	IncomeConditionMet  bool    `json:"income_condition_met"`
	AnnualRevenue       float64 `json:"annual_revenue"`
	Threshold           float64 `json:"threshold"`

	Implications   map[string]string `json:"implications,omitempty"`
	ImplicationsFR map[string]string `json:"implications_fr,omitempty"`
	ImplicationsEN map[string]string `json:"implications_en,omitempty"`
}

func (s *LMPStatus) normalize() {
	if s == nil {
		return
	}
	if s.ImplicationsFR == nil {
		s.ImplicationsFR = s.Implications
	}
	if s.ImplicationsFR == nil {
		s.ImplicationsFR = map[string]string{}
	}
	if s.ImplicationsEN == nil {
		s.ImplicationsEN = s.ImplicationsFR
	}
	s.Implications = nil
}

// FiscalComparisonRequest is the payload for POST /api/v1/expert/fiscal/compare.
type FiscalComparisonRequest struct {
	GrossRevenue       float64 `json:"gross_revenue"`
	DeductibleExpenses float64 `json:"deductible_expenses,omitempty"`
	Depreciation       float64 `json:"depreciation,omitempty"`
	LeaseType          string  `json:"lease_type,omitempty"`
	TMI                float64 `json:"tmi,omitempty"`
	HoldingYears       int     `json:"holding_years,omitempty"`
}

// FiscalComparisonResponse carries both regime scenarios plus localized
// recommendation reasons.
type FiscalComparisonResponse struct {
	Recommended   string         `json:"recommended"`
	ReasonFR      string         `json:"reason_fr"`
	ReasonEN      string         `json:"reason_en"`
	AnnualSavings float64        `json:"annual_savings"`
	TotalSavings  float64        `json:"total_savings"`
	Micro         FiscalScenario `json:"micro"`
	Reel          FiscalScenario `json:"reel"`
}

// LMPCheckRequest is the payload for POST /api/v1/expert/fiscal/lmp-check.
type LMPCheckRequest struct {
	AnnualRevenue float64 `json:"annual_revenue"`
	OtherIncome   float64 `json:"other_income,omitempty"`
}

// SensitivityRequest is the payload for POST /api/v1/expert/sensitivity.
// RangeMin and RangeMax are offsets relative to the base value of Variable.
type SensitivityRequest struct {
	BaseParams ExpertSimulationRequest `json:"base_params"`
	Variable   string                  `json:"variable"`
	RangeMin   float64                 `json:"range_min,omitempty"`
	RangeMax   float64                 `json:"range_max,omitempty"`
	Steps      int                     `json:"steps,omitempty"`
}

// SensitivityPoint pairs one swept input value with the metrics recomputed
// at that value.
type SensitivityPoint struct {
	Value           float64 `json:"value"`
	IRR             float64 `json:"irr"`
	NPV             float64 `json:"npv"`
	MonthlyCashflow float64 `json:"monthly_cashflow"`
}

// SensitivityResponse carries the base value plus points ordered by swept
// value ascending.
type SensitivityResponse struct {
	Success   bool               `json:"success"`
	Variable  string             `json:"variable,omitempty"`
	BaseValue float64            `json:"base_value,omitempty"`
	Points    []SensitivityPoint `json:"points,omitempty"`
	Error     string             `json:"error,omitempty"`
}

// LocationDefaults maps a location to its pre-fill values. Zero fields mean
// the engine has no default for that field.
type LocationDefaults struct {
	NotaryPct             float64 `json:"notary_pct"`
	PropertyTaxPerSqm     float64 `json:"property_tax_per_sqm"`
	CondoFeesPerSqm       float64 `json:"condo_fees_per_sqm"`
	PNOInsurance          float64 `json:"pno_insurance"`
	VacancyRate           float64 `json:"vacancy_rate"`
	PriceGrowth           float64 `json:"price_growth"`
	RentPerSqmFurnished   float64 `json:"rent_per_sqm_furnished"`
	RentPerSqmUnfurnished float64 `json:"rent_per_sqm_unfurnished"`
	ManagementFeePct      float64 `json:"management_fee_pct"`

	Error string `json:"error,omitempty"`
}
