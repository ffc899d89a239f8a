package params

import "github.com/mbaillet/immosim/internal/engine"

// ApplyLocationDefaults merges location defaults into an expert parameter
// set after a location switch. Only fields with a defined (non-zero) default
// overwrite the current value. They overwrite it even if the user had edited
// the field, so the last selected location always wins.
func ApplyLocationDefaults(p *ExpertParams, d engine.LocationDefaults) {
	if d.NotaryPct != 0 {
		p.NotaryFeesPct = ToPercent(d.NotaryPct)
	}
	if d.PropertyTaxPerSqm != 0 && p.SurfaceSqm > 0 {
		p.PropertyTaxYearly = d.PropertyTaxPerSqm * p.SurfaceSqm
	}
	if d.CondoFeesPerSqm != 0 && p.SurfaceSqm > 0 {
		p.CondoFeesMonthly = d.CondoFeesPerSqm * p.SurfaceSqm
	}
	if d.PNOInsurance != 0 {
		p.PNOInsuranceYearly = d.PNOInsurance
	}
	if d.VacancyRate != 0 && p.Lease.LongTerm != nil {
		p.Lease.LongTerm.VacancyRatePct = ToPercent(d.VacancyRate)
	}
	if d.PriceGrowth != 0 {
		p.PropertyGrowthPct = ToPercent(d.PriceGrowth)
	}
	if d.ManagementFeePct != 0 {
		p.ManagementFeePct = ToPercent(d.ManagementFeePct)
	}
}
