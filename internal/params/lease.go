package params

import "fmt"

// LeaseType enumerates the supported rental arrangements.
type LeaseType string

// Lease types. The values match the engine wire contract.
const (
	LeaseFurnished1Yr   LeaseType = "furnished_1yr"
	LeaseUnfurnished3Yr LeaseType = "unfurnished_3yr"
	LeaseShortLet       LeaseType = "airbnb"
)

// ParseLeaseType validates a lease-type string from a form.
func ParseLeaseType(s string) (LeaseType, error) {
	switch LeaseType(s) {
	case LeaseFurnished1Yr, LeaseUnfurnished3Yr, LeaseShortLet:
		return LeaseType(s), nil
	}
	return "", fmt.Errorf("unknown lease type %q", s)
}

// LongTermTerms are the rental terms for yearly leases. Percent fields hold
// UI-entered whole percents (4 means 4%).
type LongTermTerms struct {
	MonthlyRent    float64
	VacancyRatePct float64
}

// ShortLetTerms are the rental terms for short-let rentals.
type ShortLetTerms struct {
	DailyRate        float64
	OccupancyRatePct float64
}

// LeaseTerms is a tagged variant: exactly one payload is set, selected by
// Type. There are no ignored inactive fields; whichever branch a form filled
// for the other lease type is dropped when the variant is built.
type LeaseTerms struct {
	Type     LeaseType
	LongTerm *LongTermTerms
	ShortLet *ShortLetTerms
}

// NewLongTermLease builds lease terms for a yearly (furnished or
// unfurnished) lease.
func NewLongTermLease(typ LeaseType, monthlyRent, vacancyRatePct float64) (LeaseTerms, error) {
	if typ != LeaseFurnished1Yr && typ != LeaseUnfurnished3Yr {
		return LeaseTerms{}, fmt.Errorf("lease type %q does not take long-term terms", typ)
	}
	return LeaseTerms{
		Type:     typ,
		LongTerm: &LongTermTerms{MonthlyRent: monthlyRent, VacancyRatePct: vacancyRatePct},
	}, nil
}

// NewShortLetLease builds lease terms for a short-let rental.
func NewShortLetLease(dailyRate, occupancyRatePct float64) LeaseTerms {
	return LeaseTerms{
		Type:     LeaseShortLet,
		ShortLet: &ShortLetTerms{DailyRate: dailyRate, OccupancyRatePct: occupancyRatePct},
	}
}

func (l LeaseTerms) validate() error {
	switch l.Type {
	case LeaseFurnished1Yr, LeaseUnfurnished3Yr:
		if l.LongTerm == nil || l.ShortLet != nil {
			return fmt.Errorf("lease type %q requires exactly the long-term payload", l.Type)
		}
	case LeaseShortLet:
		if l.ShortLet == nil || l.LongTerm != nil {
			return fmt.Errorf("lease type %q requires exactly the short-let payload", l.Type)
		}
	default:
		return fmt.Errorf("unknown lease type %q", l.Type)
	}
	return nil
}
