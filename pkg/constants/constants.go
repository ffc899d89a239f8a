// Package constants provides shared constants for the immosim application.
package constants

// Financial defaults used when the configuration does not override them.
const (
	// DefaultRiskFreeRate is the risk-free rate used for investment
	// quality classification (fraction, not percent).
	DefaultRiskFreeRate = 0.035

	// DefaultDiscountRate is the discount rate used for investment
	// quality classification (fraction, not percent).
	DefaultDiscountRate = 0.05

	// DefaultLoanRate is the loan rate assumed for simple-mode
	// simulations when none is entered.
	DefaultLoanRate = 0.035

	// SavingsHighlightThreshold is the annual fiscal savings (in currency
	// units) below which a regime recommendation is not highlighted.
	SavingsHighlightThreshold = 100.0

	// MonthsPerYear is the number of months in a year.
	MonthsPerYear = 12
)

// Sensitivity sweep defaults.
const (
	// SensitivitySteps is the number of points per sweep.
	SensitivitySteps = 7

	// LoanRateSweepDelta is the half-width of the loan-rate sweep
	// (fraction, +-1.5 percentage points around the base value).
	LoanRateSweepDelta = 0.015

	// GrowthSweepDelta is the half-width of the property-growth sweep
	// (fraction, +-2 percentage points around the base value).
	GrowthSweepDelta = 0.02
)

// Sensitivity sweep variables understood by the engine.
const (
	// VariableLoanRate sweeps the loan interest rate.
	VariableLoanRate = "loan_rate"

	// VariablePropertyGrowth sweeps the property value growth rate.
	VariablePropertyGrowth = "property_growth_rate"
)

// Engine endpoint constants.
const (
	// DefaultEngineURL is the calculation engine base URL used when no
	// configuration or environment override is present.
	DefaultEngineURL = "http://localhost:8000"

	// EngineURLEnvVar overrides the engine base URL.
	EngineURLEnvVar = "IMMOSIM_ENGINE_URL"
)

// Configuration file constants.
const (
	// DefaultConfigFile is the default configuration file name.
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name.
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults.
const (
	// DefaultServerAddress is the default HTTP listen address for the BFF server.
	DefaultServerAddress = ":8080"

	// DefaultLocationCacheTTLSeconds is how long location data is cached.
	DefaultLocationCacheTTLSeconds = 3600
)

// Output format constants.
const (
	// OutputFormatPretty is the human-readable output format.
	OutputFormatPretty = "pretty"

	// OutputFormatJSON is the raw JSON output format.
	OutputFormatJSON = "json"
)
