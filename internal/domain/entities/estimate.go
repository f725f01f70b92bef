package entities

import "time"

// EstimateStatus represents the lifecycle of a pricing estimate.
//
// Domain notes:
//   - Only a draft estimate accepts structural or line-item mutations.
//   - Allowed transitions are owned by the estimate use case; the entity
//     only knows whether its current status permits edits.

type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusSent     EstimateStatus = "sent"
	EstimateStatusFinal    EstimateStatus = "final"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusRejected EstimateStatus = "rejected"
)

// Mutable reports whether line items, structure, and milestones may still
// be edited. Everything outside draft is frozen.
func (s EstimateStatus) Mutable() bool {
	return s == EstimateStatusDraft
}

type PricingType string

const (
	PricingTypeHourly PricingType = "hourly"
	PricingTypeFixed  PricingType = "fixed"
)

type EstimateType string

const (
	// EstimateTypeDetailed prices the estimate from its line items.
	EstimateTypeDetailed EstimateType = "detailed"
	// EstimateTypeBlock prices the estimate as flat hours/dollars.
	EstimateTypeBlock EstimateType = "block"
)

type ReferralFeeType string

const (
	ReferralFeeNone       ReferralFeeType = "none"
	ReferralFeePercentage ReferralFeeType = "percentage"
	ReferralFeeFlat       ReferralFeeType = "flat"
)

// Multipliers holds the per-estimate risk multiplier configuration.
// Each value is a ratio >= 1.0. The small/high buckets are implicitly 1.0.
type Multipliers struct {
	SizeMedium       float64 `json:"size_medium"`
	SizeLarge        float64 `json:"size_large"`
	ComplexityMedium float64 `json:"complexity_medium"`
	ComplexityLarge  float64 `json:"complexity_large"`
	ConfidenceMedium float64 `json:"confidence_medium"`
	ConfidenceLow    float64 `json:"confidence_low"`
}

// DefaultMultipliers returns the product-default risk multiplier table.
func DefaultMultipliers() Multipliers {
	return Multipliers{
		SizeMedium:       1.05,
		SizeLarge:        1.10,
		ComplexityMedium: 1.05,
		ComplexityLarge:  1.10,
		ConfidenceMedium: 1.10,
		ConfidenceLow:    1.20,
	}
}

// Size returns the multiplier for a size rating (small -> 1.0).
func (m Multipliers) Size(r Rating) float64 {
	switch r {
	case RatingMedium:
		return m.SizeMedium
	case RatingLarge:
		return m.SizeLarge
	default:
		return 1.0
	}
}

// Complexity returns the multiplier for a complexity rating (small -> 1.0).
func (m Multipliers) Complexity(r Rating) float64 {
	switch r {
	case RatingMedium:
		return m.ComplexityMedium
	case RatingLarge:
		return m.ComplexityLarge
	default:
		return 1.0
	}
}

// Confidence returns the multiplier for a confidence rating (high -> 1.0).
func (m Multipliers) Confidence(c Confidence) float64 {
	switch c {
	case ConfidenceMedium:
		return m.ConfidenceMedium
	case ConfidenceLow:
		return m.ConfidenceLow
	default:
		return 1.0
	}
}

// Validate rejects any configured multiplier below 1.0.
func (m Multipliers) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"size_medium", m.SizeMedium},
		{"size_large", m.SizeLarge},
		{"complexity_medium", m.ComplexityMedium},
		{"complexity_large", m.ComplexityLarge},
		{"confidence_medium", m.ConfidenceMedium},
		{"confidence_low", m.ConfidenceLow},
	}
	for _, f := range fields {
		if f.value < 1.0 {
			return &ValidationError{Field: f.name, Reason: "multiplier must be >= 1.0"}
		}
	}
	return nil
}

// ReferralFee is the optional referral configuration attached to an estimate.
type ReferralFee struct {
	Type  ReferralFeeType `json:"type"`
	Rate  float64         `json:"rate"`
	Payee string          `json:"payee"`
}

// Estimate is the aggregate root for the pricing engine.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Totals:
//   - EstimateType selects exactly one pricing driver: detailed line items
//     or the block hours/dollars pair.
//   - PresentedTotal is a customer-facing override and never feeds back
//     into line-item math.

type Estimate struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Version        int            `json:"version"`
	PricingType    PricingType    `json:"pricing_type"`
	EstimateType   EstimateType   `json:"estimate_type"`
	Status         EstimateStatus `json:"status"`
	Multipliers    Multipliers    `json:"multipliers"`
	PresentedTotal *float64       `json:"presented_total,omitempty"`
	FixedPrice     *float64       `json:"fixed_price,omitempty"`
	BlockHours     *float64       `json:"block_hours,omitempty"`
	BlockDollars   *float64       `json:"block_dollars,omitempty"`
	ReferralFee    ReferralFee    `json:"referral_fee"`
	ProjectID      *string        `json:"project_id,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
