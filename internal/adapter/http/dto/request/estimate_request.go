package request

import (
	"time"

	"scopeworks/internal/domain/entities"
	"scopeworks/internal/usecase"
)

// MultipliersRequest mirrors the estimate's risk multiplier table. All six
// values must be supplied together; partial tables are rejected upstream by
// entity validation.
type MultipliersRequest struct {
	SizeMedium       float64 `json:"size_medium" binding:"required"`
	SizeLarge        float64 `json:"size_large" binding:"required"`
	ComplexityMedium float64 `json:"complexity_medium" binding:"required"`
	ComplexityLarge  float64 `json:"complexity_large" binding:"required"`
	ConfidenceMedium float64 `json:"confidence_medium" binding:"required"`
	ConfidenceLow    float64 `json:"confidence_low" binding:"required"`
}

func (r MultipliersRequest) ToEntity() entities.Multipliers {
	return entities.Multipliers{
		SizeMedium:       r.SizeMedium,
		SizeLarge:        r.SizeLarge,
		ComplexityMedium: r.ComplexityMedium,
		ComplexityLarge:  r.ComplexityLarge,
		ConfidenceMedium: r.ConfidenceMedium,
		ConfidenceLow:    r.ConfidenceLow,
	}
}

type ReferralFeeRequest struct {
	Type  string  `json:"type" binding:"required"`
	Rate  float64 `json:"rate"`
	Payee string  `json:"payee"`
}

func (r ReferralFeeRequest) ToEntity() entities.ReferralFee {
	return entities.ReferralFee{
		Type:  entities.ReferralFeeType(r.Type),
		Rate:  r.Rate,
		Payee: r.Payee,
	}
}

type CreateEstimateRequest struct {
	Name         string              `json:"name" binding:"required"`
	PricingType  string              `json:"pricing_type"`
	EstimateType string              `json:"estimate_type"`
	Multipliers  *MultipliersRequest `json:"multipliers"`
	FixedPrice   *float64            `json:"fixed_price"`
	BlockHours   *float64            `json:"block_hours"`
	BlockDollars *float64            `json:"block_dollars"`
	ReferralFee  *ReferralFeeRequest `json:"referral_fee"`
}

func (r CreateEstimateRequest) ToInput() usecase.CreateEstimateInput {
	in := usecase.CreateEstimateInput{
		Name:         r.Name,
		PricingType:  entities.PricingType(r.PricingType),
		EstimateType: entities.EstimateType(r.EstimateType),
		FixedPrice:   r.FixedPrice,
		BlockHours:   r.BlockHours,
		BlockDollars: r.BlockDollars,
	}
	if r.Multipliers != nil {
		m := r.Multipliers.ToEntity()
		in.Multipliers = &m
	}
	if r.ReferralFee != nil {
		f := r.ReferralFee.ToEntity()
		in.ReferralFee = &f
	}
	return in
}

type UpdateEstimateConfigRequest struct {
	Name                *string             `json:"name"`
	Multipliers         *MultipliersRequest `json:"multipliers"`
	PricingType         *string             `json:"pricing_type"`
	EstimateType        *string             `json:"estimate_type"`
	PresentedTotal      *float64            `json:"presented_total"`
	ClearPresentedTotal bool                `json:"clear_presented_total"`
	FixedPrice          *float64            `json:"fixed_price"`
	ClearFixedPrice     bool                `json:"clear_fixed_price"`
	BlockHours          *float64            `json:"block_hours"`
	BlockDollars        *float64            `json:"block_dollars"`
	ReferralFee         *ReferralFeeRequest `json:"referral_fee"`
}

func (r UpdateEstimateConfigRequest) ToPatch() usecase.EstimateConfigPatch {
	patch := usecase.EstimateConfigPatch{
		Name:                r.Name,
		PresentedTotal:      r.PresentedTotal,
		ClearPresentedTotal: r.ClearPresentedTotal,
		FixedPrice:          r.FixedPrice,
		ClearFixedPrice:     r.ClearFixedPrice,
		BlockHours:          r.BlockHours,
		BlockDollars:        r.BlockDollars,
	}
	if r.Multipliers != nil {
		m := r.Multipliers.ToEntity()
		patch.Multipliers = &m
	}
	if r.PricingType != nil {
		pt := entities.PricingType(*r.PricingType)
		patch.PricingType = &pt
	}
	if r.EstimateType != nil {
		et := entities.EstimateType(*r.EstimateType)
		patch.EstimateType = &et
	}
	if r.ReferralFee != nil {
		f := r.ReferralFee.ToEntity()
		patch.ReferralFee = &f
	}
	return patch
}

// TransitionRequest moves an estimate through its lifecycle. The project
// options only apply on final -> approved.
type TransitionRequest struct {
	Status          string     `json:"status" binding:"required"`
	CreateProject   bool       `json:"create_project"`
	CopyAssignments bool       `json:"copy_assignments"`
	KickoffDate     *time.Time `json:"kickoff_date"`
}

func (r TransitionRequest) ToOptions() usecase.TransitionOptions {
	return usecase.TransitionOptions{
		CreateProject:   r.CreateProject,
		CopyAssignments: r.CopyAssignments,
		KickoffDate:     r.KickoffDate,
	}
}
