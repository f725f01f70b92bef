// Package pricing implements the pure estimate math: rate resolution,
// multiplier-based hour adjustment, and contingency decomposition.
// Nothing in this package performs I/O; callers load state, invoke, persist.
package pricing

import "scopeworks/internal/domain/entities"

// CalcInput is the calculation-affecting subset of a line item.
type CalcInput struct {
	BaseHours  float64
	Factor     float64
	Rate       float64
	CostRate   float64
	Size       entities.Rating
	Complexity entities.Rating
	Confidence entities.Confidence
}

// InputFromItem extracts the calculator inputs from a stored line item.
func InputFromItem(li entities.LineItem) CalcInput {
	return CalcInput{
		BaseHours:  li.BaseHours,
		Factor:     li.Factor,
		Rate:       li.Rate,
		CostRate:   li.CostRate,
		Size:       li.Size,
		Complexity: li.Complexity,
		Confidence: li.Confidence,
	}
}

// Derived holds the five recomputed fields of a line item.
type Derived struct {
	AdjustedHours float64
	TotalAmount   float64
	TotalCost     float64
	Margin        float64
	MarginPercent float64
}

// Calculate applies the estimate's multiplier table to one line item.
//
// The three risk dimensions compound multiplicatively:
//
//	adjustedHours = baseHours * factor * size * complexity * confidence
//
// The function is deterministic and idempotent: recomputing from the same
// inputs always yields the same derived block.
func Calculate(m entities.Multipliers, in CalcInput) (Derived, error) {
	if err := validateInput(in); err != nil {
		return Derived{}, err
	}

	adjusted := in.BaseHours * in.Factor *
		m.Size(in.Size) * m.Complexity(in.Complexity) * m.Confidence(in.Confidence)

	amount := adjusted * in.Rate
	cost := adjusted * in.CostRate
	margin := amount - cost

	marginPct := 0.0
	if amount > 0 {
		marginPct = margin / amount * 100
	}

	return Derived{
		AdjustedHours: adjusted,
		TotalAmount:   amount,
		TotalCost:     cost,
		Margin:        margin,
		MarginPercent: marginPct,
	}, nil
}

// Apply recomputes and writes the derived block onto the item in place.
func Apply(m entities.Multipliers, li *entities.LineItem) error {
	d, err := Calculate(m, InputFromItem(*li))
	if err != nil {
		return err
	}
	li.AdjustedHours = d.AdjustedHours
	li.TotalAmount = d.TotalAmount
	li.TotalCost = d.TotalCost
	li.Margin = d.Margin
	li.MarginPercent = d.MarginPercent
	return nil
}

func validateInput(in CalcInput) error {
	switch {
	case in.BaseHours <= 0:
		return &entities.ValidationError{Field: "base_hours", Reason: "must be greater than zero"}
	case in.Factor <= 0:
		return &entities.ValidationError{Field: "factor", Reason: "must be greater than zero"}
	case in.Rate <= 0:
		return &entities.ValidationError{Field: "rate", Reason: "must be greater than zero"}
	case in.CostRate < 0:
		return &entities.ValidationError{Field: "cost_rate", Reason: "must not be negative"}
	case !in.Size.Valid():
		return &entities.ValidationError{Field: "size", Reason: "must be small, medium, or large"}
	case !in.Complexity.Valid():
		return &entities.ValidationError{Field: "complexity", Reason: "must be small, medium, or large"}
	case !in.Confidence.Valid():
		return &entities.ValidationError{Field: "confidence", Reason: "must be high, medium, or low"}
	}
	return nil
}
