// Package projection implements the what-if holding calculator.
package projection

import "strconv"

// Input holds the three user-supplied fields as entered. Fields are kept
// raw so that "empty" and "non-numeric" are distinguishable from zero.
type Input struct {
	Quantity     string `json:"quantity"`
	FuturePrice  string `json:"future_price"`
	PresentValue string `json:"present_value"`
}

// Result is the derived projection. It exists only while all three
// inputs are present and numeric.
type Result struct {
	FutureValue   float64 `json:"future_value"`
	AbsoluteDelta float64 `json:"absolute_delta"`
	PercentDelta  float64 `json:"percent_delta"`
}

// Parse validates the input. ok is false when any field is empty or does
// not parse as a number; in that state no result may exist.
func (in Input) Parse() (quantity, futurePrice, presentValue float64, ok bool) {
	if in.Quantity == "" || in.FuturePrice == "" || in.PresentValue == "" {
		return 0, 0, 0, false
	}
	var err error
	if quantity, err = strconv.ParseFloat(in.Quantity, 64); err != nil {
		return 0, 0, 0, false
	}
	if futurePrice, err = strconv.ParseFloat(in.FuturePrice, 64); err != nil {
		return 0, 0, 0, false
	}
	if presentValue, err = strconv.ParseFloat(in.PresentValue, 64); err != nil {
		return 0, 0, 0, false
	}
	return quantity, futurePrice, presentValue, true
}

// Complete reports whether all three fields are populated and numeric.
func (in Input) Complete() bool {
	_, _, _, ok := in.Parse()
	return ok
}

// Calculate combines a holding quantity, a hypothetical future unit price,
// a spot conversion rate and a present value. No rounding is applied;
// formatting is a display concern. A present value of zero yields a
// percent delta of 0 rather than a division by zero.
func Calculate(quantity, futurePrice, conversionRate, presentValue float64) Result {
	futureValue := quantity * futurePrice * conversionRate
	r := Result{
		FutureValue:   futureValue,
		AbsoluteDelta: futureValue - presentValue,
	}
	if presentValue != 0 {
		r.PercentDelta = (futureValue - presentValue) / presentValue * 100
	}
	return r
}
