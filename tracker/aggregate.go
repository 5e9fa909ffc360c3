/*
aggregate.go - Read-side aggregation over meals and workouts

PURPOSE:
  The one place the core computes across rows. Daily nutrition totals
  are summed here, in Go, over the exact meal slice a store returned,
  so the totals always describe the same snapshot as the list they
  accompany. Lifetime stats are computed by the store in a single
  statement and carried in the Stats record.

PRECISION:
  Sums use shopspring/decimal rather than accumulating float64, so
  0.1-gram macro entries add up exactly. Results convert to float64
  only at the edge, which is the wire format.
*/
package tracker

import "github.com/shopspring/decimal"

// DailyTotals is the nutrition sum for one calendar date.
// Fields are 0, never absent, when no meals contribute.
type DailyTotals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
}

// SumMeals computes the element-wise nutrition totals over meals.
// An empty or nil slice yields the zero totals.
func SumMeals(meals []Meal) DailyTotals {
	var calories, protein, carbs, fats decimal.Decimal
	for _, m := range meals {
		calories = calories.Add(decimal.NewFromFloat(m.Calories))
		protein = protein.Add(decimal.NewFromFloat(m.Protein))
		carbs = carbs.Add(decimal.NewFromFloat(m.Carbs))
		fats = fats.Add(decimal.NewFromFloat(m.Fats))
	}
	return DailyTotals{
		Calories: calories.InexactFloat64(),
		Protein:  protein.InexactFloat64(),
		Carbs:    carbs.InexactFloat64(),
		Fats:     fats.InexactFloat64(),
	}
}

// Stats is the lifetime summary across workouts and meals.
// All sums are 0 when no rows match; NetCalories may be negative.
type Stats struct {
	TotalWorkouts    int64
	CaloriesBurned   float64
	TotalDuration    float64
	CaloriesConsumed float64
	NetCalories      float64
}

// NetCalories derives consumed minus burned with exact arithmetic.
func NetCalories(consumed, burned float64) float64 {
	return decimal.NewFromFloat(consumed).Sub(decimal.NewFromFloat(burned)).InexactFloat64()
}
