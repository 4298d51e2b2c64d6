package carbontrack

import (
	"fmt"
	"iter"
	"slices"
)

// Category is the closed set of activity categories. Its declaration order is
// the stable iteration order used for grouping and for breaking ties between
// categories with equal totals.
type Category int

const (
	Transportation Category = iota
	Food
	Energy
	Waste
)

func (c Category) String() string {
	switch c {
	case Transportation:
		return "Transportation"
	case Food:
		return "Food"
	case Energy:
		return "Energy"
	case Waste:
		return "Waste"
	default:
		return "unknown"
	}
}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "Transportation":
		return Transportation, nil
	case "Food":
		return Food, nil
	case "Energy":
		return Energy, nil
	case "Waste":
		return Waste, nil
	default:
		return 0, fmt.Errorf("unknown category: %q", s)
	}
}

// Categories iterates over all categories in declaration order.
func Categories() iter.Seq[Category] {
	return func(yield func(Category) bool) {
		for c := Transportation; c <= Waste; c++ {
			if !yield(c) {
				return
			}
		}
	}
}

// Emission factors in kg CO2e per unit of activity.
var transportFactors = map[string]float64{
	"Car - Small Gasoline (Miles)": 0.350,
	"Car - SUV/Truck (Miles)":      0.550,
	"Air - Domestic (Miles)":       0.25,
	"Air - International (Miles)":  0.195,
	"Bus - Local (Miles)":          0.089,
	"Train - Commuter (Miles)":     0.040,
	"Taxi - Avg (Miles)":           0.404,
	"Motorcycle (Miles)":           0.210,
}

var foodFactors = map[string]float64{
	"Red Meat - Beef (Servings)":       7.0,
	"Red Meat - Lamb (Servings)":       5.5,
	"Poultry - Chicken (Servings)":     2.0,
	"Poultry - Turkey (Servings)":      2.5,
	"Fish - Farmed (Servings)":         3.0,
	"Fish - Wild Caught (Servings)":    1.5,
	"Plant Protein - Beans (Servings)": 0.4,
	"Plant Protein - Tofu (Servings)":  0.5,
	"Dairy - Milk (Servings)":          1.5,
	"Dairy - Cheese (Servings)":        2.0,
}

var energyFactors = map[string]float64{
	"Electricity - US Avg (kWh)":     0.42,
	"Electricity - Coal Heavy (kWh)": 0.90,
	"Electricity - Renewable (kWh)":  0.05,
	"Natural Gas (Therms)":           5.31,
	"Heating Oil (Gallons)":          10.13,
	"Propane (Gallons)":              5.75,
}

var wasteFactors = map[string]float64{
	"Trash - Landfill (Pounds)":  0.45,
	"Recycling - Mixed (Pounds)": 0.10,
	"Compost (Pounds)":           0.05,
}

// factorTables is indexed by Category.
var factorTables = [...]map[string]float64{
	Transportation: transportFactors,
	Food:           foodFactors,
	Energy:         energyFactors,
	Waste:          wasteFactors,
}

// Factors returns the activity factor table for the category.
func (c Category) Factors() map[string]float64 {
	if int(c) < 0 || int(c) >= len(factorTables) {
		return nil
	}
	return factorTables[c]
}

// Activities returns the activity names of a category, sorted for stable display.
func (c Category) Activities() []string {
	table := c.Factors()
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Factor returns the emission factor for an activity, searching categories in
// declaration order. Unknown activities yield 0.0: logging an unrecognized
// activity is allowed but contributes no footprint.
func Factor(activity string) float64 {
	for c := range Categories() {
		if f, ok := c.Factors()[activity]; ok {
			return f
		}
	}
	return 0.0
}
