package models

// DaysOfWeek fixes the schedule ordering: index 0 is MONDAY, index 6 is SUNDAY.
var DaysOfWeek = [7]string{
	"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY",
}

// MealSelection is one ordered line on a day: which set and how many.
// Quantity never drops below 1.
type MealSelection struct {
	SetID    int `json:"setId"`
	Quantity int `json:"quantity"`
}

// DaySchedule holds the delivery enablement and meal lines for one day.
type DaySchedule struct {
	DayOfWeek string          `json:"dayOfWeek"`
	Enabled   bool            `json:"enabled"`
	Meals     []MealSelection `json:"meals"`
}

// WeekSchedule is the customer's weekly delivery plan. All mutation operations
// are functional: they return a new schedule value and leave the receiver
// untouched, so callers can hold earlier snapshots safely.
type WeekSchedule [7]DaySchedule

// NewWeekSchedule returns the default plan: weekdays enabled, weekend
// disabled, no meals selected yet.
func NewWeekSchedule() WeekSchedule {
	var w WeekSchedule
	for i, name := range DaysOfWeek {
		w[i] = DaySchedule{
			DayOfWeek: name,
			Enabled:   i < 5,
			Meals:     []MealSelection{},
		}
	}
	return w
}

// ToggleDay flips delivery enablement for the day at dayIndex.
// An out-of-range index leaves the schedule unchanged.
func (w WeekSchedule) ToggleDay(dayIndex int) WeekSchedule {
	if dayIndex < 0 || dayIndex >= len(w) {
		return w
	}
	w[dayIndex].Enabled = !w[dayIndex].Enabled
	return w
}

// AddMeal appends a new selection for setID with quantity 1. Selecting the
// same set twice produces two independent lines.
func (w WeekSchedule) AddMeal(dayIndex, setID int) WeekSchedule {
	if dayIndex < 0 || dayIndex >= len(w) {
		return w
	}
	day := w[dayIndex]
	meals := make([]MealSelection, len(day.Meals), len(day.Meals)+1)
	copy(meals, day.Meals)
	day.Meals = append(meals, MealSelection{SetID: setID, Quantity: 1})
	w[dayIndex] = day
	return w
}

// UpdateQuantity replaces the quantity at (dayIndex, mealIndex) when the new
// quantity is at least 1; anything lower is silently ignored. There is no
// upper bound.
func (w WeekSchedule) UpdateQuantity(dayIndex, mealIndex, quantity int) WeekSchedule {
	if dayIndex < 0 || dayIndex >= len(w) {
		return w
	}
	if mealIndex < 0 || mealIndex >= len(w[dayIndex].Meals) {
		return w
	}
	if quantity < 1 {
		return w
	}
	day := w[dayIndex]
	meals := make([]MealSelection, len(day.Meals))
	copy(meals, day.Meals)
	meals[mealIndex].Quantity = quantity
	day.Meals = meals
	w[dayIndex] = day
	return w
}

// RemoveMeal deletes the line at (dayIndex, mealIndex); later lines shift down
// by one. Callers must not cache indices across removals.
func (w WeekSchedule) RemoveMeal(dayIndex, mealIndex int) WeekSchedule {
	if dayIndex < 0 || dayIndex >= len(w) {
		return w
	}
	if mealIndex < 0 || mealIndex >= len(w[dayIndex].Meals) {
		return w
	}
	day := w[dayIndex]
	meals := make([]MealSelection, 0, len(day.Meals)-1)
	meals = append(meals, day.Meals[:mealIndex]...)
	meals = append(meals, day.Meals[mealIndex+1:]...)
	day.Meals = meals
	w[dayIndex] = day
	return w
}
