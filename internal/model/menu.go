package model

// MenuItem holds the published meals for one day of the week.
// One row per day, enforced by a unique constraint on day.
type MenuItem struct {
	ID        int64   `json:"id"`
	Day       string  `json:"day"`
	Breakfast *string `json:"breakfast,omitempty"`
	Lunch     *string `json:"lunch,omitempty"`
	Dinner    *string `json:"dinner,omitempty"`
}

// UpsertMenuRequest updates the menu for a day, creating the row if absent.
// Day values are not validated beyond presence; any label is accepted.
type UpsertMenuRequest struct {
	Day       string  `json:"day" binding:"required"`
	Breakfast *string `json:"breakfast"`
	Lunch     *string `json:"lunch"`
	Dinner    *string `json:"dinner"`
}
