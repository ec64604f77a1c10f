package models

// Choice is one option of a select field
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var RoomTypes = []Choice{
	{Value: "Room_Type_1", Label: "Room Type 1"},
	{Value: "Room_Type_2", Label: "Room Type 2"},
	{Value: "Room_Type_3", Label: "Room Type 3"},
	{Value: "Room_Type_4", Label: "Room Type 4"},
}

var MealPlans = []Choice{
	{Value: "Meal_Plan_1", Label: "Meal Plan 1"},
	{Value: "Meal_Plan_2", Label: "Meal Plan 2"},
	{Value: "Meal_Plan_3", Label: "Meal Plan 3"},
}

var MarketSegments = []Choice{
	{Value: "Online", Label: "Online"},
	{Value: "Corporate", Label: "Corporate"},
	{Value: "Offline", Label: "Offline"},
	{Value: "Complementary", Label: "Complementary"},
}

var RepeatedGuestChoices = []Choice{
	{Value: "No", Label: "No"},
	{Value: "Yes", Label: "Yes"},
}
