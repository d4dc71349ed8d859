package domain

// Category is a browsable catalog category
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Categories lists the categories offered for exploration
var Categories = []Category{
	{ID: "20", Name: "Gaming"},
	{ID: "25", Name: "News"},
	{ID: "17", Name: "Sports"},
	{ID: "27", Name: "Learning"},
}
