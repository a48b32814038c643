package model

// Table is a numbered dinner table. GridColumn/GridRow place it on the hall
// sketch and carry no behavioral meaning.
type Table struct {
	ID         int `json:"id"`
	Number     int `json:"number"`
	Capacity   int `json:"capacity"`
	GridColumn int `json:"gridColumn"`
	GridRow    int `json:"gridRow"`
}
