package entities

// TripCandidate is a possible transfer of one item from a surplus stockpile
// to a deficit stockpile
type TripCandidate struct {
	Source      string   `json:"source"`
	Destination string   `json:"destination"`
	CodeName    CodeName `json:"code_name"`
	Quantity    Quantity `json:"quantity"`
}

// TripItem is one line of an aggregated trip's breakdown
type TripItem struct {
	CodeName CodeName `json:"code_name"`
	Quantity Quantity `json:"quantity"`
}

// AggregatedTrip groups every candidate between one source and one destination
type AggregatedTrip struct {
	Source         string     `json:"source"`
	Destination    string     `json:"destination"`
	TotalPotential Quantity   `json:"total_potential"`
	DistinctItems  int        `json:"distinct_items"`
	Items          []TripItem `json:"items"`
}

// TopItems returns at most n items of the breakdown; n <= 0 returns all of them
func (t AggregatedTrip) TopItems(n int) []TripItem {
	if n <= 0 || n >= len(t.Items) {
		return t.Items
	}
	return t.Items[:n]
}
