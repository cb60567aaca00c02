package models

import "time"

// Purchase is an immutable record of a completed checkout. Items are a
// value snapshot of the cart lines at checkout time.
type Purchase struct {
	ID    string     `json:"id"`
	Date  time.Time  `json:"date"`
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}

func (p Purchase) ItemCount() int {
	count := 0
	for _, item := range p.Items {
		count += item.Quantity
	}
	return count
}
