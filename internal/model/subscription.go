package model

// Categories are the suggested labels offered to clients. Membership is not enforced.
var Categories = []string{
	"Streaming",
	"Gaming",
	"Productivity",
	"Fitness",
	"Music",
	"Education",
	"Cloud Storage",
	"Other",
}

type Subscription struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Cost        float64 `json:"cost"`
	RenewalDate string  `json:"renewalDate"`
	Category    string  `json:"category"`
}
