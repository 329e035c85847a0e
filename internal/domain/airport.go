package domain

// Airport is reference data maintained outside this service.
type Airport struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	City    string `json:"city"`
	Country string `json:"country"`
}
