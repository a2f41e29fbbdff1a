package model

type Coupon struct {
	ID          int    `json:"id" yaml:"id"`
	Service     string `json:"service" yaml:"service"`
	Discount    string `json:"discount" yaml:"discount"`
	Code        string `json:"code" yaml:"code"`
	Description string `json:"description" yaml:"description"`
	ExpiryDate  string `json:"expiryDate" yaml:"expiryDate"`
	Category    string `json:"category" yaml:"category"`
}
