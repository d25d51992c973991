package shipping

import "github.com/shopspring/decimal"

// Option is a deliverable shipping choice shown at checkout. Fees are
// flat per order and quoted in naira.
type Option struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Fee          decimal.Decimal `json:"fee"`
	Description  string          `json:"description"`
	Areas        []string        `json:"areas,omitempty"`
	DeliveryTime string          `json:"deliveryTime"`
}

var options = []Option{
	{
		ID:           "pickup",
		Name:         "Store Pickup",
		Fee:          decimal.Zero,
		Description:  "Pick up your order from our store",
		DeliveryTime: "Ready within 24 hours",
	},
	{
		ID:           "lagos-island",
		Name:         "Lagos Island",
		Fee:          decimal.NewFromInt(5000),
		Description:  "Delivery within Lagos Island",
		Areas:        []string{"Victoria Island", "Ikoyi", "Lekki", "Ajah"},
		DeliveryTime: "1-2 business days",
	},
	{
		ID:           "lagos-mainland",
		Name:         "Lagos Mainland",
		Fee:          decimal.NewFromInt(3500),
		Description:  "Delivery within Lagos Mainland",
		Areas:        []string{"Ikeja", "Surulere", "Yaba", "Gbagada", "Maryland"},
		DeliveryTime: "1-2 business days",
	},
	{
		ID:           "inter-state",
		Name:         "Inter-State Delivery",
		Fee:          decimal.NewFromInt(4500),
		Description:  "Delivery to other states in Nigeria",
		Areas:        []string{"Abuja", "Port Harcourt", "Kano", "Ibadan", "Enugu"},
		DeliveryTime: "3-5 business days",
	},
	{
		ID:           "western-states",
		Name:         "Western States",
		Fee:          decimal.NewFromInt(4000),
		Description:  "Delivery to South-Western states",
		Areas:        []string{"Ogun", "Oyo", "Osun", "Ondo", "Ekiti"},
		DeliveryTime: "2-4 business days",
	},
}

// Options returns every shipping option in display order.
func Options() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// Fee returns the flat fee for a shipping option id. The second return
// is false when the id is not a known option.
func Fee(id string) (decimal.Decimal, bool) {
	for _, opt := range options {
		if opt.ID == id {
			return opt.Fee, true
		}
	}
	return decimal.Zero, false
}
