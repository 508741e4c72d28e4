package domain

// Product is one sellable item from a vendor fragment. VendorID and
// VendorName are stamped by the aggregator, not trusted from the fragment.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	NameHe        string   `json:"nameHe,omitempty"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Category      string   `json:"category"`
	Image         string   `json:"image"`
	VendorID      string   `json:"vendorId"`
	VendorName    string   `json:"vendorName"`
	InStock       bool     `json:"inStock"`
	IsVegan       bool     `json:"isVegan"`
	IsKosher      bool     `json:"isKosher"`
	Badge         string   `json:"badge,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}
