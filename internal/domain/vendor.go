package domain

// Vendor is the canonical directory record. The store view and the listing
// view are both derived from it; there is no second vendor list to drift.
type Vendor struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	NameHe          string         `json:"nameHe,omitempty"`
	Category        string         `json:"category"`
	Description     string         `json:"description"`
	Logo            string         `json:"logo"`
	BannerIndex     int            `json:"bannerIndex"`
	Rating          float64        `json:"rating"`
	Phone           string         `json:"phone,omitempty"`
	Email           string         `json:"email,omitempty"`
	Address         string         `json:"address,omitempty"`
	DeliveryOptions []string       `json:"deliveryOptions,omitempty"`
	Categories      []string       `json:"categories,omitempty"` // controlled vocabulary for this vendor's products
	BusinessHours   *BusinessHours `json:"businessHours,omitempty"`
	Policies        *Policies      `json:"policies,omitempty"`
}

type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

type BusinessHours struct {
	Sunday    DayHours `json:"sunday"`
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
}

type Policies struct {
	ReturnPolicy   string `json:"returnPolicy"`
	ShippingPolicy string `json:"shippingPolicy"`
	PrivacyPolicy  string `json:"privacyPolicy"`
}

// Store is the merged storefront response for one vendor.
type Store struct {
	ID              string        `json:"id"`
	StoreName       string        `json:"storeName"`
	StoreNameHe     string        `json:"storeNameHe"`
	Category        string        `json:"category"`
	Description     string        `json:"description"`
	DescriptionHe   string        `json:"descriptionHe"`
	Logo            string        `json:"logo"`
	Banner          string        `json:"banner"`
	Phone           string        `json:"phone"`
	Email           string        `json:"email"`
	Address         string        `json:"address"`
	DeliveryOptions []string      `json:"deliveryOptions"`
	BusinessHours   BusinessHours `json:"businessHours"`
	Products        []Product     `json:"products"`
	Policies        Policies      `json:"policies"`
}

// VendorSummary is the listing view for browse pages.
type VendorSummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Logo         string  `json:"logo"`
	Rating       float64 `json:"rating"`
	ProductCount int     `json:"productCount"`
}

// Pagination is placeholder metadata: the listing always returns page 1 of
// everything, so Total always equals the number of vendors returned.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type VendorsPage struct {
	Vendors    []VendorSummary `json:"vendors"`
	Pagination Pagination      `json:"pagination"`
}

// Submission is one onboarding intake payload. It is validated and logged,
// never stored; repeated submissions do not accumulate state.
type Submission struct {
	StoreName   string    `json:"storeName"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Logo        string    `json:"logo,omitempty"`
	Banner      string    `json:"banner,omitempty"`
	Products    []Product `json:"products,omitempty"`
	Policies    *Policies `json:"policies,omitempty"`
}

// Ack acknowledges a valid submission with a freshly generated vendor ID.
type Ack struct {
	VendorID string
	Message  string
}
