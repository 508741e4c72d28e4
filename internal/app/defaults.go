package app

import (
	"fmt"

	"kfar_marketplace/internal/domain"
)

// Storefront defaults applied when the directory entry has no override.
// These match what the marketplace has always shown for vendors that never
// supplied their own hours, policies, or contact details.

func defaultBusinessHours() domain.BusinessHours {
	wd := domain.DayHours{Open: "09:00", Close: "18:00"}
	return domain.BusinessHours{
		Sunday:    wd,
		Monday:    wd,
		Tuesday:   wd,
		Wednesday: wd,
		Thursday:  wd,
		Friday:    domain.DayHours{Open: "09:00", Close: "14:00"},
		Saturday:  domain.DayHours{Open: "20:00", Close: "23:00"},
	}
}

func defaultPolicies() domain.Policies {
	return domain.Policies{
		ReturnPolicy:   "30-day return policy for all items in original condition",
		ShippingPolicy: "Free local delivery on orders over ₪100",
		PrivacyPolicy:  "We respect your privacy and protect your personal data",
	}
}

func buildStore(v domain.Vendor, products []domain.Product) domain.Store {
	st := domain.Store{
		ID:              v.ID,
		StoreName:       v.Name,
		StoreNameHe:     v.NameHe,
		Category:        v.Category,
		Description:     v.Description,
		Logo:            v.Logo,
		Banner:          fmt.Sprintf("/images/banners/%d.jpg", bannerIndex(v)),
		Phone:           v.Phone,
		Email:           v.Email,
		Address:         v.Address,
		DeliveryOptions: v.DeliveryOptions,
		BusinessHours:   defaultBusinessHours(),
		Products:        products,
		Policies:        defaultPolicies(),
	}
	if v.BusinessHours != nil {
		st.BusinessHours = *v.BusinessHours
	}
	if v.Policies != nil {
		st.Policies = *v.Policies
	}
	if st.Phone == "" {
		st.Phone = "+972-50-123-4567"
	}
	if st.Email == "" {
		st.Email = v.ID + "@kfarmarketplace.com"
	}
	if st.Address == "" {
		st.Address = "Village of Peace, Dimona, Israel"
	}
	if len(st.DeliveryOptions) == 0 {
		st.DeliveryOptions = []string{"pickup", "local-delivery"}
	}
	if st.Products == nil {
		st.Products = []domain.Product{}
	}
	return st
}

func bannerIndex(v domain.Vendor) int {
	if v.BannerIndex > 0 {
		return v.BannerIndex
	}
	return 1
}
