package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"kfar_marketplace/internal/domain"
)

type OnboardingService struct {
	log zerolog.Logger
}

func NewOnboardingService(log zerolog.Logger) *OnboardingService {
	return &OnboardingService{log: log}
}

// requiredFields is checked in order; the first missing field wins.
var requiredFields = []struct {
	name string
	get  func(domain.Submission) string
}{
	{"storeName", func(s domain.Submission) string { return s.StoreName }},
	{"category", func(s domain.Submission) string { return s.Category }},
	{"description", func(s domain.Submission) string { return s.Description }},
	{"email", func(s domain.Submission) string { return s.Email }},
	{"phone", func(s domain.Submission) string { return s.Phone }},
}

// Submit validates an onboarding payload and acknowledges it with a freshly
// generated vendor ID. Nothing is persisted: the structured log entry below
// is the only side effect, and repeated calls do not accumulate state.
func (s *OnboardingService) Submit(ctx context.Context, sub domain.Submission) (domain.Ack, error) {
	for _, f := range requiredFields {
		if strings.TrimSpace(f.get(sub)) == "" {
			return domain.Ack{}, &domain.FieldError{Field: f.name}
		}
	}

	id := fmt.Sprintf("vendor-%d", time.Now().UnixNano())

	s.log.Info().
		Str("vendor_id", id).
		Str("store_name", sub.StoreName).
		Str("category", sub.Category).
		Str("email", sub.Email).
		Str("phone", sub.Phone).
		Bool("has_logo", sub.Logo != "").
		Bool("has_banner", sub.Banner != "").
		Int("products", len(sub.Products)).
		Msg("vendor onboarding received (not persisted)")

	return domain.Ack{VendorID: id, Message: "Vendor successfully onboarded"}, nil
}
