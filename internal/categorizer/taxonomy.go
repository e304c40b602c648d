package categorizer

import (
	"strings"

	"github.com/complaintiq/classifier/internal/textnorm"
)

// Coarse source-side category names (9 categories, as emitted by the
// upstream collectors).
const (
	CoarseDeliveryIssues   = "Delivery Issues"
	CoarseProductQuality   = "Product Quality"
	CoarseCustomerService  = "Customer Service"
	CoarseTechnicalSupport = "Technical Support"
	CoarseReturnRefund     = "Return/Refund"
	CoarseBillingIssues    = "Billing Issues"
	CoarseWebsiteIssues    = "Website Issues"
	CoarseServiceOutage    = "Service Outage"
	CoarseFraudIssues      = "Fraud Issues"
)

// CoarseCategories lists the 9 known coarse categories.
var CoarseCategories = []string{
	CoarseDeliveryIssues,
	CoarseProductQuality,
	CoarseCustomerService,
	CoarseTechnicalSupport,
	CoarseReturnRefund,
	CoarseBillingIssues,
	CoarseWebsiteIssues,
	CoarseServiceOutage,
	CoarseFraudIssues,
}

// Secondary keyword sets used to split ambiguous coarse categories.
var (
	delayKeywords   = []string{"gecik", "geç", "zaman", "teslimat"}
	carrierKeywords = []string{"kurye", "dağıtım", "kargo firması", "şube", "teslim edilemedi"}

	qualityKeywords    = []string{"kalite", "bozuk", "kusur"}
	packagingKeywords  = []string{"paket", "ambalaj", "kutu", "ezik"}
	misleadingKeywords = []string{"açıklama", "fotoğraf", "yanıltıcı"}
)

// directMappings are the coarse categories that map 1:1 unconditionally.
var directMappings = map[string]string{
	CoarseCustomerService:  CategoryCustomerService,
	CoarseTechnicalSupport: CategoryTechnicalProblem,
	CoarseReturnRefund:     CategoryReturnExchange,
	CoarseBillingIssues:    CategoryBillingPayment,
	CoarseWebsiteIssues:    CategoryTechnicalProblem,
	CoarseServiceOutage:    CategoryServiceQuality,
	CoarseFraudIssues:      CategoryBillingPayment,
}

// TaxonomyMapper expands the coarse 9-category labels into the refined
// 12-category taxonomy. Expand is total over the known coarse set; unknown
// labels pass through unchanged so callers can flag them.
type TaxonomyMapper struct{}

// NewTaxonomyMapper creates a taxonomy mapper.
func NewTaxonomyMapper() *TaxonomyMapper {
	return &TaxonomyMapper{}
}

// Expand maps a coarse category to a refined one, using secondary keyword
// checks against the text for the ambiguous coarse categories.
func (m *TaxonomyMapper) Expand(text, coarse string) string {
	lowered := textnorm.Lower(text)

	switch coarse {
	case CoarseDeliveryIssues:
		if containsAny(lowered, delayKeywords) {
			return CategoryShippingDelay
		}
		if containsAny(lowered, carrierKeywords) {
			return CategoryCarrierProblem
		}
		return CategoryShippingDelay

	case CoarseProductQuality:
		if containsAny(lowered, qualityKeywords) {
			return CategoryProductQuality
		}
		if containsAny(lowered, packagingKeywords) {
			return CategoryPackaging
		}
		if containsAny(lowered, misleadingKeywords) {
			return CategoryMisleadingListing
		}
		return CategoryProductQuality
	}

	if refined, ok := directMappings[coarse]; ok {
		return refined
	}

	// Unknown coarse label: identity pass-through. Callers use Known to
	// detect and log these.
	return coarse
}

// Known reports whether coarse is one of the 9 known coarse categories.
func (m *TaxonomyMapper) Known(coarse string) bool {
	if coarse == CoarseDeliveryIssues || coarse == CoarseProductQuality {
		return true
	}
	_, ok := directMappings[coarse]
	return ok
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
