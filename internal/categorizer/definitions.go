package categorizer

import "github.com/complaintiq/classifier/internal/domain"

// Refined taxonomy category names. The order of Definitions is the
// documented tie-break order of the keyword categorizer; changing it changes
// labeling behavior.
const (
	CategoryProductQuality     = "Ürün Kalite Sorunu"
	CategoryWrongProduct       = "Yanlış Ürün"
	CategoryMissingProduct     = "Eksik Ürün"
	CategoryShippingDelay      = "Kargo Gecikmesi"
	CategoryCarrierProblem     = "Kargo Firması Problemi"
	CategoryReturnExchange     = "İade/Değişim Sorunu"
	CategoryBillingPayment     = "Ödeme/Fatura Sorunu"
	CategoryCustomerService    = "Müşteri Hizmetleri Sorunu"
	CategoryPackaging          = "Paketleme/Ambalaj Problemi"
	CategoryMisleadingListing  = "Ürün Açıklaması Yanıltıcı"
	CategoryServiceQuality     = "Hizmet Kalite Sorunu"
	CategoryTechnicalProblem   = "Teknik/Uygulama Sorunu"
)

// Definitions is the fixed 12-category refined taxonomy with the keyword
// sets used for rule-based labeling.
var Definitions = []domain.CategoryDefinition{
	{
		Name:        CategoryProductQuality,
		Keywords:    []string{"kalite", "bozuk", "çürük", "hasarlı", "malzeme", "işçilik", "dayanıklı", "kusur"},
		Description: "Ürün kalitesi, kusurlu veya hasarlı ürünler",
		Priority:    domain.PriorityMedium,
	},
	{
		Name:        CategoryWrongProduct,
		Keywords:    []string{"yanlış", "farklı", "başka", "istedigim", "sipar", "gelen"},
		Description: "Sipariş edilenden farklı ürün gönderimi",
		Priority:    domain.PriorityMedium,
	},
	{
		Name:        CategoryMissingProduct,
		Keywords:    []string{"eksik", "yok", "tam değil", "parça", "aks", "kutu"},
		Description: "Eksik gönderilen ürün veya parçalar",
		Priority:    domain.PriorityMedium,
	},
	{
		Name:        CategoryShippingDelay,
		Keywords:    []string{"gecikti", "geç", "zaman", "kargo", "teslimat", "bekliyorum"},
		Description: "Teslimat problemleri ve kargo gecikmeleri",
		Priority:    domain.PriorityMedium,
	},
	{
		Name:        CategoryCarrierProblem,
		Keywords:    []string{"kargo firması", "kurye", "dağıtım", "lojistik", "firma"},
		Description: "Kargo firması ve kurye kaynaklı problemler",
		Priority:    domain.PriorityMedium,
	},
	{
		Name:        CategoryReturnExchange,
		Keywords:    []string{"iade", "değişim", "para iadesi", "geri gönderme", "işlem"},
		Description: "İade işlemleri, para iadesi ve değişim talepleri",
		Priority:    domain.PriorityLow,
	},
	{
		Name:        CategoryBillingPayment,
		Keywords:    []string{"fatura", "ödeme", "para", "kart", "faturalandırma", "tutar"},
		Description: "Faturalandırma hataları ve ödeme sorunları",
		Priority:    domain.PriorityHigh,
	},
	{
		Name:        CategoryCustomerService,
		Keywords:    []string{"müşteri hizmetleri", "temsilci", "telefon", "destek", "yardım"},
		Description: "Müşteri hizmetleri davranışları ve iletişim problemleri",
		Priority:    domain.PriorityLow,
	},
	{
		Name:        CategoryPackaging,
		Keywords:    []string{"paket", "ambalaj", "kutu", "paketleme", "hasar", "ezik"},
		Description: "Paketleme ve ambalaj kaynaklı hasarlar",
		Priority:    domain.PriorityLow,
	},
	{
		Name:        CategoryMisleadingListing,
		Keywords:    []string{"açıklama", "fotoğraf", "özellik", "yanlış", "farklı", "uymuyor"},
		Description: "Beklentiye uymayan, yanıltıcı ürün açıklamaları",
		Priority:    domain.PriorityLow,
	},
	{
		Name:        CategoryServiceQuality,
		Keywords:    []string{"hizmet", "kalite", "personel", "davranış", "ortam", "işletme"},
		Description: "Hizmet kesintileri ve hizmet kalitesi problemleri",
		Priority:    domain.PriorityHigh,
	},
	{
		Name:        CategoryTechnicalProblem,
		Keywords:    []string{"teknik", "uygulama", "yazılım", "sistem", "hata", "çalışmıyor"},
		Description: "Teknik destek, web sitesi ve uygulama problemleri",
		Priority:    domain.PriorityHigh,
	},
}

// CategoryNames returns the refined taxonomy names in declaration order.
func CategoryNames() []string {
	names := make([]string, len(Definitions))
	for i, def := range Definitions {
		names[i] = def.Name
	}
	return names
}

// Definition returns the definition for a category name, if it exists.
func Definition(name string) (domain.CategoryDefinition, bool) {
	for _, def := range Definitions {
		if def.Name == name {
			return def, true
		}
	}
	return domain.CategoryDefinition{}, false
}
