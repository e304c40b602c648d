package categorizer

import (
	"sync"
	"testing"

	"github.com/complaintiq/classifier/internal/domain"
)

func TestCategorizeShippingDelay(t *testing.T) {
	t.Parallel()

	c := NewDefaultCategorizer()
	// Hits: kargo, geç, teslimat, gecikti
	category, confidence := c.Categorize("Kargo çok geç geldi, teslimat gecikti")

	if category != CategoryShippingDelay {
		t.Errorf("category = %q, want %q", category, CategoryShippingDelay)
	}
	if confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0 (4 hits saturate at 3)", confidence)
	}
}

func TestCategorizeConfidenceScaling(t *testing.T) {
	t.Parallel()

	c := NewDefaultCategorizer()
	// Single hit: "iade".
	category, confidence := c.Categorize("iade talebim onaylanmadı")

	if category != CategoryReturnExchange {
		t.Errorf("category = %q, want %q", category, CategoryReturnExchange)
	}
	want := 1.0 / 3.0
	if confidence != want {
		t.Errorf("confidence = %v, want %v", confidence, want)
	}
}

func TestCategorizeUnknown(t *testing.T) {
	t.Parallel()

	c := NewDefaultCategorizer()
	category, confidence := c.Categorize("bugün hava çok güzeldi")

	if category != domain.CategoryUnknown {
		t.Errorf("category = %q, want %q", category, domain.CategoryUnknown)
	}
	if confidence != 0 {
		t.Errorf("confidence = %v, want 0", confidence)
	}
}

func TestCategorizeTieBreaksToFirstDeclared(t *testing.T) {
	t.Parallel()

	c := NewDefaultCategorizer()
	// "kalite" belongs to both product quality and service quality; product
	// quality is declared first and must win the one-all tie.
	category, _ := c.Categorize("kalite berbat")

	if category != CategoryProductQuality {
		t.Errorf("category = %q, want first-declared %q", category, CategoryProductQuality)
	}
}

func TestCategorizeDeterministic(t *testing.T) {
	t.Parallel()

	c := NewDefaultCategorizer()
	const text = "ödeme yaptım ama fatura kesilmedi, para iadesi istiyorum"

	firstCategory, firstConfidence := c.Categorize(text)
	for i := 0; i < 100; i++ {
		category, confidence := c.Categorize(text)
		if category != firstCategory || confidence != firstConfidence {
			t.Fatalf("iteration %d: got (%q, %v), want (%q, %v)",
				i, category, confidence, firstCategory, firstConfidence)
		}
	}
}

func TestCategorizeConcurrent(t *testing.T) {
	t.Parallel()

	// One shared categorizer serves every request handler; concurrent calls
	// must match the sequential results.
	c := NewDefaultCategorizer()
	texts := []string{
		"Kargo çok geç geldi, teslimat gecikti",
		"iade talebim onaylanmadı",
		"bugün hava çok güzeldi",
		"kalite berbat",
	}
	type outcome struct {
		category   string
		confidence float64
	}
	want := make([]outcome, len(texts))
	for i, text := range texts {
		want[i].category, want[i].confidence = c.Categorize(text)
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				idx := i % len(texts)
				category, confidence := c.Categorize(texts[idx])
				if category != want[idx].category || confidence != want[idx].confidence {
					t.Errorf("text %d: got (%q, %v), want (%q, %v)",
						idx, category, confidence, want[idx].category, want[idx].confidence)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestCategorizeKeywordCoverage(t *testing.T) {
	t.Parallel()

	c := NewDefaultCategorizer()
	tests := []struct {
		text string
		want string
	}{
		{"kusurlu ürün, işçilik berbat", CategoryProductQuality},
		{"paketim lojistik firması yüzünden kayboldu", CategoryCarrierProblem},
		{"teslimatı günlerdir bekliyorum", CategoryShippingDelay},
		{"faturalandırma hatalı, tutar yanlış", CategoryBillingPayment},
		{"telefonla yardım istedim, temsilci kaba", CategoryCustomerService},
		{"uygulama çalışmıyor, sistem hata veriyor", CategoryTechnicalProblem},
	}
	for _, tt := range tests {
		if got, _ := c.Categorize(tt.text); got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestScoresSharedKeyword(t *testing.T) {
	t.Parallel()

	c := NewDefaultCategorizer()
	scores := c.Scores("kalite kötü")

	var hitCategories []string
	for i, score := range scores {
		if score > 0 {
			hitCategories = append(hitCategories, Definitions[i].Name)
		}
	}
	if len(hitCategories) != 2 {
		t.Fatalf("shared keyword hit %d categories (%v), want 2", len(hitCategories), hitCategories)
	}
}

func TestScoresCaseInsensitive(t *testing.T) {
	t.Parallel()

	c := NewDefaultCategorizer()
	upper := c.Scores("KARGO GECİKTİ")
	lower := c.Scores("kargo gecikti")

	for i := range upper {
		if upper[i] != lower[i] {
			t.Fatalf("scores differ at %d: upper=%d lower=%d", i, upper[i], lower[i])
		}
	}
}

func TestCategoryNamesOrder(t *testing.T) {
	t.Parallel()

	names := CategoryNames()
	if len(names) != len(Definitions) {
		t.Fatalf("len(names) = %d, want %d", len(names), len(Definitions))
	}
	if names[0] != CategoryProductQuality {
		t.Errorf("names[0] = %q, want %q", names[0], CategoryProductQuality)
	}
	if names[len(names)-1] != CategoryTechnicalProblem {
		t.Errorf("last name = %q, want %q", names[len(names)-1], CategoryTechnicalProblem)
	}
}
