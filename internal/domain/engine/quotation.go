package engine

import (
	"fmt"
	"math"
	"sort"

	"leadpilot/internal/domain/entities"
)

const (
	bundleDiscountMinServices = 3
	bundleDiscountPctPerSvc   = 3
	bundleDiscountPctCap      = 15
)

// Payment term tiers, keyed on the quotation total.
const (
	paymentTierUpfrontMax = 500
	paymentTierSplitMax   = 2000
	paymentTierThirdsMax  = 5000
)

type selectedService struct {
	tpl      serviceTemplate
	priority entities.PriorityTier
}

func selectServices(a *entities.AuditSnapshot) []selectedService {
	chosen := make(map[string]bool)
	selected := make([]selectedService, 0, len(serviceRules))
	for _, r := range serviceRules {
		if chosen[r.serviceKey] {
			continue
		}
		suppressed := false
		for _, u := range r.unless {
			if chosen[u] {
				suppressed = true
				break
			}
		}
		if suppressed || !r.match(a) {
			continue
		}
		tpl, ok := serviceTemplates[r.serviceKey]
		if !ok {
			// Catalog drift: a rule without a template selects nothing.
			continue
		}
		chosen[r.serviceKey] = true
		selected = append(selected, selectedService{tpl: tpl, priority: r.priority})
	}
	return selected
}

// BuildQuotation maps an audit snapshot into a priced, time-boxed service
// proposal. multiplier scales every base price uniformly (regional or
// promotional pricing); it is applied as given, validation belongs to the
// caller. An audit that selects no services yields an empty quotation with
// zero totals: deciding whether that is an error belongs to the API layer.
func BuildQuotation(a entities.AuditSnapshot, businessName, websiteURL string, multiplier float64) entities.Quotation {
	selected := selectServices(&a)

	lines := make([]entities.ServiceQuotation, 0, len(selected))
	for _, s := range selected {
		lines = append(lines, entities.ServiceQuotation{
			Service:       s.tpl.service,
			Description:   s.tpl.description,
			BasePrice:     s.tpl.basePrice,
			AdjustedPrice: math.Round(s.tpl.basePrice * multiplier),
			Priority:      s.priority,
			EstimatedDays: s.tpl.estimatedDays,
			ROIEstimate:   s.tpl.roiEstimate,
			Category:      s.tpl.category,
		})
	}
	// Stable: equal tiers keep rule order, which is the catalog tie-break.
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Priority.Rank() < lines[j].Priority.Rank()
	})

	var subtotal float64
	for _, l := range lines {
		subtotal += l.AdjustedPrice
	}

	total := subtotal
	var discount *entities.Discount
	if len(lines) >= bundleDiscountMinServices {
		pct := float64(len(lines) * bundleDiscountPctPerSvc)
		if pct > bundleDiscountPctCap {
			pct = bundleDiscountPctCap
		}
		discount = &entities.Discount{
			Percentage: pct,
			Reason:     fmt.Sprintf("Sconto pacchetto per %d interventi combinati", len(lines)),
		}
		total = math.Round(subtotal * (1 - pct/100))
	}

	critical, high := tierCounts(lines)

	return entities.Quotation{
		BusinessName:       businessName,
		WebsiteURL:         websiteURL,
		Services:           lines,
		Subtotal:           subtotal,
		Discount:           discount,
		Total:              total,
		EstimatedTotalDays: estimateTotalDays(lines),
		Complexity:         classifyComplexity(critical, high),
		PaymentTerms:       PaymentTermsLabel(total),
		ROISummary:         roiSummary(a.OverallScore, critical, high),
	}
}

func tierCounts(lines []entities.ServiceQuotation) (critical, high int) {
	for _, l := range lines {
		switch l.Priority {
		case entities.PriorityCritical:
			critical++
		case entities.PriorityHigh:
			high++
		}
	}
	return critical, high
}

// classifyComplexity buckets the quotation by counts of critical and high
// priority services. The branches are ordered: first match wins.
func classifyComplexity(critical, high int) entities.Complexity {
	switch {
	case critical >= 3 || (critical >= 1 && high >= 3):
		return entities.ComplexityEnterprise
	case critical >= 2 || high >= 3:
		return entities.ComplexityComplex
	case critical >= 1 || high >= 2:
		return entities.ComplexityMedium
	default:
		return entities.ComplexitySimple
	}
}

// estimateTotalDays models delivery as parallel per-category tracks: each
// category is one specialist working sequentially. The longest track is the
// critical path; the other tracks run alongside it but cost 50% of their
// duration in coordination. The grand total is rounded up to whole days.
func estimateTotalDays(lines []entities.ServiceQuotation) int {
	if len(lines) == 0 {
		return 0
	}
	byCategory := make(map[entities.Category]int)
	for _, l := range lines {
		byCategory[l.Category] += l.EstimatedDays
	}

	longest := 0
	sum := 0
	for _, days := range byCategory {
		sum += days
		if days > longest {
			longest = days
		}
	}
	if len(byCategory) == 1 {
		return longest
	}
	others := float64(sum - longest)
	return int(math.Ceil(float64(longest) + others/2))
}

// PaymentTermsLabel returns the customer-facing payment schedule for a
// quotation total.
func PaymentTermsLabel(total float64) string {
	switch {
	case total <= paymentTierUpfrontMax:
		return "Pagamento completo alla firma"
	case total <= paymentTierSplitMax:
		return "50% alla firma, 50% alla consegna"
	case total <= paymentTierThirdsMax:
		return "30% alla firma, 40% a metà progetto, 30% alla consegna"
	default:
		return "20% alla firma, 30% al primo milestone, 30% al secondo milestone, 20% alla consegna"
	}
}

// DepositShare returns the fraction of the total due at signing, implied by
// the same tiers as PaymentTermsLabel.
func DepositShare(total float64) float64 {
	switch {
	case total <= paymentTierUpfrontMax:
		return 1.0
	case total <= paymentTierSplitMax:
		return 0.5
	case total <= paymentTierThirdsMax:
		return 0.3
	default:
		return 0.2
	}
}

func roiSummary(score float64, critical, high int) string {
	potential := math.Min(100, score+float64(critical)*15+float64(high)*8)
	switch {
	case score < 30:
		return fmt.Sprintf("Il sito presenta criticità gravi: il punteggio attuale è %.0f su 100. Gli interventi proposti possono portarlo a %.0f, con un impatto diretto su visibilità, fiducia e conversioni.", score, potential)
	case score < 50:
		return fmt.Sprintf("Il sito ha margini di miglioramento importanti: dal punteggio attuale di %.0f è realistico raggiungere %.0f completando gli interventi proposti.", score, potential)
	case score < 70:
		return fmt.Sprintf("Il sito ha una base solida ma lascia opportunità sul tavolo: il punteggio può salire da %.0f a %.0f con gli interventi indicati.", score, potential)
	default:
		return fmt.Sprintf("Il sito è già competitivo (%.0f su 100): gli interventi proposti consolidano il vantaggio e possono portare il punteggio fino a %.0f.", score, potential)
	}
}
