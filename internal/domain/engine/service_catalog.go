package engine

import "leadpilot/internal/domain/entities"

// serviceTemplate describes one professional service of the offering.
// BasePrice is in euro; estimatedDays is the sequential effort of the
// specialist who owns the service's category.
type serviceTemplate struct {
	key           string
	service       string
	description   string
	basePrice     float64
	estimatedDays int
	roiEstimate   string
	category      entities.Category
}

const (
	svcSEOAudit            = "seo_audit"
	svcOnPageSEO           = "onpage_seo"
	svcTechnicalSEO        = "technical_seo"
	svcStructuredData      = "structured_data_markup"
	svcImageAlt            = "image_alt_optimization"
	svcPerformanceOpt      = "performance_optimization"
	svcCachingSetup        = "caching_setup"
	svcImageCompression    = "image_compression"
	svcWebVitalsTuning     = "core_web_vitals_tuning"
	svcSSLSetup            = "ssl_setup"
	svcSecurityHardening   = "security_hardening"
	svcAnalyticsSetup      = "analytics_setup"
	svcPixelSetup          = "pixel_setup"
	svcTagManagerSetup     = "tag_manager_setup"
	svcGDPRReview          = "gdpr_compliance_review"
	svcCookieBanner        = "cookie_banner_setup"
	svcPrivacyPolicy       = "privacy_policy_drafting"
	svcMobileOptimization  = "mobile_optimization"
	svcViewportFix         = "viewport_fix"
	svcContentStrategy     = "content_strategy"
	svcCopywritingRefresh  = "copywriting_refresh"
	svcContactPage         = "contact_page_setup"
	svcAccessibilityReview = "accessibility_review"
	svcSiteRecovery        = "site_recovery"
	svcUptimeMonitoring    = "uptime_monitoring"
	svcWebsiteOverhaul     = "website_overhaul"
)

var serviceTemplates = map[string]serviceTemplate{
	svcSEOAudit: {
		key:           svcSEOAudit,
		service:       "Audit SEO completo",
		description:   "Analisi approfondita di struttura, contenuti e posizionamento con piano d'azione prioritizzato.",
		basePrice:     800,
		estimatedDays: 3,
		roiEstimate:   "Base per recuperare traffico organico su tutte le pagine",
		category:      entities.CategorySEO,
	},
	svcOnPageSEO: {
		key:           svcOnPageSEO,
		service:       "Ottimizzazione SEO on-page",
		description:   "Sistemazione di title, meta description e struttura delle intestazioni.",
		basePrice:     500,
		estimatedDays: 2,
		roiEstimate:   "Più clic dai risultati di ricerca entro poche settimane",
		category:      entities.CategorySEO,
	},
	svcTechnicalSEO: {
		key:           svcTechnicalSEO,
		service:       "SEO tecnica",
		description:   "Pubblicazione di sitemap XML e robots.txt e invio a Search Console.",
		basePrice:     400,
		estimatedDays: 2,
		roiEstimate:   "Indicizzazione completa del sito",
		category:      entities.CategorySEO,
	},
	svcStructuredData: {
		key:           svcStructuredData,
		service:       "Markup dati strutturati",
		description:   "Implementazione di markup JSON-LD per attività, servizi e recensioni.",
		basePrice:     450,
		estimatedDays: 2,
		roiEstimate:   "Rich snippet e maggiore visibilità nei risultati",
		category:      entities.CategorySEO,
	},
	svcImageAlt: {
		key:           svcImageAlt,
		service:       "Ottimizzazione alt text immagini",
		description:   "Testi alternativi descrittivi su tutte le immagini significative.",
		basePrice:     250,
		estimatedDays: 1,
		roiEstimate:   "Accessibilità e traffico da ricerca immagini",
		category:      entities.CategorySEO,
	},
	svcPerformanceOpt: {
		key:           svcPerformanceOpt,
		service:       "Ottimizzazione performance",
		description:   "Intervento completo su tempi di caricamento: hosting, risorse e rendering.",
		basePrice:     1200,
		estimatedDays: 4,
		roiEstimate:   "Meno abbandoni e più conversioni su ogni pagina",
		category:      entities.CategoryPerformance,
	},
	svcCachingSetup: {
		key:           svcCachingSetup,
		service:       "Configurazione caching",
		description:   "Caching lato server e browser con invalidazione corretta.",
		basePrice:     400,
		estimatedDays: 1,
		roiEstimate:   "Tempi di risposta dimezzati per i visitatori di ritorno",
		category:      entities.CategoryPerformance,
	},
	svcImageCompression: {
		key:           svcImageCompression,
		service:       "Compressione immagini",
		description:   "Compressione e conversione in formati moderni delle immagini esistenti.",
		basePrice:     300,
		estimatedDays: 1,
		roiEstimate:   "Pagine più leggere soprattutto su rete mobile",
		category:      entities.CategoryPerformance,
	},
	svcWebVitalsTuning: {
		key:           svcWebVitalsTuning,
		service:       "Tuning Core Web Vitals",
		description:   "Ottimizzazione mirata delle metriche LCP, CLS e INP.",
		basePrice:     700,
		estimatedDays: 3,
		roiEstimate:   "Metriche di esperienza in area positiva per Google",
		category:      entities.CategoryPerformance,
	},
	svcSSLSetup: {
		key:           svcSSLSetup,
		service:       "Attivazione HTTPS",
		description:   "Installazione del certificato SSL e redirect completo del traffico su HTTPS.",
		basePrice:     350,
		estimatedDays: 1,
		roiEstimate:   "Via l'avviso 'non sicuro': prerequisito di fiducia e ranking",
		category:      entities.CategorySecurity,
	},
	svcSecurityHardening: {
		key:           svcSecurityHardening,
		service:       "Hardening sicurezza",
		description:   "Header di sicurezza, HSTS e verifica delle superfici esposte.",
		basePrice:     600,
		estimatedDays: 2,
		roiEstimate:   "Riduzione concreta del rischio di compromissione",
		category:      entities.CategorySecurity,
	},
	svcAnalyticsSetup: {
		key:           svcAnalyticsSetup,
		service:       "Configurazione Google Analytics",
		description:   "Installazione di GA4 con eventi e obiettivi di conversione.",
		basePrice:     300,
		estimatedDays: 1,
		roiEstimate:   "Visibilità completa su traffico e conversioni",
		category:      entities.CategoryTracking,
	},
	svcPixelSetup: {
		key:           svcPixelSetup,
		service:       "Configurazione Facebook Pixel",
		description:   "Installazione del pixel di Meta con eventi standard.",
		basePrice:     250,
		estimatedDays: 1,
		roiEstimate:   "Campagne social con retargeting sui visitatori",
		category:      entities.CategoryTracking,
	},
	svcTagManagerSetup: {
		key:           svcTagManagerSetup,
		service:       "Configurazione Tag Manager",
		description:   "Google Tag Manager con migrazione dei tag esistenti.",
		basePrice:     300,
		estimatedDays: 1,
		roiEstimate:   "Tracciamento modificabile senza interventi sul codice",
		category:      entities.CategoryTracking,
	},
	svcGDPRReview: {
		key:           svcGDPRReview,
		service:       "Revisione conformità GDPR",
		description:   "Mappatura dei trattamenti, redazione informativa e adeguamento cookie.",
		basePrice:     900,
		estimatedDays: 3,
		roiEstimate:   "Copertura completa dagli obblighi privacy",
		category:      entities.CategoryGDPR,
	},
	svcCookieBanner: {
		key:           svcCookieBanner,
		service:       "Cookie banner a norma",
		description:   "Banner di consenso con blocco preventivo e registro delle preferenze.",
		basePrice:     400,
		estimatedDays: 1,
		roiEstimate:   "Eliminazione immediata del rischio sanzioni sui cookie",
		category:      entities.CategoryGDPR,
	},
	svcPrivacyPolicy: {
		key:           svcPrivacyPolicy,
		service:       "Redazione privacy policy",
		description:   "Informativa sul trattamento dei dati redatta e pubblicata.",
		basePrice:     500,
		estimatedDays: 2,
		roiEstimate:   "Obbligo di legge assolto e fiducia dei clienti",
		category:      entities.CategoryGDPR,
	},
	svcMobileOptimization: {
		key:           svcMobileOptimization,
		service:       "Ottimizzazione mobile",
		description:   "Layout responsive completo con test sulle principali dimensioni di schermo.",
		basePrice:     2000,
		estimatedDays: 7,
		roiEstimate:   "Recupero della quota di visitatori da smartphone",
		category:      entities.CategoryMobile,
	},
	svcViewportFix: {
		key:           svcViewportFix,
		service:       "Correzione viewport responsive",
		description:   "Meta viewport e aggiustamenti minimi per la resa mobile.",
		basePrice:     350,
		estimatedDays: 1,
		roiEstimate:   "Resa mobile corretta con un intervento minimo",
		category:      entities.CategoryMobile,
	},
	svcContentStrategy: {
		key:           svcContentStrategy,
		service:       "Piano contenuti",
		description:   "Stesura dei contenuti mancanti: servizi, punti di forza, domande frequenti.",
		basePrice:     900,
		estimatedDays: 4,
		roiEstimate:   "Il sito inizia a posizionarsi per ricerche utili",
		category:      entities.CategoryContent,
	},
	svcCopywritingRefresh: {
		key:           svcCopywritingRefresh,
		service:       "Revisione testi",
		description:   "Riscrittura dei testi esistenti in ottica di chiarezza e conversione.",
		basePrice:     700,
		estimatedDays: 3,
		roiEstimate:   "Messaggio più chiaro, più richieste di contatto",
		category:      entities.CategoryContent,
	},
	svcContactPage: {
		key:           svcContactPage,
		service:       "Pagina contatti",
		description:   "Pagina contatti con mappa, modulo e recapiti in evidenza su tutto il sito.",
		basePrice:     250,
		estimatedDays: 1,
		roiEstimate:   "Meno clienti persi per frustrazione",
		category:      entities.CategoryContent,
	},
	svcAccessibilityReview: {
		key:           svcAccessibilityReview,
		service:       "Revisione accessibilità",
		description:   "Verifica e correzione dei principali ostacoli di accessibilità.",
		basePrice:     600,
		estimatedDays: 2,
		roiEstimate:   "Sito fruibile da tutti i visitatori",
		category:      entities.CategoryTechnical,
	},
	svcSiteRecovery: {
		key:           svcSiteRecovery,
		service:       "Ripristino sito offline",
		description:   "Diagnosi di hosting e DNS e ripristino della raggiungibilità.",
		basePrice:     1500,
		estimatedDays: 5,
		roiEstimate:   "Il sito torna a generare contatti",
		category:      entities.CategoryTechnical,
	},
	svcUptimeMonitoring: {
		key:           svcUptimeMonitoring,
		service:       "Monitoraggio uptime",
		description:   "Monitoraggio continuo della raggiungibilità con avvisi immediati.",
		basePrice:     200,
		estimatedDays: 1,
		roiEstimate:   "Fermi scoperti in minuti, non in settimane",
		category:      entities.CategoryTechnical,
	},
	svcWebsiteOverhaul: {
		key:           svcWebsiteOverhaul,
		service:       "Rifacimento base tecnica",
		description:   "Ricostruzione della base tecnica del sito su fondamenta moderne.",
		basePrice:     4500,
		estimatedDays: 15,
		roiEstimate:   "Un sito che smette di perdere clienti e inizia a portarne",
		category:      entities.CategoryTechnical,
	},
}

// serviceRule selects a service when its predicate holds. Rules are
// evaluated in order, one dimension at a time, mirroring the extractor. The
// first rule that selects a given service wins (the stricter load-time rule
// shadows the looser one); `unless` suppresses a narrow service when a
// broader one is already selected.
type serviceRule struct {
	serviceKey string
	priority   entities.PriorityTier
	unless     []string
	match      func(a *entities.AuditSnapshot) bool
}

var serviceRules = []serviceRule{
	{serviceKey: svcSEOAudit, priority: entities.PriorityHigh, match: func(a *entities.AuditSnapshot) bool {
		return seoGapCount(a) >= 3
	}},
	{serviceKey: svcOnPageSEO, priority: entities.PriorityHigh, unless: []string{svcSEOAudit}, match: func(a *entities.AuditSnapshot) bool {
		return a.SEO != nil && (!a.SEO.HasTitle || !a.SEO.HasMetaDescription || !a.SEO.HasH1)
	}},
	{serviceKey: svcTechnicalSEO, priority: entities.PriorityMedium, unless: []string{svcSEOAudit}, match: func(a *entities.AuditSnapshot) bool {
		return a.SEO != nil && (!a.SEO.HasSitemap || !a.SEO.HasRobotsTxt)
	}},
	{serviceKey: svcStructuredData, priority: entities.PriorityMedium, match: func(a *entities.AuditSnapshot) bool {
		return a.SEO != nil && !a.SEO.HasStructuredData
	}},
	{serviceKey: svcPerformanceOpt, priority: entities.PriorityCritical, match: func(a *entities.AuditSnapshot) bool {
		return a.Performance != nil && a.Performance.LoadTimeMs > verySlowLoadThresholdMs
	}},
	{serviceKey: svcPerformanceOpt, priority: entities.PriorityHigh, match: func(a *entities.AuditSnapshot) bool {
		return a.Performance != nil && a.Performance.LoadTimeMs > slowLoadThresholdMs
	}},
	{serviceKey: svcCachingSetup, priority: entities.PriorityMedium, match: func(a *entities.AuditSnapshot) bool {
		return a.Performance != nil && a.Performance.LoadTimeMs > slowLoadThresholdMs
	}},
	{serviceKey: svcWebVitalsTuning, priority: entities.PriorityMedium, match: func(a *entities.AuditSnapshot) bool {
		return a.Performance != nil && speedScoreOf(a.Performance) < lowSpeedScoreThreshold
	}},
	{serviceKey: svcImageAlt, priority: entities.PriorityMedium, match: func(a *entities.AuditSnapshot) bool {
		return a.Images != nil && a.Images.WithoutAlt > 0
	}},
	{serviceKey: svcImageCompression, priority: entities.PriorityMedium, match: func(a *entities.AuditSnapshot) bool {
		return a.Images != nil && a.Images.Oversized > 0
	}},
	{serviceKey: svcSSLSetup, priority: entities.PriorityCritical, match: func(a *entities.AuditSnapshot) bool {
		return a.Security != nil && !a.Security.HasSSL
	}},
	{serviceKey: svcSecurityHardening, priority: entities.PriorityHigh, match: func(a *entities.AuditSnapshot) bool {
		return a.Security != nil && !a.Security.HasSSL
	}},
	{serviceKey: svcAnalyticsSetup, priority: entities.PriorityMedium, match: func(a *entities.AuditSnapshot) bool {
		return a.Tracking != nil && !a.Tracking.HasGoogleAnalytics
	}},
	{serviceKey: svcPixelSetup, priority: entities.PriorityLow, match: func(a *entities.AuditSnapshot) bool {
		return a.Tracking != nil && !a.Tracking.HasFacebookPixel
	}},
	{serviceKey: svcTagManagerSetup, priority: entities.PriorityLow, match: func(a *entities.AuditSnapshot) bool {
		return a.Tracking != nil && !a.Tracking.HasTagManager
	}},
	{serviceKey: svcGDPRReview, priority: entities.PriorityHigh, match: func(a *entities.AuditSnapshot) bool {
		return a.GDPR != nil && !a.GDPR.HasCookieBanner && !a.GDPR.HasPrivacyPolicy
	}},
	// Installing cookies without consent is direct legal exposure, hence
	// always critical regardless of the broader review.
	{serviceKey: svcCookieBanner, priority: entities.PriorityCritical, match: func(a *entities.AuditSnapshot) bool {
		return a.GDPR != nil && !a.GDPR.HasCookieBanner
	}},
	{serviceKey: svcPrivacyPolicy, priority: entities.PriorityHigh, unless: []string{svcGDPRReview}, match: func(a *entities.AuditSnapshot) bool {
		return a.GDPR != nil && !a.GDPR.HasPrivacyPolicy
	}},
	{serviceKey: svcMobileOptimization, priority: entities.PriorityCritical, match: func(a *entities.AuditSnapshot) bool {
		return a.Mobile != nil && !a.Mobile.IsMobileFriendly
	}},
	{serviceKey: svcViewportFix, priority: entities.PriorityMedium, unless: []string{svcMobileOptimization}, match: func(a *entities.AuditSnapshot) bool {
		return a.Mobile != nil && !a.Mobile.HasViewportMeta
	}},
	{serviceKey: svcContentStrategy, priority: entities.PriorityMedium, match: func(a *entities.AuditSnapshot) bool {
		return a.Content != nil && a.Content.WordCount < thinContentWordCount
	}},
	{serviceKey: svcCopywritingRefresh, priority: entities.PriorityMedium, match: func(a *entities.AuditSnapshot) bool {
		return a.Content != nil && a.Content.WordCount >= thinContentWordCount && a.Content.WordCount < 500
	}},
	{serviceKey: svcContactPage, priority: entities.PriorityLow, match: func(a *entities.AuditSnapshot) bool {
		return a.Content != nil && !a.Content.HasContactInfo
	}},
	{serviceKey: svcAccessibilityReview, priority: entities.PriorityMedium, match: func(a *entities.AuditSnapshot) bool {
		return (a.Images != nil && a.Images.WithoutAlt > 5) || (a.Mobile != nil && !a.Mobile.HasViewportMeta)
	}},
	{serviceKey: svcSiteRecovery, priority: entities.PriorityCritical, match: func(a *entities.AuditSnapshot) bool {
		return a.SiteStatus != nil && !a.SiteStatus.IsOnline
	}},
	{serviceKey: svcUptimeMonitoring, priority: entities.PriorityLow, match: func(a *entities.AuditSnapshot) bool {
		return a.SiteStatus != nil && !a.SiteStatus.IsOnline
	}},
	{serviceKey: svcWebsiteOverhaul, priority: entities.PriorityCritical, match: func(a *entities.AuditSnapshot) bool {
		return a.OverallScore < 40
	}},
}

func seoGapCount(a *entities.AuditSnapshot) int {
	if a.SEO == nil {
		return 0
	}
	n := 0
	for _, present := range []bool{
		a.SEO.HasTitle,
		a.SEO.HasMetaDescription,
		a.SEO.HasH1,
		a.SEO.HasSitemap,
		a.SEO.HasRobotsTxt,
		a.SEO.HasStructuredData,
	} {
		if !present {
			n++
		}
	}
	return n
}

// ServiceCatalogKeys returns every known service key; rule order is not
// implied. Used by the catalog consistency checks.
func ServiceCatalogKeys() []string {
	keys := make([]string, 0, len(serviceTemplates))
	for k := range serviceTemplates {
		keys = append(keys, k)
	}
	return keys
}
