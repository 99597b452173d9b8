package engine

import "leadpilot/internal/domain/entities"

// quickWinTemplate is the static remediation recipe behind one issue key.
// Impact is expressed in audit-score points (0-30); cost in euro.
type quickWinTemplate struct {
	gap               string
	category          entities.Category
	effort            entities.Effort
	effortHours       float64
	impact            float64
	impactDescription string
	requiredRole      entities.Role
	costMin           float64
	costMax           float64
	actionItems       []string
}

// quickWinTemplates must stay in sync with the taxonomy and the extractor:
// every key the extractor can emit needs an entry here (enforced by the
// catalog consistency test).
var quickWinTemplates = map[entities.IssueKey]quickWinTemplate{
	entities.IssueMissingTitle: {
		gap:               "Tag title mancante in home page",
		category:          entities.CategorySEO,
		effort:            entities.EffortHours,
		effortHours:       1,
		impact:            18,
		impactDescription: "Visibilità immediata nei risultati di ricerca",
		requiredRole:      entities.RoleSEO,
		costMin:           50,
		costMax:           100,
		actionItems: []string{
			"Scrivere un title di 50-60 caratteri con il servizio principale e la località",
			"Verificare che ogni pagina abbia un title unico",
			"Controllare l'anteprima nei risultati di ricerca",
		},
	},
	entities.IssueMissingMetaDescription: {
		gap:               "Meta description mancante",
		category:          entities.CategorySEO,
		effort:            entities.EffortHours,
		effortHours:       2,
		impact:            12,
		impactDescription: "Più clic a parità di posizione su Google",
		requiredRole:      entities.RoleSEO,
		costMin:           80,
		costMax:           150,
		actionItems: []string{
			"Scrivere una description di 150-160 caratteri con invito all'azione",
			"Coprire prima le pagine con più traffico",
		},
	},
	entities.IssueMissingH1: {
		gap:               "Intestazione H1 mancante",
		category:          entities.CategorySEO,
		effort:            entities.EffortHours,
		effortHours:       1,
		impact:            10,
		impactDescription: "Struttura della pagina più chiara per Google",
		requiredRole:      entities.RoleSEO,
		costMin:           50,
		costMax:           100,
		actionItems: []string{
			"Aggiungere un H1 unico che descriva il contenuto principale",
			"Spostare gli H1 duplicati su H2/H3",
		},
	},
	entities.IssueNoSitemap: {
		gap:               "Sitemap XML assente",
		category:          entities.CategorySEO,
		effort:            entities.EffortHours,
		effortHours:       2,
		impact:            6,
		impactDescription: "Indicizzazione più rapida delle pagine",
		requiredRole:      entities.RoleSEO,
		costMin:           80,
		costMax:           150,
		actionItems: []string{
			"Generare la sitemap XML",
			"Inviarla a Google Search Console",
			"Linkarla dal robots.txt",
		},
	},
	entities.IssueNoRobotsTxt: {
		gap:               "File robots.txt assente",
		category:          entities.CategorySEO,
		effort:            entities.EffortHours,
		effortHours:       1,
		impact:            4,
		impactDescription: "Controllo su cosa viene indicizzato",
		requiredRole:      entities.RoleSEO,
		costMin:           50,
		costMax:           80,
		actionItems: []string{
			"Pubblicare un robots.txt con riferimento alla sitemap",
			"Escludere le aree riservate dal crawling",
		},
	},
	entities.IssueNoStructuredData: {
		gap:               "Dati strutturati schema.org assenti",
		category:          entities.CategorySEO,
		effort:            entities.EffortHours,
		effortHours:       4,
		impact:            10,
		impactDescription: "Rich snippet nei risultati di ricerca",
		requiredRole:      entities.RoleSEO,
		costMin:           150,
		costMax:           300,
		actionItems: []string{
			"Aggiungere markup JSON-LD LocalBusiness",
			"Marcare recensioni e orari di apertura",
			"Validare con il test dei risultati multimediali",
		},
	},
	entities.IssueVerySlowLoading: {
		gap:               "Caricamento oltre i 5 secondi",
		category:          entities.CategoryPerformance,
		effort:            entities.EffortDays,
		effortHours:       16,
		impact:            22,
		impactDescription: "Drastica riduzione dell'abbandono dei visitatori",
		requiredRole:      entities.RoleDeveloper,
		costMin:           500,
		costMax:           1200,
		actionItems: []string{
			"Profilare il caricamento e individuare i colli di bottiglia",
			"Attivare caching e compressione lato server",
			"Valutare un hosting più performante",
		},
	},
	entities.IssueSlowLoading: {
		gap:               "Caricamento oltre i 3 secondi",
		category:          entities.CategoryPerformance,
		effort:            entities.EffortDays,
		effortHours:       12,
		impact:            15,
		impactDescription: "Più conversioni grazie a pagine più reattive",
		requiredRole:      entities.RoleDeveloper,
		costMin:           300,
		costMax:           800,
		actionItems: []string{
			"Ottimizzare immagini e script di terze parti",
			"Attivare il caching del browser",
			"Rimandare il caricamento delle risorse non critiche",
		},
	},
	entities.IssueLowSpeedScore: {
		gap:               "Punteggio velocità sotto soglia",
		category:          entities.CategoryPerformance,
		effort:            entities.EffortDays,
		effortHours:       8,
		impact:            12,
		impactDescription: "Core Web Vitals in area positiva",
		requiredRole:      entities.RoleDeveloper,
		costMin:           250,
		costMax:           600,
		actionItems: []string{
			"Analizzare le metriche LCP, CLS e INP",
			"Intervenire sulle risorse più pesanti",
		},
	},
	entities.IssueMissingAltTags: {
		gap:               "Immagini senza testo alternativo",
		category:          entities.CategorySEO,
		effort:            entities.EffortHours,
		effortHours:       3,
		impact:            8,
		impactDescription: "Accessibilità e SEO immagini migliorate",
		requiredRole:      entities.RoleSEO,
		costMin:           100,
		costMax:           200,
		actionItems: []string{
			"Aggiungere alt descrittivi alle immagini significative",
			"Lasciare alt vuoto sulle immagini decorative",
		},
	},
	entities.IssueHeavyImages: {
		gap:               "Immagini oltre il peso consigliato",
		category:          entities.CategoryPerformance,
		effort:            entities.EffortHours,
		effortHours:       4,
		impact:            10,
		impactDescription: "Pagine più leggere soprattutto da mobile",
		requiredRole:      entities.RoleDesigner,
		costMin:           120,
		costMax:           250,
		actionItems: []string{
			"Comprimere le immagini esistenti",
			"Convertire in WebP/AVIF",
			"Impostare il ridimensionamento automatico",
		},
	},
	entities.IssueNoSSL: {
		gap:               "Sito servito senza HTTPS",
		category:          entities.CategorySecurity,
		effort:            entities.EffortHours,
		effortHours:       2,
		impact:            25,
		impactDescription: "Via l'avviso 'non sicuro' e recupero di fiducia e ranking",
		requiredRole:      entities.RoleDeveloper,
		costMin:           100,
		costMax:           250,
		actionItems: []string{
			"Installare un certificato SSL",
			"Forzare il redirect 301 su HTTPS",
			"Aggiornare i riferimenti interni a http://",
		},
	},
	entities.IssueNoAnalytics: {
		gap:               "Nessun sistema di analytics installato",
		category:          entities.CategoryTracking,
		effort:            entities.EffortHours,
		effortHours:       2,
		impact:            10,
		impactDescription: "Decisioni basate su dati reali di traffico",
		requiredRole:      entities.RoleMarketer,
		costMin:           80,
		costMax:           150,
		actionItems: []string{
			"Installare Google Analytics 4",
			"Configurare gli eventi di conversione principali",
		},
	},
	entities.IssueNoFacebookPixel: {
		gap:               "Facebook Pixel assente",
		category:          entities.CategoryTracking,
		effort:            entities.EffortHours,
		effortHours:       2,
		impact:            6,
		impactDescription: "Retargeting possibile sulle campagne social",
		requiredRole:      entities.RoleMarketer,
		costMin:           80,
		costMax:           150,
		actionItems: []string{
			"Installare il pixel di Meta",
			"Configurare gli eventi standard",
		},
	},
	entities.IssueNoTagManager: {
		gap:               "Tag di tracciamento non centralizzati",
		category:          entities.CategoryTracking,
		effort:            entities.EffortHours,
		effortHours:       3,
		impact:            5,
		impactDescription: "Gestione dei tag senza interventi sul codice",
		requiredRole:      entities.RoleMarketer,
		costMin:           100,
		costMax:           200,
		actionItems: []string{
			"Installare Google Tag Manager",
			"Migrare i tag esistenti nel contenitore",
		},
	},
	entities.IssueNoCookieBanner: {
		gap:               "Consenso cookie non richiesto",
		category:          entities.CategoryGDPR,
		effort:            entities.EffortHours,
		effortHours:       4,
		impact:            14,
		impactDescription: "Conformità GDPR e stop al rischio sanzioni",
		requiredRole:      entities.RoleDeveloper,
		costMin:           150,
		costMax:           400,
		actionItems: []string{
			"Installare un banner con blocco preventivo dei cookie",
			"Classificare i cookie per categoria",
			"Registrare le preferenze di consenso",
		},
	},
	entities.IssueNoPrivacyPolicy: {
		gap:               "Informativa privacy non pubblicata",
		category:          entities.CategoryGDPR,
		effort:            entities.EffortHours,
		effortHours:       6,
		impact:            12,
		impactDescription: "Obbligo di legge assolto, fiducia dei clienti",
		requiredRole:      entities.RoleCopywriter,
		costMin:           200,
		costMax:           450,
		actionItems: []string{
			"Redigere l'informativa sul trattamento dei dati",
			"Linkarla dal footer di ogni pagina",
		},
	},
	entities.IssueNotMobileFriendly: {
		gap:               "Sito inutilizzabile da smartphone",
		category:          entities.CategoryMobile,
		effort:            entities.EffortDays,
		effortHours:       24,
		impact:            25,
		impactDescription: "Recupero di oltre metà dei visitatori potenziali",
		requiredRole:      entities.RoleDeveloper,
		costMin:           800,
		costMax:           2000,
		actionItems: []string{
			"Rendere il layout responsive",
			"Adeguare dimensioni di testi e pulsanti al touch",
			"Testare sulle principali dimensioni di schermo",
		},
	},
	entities.IssueNoViewportMeta: {
		gap:               "Meta viewport mancante",
		category:          entities.CategoryMobile,
		effort:            entities.EffortHours,
		effortHours:       2,
		impact:            10,
		impactDescription: "Resa mobile corretta con un intervento minimo",
		requiredRole:      entities.RoleDeveloper,
		costMin:           80,
		costMax:           150,
		actionItems: []string{
			"Aggiungere il meta tag viewport standard",
			"Verificare la resa su mobile dopo la modifica",
		},
	},
	entities.IssueThinContent: {
		gap:               "Meno di 200 parole di contenuto",
		category:          entities.CategoryContent,
		effort:            entities.EffortDays,
		effortHours:       16,
		impact:            12,
		impactDescription: "Il sito inizia a posizionarsi per ricerche utili",
		requiredRole:      entities.RoleCopywriter,
		costMin:           400,
		costMax:           900,
		actionItems: []string{
			"Descrivere servizi e punti di forza in pagine dedicate",
			"Rispondere alle domande frequenti dei clienti",
			"Pianificare aggiornamenti periodici",
		},
	},
	entities.IssueNoContactInfo: {
		gap:               "Contatti non rilevabili sul sito",
		category:          entities.CategoryContent,
		effort:            entities.EffortHours,
		effortHours:       2,
		impact:            8,
		impactDescription: "Meno clienti persi per frustrazione",
		requiredRole:      entities.RoleDesigner,
		costMin:           80,
		costMax:           150,
		actionItems: []string{
			"Esporre telefono ed email in header e footer",
			"Creare una pagina contatti con mappa e modulo",
		},
	},
	entities.IssueSiteUnreachable: {
		gap:               "Sito offline o con errori di caricamento",
		category:          entities.CategoryTechnical,
		effort:            entities.EffortDays,
		effortHours:       8,
		impact:            30,
		impactDescription: "Il sito torna a lavorare per l'azienda",
		requiredRole:      entities.RoleDeveloper,
		costMin:           200,
		costMax:           600,
		actionItems: []string{
			"Diagnosticare hosting e DNS",
			"Ripristinare la raggiungibilità",
			"Attivare il monitoraggio dell'uptime",
		},
	},
}
