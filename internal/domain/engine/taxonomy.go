package engine

import "leadpilot/internal/domain/entities"

// taxonomyEntries is the static issue taxonomy: one human-readable
// translation per issue key the extractor can emit.
//
// Declaration order matters: it is the documented tie-break used by
// MainProblem when two issues share the same severity. Keep new entries
// grouped by dimension, most severe first within the group.
var taxonomyEntries = []entities.TranslatedProblem{
	{
		Key:         entities.IssueNoSSL,
		Title:       "Sito senza HTTPS",
		Description: "Il sito non usa un certificato SSL: i dati viaggiano in chiaro e i browser lo segnalano come non sicuro.",
		Impact:      "Perdita immediata di fiducia dei visitatori e penalizzazione nel ranking Google.",
		Solution:    "Installare un certificato SSL e forzare il redirect di tutto il traffico su HTTPS.",
		Severity:    entities.SeverityCritical,
		Category:    entities.CategorySecurity,
	},
	{
		Key:         entities.IssueNotMobileFriendly,
		Title:       "Sito non ottimizzato per mobile",
		Description: "Le pagine non si adattano agli schermi degli smartphone: testi illeggibili e navigazione difficoltosa.",
		Impact:      "Oltre la metà del traffico arriva da mobile: un sito non responsive perde gran parte dei potenziali clienti.",
		Solution:    "Rendere il layout responsive e verificare la resa sulle principali dimensioni di schermo.",
		Severity:    entities.SeverityCritical,
		Category:    entities.CategoryMobile,
	},
	{
		Key:         entities.IssueVerySlowLoading,
		Title:       "Caricamento estremamente lento",
		Description: "La pagina impiega più di 5 secondi a caricarsi.",
		Impact:      "La maggioranza degli utenti abbandona un sito che non risponde entro pochi secondi.",
		Solution:    "Intervenire su hosting, caching e peso delle risorse per portare il caricamento sotto i 3 secondi.",
		Severity:    entities.SeverityCritical,
		Category:    entities.CategoryPerformance,
	},
	{
		Key:         entities.IssueSiteUnreachable,
		Title:       "Sito non raggiungibile",
		Description: "Il sito non risponde o restituisce errori al caricamento.",
		Impact:      "Ogni visita persa è un potenziale cliente perso; anche i motori di ricerca declassano i siti offline.",
		Solution:    "Verificare hosting e DNS e attivare un monitoraggio dell'uptime.",
		Severity:    entities.SeverityCritical,
		Category:    entities.CategoryTechnical,
	},
	{
		Key:         entities.IssueSlowLoading,
		Title:       "Caricamento lento",
		Description: "La pagina impiega più di 3 secondi a caricarsi.",
		Impact:      "Ogni secondo di attesa in più riduce sensibilmente le conversioni.",
		Solution:    "Ottimizzare immagini, caching e script di terze parti.",
		Severity:    entities.SeverityHigh,
		Category:    entities.CategoryPerformance,
	},
	{
		Key:         entities.IssueMissingTitle,
		Title:       "Tag title mancante",
		Description: "La home page non ha un tag <title>.",
		Impact:      "Google non sa come presentare il sito nei risultati di ricerca: visibilità quasi azzerata.",
		Solution:    "Scrivere un title unico e descrittivo (50-60 caratteri) per ogni pagina.",
		Severity:    entities.SeverityHigh,
		Category:    entities.CategorySEO,
	},
	{
		Key:         entities.IssueNoCookieBanner,
		Title:       "Cookie banner assente",
		Description: "Il sito installa cookie senza chiedere il consenso.",
		Impact:      "Esposizione diretta a sanzioni GDPR e segnale di scarsa professionalità.",
		Solution:    "Installare un banner di consenso a norma con blocco preventivo dei cookie.",
		Severity:    entities.SeverityHigh,
		Category:    entities.CategoryGDPR,
	},
	{
		Key:         entities.IssueNoPrivacyPolicy,
		Title:       "Privacy policy assente",
		Description: "Non è pubblicata alcuna informativa sul trattamento dei dati.",
		Impact:      "Obbligo di legge disatteso: rischio sanzioni e perdita di fiducia.",
		Solution:    "Redigere e pubblicare una privacy policy aggiornata e raggiungibile da ogni pagina.",
		Severity:    entities.SeverityHigh,
		Category:    entities.CategoryGDPR,
	},
	{
		Key:         entities.IssueMissingMetaDescription,
		Title:       "Meta description mancante",
		Description: "La pagina non ha una meta description.",
		Impact:      "Google mostra testo arbitrario nei risultati: meno clic a parità di posizione.",
		Solution:    "Scrivere una meta description persuasiva (150-160 caratteri) per ogni pagina.",
		Severity:    entities.SeverityMedium,
		Category:    entities.CategorySEO,
	},
	{
		Key:         entities.IssueMissingH1,
		Title:       "Intestazione H1 mancante",
		Description: "La pagina non ha un'intestazione H1.",
		Impact:      "Struttura poco chiara per i motori di ricerca e per i lettori.",
		Solution:    "Aggiungere un H1 unico che descriva il contenuto principale della pagina.",
		Severity:    entities.SeverityMedium,
		Category:    entities.CategorySEO,
	},
	{
		Key:         entities.IssueNoStructuredData,
		Title:       "Dati strutturati assenti",
		Description: "Il sito non espone markup schema.org.",
		Impact:      "Niente rich snippet nei risultati di ricerca: meno visibilità rispetto ai concorrenti che li usano.",
		Solution:    "Aggiungere markup JSON-LD per attività locale, prodotti o servizi.",
		Severity:    entities.SeverityMedium,
		Category:    entities.CategorySEO,
	},
	{
		Key:         entities.IssueLowSpeedScore,
		Title:       "Punteggio velocità basso",
		Description: "Il punteggio sintetico di velocità è sotto la soglia accettabile.",
		Impact:      "Esperienza utente scadente e penalizzazione nei Core Web Vitals.",
		Solution:    "Analizzare le metriche di velocità e intervenire sulle risorse più pesanti.",
		Severity:    entities.SeverityMedium,
		Category:    entities.CategoryPerformance,
	},
	{
		Key:         entities.IssueMissingAltTags,
		Title:       "Immagini senza testo alternativo",
		Description: "Una o più immagini non hanno l'attributo alt.",
		Impact:      "Accessibilità ridotta e opportunità SEO sulle ricerche per immagini sprecata.",
		Solution:    "Aggiungere un alt descrittivo a ogni immagine significativa.",
		Severity:    entities.SeverityMedium,
		Category:    entities.CategorySEO,
	},
	{
		Key:         entities.IssueHeavyImages,
		Title:       "Immagini troppo pesanti",
		Description: "Una o più immagini superano il peso consigliato.",
		Impact:      "Rallentano il caricamento, soprattutto su rete mobile.",
		Solution:    "Comprimere le immagini e servirle in formati moderni (WebP/AVIF).",
		Severity:    entities.SeverityMedium,
		Category:    entities.CategoryPerformance,
	},
	{
		Key:         entities.IssueNoAnalytics,
		Title:       "Nessun sistema di analytics",
		Description: "Non è installato alcuno strumento di web analytics.",
		Impact:      "Impossibile sapere quanti visitatori arrivano e cosa fanno: ogni decisione è al buio.",
		Solution:    "Installare Google Analytics 4 e definire gli obiettivi di conversione.",
		Severity:    entities.SeverityMedium,
		Category:    entities.CategoryTracking,
	},
	{
		Key:         entities.IssueNoViewportMeta,
		Title:       "Meta viewport mancante",
		Description: "Manca il meta tag viewport: il browser mobile mostra la versione desktop in scala.",
		Impact:      "Resa mobile compromessa anche se il layout sarebbe adattabile.",
		Solution:    "Aggiungere il meta tag viewport standard a tutte le pagine.",
		Severity:    entities.SeverityMedium,
		Category:    entities.CategoryMobile,
	},
	{
		Key:         entities.IssueThinContent,
		Title:       "Contenuti troppo scarni",
		Description: "La pagina contiene meno di 200 parole.",
		Impact:      "Google fatica a capire di cosa parla il sito; difficilmente comparirà per ricerche utili.",
		Solution:    "Ampliare i contenuti descrivendo servizi, competenze e punti di forza.",
		Severity:    entities.SeverityMedium,
		Category:    entities.CategoryContent,
	},
	{
		Key:         entities.IssueNoContactInfo,
		Title:       "Contatti difficili da trovare",
		Description: "Telefono, email o indirizzo non sono rilevabili sul sito.",
		Impact:      "Un potenziale cliente che non trova i contatti in pochi secondi passa al concorrente.",
		Solution:    "Rendere i contatti visibili in header/footer e creare una pagina contatti.",
		Severity:    entities.SeverityMedium,
		Category:    entities.CategoryContent,
	},
	{
		Key:         entities.IssueNoSitemap,
		Title:       "Sitemap assente",
		Description: "Non è pubblicata una sitemap XML.",
		Impact:      "I motori di ricerca scoprono le pagine più lentamente.",
		Solution:    "Generare una sitemap XML e inviarla a Google Search Console.",
		Severity:    entities.SeverityLow,
		Category:    entities.CategorySEO,
	},
	{
		Key:         entities.IssueNoRobotsTxt,
		Title:       "File robots.txt assente",
		Description: "Il sito non espone un file robots.txt.",
		Impact:      "Nessun controllo su cosa i crawler indicizzano.",
		Solution:    "Pubblicare un robots.txt con il riferimento alla sitemap.",
		Severity:    entities.SeverityLow,
		Category:    entities.CategorySEO,
	},
	{
		Key:         entities.IssueNoFacebookPixel,
		Title:       "Facebook Pixel assente",
		Description: "Non è installato il pixel di Meta.",
		Impact:      "Impossibile fare retargeting sui visitatori del sito con campagne social.",
		Solution:    "Installare il pixel e configurare gli eventi di conversione.",
		Severity:    entities.SeverityLow,
		Category:    entities.CategoryTracking,
	},
	{
		Key:         entities.IssueNoTagManager,
		Title:       "Tag Manager assente",
		Description: "I tag di tracciamento non sono gestiti centralmente.",
		Impact:      "Ogni modifica al tracciamento richiede un intervento sul codice.",
		Solution:    "Installare Google Tag Manager e migrare i tag esistenti.",
		Severity:    entities.SeverityLow,
		Category:    entities.CategoryTracking,
	},
}

var taxonomyByKey = buildTaxonomyIndex()

func buildTaxonomyIndex() map[entities.IssueKey]entities.TranslatedProblem {
	idx := make(map[entities.IssueKey]entities.TranslatedProblem, len(taxonomyEntries))
	for _, p := range taxonomyEntries {
		idx[p.Key] = p
	}
	return idx
}

// Translate maps issue keys to their human-readable problems, preserving
// input order. Keys without a taxonomy entry are dropped silently so that
// catalog drift degrades the output instead of failing the request.
func Translate(keys []entities.IssueKey) []entities.TranslatedProblem {
	problems := make([]entities.TranslatedProblem, 0, len(keys))
	for _, key := range keys {
		if p, ok := taxonomyByKey[key]; ok {
			problems = append(problems, p)
		}
	}
	return problems
}

// MainProblem returns the most severe problem among keys. Ties between equal
// severities are broken by taxonomy declaration order. The second return is
// false when no key has a taxonomy entry.
func MainProblem(keys []entities.IssueKey) (entities.TranslatedProblem, bool) {
	present := make(map[entities.IssueKey]bool, len(keys))
	for _, key := range keys {
		present[key] = true
	}

	var best entities.TranslatedProblem
	found := false
	for _, p := range taxonomyEntries {
		if !present[p.Key] {
			continue
		}
		if !found || p.Severity.Rank() < best.Severity.Rank() {
			best = p
			found = true
		}
	}
	return best, found
}

// GroupByCategory partitions problems by category without reordering within
// a partition.
func GroupByCategory(problems []entities.TranslatedProblem) map[entities.Category][]entities.TranslatedProblem {
	grouped := make(map[entities.Category][]entities.TranslatedProblem)
	for _, p := range problems {
		grouped[p.Category] = append(grouped[p.Category], p)
	}
	return grouped
}

// GroupBySeverity partitions problems by severity without reordering within
// a partition.
func GroupBySeverity(problems []entities.TranslatedProblem) map[entities.Severity][]entities.TranslatedProblem {
	grouped := make(map[entities.Severity][]entities.TranslatedProblem)
	for _, p := range problems {
		grouped[p.Severity] = append(grouped[p.Severity], p)
	}
	return grouped
}

// TaxonomyKeys returns every key the taxonomy knows, in declaration order.
func TaxonomyKeys() []entities.IssueKey {
	keys := make([]entities.IssueKey, 0, len(taxonomyEntries))
	for _, p := range taxonomyEntries {
		keys = append(keys, p.Key)
	}
	return keys
}
