package corpus

import (
	"time"

	"github.com/veritia/trustsearch/internal/domain/document"
	"github.com/veritia/trustsearch/internal/domain/source"
	"github.com/veritia/trustsearch/internal/domain/suggestion"
)

// Demo builds the curated demonstration corpus: six trusted sources,
// fifteen documents, and the autocomplete dictionary.
func Demo() *Corpus {
	wikipedia := mustSource("wikipedia", "Wikipedia", source.Wikipedia, "en.wikipedia.org", 8.5)
	britannica := mustSource("britannica", "Encyclopedia Britannica", source.Encyclopedia, "www.britannica.com", 9.2)
	nature := mustSource("nature", "Nature Journal", source.Academic, "www.nature.com", 9.5)
	arxiv := mustSource("arxiv", "arXiv", source.Academic, "arxiv.org", 8.8)
	nih := mustSource("nih", "National Institutes of Health", source.Government, "www.nih.gov", 9.0)
	cdc := mustSource("cdc", "Centers for Disease Control", source.Government, "www.cdc.gov", 9.1)

	docs := []document.Doc{
		// Climate change
		mustDoc(docSpec{
			id:      "climate-wiki-1",
			title:   "Climate Change - Wikipedia",
			snippet: "Climate change refers to long-term shifts in global or regional climate patterns. Since the mid-20th century, humans have been the main driver of climate change, primarily due to fossil fuel burning, which increases heat-trapping greenhouse gas levels in Earth's atmosphere.",
			url:     "https://en.wikipedia.org/wiki/Climate_change",
			source:  wikipedia, relevance: 0.95,
			published: date(2023, 1, 15), updated: date(2024, 1, 10),
			topics:      []string{"Environment", "Science", "Global Warming", "Greenhouse Gases"},
			contentType: document.Article,
		}),
		mustDoc(docSpec{
			id:      "climate-nature-1",
			title:   "Global Warming Acceleration in Recent Decades",
			snippet: "Recent studies show accelerating trends in global temperature rise. This comprehensive analysis examines the latest climate data and projections for the coming decades, highlighting the urgent need for climate action.",
			url:     "https://nature.com/articles/climate-research-2024",
			source:  nature, relevance: 0.88,
			published: date(2024, 1, 5), updated: date(2024, 1, 5),
			topics:      []string{"Climate Science", "Research", "Temperature", "Global Warming"},
			contentType: document.Paper,
		}),
		mustDoc(docSpec{
			id:      "climate-britannica-1",
			title:   "Global Warming | Definition, Causes, Effects",
			snippet: "Global warming, the phenomenon of increasing average air temperatures near the surface of Earth over the past one to two centuries. Climate scientists have since the mid-20th century gathered detailed observations of various weather phenomena.",
			url:     "https://www.britannica.com/science/global-warming",
			source:  britannica, relevance: 0.82,
			published: date(2023, 6, 20), updated: date(2023, 12, 15),
			topics:      []string{"Environment", "Science", "Global Warming", "Weather"},
			contentType: document.Article,
		}),

		// Artificial intelligence
		mustDoc(docSpec{
			id:      "ai-wiki-1",
			title:   "Artificial Intelligence - Wikipedia",
			snippet: "Artificial intelligence (AI) is intelligence demonstrated by machines, in contrast to the natural intelligence displayed by humans and animals. Leading AI textbooks define the field as the study of intelligent agents.",
			url:     "https://en.wikipedia.org/wiki/Artificial_intelligence",
			source:  wikipedia, relevance: 0.93,
			published: date(2023, 3, 10), updated: date(2024, 1, 8),
			topics:      []string{"Technology", "Computer Science", "Machine Learning", "AI"},
			contentType: document.Article,
		}),
		mustDoc(docSpec{
			id:      "ai-arxiv-1",
			title:   "Attention Is All You Need",
			snippet: "The dominant sequence transduction models are based on complex recurrent or convolutional neural networks that include an encoder and a decoder. The best performing models also connect the encoder and decoder through an attention mechanism.",
			url:     "https://arxiv.org/abs/1706.03762",
			source:  arxiv, relevance: 0.91,
			published: date(2017, 6, 12), updated: date(2017, 6, 12),
			topics:      []string{"Machine Learning", "Neural Networks", "Transformers", "AI"},
			contentType: document.Paper,
		}),
		mustDoc(docSpec{
			id:      "ai-nature-1",
			title:   "Deep Learning Revolution in Scientific Research",
			snippet: "Deep learning has transformed numerous scientific disciplines, from protein folding prediction to materials discovery. This review examines the current state and future prospects of AI in scientific discovery.",
			url:     "https://nature.com/articles/deep-learning-science-2024",
			source:  nature, relevance: 0.87,
			published: date(2024, 1, 3), updated: date(2024, 1, 3),
			topics:      []string{"AI", "Deep Learning", "Scientific Research", "Technology"},
			contentType: document.Paper,
		}),

		// Health and medicine
		mustDoc(docSpec{
			id:      "health-nih-1",
			title:   "Understanding COVID-19 Vaccines",
			snippet: "COVID-19 vaccines help protect against COVID-19. Getting vaccinated is one of many steps you can take to protect yourself and others from COVID-19. Learn about the different types of vaccines and how they work.",
			url:     "https://www.nih.gov/health-information/covid-19-vaccines",
			source:  nih, relevance: 0.94,
			published: date(2021, 12, 15), updated: date(2023, 11, 20),
			topics:      []string{"Health", "Vaccines", "COVID-19", "Medicine", "Public Health"},
			contentType: document.Document,
		}),
		mustDoc(docSpec{
			id:      "health-cdc-1",
			title:   "Heart Disease Facts | CDC",
			snippet: "Heart disease is the leading cause of death for men, women, and people of most racial and ethnic groups in the United States. Learn about heart disease risk factors, prevention, and treatment options.",
			url:     "https://www.cdc.gov/heartdisease/facts.htm",
			source:  cdc, relevance: 0.89,
			published: date(2023, 5, 10), updated: date(2023, 12, 1),
			topics:      []string{"Health", "Heart Disease", "Prevention", "Medicine", "Public Health"},
			contentType: document.Document,
		}),
		mustDoc(docSpec{
			id:      "health-wiki-1",
			title:   "Medicine - Wikipedia",
			snippet: "Medicine is the science and practice of caring for a patient, managing the diagnosis, prognosis, prevention, treatment, palliation of their injury or disease, and promoting their health.",
			url:     "https://en.wikipedia.org/wiki/Medicine",
			source:  wikipedia, relevance: 0.85,
			// No published date: encyclopedic page, publication unknown.
			updated:     date(2023, 12, 10),
			topics:      []string{"Medicine", "Health", "Healthcare", "Medical Science"},
			contentType: document.Article,
		}),

		// Physics
		mustDoc(docSpec{
			id:      "physics-wiki-1",
			title:   "Quantum Mechanics - Wikipedia",
			snippet: "Quantum mechanics is a fundamental theory in physics that provides a description of the physical properties of nature at the scale of atoms and subatomic particles. It is the foundation of all quantum physics.",
			url:     "https://en.wikipedia.org/wiki/Quantum_mechanics",
			source:  wikipedia, relevance: 0.92,
			published: date(2023, 4, 5), updated: date(2024, 1, 5),
			topics:      []string{"Physics", "Quantum Mechanics", "Science", "Atoms"},
			contentType: document.Article,
		}),
		mustDoc(docSpec{
			id:      "physics-arxiv-1",
			title:   "Quantum Entanglement and Information Theory",
			snippet: "We present a comprehensive review of quantum entanglement from an information-theoretic perspective. The paper covers recent developments in quantum information theory and their applications to quantum computing.",
			url:     "https://arxiv.org/abs/2401.12345",
			source:  arxiv, relevance: 0.88,
			published: date(2024, 1, 15), updated: date(2024, 1, 15),
			topics:      []string{"Quantum Physics", "Information Theory", "Quantum Computing", "Entanglement"},
			contentType: document.Paper,
		}),

		// History
		mustDoc(docSpec{
			id:      "history-britannica-1",
			title:   "World War II | Summary, Combatants, & Facts",
			snippet: "World War II, conflict that involved virtually every part of the world during 1939-45. The principal belligerents were the Axis powers and the Allies: France, Great Britain, the United States, the Soviet Union, and China.",
			url:     "https://www.britannica.com/event/World-War-II",
			source:  britannica, relevance: 0.96,
			published: date(2023, 1, 1), updated: date(2023, 9, 15),
			topics:      []string{"History", "World War II", "Military History", "Global Conflict"},
			contentType: document.Article,
		}),
		mustDoc(docSpec{
			id:      "history-wiki-1",
			title:   "Ancient Rome - Wikipedia",
			snippet: "Ancient Rome was a civilization that began as a city-state on the Italian Peninsula during the 8th century BC. Located along the Mediterranean Sea, it became one of the largest empires in the ancient world.",
			url:     "https://en.wikipedia.org/wiki/Ancient_Rome",
			source:  wikipedia, relevance: 0.90,
			published: date(2023, 7, 12), updated: date(2023, 11, 30),
			topics:      []string{"History", "Ancient Rome", "Civilization", "Empire"},
			contentType: document.Article,
		}),

		// Technology
		mustDoc(docSpec{
			id:      "tech-wiki-1",
			title:   "Blockchain - Wikipedia",
			snippet: "A blockchain is a distributed ledger with growing lists of records, called blocks, that are linked and secured using cryptography. Each block contains a cryptographic hash of the previous block, a timestamp, and transaction data.",
			url:     "https://en.wikipedia.org/wiki/Blockchain",
			source:  wikipedia, relevance: 0.87,
			published: date(2023, 8, 20), updated: date(2023, 12, 20),
			topics:      []string{"Technology", "Blockchain", "Cryptocurrency", "Distributed Systems"},
			contentType: document.Article,
		}),
		mustDoc(docSpec{
			id:      "tech-nature-1",
			title:   "Advances in Grid-Scale Renewable Energy Storage",
			snippet: "Researchers demonstrate significant progress in long-duration battery chemistry, bringing affordable grid-scale storage closer to reality. The study shows improved cycle stability and round-trip efficiency in flow batteries.",
			url:     "https://nature.com/articles/energy-storage-2024",
			source:  nature, relevance: 0.84,
			published: date(2024, 1, 12), updated: date(2024, 1, 12),
			topics:      []string{"Renewable Energy", "Technology", "Energy Storage", "Research"},
			contentType: document.Paper,
		}),
	}

	dictionary := []suggestion.Entry{
		suggestion.NewEntry("climate", []string{
			"climate change", "climate change effects", "climate change solutions",
			"climate change causes", "climate science",
		}),
		suggestion.NewEntry("artificial", []string{
			"artificial intelligence", "artificial neural networks",
			"artificial intelligence applications", "artificial intelligence ethics",
			"artificial intelligence history",
		}),
		suggestion.NewEntry("quantum", []string{
			"quantum mechanics", "quantum computing", "quantum physics",
			"quantum entanglement", "quantum theory",
		}),
		suggestion.NewEntry("health", []string{
			"health care", "health insurance", "mental health",
			"public health", "health benefits",
		}),
		suggestion.NewEntry("covid", []string{
			"covid 19", "covid vaccine", "covid symptoms",
			"covid treatment", "covid prevention",
		}),
		suggestion.NewEntry("medicine", []string{
			"medicine definition", "medicine history", "medicine types",
			"preventive medicine", "traditional medicine",
		}),
		suggestion.NewEntry("history", []string{
			"world history", "american history", "ancient history",
			"history timeline", "historical events",
		}),
		suggestion.NewEntry("technology", []string{
			"technology trends", "information technology", "technology news",
			"emerging technology", "technology impact",
		}),
	}

	c, err := New(
		[]*source.Source{wikipedia, britannica, nature, arxiv, nih, cdc},
		docs, dictionary,
	)
	if err != nil {
		panic("corpus: invalid demo data: " + err.Error())
	}
	return c
}

type docSpec struct {
	id, title, snippet, url string
	source                  *source.Source
	relevance               float64
	published               time.Time
	updated                 time.Time
	topics                  []string
	contentType             document.ContentType
}

func mustSource(id, name string, t source.Type, domain string, score float64) *source.Source {
	s, err := source.New(id, name, t, domain, score)
	if err != nil {
		panic("corpus: invalid demo source: " + err.Error())
	}
	return &s
}

func mustDoc(spec docSpec) document.Doc {
	var published *time.Time
	if !spec.published.IsZero() {
		published = &spec.published
	}
	d, err := document.New(
		spec.id, spec.title, spec.snippet, spec.url,
		spec.source, spec.relevance, published, spec.updated,
		spec.topics, spec.contentType,
	)
	if err != nil {
		panic("corpus: invalid demo document: " + err.Error())
	}
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
