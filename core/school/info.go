package school

import "github.com/miasteczkole/backend/core"

type (
	// Contact mirrors the "kontakt" section of the public info payload.
	// Phone and Address stay null until the school publishes them.
	Contact struct {
		Email   string  `json:"email"`
		Phone   *string `json:"telefon"`
		Address *string `json:"adres"`
		Hours   string  `json:"godziny"`
	}

	// Info is the static descriptive content served on /api/school/info.
	// JSON keys are Polish; they are the public contract of the frontend.
	Info struct {
		Name        string   `json:"nazwa"`
		Description string   `json:"opis"`
		Mission     string   `json:"misja"`
		Offering    []string `json:"oferta"`
		Extras      []string `json:"dodatkowe"`
		Care        []string `json:"opieka"`
		Groups      []string `json:"grupy"`
		Staff       []string `json:"kadra"`
		DailyPlan   []string `json:"dzien"`
		Meals       []string `json:"posilki"`
		Enrollment  []string `json:"rekrutacja"`
		Contact     Contact  `json:"kontakt"`
	}
)

// NewInfo builds the school info once at startup; the content is constant for
// the process lifetime, only the contact email comes from configuration.
func NewInfo(conf *core.Config) Info {
	return Info{
		Name: conf.SchoolName,
		Description: "Przedszkole prowadzi zajęcia dla dzieci od 3 do 6 lat. Stawia na rozwój " +
			"społeczny, emocjonalny i ruchowy. Zapewnia bezpieczne warunki i stałą opiekę kadry.",
		Mission: "Zapewnić dziecku dobre warunki rozwoju. Wspierać ciekawość. Uczyć przez działanie.",
		Offering: []string{
			"Zajęcia edukacyjne zgodne z podstawą programową.",
			"Zabawy ruchowe.",
			"Nauka poprzez gry.",
			"Zajęcia plastyczne.",
			"Zajęcia muzyczne.",
			"Zajęcia językowe.",
			"Wyjścia na świeże powietrze.",
		},
		Extras: []string{
			"Rytmika.",
			"Zajęcia sportowe.",
			"Zajęcia sensoryczne.",
			"Podstawy języka angielskiego.",
		},
		Care: []string{
			"Stała opieka nauczycieli.",
			"Monitorowany budynek.",
			"Zabezpieczony teren.",
			"Zdrowe posiłki.",
			"Odpowiednie warunki sanitarne.",
		},
		Groups: []string{
			"Grupa młodsza 3-4 lata.",
			"Grupa średnia 4-5 lat.",
			"Grupa starsza 5-6 lat.",
		},
		Staff: []string{
			"Nauczyciele z kwalifikacjami.",
			"Pomoc nauczyciela.",
			"Logopeda wspierający rozwój mowy.",
			"Psycholog dostępny dla rodziców.",
		},
		DailyPlan: []string{
			"Powitanie i swobodna zabawa.",
			"Zajęcia edukacyjne.",
			"Drugie śniadanie.",
			"Zabawy ruchowe.",
			"Obiad.",
			"Odpoczynek.",
			"Zajęcia popołudniowe.",
			"Odbiór dzieci.",
		},
		Meals: []string{
			"Świeże i zbilansowane.",
			"Śniadanie, obiad, podwieczorek.",
			"Menu dostosowane do alergii.",
		},
		Enrollment: []string{
			"Nabór całoroczny.",
			"Przyjęcia według kolejności zgłoszeń.",
			"Wymagane dokumenty: karta zgłoszenia, zgoda rodziców.",
		},
		Contact: Contact{
			Email: conf.SchoolEmail,
			Hours: "7:00 - 17:00",
		},
	}
}
