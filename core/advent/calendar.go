package advent

import "time"

// Calendar day bounds; the advent calendar runs December 1-24.
const (
	FirstDay = 1
	LastDay  = 24
)

const fallbackTask = "Zadanie niespodzianka"

var tasks = map[int]string{
	1:  "Narysuj swoją ulubioną zimową zabawę.",
	2:  "Policz ile choinek widzisz na obrazku.",
	3:  "Zaśpiewaj fragment ulubionej kolędy.",
	4:  "Ułóż 3 zielone klocki i 1 czerwony – policz razem.",
	5:  "Zrób 5 podskoków jak renifer.",
	6:  "Narysuj prezent dla przyjaciela.",
	7:  "Wymień 3 zimowe ubrania.",
	8:  "Ułóż serduszko z klocków.",
	9:  "Policz do 10 razem z rodzicem.",
	10: "Zatańcz śnieżynkowy taniec przez 10 sekund.",
	11: "Namaluj śnieżynkę palcami.",
	12: "Powiedz rymowankę o Mikołaju.",
	13: "Zbuduj choinkę z klocków.",
	14: "Nazwij 4 kolory bombek.",
	15: "Zrób 3 głębokie wdechy i wydechy.",
	16: "Narysuj pierniczka.",
	17: "Posłuchaj krótkiej melodii i powtórz rytm.",
	18: "Wymień 3 zimowe sporty.",
	19: "Ułóż obrazek z 4 elementów.",
	20: "Napisz swoje imię (z pomocą rodzica).",
	21: "Policz 7 gwiazdek na obrazku.",
	22: "Zrób laurkę dla rodziców.",
	23: "Zaśpiewaj kolędę z rodziną.",
	24: "Złóż życzenia świąteczne – Wesołych Świąt!",
}

// Day is the per-day calendar view; not persisted.
type Day struct {
	Day       int    `json:"day"`
	Available bool   `json:"available"`
	Task      string `json:"task"`
}

// UnlockedCount returns how many calendar days are unlocked at t: the
// day-of-month capped at LastDay during December, 0 in any other month.
// The calendar resets to fully locked outside December.
func UnlockedCount(t time.Time) int {
	if t.Month() != time.December {
		return 0
	}
	if d := t.Day(); d < LastDay {
		return d
	}
	return LastDay
}

// DayView builds the view of a single day given the unlocked count.
// Days without a curated task fall back to a placeholder.
func DayView(day, unlocked int) Day {
	task, ok := tasks[day]
	if !ok {
		task = fallbackTask
	}
	return Day{
		Day:       day,
		Available: day <= unlocked,
		Task:      task,
	}
}

// Days returns the views of all 24 days at t along with the unlocked count.
func Days(t time.Time) ([]Day, int) {
	unlocked := UnlockedCount(t)
	days := make([]Day, 0, LastDay)
	for d := FirstDay; d <= LastDay; d++ {
		days = append(days, DayView(d, unlocked))
	}
	return days, unlocked
}
