package calendar

import (
	"golang.org/x/text/language"
)

// signNames are the K'iche' day-sign names, index 0 = sign 1
var signNames = [20]string{
	"Imox", "Iq'", "Aq'ab'al", "K'at", "Kan",
	"Kame", "Kej", "Q'anil", "Toj", "Tz'i'",
	"B'atz'", "E", "Aj", "I'x", "Tz'ikin",
	"Ajmaq", "No'j", "Tijax", "Kawoq", "Ajpu",
}

var localizedSignNames = map[language.Tag][20]string{
	language.English: {
		"Crocodile", "Wind", "Night", "Seed", "Serpent",
		"Death", "Deer", "Rabbit", "Water", "Dog",
		"Monkey", "Road", "Reed", "Jaguar", "Eagle",
		"Owl", "Earth", "Flint", "Storm", "Sun",
	},
	language.Spanish: {
		"Cocodrilo", "Viento", "Noche", "Semilla", "Serpiente",
		"Muerte", "Venado", "Conejo", "Agua", "Perro",
		"Mono", "Camino", "Caña", "Jaguar", "Águila",
		"Búho", "Tierra", "Pedernal", "Tormenta", "Sol",
	},
	language.Russian: {
		"Крокодил", "Ветер", "Ночь", "Семя", "Змей",
		"Смерть", "Олень", "Кролик", "Вода", "Собака",
		"Обезьяна", "Дорога", "Тростник", "Ягуар", "Орёл",
		"Сова", "Земля", "Кремень", "Буря", "Солнце",
	},
}

// supported lists the matcher candidates; index 0 (Und) selects the K'iche' names
var supported = []language.Tag{
	language.Und,
	language.English,
	language.Spanish,
	language.Russian,
}

var matcher = language.NewMatcher(supported)

// SignName returns the name of sign index (1..20) for the best match of tags
// Out-of-range indices wrap; unmatched languages get the K'iche' names
func SignName(index int, tags ...language.Tag) string {
	i := ((index-1)%20 + 20) % 20
	if len(tags) == 0 {
		return signNames[i]
	}
	_, pos, conf := matcher.Match(tags...)
	if conf == language.No || pos == 0 {
		return signNames[i]
	}
	return localizedSignNames[supported[pos]][i]
}

// ParseLanguage parses a BCP 47 tag, falling back to Und on error
func ParseLanguage(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und
	}
	return tag
}
