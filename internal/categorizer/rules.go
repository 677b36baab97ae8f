package categorizer

// DefaultRules returns the built-in rule table. The slice order is load-bearing:
// transport precedes home so that "такси домой" lands in transport, and medicine
// precedes pharmacy so that clinic visits do not match the broader drugstore
// keywords. Adjust ordering with care.
func DefaultRules() []Rule {
	return []Rule{
		{Category: "food", Patterns: []string{
			"мясо", "хлеб", "молок", "овощ", "фрукт", "сыр", "яйц", "круп",
			"макарон", "рыба", "курица", "продукт",
		}},
		{Category: "restaurants", Patterns: []string{
			"кафе", "ресторан", "бар", "кофейн", "пицц", "суши", "фастфуд", "шаурм",
		}},
		{Category: "entertainment", Patterns: []string{
			"кино", "театр", "концерт", "игр", "боулинг", "клуб", "развлечен",
		}},
		{Category: "transport", Patterns: []string{
			"такси", "метро", "автобус", "трамвай", "электричк", "проезд", "каршеринг",
		}},
		{Category: "utilities", Patterns: []string{
			"коммунал", "квартплат", "электричеств", "свет", "газ", "вода",
			"интернет", "связь", "телефон",
		}},
		{Category: "shopping", Patterns: []string{
			"одежд", "обувь", "куртк", "джинс", "футболк", "плать", "шоппинг",
		}},
		{Category: "medicine", Patterns: []string{
			"врач", "клиник", "стоматолог", "анализ", "больниц", "медицин",
		}},
		{Category: "pharmacy", Patterns: []string{
			"аптек", "лекарств", "таблетк", "витамин",
		}},
		{Category: "education", Patterns: []string{
			"курс", "учеб", "школ", "универ", "книг", "образован",
		}},
		{Category: "home", Patterns: []string{
			"дом", "мебель", "ремонт", "посуд", "декор", "хозтовар",
		}},
		{Category: "auto", Patterns: []string{
			"бензин", "заправк", "автосервис", "шин", "мойк", "запчаст",
		}},
		{Category: "beauty", Patterns: []string{
			"парикмахер", "салон", "косметик", "маникюр", "стрижк",
		}},
		{Category: "travels", Patterns: []string{
			"отель", "авиабилет", "поезд", "путешеств", "тур", "виза",
		}},
		{Category: "credits", Patterns: []string{
			"кредит", "ипотек", "займ", "долг", "рассрочк",
		}},
	}
}
