package models

// CategoryOther is the mandatory fallback category. It is part of the seed
// data and expense writes fall back to it when a rule produces a label that
// is missing from the reference table.
const CategoryOther = "other"

// Category is immutable reference data classifying an expense. The set is
// seeded once at initialization and is not editable at runtime.
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`

	Records []Record `gorm:"foreignKey:CategoryID" json:"records,omitempty"`
}

// DefaultCategories is the fixed seed list. Order matters only for stable ids
// on a fresh database; classification order lives in the categorizer rules.
func DefaultCategories() []Category {
	return []Category{
		{Name: "food", Description: "Продукты питания"},
		{Name: "restaurants", Description: "Рестораны и кафе"},
		{Name: "entertainment", Description: "Развлечения"},
		{Name: "transport", Description: "Транспорт"},
		{Name: "utilities", Description: "Коммунальные услуги"},
		{Name: "shopping", Description: "Шоппинг"},
		{Name: "medicine", Description: "Врачи и клиники"},
		{Name: "pharmacy", Description: "Аптеки"},
		{Name: "education", Description: "Образование"},
		{Name: CategoryOther, Description: "Прочее"},
		{Name: "home", Description: "Для дома"},
		{Name: "auto", Description: "Авто"},
		{Name: "beauty", Description: "Косметика и красота"},
		{Name: "travels", Description: "Путешествия"},
		{Name: "credits", Description: "Кредиты"},
	}
}
