package models

// Закрытые справочники приложения. Значения совпадают со строками,
// которые показывает клиент, поэтому сравнение всегда точное и
// чувствительное к регистру.

// ItemTypes — типы предметов
var ItemTypes = []string{
	"Дитячий світ",
	"Авто",
	"Тварини",
	"Дім і сад",
	"Електроніка",
	"Одяг",
	"Послуги",
}

// PriceCategories — ценовые диапазоны
var PriceCategories = []string{
	"0-100 грн",
	"100-500 грн",
	"500-1000 грн",
	"1000-5000 грн",
	"5000 грн і більше",
}

// Regions — области Украины
var Regions = []string{
	"Київська",
	"Львівська",
	"Одеська",
	"Дніпропетровська",
	"Харківська",
	"Запорізька",
	"Вінницька",
	"Житомирська",
	"Івано-Франківська",
	"Тернопільська",
	"Хмельницька",
	"Черкаська",
	"Чернівецька",
	"Полтавська",
	"Сумська",
	"Рівненська",
	"Херсонська",
	"Миколаївська",
	"Кіровоградська",
	"Луганська",
	"Донецька",
	"Волинська",
	"Закарпатська",
	"Чернігівська",
}

var (
	itemTypeSet      = toSet(ItemTypes)
	priceCategorySet = toSet(PriceCategories)
	regionSet        = toSet(Regions)
)

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// ValidItemType проверяет, входит ли значение в справочник типов
func ValidItemType(v string) bool { return itemTypeSet[v] }

// ValidPriceCategory проверяет, входит ли значение в справочник цен
func ValidPriceCategory(v string) bool { return priceCategorySet[v] }

// ValidRegion проверяет, входит ли значение в справочник областей
func ValidRegion(v string) bool { return regionSet[v] }

// ValidOfferStatus проверяет статус-решение по предложению обмена
func ValidOfferStatus(v string) bool {
	return v == OfferStatusAccepted || v == OfferStatusDeclined
}
