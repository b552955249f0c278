package constant

// UkraineRegions lists the 24 oblast names used to bucket statistics by
// matching against property addresses.
var UkraineRegions = []string{
	"Вінницька",
	"Волинська",
	"Дніпропетровська",
	"Донецька",
	"Житомирська",
	"Закарпатська",
	"Запорізька",
	"Івано-Франківська",
	"Київська",
	"Кіровоградська",
	"Луганська",
	"Львівська",
	"Миколаївська",
	"Одеська",
	"Полтавська",
	"Рівненська",
	"Сумська",
	"Тернопільська",
	"Харківська",
	"Херсонська",
	"Хмельницька",
	"Черкаська",
	"Чернівецька",
	"Чернігівська",
}
