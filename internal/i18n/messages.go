package i18n

// English display strings for taxonomy keys. Descriptions are already
// English and act as their own keys.
var english = map[string]string{
	"men":         "Men",
	"women":       "Women",
	"accessories": "Accessories",
	"sweaters":    "Sweaters",
	"scarves":     "Scarves",
	"hats":        "Hats",
	"gloves":      "Gloves",
	"socks":       "Socks",
	"cardigan":    "Cardigans",
	"dress":       "Dresses",
	"vest":        "Vests",
	"bottoms":     "Bottoms",
	"coat":        "Coats",
	"couple":      "Couple",
	"christmas":   "Christmas",
	"company":     "Company",
}

var mongolian = map[string]string{
	"men":         "Эрэгтэй",
	"women":       "Эмэгтэй",
	"accessories": "Дагалдах хэрэгсэл",
	"sweaters":    "Свитер",
	"scarves":     "Ороолт",
	"hats":        "Малгай",
	"gloves":      "Бээлий",
	"socks":       "Оймс",
	"cardigan":    "Кардиган",
	"dress":       "Даашинз",
	"vest":        "Хантааз",
	"bottoms":     "Өмд, банзал",
	"coat":        "Пальто",
	"couple":      "Хосын бэлэг",
	"christmas":   "Зул сарын бэлэг",
	"company":     "Байгууллагын бэлэг",
	"Unknown":     "Тодорхойгүй",
	"Category":    "Ангилал",

	"Cashmere essentials for men":     "Эрэгтэй ноолууран хувцас",
	"Cashmere essentials for women":   "Эмэгтэй ноолууран хувцас",
	"Scarves, hats, gloves and socks": "Ороолт, малгай, бээлий, оймс",
	"Knitwear for every season":       "Улирал бүрийн сүлжмэл",
	"Soft scarves and wraps":          "Зөөлөн ороолт, нөмрөг",
	"Warm hats and beanies":           "Дулаан малгай",
	"Gloves and mittens":              "Бээлий, хуруувчгүй бээлий",
	"Cashmere socks":                  "Ноолууран оймс",
	"Cardigans and layering knits":    "Кардиган, давхарлах сүлжмэл",
	"Knitted dresses":                 "Сүлжмэл даашинз",
	"Vests and sleeveless knits":      "Хантааз, ханцуйгүй сүлжмэл",
	"Knitted trousers and skirts":     "Сүлжмэл өмд, банзал",
	"Cashmere coats":                  "Ноолууран пальто",
	"Matching pieces for couples":     "Хосын ижил загвар",
	"Holiday gifts":                   "Баярын бэлэг",
	"Corporate gifting":               "Байгууллагын бэлэг",

	"Product not found":         "Бүтээгдэхүүн олдсонгүй",
	"Invalid product":           "Бүтээгдэхүүний мэдээлэл буруу",
	"Invalid product ID":        "Бүтээгдэхүүний дугаар буруу",
	"Unauthorized":              "Нэвтрэх эрхгүй",
	"Look not found":            "Зураг олдсонгүй",
	"Invalid email or password": "Имэйл эсвэл нууц үг буруу",
	"Internal server error":     "Серверийн алдаа",
}
