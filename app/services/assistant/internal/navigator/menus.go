package navigator

// Button captions are matched exactly, case-sensitively, against inbound text.
const (
	CaptionMoodCategory = "🧘 Под настроение"
	CaptionGiftCategory = "🎁 На подарок"
	CaptionCatalog      = "📦 Посмотреть каталог"
	CaptionFAQ          = "❓ Частые вопросы"
	CaptionBack         = "⬅️ Назад"

	CommandStart = "/start"
)

const (
	greetingReply = "Привет! Я Scenty — твой ароматный помощник ✨\n" +
		"Помогу выбрать свечу под настроение или на подарок.\n\n" +
		"С чего начнём?"
	rootPrompt = "С чего начнём?"
	moodPrompt = "Как ты себя сегодня чувствуешь?"
	giftPrompt = "Для кого выбираем подарок?"

	catalogReply = "Вот наш каталог: https://example.com/catalog\nСкоро будет больше новинок!"
	faqReply     = "📌 Частые вопросы:\n" +
		"1. Состав — только натуральный воск, без парафина.\n" +
		"2. Доставка — по всей Европе.\n" +
		"3. Оплата — картой или PayPal.\n" +
		"4. Возвраты — в течение 14 дней."
)

var moodTags = map[string]string{
	"Устал(а), хочу расслабиться": "релакс",
	"Хочется уюта и тепла":        "уют",
	"В поиске вдохновения":        "вдохновение",
	"Хочу романтики":              "романтика",
	"Просто хочу что-то красивое": "красота",
}

var giftTags = map[string]string{
	"Подруга": "подруга",
	"Мама":    "мама",
	"Коллега": "коллега",
	"Себе 🎁":  "универсальный",
}

// RootKeyboard is the top-level menu rendered on greeting and on back.
func RootKeyboard() [][]string {
	return [][]string{
		{CaptionMoodCategory, CaptionGiftCategory},
		{CaptionCatalog, CaptionFAQ},
	}
}

func MoodKeyboard() [][]string {
	return [][]string{
		{"Устал(а), хочу расслабиться", "Хочется уюта и тепла"},
		{"В поиске вдохновения", "Хочу романтики"},
		{"Просто хочу что-то красивое", CaptionBack},
	}
}

func GiftKeyboard() [][]string {
	return [][]string{
		{"Подруга", "Мама"},
		{"Коллега", "Себе 🎁"},
		{CaptionBack},
	}
}
