package service

import (
	"time"

	"goldshop/internal/domain"
)

type fallbackEntry struct {
	title       string
	description string
	link        string
	source      string
	daysAgo     int
}

// fallbackEntries is the static gold/coin content served whenever live
// aggregation yields too little. Timestamps are synthesized relative to
// the request time so the items sort naturally behind real news.
var fallbackEntries = []fallbackEntry{
	{
		title:       "نرخ طلا امروز | قیمت طلا و سکه به‌روزرسانی شد",
		description: "قیمت طلا و سکه امروز با تغییرات جزئی در بازار داخلی همراه بوده است. قیمت هر گرم طلا ۱۸ عیار امروز حدود ۳ میلیون تومان اعلام شده است.",
		link:        "https://example.com/gold-price-today",
		source:      "خبرگزاری طلا و سکه",
		daysAgo:     1,
	},
	{
		title:       "پیش‌بینی بازار طلا | روند قیمتی طلا و سکه در هفته آینده",
		description: "کارشناسان بازار طلا پیش‌بینی می‌کنند که قیمت طلا و سکه در هفته آینده با نوسانات جزئی همراه باشد. نرخ دلار تأثیر مستقیمی بر قیمت طلا دارد.",
		link:        "https://example.com/gold-market-prediction",
		source:      "خبرگزاری اقتصادی",
		daysAgo:     2,
	},
	{
		title:       "تأثیر نرخ دلار بر قیمت سکه | تحلیل بازار طلا و سکه",
		description: "با افزایش نرخ دلار، قیمت سکه نیز تحت تأثیر قرار گرفته و انتظار می‌رود قیمت سکه در روزهای آینده افزایش یابد.",
		link:        "https://example.com/coin-dollar-effect",
		source:      "خبرگزاری بازار",
		daysAgo:     3,
	},
	{
		title:       "بازار جهانی طلا | قیمت اونس طلا کاهش یافت",
		description: "قیمت اونس طلا در بازار جهانی با کاهش مواجه شده و این امر تأثیر مستقیمی بر بازار داخلی طلا و سکه خواهد داشت.",
		link:        "https://example.com/global-gold-price",
		source:      "خبرگزاری بین‌المللی",
		daysAgo:     4,
	},
	{
		title:       "نرخ سکه امروز | قیمت انواع سکه مشخص شد",
		description: "قیمت سکه بهار آزادی امروز حدود ۲۰ میلیون تومان اعلام شده است. قیمت سایر انواع سکه نیز به‌روزرسانی شده است.",
		link:        "https://example.com/coin-price-today",
		source:      "خبرگزاری طلا و سکه",
		daysAgo:     5,
	},
	{
		title:       "راهنمای سرمایه‌گذاری در طلا و سکه | نکات مهم",
		description: "سرمایه‌گذاری در طلا و سکه نیازمند آگاهی از روند بازار است. کارشناسان توصیه می‌کنند قبل از سرمایه‌گذاری، تحلیل کاملی انجام دهید.",
		link:        "https://example.com/gold-investment-guide",
		source:      "خبرگزاری مالی",
		daysAgo:     6,
	},
	{
		title:       "تفاوت قیمت طلا و سکه | کدام بهتر است؟",
		description: "طلا و سکه هر دو ابزار سرمایه‌گذاری مناسبی هستند، اما تفاوت‌هایی در قیمت و نوسانات بازار دارند که باید در نظر گرفته شوند.",
		link:        "https://example.com/gold-vs-coin",
		source:      "خبرگزاری اقتصادی",
		daysAgo:     7,
	},
	{
		title:       "تاریخچه قیمت طلا در ایران | تحلیل بلندمدت",
		description: "قیمت طلا در ایران طی سال‌های گذشته نوسانات زیادی داشته است. تحلیل روند بلندمدت قیمت طلا می‌تواند راهنمای خوبی برای سرمایه‌گذاران باشد.",
		link:        "https://example.com/gold-price-history",
		source:      "خبرگزاری تاریخی",
		daysAgo:     8,
	},
}

// fallbackNews materializes the static list with timestamps relative to
// now.
func fallbackNews(now time.Time) []domain.NewsItem {
	items := make([]domain.NewsItem, 0, len(fallbackEntries))
	for _, e := range fallbackEntries {
		items = append(items, domain.NewsItem{
			Title:       e.title,
			Description: e.description,
			Link:        e.link,
			Source:      e.source,
			PublishedAt: now.AddDate(0, 0, -e.daysAgo).UTC().Format(time.RFC3339),
		})
	}
	return items
}
