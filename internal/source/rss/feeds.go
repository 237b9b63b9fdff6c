package rss

// Feed names one external RSS source.
type Feed struct {
	URL      string
	Name     string
	Category string
}

// Feeds is the fixed list of Persian news agencies polled for gold and
// coin coverage.
var Feeds = []Feed{
	{URL: "https://www.irna.ir/rss", Name: "خبرگزاری جمهوری اسلامی", Category: "general"},
	{URL: "https://www.mehrnews.com/rss", Name: "خبرگزاری مهر", Category: "general"},
	{URL: "https://www.isna.ir/rss", Name: "خبرگزاری ایسنا", Category: "general"},
	{URL: "https://www.farsnews.ir/rss", Name: "خبرگزاری فارس", Category: "general"},
	{URL: "https://www.isna.ir/rss/tp/11", Name: "ایسنا - اقتصاد", Category: "economy"},
	{URL: "https://www.mehrnews.com/rss/tp/5", Name: "مهر - اقتصاد", Category: "economy"},
	{URL: "https://www.farsnews.ir/rss/tp/25", Name: "فارس - اقتصاد", Category: "economy"},
	{URL: "https://www.irna.ir/rss/tp/6", Name: "ایرنا - سیاست", Category: "politics"},
	{URL: "https://www.shana.ir/rss", Name: "خبرگزاری شانا", Category: "energy"},
	{URL: "https://www.ibena.ir/rss", Name: "خبرگزاری ایبنا", Category: "economy"},
}
