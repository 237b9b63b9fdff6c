package catalog

import "goldshop/internal/domain"

// goldProducts is the shop assortment. Prices are in rial.
var goldProducts = []domain.Product{
	{
		ID:       "1",
		Name:     "حلقه طلای ۱۸ عیار زنانه",
		Image:    "ring",
		Weight:   5.2,
		Purity:   18,
		Price:    155990000,
		Note:     "طراحی جدید",
		Category: domain.CategoryRing,
	},
	{
		ID:       "2",
		Name:     "دستبند طلای ۲۱ عیار",
		Image:    "bracelet",
		Weight:   12.8,
		Purity:   21,
		Price:    285600000,
		Note:     "دست ساز",
		Category: domain.CategoryBracelet,
	},
	{
		ID:       "3",
		Name:     "گردنبند طلای ۲۴ عیار",
		Image:    "necklace",
		Weight:   8.5,
		Purity:   24,
		Price:    198450000,
		Note:     "سبک کلاسیک",
		Category: domain.CategoryNecklace,
	},
	{
		ID:       "4",
		Name:     "سکه طلای ۲۴ عیار",
		Image:    "coin",
		Weight:   31.1,
		Purity:   24,
		Price:    725000000,
		Note:     "ضرب بانک مرکزی",
		Category: domain.CategoryCoin,
	},
	{
		ID:       "5",
		Name:     "حلقه طلای ۲۲ عیار مردانه",
		Image:    "ring",
		Weight:   7.8,
		Purity:   22,
		Price:    202300000,
		Category: domain.CategoryRing,
	},
	{
		ID:       "6",
		Name:     "دستبند طلای ۱۸ عیار زنجیری",
		Image:    "bracelet",
		Weight:   9.3,
		Purity:   18,
		Price:    168750000,
		Note:     "طراحی مدرن",
		Category: domain.CategoryBracelet,
	},
	{
		ID:       "7",
		Name:     "گردنبند طلای ۱۸ عیار قلبی",
		Image:    "necklace",
		Weight:   6.4,
		Purity:   18,
		Price:    142500000,
		Note:     "برای هدیه",
		Category: domain.CategoryNecklace,
	},
	{
		ID:       "8",
		Name:     "سکه طلای ۲۲ عیار کوچک",
		Image:    "coin",
		Weight:   15.5,
		Purity:   22,
		Price:    345000000,
		Category: domain.CategoryCoin,
	},
	{
		ID:       "9",
		Name:     "حلقه طلای ۲۴ عیار نازک",
		Image:    "ring",
		Weight:   3.2,
		Purity:   24,
		Price:    89500000,
		Note:     "سبک و ظریف",
		Category: domain.CategoryRing,
	},
	{
		ID:       "10",
		Name:     "دستبند طلای ۲۴ عیار بافت",
		Image:    "bracelet",
		Weight:   15.7,
		Purity:   24,
		Price:    412500000,
		Note:     "طراحی خاص",
		Category: domain.CategoryBracelet,
	},
	{
		ID:       "11",
		Name:     "گردنبند طلای ۲۱ عیار زنجیری",
		Image:    "necklace",
		Weight:   11.2,
		Purity:   21,
		Price:    265800000,
		Category: domain.CategoryNecklace,
	},
	{
		ID:       "12",
		Name:     "شمش طلای ۲۴ عیار",
		Image:    "bar",
		Weight:   50.0,
		Purity:   24,
		Price:    1250000000,
		Note:     "برای سرمایه‌گذاری",
		Category: domain.CategoryCoin,
	},
}
