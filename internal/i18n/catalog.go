package i18n

// labels is the compiled-in label catalog, keyed by label key then
// language code. Keeping translations in the binary avoids runtime
// lookup failures and external files.
var labels = map[string]map[string]string{
	"report.title": {
		"en": "Rental Market Summary",
		"tr": "Kira Piyasası Özeti",
	},
	"report.source": {
		"en": "Data file",
		"tr": "Veri dosyası",
	},
	"report.count": {
		"en": "Listings analyzed",
		"tr": "İncelenen ilan sayısı",
	},
	"report.skipped": {
		"en": "Skipped rows",
		"tr": "Atlanan satır sayısı",
	},
	"report.avg_price": {
		"en": "Average monthly rent",
		"tr": "Ortalama aylık kira",
	},
	"report.median_price": {
		"en": "Median monthly rent",
		"tr": "Medyan aylık kira",
	},
	"report.avg_size": {
		"en": "Average size",
		"tr": "Ortalama büyüklük",
	},
	"report.avg_psf": {
		"en": "Average price per sqft",
		"tr": "Metrekare başına ortalama fiyat",
	},
	"report.by_bedrooms": {
		"en": "Average price by bedroom count:",
		"tr": "Oda sayısına göre ortalama kira:",
	},
	"report.amenities": {
		"en": "Share of listings with amenities:",
		"tr": "Olanak sunan ilanların oranı:",
	},
	"report.top_by_price": {
		"en": "Top listings by price:",
		"tr": "Fiyata göre en pahalı ilanlar:",
	},
	"report.top_by_psf": {
		"en": "Top listings by price per sqft:",
		"tr": "Metrekare başına fiyata göre öne çıkan ilanlar:",
	},
	"report.no_listings": {
		"en": "No usable listings found in the dataset.",
		"tr": "Veri kümesinde kullanılabilir ilan bulunamadı.",
	},
	"unit.price": {
		"en": "Price",
		"tr": "Fiyat",
	},
	"unit.bedrooms": {
		"en": "BR",
		"tr": "oda",
	},
	"unit.bathrooms": {
		"en": "BA",
		"tr": "banyo",
	},
	"unit.sqft": {
		"en": "sqft",
		"tr": "ft²",
	},
	"unit.listings": {
		"en": "listings",
		"tr": "ilan",
	},
	"amenity.washer": {
		"en": "Washer",
		"tr": "Çamaşır makinesi",
	},
	"amenity.elevator": {
		"en": "Elevator",
		"tr": "Asansör",
	},
	"amenity.dishwasher": {
		"en": "Dishwasher",
		"tr": "Bulaşık makinesi",
	},
	"amenity.gym": {
		"en": "Gym",
		"tr": "Spor salonu",
	},
}
