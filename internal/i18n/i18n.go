// Package i18n holds the bilingual UI strings and the locale type.
// A Translator is an immutable value; switching language produces a new
// Translator rather than mutating shared state.
package i18n

type Locale string

const (
	LocaleBn Locale = "bn"
	LocaleEn Locale = "en"

	DefaultLocale = LocaleBn
)

func ParseLocale(s string) (Locale, bool) {
	switch s {
	case "bn":
		return LocaleBn, true
	case "en":
		return LocaleEn, true
	default:
		return DefaultLocale, false
	}
}

// Toggle flips between the two supported locales.
func (l Locale) Toggle() Locale {
	if l == LocaleBn {
		return LocaleEn
	}

	return LocaleBn
}

type Translator struct {
	locale Locale
}

func NewTranslator(l Locale) Translator {
	return Translator{locale: l}
}

func (t Translator) Locale() Locale {
	return t.locale
}

// T looks up a UI string for the translator's locale. Unrecognized keys
// fail open and return the key itself.
func (t Translator) T(key string) string {
	dict, ok := translations[t.locale]
	if !ok {
		return key
	}

	if s, ok := dict[key]; ok {
		return s
	}

	return key
}

// Dict returns a copy of the full dictionary for a locale, for clients
// that want to bootstrap all strings in one request.
func Dict(l Locale) map[string]string {
	src, ok := translations[l]
	if !ok {
		src = translations[DefaultLocale]
	}

	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}

	return out
}

var translations = map[Locale]map[string]string{
	LocaleEn: {
		"appName":      "TongMap",
		"tagline":      "Find your favorite roadside tea stall",
		"map":          "Map",
		"addStall":     "Add Stall",
		"addNewStall":  "Add a New Tea Stall",
		"about":        "About",
		"login":        "Login",
		"signup":       "Sign Up",
		"logout":       "Logout",
		"search":       "Search tea stalls...",
		"allDivisions": "All Divisions",
		"stallNameBn":  "Stall Name (Bengali)",
		"stallNameEn":  "Stall Name (English)",
		"ownerName":    "Owner Name",
		"phone":        "Phone",
		"division":     "Division",
		"district":     "District",
		"upazila":      "Upazila",
		"openTime":     "Opening Time",
		"closeTime":    "Closing Time",
		"teaPrice":     "Tea Price",
		"taka":         "৳",
		"descriptionBn": "Description (Bengali)",
		"descriptionEn": "Description (English)",
		"facilities":   "Facilities",
		"wifi":         "Wi-Fi",
		"tv":           "TV",
		"seating":      "Seating",
		"smokingZone":  "Smoking Zone",
		"photos":       "Photos",
		"submit":       "Submit",
		"cancel":       "Cancel",
		"stallsFound":  "stalls found",
		"submitted":    "Successfully submitted!",
		"sentForReview": "Your stall has been sent for review.",
	},
	LocaleBn: {
		"appName":      "টংম্যাপ",
		"tagline":      "আপনার প্রিয় রাস্তার চায়ের দোকান খুঁজুন",
		"map":          "মানচিত্র",
		"addStall":     "টঙ যোগ করুন",
		"addNewStall":  "নতুন চায়ের দোকান যোগ করুন",
		"about":        "সম্পর্কে",
		"login":        "লগইন",
		"signup":       "সাইন আপ",
		"logout":       "লগআউট",
		"search":       "চায়ের দোকান খুঁজুন...",
		"allDivisions": "সকল বিভাগ",
		"stallNameBn":  "দোকানের নাম (বাংলা)",
		"stallNameEn":  "দোকানের নাম (ইংরেজি)",
		"ownerName":    "মালিকের নাম",
		"phone":        "ফোন",
		"division":     "বিভাগ",
		"district":     "জেলা",
		"upazila":      "উপজেলা",
		"openTime":     "খোলার সময়",
		"closeTime":    "বন্ধের সময়",
		"teaPrice":     "চায়ের দাম",
		"taka":         "৳",
		"descriptionBn": "বিবরণ (বাংলা)",
		"descriptionEn": "বিবরণ (ইংরেজি)",
		"facilities":   "সুবিধা",
		"wifi":         "ওয়াইফাই",
		"tv":           "টিভি",
		"seating":      "বসার ব্যবস্থা",
		"smokingZone":  "ধূমপান এলাকা",
		"photos":       "ছবি",
		"submit":       "জমা দিন",
		"cancel":       "বাতিল",
		"stallsFound":  "টি টঙ পাওয়া গেছে",
		"submitted":    "সফলভাবে জমা হয়েছে!",
		"sentForReview": "আপনার টঙ পর্যালোচনার জন্য পাঠানো হয়েছে।",
	},
}
