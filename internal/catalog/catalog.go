package catalog

import "strings"

// Book describes one of the nine fixed hadith collections.
type Book struct {
	ID          string `json:"id"`
	NativeName  string `json:"nativeName"`
	EnglishName string `json:"englishName"`
	HadithCount int    `json:"hadithCount"`
}

// books holds the full catalog in declaration order. The counts are fixed
// at process start and are the authoritative upper bound for validation.
var books = [...]Book{
	{ID: "bukhari", NativeName: "صحيح البخاري", EnglishName: "Sahih Bukhari", HadithCount: 7008},
	{ID: "muslim", NativeName: "صحيح مسلم", EnglishName: "Sahih Muslim", HadithCount: 5362},
	{ID: "muwataa", NativeName: "موطأ مالك", EnglishName: "Al Muwatta", HadithCount: 1594},
	{ID: "abidawud", NativeName: "سنن أبي داود", EnglishName: "Sunan Abu Dawud", HadithCount: 4590},
	{ID: "ibnmaja", NativeName: "سنن ابن ماجة", EnglishName: "Sunan Ibn Maja", HadithCount: 4332},
	{ID: "musnad", NativeName: "مسند أحمد بن حنبل", EnglishName: "Musnad Ahmad ibn Hanbal", HadithCount: 26363},
	{ID: "tirmidhi", NativeName: "سنن الترمذي", EnglishName: "Sunan al Tirmidhi", HadithCount: 3891},
	{ID: "nasai", NativeName: "سنن النسائي", EnglishName: "Sunan al-Nasai", HadithCount: 5662},
	{ID: "darimi", NativeName: "سنن الدارمي", EnglishName: "Sunan al Darimi", HadithCount: 3367},
}

// All returns the nine catalog entries in fixed order.
func All() []Book {
	out := make([]Book, len(books))
	copy(out, books[:])
	return out
}

// Find resolves a book id, ignoring case and surrounding whitespace.
// The boolean reports whether a catalog entry matched.
func Find(id string) (Book, bool) {
	id = strings.TrimSpace(id)
	for _, b := range books {
		if strings.EqualFold(b.ID, id) {
			return b, true
		}
	}
	return Book{}, false
}
