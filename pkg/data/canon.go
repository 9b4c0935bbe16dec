package data

import "strings"

// canon lists the 66 books of the Protestant canon in canonical order.
var canon = []CanonicalBook{
	// Old Testament
	{"Genesis", 50},
	{"Exodus", 40},
	{"Leviticus", 27},
	{"Numbers", 36},
	{"Deuteronomy", 34},
	{"Joshua", 24},
	{"Judges", 21},
	{"Ruth", 4},
	{"1 Samuel", 31},
	{"2 Samuel", 24},
	{"1 Kings", 22},
	{"2 Kings", 25},
	{"1 Chronicles", 29},
	{"2 Chronicles", 36},
	{"Ezra", 10},
	{"Nehemiah", 13},
	{"Esther", 10},
	{"Job", 42},
	{"Psalms", 150},
	{"Proverbs", 31},
	{"Ecclesiastes", 12},
	{"Song of Solomon", 8},
	{"Isaiah", 66},
	{"Jeremiah", 52},
	{"Lamentations", 5},
	{"Ezekiel", 48},
	{"Daniel", 12},
	{"Hosea", 14},
	{"Joel", 3},
	{"Amos", 9},
	{"Obadiah", 1},
	{"Jonah", 4},
	{"Micah", 7},
	{"Nahum", 3},
	{"Habakkuk", 3},
	{"Zephaniah", 3},
	{"Haggai", 2},
	{"Zechariah", 14},
	{"Malachi", 4},
	// New Testament
	{"Matthew", 28},
	{"Mark", 16},
	{"Luke", 24},
	{"John", 21},
	{"Acts", 28},
	{"Romans", 16},
	{"1 Corinthians", 16},
	{"2 Corinthians", 13},
	{"Galatians", 6},
	{"Ephesians", 6},
	{"Philippians", 4},
	{"Colossians", 4},
	{"1 Thessalonians", 5},
	{"2 Thessalonians", 3},
	{"1 Timothy", 6},
	{"2 Timothy", 4},
	{"Titus", 3},
	{"Philemon", 1},
	{"Hebrews", 13},
	{"James", 5},
	{"1 Peter", 5},
	{"2 Peter", 3},
	{"1 John", 5},
	{"2 John", 1},
	{"3 John", 1},
	{"Jude", 1},
	{"Revelation", 22},
}

var chapterCounts = func() map[string]int {
	m := make(map[string]int, len(canon))
	for _, b := range canon {
		m[b.Name] = b.Chapters
	}
	return m
}()

var byFoldedName = func() map[string]string {
	m := make(map[string]string, len(canon))
	for _, b := range canon {
		m[fold(b.Name)] = b.Name
	}
	return m
}()

// abbreviations maps common short forms, folded, to canonical names.
var abbreviations = map[string]string{
	"gen": "Genesis", "ge": "Genesis", "gn": "Genesis",
	"ex": "Exodus", "exo": "Exodus", "exod": "Exodus",
	"lev": "Leviticus", "lv": "Leviticus",
	"num": "Numbers", "nm": "Numbers",
	"deut": "Deuteronomy", "deu": "Deuteronomy", "dt": "Deuteronomy",
	"josh": "Joshua", "jos": "Joshua",
	"judg": "Judges", "jdg": "Judges",
	"ru": "Ruth", "rth": "Ruth",
	"1sam": "1 Samuel", "1sa": "1 Samuel",
	"2sam": "2 Samuel", "2sa": "2 Samuel",
	"1kgs": "1 Kings", "1ki": "1 Kings",
	"2kgs": "2 Kings", "2ki": "2 Kings",
	"1chr": "1 Chronicles", "1ch": "1 Chronicles",
	"2chr": "2 Chronicles", "2ch": "2 Chronicles",
	"ezr": "Ezra",
	"neh": "Nehemiah",
	"esth": "Esther", "est": "Esther",
	"ps": "Psalms", "psa": "Psalms", "psalm": "Psalms",
	"prov": "Proverbs", "pro": "Proverbs", "prv": "Proverbs",
	"eccl": "Ecclesiastes", "ecc": "Ecclesiastes", "qoh": "Ecclesiastes",
	"song": "Song of Solomon", "sos": "Song of Solomon", "songofsongs": "Song of Solomon", "canticles": "Song of Solomon",
	"isa": "Isaiah",
	"jer": "Jeremiah",
	"lam": "Lamentations",
	"ezek": "Ezekiel", "eze": "Ezekiel",
	"dan": "Daniel", "dn": "Daniel",
	"hos": "Hosea",
	"jl": "Joel",
	"am": "Amos",
	"obad": "Obadiah", "oba": "Obadiah",
	"jon": "Jonah", "jnh": "Jonah",
	"mic": "Micah",
	"nah": "Nahum",
	"hab": "Habakkuk",
	"zeph": "Zephaniah", "zep": "Zephaniah",
	"hag": "Haggai",
	"zech": "Zechariah", "zec": "Zechariah",
	"mal": "Malachi",
	"matt": "Matthew", "mt": "Matthew",
	"mk": "Mark", "mrk": "Mark",
	"lk": "Luke", "luk": "Luke",
	"jn": "John", "jhn": "John",
	"ac": "Acts",
	"rom": "Romans", "rm": "Romans",
	"1cor": "1 Corinthians", "1co": "1 Corinthians",
	"2cor": "2 Corinthians", "2co": "2 Corinthians",
	"gal": "Galatians",
	"eph": "Ephesians",
	"phil": "Philippians", "php": "Philippians",
	"col": "Colossians",
	"1thess": "1 Thessalonians", "1th": "1 Thessalonians",
	"2thess": "2 Thessalonians", "2th": "2 Thessalonians",
	"1tim": "1 Timothy", "1ti": "1 Timothy",
	"2tim": "2 Timothy", "2ti": "2 Timothy",
	"tit": "Titus",
	"phlm": "Philemon", "phm": "Philemon",
	"heb": "Hebrews",
	"jas": "James", "jm": "James",
	"1pet": "1 Peter", "1pe": "1 Peter",
	"2pet": "2 Peter", "2pe": "2 Peter",
	"1jn": "1 John", "1jo": "1 John",
	"2jn": "2 John", "2jo": "2 John",
	"3jn": "3 John", "3jo": "3 John",
	"jud": "Jude",
	"rev": "Revelation", "re": "Revelation",
}

// fold lowercases a name and drops its whitespace and trailing period.
func fold(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(strings.TrimSuffix(strings.TrimSpace(name), ".")), ""))
}

// ChapterCount returns the number of chapters in the named book.
func ChapterCount(name string) (int, error) {
	n, ok := chapterCounts[name]
	if !ok {
		return 0, &BookError{Book: name}
	}
	return n, nil
}

func HasBook(name string) bool {
	_, ok := chapterCounts[name]
	return ok
}

// BookNames returns all book names in canonical order.
func BookNames() []string {
	names := make([]string, len(canon))
	for i, b := range canon {
		names[i] = b.Name
	}
	return names
}

// Books returns a copy of the canonical table.
func Books() []CanonicalBook {
	out := make([]CanonicalBook, len(canon))
	copy(out, canon)
	return out
}

// CanonicalName maps a book name to its canonical spelling. Matching ignores
// case and whitespace, so "song of solomon" and "1John" both resolve, and
// common abbreviations such as "Gen" or "1 Cor." are accepted.
func CanonicalName(name string) (string, bool) {
	key := fold(name)
	if canonical, ok := byFoldedName[key]; ok {
		return canonical, true
	}
	canonical, ok := abbreviations[key]
	return canonical, ok
}

// FileName is the dataset key for a book: its name with spaces removed.
func FileName(name string) string {
	return strings.ReplaceAll(name, " ", "")
}
