package translation

import (
	"context"
	"strings"
	"sync"

	"codeberg.org/snonux/vocabmt/internal/vocabulary"
)

// edgePunctuation is stripped from both ends of a token before lookup.
const edgePunctuation = ".,;:!?\"'()[]{}"

// Dictionary is a word-by-word English to Spanish fallback translator.
// Translate never fails: unknown words are passed through unchanged.
type Dictionary struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewDictionary creates a dictionary preloaded with common words and phrases
func NewDictionary() *Dictionary {
	d := &Dictionary{entries: make(map[string]string, len(commonWords))}
	for k, v := range commonWords {
		d.entries[k] = v
	}
	return d
}

// Add adds or replaces an entry. Lookups are case-insensitive.
func (d *Dictionary) Add(english, spanish string) {
	english = strings.ToLower(strings.TrimSpace(english))
	spanish = strings.TrimSpace(spanish)
	if english == "" || spanish == "" {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries[english] = spanish
}

// AddEntries merges vocabulary entries into the dictionary
func (d *Dictionary) AddEntries(entries []vocabulary.Entry) {
	for _, e := range entries {
		d.Add(e.Term, e.Definition)
	}
}

// Get looks up a single word or phrase
func (d *Dictionary) Get(english string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	spanish, ok := d.entries[strings.ToLower(english)]
	return spanish, ok
}

// GetAll returns a copy of all entries
func (d *Dictionary) GetAll() map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	result := make(map[string]string, len(d.entries))
	for k, v := range d.entries {
		result[k] = v
	}
	return result
}

// Name returns the backend name
func (d *Dictionary) Name() string {
	return ProviderDictionary
}

// Translate implements Backend. The error is always nil.
func (d *Dictionary) Translate(_ context.Context, text string) (string, error) {
	return d.TranslateText(text), nil
}

// TranslateText translates text word by word. A text that is a known
// phrase as a whole is translated directly.
func (d *Dictionary) TranslateText(text string) string {
	if text == "" {
		return ""
	}

	if phrase, ok := d.Get(strings.TrimSpace(text)); ok {
		return phrase
	}

	words := strings.Fields(text)
	translated := make([]string, 0, len(words))
	for _, word := range words {
		translated = append(translated, d.translateWord(word))
	}
	return strings.Join(translated, " ")
}

func (d *Dictionary) translateWord(word string) string {
	core := strings.TrimRight(word, edgePunctuation)
	trailing := word[len(core):]
	trimmed := strings.TrimLeft(core, edgePunctuation)
	leading := core[:len(core)-len(trimmed)]

	if trimmed == "" {
		return word
	}

	spanish, ok := d.Get(trimmed)
	if !ok {
		return word
	}
	return leading + vocabulary.MatchCase(trimmed, spanish) + trailing
}

// commonWords holds the built-in English to Spanish word list.
var commonWords = map[string]string{
	// Greetings and phrases
	"hello":            "hola",
	"hi":               "hola",
	"goodbye":          "adiós",
	"bye":              "adiós",
	"thank you":        "gracias",
	"thanks":           "gracias",
	"please":           "por favor",
	"sorry":            "lo siento",
	"excuse me":        "disculpe",
	"good morning":     "buenos días",
	"good afternoon":   "buenas tardes",
	"good evening":     "buenas noches",
	"good night":       "buenas noches",
	"how are you":      "¿cómo estás?",
	"i'm fine":         "estoy bien",
	"nice to meet you": "encantado de conocerte",

	// Nouns
	"man":      "hombre",
	"woman":    "mujer",
	"boy":      "niño",
	"girl":     "niña",
	"child":    "niño",
	"children": "niños",
	"person":   "persona",
	"people":   "personas",
	"friend":   "amigo",
	"family":   "familia",
	"house":    "casa",
	"car":      "coche",
	"book":     "libro",
	"water":    "agua",
	"food":     "comida",
	"time":     "tiempo",
	"day":      "día",
	"week":     "semana",
	"month":    "mes",
	"year":     "año",

	// Verbs
	"to be":   "ser/estar",
	"to have": "tener",
	"to do":   "hacer",
	"to say":  "decir",
	"to go":   "ir",
	"to come": "venir",
	"to see":  "ver",
	"to know": "saber/conocer",
	"to want": "querer",
	"to need": "necesitar",
	"to find": "encontrar",
	"to give": "dar",
	"to tell": "decir",
	"to work": "trabajar",
	"to call": "llamar",
	"to try":  "intentar",
	"to ask":  "preguntar",
	"to help": "ayudar",
	"to love": "amar",
	"to live": "vivir",

	// Adjectives
	"good":        "bueno",
	"bad":         "malo",
	"big":         "grande",
	"small":       "pequeño",
	"new":         "nuevo",
	"old":         "viejo",
	"happy":       "feliz",
	"sad":         "triste",
	"beautiful":   "hermoso",
	"ugly":        "feo",
	"easy":        "fácil",
	"difficult":   "difícil",
	"important":   "importante",
	"interesting": "interesante",

	// Numbers
	"one":   "uno",
	"two":   "dos",
	"three": "tres",
	"four":  "cuatro",
	"five":  "cinco",
	"six":   "seis",
	"seven": "siete",
	"eight": "ocho",
	"nine":  "nueve",
	"ten":   "diez",

	// Time
	"today":     "hoy",
	"tomorrow":  "mañana",
	"yesterday": "ayer",
	"now":       "ahora",
	"later":     "más tarde",
	"soon":      "pronto",
	"always":    "siempre",
	"never":     "nunca",
	"sometimes": "a veces",

	// Questions
	"what":  "qué",
	"who":   "quién",
	"where": "dónde",
	"when":  "cuándo",
	"why":   "por qué",
	"how":   "cómo",

	// Prepositions
	"in":      "en",
	"on":      "en/sobre",
	"at":      "en",
	"to":      "a",
	"from":    "de",
	"with":    "con",
	"without": "sin",
	"for":     "para/por",
	"of":      "de",
	"about":   "sobre/acerca de",

	// Conjunctions
	"and":     "y",
	"or":      "o",
	"but":     "pero",
	"because": "porque",
	"if":      "si",
	"then":    "entonces",

	// Articles
	"the": "el/la/los/las",
	"a":   "un/una",
	"an":  "un/una",
}
