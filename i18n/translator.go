package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for issue codes.
// data provides values substituted for {name} placeholders (for example
// "expected" or "actual").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_type":  "cannot decode {actual}, should be {expected}",
		"parse_error":   "parse error",
		"duplicate_key": "duplicate key {key}",
		"max_depth":     "max depth exceeded",
	},
	"ja": {
		"invalid_type":  "{actual} をデコードできません ({expected} が必要です)",
		"parse_error":   "解析エラー",
		"duplicate_key": "キー {key} が重複しています",
		"max_depth":     "ネストが深すぎます",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	return Expand(msg, data)
}

// Expand replaces every {name} in msg with data[name]. Unknown placeholders
// are left as they are.
func Expand(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
