package i18n

import "strings"

// Translator retrieves localized messages for divergence kinds and gate
// outcomes. data provides optional values to embed in the message (for example,
// "count").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "enum_mismatch":
			msg = "列挙値のシリアライズ結果がコーデック間で異なります"
		case "field_name_mismatch":
			msg = "フィールドのワイヤ名がコーデック間で異なります"
		case "payload_mismatch":
			msg = "ペイロードのJSONがコーデック間で異なります"
		case "gate_passed":
			msg = "コーデック間の差異はありません"
		case "gate_failed":
			msg = "コーデック間の差異が {count} 件見つかりました"
		}
	default: // "en"
		switch code {
		case "enum_mismatch":
			msg = "enum value differs between codecs"
		case "field_name_mismatch":
			msg = "field wire name differs between codecs"
		case "payload_mismatch":
			msg = "payload JSON differs between codecs"
		case "gate_passed":
			msg = "no divergence between codecs"
		case "gate_failed":
			msg = "{count} divergence(s) between codecs"
		}
	}
	if msg == "" {
		return code
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
