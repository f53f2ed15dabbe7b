package i18n

// Translator retrieves localized messages for result codes.
// data provides optional metadata to embed in the message (for example,
// "key" or "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "missing_value":
			return "必須の値がありません"
		case "invalid_value":
			return "値が不正です"
		case "invalid_type":
			return "型が不正です"
		case "too_short":
			return "短すぎます"
		case "too_long":
			return "長すぎます"
		case "too_small":
			return "小さすぎます"
		case "too_big":
			return "大きすぎます"
		case "pattern":
			return "形式が一致しません"
		case "invalid_enum":
			return "許可されていない値です"
		}
	default: // "en"
		switch code {
		case "missing_value":
			return "Missing required value"
		case "invalid_value":
			return "Invalid value"
		case "invalid_type":
			return "invalid type"
		case "too_short":
			return "too short"
		case "too_long":
			return "too long"
		case "too_small":
			return "too small"
		case "too_big":
			return "too big"
		case "pattern":
			return "pattern mismatch"
		case "invalid_enum":
			return "not an allowed value"
		}
	}
	return code
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
