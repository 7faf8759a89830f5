package gemini

// Languages Gemini TTS can auto-detect. The service picks the language from
// the prompt itself; this catalog only advertises coverage to the platform.
var supportedLanguages = []string{
	"ar-EG", "de-DE", "en-US", "es-US", "fr-FR", "hi-IN",
	"id-ID", "it-IT", "ja-JP", "ko-KR", "nl-NL", "pl-PL",
	"pt-BR", "ru-RU", "th-TH", "tr-TR", "vi-VN", "ro-RO",
	"uk-UA", "bn-BD", "en-IN", "mr-IN", "ta-IN", "te-IN",
}
