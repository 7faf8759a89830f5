package errorsx

// ReasonCode is a short machine-readable error reason.
type ReasonCode string

const (
	ReasonUnknown ReasonCode = "unknown"

	ReasonEngineInit     ReasonCode = "engine_init"
	ReasonEngineSettings ReasonCode = "engine_settings"
	ReasonEngineUnknown  ReasonCode = "engine_unknown"

	ReasonSynthesize        ReasonCode = "tts_synthesize"
	ReasonMalformedResponse ReasonCode = "tts_malformed_response"
	ReasonRetriesExhausted  ReasonCode = "tts_retries_exhausted"
	ReasonRateLimit         ReasonCode = "tts_rate_limit"

	ReasonMessageTooLong ReasonCode = "speech_message_too_long"
)
