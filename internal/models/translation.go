package models

// DictionaryResponse is the payload of the ftapi dictionary endpoint.
type DictionaryResponse struct {
	SourceText      string `json:"source-text"`
	DestinationText string `json:"destination-text"`
	Pronunciation   struct {
		SourceTextPhonetic string `json:"source-text-phonetic"`
	} `json:"pronunciation"`
	Translations struct {
		PossibleTranslations []string `json:"possible-translations"`
	} `json:"translations"`
	Definitions []struct {
		PartOfSpeech string `json:"part-of-speech"`
		Definition   string `json:"definition"`
		Example      string `json:"example"`
	} `json:"definitions"`
}

type MyMemoryResponse struct {
	ResponseBody struct {
		TranslatedText  string  `json:"translatedText"`
		Match           float64 `json:"match"`
		ResponseStatus  int     `json:"responseStatus"`
		ResponseDetails string  `json:"responseDetails"`
	} `json:"responseData"`

	Matches []struct {
		Translation string `json:"translation"`
	} `json:"matches"`
}

type MachineTranslation struct {
	Text         string
	Match        float64
	Source       string
	Target       string
	Alternatives []string
	Error        string
}
