package gemini

// Part фрагмент содержимого запроса или ответа
type Part struct {
	Text string `json:"text"`
}

// Content сообщение из одной или нескольких частей
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// GenerationConfig параметры генерации
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// GenerateContentRequest тело запроса models/{model}:generateContent
type GenerateContentRequest struct {
	SystemInstruction *Content         `json:"systemInstruction,omitempty"`
	Contents          []Content        `json:"contents"`
	GenerationConfig  GenerationConfig `json:"generationConfig"`
}

// Candidate вариант ответа модели
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

// GenerateContentResponse ответ generateContent
type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// ErrorResponse модель ошибки от Gemini
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
