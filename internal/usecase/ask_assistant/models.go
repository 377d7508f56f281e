package ask_assistant

// Request модель вопроса к ассистенту
type Request struct {
	Query string
}

// Response модель ответа ассистента
type Response struct {
	Answer string
}
