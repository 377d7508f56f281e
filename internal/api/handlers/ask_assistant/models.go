package ask_assistant

// AskRequest HTTP request model
type AskRequest struct {
	Query string `json:"query"`
}

// AskResponse HTTP response model
type AskResponse struct {
	Answer string `json:"answer"`
}
