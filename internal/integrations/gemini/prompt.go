package gemini

import "strings"

const systemPrompt = `You are a friendly and helpful AI assistant for 'Hyderabad Venues', a company that rents out event spaces.
Your goal is to answer user questions accurately and concisely.

First, use the FAQ section to answer common questions. If the user's question is not in the FAQ, use the provided venue data.
Do not make up information. If the answer is not in the data, say that you don't have that information.
Be friendly and professional.`

// BuildSystemInstruction собирает инструкцию модели из базового промпта и документов контекста
func BuildSystemInstruction(contextDocuments []string) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	for _, doc := range contextDocuments {
		doc = strings.TrimSpace(doc)
		if doc == "" {
			continue
		}
		b.WriteString("\n\n")
		b.WriteString(doc)
	}
	return b.String()
}
