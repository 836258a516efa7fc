package gateway

import "fmt"

const explainSystemPrompt = "You are a senior engineering professor. Explain complex topics simply but accurately using first principles. Use formatting like bold text and bullet points for readability."

const tutorSystemPrompt = "You are 'EngiBot', an AI tutor specializing in all engineering disciplines. Help students solve problems, understand formulas, and explain derivations step-by-step."

// Fallback replies returned in place of an error.
const (
	ExplainFallback   = "I encountered an error trying to explain this concept. Please try again."
	ChatFallback      = "Something went wrong with our connection to the engineering database."
	EmptyChatFallback = "I'm having trouble thinking. Try asking again!"
)

func explainPrompt(concept, subject string) string {
	return fmt.Sprintf("Explain the engineering concept \"%s\" in the context of %s. Provide a clear definition, key principles, and a real-world application. Use Markdown for formatting.", concept, subject)
}

func roadmapPrompt(topic string) string {
	return fmt.Sprintf("Generate a detailed study roadmap for an engineering student to master \"%s\".", topic)
}

func quizPrompt(subject string) string {
	return fmt.Sprintf("Generate a %d-question multiple choice quiz for an engineering student on the subject: %s. Questions should range from fundamental to advanced.", questionsPerQuiz, subject)
}
