// Package study holds the domain types shared by the gateway, the flow
// controllers and the screens.
package study

// Roadmap is an ordered study plan for one topic.
type Roadmap struct {
	Topic string
	Steps []RoadmapStep
}

// RoadmapStep is one stage of a roadmap. All fields are free text.
type RoadmapStep struct {
	Title       string
	Description string
	Duration    string
}

// OptionsPerQuestion is the fixed number of choices on a quiz question.
const OptionsPerQuestion = 4

// QuestionsPerQuiz is how many questions a generated quiz asks for.
const QuestionsPerQuiz = 5

// QuizSet is a generated multiple-choice quiz.
type QuizSet struct {
	Subject   string
	Questions []QuizQuestion
}

// QuizQuestion is a single multiple-choice question. CorrectAnswer is a
// 0-based index into Options.
type QuizQuestion struct {
	Question      string
	Options       []string
	CorrectAnswer int
	Explanation   string
}

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of the tutor transcript.
type Message struct {
	Role    Role
	Content string
}

// Concept is a named topic inside a subject that can be explained on
// demand.
type Concept struct {
	ID      string
	Title   string
	Subject Subject
	Summary string
}
