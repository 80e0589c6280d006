package constant

// User-facing fixed messages. The generic apology is the worst-case answer
// for every internal failure path; it never leaks diagnostics.
const (
	GenericApology = "Sorry, I could not process that request right now. Please try again or rephrase your question."

	DidNotUnderstand = "I did not quite understand that. Here are some things you can ask me."

	NoResultsAnswer = "I could not find any matching records for your question."
)

// ExampleQueries accompany the "did not understand" response.
var ExampleQueries = []string{
	"What is my casual leave balance?",
	"What is my monthly net salary?",
	"Who is my manager?",
	"What is the work from home policy?",
	"Show my full salary breakdown",
}
