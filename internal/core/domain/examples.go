package domain

// ExampleKind distinguishes what an example exercises.
type ExampleKind string

// Example kinds.
const (
	// ExampleCorpusQuestion is a question answered from the corpus.
	ExampleCorpusQuestion ExampleKind = "corpus"

	// ExampleContextQA is a pasted context with a question.
	ExampleContextQA ExampleKind = "context_qa"

	// ExampleSummary is a text to summarise.
	ExampleSummary ExampleKind = "summary"
)

// Example is a canned prompt users can run as-is.
type Example struct {
	// Kind says which surface the example targets.
	Kind ExampleKind

	// Label is the short name shown in pickers.
	Label string

	// Question is the question text (corpus and context QA kinds).
	Question string

	// Context is the pasted passage (context QA and summary kinds).
	Context string
}

// DefaultQuestionPlaceholder is the prompt hint for the corpus ask box.
const DefaultQuestionPlaceholder = "How many field goals did Kobe Bryant score?"

// CorpusCaption describes the loaded corpus under the ask box.
const CorpusCaption = "Ask questions about basketball, answered from the " +
	"QASports reading-comprehension dataset (wiki passages with titles and URLs)."

// Examples returns the canned prompts shipped with the tool.
func Examples() []Example {
	return []Example{
		{
			Kind:     ExampleCorpusQuestion,
			Label:    "Kobe Bryant field goals",
			Question: DefaultQuestionPlaceholder,
		},
		{
			Kind:     ExampleCorpusQuestion,
			Label:    "Basketball invention",
			Question: "Who invented basketball?",
		},
		{
			Kind:     ExampleContextQA,
			Label:    "Model conversion",
			Question: "Why is model conversion important?",
			Context: "The option to convert models between FARM and transformers " +
				"gives freedom to the user and let people easily switch between frameworks.",
		},
		{
			Kind:     ExampleContextQA,
			Label:    "Amazon rainforest",
			Question: "Which continent is the Amazon rainforest in?",
			Context: "The Amazon rainforest is a moist broadleaf forest that covers " +
				"most of the Amazon basin of South America",
		},
		{
			Kind:     ExampleContextQA,
			Label:    "Programmer",
			Question: "Who am I?",
			Context:  "I am a Programmer.",
		},
	}
}
