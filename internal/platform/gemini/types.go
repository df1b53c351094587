package gemini

import (
	"google.golang.org/genai"

	"github.com/matchday/quizgen/internal/domain"
)

// batchSize is the fixed number of questions requested per generation call.
const batchSize = 3

// promptData represents the data passed to the prompt template
type promptData struct {
	Category domain.Category
	Topic    string
}

// systemInstruction is the persona and constraint instruction sent with
// every request. The output shape itself is enforced by the response
// schema; the instruction covers what the schema cannot express.
const systemInstruction = `You are a football trivia specialist. Generate three different multiple-choice trivia questions in Spanish, Catalan and English. Each question has exactly four distinct options and exactly one correct answer. Randomize which option (A, B, C or D) is correct across the three questions. Ground every answer in a live web search and include a reliable source for each question (official websites, sports databases, press archives).`

// userPromptTemplate renders the per-call request from the selected
// category and topic.
const userPromptTemplate = `Generate three different multiple-choice questions about the following football topic: {{.Topic}}. The questions belong to the category "{{.Category}}".`

// localizedTextSchema constrains one text value to all three languages.
func localizedTextSchema(description string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: description,
		Properties: map[string]*genai.Schema{
			"es": {Type: genai.TypeString},
			"ca": {Type: genai.TypeString},
			"en": {Type: genai.TypeString},
		},
		Required: []string{"es", "ca", "en"},
	}
}

// responseSchema is the formal output schema attached to every request:
// an array of up to three quiz items mirroring domain.QuizContent.
// IDs, categories and topics are assigned locally, so they do not appear.
func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeArray,
		MaxItems: genai.Ptr[int64](batchSize),
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": localizedTextSchema("The trivia question."),
				"options": {
					Type:        genai.TypeArray,
					Description: "Exactly four options for the multiple-choice question.",
					MinItems:    genai.Ptr[int64](4),
					MaxItems:    genai.Ptr[int64](4),
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"id":   {Type: genai.TypeString, Enum: []string{"A", "B", "C", "D"}},
							"text": localizedTextSchema("The option text."),
						},
						Required: []string{"id", "text"},
					},
				},
				"correct_option_id": {
					Type:        genai.TypeString,
					Enum:        []string{"A", "B", "C", "D"},
					Description: "The identifier of the correct option.",
				},
				"correct_answer_text": localizedTextSchema("The text of the correct answer, for easy verification."),
				"source": {
					Type:        genai.TypeString,
					Description: "A reliable source backing the answer.",
				},
			},
			Required: []string{"question", "options", "correct_option_id", "correct_answer_text", "source"},
		},
	}
}
