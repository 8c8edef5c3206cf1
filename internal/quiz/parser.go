package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/saulo-duarte/quizchat/internal/config"
	"github.com/xeipuuv/gojsonschema"
)

// MalformedResponseError indica que a resposta do modelo não segue o formato
// pedido no prompt. Nunca chega ao chamador HTTP: vira a questão de exemplo.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("resposta do modelo em formato inesperado: %s", e.Reason)
}

const batchSchema = `{
	"type": "object",
	"properties": {
		"questions": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"question": {"type": "string"},
					"options": {
						"type": "object",
						"properties": {
							"A": {"type": "string"},
							"B": {"type": "string"},
							"C": {"type": "string"},
							"D": {"type": "string"}
						},
						"required": ["A", "B", "C", "D"]
					},
					"correct_answer": {"type": "string", "enum": ["A", "B", "C", "D"]},
					"explanation": {"type": "string"}
				},
				"required": ["question", "options", "correct_answer", "explanation"]
			}
		}
	}
}`

var batchValidator = mustSchema(batchSchema)

func mustSchema(raw string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
	if err != nil {
		panic(err)
	}
	return schema
}

type parsedBatch struct {
	Questions []parsedQuestion `json:"questions"`
}

type parsedQuestion struct {
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
	Explanation   string            `json:"explanation"`
}

var optionOrder = []string{"A", "B", "C", "D"}

// ParseQuestions extrai as questões embutidas no texto livre retornado pelo
// modelo. Qualquer falha de formato é absorvida: o chamador sempre recebe ao
// menos uma questão bem formada (a questão de exemplo).
func ParseQuestions(ctx context.Context, raw string) []Question {
	questions, err := extractQuestions(raw)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Falha ao interpretar resposta do modelo, retornando questão de exemplo")
		return []Question{SampleQuestion()}
	}
	return questions
}

func extractQuestions(raw string) ([]Question, error) {
	// A resposta pode vir embrulhada em prosa ou cercas de código, então o
	// recorte vai do primeiro "{" ao último "}".
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, &MalformedResponseError{Reason: "nenhum objeto JSON encontrado na resposta"}
	}
	jsonStr := raw[start : end+1]

	result, err := batchValidator.Validate(gojsonschema.NewStringLoader(jsonStr))
	if err != nil {
		return nil, &MalformedResponseError{Reason: err.Error()}
	}
	if !result.Valid() {
		reasons := make([]string, 0, len(result.Errors()))
		for _, violation := range result.Errors() {
			reasons = append(reasons, violation.String())
		}
		return nil, &MalformedResponseError{Reason: strings.Join(reasons, "; ")}
	}

	var batch parsedBatch
	if err := json.Unmarshal([]byte(jsonStr), &batch); err != nil {
		return nil, &MalformedResponseError{Reason: err.Error()}
	}

	questions := make([]Question, 0, len(batch.Questions))
	for i, parsed := range batch.Questions {
		options := make([]string, 0, len(optionOrder))
		for _, letter := range optionOrder {
			options = append(options, parsed.Options[letter])
		}
		questions = append(questions, Question{
			Question:      parsed.Question,
			Options:       options,
			CorrectAnswer: parsed.CorrectAnswer,
			Explanation:   parsed.Explanation,
			QuestionID:    questionID(i+1, parsed.Question),
		})
	}
	return questions, nil
}

func questionID(index int, question string) string {
	h := fnv.New32a()
	h.Write([]byte(question))
	return fmt.Sprintf("q_%d_%d", index, h.Sum32()%10000)
}

// SampleQuestion é a questão fixa devolvida quando a resposta do modelo não
// pôde ser interpretada.
func SampleQuestion() Question {
	return Question{
		Question:      "Questão básica (falha ao interpretar a resposta, exibindo exemplo)",
		Options:       []string{"Alternativa A", "Alternativa B", "Alternativa C", "Alternativa D"},
		CorrectAnswer: "A",
		Explanation:   "Esta é uma questão de exemplo; verifique se o formato retornado pelo modelo está correto.",
		QuestionID:    "sample_1",
	}
}
