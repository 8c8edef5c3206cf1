package quiz

import "fmt"

var difficultyLabels = map[string]string{
	"easy":   "fácil",
	"medium": "médio",
	"hard":   "difícil",
}

const defaultDifficultyLabel = "médio"

const promptFormat = `Gere %d questão(ões) de múltipla escolha de dificuldade %s sobre o tema "%s".

Requisitos:
1. Cada questão deve conter enunciado, 4 alternativas (A, B, C, D), resposta correta e explicação detalhada
2. As alternativas incorretas devem ser plausíveis (distratores razoáveis)
3. A dificuldade das questões deve corresponder ao nível pedido, sem serem triviais nem impossíveis
4. Cada questão deve ter uma única resposta correta, justificada na explicação

Retorne estritamente no seguinte formato JSON:

` + "```json" + `
{
    "questions": [
        {
            "question": "enunciado da questão",
            "options": {
                "A": "texto da alternativa A",
                "B": "texto da alternativa B",
                "C": "texto da alternativa C",
                "D": "texto da alternativa D"
            },
            "correct_answer": "A",
            "explanation": "explicação detalhada da resposta correta"
        }
    ]
}
` + "```" + `

Garanta que a resposta seja JSON válido, sem nenhum texto fora do JSON.`

func BuildPrompt(topic, difficulty string, count int) string {
	label, ok := difficultyLabels[difficulty]
	if !ok {
		label = defaultDifficultyLabel
	}
	return fmt.Sprintf(promptFormat, count, label, topic)
}
