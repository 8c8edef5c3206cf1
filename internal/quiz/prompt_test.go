package quiz_test

import (
	"strings"
	"testing"

	"github.com/saulo-duarte/quizchat/internal/quiz"
)

func TestBuildPrompt(t *testing.T) {
	prompt := quiz.BuildPrompt("história do Brasil", "easy", 5)

	for _, want := range []string{
		`"história do Brasil"`,
		"Gere 5",
		"fácil",
		`"questions"`,
		`"correct_answer"`,
		`"explanation"`,
		"JSON válido",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt deveria conter %q", want)
		}
	}
}

func TestBuildPrompt_DifficultyLabels(t *testing.T) {
	cases := map[string]string{
		"easy":         "fácil",
		"medium":       "médio",
		"hard":         "difícil",
		"desconhecida": "médio",
		"":             "médio",
	}

	for difficulty, label := range cases {
		t.Run("Dificuldade_"+difficulty, func(t *testing.T) {
			prompt := quiz.BuildPrompt("tema", difficulty, 1)
			if !strings.Contains(prompt, "dificuldade "+label) {
				t.Errorf("dificuldade %q deveria render o rótulo %q", difficulty, label)
			}
		})
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	a := quiz.BuildPrompt("tema", "hard", 3)
	b := quiz.BuildPrompt("tema", "hard", 3)
	if a != b {
		t.Error("BuildPrompt deveria ser determinística para as mesmas entradas")
	}
}
