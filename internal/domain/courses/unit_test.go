package courses

import (
	"encoding/json"
	"testing"
)

func TestUnitQuestions(t *testing.T) {
	t.Run("decodes stored quiz", func(t *testing.T) {
		u := Unit{QuizData: json.RawMessage(`[
			{"question":"2+2?","options":["3","4"],"answer":1},
			{"question":"capital of France?","options":["Paris","Rome","Oslo"],"answer":0}
		]`)}
		qs, err := u.Questions()
		if err != nil {
			t.Fatalf("Questions: %v", err)
		}
		if len(qs) != 2 {
			t.Fatalf("expected 2 questions, got %d", len(qs))
		}
		if qs[0].Answer != 1 || qs[1].Answer != 0 {
			t.Errorf("wrong answers decoded: %d, %d", qs[0].Answer, qs[1].Answer)
		}
		if len(qs[1].Options) != 3 {
			t.Errorf("expected 3 options, got %d", len(qs[1].Options))
		}
	})

	t.Run("empty column means no quiz", func(t *testing.T) {
		qs, err := Unit{}.Questions()
		if err != nil {
			t.Fatalf("Questions: %v", err)
		}
		if qs != nil {
			t.Errorf("expected nil questions, got %v", qs)
		}
	})

	t.Run("empty array means no quiz", func(t *testing.T) {
		qs, err := Unit{QuizData: json.RawMessage(`[]`)}.Questions()
		if err != nil {
			t.Fatalf("Questions: %v", err)
		}
		if len(qs) != 0 {
			t.Errorf("expected no questions, got %v", qs)
		}
	})

	t.Run("corrupt payload errors", func(t *testing.T) {
		if _, err := (Unit{QuizData: json.RawMessage(`{nope`)}).Questions(); err == nil {
			t.Error("expected an error for corrupt quiz data")
		}
	})
}
