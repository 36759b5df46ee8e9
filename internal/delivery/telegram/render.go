package telegram

import (
	"strings"

	"github.com/aliskhannn/revisor/internal/domain/entities"
)

// selectMany reports whether a question needs the multi-select keyboard.
func selectMany(q *entities.Question) bool {
	return len(q.CorrectAnswerIDs()) != 1
}

// selectedIDs maps a selection bitmask over q.Answers to answer ids.
func selectedIDs(q *entities.Question, mask uint64) []int64 {
	ids := make([]int64, 0)
	for i, a := range q.Answers {
		if i < maxSelectable && mask&(1<<uint(i)) != 0 {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

func renderQuestionHeader(sb *strings.Builder, q *entities.Question) {
	sb.WriteString(bold(q.Text))
	if q.ContextualInfo != nil && *q.ContextualInfo != "" {
		sb.WriteString("\n<i>")
		sb.WriteString(esc(*q.ContextualInfo))
		sb.WriteString("</i>")
	}
}

// renderQuestion renders a question for answering. Correctness is not shown.
func renderQuestion(q *entities.Question) string {
	var sb strings.Builder
	renderQuestionHeader(&sb, q)

	if selectMany(q) {
		sb.WriteString("\n\n")
		sb.WriteString(msgSelectMany)
	}
	return sb.String()
}

// renderVerdict renders the outcome of an answer together with the correct answers.
func renderVerdict(q *entities.Question, v *entities.Verdict, selected []int64) string {
	var sb strings.Builder
	renderQuestionHeader(&sb, q)

	sb.WriteString("\n\n")
	if v.Correct {
		sb.WriteString(msgCorrect)
	} else {
		sb.WriteString(msgIncorrect)
	}

	sb.WriteString("\n\n")
	sb.WriteString(msgYourAnswer)
	sb.WriteString(" ")
	sb.WriteString(answerList(q, selected, msgNothing))

	sb.WriteString("\n")
	sb.WriteString(msgCorrectAnswers)
	sb.WriteString(" ")
	sb.WriteString(answerList(q, v.CorrectAnswerIDs, msgNoCorrect))

	return sb.String()
}

func answerList(q *entities.Question, ids []int64, empty string) string {
	want := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	texts := make([]string, 0, len(ids))
	for _, a := range q.Answers {
		if _, ok := want[a.ID]; ok {
			texts = append(texts, bold(a.Text))
		}
	}
	if len(texts) == 0 {
		return esc(empty)
	}
	return strings.Join(texts, ", ")
}
