package entities

// Question is a prompt belonging to exactly one topic.
// ContextualInfo is nil when no context was provided on creation.
type Question struct {
	ID             int64    `json:"id"`                        // generated question_id
	TopicID        int64    `json:"topic_id"`                  // owning topic
	Text           string   `json:"text"`                      // question prompt
	ContextualInfo *string  `json:"contextual_info,omitempty"` // optional free-text context
	Answers        []Answer `json:"answers"`                   // ordered by answer id
}

// QuestionSummary is the list view of a question.
type QuestionSummary struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// Answer is one selectable option for a question.
type Answer struct {
	ID         int64  `json:"id"`          // generated answer_id
	QuestionID int64  `json:"question_id"` // owning question
	Text       string `json:"text"`        // answer text
	IsCorrect  bool   `json:"is_correct"`  // independent per answer, any subset may be correct
}

// CorrectAnswerIDs returns the ids of all answers flagged correct, in answer order.
func (q *Question) CorrectAnswerIDs() []int64 {
	ids := make([]int64, 0, len(q.Answers))
	for _, a := range q.Answers {
		if a.IsCorrect {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// HasAnswer reports whether answerID belongs to the question.
func (q *Question) HasAnswer(answerID int64) bool {
	for _, a := range q.Answers {
		if a.ID == answerID {
			return true
		}
	}
	return false
}

// MaxAnswers bounds the answers of one question.
const MaxAnswers = 64

// Draft holds the submitted fields used to create a question together with its answers.
type Draft struct {
	TopicID        int64
	Text           string
	Answers        []string         // answer texts in display order
	CorrectIndices map[int]struct{} // positions in Answers flagged correct
	Context        string           // empty means "not provided"
}

// IsCorrectAt reports whether the answer at position i is flagged correct.
func (d Draft) IsCorrectAt(i int) bool {
	_, ok := d.CorrectIndices[i]
	return ok
}

// ContextualInfo returns the context as a nullable value: nil when not provided.
func (d Draft) ContextualInfo() *string {
	if d.Context == "" {
		return nil
	}
	c := d.Context
	return &c
}

// Verdict is the result of checking a submitted selection against a question.
type Verdict struct {
	QuestionID       int64   `json:"question_id"`
	Correct          bool    `json:"correct"`
	CorrectAnswerIDs []int64 `json:"correct_answer_ids"`
}
