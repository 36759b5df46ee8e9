package httpapi

import "github.com/aliskhannn/revisor/internal/domain/entities"

type errorResponse struct {
	Error string `json:"error"`
}

type createTopicRequest struct {
	Name string `json:"name" binding:"required"`
}

// questionRequest is used both to create and to edit a question.
// Correct holds positions in Answers.
type questionRequest struct {
	Text    string   `json:"text" binding:"required"`
	Answers []string `json:"answers"`
	Correct []int    `json:"correct"`
	Context string   `json:"context"`
}

func (r questionRequest) draft(topicID int64) entities.Draft {
	correct := make(map[int]struct{}, len(r.Correct))
	for _, i := range r.Correct {
		correct[i] = struct{}{}
	}
	return entities.Draft{
		TopicID:        topicID,
		Text:           r.Text,
		Answers:        r.Answers,
		CorrectIndices: correct,
		Context:        r.Context,
	}
}

type submitAnswerRequest struct {
	AnswerIDs []int64 `json:"answer_ids"`
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

type editResponse struct {
	ID         int64 `json:"id"`
	PreviousID int64 `json:"previous_id"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type quizAnswer struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// quizQuestion is a question as shown to a quiz taker: correctness is hidden.
// SelectMany is set unless exactly one answer is correct.
type quizQuestion struct {
	ID             int64        `json:"id"`
	TopicID        int64        `json:"topic_id"`
	Text           string       `json:"text"`
	ContextualInfo *string      `json:"contextual_info,omitempty"`
	Answers        []quizAnswer `json:"answers"`
	SelectMany     bool         `json:"select_many"`
}

func toQuizQuestion(q *entities.Question) quizQuestion {
	answers := make([]quizAnswer, 0, len(q.Answers))
	for _, a := range q.Answers {
		answers = append(answers, quizAnswer{ID: a.ID, Text: a.Text})
	}
	return quizQuestion{
		ID:             q.ID,
		TopicID:        q.TopicID,
		Text:           q.Text,
		ContextualInfo: q.ContextualInfo,
		Answers:        answers,
		SelectMany:     len(q.CorrectAnswerIDs()) != 1,
	}
}
