package telegram

import (
	"errors"
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionTopics = "topics"
	actionQuiz   = "quiz"
	actionAnswer = "answer"
	actionPick   = "pick"
	actionCheck  = "check"
)

// maxSelectable bounds the answers a multi-select keyboard can track in its bitmask.
const maxSelectable = 64

var errBadCallback = errors.New("malformed callback data")

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// int64Param returns the i-th parameter as a positive id.
func (cd callbackData) int64Param(i int) (int64, error) {
	if i >= len(cd.Params) {
		return 0, errBadCallback
	}
	v, err := strconv.ParseInt(cd.Params[i], 10, 64)
	if err != nil || v <= 0 {
		return 0, errBadCallback
	}
	return v, nil
}

// maskParam returns the i-th parameter as a selection bitmask.
func (cd callbackData) maskParam(i int) (uint64, error) {
	if i >= len(cd.Params) {
		return 0, errBadCallback
	}
	v, err := strconv.ParseUint(cd.Params[i], 36, 64)
	if err != nil {
		return 0, errBadCallback
	}
	return v, nil
}

func buildTopicsCallback() string {
	return actionTopics
}

// buildQuizCallback builds callback data for a random question of a topic.
func buildQuizCallback(topicID int64) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{strconv.FormatInt(topicID, 10)},
	}.encode()
}

// buildAnswerCallback builds callback data for a single-choice answer.
func buildAnswerCallback(questionID, answerID int64) string {
	return callbackData{
		Action: actionAnswer,
		Params: []string{
			strconv.FormatInt(questionID, 10),
			strconv.FormatInt(answerID, 10),
		},
	}.encode()
}

// buildPickCallback builds callback data that toggles answers in a multi-select question.
// mask is the selection the keyboard switches to when pressed.
func buildPickCallback(questionID int64, mask uint64) string {
	return callbackData{
		Action: actionPick,
		Params: []string{
			strconv.FormatInt(questionID, 10),
			strconv.FormatUint(mask, 36),
		},
	}.encode()
}

// buildCheckCallback builds callback data that submits a multi-select answer.
func buildCheckCallback(questionID int64, mask uint64) string {
	return callbackData{
		Action: actionCheck,
		Params: []string{
			strconv.FormatInt(questionID, 10),
			strconv.FormatUint(mask, 36),
		},
	}.encode()
}
