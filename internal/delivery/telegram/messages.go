// messages.go contains message templates for Telegram.

package telegram

const (
	msgWelcome = "<b>Revisor</b> quizzes you on the topics you keep.\n\n" +
		"/topics: pick a topic and get a random question\n" +
		"/help: show this message"
	msgUnknownCommand = "Unknown command. Use /topics to start a quiz."
	msgNoTopics       = "There are no topics yet. Add some through the web API first."
	msgChooseTopic    = "Choose a topic:"
	msgEmptyTopic     = "This topic has no questions yet."
	msgTopicNotFound  = "This topic no longer exists. Use /topics to pick another one."
	msgQuestionGone   = "This question was changed or removed. Ask for the next one."
	msgTooManyAnswers = "This question has too many answers to show here. Ask for the next one."
	msgInternalError  = "Something went wrong. Please try again later."
	msgSelectMany     = "<i>Select every correct answer, possibly none, and press Check.</i>"
	msgCorrect        = "✅ Correct!"
	msgIncorrect      = "❌ Not quite."
	msgCorrectAnswers = "Correct answers:"
	msgNoCorrect      = "none"
)

const (
	btnNext   = "➡️ Next question"
	btnTopics = "📚 Topics"
	btnCheck  = "✔️ Check"
)

const (
	msgYourAnswer = "Your answer:"
	msgNothing    = "nothing selected"
)
