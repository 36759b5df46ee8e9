package httpapi

import (
	"context"
	"errors"

	"github.com/aliskhannn/revisor/internal/domain/entities"
)

type fakeTopics struct {
	topics map[int64]entities.Topic
	nextID int64
	delErr error
}

func newFakeTopics(names ...string) *fakeTopics {
	f := &fakeTopics{topics: make(map[int64]entities.Topic)}
	for _, n := range names {
		_, _ = f.Create(context.Background(), n)
	}
	return f
}

func (f *fakeTopics) List(_ context.Context) ([]entities.Topic, error) {
	out := make([]entities.Topic, 0, len(f.topics))
	for id := int64(1); id <= f.nextID; id++ {
		if t, ok := f.topics[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTopics) Get(_ context.Context, id int64) (*entities.Topic, error) {
	t, ok := f.topics[id]
	if !ok {
		return nil, entities.ErrTopicNotFound
	}
	return &t, nil
}

func (f *fakeTopics) Create(_ context.Context, name string) (*entities.Topic, error) {
	if name == "" {
		return nil, entities.ErrInvalidInput
	}
	f.nextID++
	t := entities.Topic{ID: f.nextID, Name: name}
	f.topics[t.ID] = t
	return &t, nil
}

func (f *fakeTopics) Delete(_ context.Context, id int64) error {
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.topics, id)
	return nil
}

type fakeQuestions struct {
	questions map[int64]entities.Question
	nextID    int64
	lastDraft entities.Draft
}

func newFakeQuestions() *fakeQuestions {
	return &fakeQuestions{questions: make(map[int64]entities.Question)}
}

func (f *fakeQuestions) add(topicID int64, text string, answers ...entities.Answer) int64 {
	f.nextID++
	for i := range answers {
		answers[i].QuestionID = f.nextID
	}
	f.questions[f.nextID] = entities.Question{ID: f.nextID, TopicID: topicID, Text: text, Answers: answers}
	return f.nextID
}

func (f *fakeQuestions) ListByTopic(_ context.Context, topicID int64) ([]entities.QuestionSummary, error) {
	out := make([]entities.QuestionSummary, 0)
	for id := f.nextID; id > 0; id-- {
		if q, ok := f.questions[id]; ok && q.TopicID == topicID {
			out = append(out, entities.QuestionSummary{ID: q.ID, Text: q.Text})
		}
	}
	return out, nil
}

func (f *fakeQuestions) Create(_ context.Context, d entities.Draft) (int64, error) {
	f.lastDraft = d
	if d.Text == "" {
		return 0, entities.ErrInvalidInput
	}
	return f.add(d.TopicID, d.Text), nil
}

func (f *fakeQuestions) Get(_ context.Context, id int64) (*entities.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, entities.ErrQuestionNotFound
	}
	return &q, nil
}

func (f *fakeQuestions) Delete(_ context.Context, id int64) error {
	delete(f.questions, id)
	return nil
}

func (f *fakeQuestions) Random(_ context.Context, topicID int64) (*entities.Question, error) {
	for _, q := range f.questions {
		if q.TopicID == topicID {
			return &q, nil
		}
	}
	return nil, entities.ErrQuestionNotFound
}

func (f *fakeQuestions) Edit(ctx context.Context, questionID int64, d entities.Draft) (int64, error) {
	old, ok := f.questions[questionID]
	if !ok {
		return 0, entities.ErrQuestionNotFound
	}
	delete(f.questions, questionID)
	d.TopicID = old.TopicID
	return f.Create(ctx, d)
}

func (f *fakeQuestions) CheckAnswer(ctx context.Context, questionID int64, selected []int64) (*entities.Verdict, error) {
	q, err := f.Get(ctx, questionID)
	if err != nil {
		return nil, err
	}
	correct := q.CorrectAnswerIDs()
	ok := len(selected) == len(correct)
	for i := range selected {
		if !ok || selected[i] != correct[i] {
			ok = false
			break
		}
	}
	return &entities.Verdict{QuestionID: q.ID, Correct: ok, CorrectAnswerIDs: correct}, nil
}

type fakeUsers struct {
	passwords map[string]string
	ids       map[string]int64
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{passwords: make(map[string]string), ids: make(map[string]int64)}
}

func (f *fakeUsers) SignUp(_ context.Context, username, password string) (int64, error) {
	if _, ok := f.ids[username]; ok {
		return 0, entities.ErrUsernameTaken
	}
	id := int64(len(f.ids) + 1)
	f.ids[username] = id
	f.passwords[username] = password
	return id, nil
}

func (f *fakeUsers) Authenticate(_ context.Context, username, password string) (int64, error) {
	if p, ok := f.passwords[username]; !ok || p != password {
		return 0, entities.ErrInvalidCredentials
	}
	return f.ids[username], nil
}

func (f *fakeUsers) Get(_ context.Context, id int64) (*entities.User, error) {
	for name, uid := range f.ids {
		if uid == id {
			return &entities.User{ID: id, Username: name}, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

type fakeHealth struct{ err error }

func (f fakeHealth) Ping(context.Context) error { return f.err }

var errBoom = errors.New("boom")

// userStore backs a real service.UserService in handler tests.
type userStore struct {
	users map[string]*entities.User
}

func (s *userStore) Create(_ context.Context, username, passwordHash string) (int64, error) {
	if _, ok := s.users[username]; ok {
		return 0, entities.ErrUsernameTaken
	}
	id := int64(len(s.users) + 1)
	s.users[username] = &entities.User{ID: id, Username: username, PasswordHash: passwordHash}
	return id, nil
}

func (s *userStore) GetByUsername(_ context.Context, username string) (*entities.User, error) {
	if u, ok := s.users[username]; ok {
		return u, nil
	}
	return nil, entities.ErrUserNotFound
}

func (s *userStore) GetByID(_ context.Context, id int64) (*entities.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}
