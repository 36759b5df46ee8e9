package service

import (
	"context"
	"errors"
	"math/rand"
	"sort"

	"github.com/aliskhannn/revisor/internal/domain/entities"
)

// memDB is an in-memory stand-in for the PostgreSQL tables.
type memDB struct {
	topics    map[int64]entities.Topic
	questions map[int64]entities.Question
	answers   map[int64]entities.Answer
	users     map[int64]entities.User
	nextID    int64

	// failAnswerAfter makes CreateAnswer fail once this many answers were created.
	failAnswerAfter int
	answersCreated  int
	// noQuestionID makes Create report a zero id without an error.
	noQuestionID bool
}

var errInjected = errors.New("injected failure")

func newMemDB() *memDB {
	return &memDB{
		topics:          make(map[int64]entities.Topic),
		questions:       make(map[int64]entities.Question),
		answers:         make(map[int64]entities.Answer),
		users:           make(map[int64]entities.User),
		failAnswerAfter: -1,
	}
}

func (db *memDB) id() int64 {
	db.nextID++
	return db.nextID
}

func (db *memDB) snapshot() *memDB {
	c := *db
	c.topics = make(map[int64]entities.Topic, len(db.topics))
	for k, v := range db.topics {
		c.topics[k] = v
	}
	c.questions = make(map[int64]entities.Question, len(db.questions))
	for k, v := range db.questions {
		c.questions[k] = v
	}
	c.answers = make(map[int64]entities.Answer, len(db.answers))
	for k, v := range db.answers {
		c.answers[k] = v
	}
	c.users = make(map[int64]entities.User, len(db.users))
	for k, v := range db.users {
		c.users[k] = v
	}
	return &c
}

func (db *memDB) restore(s *memDB) {
	db.topics = s.topics
	db.questions = s.questions
	db.answers = s.answers
	db.users = s.users
}

// memTx restores the memDB snapshot when fn fails, like a rolled back transaction.
type memTx struct {
	db    *memDB
	calls int
}

func (t *memTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	snap := t.db.snapshot()
	if err := fn(ctx); err != nil {
		t.db.restore(snap)
		return err
	}
	return nil
}

// Topic repository.

func (db *memDB) List(_ context.Context) ([]entities.Topic, error) {
	topics := make([]entities.Topic, 0, len(db.topics))
	for _, t := range db.topics {
		topics = append(topics, t)
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].ID < topics[j].ID })
	return topics, nil
}

func (db *memDB) GetByID(_ context.Context, id int64) (*entities.Topic, error) {
	t, ok := db.topics[id]
	if !ok {
		return nil, entities.ErrTopicNotFound
	}
	return &t, nil
}

type topicRepo struct{ *memDB }

func (r topicRepo) Create(_ context.Context, name string) (int64, error) {
	id := r.id()
	r.topics[id] = entities.Topic{ID: id, Name: name}
	return id, nil
}

func (r topicRepo) Delete(_ context.Context, id int64) error {
	delete(r.topics, id)
	return nil
}

// Question repository.

type questionRepo struct{ *memDB }

func (r questionRepo) ListByTopic(_ context.Context, topicID int64) ([]entities.QuestionSummary, error) {
	out := make([]entities.QuestionSummary, 0)
	for _, q := range r.questions {
		if q.TopicID == topicID {
			out = append(out, entities.QuestionSummary{ID: q.ID, Text: q.Text})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r questionRepo) Create(_ context.Context, topicID int64, text string, contextualInfo *string) (int64, error) {
	if r.noQuestionID {
		return 0, nil
	}
	id := r.id()
	r.questions[id] = entities.Question{ID: id, TopicID: topicID, Text: text, ContextualInfo: contextualInfo}
	return id, nil
}

func (r questionRepo) CreateAnswer(_ context.Context, questionID int64, text string, isCorrect bool) (int64, error) {
	if r.failAnswerAfter >= 0 && r.answersCreated >= r.failAnswerAfter {
		return 0, errInjected
	}
	r.answersCreated++
	id := r.id()
	r.answers[id] = entities.Answer{ID: id, QuestionID: questionID, Text: text, IsCorrect: isCorrect}
	return id, nil
}

func (r questionRepo) GetByID(_ context.Context, id int64) (*entities.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, entities.ErrQuestionNotFound
	}
	return &q, nil
}

func (r questionRepo) ListAnswers(_ context.Context, questionID int64) ([]entities.Answer, error) {
	out := make([]entities.Answer, 0)
	for _, a := range r.answers {
		if a.QuestionID == questionID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r questionRepo) TopicID(_ context.Context, questionID int64) (int64, error) {
	q, ok := r.questions[questionID]
	if !ok {
		return 0, entities.ErrQuestionNotFound
	}
	return q.TopicID, nil
}

func (r questionRepo) RandomID(_ context.Context, topicID int64) (int64, error) {
	var ids []int64
	for _, q := range r.questions {
		if q.TopicID == topicID {
			ids = append(ids, q.ID)
		}
	}
	if len(ids) == 0 {
		return 0, entities.ErrQuestionNotFound
	}
	return ids[rand.Intn(len(ids))], nil
}

func (r questionRepo) CountByTopic(_ context.Context, topicID int64) (int, error) {
	n := 0
	for _, q := range r.questions {
		if q.TopicID == topicID {
			n++
		}
	}
	return n, nil
}

func (r questionRepo) Delete(_ context.Context, id int64) error {
	for aid, a := range r.answers {
		if a.QuestionID == id {
			delete(r.answers, aid)
		}
	}
	delete(r.questions, id)
	return nil
}

func (r questionRepo) DeleteByTopic(ctx context.Context, topicID int64) error {
	for id, q := range r.questions {
		if q.TopicID == topicID {
			_ = r.Delete(ctx, id)
		}
	}
	return nil
}

// User repository.

type userRepo struct{ *memDB }

func (r userRepo) Create(_ context.Context, username, passwordHash string) (int64, error) {
	for _, u := range r.users {
		if u.Username == username {
			return 0, entities.ErrUsernameTaken
		}
	}
	id := r.id()
	r.users[id] = entities.User{ID: id, Username: username, PasswordHash: passwordHash}
	return id, nil
}

func (r userRepo) GetByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (r userRepo) GetByID(_ context.Context, id int64) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return &u, nil
}

type fixture struct {
	db        *memDB
	tx        *memTx
	topics    *TopicService
	questions *QuestionService
}

func newFixture(policy DeletePolicy) *fixture {
	db := newMemDB()
	tx := &memTx{db: db}
	return &fixture{
		db:        db,
		tx:        tx,
		topics:    NewTopicService(tx, topicRepo{db}, questionRepo{db}, policy),
		questions: NewQuestionService(tx, topicRepo{db}, questionRepo{db}, nil),
	}
}
