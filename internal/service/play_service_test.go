package service

import (
	"errors"
	"testing"
	"time"

	"github.com/arefinkhan/examine/internal/model"
	"github.com/arefinkhan/examine/internal/repository"
	"github.com/arefinkhan/examine/internal/session"
	"gorm.io/gorm"
)

// frozenClock hands out tickers that never fire, so sessions in these tests
// complete only through navigation or an explicit finish.
type frozenClock struct{ now time.Time }

func (c frozenClock) Now() time.Time                         { return c.now }
func (c frozenClock) NewTicker(time.Duration) session.Ticker { return idleTicker{} }

type idleTicker struct{}

func (idleTicker) C() <-chan time.Time { return nil }
func (idleTicker) Stop()               {}

func seedSiteQuiz(t *testing.T, db *gorm.DB) *model.Quiz {
	t.Helper()
	quiz := &model.Quiz{
		SiteID: 1,
		Title:  "Chapter 1",
		Questions: []model.Question{
			{Position: 1, Text: "1+1?", Options: []string{"1", "2", "3"}, CorrectIndex: 1},
			{Position: 2, Text: "2+2?", Options: []string{"3", "4", "5"}, CorrectIndex: 1},
			{Position: 3, Text: "3+3?", Options: []string{"5", "6", "7"}, CorrectIndex: 1},
		},
	}
	if err := repository.NewQuizRepository(db).Create(quiz); err != nil {
		t.Fatalf("seed quiz: %v", err)
	}
	return quiz
}

func newPlayAt(db *gorm.DB, now time.Time) *playService {
	return &playService{
		quizRepo:    repository.NewQuizRepository(db),
		attemptRepo: repository.NewAttemptRepository(db),
		cfg:         testConfig(),
		clock:       frozenClock{now: now},
		sessions:    make(map[string]*playSession),
	}
}

func TestPlayService_FullRunRecordsAttempt(t *testing.T) {
	db := openTestDB(t)
	quiz := seedSiteQuiz(t, db)
	svc := newPlayAt(db, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	st, err := svc.Start(1, 10, "Rivu", quiz.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if st.State != "in_progress" || st.TotalQuestions != 3 || st.RemainingSeconds != 180 {
		t.Fatalf("bad opening state: %+v", st)
	}
	if st.Question == nil || st.Question.Text != "1+1?" {
		t.Fatalf("wrong first question: %+v", st.Question)
	}

	if _, err := svc.Answer(10, st.SessionID, 1); err != nil { // correct
		t.Fatalf("answer q1: %v", err)
	}
	if _, err := svc.Next(10, st.SessionID); err != nil {
		t.Fatalf("next to q2: %v", err)
	}
	if _, err := svc.Next(10, st.SessionID); err != nil { // q2 skipped
		t.Fatalf("next to q3: %v", err)
	}
	if _, err := svc.Answer(10, st.SessionID, 9); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("out of range: want ErrInvalidOption, got %v", err)
	}
	if _, err := svc.Answer(10, st.SessionID, 0); err != nil { // wrong
		t.Fatalf("answer q3: %v", err)
	}

	// Walking past the last question completes and persists the run.
	final, err := svc.Next(10, st.SessionID)
	if err != nil {
		t.Fatalf("final next: %v", err)
	}
	if final.State != "completed" || final.Result == nil {
		t.Fatalf("not completed: %+v", final)
	}
	r := final.Result
	if r.CorrectAnswers != 1 || r.WrongAnswers != 1 || r.SkippedQuestions != 1 || r.Percentage != 33 {
		t.Fatalf("wrong result: %+v", r)
	}

	var attempts []model.QuizAttempt
	db.Where("quiz_id = ?", quiz.ID).Find(&attempts)
	if len(attempts) != 1 {
		t.Fatalf("want 1 persisted attempt, got %d", len(attempts))
	}
	if attempts[0].CorrectAnswers != 1 || attempts[0].SkippedQuestions != 1 {
		t.Fatalf("persisted tallies wrong: %+v", attempts[0])
	}

	// The completed session rejects further answers, then Finish retires it.
	if _, err := svc.Answer(10, st.SessionID, 0); !errors.Is(err, ErrSessionNotActive) {
		t.Fatalf("answer after completion: want ErrSessionNotActive, got %v", err)
	}
	if _, err := svc.Finish(10, st.SessionID); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if _, err := svc.State(10, st.SessionID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("state after finish: want ErrNotFound, got %v", err)
	}

	db.Where("quiz_id = ?", quiz.ID).Find(&attempts)
	if len(attempts) != 1 {
		t.Fatalf("finish double-recorded the attempt: %d rows", len(attempts))
	}
}

func TestPlayService_SessionOwnership(t *testing.T) {
	db := openTestDB(t)
	quiz := seedSiteQuiz(t, db)
	svc := newPlayAt(db, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	if _, err := svc.Start(2, 10, "Rivu", quiz.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("cross-site start: want ErrForbidden, got %v", err)
	}

	st, err := svc.Start(1, 10, "Rivu", quiz.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.State(11, st.SessionID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign user state: want ErrNotFound, got %v", err)
	}
}

func TestPlayService_RestartAbandonsEarlierRun(t *testing.T) {
	db := openTestDB(t)
	quiz := seedSiteQuiz(t, db)
	svc := newPlayAt(db, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	first, err := svc.Start(1, 10, "Rivu", quiz.ID)
	if err != nil {
		t.Fatalf("first start: %v", err)
	}
	if _, err := svc.Answer(10, first.SessionID, 1); err != nil {
		t.Fatalf("answer in first run: %v", err)
	}

	second, err := svc.Start(1, 10, "Rivu", quiz.ID)
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	if _, err := svc.State(10, first.SessionID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("abandoned session still reachable: %v", err)
	}

	if _, err := svc.Finish(10, second.SessionID); err != nil {
		t.Fatalf("finish: %v", err)
	}

	// Only the finished run is recorded; the abandoned one never scores.
	var count int64
	db.Model(&model.QuizAttempt{}).Where("quiz_id = ?", quiz.ID).Count(&count)
	if count != 1 {
		t.Fatalf("want 1 attempt from the finished run, got %d", count)
	}
}
