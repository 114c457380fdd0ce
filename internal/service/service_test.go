package service

import (
	"errors"
	"testing"
	"time"

	"github.com/arefinkhan/examine/config"
	"github.com/arefinkhan/examine/internal/dto"
	"github.com/arefinkhan/examine/internal/model"
	"github.com/arefinkhan/examine/internal/repository"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&model.Site{},
		&model.User{},
		&model.AdminRequest{},
		&model.Quiz{},
		&model.Exam{},
		&model.Question{},
		&model.QuizAttempt{},
		&model.ExamAttempt{},
		&model.Post{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Ingest.RejectOnRowError = true
	cfg.Ingest.MaxErrorsShown = 8
	cfg.Quiz.SecondsPerQuestion = 60
	return cfg
}

func seedSiteExam(t *testing.T, db *gorm.DB, scheduledAt time.Time, durationMinutes int) *model.Exam {
	t.Helper()
	exam := &model.Exam{
		SiteID:          1,
		Title:           "Final",
		ScheduledAt:     scheduledAt,
		DurationMinutes: durationMinutes,
		Questions: []model.Question{
			{Position: 1, Text: "1+1?", Options: []string{"1", "2", "3"}, CorrectIndex: 1},
			{Position: 2, Text: "2+2?", Options: []string{"3", "4", "5"}, CorrectIndex: 1},
			{Position: 3, Text: "3+3?", Options: []string{"5", "6", "7"}, CorrectIndex: 1},
		},
	}
	if err := repository.NewExamRepository(db).Create(exam); err != nil {
		t.Fatalf("seed exam: %v", err)
	}
	return exam
}

func newSubmissionAt(db *gorm.DB, now time.Time) *submissionService {
	return &submissionService{
		examRepo:    repository.NewExamRepository(db),
		quizRepo:    repository.NewQuizRepository(db),
		attemptRepo: repository.NewAttemptRepository(db),
		now:         func() time.Time { return now },
	}
}

func TestSubmitExam_ScoresServerSide(t *testing.T) {
	db := openTestDB(t)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	exam := seedSiteExam(t, db, start, 60)
	svc := newSubmissionAt(db, start.Add(30*time.Minute))

	q := exam.Questions
	req := dto.AttemptSubmitRequest{
		Answers: []dto.AnswerSubmission{
			{QuestionID: q[0].ID, SelectedIndex: 1},  // correct
			{QuestionID: q[1].ID, SelectedIndex: 0},  // wrong
			{QuestionID: q[2].ID, SelectedIndex: -1}, // skipped
		},
		StartTime:      start,
		ElapsedSeconds: 95,
	}
	got, err := svc.SubmitExam(1, 10, "Rivu", exam.ID, req)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got.CorrectAnswers != 1 || got.WrongAnswers != 1 || got.SkippedQuestions != 1 {
		t.Fatalf("wrong tally: %+v", got)
	}
	if got.Percentage != 33 {
		t.Fatalf("want percentage 33, got %d", got.Percentage)
	}
	if got.TotalTimeSeconds != 95 {
		t.Fatalf("want 95 elapsed seconds, got %d", got.TotalTimeSeconds)
	}
}

func TestSubmitExam_MissingAnswersCountSkipped(t *testing.T) {
	db := openTestDB(t)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	exam := seedSiteExam(t, db, start, 60)
	svc := newSubmissionAt(db, start.Add(time.Minute))

	// Empty sheet: everything is a skip, nothing is wrong.
	got, err := svc.SubmitExam(1, 10, "Rivu", exam.ID, dto.AttemptSubmitRequest{StartTime: start})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got.SkippedQuestions != 3 || got.WrongAnswers != 0 || got.CorrectAnswers != 0 {
		t.Fatalf("wrong tally: %+v", got)
	}
}

func TestSubmitExam_SecondSubmissionRejected(t *testing.T) {
	db := openTestDB(t)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	exam := seedSiteExam(t, db, start, 60)
	svc := newSubmissionAt(db, start.Add(time.Minute))

	req := dto.AttemptSubmitRequest{StartTime: start}
	if _, err := svc.SubmitExam(1, 10, "Rivu", exam.ID, req); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := svc.SubmitExam(1, 10, "Rivu", exam.ID, req); !errors.Is(err, ErrAlreadyAttempted) {
		t.Fatalf("want ErrAlreadyAttempted, got %v", err)
	}

	var count int64
	db.Model(&model.ExamAttempt{}).Where("exam_id = ?", exam.ID).Count(&count)
	if count != 1 {
		t.Fatalf("want exactly one attempt row, got %d", count)
	}
}

func TestSubmitExam_WindowEnforced(t *testing.T) {
	db := openTestDB(t)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	exam := seedSiteExam(t, db, start, 60)
	end := start.Add(60 * time.Minute)

	cases := []struct {
		name string
		now  time.Time
		want error
	}{
		{"before open", start.Add(-time.Second), ErrWindowNotOpen},
		{"at open", start, nil},
		{"last second", end.Add(-time.Second), nil},
		{"at close", end, ErrWindowClosed},
		{"after close", end.Add(time.Hour), ErrWindowClosed},
	}
	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newSubmissionAt(db, tc.now)
			// Distinct users so the uniqueness rule stays out of the way.
			_, err := svc.SubmitExam(1, uint(100+i), "s", exam.ID, dto.AttemptSubmitRequest{StartTime: start})
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}
}

func TestSubmitExam_WrongSiteForbidden(t *testing.T) {
	db := openTestDB(t)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	exam := seedSiteExam(t, db, start, 60)
	svc := newSubmissionAt(db, start.Add(time.Minute))

	_, err := svc.SubmitExam(2, 10, "s", exam.ID, dto.AttemptSubmitRequest{StartTime: start})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("want ErrForbidden, got %v", err)
	}
}

func newExamServiceAt(db *gorm.DB, now time.Time) *examService {
	return &examService{
		examRepo:    repository.NewExamRepository(db),
		attemptRepo: repository.NewAttemptRepository(db),
		content:     NewContentService(testConfig()),
		now:         func() time.Time { return now },
	}
}

func TestGetForTake_Gating(t *testing.T) {
	db := openTestDB(t)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	exam := seedSiteExam(t, db, start, 60)
	end := start.Add(60 * time.Minute)

	if _, err := newExamServiceAt(db, start.Add(-time.Minute)).GetForTake(1, 10, exam.ID); !errors.Is(err, ErrWindowNotOpen) {
		t.Fatalf("before window: want ErrWindowNotOpen, got %v", err)
	}
	if _, err := newExamServiceAt(db, end).GetForTake(1, 10, exam.ID); !errors.Is(err, ErrWindowClosed) {
		t.Fatalf("at close: want ErrWindowClosed, got %v", err)
	}

	got, err := newExamServiceAt(db, start).GetForTake(1, 10, exam.ID)
	if err != nil {
		t.Fatalf("at open: %v", err)
	}
	if len(got.Questions) != 3 {
		t.Fatalf("want 3 questions, got %d", len(got.Questions))
	}

	// Once a scored row exists the questions are locked away again.
	svc := newSubmissionAt(db, start.Add(time.Minute))
	if _, err := svc.SubmitExam(1, 10, "s", exam.ID, dto.AttemptSubmitRequest{StartTime: start}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := newExamServiceAt(db, start.Add(2*time.Minute)).GetForTake(1, 10, exam.ID); !errors.Is(err, ErrAlreadyAttempted) {
		t.Fatalf("after attempt: want ErrAlreadyAttempted, got %v", err)
	}
}

func TestGetForPractice_OnlyAfterClose(t *testing.T) {
	db := openTestDB(t)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	exam := seedSiteExam(t, db, start, 60)
	end := start.Add(60 * time.Minute)

	if _, err := newExamServiceAt(db, end.Add(-time.Second)).GetForPractice(1, exam.ID); !errors.Is(err, ErrExamNotFinished) {
		t.Fatalf("during window: want ErrExamNotFinished, got %v", err)
	}
	got, err := newExamServiceAt(db, end).GetForPractice(1, exam.ID)
	if err != nil {
		t.Fatalf("after close: %v", err)
	}
	if len(got.Questions) != 3 || got.Questions[0].CorrectIndex != 1 {
		t.Fatalf("practice view missing answer key: %+v", got.Questions)
	}
}

func TestContentService_RejectsBadRowsByDefault(t *testing.T) {
	svc := NewContentService(testConfig())

	csv := "question,options,answer\nGood?,A|B,A\nBad row missing answer,A|B,\n"
	_, err := svc.BuildQuestions(dto.ContentRequest{InputType: "csv", Text: csv}, nil)
	var ce *ContentError
	if !errors.As(err, &ce) {
		t.Fatalf("want ContentError, got %v", err)
	}
	if len(ce.Rows) != 1 {
		t.Fatalf("want 1 row error, got %d: %v", len(ce.Rows), ce.Rows)
	}
}

func TestContentService_SkipsBadRowsWhenPolicyOff(t *testing.T) {
	cfg := testConfig()
	cfg.Ingest.RejectOnRowError = false
	svc := NewContentService(cfg)

	csv := "question,options,answer\nGood?,A|B,A\nBad row missing answer,A|B,\n"
	questions, err := svc.BuildQuestions(dto.ContentRequest{InputType: "csv", Text: csv}, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(questions) != 1 || questions[0].Text != "Good?" {
		t.Fatalf("want the one good row, got %+v", questions)
	}
	if questions[0].Position != 1 {
		t.Fatalf("positions must be renumbered from 1, got %d", questions[0].Position)
	}
}

func TestContentService_BoundsErrorList(t *testing.T) {
	cfg := testConfig()
	cfg.Ingest.MaxErrorsShown = 2
	svc := NewContentService(cfg)

	csv := "question,options,answer\n,A|B,A\n,A|B,A\n,A|B,A\n"
	_, err := svc.BuildQuestions(dto.ContentRequest{InputType: "csv", Text: csv}, nil)
	var ce *ContentError
	if !errors.As(err, &ce) {
		t.Fatalf("want ContentError, got %v", err)
	}
	if len(ce.Rows) != 2 || !ce.Truncated {
		t.Fatalf("want 2 bounded rows with truncation flag, got %d truncated=%v", len(ce.Rows), ce.Truncated)
	}
}

func TestQuizService_PlayIncludesTimeBudget(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewQuizRepository(db)

	quiz := &model.Quiz{SiteID: 1, Title: "Drill"}
	for i := 0; i < 5; i++ {
		quiz.Questions = append(quiz.Questions, model.Question{
			Position: i + 1, Text: "q", Options: []string{"a", "b"}, CorrectIndex: 0,
		})
	}
	if err := repo.Create(quiz); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := NewQuizService(repo, NewContentService(testConfig()), testConfig())
	got, err := svc.GetForPlay(1, quiz.ID)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if got.TimeLimitSeconds != 300 {
		t.Fatalf("want 5x60=300s budget, got %d", got.TimeLimitSeconds)
	}
	if len(got.Questions) != 5 || got.Questions[0].CorrectIndex != 0 {
		t.Fatalf("play view must carry the answer key: %+v", got.Questions)
	}

	if _, err := svc.GetForPlay(2, quiz.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("cross-site access: want ErrForbidden, got %v", err)
	}
}

func TestAuthService_SignupAndLogin(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(
		repository.NewUserRepository(db),
		repository.NewSiteRepository(db),
		repository.NewAdminRequestRepository(db),
		db,
	)

	site := &model.Site{Name: "School", Code: "XYZ789"}
	if err := repository.NewSiteRepository(db).Create(site); err != nil {
		t.Fatalf("seed site: %v", err)
	}

	if _, err := svc.SignupStudent(dto.SignupRequest{Name: "R", Email: "r@x.y", Password: "secret1", SiteCode: "NOPE"}); !errors.Is(err, ErrSiteCodeUnknown) {
		t.Fatalf("bad code: want ErrSiteCodeUnknown, got %v", err)
	}

	user, err := svc.SignupStudent(dto.SignupRequest{Name: "R", Email: "r@x.y", Password: "secret1", SiteCode: "XYZ789"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.SiteID != site.ID || user.IsAdmin {
		t.Fatalf("wrong user: %+v", user)
	}

	if _, err := svc.SignupStudent(dto.SignupRequest{Name: "R2", Email: "r@x.y", Password: "secret2", SiteCode: "XYZ789"}); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate email: want ErrEmailTaken, got %v", err)
	}

	if _, err := svc.Login(dto.LoginRequest{Email: "r@x.y", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("bad password: want ErrInvalidCredentials, got %v", err)
	}
	got, err := svc.Login(dto.LoginRequest{Email: "r@x.y", Password: "secret1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("login returned wrong user: %+v", got)
	}
}

func TestAuthService_AdminApprovalProvisionsSite(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(
		repository.NewUserRepository(db),
		repository.NewSiteRepository(db),
		repository.NewAdminRequestRepository(db),
		db,
	)

	req, err := svc.RequestAdmin(dto.AdminSignupRequest{Name: "T", Email: "t@x.y", Password: "secret1", SiteName: "Physics Dept"})
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	pending, err := svc.ListPendingAdminRequests()
	if err != nil || len(pending) != 1 {
		t.Fatalf("pending list: %v (%d)", err, len(pending))
	}

	site, err := svc.ApproveAdminRequest(req.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if site.Name != "Physics Dept" || len(site.Code) != 6 {
		t.Fatalf("bad site: %+v", site)
	}

	// The admin can log straight in with the password from the request.
	admin, err := svc.Login(dto.LoginRequest{Email: "t@x.y", Password: "secret1"})
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if !admin.IsAdmin || admin.SiteID != site.ID {
		t.Fatalf("bad admin: %+v", admin)
	}

	// Approving twice must not provision a second site.
	if _, err := svc.ApproveAdminRequest(req.ID); err == nil {
		t.Fatal("second approve must fail")
	}
}

func TestPasswordHash_RoundTrip(t *testing.T) {
	h, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword("hunter2", h) {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword("hunter3", h) {
		t.Fatal("wrong password accepted")
	}
	if VerifyPassword("hunter2", "garbage") {
		t.Fatal("malformed hash accepted")
	}

	h2, _ := HashPassword("hunter2")
	if h == h2 {
		t.Fatal("salts must differ between hashes")
	}
}

func TestStatsService_TiedResultsShareRank(t *testing.T) {
	db := openTestDB(t)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	exam := seedSiteExam(t, db, start, 60)

	attemptRepo := repository.NewAttemptRepository(db)
	add := func(userID uint, correct, seconds int) {
		err := attemptRepo.CreateExamAttempt(&model.ExamAttempt{
			ExamID: exam.ID, UserID: userID, StudentName: "s",
			TotalQuestions: 3, CorrectAnswers: correct, WrongAnswers: 3 - correct,
			StartTime: start, EndTime: start, TotalTimeSeconds: seconds,
		})
		if err != nil {
			t.Fatalf("seed attempt: %v", err)
		}
	}
	add(1, 3, 100)
	add(2, 2, 200)
	add(3, 2, 200) // identical result, shares the rank
	add(4, 1, 50)

	svc := NewStatsService(repository.NewExamRepository(db), repository.NewQuizRepository(db), attemptRepo, repository.NewUserRepository(db))
	results, err := svc.ExamResults(1, exam.ID)
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	ranks := make([]int, 0, len(results))
	for _, r := range results {
		ranks = append(ranks, r.Rank)
	}
	want := []int{1, 2, 2, 4}
	for i := range want {
		if ranks[i] != want[i] {
			t.Fatalf("want ranks %v, got %v", want, ranks)
		}
	}

	mine, err := svc.MyExamResult(1, 3, exam.ID)
	if err != nil {
		t.Fatalf("my result: %v", err)
	}
	if mine.Rank != 2 {
		t.Fatalf("want rank 2, got %d", mine.Rank)
	}
}

func TestStatsService_StudentSummaries(t *testing.T) {
	db := openTestDB(t)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	exam := seedSiteExam(t, db, start, 60)

	userRepo := repository.NewUserRepository(db)
	seedUser := func(name, email string, admin bool) *model.User {
		t.Helper()
		u := &model.User{PublicID: email, SiteID: 1, Name: name, Email: email, PasswordHash: "x", IsAdmin: admin}
		if err := userRepo.Create(u); err != nil {
			t.Fatalf("seed user %s: %v", name, err)
		}
		return u
	}
	student := seedUser("Rivu", "rivu@x.y", false)
	idle := seedUser("Mita", "mita@x.y", false)
	seedUser("Boss", "boss@x.y", true)

	attemptRepo := repository.NewAttemptRepository(db)
	err := attemptRepo.CreateExamAttempt(&model.ExamAttempt{
		ExamID: exam.ID, UserID: student.ID, StudentName: student.Name,
		TotalQuestions: 3, CorrectAnswers: 1, WrongAnswers: 2,
		StartTime: start, EndTime: start, TotalTimeSeconds: 120,
		CreatedAt: start.Add(10 * time.Minute),
	})
	if err != nil {
		t.Fatalf("seed exam attempt: %v", err)
	}
	err = attemptRepo.CreateQuizAttempt(&model.QuizAttempt{
		QuizID: 1, UserID: student.ID, StudentName: student.Name,
		TotalQuestions: 3, CorrectAnswers: 3,
		StartTime: start, EndTime: start, TotalTimeSeconds: 60,
		CreatedAt: start.Add(2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("seed quiz attempt: %v", err)
	}

	svc := NewStatsService(repository.NewExamRepository(db), repository.NewQuizRepository(db), attemptRepo, userRepo)
	summaries, err := svc.StudentSummaries(1)
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}

	// admins are left out; the site has two students
	if len(summaries) != 2 {
		t.Fatalf("want 2 summaries, got %d", len(summaries))
	}
	active := summaries[0]
	if active.UserID != student.ID {
		t.Fatalf("want student %d first, got %d", student.ID, active.UserID)
	}
	if active.AttemptCount != 2 {
		t.Fatalf("want 2 attempts, got %d", active.AttemptCount)
	}
	// mean of 33% (exam) and 100% (quiz), rounded
	if active.AverageScore != 67 {
		t.Fatalf("want average 67, got %d", active.AverageScore)
	}
	if len(active.RecentResults) != 2 || active.RecentResults[0].TotalTimeSeconds != 60 {
		t.Fatalf("recent results not newest-first: %+v", active.RecentResults)
	}

	if summaries[1].UserID != idle.ID || summaries[1].AttemptCount != 0 || summaries[1].AverageScore != 0 {
		t.Fatalf("bad idle summary: %+v", summaries[1])
	}
}
