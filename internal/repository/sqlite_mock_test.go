package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/abrezinsky/reviewwheel/internal/models"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &Repository{db: db}, mock
}

// TestLoadSession_QueryError tests that driver errors are returned unchanged
func TestLoadSession_QueryError(t *testing.T) {
	repo, mock := newMockRepo(t)
	dbErr := errors.New("database is locked")

	mock.ExpectQuery("SELECT value FROM storage").
		WithArgs(SessionKey).
		WillReturnError(dbErr)

	rec, err := repo.LoadSession(context.Background())
	if !errors.Is(err, dbErr) {
		t.Errorf("expected driver error, got %v", err)
	}
	if errors.Is(err, ErrCorruptRecord) {
		t.Error("driver errors must not be reported as corrupt records")
	}
	if rec != nil {
		t.Errorf("expected nil record, got %+v", rec)
	}
}

// TestLoadSession_CorruptRow tests decoding of a garbage payload
func TestLoadSession_CorruptRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT value FROM storage").
		WithArgs(SessionKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("\x00\x01binary"))

	_, err := repo.LoadSession(context.Background())
	if !errors.Is(err, ErrCorruptRecord) {
		t.Errorf("expected ErrCorruptRecord, got %v", err)
	}
}

// TestSaveSession_ExecError tests write failures
func TestSaveSession_ExecError(t *testing.T) {
	repo, mock := newMockRepo(t)
	prize := models.Prize{ID: 1, Weight: 1}

	mock.ExpectExec("INSERT INTO storage").
		WithArgs(SessionKey, sqlmock.AnyArg()).
		WillReturnError(errors.New("disk I/O error"))

	err := repo.SaveSession(context.Background(), models.SessionRecord{ChosenPrize: &prize})
	if err == nil {
		t.Error("expected error from failed insert")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// TestClearSession_ExecError tests delete failures
func TestClearSession_ExecError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM storage").
		WithArgs(SessionKey).
		WillReturnError(errors.New("readonly database"))

	if err := repo.ClearSession(context.Background()); err == nil {
		t.Error("expected error from failed delete")
	}
}

// TestMigrate_Error tests that schema failures are wrapped
func TestMigrate_Error(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS storage").
		WillReturnError(errors.New("no space left"))

	err := repo.migrate()
	if err == nil {
		t.Fatal("expected migrate error")
	}
	if err.Error() != "migrate: no space left" {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestClose_NilDB tests closing a repository without a connection
func TestClose_NilDB(t *testing.T) {
	repo := &Repository{}
	if err := repo.Close(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}
