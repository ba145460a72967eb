package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/DiegoRoNa/uptask-api/internal/domain"
	"github.com/DiegoRoNa/uptask-api/internal/infrastructure/persistence/db"
)

// txRecorder stands in for a pgxpool.Pool and captures every statement run
// through the transaction, so tests can assert ordering and atomicity without
// a live database. When failOn is set, the first Exec whose SQL contains it
// returns an error.
type txRecorder struct {
	ops        []string
	failOn     string
	committed  bool
	rolledBack bool
}

func (r *txRecorder) Begin(ctx context.Context) (pgx.Tx, error) {
	r.ops = append(r.ops, "BEGIN")
	return &recordedTx{rec: r}, nil
}

// index returns the position of the first recorded statement containing
// substr, or -1.
func (r *txRecorder) index(substr string) int {
	for i, op := range r.ops {
		if strings.Contains(op, substr) {
			return i
		}
	}
	return -1
}

type recordedTx struct {
	rec *txRecorder
}

func (t *recordedTx) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	if t.rec.failOn != "" && strings.Contains(sql, t.rec.failOn) {
		return pgconn.CommandTag{}, errors.New("exec failed")
	}
	t.rec.ops = append(t.rec.ops, sql)
	return pgconn.CommandTag{}, nil
}

func (t *recordedTx) Commit(ctx context.Context) error {
	if t.rec.committed || t.rec.rolledBack {
		return pgx.ErrTxClosed
	}
	t.rec.committed = true
	t.rec.ops = append(t.rec.ops, "COMMIT")
	return nil
}

// Rollback mirrors pgx: after Commit the deferred Rollback reports
// ErrTxClosed and changes nothing.
func (t *recordedTx) Rollback(ctx context.Context) error {
	if t.rec.committed || t.rec.rolledBack {
		return pgx.ErrTxClosed
	}
	t.rec.rolledBack = true
	t.rec.ops = append(t.rec.ops, "ROLLBACK")
	return nil
}

func (t *recordedTx) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, errors.New("nested transactions not supported")
}

func (t *recordedTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, errors.New("not supported")
}

func (t *recordedTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }

func (t *recordedTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (t *recordedTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, errors.New("not supported")
}

func (t *recordedTx) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return nil, errors.New("not supported")
}

func (t *recordedTx) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return errRow{}
}

func (t *recordedTx) Conn() *pgx.Conn { return nil }

type errRow struct{}

func (errRow) Scan(dest ...interface{}) error { return errors.New("not supported") }

func TestProjectDeleteCascadesInOneTransaction(t *testing.T) {
	rec := &txRecorder{}
	repo := NewProjectRepository(db.New(nil), rec)

	if err := repo.Delete(context.Background(), domain.NewProjectID(uuid.New())); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !rec.committed {
		t.Fatal("cascade must commit")
	}
	if rec.rolledBack {
		t.Fatal("successful cascade must not roll back")
	}

	notes := rec.index("DELETE FROM notes")
	events := rec.index("DELETE FROM task_status_events")
	tasks := rec.index("DELETE FROM tasks")
	project := rec.index("DELETE FROM projects")
	commit := rec.index("COMMIT")
	if notes < 0 || events < 0 || tasks < 0 || project < 0 {
		t.Fatalf("missing cascade step, recorded: %q", rec.ops)
	}
	if !(notes < events && events < tasks && tasks < project && project < commit) {
		t.Errorf("cascade order wrong (want notes, history, tasks, project, commit): %q", rec.ops)
	}
}

func TestProjectDeleteRollsBackWhenStepFails(t *testing.T) {
	rec := &txRecorder{failOn: "task_status_events"}
	repo := NewProjectRepository(db.New(nil), rec)

	if err := repo.Delete(context.Background(), domain.NewProjectID(uuid.New())); err == nil {
		t.Fatal("want error when a cascade step fails")
	}
	if rec.committed {
		t.Error("failed cascade must not commit")
	}
	if !rec.rolledBack {
		t.Error("failed cascade must roll back")
	}
	if rec.index("DELETE FROM tasks") >= 0 || rec.index("DELETE FROM projects") >= 0 {
		t.Errorf("steps after the failure must not run: %q", rec.ops)
	}
}

func TestTaskDeleteCascadesInOneTransaction(t *testing.T) {
	rec := &txRecorder{}
	repo := NewTaskRepository(db.New(nil), rec)

	if err := repo.Delete(context.Background(), domain.NewTaskID(uuid.New())); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !rec.committed {
		t.Fatal("cascade must commit")
	}

	notes := rec.index("DELETE FROM notes")
	events := rec.index("DELETE FROM task_status_events")
	task := rec.index("DELETE FROM tasks")
	commit := rec.index("COMMIT")
	if notes < 0 || events < 0 || task < 0 {
		t.Fatalf("missing cascade step, recorded: %q", rec.ops)
	}
	if !(notes < events && events < task && task < commit) {
		t.Errorf("cascade order wrong (want notes, history, task, commit): %q", rec.ops)
	}
}

func TestTaskDeleteRollsBackWhenStepFails(t *testing.T) {
	rec := &txRecorder{failOn: "task_status_events"}
	repo := NewTaskRepository(db.New(nil), rec)

	if err := repo.Delete(context.Background(), domain.NewTaskID(uuid.New())); err == nil {
		t.Fatal("want error when a cascade step fails")
	}
	if rec.committed {
		t.Error("failed cascade must not commit")
	}
	if !rec.rolledBack {
		t.Error("failed cascade must roll back")
	}
	if rec.index("DELETE FROM tasks") >= 0 {
		t.Errorf("task row must survive a failed cascade: %q", rec.ops)
	}
}

func TestUpdateStatusWritesHistoryInSameTransaction(t *testing.T) {
	rec := &txRecorder{}
	repo := NewTaskRepository(db.New(nil), rec)

	err := repo.UpdateStatus(context.Background(),
		domain.NewTaskID(uuid.New()), domain.NewUserID(uuid.New()), domain.StatusCompleted)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if !rec.committed {
		t.Fatal("status change must commit")
	}

	update := rec.index("UPDATE tasks")
	insert := rec.index("INSERT INTO task_status_events")
	commit := rec.index("COMMIT")
	if update < 0 || insert < 0 {
		t.Fatalf("missing statement, recorded: %q", rec.ops)
	}
	if !(update < insert && insert < commit) {
		t.Errorf("status row and history event must commit together: %q", rec.ops)
	}
}

func TestUpdateStatusRollsBackWhenHistoryWriteFails(t *testing.T) {
	rec := &txRecorder{failOn: "INSERT INTO task_status_events"}
	repo := NewTaskRepository(db.New(nil), rec)

	err := repo.UpdateStatus(context.Background(),
		domain.NewTaskID(uuid.New()), domain.NewUserID(uuid.New()), domain.StatusInProgress)
	if err == nil {
		t.Fatal("want error when the history write fails")
	}
	if rec.committed {
		t.Error("status change without its history event must not commit")
	}
	if !rec.rolledBack {
		t.Error("failed status change must roll back")
	}
}
