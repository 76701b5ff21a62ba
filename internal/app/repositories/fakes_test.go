package repositories

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// statement is one SQL call seen by recordingDB
type statement struct {
	sql  string
	args []any
}

// recordingDB records every statement and answers from canned rows
type recordingDB struct {
	calls []statement
	rows  [][]any
	tag   string
	err   error
}

func (d *recordingDB) record(sql string, args []any) {
	d.calls = append(d.calls, statement{sql: sql, args: args})
}

func (d *recordingDB) last() statement {
	if len(d.calls) == 0 {
		return statement{}
	}
	return d.calls[len(d.calls)-1]
}

func (d *recordingDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	d.record(sql, args)
	if d.err != nil {
		return pgconn.CommandTag{}, d.err
	}
	return pgconn.NewCommandTag(d.tag), nil
}

func (d *recordingDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	d.record(sql, args)
	if d.err != nil {
		return nil, d.err
	}
	return &cannedRows{rows: d.rows, pos: -1}, nil
}

func (d *recordingDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	d.record(sql, args)
	if d.err != nil {
		return cannedRow{err: d.err}
	}
	if len(d.rows) == 0 {
		return cannedRow{err: pgx.ErrNoRows}
	}
	return cannedRow{values: d.rows[0]}
}

func (d *recordingDB) Begin(context.Context) (pgx.Tx, error) {
	return nil, errors.New("transactions are not supported by recordingDB")
}

// scanInto copies canned values into Scan destinations
func scanInto(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values into %d destinations", len(values), len(dest))
	}
	for i, v := range values {
		target := reflect.ValueOf(dest[i])
		if target.Kind() != reflect.Pointer || target.IsNil() {
			return fmt.Errorf("scan: destination %d is not a pointer", i)
		}
		src := reflect.ValueOf(v)
		if !src.Type().AssignableTo(target.Elem().Type()) {
			return fmt.Errorf("scan: cannot assign %T to %s", v, target.Elem().Type())
		}
		target.Elem().Set(src)
	}
	return nil
}

type cannedRow struct {
	values []any
	err    error
}

func (r cannedRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(r.values, dest)
}

type cannedRows struct {
	rows   [][]any
	pos    int
	closed bool
	err    error
}

func (r *cannedRows) Close() { r.closed = true }

func (r *cannedRows) Err() error { return r.err }

func (r *cannedRows) CommandTag() pgconn.CommandTag {
	return pgconn.NewCommandTag(fmt.Sprintf("SELECT %d", len(r.rows)))
}

func (r *cannedRows) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (r *cannedRows) Next() bool {
	if r.closed || r.err != nil || r.pos+1 >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *cannedRows) Scan(dest ...any) error {
	if r.pos < 0 || r.pos >= len(r.rows) {
		return errors.New("scan called without a current row")
	}
	if err := scanInto(r.rows[r.pos], dest); err != nil {
		r.err = err
		return err
	}
	return nil
}

func (r *cannedRows) Values() ([]any, error) {
	if r.pos < 0 || r.pos >= len(r.rows) {
		return nil, errors.New("no current row")
	}
	return r.rows[r.pos], nil
}

func (r *cannedRows) RawValues() [][]byte { return nil }

func (r *cannedRows) Conn() *pgx.Conn { return nil }
