package repository

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"sync"
	"testing"
)

// fakeResult é a resposta de uma consulta no driver em memória
type fakeResult struct {
	columns []string
	rows    [][]driver.Value
	err     error
}

type fakeStatement struct {
	query string
	args  []driver.Value
}

// fakeDB registra as consultas recebidas e responde via respond
type fakeDB struct {
	mu         sync.Mutex
	statements []fakeStatement
	respond    func(query string, args []driver.Value) fakeResult
}

func (f *fakeDB) record(query string, args []driver.Value) fakeResult {
	f.mu.Lock()
	f.statements = append(f.statements, fakeStatement{query: query, args: args})
	f.mu.Unlock()

	if f.respond == nil {
		return fakeResult{}
	}
	return f.respond(query, args)
}

func (f *fakeDB) queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, 0, len(f.statements))
	for _, s := range f.statements {
		out = append(out, s.query)
	}
	return out
}

var (
	fakeDriverOnce sync.Once
	fakeDBsMu      sync.Mutex
	fakeDBs        = map[string]*fakeDB{}
)

const fakeDriverName = "campaign-fakedb"

// openFakeDB abre um *sql.DB cujas consultas são respondidas por respond
func openFakeDB(t *testing.T, respond func(query string, args []driver.Value) fakeResult) (*sql.DB, *fakeDB) {
	t.Helper()

	fakeDriverOnce.Do(func() {
		sql.Register(fakeDriverName, fakeDriver{})
	})

	fake := &fakeDB{respond: respond}

	fakeDBsMu.Lock()
	fakeDBs[t.Name()] = fake
	fakeDBsMu.Unlock()

	db, err := sql.Open(fakeDriverName, t.Name())
	if err != nil {
		t.Fatalf("erro ao abrir banco fake: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
		fakeDBsMu.Lock()
		delete(fakeDBs, t.Name())
		fakeDBsMu.Unlock()
	})

	return db, fake
}

type fakeDriver struct{}

func (fakeDriver) Open(name string) (driver.Conn, error) {
	fakeDBsMu.Lock()
	defer fakeDBsMu.Unlock()

	fake, ok := fakeDBs[name]
	if !ok {
		return nil, errors.New("banco fake não registrado: " + name)
	}
	return &fakeConn{db: fake}, nil
}

type fakeConn struct {
	db *fakeDB
}

func (c *fakeConn) Prepare(query string) (driver.Stmt, error) {
	return &fakeStmt{db: c.db, query: query}, nil
}

func (c *fakeConn) Close() error { return nil }

func (c *fakeConn) Begin() (driver.Tx, error) { return fakeTx{}, nil }

type fakeTx struct{}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

type fakeStmt struct {
	db    *fakeDB
	query string
}

func (s *fakeStmt) Close() error  { return nil }
func (s *fakeStmt) NumInput() int { return -1 }

func (s *fakeStmt) Exec(args []driver.Value) (driver.Result, error) {
	result := s.db.record(s.query, args)
	if result.err != nil {
		return nil, result.err
	}
	return driver.RowsAffected(1), nil
}

func (s *fakeStmt) Query(args []driver.Value) (driver.Rows, error) {
	result := s.db.record(s.query, args)
	if result.err != nil {
		return nil, result.err
	}
	return &fakeRows{columns: result.columns, rows: result.rows}, nil
}

type fakeRows struct {
	columns []string
	rows    [][]driver.Value
	pos     int
}

func (r *fakeRows) Columns() []string { return r.columns }
func (r *fakeRows) Close() error      { return nil }

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.pos])
	r.pos++
	return nil
}

func countResult(n int64) fakeResult {
	return fakeResult{columns: []string{"count"}, rows: [][]driver.Value{{n}}}
}

