package materials

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/mattn/go-adodb"
)

// SQLServer loads materials from a table with Name, Formula and Density
// columns in a Microsoft SQL Server database.
type SQLServer struct {
	Address  string
	User     string
	Password string
	Database string
	Table    string
}

func (s SQLServer) Name() string { return "mssql:" + s.Address + "/" + s.Database + "." + s.Table }

func (s SQLServer) connString() string {
	return fmt.Sprintf("server=%s;user id=%s;password=%s;database=%s", s.Address, s.User, s.Password, s.Database)
}

func (s SQLServer) Load(ctx context.Context) ([]Material, error) {
	db, err := sql.Open("mssql", s.connString())
	if err != nil {
		return nil, fmt.Errorf("failed opening materials DB: %w", err)
	}
	defer db.Close()

	if err = db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed pinging materials DB: %w", err)
	}
	return queryMaterials(ctx, db, `SELECT Name, Formula, Density FROM `+quoteIdent(s.Table)+`;`)
}

// Access driver has problems with multiple connections.
// DB is a file on disk anyway.
var querySerializer sync.Mutex

// AccessDB loads materials from a table in an Access .mdb/.accdb file
// through OLE DB, e.g. with DSN
// "Provider=Microsoft.ACE.OLEDB.12.0;Data Source=C:/data/materials.mdb;".
// Only available on Windows.
type AccessDB struct {
	DSN   string
	Table string
}

func (a AccessDB) Name() string { return "mdb:" + a.Table }

func (a AccessDB) Load(ctx context.Context) ([]Material, error) {
	querySerializer.Lock()
	defer querySerializer.Unlock()

	db, err := sql.Open("adodb", a.DSN)
	if err != nil {
		return nil, fmt.Errorf("error opening db: %w", err)
	}
	defer db.Close()

	return queryMaterials(ctx, db, `SELECT Name, Formula, Density FROM `+quoteIdent(a.Table)+`;`)
}

func queryMaterials(ctx context.Context, db *sql.DB, qry string) ([]Material, error) {
	rows, err := db.QueryContext(ctx, qry)
	if err != nil {
		return nil, fmt.Errorf("error querying materials: %w", err)
	}
	defer rows.Close()

	var ms []Material
	for rows.Next() {
		var m Material
		if err = rows.Scan(&m.Name, &m.Formula, &m.Density); err != nil {
			return nil, fmt.Errorf("error scanning materials row: %w", err)
		}
		ms = append(ms, m)
	}
	return ms, rows.Err()
}

// quoteIdent brackets a table name for both SQL Server and Access.
func quoteIdent(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}
