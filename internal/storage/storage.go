package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/carson-networks/spaces-server/internal/config"
	"github.com/carson-networks/spaces-server/internal/storage/sqlconfig"
	"github.com/carson-networks/spaces-server/internal/storage/supabasestore"
)

// Storage groups the table accessors the services work against. Both backends
// satisfy the same sqlconfig interfaces.
type Storage struct {
	DB                    *sql.DB
	Spaces                sqlconfig.ISpaceTable
	Transactions          sqlconfig.ITransactionTable
	Budgets               sqlconfig.IBudgetTable
	RecurringTransactions sqlconfig.IRecurringTransactionTable
}

// NewStorage opens the backend selected by env.StoreBackend.
func NewStorage(env *config.Config) (*Storage, error) {
	switch env.StoreBackend {
	case config.BackendSupabase:
		return newSupabaseStorage(env)
	case config.BackendPostgres:
		db, err := OpenPostgres(env)
		if err != nil {
			return nil, err
		}
		return NewPostgresStorage(db), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", env.StoreBackend)
	}
}

// OpenPostgres opens and pings the database described by env.
func OpenPostgres(env *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", env.PostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.Ping: %w", err)
	}
	return db, nil
}

// NewPostgresStorage builds bob-backed tables over an open database.
func NewPostgresStorage(db *sql.DB) *Storage {
	spaces := sqlconfig.NewSpacesTable(db)
	transactions := sqlconfig.NewTransactionsTable(db)
	budgets := sqlconfig.NewBudgetsTable(db)
	recurring := sqlconfig.NewRecurringTransactionsTable(db)

	return &Storage{
		DB:                    db,
		Spaces:                &spaces,
		Transactions:          &transactions,
		Budgets:               &budgets,
		RecurringTransactions: &recurring,
	}
}

func newSupabaseStorage(env *config.Config) (*Storage, error) {
	client, err := supabasestore.NewClient(env.SupabaseURL, env.SupabaseKey())
	if err != nil {
		return nil, err
	}

	return &Storage{
		Spaces:                supabasestore.NewSpacesTable(client),
		Transactions:          supabasestore.NewTransactionsTable(client),
		Budgets:               supabasestore.NewBudgetsTable(client),
		RecurringTransactions: supabasestore.NewRecurringTransactionsTable(client),
	}, nil
}

// Close releases the database handle when the postgres backend is in use.
func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
