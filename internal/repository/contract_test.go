package repository

import (
	"os"
	"testing"

	"github.com/wb-go/wbf/dbpg"

	"github.com/Devpy220/DiscoveryEvents/internal/repository/storetest"
)

// TestPostgres_Contract runs the shared storage contract against a real
// database. Set TEST_DATABASE_DSN to a migrated Postgres instance to
// enable it; the suite only appends rows.
func TestPostgres_Contract(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN is not set")
	}

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 10, MaxIdleConns: 5})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = db.Master.Close() })

	storetest.Run(t, func(t *testing.T) storetest.Backend {
		return storetest.Backend{
			Users:   NewUserRepo(db),
			Events:  NewEventRepo(db),
			Tickets: NewTicketRepo(db),
			Orders:  NewOrderRepo(db),
		}
	})
}
