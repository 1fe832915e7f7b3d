// Command keyseed inserts ULID-keyed rows into Postgres to measure how the
// time-ordered keys behave as primary keys (insert locality, index growth).
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aatuh/ulid-toolkit/bootstrap"
	"github.com/aatuh/ulid-toolkit/envvar"
	"github.com/aatuh/ulid-toolkit/idgen"
	"github.com/aatuh/ulid-toolkit/logzap"
	"github.com/aatuh/ulid-toolkit/ports"
)

const createTable = `
CREATE TABLE IF NOT EXISTS ulid_keys (
	id    CHAR(26) PRIMARY KEY,
	seq   BIGINT NOT NULL,
	ts    TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func main() {
	env := envvar.New()
	dsn := env.MustGet("DATABASE_URL")
	rows := env.GetIntOr("KEYSEED_ROWS", 10000)
	batch := env.GetIntOr("KEYSEED_BATCH", 500)
	log := logzap.NewProduction()

	ctx := context.Background()
	pool, err := bootstrap.OpenAndPingDB(ctx, dsn, 3*time.Second)
	if err != nil {
		log.Error("database unreachable", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	conn, err := pool.Acquire(ctx)
	if err != nil {
		log.Error("acquire failed", "err", err)
		os.Exit(1)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, createTable); err != nil {
		log.Error("create table failed", "err", err)
		os.Exit(1)
	}

	gen := idgen.New()
	start := time.Now()
	inserted := 0
	for inserted < rows {
		n := batch
		if rows-inserted < n {
			n = rows - inserted
		}
		if err := insertBatch(ctx, conn, gen, inserted, n); err != nil {
			log.Error("insert failed", "err", err, "at", inserted)
			os.Exit(1)
		}
		inserted += n
	}
	dur := time.Since(start)

	log.Info("seed complete",
		"rows", inserted,
		"dur_ms", dur.Milliseconds(),
		"rows_per_sec", int(float64(inserted)/dur.Seconds()),
	)
}

func insertBatch(ctx context.Context, conn ports.DatabaseConnection, gen *idgen.Generator, base, n int) error {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ulid_keys (id, seq) VALUES ")
	args := make([]any, 0, n*2)
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($%d, $%d)", i*2+1, i*2+2)
		args = append(args, gen.Generate(), base+i)
	}
	res, err := conn.Exec(ctx, sb.String(), args...)
	if err != nil {
		return err
	}
	if got := res.RowsAffected(); got != int64(n) {
		return fmt.Errorf("inserted %d rows, expected %d", got, n)
	}
	return nil
}
