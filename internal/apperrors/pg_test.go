package apperrors

import (
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestFromPgClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Code
	}{
		{"no rows", pgx.ErrNoRows, CodeNotFound},
		{"wrapped no rows", fmt.Errorf("query: %w", pgx.ErrNoRows), CodeNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, CodeDuplicateKey},
		{"cannot connect now", &pgconn.PgError{Code: "57P03"}, CodeUnavailable},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, CodeDB},
		{"plain error", stderrs.New("boom"), CodeDB},
	}
	for _, c := range cases {
		got := FromPg(c.err, "msg")
		if CodeOf(got) != c.want {
			t.Fatalf("%s: FromPg code = %v, want %v", c.name, CodeOf(got), c.want)
		}
		if !stderrs.Is(got, c.err) && !stderrs.As(got, new(*pgconn.PgError)) {
			t.Fatalf("%s: FromPg lost original error", c.name)
		}
	}

	if FromPg(nil, "msg") != nil {
		t.Fatal("FromPg(nil) != nil")
	}
}

func TestIsSQLState(t *testing.T) {
	dup := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	if !IsUniqueViolation(dup) {
		t.Fatal("IsUniqueViolation(wrapped 23505) = false")
	}
	if IsUniqueViolation(stderrs.New("boom")) {
		t.Fatal("IsUniqueViolation(plain) = true")
	}
	if !IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatal("IsForeignKeyViolation(23503) = false")
	}
}
