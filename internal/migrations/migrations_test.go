package migrations_test

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/JaimeStill/scholar/internal/migrations"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

func TestSource(t *testing.T) {
	tests := []struct {
		target migrations.Target
		last   uint
		tables []string
	}{
		{migrations.App, 3, []string{"authors", "universities", "publications"}},
		{migrations.Admin, 1, []string{"users"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			fsys, err := migrations.Source(tt.target)
			if err != nil {
				t.Fatalf("Source() error = %v", err)
			}

			src, err := iofs.New(fsys, ".")
			if err != nil {
				t.Fatalf("iofs.New() error = %v", err)
			}
			defer src.Close()

			v, err := src.First()
			if err != nil || v != 1 {
				t.Fatalf("First() = %d, %v, want 1", v, err)
			}

			count := 1
			for {
				next, err := src.Next(v)
				if err != nil {
					break
				}
				v = next
				count++
			}
			if v != tt.last || count != int(tt.last) {
				t.Errorf("last version = %d over %d steps, want %d", v, count, tt.last)
			}

			ups, _ := fs.Glob(fsys, "*.up.sql")
			downs, _ := fs.Glob(fsys, "*.down.sql")
			if len(ups) != len(downs) {
				t.Errorf("%d up files, %d down files", len(ups), len(downs))
			}

			var schema strings.Builder
			for _, name := range ups {
				data, err := fs.ReadFile(fsys, name)
				if err != nil {
					t.Fatal(err)
				}
				schema.Write(data)
			}
			for _, table := range tt.tables {
				if !strings.Contains(schema.String(), "CREATE TABLE IF NOT EXISTS "+table+" (") {
					t.Errorf("schema missing table %s", table)
				}
			}
		})
	}
}

func TestSource_Unknown(t *testing.T) {
	if _, err := migrations.Source("audit"); err == nil {
		t.Error("Source() error = nil, want unknown target")
	}
}
