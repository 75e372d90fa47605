package unitofwork_test

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/JaimeStill/scholar/pkg/pagination"
	"github.com/JaimeStill/scholar/pkg/query"
	"github.com/JaimeStill/scholar/pkg/repository"
	"github.com/JaimeStill/scholar/pkg/unitofwork"
)

type widget struct {
	ID    int64
	Name  string
	Color string
}

var widgets = &unitofwork.Table[widget, int64]{
	Projection: query.NewProjectionMap("public", "widgets", "w").
		Project("id", "ID").
		Project("name", "Name").
		Project("color", "Color"),
	Key:       "ID",
	KeyOf:     func(w *widget) int64 { return w.ID },
	SetKey:    func(w *widget, id int64) { w.ID = id },
	Generated: true,
	Scan: func(s repository.Scanner) (widget, error) {
		var w widget
		err := s.Scan(&w.ID, &w.Name, &w.Color)
		return w, err
	},
	Values: func(w *widget) []any { return []any{w.ID, w.Name, w.Color} },
	Accessors: query.NewAccessors[widget]().
		Add("ID", query.By(func(w widget) int64 { return w.ID })).
		Add("Name", query.By(func(w widget) string { return w.Name })).
		Add("Color", query.By(func(w widget) string { return w.Color })),
	DefaultSort: query.SortField{Field: "ID"},
}

type byColor string

func (c byColor) Apply(b *query.Builder) *query.Builder {
	return b.WhereEquals("Color", string(c))
}

func (c byColor) Match(w widget) bool {
	return w.Color == string(c)
}

func seed(t *testing.T, store unitofwork.Store, items ...widget) []*widget {
	t.Helper()

	uow := store.Begin()
	set := unitofwork.For(uow, widgets)

	added := make([]*widget, len(items))
	for i := range items {
		added[i] = &items[i]
		set.Add(added[i])
	}

	if err := uow.Commit(context.Background()); err != nil {
		t.Fatalf("seed Commit() error = %v", err)
	}
	return added
}

func TestMemory_AddAssignsGeneratedKeys(t *testing.T) {
	store := unitofwork.NewMemory()
	added := seed(t, store, widget{Name: "a"}, widget{Name: "b"})

	if added[0].ID != 1 || added[1].ID != 2 {
		t.Errorf("keys = %d, %d, want 1, 2", added[0].ID, added[1].ID)
	}
}

func TestMemory_StagedUntilCommit(t *testing.T) {
	ctx := context.Background()
	store := unitofwork.NewMemory()

	uow := store.Begin()
	set := unitofwork.For(uow, widgets)
	set.Add(&widget{Name: "pending"})

	if found, _ := set.Find(ctx, 1); found != nil {
		t.Fatalf("Find() before Commit = %+v, want nil", found)
	}

	if err := uow.Commit(ctx); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	found, err := set.Find(ctx, 1)
	if err != nil || found == nil || found.Name != "pending" {
		t.Errorf("Find() = %+v, %v", found, err)
	}
}

func TestMemory_FindMissing(t *testing.T) {
	set := unitofwork.For(unitofwork.NewMemory().Begin(), widgets)

	found, err := set.Find(context.Background(), 42)
	if found != nil || err != nil {
		t.Errorf("Find() = %+v, %v, want nil, nil", found, err)
	}

	exists, err := set.Any(context.Background(), 42)
	if exists || err != nil {
		t.Errorf("Any() = %v, %v, want false, nil", exists, err)
	}
}

func TestMemory_FindReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := unitofwork.NewMemory()
	seed(t, store, widget{Name: "a"})

	set := unitofwork.For(store.Begin(), widgets)
	found, _ := set.Find(ctx, 1)
	found.Name = "mutated"

	again, _ := set.Find(ctx, 1)
	if again.Name != "a" {
		t.Errorf("Name = %q, want stored value unchanged", again.Name)
	}
}

func TestMemory_UpdateAndAttach(t *testing.T) {
	ctx := context.Background()
	store := unitofwork.NewMemory()
	seed(t, store, widget{Name: "a", Color: "red"})

	uow := store.Begin()
	set := unitofwork.For(uow, widgets)

	existing, _ := set.Find(ctx, 1)
	set.Attach(existing)
	existing.Color = "blue"

	if err := uow.Commit(ctx); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	found, _ := set.Find(ctx, 1)
	if found.Color != "blue" {
		t.Errorf("Color = %q, want blue", found.Color)
	}

	set.Update(&widget{ID: 1, Name: "renamed", Color: "blue"})
	if err := uow.Commit(ctx); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	found, _ = set.Find(ctx, 1)
	if found.Name != "renamed" {
		t.Errorf("Name = %q, want renamed", found.Name)
	}
}

func TestMemory_UpdateMissingFails(t *testing.T) {
	uow := unitofwork.NewMemory().Begin()
	unitofwork.For(uow, widgets).Update(&widget{ID: 9})

	err := uow.Commit(context.Background())
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Commit() error = %v, want sql.ErrNoRows", err)
	}
}

func TestMemory_RemoveMissingFails(t *testing.T) {
	uow := unitofwork.NewMemory().Begin()
	unitofwork.For(uow, widgets).Remove(&widget{ID: 9})

	err := uow.Commit(context.Background())
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Commit() error = %v, want sql.ErrNoRows", err)
	}
}

var keyed = &unitofwork.Table[widget, int64]{
	Projection: widgets.Projection,
	Key:        "ID",
	KeyOf:      widgets.KeyOf,
	SetKey:     widgets.SetKey,
	Scan:       widgets.Scan,
	Values:     widgets.Values,
	Accessors:  widgets.Accessors,
}

func TestMemory_CommitIsAtomic(t *testing.T) {
	ctx := context.Background()
	store := unitofwork.NewMemory()

	uow := store.Begin()
	set := unitofwork.For(uow, keyed)
	set.Add(&widget{ID: 7, Name: "first"})
	set.Add(&widget{ID: 7, Name: "duplicate"})

	err := uow.Commit(ctx)
	if !errors.Is(err, repository.ErrDuplicateKey) {
		t.Fatalf("Commit() error = %v, want ErrDuplicateKey", err)
	}

	if found, _ := set.Find(ctx, 7); found != nil {
		t.Errorf("Find() after failed commit = %+v, want nil", found)
	}

	if err := uow.Commit(ctx); err != nil {
		t.Errorf("Commit() after failure = %v, want queue cleared", err)
	}
}

func TestMemory_RemoveThenQuery(t *testing.T) {
	ctx := context.Background()
	store := unitofwork.NewMemory()
	added := seed(t, store, widget{Name: "a"}, widget{Name: "b"}, widget{Name: "c"})

	uow := store.Begin()
	set := unitofwork.For(uow, widgets)
	set.Remove(added[1])
	if err := uow.Commit(ctx); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	cfg := pagination.Config{DefaultPageSize: 10, MaxPageSize: 10}
	page, err := pagination.Apply(ctx, cfg, set.Query(nil), 0, 10, "")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	var names []string
	for _, w := range page.Items {
		names = append(names, w.Name)
	}
	if strings.Join(names, ",") != "a,c" {
		t.Errorf("names = %v, want [a c]", names)
	}
}

func TestMemory_QueryPredicateAndSort(t *testing.T) {
	ctx := context.Background()
	store := unitofwork.NewMemory()
	seed(t, store,
		widget{Name: "b", Color: "red"},
		widget{Name: "a", Color: "blue"},
		widget{Name: "c", Color: "red"},
		widget{Name: "a", Color: "red"},
	)

	set := unitofwork.For(store.Begin(), widgets)
	cfg := pagination.Config{DefaultPageSize: 2, MaxPageSize: 2}

	page, err := pagination.Apply[widget](ctx, cfg, set.Query(byColor("red")), 0, 50, "-name")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if page.TotalCount != 3 {
		t.Errorf("TotalCount = %d, want 3", page.TotalCount)
	}
	if len(page.Items) != 2 || page.Items[0].Name != "c" || page.Items[1].Name != "b" {
		t.Errorf("Items = %+v, want [c b]", page.Items)
	}
}

func TestMemory_QueryReadsOneState(t *testing.T) {
	ctx := context.Background()
	store := unitofwork.NewMemory()
	seed(t, store, widget{Name: "a"}, widget{Name: "b"})

	source := unitofwork.For(store.Begin(), widgets).Query(nil)

	count, err := source.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}

	seed(t, store, widget{Name: "c"})

	items, err := source.Fetch(ctx, nil, 0, 10)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if count != 2 || len(items) != count {
		t.Errorf("Count() = %d, Fetch() = %d items, want both 2", count, len(items))
	}

	fresh, _ := unitofwork.For(store.Begin(), widgets).Query(nil).Count(ctx)
	if fresh != 3 {
		t.Errorf("new query Count() = %d, want 3", fresh)
	}
}

func TestFor_UnsupportedUnitPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("For() did not panic")
		}
	}()

	unitofwork.For[widget, int64](fakeUnit{}, widgets)
}

type fakeUnit struct{}

func (fakeUnit) Commit(context.Context) error { return nil }
