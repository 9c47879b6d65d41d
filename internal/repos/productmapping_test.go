package repos_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ecoswitch/ecoswitch-backend/internal/repos"
	"github.com/ecoswitch/ecoswitch-backend/internal/repos/testutil"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

func TestProductMappingFirstByRef(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	mappingRepo := repos.NewProductMappingRepo(db, log)
	processRepo := repos.NewReferenceProcessRepo(db, log)

	older := testutil.NewProcess("tote_cotton", "Home & Garden", 0.3)
	newer := testutil.NewProcess("tote_organic_cotton", "Home & Garden", 0.2)
	if _, err := processRepo.Create(ctx, tx, []*types.ReferenceProcess{older, newer}); err != nil {
		t.Fatalf("create processes: %v", err)
	}

	ref := types.CatalogRef(uuid.New())
	first := testutil.NewMapping(ref, older.ID)
	first.CreatedAt = time.Now().UTC().Add(-time.Hour)
	second := testutil.NewMapping(ref, newer.ID)
	for _, m := range []*types.ProductMapping{first, second} {
		if _, err := mappingRepo.Create(ctx, tx, m); err != nil {
			t.Fatalf("create mapping: %v", err)
		}
	}

	got, err := mappingRepo.GetFirstByRef(ctx, tx, ref)
	if err != nil {
		t.Fatalf("get first: %v", err)
	}
	if got == nil || got.ID != first.ID {
		t.Fatalf("first mapping = %+v, want the oldest row", got)
	}
	if got.Process == nil || got.Process.Code != "tote_cotton" {
		t.Fatalf("process not preloaded: %+v", got.Process)
	}
}

func TestProductMappingExistsByRef(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	mappingRepo := repos.NewProductMappingRepo(db, testutil.Logger(t))

	ref := types.MerchantRef(uuid.New())
	ok, err := mappingRepo.ExistsByRef(ctx, tx, ref)
	if err != nil || ok {
		t.Fatalf("exists before create = (%v, %v), want false", ok, err)
	}

	if _, err := mappingRepo.Create(ctx, tx, testutil.NewMapping(ref, uuid.New())); err != nil {
		t.Fatalf("create mapping: %v", err)
	}

	ok, err = mappingRepo.ExistsByRef(ctx, tx, ref)
	if err != nil || !ok {
		t.Fatalf("exists after create = (%v, %v), want true", ok, err)
	}

	// Same kind of ID under the other catalog source stays invisible.
	other := types.CatalogRef(ref.ID)
	ok, err = mappingRepo.ExistsByRef(ctx, tx, other)
	if err != nil || ok {
		t.Fatalf("exists for other source = (%v, %v), want false", ok, err)
	}
}
