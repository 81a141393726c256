package repositories

import (
	"context"
	"testing"

	"soulmate/internal/models/db_models"
	"soulmate/internal/testutil"
)

func TestCreateWithNextIDAllocatesSequentially(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewBiodataRepository(db)
	ctx := context.Background()

	first := &db_models.Biodata{UserEmail: "a@x.com", BiodataType: db_models.BiodataTypeMale, Name: "A", ContactEmail: "a@x.com"}
	if err := repo.CreateWithNextID(ctx, first); err != nil {
		t.Fatalf("failed to create first biodata: %v", err)
	}
	if first.BiodataID != 1 {
		t.Errorf("expected first biodata id 1, got %d", first.BiodataID)
	}

	second := &db_models.Biodata{UserEmail: "b@x.com", BiodataType: db_models.BiodataTypeFemale, Name: "B", ContactEmail: "b@x.com"}
	if err := repo.CreateWithNextID(ctx, second); err != nil {
		t.Fatalf("failed to create second biodata: %v", err)
	}
	if second.BiodataID != 2 {
		t.Errorf("expected second biodata id 2, got %d", second.BiodataID)
	}
}

func TestCreateWithNextIDSeedsFromExistingMax(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	// Simulate pre-existing data ahead of the counter
	if err := db.Create(&db_models.Biodata{BiodataID: 41, UserEmail: "old@x.com", BiodataType: db_models.BiodataTypeMale}).Error; err != nil {
		t.Fatalf("failed to seed biodata: %v", err)
	}
	if err := db.Model(&db_models.BiodataCounter{}).Where("id = ?", 1).Update("last_id", 41).Error; err != nil {
		t.Fatalf("failed to bump counter: %v", err)
	}

	repo := NewBiodataRepository(db)
	next := &db_models.Biodata{UserEmail: "new@x.com", BiodataType: db_models.BiodataTypeMale}
	if err := repo.CreateWithNextID(ctx, next); err != nil {
		t.Fatalf("failed to create biodata: %v", err)
	}
	if next.BiodataID != 42 {
		t.Errorf("expected biodata id 42, got %d", next.BiodataID)
	}
}

func TestListFiltersAndSorts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewBiodataRepository(db)
	ctx := context.Background()

	seed := []db_models.Biodata{
		{BiodataID: 1, UserEmail: "a@x.com", BiodataType: db_models.BiodataTypeMale, Age: 30, PermanentDivision: "Dhaka"},
		{BiodataID: 2, UserEmail: "b@x.com", BiodataType: db_models.BiodataTypeFemale, Age: 25, PermanentDivision: "Dhaka"},
		{BiodataID: 3, UserEmail: "c@x.com", BiodataType: db_models.BiodataTypeMale, Age: 35, PermanentDivision: "Sylhet"},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("failed to seed biodata: %v", err)
		}
	}

	got, total, err := repo.List(ctx, BiodataFilter{BiodataType: "Male"}, "ascending", 1, 20)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 {
		t.Errorf("expected total 2, got %d", total)
	}
	if len(got) != 2 || got[0].Age != 30 || got[1].Age != 35 {
		t.Errorf("unexpected order: %+v", got)
	}

	got, total, err = repo.List(ctx, BiodataFilter{Division: "Dhaka", AgeMin: 26}, "", 1, 20)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || got[0].BiodataID != 1 {
		t.Errorf("expected only biodata 1, got total=%d list=%+v", total, got)
	}

	// Pagination window
	got, total, err = repo.List(ctx, BiodataFilter{}, "ascending", 2, 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 || len(got) != 1 || got[0].Age != 35 {
		t.Errorf("unexpected page 2: total=%d list=%+v", total, got)
	}
}

func TestFindByBiodataIDMissingReturnsNil(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewBiodataRepository(db)

	biodata, err := repo.FindByBiodataID(context.Background(), 999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if biodata != nil {
		t.Errorf("expected nil for missing biodata, got %+v", biodata)
	}
}

func TestFindSimilarLimit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewBiodataRepository(db)

	for i := 1; i <= 5; i++ {
		b := db_models.Biodata{BiodataID: i, UserEmail: string(rune('a'+i)) + "@x.com", BiodataType: db_models.BiodataTypeFemale}
		if err := db.Create(&b).Error; err != nil {
			t.Fatalf("failed to seed biodata: %v", err)
		}
	}

	got, err := repo.FindSimilar(context.Background(), "Female", 3)
	if err != nil {
		t.Fatalf("find similar failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 similar biodatas, got %d", len(got))
	}
}
