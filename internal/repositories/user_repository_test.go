package repositories

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"soulmate/internal/models/db_models"
	"soulmate/internal/testutil"
)

func TestMakePremiumMirrorsBiodata(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	user := db_models.User{Name: "A", Email: "a@x.com"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	biodata := db_models.Biodata{BiodataID: 1, UserEmail: "a@x.com", BiodataType: db_models.BiodataTypeMale}
	if err := db.Create(&biodata).Error; err != nil {
		t.Fatalf("failed to seed biodata: %v", err)
	}

	repo := NewUserRepository(db)
	if err := repo.MakePremium(ctx, user.ID.String()); err != nil {
		t.Fatalf("make premium failed: %v", err)
	}

	var gotUser db_models.User
	if err := db.First(&gotUser, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	var gotBiodata db_models.Biodata
	if err := db.First(&gotBiodata, "biodata_id = ?", 1).Error; err != nil {
		t.Fatalf("failed to reload biodata: %v", err)
	}
	if !gotUser.IsPremium || !gotBiodata.IsPremium {
		t.Errorf("premium flags diverged: user=%v biodata=%v", gotUser.IsPremium, gotBiodata.IsPremium)
	}
}

func TestMakePremiumMissingUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewUserRepository(db)

	err := repo.MakePremium(context.Background(), "00000000-0000-0000-0000-000000000000")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestMakeAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	user := db_models.User{Name: "A", Email: "a@x.com"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	repo := NewUserRepository(db)
	if err := repo.MakeAdmin(ctx, user.ID.String()); err != nil {
		t.Fatalf("make admin failed: %v", err)
	}

	var got db_models.User
	if err := db.First(&got, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if got.Role != db_models.RoleAdmin {
		t.Errorf("expected role admin, got %q", got.Role)
	}

	if err := repo.MakeAdmin(ctx, "00000000-0000-0000-0000-000000000000"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for missing user, got %v", err)
	}
}

func TestListWithSearch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	for _, u := range []db_models.User{
		{Name: "Alice Rahman", Email: "alice@x.com"},
		{Name: "Bob Karim", Email: "bob@x.com"},
	} {
		seed := u
		if err := db.Create(&seed).Error; err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}
	}

	repo := NewUserRepository(db)
	got, err := repo.List(ctx, "rahman")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 1 || got[0].Email != "alice@x.com" {
		t.Errorf("unexpected search result: %+v", got)
	}

	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 users, got %d", len(all))
	}
}
