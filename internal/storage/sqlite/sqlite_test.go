package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/evensplit/evensplit/internal/models"
	"github.com/evensplit/evensplit/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "evensplit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func createTestUser(t *testing.T, store *SQLiteStore, username string) *models.User {
	t.Helper()
	user := models.NewUser(username, username+"@example.com", "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser(%s) failed: %v", username, err)
	}
	return user
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("create and get by id, username, email", func(t *testing.T) {
		alice := createTestUser(t, store, "alice")

		byID, err := store.GetUserByID(ctx, alice.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if byID == nil || byID.Username != "alice" {
			t.Errorf("GetUserByID = %+v, want alice", byID)
		}

		byName, err := store.GetUserByUsername(ctx, "alice")
		if err != nil {
			t.Fatalf("GetUserByUsername failed: %v", err)
		}
		if byName == nil || byName.ID != alice.ID {
			t.Errorf("GetUserByUsername = %+v, want %s", byName, alice.ID)
		}

		byEmail, err := store.GetUserByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if byEmail == nil || byEmail.ID != alice.ID {
			t.Errorf("GetUserByEmail = %+v, want %s", byEmail, alice.ID)
		}
	})

	t.Run("missing user returns nil without error", func(t *testing.T) {
		user, err := store.GetUserByUsername(ctx, "nobody")
		if err != nil {
			t.Fatalf("GetUserByUsername failed: %v", err)
		}
		if user != nil {
			t.Errorf("expected nil user, got %+v", user)
		}
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		createTestUser(t, store, "bob")
		dup := models.NewUser("bob", "other@example.com", "hash")
		if err := store.CreateUser(ctx, dup); err == nil {
			t.Error("expected unique constraint error, got nil")
		}
	})

	t.Run("search matches username and email substrings", func(t *testing.T) {
		createTestUser(t, store, "carolyn")
		users, err := store.SearchUsers(ctx, "caro")
		if err != nil {
			t.Fatalf("SearchUsers failed: %v", err)
		}
		if len(users) != 1 || users[0].Username != "carolyn" {
			t.Errorf("SearchUsers = %+v, want carolyn", users)
		}
	})
}

func TestFriendships(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	bob := createTestUser(t, store, "bob")

	if err := store.AddFriendship(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("AddFriendship failed: %v", err)
	}

	t.Run("edge visible from both sides", func(t *testing.T) {
		aliceFriends, err := store.ListFriendIDs(ctx, alice.ID)
		if err != nil {
			t.Fatalf("ListFriendIDs failed: %v", err)
		}
		if len(aliceFriends) != 1 || aliceFriends[0] != bob.ID {
			t.Errorf("alice friends = %v, want [%s]", aliceFriends, bob.ID)
		}

		bobFriends, err := store.ListFriendIDs(ctx, bob.ID)
		if err != nil {
			t.Fatalf("ListFriendIDs failed: %v", err)
		}
		if len(bobFriends) != 1 || bobFriends[0] != alice.ID {
			t.Errorf("bob friends = %v, want [%s]", bobFriends, alice.ID)
		}
	})

	t.Run("re-adding is idempotent", func(t *testing.T) {
		if err := store.AddFriendship(ctx, bob.ID, alice.ID); err != nil {
			t.Fatalf("AddFriendship failed: %v", err)
		}
		friends, err := store.ListFriendIDs(ctx, alice.ID)
		if err != nil {
			t.Fatalf("ListFriendIDs failed: %v", err)
		}
		if len(friends) != 1 {
			t.Errorf("expected 1 friend after duplicate add, got %d", len(friends))
		}
	})
}

func TestGroups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	bob := createTestUser(t, store, "bob")

	group := &models.Group{
		Name:      "Roommates",
		CreatedBy: alice.ID,
		Members:   []string{alice.ID, bob.ID},
	}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if group.ID == "" || group.CreatedAt == 0 {
		t.Error("expected generated ID and CreatedAt")
	}

	t.Run("get returns members", func(t *testing.T) {
		got, err := store.GetGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if got.Name != "Roommates" || len(got.Members) != 2 {
			t.Errorf("GetGroup = %+v, want Roommates with 2 members", got)
		}
	})

	t.Run("missing group wraps ErrNotFound", func(t *testing.T) {
		_, err := store.GetGroup(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list by member", func(t *testing.T) {
		groups, err := store.ListGroupsByMember(ctx, bob.ID)
		if err != nil {
			t.Fatalf("ListGroupsByMember failed: %v", err)
		}
		if len(groups) != 1 || groups[0].ID != group.ID {
			t.Errorf("ListGroupsByMember = %+v, want [%s]", groups, group.ID)
		}
		if len(groups[0].Members) != 2 {
			t.Errorf("expected member list populated, got %v", groups[0].Members)
		}
	})
}

func TestBills(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	bob := createTestUser(t, store, "bob")

	bill := &models.Bill{
		Description:    "Dinner",
		Amount:         60.0,
		CreatedBy:      alice.ID,
		Participants:   []string{alice.ID, bob.ID},
		Category:       models.CategoryFood,
		SplitType:      models.SplitEqual,
		RecurrenceType: models.RecurrenceNone,
		Splits: []models.BillSplit{
			{UserID: alice.ID, Amount: 30.0},
			{UserID: bob.ID, Amount: 30.0},
		},
	}
	if err := store.CreateBill(ctx, bill); err != nil {
		t.Fatalf("CreateBill failed: %v", err)
	}
	if bill.ID == "" || bill.CreatedAt == 0 {
		t.Error("expected generated ID and CreatedAt")
	}

	t.Run("get returns participants and splits", func(t *testing.T) {
		got, err := store.GetBill(ctx, bill.ID)
		if err != nil {
			t.Fatalf("GetBill failed: %v", err)
		}
		if got.Description != "Dinner" || got.Amount != 60.0 {
			t.Errorf("GetBill = %+v", got)
		}
		if len(got.Participants) != 2 || len(got.Splits) != 2 {
			t.Errorf("expected 2 participants and 2 splits, got %d and %d",
				len(got.Participants), len(got.Splits))
		}
		for _, split := range got.Splits {
			if split.BillID != bill.ID {
				t.Errorf("split bill ID = %s, want %s", split.BillID, bill.ID)
			}
		}
	})

	t.Run("list by participant returns both views", func(t *testing.T) {
		for _, userID := range []string{alice.ID, bob.ID} {
			bills, err := store.ListBillsByParticipant(ctx, userID)
			if err != nil {
				t.Fatalf("ListBillsByParticipant failed: %v", err)
			}
			if len(bills) != 1 || bills[0].ID != bill.ID {
				t.Errorf("bills for %s = %+v, want [%s]", userID, bills, bill.ID)
			}
		}
	})

	t.Run("split rows reject unknown participants", func(t *testing.T) {
		bad := &models.Bill{
			Description:    "Ghost bill",
			Amount:         10.0,
			CreatedBy:      alice.ID,
			Participants:   []string{alice.ID},
			Category:       models.CategoryOther,
			SplitType:      models.SplitEqual,
			RecurrenceType: models.RecurrenceNone,
			Splits: []models.BillSplit{
				{UserID: alice.ID, Amount: 5.0},
				{UserID: "no-such-user", Amount: 5.0},
			},
		}
		if err := store.CreateBill(ctx, bad); err == nil {
			t.Fatal("expected foreign key error, got nil")
		}
		// The failed insert must leave no partial rows behind.
		if _, err := store.GetBill(ctx, bad.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected rollback to remove bill, got %v", err)
		}
	})

	t.Run("delete cascades to splits", func(t *testing.T) {
		if err := store.DeleteBill(ctx, bill.ID); err != nil {
			t.Fatalf("DeleteBill failed: %v", err)
		}
		if _, err := store.GetBill(ctx, bill.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
		bills, err := store.ListBillsByParticipant(ctx, bob.ID)
		if err != nil {
			t.Fatalf("ListBillsByParticipant failed: %v", err)
		}
		if len(bills) != 0 {
			t.Errorf("expected no bills after cascade delete, got %d", len(bills))
		}
	})

	t.Run("delete missing bill wraps ErrNotFound", func(t *testing.T) {
		if err := store.DeleteBill(ctx, "nonexistent-id"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestSettlements(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	bob := createTestUser(t, store, "bob")
	carol := createTestUser(t, store, "carol")

	settlement := &models.Settlement{
		PayerID: alice.ID,
		PayeeID: bob.ID,
		Amount:  25.0,
	}
	if err := store.CreateSettlement(ctx, settlement); err != nil {
		t.Fatalf("CreateSettlement failed: %v", err)
	}
	if settlement.ID == "" || settlement.CreatedAt == 0 {
		t.Error("expected generated ID and CreatedAt")
	}

	t.Run("visible to payer and payee only", func(t *testing.T) {
		for _, userID := range []string{alice.ID, bob.ID} {
			settlements, err := store.ListSettlementsByUser(ctx, userID)
			if err != nil {
				t.Fatalf("ListSettlementsByUser failed: %v", err)
			}
			if len(settlements) != 1 || settlements[0].Amount != 25.0 {
				t.Errorf("settlements for %s = %+v", userID, settlements)
			}
		}

		settlements, err := store.ListSettlementsByUser(ctx, carol.ID)
		if err != nil {
			t.Fatalf("ListSettlementsByUser failed: %v", err)
		}
		if len(settlements) != 0 {
			t.Errorf("expected no settlements for carol, got %d", len(settlements))
		}
	})

	t.Run("empty bill linkage round-trips as empty", func(t *testing.T) {
		settlements, err := store.ListSettlementsByUser(ctx, alice.ID)
		if err != nil {
			t.Fatalf("ListSettlementsByUser failed: %v", err)
		}
		if settlements[0].BillID != "" {
			t.Errorf("BillID = %q, want empty", settlements[0].BillID)
		}
	})
}
