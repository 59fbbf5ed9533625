package participant_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hackmatch/teamforge/internal/errors"
	"github.com/hackmatch/teamforge/internal/participant"
	"github.com/hackmatch/teamforge/internal/testutil"
)

func TestLoad(t *testing.T) {
	t.Run("loads a valid roster in file order", func(t *testing.T) {
		roster := []participant.Participant{
			testutil.NewParticipant("ada"),
			testutil.NewParticipant("grace"),
			testutil.NewParticipant("linus"),
		}
		path := testutil.WriteRoster(t, roster)

		got, err := participant.Load(path)
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("Load() returned %d participants, want 3", len(got))
		}
		for i, name := range []string{"ada", "grace", "linus"} {
			if got[i].Name != name {
				t.Errorf("participant[%d].Name = %q, want %q", i, got[i].Name, name)
			}
		}
	})

	t.Run("empty roster is valid", func(t *testing.T) {
		path := testutil.WriteRoster(t, []participant.Participant{})

		got, err := participant.Load(path)
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Load() returned %d participants, want 0", len(got))
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := participant.Load(filepath.Join(t.TempDir(), "nope.json"))
		if !errors.Is(err, errors.ErrRosterNotFound) {
			t.Errorf("Load() error = %v, want ErrRosterNotFound", err)
		}
	})

	t.Run("non-json extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "roster.csv")
		if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := participant.Load(path)
		if !errors.Is(err, errors.ErrRosterFormat) {
			t.Errorf("Load() error = %v, want ErrRosterFormat", err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "roster.json")
		if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := participant.Load(path)
		if !errors.Is(err, errors.ErrInvalidRecord) {
			t.Errorf("Load() error = %v, want ErrInvalidRecord", err)
		}
	})

	t.Run("invalid record reports its index", func(t *testing.T) {
		roster := []participant.Participant{
			testutil.NewParticipant("ada"),
			testutil.NewParticipant("grace", testutil.WithExperience("Expert")),
		}
		path := testutil.WriteRoster(t, roster)

		_, err := participant.Load(path)
		if !errors.Is(err, errors.ErrInvalidRecord) {
			t.Fatalf("Load() error = %v, want ErrInvalidRecord", err)
		}

		var rosterErr *errors.RosterError
		if !errors.As(err, &rosterErr) {
			t.Fatalf("Load() error is not a RosterError: %v", err)
		}
		if rosterErr.Record != 1 {
			t.Errorf("RosterError.Record = %d, want 1", rosterErr.Record)
		}
	})

	t.Run("duplicate id aborts the load", func(t *testing.T) {
		ada := testutil.NewParticipant("ada")
		clone := testutil.NewParticipant("grace")
		clone.ID = ada.ID
		path := testutil.WriteRoster(t, []participant.Participant{ada, clone})

		_, err := participant.Load(path)
		if !errors.Is(err, errors.ErrDuplicateID) {
			t.Errorf("Load() error = %v, want ErrDuplicateID", err)
		}
	})
}

func TestUnresolvedFriends(t *testing.T) {
	ada := testutil.NewParticipant("ada", testutil.WithFriends("grace", "ghost"))
	grace := testutil.NewParticipant("grace")
	roster := []participant.Participant{ada, grace}

	unresolved := participant.UnresolvedFriends(roster)

	if len(unresolved) != 1 {
		t.Fatalf("got %d participants with unresolved friends, want 1", len(unresolved))
	}
	got, ok := unresolved[ada.ID]
	if !ok {
		t.Fatal("expected ada to have unresolved friends")
	}
	if len(got) != 1 || got[0] != testutil.ID("ghost") {
		t.Errorf("unresolved friends = %v, want [%v]", got, testutil.ID("ghost"))
	}
	if _, ok := unresolved[grace.ID]; ok {
		t.Error("grace should have no unresolved friends")
	}
}

func TestUnresolvedFriends_Empty(t *testing.T) {
	if got := participant.UnresolvedFriends(nil); len(got) != 0 {
		t.Errorf("UnresolvedFriends(nil) = %v, want empty", got)
	}
}
