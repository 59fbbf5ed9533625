package participant

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/hackmatch/teamforge/internal/errors"
)

// Load reads a roster file and returns its participants in file order.
//
// The whole file is validated before anything is returned: a missing
// file, a non-JSON extension, a malformed record, or a duplicate id
// aborts the load with a RosterError. An empty array is a valid roster.
func Load(path string) ([]Participant, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewRosterError(
				"the file does not exist, check the path", errors.ErrRosterNotFound).
				WithPath(path)
		}
		return nil, errors.NewRosterError("failed to stat roster file", err).WithPath(path)
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext != ".json" {
		return nil, errors.NewRosterError(
			fmt.Sprintf("expected a .json file, got %q", ext), errors.ErrRosterFormat).
			WithPath(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewRosterError("failed to read roster file", err).WithPath(path)
	}

	var roster []Participant
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, errors.NewRosterError("roster is not a valid JSON array",
			errors.Join(errors.ErrInvalidRecord, err)).
			WithPath(path)
	}

	seen := make(map[uuid.UUID]int, len(roster))
	for i := range roster {
		p := &roster[i]
		if err := p.Validate(); err != nil {
			return nil, errors.NewRosterError(
				fmt.Sprintf("invalid participant record %q", p.Name),
				errors.Join(errors.ErrInvalidRecord, err)).
				WithPath(path).
				WithRecord(i)
		}
		if prev, ok := seen[p.ID]; ok {
			return nil, errors.NewRosterError(
				fmt.Sprintf("participant id %s already used by record %d", p.ID, prev),
				errors.ErrDuplicateID).
				WithPath(path).
				WithRecord(i)
		}
		seen[p.ID] = i
	}

	return roster, nil
}

// UnresolvedFriends returns, per participant, the friend ids that do
// not resolve to any roster record. Unresolved ids are legal input and
// are simply ignored by matching; this exists for roster diagnostics.
func UnresolvedFriends(roster []Participant) map[uuid.UUID][]uuid.UUID {
	present := make(map[uuid.UUID]bool, len(roster))
	for i := range roster {
		present[roster[i].ID] = true
	}

	unresolved := make(map[uuid.UUID][]uuid.UUID)
	for i := range roster {
		for _, friend := range roster[i].FriendRegistration {
			if !present[friend] {
				unresolved[roster[i].ID] = append(unresolved[roster[i].ID], friend)
			}
		}
	}
	return unresolved
}
