package match

import (
	"github.com/hackmatch/teamforge/internal/errors"
	"github.com/hackmatch/teamforge/internal/logging"
	"github.com/hackmatch/teamforge/internal/participant"
)

// Engine runs the full matching pipeline. It holds no state across
// runs; each Form call owns its working pools, and the input roster is
// never mutated.
type Engine struct {
	cfg Config
	log *logging.Logger
}

// NewEngine creates an engine with the given config. A nil logger is
// replaced with a no-op logger.
func NewEngine(cfg Config, log *logging.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid matching configuration")
	}
	if log == nil {
		log = logging.NopLogger()
	}
	return &Engine{cfg: cfg, log: log}, nil
}

// Form partitions the roster into teams. Competitive teams come first,
// then social teams, then singleton teams for competitive participants
// who failed the availability filter. An empty roster yields an empty
// team list.
func (e *Engine) Form(roster []participant.Participant) ([]Team, error) {
	if len(roster) == 0 {
		return []Team{}, nil
	}

	competitive, social := splitByObjective(roster, e.cfg.WinKeywords)
	kept, droppedForAvailability := filterAvailability(competitive, e.cfg.RequiredSlots, e.cfg.MinSlots)

	e.log.Info("roster split",
		"total", len(roster),
		"competitive", len(competitive),
		"social", len(social),
		"filtered_for_availability", len(droppedForAvailability))

	teams := e.groupCompetitive(kept)
	teams = append(teams, e.groupSocial(social)...)
	for i := range droppedForAvailability {
		teams = append(teams, singletonTeam(droppedForAvailability[i]))
	}

	if err := verifyPartition(roster, teams); err != nil {
		return nil, err
	}

	e.log.Info("matching complete", "teams", len(teams))
	return teams, nil
}

// Config returns a copy of the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}
