package value

import (
	"tarkov_market/internal/domain"
	"tarkov_market/pkg/errcodes"
)

// GameMode selects which of the two parallel economies a computation runs
// against. The engine itself is mode-blind; callers pick the snapshot.
type GameMode string

const (
	GameModePvP GameMode = "pvp"
	GameModePvE GameMode = "pve"
)

func (m GameMode) String() string {
	return string(m)
}

// ParseGameMode validates a user-supplied mode, defaulting empty to pvp.
func ParseGameMode(s string) (GameMode, error) {
	switch GameMode(s) {
	case GameModePvP, GameModePvE:
		return GameMode(s), nil
	case "":
		return GameModePvP, nil
	default:
		return "", domain.NewError(errcodes.InvalidGameMode, "unknown game mode: "+s)
	}
}

// GameModes lists all modes a fetch cycle must cover.
func GameModes() []GameMode {
	return []GameMode{GameModePvP, GameModePvE}
}
