package app

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects how the launcher registers tasks with the kernel.
type Mode int

const (
	// ModePlain registers every task as a plain priority task.
	ModePlain Mode = iota
	// ModeEDF registers every task with its period as an implicit deadline.
	ModeEDF
)

var ErrInvalidMode = errors.New("invalid scheduling mode")

func (m Mode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeEDF:
		return "edf"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode accepts "plain" or "edf". An empty string yields DefaultMode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultMode, nil
	case "plain":
		return ModePlain, nil
	case "edf":
		return ModeEDF, nil
	default:
		return DefaultMode, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}
