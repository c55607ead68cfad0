package live

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mauv0809/handball-stats/internal/handball"
)

// ParseCommand turns one line of user input into a Command.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty command", handball.ErrInvalidInput)
	}
	kind := CommandKind(strings.ToLower(fields[0]))
	args := fields[1:]

	switch kind {
	case CmdStart, CmdStop, CmdToggle, CmdOppInc, CmdOppDec, CmdStatus, CmdSave, CmdQuit:
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%w: %s takes no arguments", handball.ErrInvalidInput, kind)
		}
		return Command{Kind: kind}, nil
	case CmdInc:
		if len(args) != 2 {
			return Command{}, fmt.Errorf("%w: usage: inc <match-player-id> <stat>", handball.ErrInvalidInput)
		}
		id, err := parseID(args[0])
		if err != nil {
			return Command{}, err
		}
		stat, err := handball.ParseStat(args[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: kind, MatchPlayerID: id, Stat: stat}, nil
	case CmdSub:
		if len(args) != 2 {
			return Command{}, fmt.Errorf("%w: usage: sub <out-id> <in-id>", handball.ErrInvalidInput)
		}
		out, err := parseID(args[0])
		if err != nil {
			return Command{}, err
		}
		in, err := parseID(args[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: kind, Out: out, In: in}, nil
	}
	return Command{}, fmt.Errorf("%w: unknown command %q", handball.ErrInvalidInput, fields[0])
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: invalid id %q", handball.ErrInvalidInput, s)
	}
	return id, nil
}
