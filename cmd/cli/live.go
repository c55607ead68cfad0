package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/mauv0809/handball-stats/internal/live"
	"github.com/spf13/cobra"
)

var draftDir string

func init() {
	liveCmd.Flags().StringVar(&draftDir, "draft-dir", defaultDraftDir(), "Where unsaved sessions are kept")
	rootCmd.AddCommand(liveCmd)
}

const liveHelp = `commands:
  start | stop | toggle      run or pause the clock
  inc <mpid> <stat>          add one to a stat (goals, assists, saves, turnovers,
                             shotsOnGoal, shotsOffTarget, recoveries, foulsCommitted,
                             foulsReceived, yellowCards, redCards)
  sub <out> <in>             swap an on-court player for a bench player
  opp+ | opp-                change the opponent score
  status                     print the scoreboard
  save                       submit the final stats and exit
  quit                       exit keeping a local draft`

var liveCmd = &cobra.Command{
	Use:   "live <matchID>",
	Short: "Track a match live from the terminal",
	Long:  "Track a match live. Commands are read one per line from stdin.\n\n" + liveHelp,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := os.MkdirAll(draftDir, 0o700); err != nil {
			return fmt.Errorf("failed to create draft directory: %w", err)
		}
		api := apiClient()
		draftPath := filepath.Join(draftDir, fmt.Sprintf("match-%d.draft", id))
		session, err := loadSession(ctx, id, draftPath, api.GetMatch)
		if err != nil {
			return err
		}

		fmt.Println(liveHelp)
		live.WriteStatus(os.Stdout, session)
		commands := readCommands(ctx, os.Stdin, os.Stderr)
		err = live.Run(ctx, session, commands, api, os.Stdout, live.WithDraft(draftPath))
		if errors.Is(err, context.Canceled) {
			fmt.Printf("\nInterrupted. Resume with: handball live %d\n", id)
			return nil
		}
		return err
	},
}

// loadSession resumes a local draft of the match when one exists, otherwise it
// starts a fresh session from the stored match.
func loadSession(ctx context.Context, id int64, draftPath string, getMatch func(context.Context, int64) (*handball.Match, error)) (*live.Session, error) {
	draft, err := live.LoadDraft(draftPath)
	if err != nil {
		log.Warn("Ignoring unreadable draft", "path", draftPath, "error", err)
	}
	if draft != nil && draft.MatchID == id {
		log.Info("Resuming unsaved session", "matchID", id, "path", draftPath)
		return draft, nil
	}

	match, err := getMatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load match %d: %w", id, err)
	}
	return live.NewSession(match), nil
}

// readCommands parses stdin lines into commands until EOF or ctx is done.
// Unparsable lines are reported and skipped.
func readCommands(ctx context.Context, in io.Reader, errOut io.Writer) <-chan live.Command {
	commands := make(chan live.Command)
	go func() {
		defer close(commands)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			cmd, err := live.ParseCommand(line)
			if err != nil {
				fmt.Fprintln(errOut, err)
				continue
			}
			select {
			case commands <- cmd:
			case <-ctx.Done():
				return
			}
		}
	}()
	return commands
}

func defaultDraftDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "handball")
	}
	return os.TempDir()
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
