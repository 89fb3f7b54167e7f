package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagRunsLimit int
	flagRunShow   int64
)

var runsCmd = &cobra.Command{
	Use:   "runs [mode]",
	Short: "Show run history",
	Long: `List recent finished runs, newest first. With --show, decode one run's
final snapshot and print the state the run ended in.

Examples:
  shooter runs
  shooter runs shooter_survival --limit 5
  shooter runs --show 12`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to list")
	runsCmd.Flags().Int64Var(&flagRunShow, "show", 0, "Print the final snapshot of this run ID")
}

func runRuns(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunShow != 0 {
		if err := showRun(store, flagRunShow); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
	}

	runs, err := store.RecentRuns(gameID, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-5s  %-18s  %-5s  %-4s  %-8s  %s\n", "ID", "Mode", "Kills", "Tier", "Time", "Date")
	fmt.Printf("  %-5s  %-18s  %-5s  %-4s  %-8s  %s\n", "--", "----", "-----", "----", "----", "----")
	for _, r := range runs {
		fmt.Printf("  %-5d  %-18s  %-5d  %-4d  %-8s  %s\n",
			r.ID, r.GameID, r.Kills, r.Difficulty, fmt.Sprintf("%.1fs", r.Duration),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func showRun(store *storage.Store, id int64) error {
	blob, err := store.RunSnapshot(id)
	if err != nil {
		return err
	}
	if len(blob) == 0 {
		fmt.Printf("Run %d has no snapshot.\n", id)
		return nil
	}

	snap, err := shooter.UnmarshalSnapshot(blob)
	if err != nil {
		return err
	}

	fmt.Printf("Run %d  (tick %d, %.1fs simulated)\n", id, snap.Tick, snap.Time)
	fmt.Printf("  State:    %s\n", snap.State)
	fmt.Printf("  Kills:    %d\n", snap.Kills)
	fmt.Printf("  Tier:     %d\n", snap.Difficulty)
	fmt.Printf("  Weapon:   damage %d, cooldown %.2fs\n", snap.Damage, snap.Cooldown)
	fmt.Printf("  Player:   (%.0f, %.0f) health %d\n", snap.Player.X, snap.Player.Y, snap.Player.Health)
	fmt.Printf("  On field: %d enemies, %d shots, %d power-ups\n", len(snap.Enemies), len(snap.Shots), len(snap.PowerUps))
	return nil
}
