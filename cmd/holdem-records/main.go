package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/pterm/pterm"

	"github.com/lllllan02/holdem/internal/deck"
	"github.com/lllllan02/holdem/internal/profile"
)

var CLI struct {
	Server string `short:"s" default:"http://localhost:8080" help:"Server URL to query"`
	Days   int    `short:"d" default:"7" help:"How many days of history to fetch"`
	Limit  int    `short:"l" default:"20" help:"Maximum number of rounds to show"`
}

func main() {
	kctx := kong.Parse(&CLI)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rounds, err := profile.NewClient(CLI.Server).Records(ctx, CLI.Days, CLI.Limit)
	if err != nil {
		pterm.Error.Printfln("fetching records: %v", err)
		kctx.Exit(1)
	}

	if len(rounds) == 0 {
		pterm.Info.Println("No rounds recorded in this window.")
		return
	}

	rows := pterm.TableData{{"Ended", "Pot", "Board", "Winners"}}
	for _, r := range rounds {
		rows = append(rows, []string{
			time.Unix(r.EndTime, 0).Format("Jan 2 15:04"),
			fmt.Sprintf("%d", r.Pot),
			cardsString(r.CommunityCards),
			winnersString(r.Winners),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		pterm.Error.Printfln("rendering table: %v", err)
		kctx.Exit(1)
	}
}

func cardsString(cards []deck.Card) string {
	if len(cards) == 0 {
		return "-"
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func winnersString(winners []profile.Winner) string {
	if len(winners) == 0 {
		return "-"
	}
	parts := make([]string, len(winners))
	for i, w := range winners {
		parts[i] = fmt.Sprintf("%s +%d (%s)", w.Name, w.WinAmount, w.HandRank)
	}
	return strings.Join(parts, ", ")
}
