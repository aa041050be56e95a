package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokerodds/internal/trials"
	"github.com/lox/pokerodds/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

// displayReport writes the result table for one evaluation.
func displayReport(out io.Writer, r report, possibilities bool) {
	if r.Name != "" {
		fmt.Fprintf(out, "%s\n", headerStyle.Render(r.Name))
	}
	if r.Board != "" {
		fmt.Fprintf(out, "%s  %s\n", headerStyle.Render("board"), r.Board)
	}
	if r.Dead != "" {
		fmt.Fprintf(out, "%s   %s\n", headerStyle.Render("dead"), r.Dead)
	}
	if r.Board != "" || r.Dead != "" {
		fmt.Fprintln(out)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("class"),
		headerStyle.Render("win"),
		headerStyle.Render("95% ci"))
	for _, h := range r.Hands {
		ci := "exact"
		if r.Mode != trials.ModeExhaustive.String() {
			ci = fmt.Sprintf("%s-%s", percent(h.WinLow), percent(h.WinHigh))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			handStyle.Render(h.Cards),
			dimStyle.Render(h.Class),
			winStyle.Render(percent(h.Win)),
			dimStyle.Render(ci))
	}
	fmt.Fprintf(w, "%s\t\t%s\t\n", headerStyle.Render("tie"), tieStyle.Render(percent(r.Tie)))
	w.Flush()

	if possibilities && len(r.Hands) > 0 {
		fmt.Fprintln(out)
		displayPossibilities(out, r.Hands)
	}

	fmt.Fprintf(out, "\n%d %s trials on %d worker(s) in %v\n",
		r.Trials, r.Mode, r.Workers, time.Duration(r.Duration).Truncate(time.Millisecond))
}

// displayPossibilities writes the per-hand category breakdown, strongest
// category first, skipping categories no hand can reach.
func displayPossibilities(out io.Writer, hands []handReport) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s", categoryStyle.Render("hand"))
	for _, h := range hands {
		fmt.Fprintf(w, "\t%s", handStyle.Render(h.Cards))
	}
	fmt.Fprintf(w, "\n")

	for cat := poker.RoyalFlush; ; cat-- {
		name := cat.String()
		seen := false
		for _, h := range hands {
			if h.Categories[name] > 0 {
				seen = true
				break
			}
		}
		if seen {
			fmt.Fprintf(w, "%s", categoryStyle.Render(name))
			for _, h := range hands {
				if p, ok := h.Categories[name]; ok {
					fmt.Fprintf(w, "\t%s", percentStyle.Render(percent(p)))
				} else {
					fmt.Fprintf(w, "\t%s", percentStyle.Render("."))
				}
			}
			fmt.Fprintf(w, "\n")
		}
		if cat == poker.HighCard {
			break
		}
	}

	w.Flush()
}
