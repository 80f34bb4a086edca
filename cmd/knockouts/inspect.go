package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lox/knockouts/internal/hands"
	"github.com/lox/knockouts/internal/knockout"
	"github.com/lox/knockouts/internal/session"
)

// InspectCmd replays one file hand by hand, showing each hand's pot
// ladder, winners and eliminations. Useful for checking why a bust
// was or wasn't credited.
type InspectCmd struct {
	File  string `arg:"" name:"file" help:"Path to a hand history file" type:"path"`
	Hero  string `help:"Name of the tracked player" default:"Hero"`
	MinBB int    `name:"min-bb" help:"Minimum big blind for counted knockouts" default:"100"`
	Limit int    `help:"Maximum number of hands to show (0 = all)"`
	Debug bool   `help:"Enable debug logging"`
}

func (cmd *InspectCmd) Run() error {
	data, err := os.ReadFile(filepath.Clean(cmd.File))
	if err != nil {
		return err
	}

	logger := setupLogger(cmd.Debug)
	parsed := session.ParseFile(string(data), cmd.MinBB, logger)
	if len(parsed) == 0 {
		return fmt.Errorf("no hands found in %s", cmd.File)
	}

	limit := cmd.Limit
	if limit <= 0 || limit > len(parsed) {
		limit = len(parsed)
	}

	attributor := &knockout.Attributor{
		Hero:        cmd.Hero,
		MinBigBlind: cmd.MinBB,
		Logger:      logger,
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf(" %s ", cmd.File)))
	for i := 0; i < limit; i++ {
		hand := parsed[i]
		var next *hands.Hand
		if i+1 < len(parsed) {
			next = parsed[i+1]
		}
		eliminated := knockout.Eliminated(hand, next)
		credits := attributor.Attribute(hand, eliminated)
		renderHand(i, hand, eliminated, credits)
	}
	return nil
}

func renderHand(idx int, hand *hands.Hand, eliminated []string, credits []knockout.Credit) {
	fmt.Println()
	fmt.Println(headerStyle.Render(fmt.Sprintf("Hand %d", idx+1)), dimStyle.Render(fmt.Sprintf("bb=%d", hand.BB)))

	for _, name := range hand.Order {
		fmt.Printf("  %-20s stack %6d  in %6d  out %6d\n",
			name, hand.Seats[name], hand.Contrib[name], hand.Collects[name])
	}

	for i, pot := range hand.Pots {
		fmt.Println(potStyle.Render(fmt.Sprintf(
			"  pot %d: %d chips at level %d, eligible [%s], won by [%s]",
			i+1, pot.Size, pot.Level,
			strings.Join(pot.Eligible, " "), strings.Join(pot.Winners, " "))))
	}

	if len(eliminated) > 0 {
		fmt.Println(bustStyle.Render("  eliminated: " + strings.Join(eliminated, " ")))
	}
	for _, credit := range credits {
		fmt.Println(totalStyle.Render(fmt.Sprintf(
			"  knockout: %s via pot level %d (%d chips)",
			credit.Player, credit.PotLevel, credit.PotSize)))
	}
}
