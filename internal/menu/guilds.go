package menu

import (
	"strconv"

	"github.com/albion-rpg/albion/internal/game/player"
	"github.com/albion-rpg/albion/internal/tui"
)

// guildScreen runs the guild hall loop: joining guilds and working them.
func (a *App) guildScreen() error {
	for {
		a.term.Clear()
		a.term.Header("Guild Hall")

		rows := make([][]string, 0, len(player.GuildKinds))
		for i, k := range player.GuildKinds {
			member := "No"
			if a.player.Guilds.Joined(k) {
				member = tui.Colorize(tui.BrightGreen, "Member")
			}
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				k.DisplayName(),
				strconv.Itoa(k.Price()),
				k.Skill().DisplayName(),
				member,
			})
		}
		a.term.Table([]string{"#", "Guild", "Fee", "Skill", "Status"}, rows)

		choice, err := a.term.Select("Your business?", []string{"Join a guild", "Work", "Back"})
		if err != nil {
			return err
		}
		if choice == 2 {
			return nil
		}

		n, err := a.term.PromptInt("Guild #:")
		if err != nil {
			if err = a.recover(err); err != nil {
				return err
			}
			continue
		}
		kind, ok := player.GuildAt(n - 1)
		if !ok {
			if err = a.recover(errNoSuchItem(n)); err != nil {
				return err
			}
			continue
		}

		switch choice {
		case 0:
			if err := a.joinGuild(kind); err != nil {
				return err
			}
		case 1:
			if err := a.workGuild(kind); err != nil {
				return err
			}
		}
	}
}

func (a *App) joinGuild(kind player.GuildKind) error {
	if err := a.guilds.Join(a.player, kind, true); err != nil {
		return a.recover(err)
	}
	a.term.Statusf(tui.BrightGreen, "Welcome to the %s.", kind.DisplayName())
	return nil
}

// workGuild runs work ticks until the player stops or a tick fails.
func (a *App) workGuild(kind player.GuildKind) error {
	for {
		result, err := a.guilds.Work(a.player, kind)
		if err != nil {
			return a.recover(err)
		}

		switch {
		case result.Produced != "":
			a.term.Statusf(tui.BrightGreen, "You produce 1 %s and gain %d %s experience.",
				result.Produced.DisplayName(), result.XPGained, kind.Skill().DisplayName())
		case result.GoldLost > 0:
			a.term.Statusf(tui.BrightRed, "A mark catches you! You lose %d gold but gain %d and %d experience.",
				result.GoldLost, result.GoldGained, result.XPGained)
		default:
			a.term.Statusf(tui.BrightGreen, "You lift %d gold and gain %d experience.",
				result.GoldGained, result.XPGained)
		}

		again, err := a.term.Confirm("Keep working?")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}
