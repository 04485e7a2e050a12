package menu

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/albion-rpg/albion/internal/game/gameerr"
	"github.com/albion-rpg/albion/internal/game/item"
	"github.com/albion-rpg/albion/internal/game/player"
	"github.com/albion-rpg/albion/internal/tui"
)

// developerScreen runs the cheat menu. Every grant bypasses the wallet.
func (a *App) developerScreen() error {
	for {
		a.term.Clear()
		a.term.Header("Developer Menu")

		choice, err := a.term.Select("Bend the realm.", []string{
			"Grant gold",
			"Grant items",
			"Take any weapon",
			"Take any armor",
			"Adjust a skill",
			"Reset this profile",
			"Back",
		})
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			err = a.grantGold()
		case 1:
			err = a.grantItems()
		case 2:
			err = a.grantWeapon()
		case 3:
			err = a.grantArmor()
		case 4:
			err = a.adjustSkill()
		case 5:
			ok, confirmErr := a.term.Confirm("Wipe this profile back to a fresh start?")
			if confirmErr != nil {
				return confirmErr
			}
			if ok {
				a.player.Reset()
				a.logger.Warn("profile reset from developer menu",
					zap.String("username", a.player.Settings.Username),
				)
				a.term.Statusf(tui.BrightRed, "The slate is wiped clean.")
				err = a.store.Save(a.player)
			}
		case 6:
			return nil
		}
		if err != nil {
			if err = a.recover(err); err != nil {
				return err
			}
		}
	}
}

func (a *App) grantGold() error {
	amount, err := a.term.PromptInt("Gold:")
	if err != nil {
		return err
	}
	if err := a.player.Bank.Earn(amount); err != nil {
		return err
	}
	a.term.Statusf(tui.BrightGreen, "Gold appears from thin air. Wallet: %d.", a.player.Bank.Wallet)
	return nil
}

func (a *App) grantItems() error {
	kind, qty, err := a.promptConsumable()
	if err != nil {
		return err
	}
	if err := a.player.Items.Add(kind, qty); err != nil {
		return err
	}
	a.term.Statusf(tui.BrightGreen, "%d %s appear in your pack.", qty, kind.DisplayName())
	return nil
}

func (a *App) grantWeapon() error {
	n, err := a.term.PromptInt("Weapon #:")
	if err != nil {
		return err
	}
	kind, ok := item.WeaponAt(n - 1)
	if !ok {
		return errNoSuchItem(n)
	}
	if err := a.shop.BuyWeapon(a.player, kind, false); err != nil {
		return err
	}
	a.term.Statusf(tui.BrightGreen, "A %s materializes.", kind.DisplayName())
	return nil
}

func (a *App) grantArmor() error {
	n, err := a.term.PromptInt("Armor #:")
	if err != nil {
		return err
	}
	kind, ok := item.ArmorAt(n - 1)
	if !ok {
		return errNoSuchItem(n)
	}
	if err := a.shop.BuyArmor(a.player, kind, false); err != nil {
		return err
	}
	a.term.Statusf(tui.BrightGreen, "A %s materializes.", kind.DisplayName())
	return nil
}

// adjustSkill applies one arithmetic operation to a skill's experience.
func (a *App) adjustSkill() error {
	for i, s := range player.Skills {
		a.term.Println("  " + strconv.Itoa(i+1) + ") " + s.DisplayName())
	}
	n, err := a.term.PromptInt("Skill #:")
	if err != nil {
		return err
	}
	if n < 1 || n > len(player.Skills) {
		return errNoSuchItem(n)
	}
	skill := player.Skills[n-1]

	op, err := a.term.Prompt("Operator (+ - * /):")
	if err != nil {
		return err
	}
	amount, err := a.term.PromptInt("Amount:")
	if err != nil {
		return err
	}

	switch op {
	case "+":
		err = a.player.XP.Add(skill, amount)
	case "-":
		err = a.player.XP.Subtract(skill, amount)
	case "*":
		err = a.player.XP.Multiply(skill, amount)
	case "/":
		err = a.player.XP.Divide(skill, amount)
	default:
		return gameerr.ErrInvalidOperator
	}
	if err != nil {
		return err
	}

	a.player.EvaluateAchievements()
	a.term.Statusf(tui.BrightGreen, "%s is now %d XP (level %d).",
		skill.DisplayName(), a.player.XP[skill], player.Level(a.player.XP[skill]))
	return nil
}
