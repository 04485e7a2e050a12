package menu

import (
	"github.com/albion-rpg/albion/internal/game/item"
	"github.com/albion-rpg/albion/internal/game/player"
	"github.com/albion-rpg/albion/internal/tui"
)

// foodHungerRelief is how much hunger one Food clears.
const foodHungerRelief = 25

// potionHealing is how many hit points one Potion restores.
const potionHealing = 25

// inventoryScreen shows the player's holdings and runs the equip/consume
// loop. It is shared by the town menu and the in-battle inventory action.
func (a *App) inventoryScreen() error {
	for {
		a.term.Clear()
		a.term.Header("Inventory")
		p := a.player

		a.term.Table([]string{"", ""}, p.Health.Rows())
		a.term.Table([]string{"Item", "Qty"}, p.Items.Rows())
		a.term.Table([]string{"Weapon", "Damage", "Durability", "Owned", "Equipped"}, p.Weapons.Rows())
		a.term.Table([]string{"Armor", "Defense", "Durability", "Owned", "Equipped"}, p.Armor.Rows())

		choice, err := a.term.Select("What now?", []string{
			"Equip a weapon",
			"Unequip weapon",
			"Equip armor",
			"Unequip armor",
			"Eat food",
			"Drink a potion",
			"Back",
		})
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			err = a.equipWeapon()
		case 1:
			p.UnequipWeapon()
			a.term.Statusf(tui.BrightYellow, "You sheathe your weapon.")
		case 2:
			err = a.equipArmor()
		case 3:
			p.UnequipArmor()
			a.term.Statusf(tui.BrightYellow, "You remove your armor.")
		case 4:
			err = a.eatFood()
		case 5:
			err = a.drinkPotion()
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

func (a *App) equipWeapon() error {
	n, err := a.term.PromptInt("Weapon #:")
	if err != nil {
		return err
	}
	kind, ok := item.WeaponAt(n - 1)
	if !ok {
		return errNoSuchItem(n)
	}
	if err := a.player.EquipWeapon(kind); err != nil {
		return err
	}
	a.term.Statusf(tui.BrightGreen, "You ready the %s.", kind.DisplayName())
	return nil
}

func (a *App) equipArmor() error {
	n, err := a.term.PromptInt("Armor #:")
	if err != nil {
		return err
	}
	kind, ok := item.ArmorAt(n - 1)
	if !ok {
		return errNoSuchItem(n)
	}
	if err := a.player.EquipArmor(kind); err != nil {
		return err
	}
	a.term.Statusf(tui.BrightGreen, "You strap on the %s.", kind.DisplayName())
	return nil
}

// eatFood consumes one Food and clears up to foodHungerRelief hunger.
func (a *App) eatFood() error {
	if err := a.player.Items.Remove(item.Food, 1); err != nil {
		return err
	}
	h := &a.player.Health
	h.Hunger -= foodHungerRelief
	if h.Hunger < 0 {
		h.Hunger = 0
	}
	a.term.Statusf(tui.BrightGreen, "You eat. Hunger is now %d.", h.Hunger)
	return nil
}

// drinkPotion consumes one Potion and restores up to potionHealing hit
// points, capped at full health.
func (a *App) drinkPotion() error {
	if err := a.player.Items.Remove(item.Potions, 1); err != nil {
		return err
	}
	h := &a.player.Health
	h.HP += potionHealing
	if h.HP > player.MaxHP {
		h.HP = player.MaxHP
	}
	a.term.Statusf(tui.BrightGreen, "You drink. Health is now %d.", h.HP)
	return nil
}
