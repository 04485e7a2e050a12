package menu

import (
	"strconv"

	"github.com/albion-rpg/albion/internal/game/gameerr"
	"github.com/albion-rpg/albion/internal/game/item"
	"github.com/albion-rpg/albion/internal/tui"
)

// errNoSuchItem flags a catalog index outside the listing.
func errNoSuchItem(n int) error {
	return gameerr.InvalidInput("no item #" + strconv.Itoa(n))
}

// tradingPostScreen runs the consumable buy/sell loop.
func (a *App) tradingPostScreen() error {
	for {
		a.term.Clear()
		a.term.Header("Trading Post")

		rows := make([][]string, 0, len(item.ConsumableKinds))
		for i, k := range item.ConsumableKinds {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				k.DisplayName(),
				strconv.Itoa(k.BuyPrice()),
				strconv.Itoa(k.SellPrice()),
				strconv.Itoa(a.player.Items[k]),
			})
		}
		a.term.Table([]string{"#", "Item", "Buy", "Sell", "Held"}, rows)

		choice, err := a.term.Select("Your business?", []string{"Buy", "Sell", "Back"})
		if err != nil {
			return err
		}
		if choice == 2 {
			return nil
		}

		kind, qty, err := a.promptConsumable()
		if err != nil {
			if err = a.recover(err); err != nil {
				return err
			}
			continue
		}

		switch choice {
		case 0:
			err = a.shop.BuyConsumable(a.player, kind, qty, true)
		case 1:
			err = a.shop.SellConsumable(a.player, kind, qty, true)
		}
		if err != nil {
			if err = a.recover(err); err != nil {
				return err
			}
			continue
		}
		a.term.Statusf(tui.BrightGreen, "Done. Your wallet holds %d gold.", a.player.Bank.Wallet)
	}
}

// promptConsumable asks which consumable and how many.
func (a *App) promptConsumable() (item.ConsumableKind, int, error) {
	n, err := a.term.PromptInt("Item #:")
	if err != nil {
		return "", 0, err
	}
	kind, ok := item.ConsumableAt(n - 1)
	if !ok {
		return "", 0, errNoSuchItem(n)
	}
	qty, err := a.term.PromptInt("Quantity:")
	if err != nil {
		return "", 0, err
	}
	return kind, qty, nil
}

// weaponsShopScreen runs the weapon buy/sell loop.
func (a *App) weaponsShopScreen() error {
	for {
		a.term.Clear()
		a.term.Header("Weapons Shop")

		rows := make([][]string, 0, len(item.WeaponKinds))
		for i, k := range item.WeaponKinds {
			spec := k.Spec()
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				spec.Name,
				strconv.Itoa(spec.Damage),
				strconv.Itoa(spec.Price),
				strconv.Itoa(spec.Price / 2),
				ownedMark(a.player.Weapons[k].Owned),
			})
		}
		a.term.Table([]string{"#", "Weapon", "Damage", "Buy", "Sell", "Owned"}, rows)

		choice, err := a.term.Select("Your business?", []string{"Buy", "Sell", "Back"})
		if err != nil {
			return err
		}
		if choice == 2 {
			return nil
		}

		n, err := a.term.PromptInt("Weapon #:")
		if err != nil {
			if err = a.recover(err); err != nil {
				return err
			}
			continue
		}
		kind, ok := item.WeaponAt(n - 1)
		if !ok {
			if err = a.recover(errNoSuchItem(n)); err != nil {
				return err
			}
			continue
		}

		switch choice {
		case 0:
			err = a.shop.BuyWeapon(a.player, kind, true)
		case 1:
			err = a.shop.SellWeapon(a.player, kind, true)
		}
		if err != nil {
			if err = a.recover(err); err != nil {
				return err
			}
			continue
		}
		a.term.Statusf(tui.BrightGreen, "Done. Your wallet holds %d gold.", a.player.Bank.Wallet)
	}
}

// armorShopScreen runs the armor buy/sell loop.
func (a *App) armorShopScreen() error {
	for {
		a.term.Clear()
		a.term.Header("Armor Shop")

		rows := make([][]string, 0, len(item.ArmorKinds))
		for i, k := range item.ArmorKinds {
			spec := k.Spec()
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				spec.Name,
				strconv.Itoa(spec.Defense),
				strconv.Itoa(spec.Price),
				strconv.Itoa(spec.Price / 2),
				ownedMark(a.player.Armor[k].Owned),
			})
		}
		a.term.Table([]string{"#", "Armor", "Defense", "Buy", "Sell", "Owned"}, rows)

		choice, err := a.term.Select("Your business?", []string{"Buy", "Sell", "Back"})
		if err != nil {
			return err
		}
		if choice == 2 {
			return nil
		}

		n, err := a.term.PromptInt("Armor #:")
		if err != nil {
			if err = a.recover(err); err != nil {
				return err
			}
			continue
		}
		kind, ok := item.ArmorAt(n - 1)
		if !ok {
			if err = a.recover(errNoSuchItem(n)); err != nil {
				return err
			}
			continue
		}

		switch choice {
		case 0:
			err = a.shop.BuyArmor(a.player, kind, true)
		case 1:
			err = a.shop.SellArmor(a.player, kind, true)
		}
		if err != nil {
			if err = a.recover(err); err != nil {
				return err
			}
			continue
		}
		a.term.Statusf(tui.BrightGreen, "Done. Your wallet holds %d gold.", a.player.Bank.Wallet)
	}
}

func ownedMark(owned bool) string {
	if owned {
		return tui.Colorize(tui.BrightGreen, "Yes")
	}
	return "No"
}
