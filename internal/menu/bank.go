package menu

import (
	"strconv"

	"github.com/albion-rpg/albion/internal/game/player"
	"github.com/albion-rpg/albion/internal/tui"
)

// bankScreen runs the deposit/withdraw loop over the four accounts.
func (a *App) bankScreen() error {
	for {
		a.term.Clear()
		a.term.Header("Bank of Albion")
		a.term.Table([]string{"Account", "Balance"}, a.player.Bank.Rows())

		choice, err := a.term.Select("Your business?", []string{
			"Deposit",
			"Withdraw",
			"Back",
		})
		if err != nil {
			return err
		}
		if choice == 2 {
			return nil
		}

		account, amount, err := a.promptTransfer()
		if err != nil {
			if err = a.recover(err); err != nil {
				return err
			}
			continue
		}

		switch choice {
		case 0:
			err = a.player.Bank.Deposit(account, amount, true)
		case 1:
			err = a.player.Bank.Withdraw(account, amount, true)
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

// promptTransfer asks for the account number and amount of one transfer.
func (a *App) promptTransfer() (account, amount int, err error) {
	account, err = a.term.PromptInt("Account (1-" + strconv.Itoa(player.AccountCount) + "):")
	if err != nil {
		return 0, 0, err
	}
	amount, err = a.term.PromptInt("Amount:")
	if err != nil {
		return 0, 0, err
	}
	return account, amount, nil
}
