// Package shop implements the trading post, weapons shop, and armor shop:
// buy and sell transactions against the player's wallet. Every transaction
// is atomic in memory: either the wallet and the inventory both change, or
// neither does.
package shop

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/albion-rpg/albion/internal/game/gameerr"
	"github.com/albion-rpg/albion/internal/game/item"
	"github.com/albion-rpg/albion/internal/game/player"
)

// Shop executes catalog transactions against a player.
type Shop struct {
	logger *zap.Logger
}

// New creates a Shop.
//
// Precondition: logger must be non-nil.
func New(logger *zap.Logger) *Shop {
	return &Shop{logger: logger}
}

// BuyConsumable purchases qty units of the kind. When useWallet is true
// the wallet must cover qty times the unit price; when false (developer
// mode) the items are granted for free through the same path.
//
// Postcondition: on error, p is unchanged.
func (s *Shop) BuyConsumable(p *player.Player, k item.ConsumableKind, qty int, useWallet bool) error {
	if qty <= 0 {
		return gameerr.InvalidInput("quantity must be positive")
	}
	cost := qty * k.BuyPrice()
	if useWallet {
		if err := p.Bank.Spend(cost); err != nil {
			return fmt.Errorf("buying %d %s: %w", qty, k.DisplayName(), err)
		}
	}
	if err := p.Items.Add(k, qty); err != nil {
		// quantity already validated; restore the debit
		if useWallet {
			_ = p.Bank.Earn(cost)
		}
		return err
	}
	s.logger.Debug("bought consumable",
		zap.String("item", string(k)),
		zap.Int("quantity", qty),
		zap.Int("cost", cost),
		zap.Bool("use_wallet", useWallet),
	)
	return nil
}

// SellConsumable sells qty units of the kind at half the buy price. When
// useWallet is false (developer mode) the items are removed without
// payment.
//
// Postcondition: on error, p is unchanged.
func (s *Shop) SellConsumable(p *player.Player, k item.ConsumableKind, qty int, useWallet bool) error {
	if qty <= 0 {
		return gameerr.InvalidInput("quantity must be positive")
	}
	if err := p.Items.Remove(k, qty); err != nil {
		return fmt.Errorf("selling %d %s: %w", qty, k.DisplayName(), err)
	}
	proceeds := qty * k.SellPrice()
	if useWallet {
		_ = p.Bank.Earn(proceeds)
	}
	s.logger.Debug("sold consumable",
		zap.String("item", string(k)),
		zap.Int("quantity", qty),
		zap.Int("proceeds", proceeds),
	)
	return nil
}

// BuyWeapon purchases the weapon kind. Fails with ErrAlreadyOwned when the
// player already owns it, or ErrNotEnoughGold when useWallet is true and
// the wallet cannot cover the price.
//
// Postcondition: on success the weapon is owned at factory durability; on
// error, p is unchanged.
func (s *Shop) BuyWeapon(p *player.Player, k item.WeaponKind, useWallet bool) error {
	state := p.Weapons[k]
	if state.Owned {
		return gameerr.ErrAlreadyOwned
	}
	spec := k.Spec()
	if useWallet {
		if err := p.Bank.Spend(spec.Price); err != nil {
			return fmt.Errorf("buying %s: %w", spec.Name, err)
		}
	}
	p.Weapons[k] = item.GearState{Owned: true, Durability: spec.Durability}
	s.logger.Debug("bought weapon", zap.String("weapon", string(k)), zap.Bool("use_wallet", useWallet))
	return nil
}

// SellWeapon sells the weapon kind for half its price. A sold weapon is
// unequipped first so the equipment slot never references unowned gear.
//
// Postcondition: on error, p is unchanged.
func (s *Shop) SellWeapon(p *player.Player, k item.WeaponKind, useWallet bool) error {
	state := p.Weapons[k]
	if !state.Owned {
		return gameerr.ErrNotOwned
	}
	if p.Equipment.Weapon == k {
		p.UnequipWeapon()
	}
	spec := k.Spec()
	p.Weapons[k] = item.NewGearState(spec.Durability)
	if useWallet {
		_ = p.Bank.Earn(spec.Price / 2)
	}
	s.logger.Debug("sold weapon", zap.String("weapon", string(k)))
	return nil
}

// BuyArmor purchases the armor kind. Fails with ErrAlreadyOwned when the
// player already owns it, or ErrNotEnoughGold when useWallet is true and
// the wallet cannot cover the price.
//
// Postcondition: on success the piece is owned at factory durability; on
// error, p is unchanged.
func (s *Shop) BuyArmor(p *player.Player, k item.ArmorKind, useWallet bool) error {
	state := p.Armor[k]
	if state.Owned {
		return gameerr.ErrAlreadyOwned
	}
	spec := k.Spec()
	if useWallet {
		if err := p.Bank.Spend(spec.Price); err != nil {
			return fmt.Errorf("buying %s: %w", spec.Name, err)
		}
	}
	p.Armor[k] = item.GearState{Owned: true, Durability: spec.Durability}
	s.logger.Debug("bought armor", zap.String("armor", string(k)), zap.Bool("use_wallet", useWallet))
	return nil
}

// SellArmor sells the armor kind for half its price. A sold piece is
// unequipped first so the equipment slot never references unowned gear.
//
// Postcondition: on error, p is unchanged.
func (s *Shop) SellArmor(p *player.Player, k item.ArmorKind, useWallet bool) error {
	state := p.Armor[k]
	if !state.Owned {
		return gameerr.ErrNotOwned
	}
	if p.Equipment.Armor == k {
		p.UnequipArmor()
	}
	spec := k.Spec()
	p.Armor[k] = item.NewGearState(spec.Durability)
	if useWallet {
		_ = p.Bank.Earn(spec.Price / 2)
	}
	s.logger.Debug("sold armor", zap.String("armor", string(k)))
	return nil
}
