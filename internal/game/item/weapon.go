package item

// WeaponKind identifies one weapon in the closed weapon catalog.
type WeaponKind string

const (
	// WoodenSword is the starter weapon.
	WoodenSword WeaponKind = "wooden_sword"
	// BronzeSword is a cheap early upgrade.
	BronzeSword WeaponKind = "bronze_sword"
	// IronSword is the mid-tier blade.
	IronSword WeaponKind = "iron_sword"
	// SteelSword is the high-tier blade.
	SteelSword WeaponKind = "steel_sword"
	// MysticSword is an enchanted blade.
	MysticSword WeaponKind = "mystic_sword"
	// WizardStaff is the strongest weapon in the catalog.
	WizardStaff WeaponKind = "wizard_staff"
)

// WeaponKinds lists every weapon in stable display order. The index of a
// kind in this slice is its selection index in menus.
var WeaponKinds = []WeaponKind{
	WoodenSword,
	BronzeSword,
	IronSword,
	SteelSword,
	MysticSword,
	WizardStaff,
}

// WeaponSpec holds the static catalog stats of a weapon kind.
type WeaponSpec struct {
	// Name is the human-readable label.
	Name string
	// Damage dealt per landed hit.
	Damage int
	// Durability is the factory durability; a fresh or re-bought weapon
	// starts here and breaks when wear drives it to zero.
	Durability int
	// Price is the shop buy price in gold; sell price is Price / 2.
	Price int
}

// weaponSpecs is the fixed weapon catalog.
var weaponSpecs = map[WeaponKind]WeaponSpec{
	WoodenSword: {Name: "Wooden Sword", Damage: 10, Durability: 100, Price: 10},
	BronzeSword: {Name: "Bronze Sword", Damage: 20, Durability: 150, Price: 30},
	IronSword:   {Name: "Iron Sword", Damage: 50, Durability: 200, Price: 100},
	SteelSword:  {Name: "Steel Sword", Damage: 200, Durability: 500, Price: 500},
	MysticSword: {Name: "Mystic Sword", Damage: 500, Durability: 1000, Price: 5000},
	WizardStaff: {Name: "Wizard Staff", Damage: 1000, Durability: 2000, Price: 10000},
}

// Spec returns the static catalog stats for the kind.
//
// Precondition: k is a catalog kind; the zero WeaponSpec is returned
// otherwise.
func (k WeaponKind) Spec() WeaponSpec {
	return weaponSpecs[k]
}

// DisplayName returns the human-readable label for the kind.
func (k WeaponKind) DisplayName() string {
	if spec, ok := weaponSpecs[k]; ok {
		return spec.Name
	}
	return string(k)
}

// Valid reports whether k is a catalog weapon kind.
func (k WeaponKind) Valid() bool {
	_, ok := weaponSpecs[k]
	return ok
}

// WeaponAt returns the weapon at the given selection index.
//
// Postcondition: ok is true iff 0 <= index < len(WeaponKinds).
func WeaponAt(index int) (WeaponKind, bool) {
	if index < 0 || index >= len(WeaponKinds) {
		return "", false
	}
	return WeaponKinds[index], true
}
