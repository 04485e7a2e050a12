package item

// ArmorKind identifies one armor piece in the closed armor catalog.
type ArmorKind string

const (
	// LeatherArmor is the starter armor.
	LeatherArmor ArmorKind = "leather"
	// BronzeArmor is a cheap early upgrade.
	BronzeArmor ArmorKind = "bronze"
	// IronArmor is the mid-tier armor.
	IronArmor ArmorKind = "iron"
	// SteelArmor is the high-tier armor.
	SteelArmor ArmorKind = "steel"
	// DragonhideArmor is crafted from dragon hides.
	DragonhideArmor ArmorKind = "dragonhide"
	// MysticArmor is the strongest armor in the catalog.
	MysticArmor ArmorKind = "mystic"
)

// ArmorKinds lists every armor piece in stable display order. The index of
// a kind in this slice is its selection index in menus.
var ArmorKinds = []ArmorKind{
	LeatherArmor,
	BronzeArmor,
	IronArmor,
	SteelArmor,
	DragonhideArmor,
	MysticArmor,
}

// ArmorSpec holds the static catalog stats of an armor kind.
type ArmorSpec struct {
	// Name is the human-readable label.
	Name string
	// Defense subtracted from incoming damage while equipped.
	Defense int
	// Durability is the factory durability; a fresh or re-bought piece
	// starts here and breaks when wear drives it to zero.
	Durability int
	// Price is the shop buy price in gold; sell price is Price / 2.
	Price int
}

// armorSpecs is the fixed armor catalog.
var armorSpecs = map[ArmorKind]ArmorSpec{
	LeatherArmor:    {Name: "Leather Armor", Defense: 10, Durability: 100, Price: 50},
	BronzeArmor:     {Name: "Bronze Armor", Defense: 30, Durability: 200, Price: 200},
	IronArmor:       {Name: "Iron Armor", Defense: 50, Durability: 300, Price: 500},
	SteelArmor:      {Name: "Steel Armor", Defense: 100, Durability: 500, Price: 750},
	DragonhideArmor: {Name: "Dragonhide Armor", Defense: 200, Durability: 500, Price: 1000},
	MysticArmor:     {Name: "Mystic Armor", Defense: 1000, Durability: 10000, Price: 10000},
}

// Spec returns the static catalog stats for the kind.
//
// Precondition: k is a catalog kind; the zero ArmorSpec is returned
// otherwise.
func (k ArmorKind) Spec() ArmorSpec {
	return armorSpecs[k]
}

// DisplayName returns the human-readable label for the kind.
func (k ArmorKind) DisplayName() string {
	if spec, ok := armorSpecs[k]; ok {
		return spec.Name
	}
	return string(k)
}

// Valid reports whether k is a catalog armor kind.
func (k ArmorKind) Valid() bool {
	_, ok := armorSpecs[k]
	return ok
}

// ArmorAt returns the armor piece at the given selection index.
//
// Postcondition: ok is true iff 0 <= index < len(ArmorKinds).
func ArmorAt(index int) (ArmorKind, bool) {
	if index < 0 || index >= len(ArmorKinds) {
		return "", false
	}
	return ArmorKinds[index], true
}
