package enum

// ── Menu item variants ──

const (
	ItemTypeCoffee   = "COFFEE"
	ItemTypeDonut    = "DONUT"
	ItemTypeSandwich = "SANDWICH"
)

// ── Coffee ──

const (
	CupSizeShort  = "SHORT"
	CupSizeTall   = "TALL"
	CupSizeGrande = "GRANDE"
	CupSizeVenti  = "VENTI"
)

const (
	AddInSweetCream    = "SWEET_CREAM"
	AddInFrenchVanilla = "FRENCH_VANILLA"
	AddInIrishCream    = "IRISH_CREAM"
	AddInCaramel       = "CARAMEL"
	AddInMocha         = "MOCHA"
)

// ── Donut ──

const (
	DonutYeast    = "YEAST"
	DonutCake     = "CAKE"
	DonutHole     = "HOLE"
	DonutSeasonal = "SEASONAL"
)

// ── Sandwich ──

const (
	BreadBagel     = "BAGEL"
	BreadWheat     = "WHEAT"
	BreadSourdough = "SOURDOUGH"
)

const (
	ProteinBeef    = "BEEF"
	ProteinChicken = "CHICKEN"
	ProteinSalmon  = "SALMON"
)

const (
	AddOnCheese   = "CHEESE"
	AddOnLettuce  = "LETTUCE"
	AddOnTomatoes = "TOMATOES"
	AddOnOnions   = "ONIONS"
)

// ── Order lifecycle ──

const (
	OrderStatusOpen   = "OPEN"
	OrderStatusPlaced = "PLACED"
)

// ── Staff roles ──

const (
	RoleOwner   = "OWNER"
	RoleCashier = "CASHIER"
)
