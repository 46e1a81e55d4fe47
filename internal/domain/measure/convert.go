package measure

import "errors"

// Conversion errors
var (
	ErrUnknownUnit       = errors.New("unit is not in the conversion table")
	ErrIncompatibleUnits = errors.New("units belong to different families")
)

// UnitFamily groups units that convert into each other. Cross-family
// conversion (volume to mass without a density) is unsupported.
type UnitFamily string

const (
	FamilyMass    UnitFamily = "mass"
	FamilyVolume  UnitFamily = "volume"
	FamilyCount   UnitFamily = "count"
	FamilyUnknown UnitFamily = "unknown"
)

type unitDef struct {
	family UnitFamily
	toBase float64 // factor to the family base unit: g, ml or each
}

// Converter converts amounts between compatible units using a fixed
// factor table.
type Converter struct {
	units map[string]unitDef
}

// NewConverter creates a converter with the built-in factor table
func NewConverter() *Converter {
	units := map[string]unitDef{
		// Mass, base gram
		"g":         {FamilyMass, 1},
		"gram":      {FamilyMass, 1},
		"grams":     {FamilyMass, 1},
		"kg":        {FamilyMass, 1000},
		"kilogram":  {FamilyMass, 1000},
		"kilograms": {FamilyMass, 1000},
		"mg":        {FamilyMass, 0.001},
		"oz":        {FamilyMass, 28.3495},
		"ounce":     {FamilyMass, 28.3495},
		"ounces":    {FamilyMass, 28.3495},
		"lb":        {FamilyMass, 453.592},
		"lbs":       {FamilyMass, 453.592},
		"pound":     {FamilyMass, 453.592},
		"pounds":    {FamilyMass, 453.592},

		// Volume, base milliliter
		"ml":          {FamilyVolume, 1},
		"milliliter":  {FamilyVolume, 1},
		"milliliters": {FamilyVolume, 1},
		"l":           {FamilyVolume, 1000},
		"liter":       {FamilyVolume, 1000},
		"liters":      {FamilyVolume, 1000},
		"tsp":         {FamilyVolume, 4.92892},
		"teaspoon":    {FamilyVolume, 4.92892},
		"teaspoons":   {FamilyVolume, 4.92892},
		"tbsp":        {FamilyVolume, 14.7868},
		"tablespoon":  {FamilyVolume, 14.7868},
		"tablespoons": {FamilyVolume, 14.7868},
		"cup":         {FamilyVolume, 236.588},
		"cups":        {FamilyVolume, 236.588},
		"fl oz":       {FamilyVolume, 29.5735},
		"pint":        {FamilyVolume, 473.176},
		"pints":       {FamilyVolume, 473.176},
		"quart":       {FamilyVolume, 946.353},
		"quarts":      {FamilyVolume, 946.353},
		"gallon":      {FamilyVolume, 3785.41},
		"gallons":     {FamilyVolume, 3785.41},

		// Count, base each
		"each":   {FamilyCount, 1},
		"piece":  {FamilyCount, 1},
		"pieces": {FamilyCount, 1},
		"pcs":    {FamilyCount, 1},
		"pc":     {FamilyCount, 1},
	}
	return &Converter{units: units}
}

// Family returns the unit's family, or FamilyUnknown for unlisted units
func (c *Converter) Family(unit string) UnitFamily {
	def, ok := c.units[normalizeUnit(unit)]
	if !ok {
		return FamilyUnknown
	}
	return def.family
}

// Compatible reports whether two units convert into each other
func (c *Converter) Compatible(from, to string) bool {
	a, b := c.Family(from), c.Family(to)
	return a != FamilyUnknown && a == b
}

// Convert converts amount from one unit to another within the same family
func (c *Converter) Convert(amount float64, from, to string) (float64, error) {
	if normalizeUnit(from) == normalizeUnit(to) {
		return amount, nil
	}

	fromDef, ok := c.units[normalizeUnit(from)]
	if !ok {
		return 0, ErrUnknownUnit
	}
	toDef, ok := c.units[normalizeUnit(to)]
	if !ok {
		return 0, ErrUnknownUnit
	}
	if fromDef.family != toDef.family {
		return 0, ErrIncompatibleUnits
	}

	return amount * fromDef.toBase / toDef.toBase, nil
}
