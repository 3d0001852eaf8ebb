package materials

// builtin is the reference catalog of common materials: name, chemical
// formula and density in g/cm^3. Gas densities are at 0 C and 1 atm.
var builtin = []Material{
	// gases
	{Name: "hydrogen", Formula: "H", Density: 0.0000899},
	{Name: "helium", Formula: "He", Density: 0.0001786},
	{Name: "nitrogen", Formula: "N", Density: 0.00125},
	{Name: "oxygen", Formula: "O", Density: 0.001429},
	{Name: "neon", Formula: "Ne", Density: 0.0009002},
	{Name: "argon", Formula: "Ar", Density: 0.001784},
	{Name: "krypton", Formula: "Kr", Density: 0.003749},
	{Name: "xenon", Formula: "Xe", Density: 0.005894},
	{Name: "air", Formula: "(N2)0.7808(O2)0.2095Ar9.34e-3(CO2)4.1e-4Ne1.82e-5He5.24e-6(CH4)1.8e-6Kr1.0e-6(H2)0.5e-6Xe9.e-8", Density: 0.001225},
	{Name: "methane", Formula: "CH4", Density: 0.000657},
	{Name: "carbon dioxide", Formula: "CO2", Density: 0.001562},
	// solvents
	{Name: "water", Formula: "H2O", Density: 1.0},
	{Name: "ethanol", Formula: "C2H5OH", Density: 0.789},
	{Name: "acetone", Formula: "C3H6O", Density: 0.785},
	{Name: "methanol", Formula: "CH3OH", Density: 0.791},
	{Name: "isopropanol", Formula: "C3H8O", Density: 0.803},
	{Name: "toluene", Formula: "C7H8", Density: 0.867},
	{Name: "xylene", Formula: "C6H4(CH3)2", Density: 0.844},
	{Name: "benzene", Formula: "C6H6", Density: 0.877},
	{Name: "butanol", Formula: "C4H10O", Density: 0.810},
	{Name: "chlorobenzene", Formula: "C6H5Cl", Density: 1.106},
	{Name: "cyclohexane", Formula: "C6H12", Density: 0.774},
	{Name: "dimethyl sulfoxide", Formula: "C2H6OS", Density: 1.09},
	{Name: "ethylene glycol", Formula: "C2H6O2", Density: 1.115},
	{Name: "glycerin", Formula: "C3H8O3", Density: 1.261},
	{Name: "heptane", Formula: "C7H16", Density: 0.684},
	{Name: "hexane", Formula: "C6H14", Density: 0.659},
	// polymers
	{Name: "kapton", Formula: "C22H10N2O5", Density: 1.42},
	{Name: "polyimide", Formula: "C22H10N2O5", Density: 1.42},
	{Name: "polypropylene", Formula: "C3H6", Density: 0.86},
	{Name: "pmma", Formula: "C5H8O2", Density: 1.18},
	{Name: "polycarbonate", Formula: "C16H14O3", Density: 1.2},
	{Name: "kimol", Formula: "C16H14O3", Density: 1.2},
	{Name: "mylar", Formula: "C10H8O4", Density: 1.4},
	{Name: "teflon", Formula: "C2F4", Density: 2.2},
	{Name: "parylene-c", Formula: "C8H7Cl", Density: 1.29},
	{Name: "parylene-n", Formula: "C8H8", Density: 1.11},
	{Name: "peek", Formula: "C19H14O3", Density: 1.32},
	// ceramics & minerals
	{Name: "boron nitride", Formula: "BN", Density: 2.1},
	{Name: "cubic boron nitride", Formula: "BN", Density: 3.45},
	{Name: "silicon nitride", Formula: "Si3N4", Density: 3.17},
	{Name: "yag", Formula: "Y3Al5O12", Density: 4.56},
	{Name: "sapphire", Formula: "Al2O3", Density: 4.0},
	{Name: "ule glass", Formula: "Si0.925Ti0.075O2", Density: 2.205},
	{Name: "zerodur", Formula: "Si0.56Al0.5P0.16Li0.04Ti0.02Zr0.02Zn0.03O2.46", Density: 2.53},
	{Name: "fluorite", Formula: "CaF2", Density: 3.18},
	{Name: "mica", Formula: "KAl3Si3O12H2", Density: 2.83},
	{Name: "fayalite", Formula: "Fe2SiO4", Density: 4.392},
	{Name: "forsterite", Formula: "Mg2SiO4", Density: 3.27},
	{Name: "wustite", Formula: "FeO", Density: 5.7},
	{Name: "salt", Formula: "NaCl", Density: 2.165},
	{Name: "silica", Formula: "SiO2", Density: 2.2},
	{Name: "quartz", Formula: "SiO2", Density: 2.65},
	{Name: "cristobalite", Formula: "SiO2", Density: 2.27},
	{Name: "rutile", Formula: "TiO2", Density: 4.23},
	{Name: "magnesium dioxide", Formula: "MgO", Density: 3.6},
	{Name: "galena", Formula: "PbS", Density: 7.60},
	// semiconductors
	{Name: "cadmium telluride", Formula: "CdTe", Density: 5.85},
	{Name: "gallium arsenide", Formula: "GaAs", Density: 5.318},
	// metals & elements
	{Name: "beryllium copper", Formula: "Cu0.98Be0.02", Density: 8.4},
	{Name: "diamond carbon", Formula: "C", Density: 3.52},
	{Name: "graphite carbon", Formula: "C", Density: 2.23},
	{Name: "beryllium", Formula: "Be", Density: 1.85},
	{Name: "aluminum", Formula: "Al", Density: 2.70},
	{Name: "silicon", Formula: "Si", Density: 2.329},
	{Name: "titanium", Formula: "Ti", Density: 4.506},
	{Name: "chromium", Formula: "Cr", Density: 7.15},
	{Name: "iron", Formula: "Fe", Density: 7.88},
	{Name: "cobalt", Formula: "Co", Density: 8.90},
	{Name: "nickel", Formula: "Ni", Density: 8.908},
	{Name: "copper", Formula: "Cu", Density: 8.96},
	{Name: "zinc", Formula: "Zn", Density: 7.14},
	{Name: "gallium", Formula: "Ga", Density: 5.91},
	{Name: "germanium", Formula: "Ge", Density: 5.323},
	{Name: "molybdenum", Formula: "Mo", Density: 10.28},
	{Name: "ruthenium", Formula: "Ru", Density: 12.45},
	{Name: "rhodium", Formula: "Rh", Density: 12.41},
	{Name: "palladium", Formula: "Pd", Density: 12.02},
	{Name: "silver", Formula: "Ag", Density: 10.49},
	{Name: "indium", Formula: "In", Density: 7.31},
	{Name: "tin", Formula: "Sn", Density: 7.265},
	{Name: "tantalum", Formula: "Ta", Density: 16.69},
	{Name: "tungsten", Formula: "W", Density: 19.25},
	{Name: "rhenium", Formula: "Re", Density: 21.02},
	{Name: "osmium", Formula: "Os", Density: 22.59},
	{Name: "iridium", Formula: "Ir", Density: 22.56},
	{Name: "platinum", Formula: "Pt", Density: 21.45},
	{Name: "gold", Formula: "Au", Density: 19.3},
	{Name: "mercury", Formula: "Hg", Density: 13.534},
	{Name: "lead", Formula: "Pb", Density: 11.34},
	{Name: "bismuth", Formula: "Bi", Density: 9.78},
	{Name: "uranium", Formula: "U", Density: 19.1},
	{Name: "zirconium", Formula: "Zr", Density: 6.5},
}
