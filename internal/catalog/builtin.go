package catalog

// Builtin is the path keyword that selects the compiled-in bright star set
// instead of a file.
const Builtin = "builtin"

// BuiltinStars returns a small catalog of bright stars (J2000) with their
// Bright Star Catalog numbers, enough to draw the builtin constellations.
func BuiltinStars() []StarRecord {
	out := make([]StarRecord, len(builtinStars))
	copy(out, builtinStars)
	return out
}

// BuiltinConstellations returns line lists over BuiltinStars.
func BuiltinConstellations() []ConstellationDef {
	out := make([]ConstellationDef, len(builtinConstellations))
	for i, c := range builtinConstellations {
		out[i] = ConstellationDef{Name: c.Name, Keys: append([]int(nil), c.Keys...)}
	}
	return out
}

// builtinStars is ordered roughly by magnitude (brightest first).
var builtinStars = []StarRecord{
	// Magnitude < 0.5
	{HR: 2491, Name: "Sirius", Vmag: -1.46, RAdeg: 101.287, DecDeg: -16.716},
	{HR: 2326, Name: "Canopus", Vmag: -0.72, RAdeg: 95.988, DecDeg: -52.696},
	{HR: 5340, Name: "Arcturus", Vmag: -0.04, RAdeg: 213.915, DecDeg: 19.182},
	{HR: 7001, Name: "Vega", Vmag: 0.03, RAdeg: 279.235, DecDeg: 38.784},
	{HR: 1708, Name: "Capella", Vmag: 0.08, RAdeg: 79.172, DecDeg: 45.998},
	{HR: 1713, Name: "Rigel", Vmag: 0.12, RAdeg: 78.634, DecDeg: -8.202},
	{HR: 2943, Name: "Procyon", Vmag: 0.38, RAdeg: 114.826, DecDeg: 5.225},
	{HR: 472, Name: "Achernar", Vmag: 0.46, RAdeg: 24.429, DecDeg: -57.237},

	// Magnitude 0.5-1.5
	{HR: 2061, Name: "Betelgeuse", Vmag: 0.50, RAdeg: 88.793, DecDeg: 7.407},
	{HR: 5267, Name: "Hadar", Vmag: 0.61, RAdeg: 210.956, DecDeg: -60.373},
	{HR: 7557, Name: "Altair", Vmag: 0.77, RAdeg: 297.696, DecDeg: 8.868},
	{HR: 4730, Name: "Acrux", Vmag: 0.76, RAdeg: 186.650, DecDeg: -63.099},
	{HR: 1457, Name: "Aldebaran", Vmag: 0.85, RAdeg: 68.980, DecDeg: 16.509},
	{HR: 6134, Name: "Antares", Vmag: 0.96, RAdeg: 247.352, DecDeg: -26.432},
	{HR: 5056, Name: "Spica", Vmag: 0.98, RAdeg: 201.298, DecDeg: -11.161},
	{HR: 2990, Name: "Pollux", Vmag: 1.14, RAdeg: 116.329, DecDeg: 28.026},
	{HR: 8728, Name: "Fomalhaut", Vmag: 1.16, RAdeg: 344.413, DecDeg: -29.622},
	{HR: 7924, Name: "Deneb", Vmag: 1.25, RAdeg: 310.358, DecDeg: 45.280},
	{HR: 4853, Name: "Mimosa", Vmag: 1.25, RAdeg: 191.930, DecDeg: -59.689},
	{HR: 3982, Name: "Regulus", Vmag: 1.35, RAdeg: 152.093, DecDeg: 11.967},
	{HR: 2618, Name: "Adhara", Vmag: 1.50, RAdeg: 104.656, DecDeg: -28.972},

	// Magnitude 1.5-2.5
	{HR: 2891, Name: "Castor", Vmag: 1.58, RAdeg: 113.650, DecDeg: 31.889},
	{HR: 4763, Name: "Gacrux", Vmag: 1.63, RAdeg: 187.791, DecDeg: -57.113},
	{HR: 6527, Name: "Shaula", Vmag: 1.63, RAdeg: 263.402, DecDeg: -37.104},
	{HR: 1790, Name: "Bellatrix", Vmag: 1.64, RAdeg: 81.283, DecDeg: 6.350},
	{HR: 1791, Name: "Elnath", Vmag: 1.65, RAdeg: 81.573, DecDeg: 28.608},
	{HR: 1903, Name: "Alnilam", Vmag: 1.70, RAdeg: 84.053, DecDeg: -1.202},
	{HR: 1948, Name: "Alnitak", Vmag: 1.77, RAdeg: 85.190, DecDeg: -1.943},
	{HR: 4905, Name: "Alioth", Vmag: 1.77, RAdeg: 193.507, DecDeg: 55.960},
	{HR: 4301, Name: "Dubhe", Vmag: 1.79, RAdeg: 165.932, DecDeg: 61.751},
	{HR: 5191, Name: "Alkaid", Vmag: 1.86, RAdeg: 206.885, DecDeg: 49.313},
	{HR: 2421, Name: "Alhena", Vmag: 1.93, RAdeg: 99.428, DecDeg: 16.399},
	{HR: 424, Name: "Polaris", Vmag: 2.02, RAdeg: 37.955, DecDeg: 89.264},
	{HR: 4057, Name: "Algieba", Vmag: 2.01, RAdeg: 154.993, DecDeg: 19.842},
	{HR: 2004, Name: "Saiph", Vmag: 2.06, RAdeg: 86.939, DecDeg: -9.670},
	{HR: 4534, Name: "Denebola", Vmag: 2.14, RAdeg: 177.265, DecDeg: 14.572},
	{HR: 7796, Name: "Sadr", Vmag: 2.20, RAdeg: 305.557, DecDeg: 40.257},
	{HR: 168, Name: "Schedar", Vmag: 2.23, RAdeg: 10.127, DecDeg: 56.537},
	{HR: 1852, Name: "Mintaka", Vmag: 2.23, RAdeg: 83.002, DecDeg: -0.299},
	{HR: 5054, Name: "Mizar", Vmag: 2.27, RAdeg: 200.981, DecDeg: 54.925},
	{HR: 21, Name: "Caph", Vmag: 2.27, RAdeg: 2.295, DecDeg: 59.150},
	{HR: 4295, Name: "Merak", Vmag: 2.37, RAdeg: 165.460, DecDeg: 56.383},
	{HR: 4554, Name: "Phecda", Vmag: 2.44, RAdeg: 178.458, DecDeg: 53.695},
	{HR: 7949, Name: "Gienah Cyg", Vmag: 2.46, RAdeg: 311.553, DecDeg: 33.970},
	{HR: 264, Name: "Gamma Cas", Vmag: 2.47, RAdeg: 14.177, DecDeg: 60.717},

	// Magnitude 2.5+
	{HR: 4357, Name: "Zosma", Vmag: 2.56, RAdeg: 168.527, DecDeg: 20.524},
	{HR: 403, Name: "Ruchbah", Vmag: 2.68, RAdeg: 21.454, DecDeg: 60.235},
	{HR: 4656, Name: "Delta Cru", Vmag: 2.79, RAdeg: 183.786, DecDeg: -58.749},
	{HR: 7528, Name: "Delta Cyg", Vmag: 2.87, RAdeg: 296.244, DecDeg: 45.131},
	{HR: 7417, Name: "Albireo", Vmag: 3.08, RAdeg: 292.680, DecDeg: 27.960},
	{HR: 7178, Name: "Sulafat", Vmag: 3.24, RAdeg: 284.736, DecDeg: 32.690},
	{HR: 4660, Name: "Megrez", Vmag: 3.31, RAdeg: 183.857, DecDeg: 57.033},
	{HR: 542, Name: "Segin", Vmag: 3.38, RAdeg: 28.599, DecDeg: 63.670},
	{HR: 7106, Name: "Sheliak", Vmag: 3.52, RAdeg: 282.520, DecDeg: 33.363},
	{HR: 7139, Name: "Delta2 Lyr", Vmag: 4.30, RAdeg: 283.626, DecDeg: 36.899},
	{HR: 7056, Name: "Zeta1 Lyr", Vmag: 4.36, RAdeg: 281.193, DecDeg: 37.605},
}

var builtinConstellations = []ConstellationDef{
	{Name: "Ori", Keys: []int{2061, 1790, 1852, 1903, 1948, 2004, 1713, 1852}},
	{Name: "UMa", Keys: []int{5191, 5054, 4905, 4660, 4301, 4295, 4554, 4660}},
	{Name: "Cyg", Keys: []int{7924, 7796, 7528, 7796, 7949, 7796, 7417}},
	{Name: "Cas", Keys: []int{21, 168, 264, 403, 542}},
	{Name: "Lyr", Keys: []int{7001, 7056, 7106, 7178, 7139, 7056}},
	{Name: "Cru", Keys: []int{4763, 4853, 4730, 4656, 4763}},
	{Name: "Leo", Keys: []int{3982, 4057, 4357, 4534, 3982}},
	{Name: "Gem", Keys: []int{2990, 2891, 2421}},
}
