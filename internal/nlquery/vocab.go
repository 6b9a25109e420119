package nlquery

// Vocabulary holds the immutable lookup tables the extractors and the intent
// classifier work from. It is loaded once and passed by reference; extractors
// only read it, so one Vocabulary can serve any number of concurrent parses.
type Vocabulary struct {
	// ComponentAliases maps a canonical category to its lexical aliases and
	// abbreviations. Aliases are matched whole-word; plural stems are derived
	// automatically.
	ComponentAliases map[string][]string
	// StockPhrases maps a canonical stock status to the phrases that name it.
	StockPhrases map[string][]string
	// Manufacturers maps a canonical manufacturer name to its aliases.
	Manufacturers map[string][]string
	// ActionVerbs are explicit search verbs ("find", "show", ...).
	ActionVerbs []string
	// VagueTokens trigger the ambiguity penalty regardless of entities found.
	VagueTokens []string
	// CheapWords map to an implicit price ceiling ("cheap", "budget", ...).
	CheapWords []string
	// LocationStopWords end a preposition-guided location capture.
	LocationStopWords []string
}

// DefaultVocabulary returns the built-in vocabulary tables.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		ComponentAliases: map[string][]string{
			"resistor":          {"resistor", "res"},
			"capacitor":         {"capacitor", "cap", "elco", "electrolytic"},
			"inductor":          {"inductor", "coil", "choke"},
			"diode":             {"diode", "zener", "schottky", "rectifier"},
			"transistor":        {"transistor", "mosfet", "bjt", "fet"},
			"ic":                {"ic", "chip", "opamp", "op-amp", "amplifier"},
			"led":               {"led"},
			"connector":         {"connector", "header", "socket", "terminal", "jack", "plug"},
			"switch":            {"switch", "button", "pushbutton"},
			"relay":             {"relay"},
			"crystal":           {"crystal", "xtal", "oscillator", "resonator"},
			"fuse":              {"fuse"},
			"potentiometer":     {"potentiometer", "pot", "trimmer", "trimpot"},
			"sensor":            {"sensor", "thermistor", "photoresistor"},
			"transformer":       {"transformer"},
			"battery":           {"battery", "cell"},
			"microcontroller":   {"microcontroller", "mcu", "micro"},
			"voltage_regulator": {"regulator", "vreg", "ldo"},
			"display":           {"display", "screen", "lcd", "oled"},
		},
		StockPhrases: map[string][]string{
			"low":       {"low stock", "low on stock", "running low", "almost out", "low quantity"},
			"out":       {"out of stock", "no stock", "none left", "depleted", "zero stock"},
			"available": {"in stock", "available", "on hand", "have stock"},
			"unused":    {"unused", "never used"},
			"reorder":   {"need to reorder", "needs reorder", "reorder", "need to order", "to order"},
		},
		Manufacturers: map[string][]string{
			"texas instruments":  {"texas instruments", "ti"},
			"stmicroelectronics": {"stmicroelectronics", "st micro", "stm"},
			"microchip":          {"microchip"},
			"atmel":              {"atmel"},
			"nxp":                {"nxp"},
			"infineon":           {"infineon"},
			"vishay":             {"vishay"},
			"murata":             {"murata"},
			"tdk":                {"tdk"},
			"panasonic":          {"panasonic"},
			"samsung":            {"samsung"},
			"yageo":              {"yageo"},
			"kemet":              {"kemet"},
			"bourns":             {"bourns"},
			"analog devices":     {"analog devices", "adi"},
			"onsemi":             {"onsemi", "on semi"},
			"toshiba":            {"toshiba"},
			"rohm":               {"rohm"},
			"espressif":          {"espressif"},
			"nordic":             {"nordic", "nordic semiconductor"},
		},
		ActionVerbs: []string{"find", "show", "list", "search", "get", "display"},
		VagueTokens: []string{"stuff", "things", "maybe", "something"},
		CheapWords:  []string{"cheap", "affordable", "budget", "inexpensive"},
		LocationStopWords: []string{
			"with", "and", "or", "that", "for", "under", "over", "below",
			"above", "between", "the",
		},
	}
}
