package gamedata

// Short codes drawn onto the map art for each game mode.
var modeAbbreviations = map[string]string{
	"Conquest0":          "CQ",
	"Rush0":              "RS",
	"BreakThrough0":      "SO",
	"BreakthroughLarge0": "OP",
	"Possession0":        "WP",
	"TugOfWar0":          "FL",
	"AirAssault0":        "AA",
	"Domination0":        "DM",
	"TeamDeathMatch0":    "TM",
	"ZoneControl0":       "RS",
}
