package gamedata

// Display names for every map key the Marne servers report, BF1 first, then
// BFV and its event variants. Values mirror the in-game names, casing and all.
var mapDisplayNames = map[string]string{
	"MP_Amiens":       "Amiens",
	"MP_Chateau":      "Ballroom Blitz",
	"MP_Desert":       "Sinai Desert",
	"MP_FaoFortress":  "Fao Fortress",
	"MP_Forest":       "Argonne Forest",
	"MP_ItalianCoast": "Empire's Edge",
	"MP_MountainFort": "Monte Grappa",
	"MP_Scar":         "St Quentin Scar",
	"MP_Suez":         "Suez",
	"MP_Giant":        "Giant's Shadow",
	"MP_Fields":       "Soissons",
	"MP_Graveyard":    "Rupture",
	"MP_Underworld":   "Fort De Vaux",
	"MP_Verdun":       "Verdun Heights",
	"MP_ShovelTown":   "Prise de Tahure",
	"MP_Trench":       "Nivelle Nights",
	"MP_Bridge":       "Brusilov Keep",
	"MP_Islands":      "Albion",
	"MP_Ravines":      "Łupków Pass",
	"MP_Tsaritsyn":    "Tsaritsyn",
	"MP_Valley":       "Galicia",
	"MP_Volga":        "Volga River",
	"MP_Beachhead":    "Cape Helles",
	"MP_Harbor":       "Zeebrugge",
	"MP_Naval":        "Heligoland Bight",
	"MP_Ridge":        "Achi Baba",
	"MP_Alps":         "Razor's Edge",
	"MP_Blitz":        "London Calling",
	"MP_Hell":         "Passchendaele",
	"MP_London":       "London Calling: Scourge",
	"MP_Offensive":    "River Somme",
	"MP_River":        "Caporetto",

	// BFV
	"MP_ArcticFjell":   "Fjell 652",
	"MP_ArcticFjord":   "Narvik",
	"MP_Arras":         "Arras",
	"MP_Devastation":   "Devastation",
	"MP_Escaut":        "twisted steel",
	"MP_Foxhunt":       "Aerodrome",
	"MP_Halfaya":       "Hamada",
	"MP_Rotterdam":     "Rotterdam",
	"MP_Hannut":        "Panzerstorm",
	"MP_Crete":         "Mercury",
	"MP_Kalamas":       "Marita",
	"MP_Provence":      "Provence",
	"MP_SandAndSea":    "Al sudan",
	"MP_Bunker":        "Operation Underground",
	"MP_IwoJima":       "Iwo jima",
	"MP_TropicIslands": "Pacific storm",
	"MP_WakeIsland":    "Wake island",
	"MP_Jungle":        "Solomon islands",
	"MP_Libya":         "Al marj encampment",
	"MP_Norway":        "lofoten islands",

	// BFV special playlists
	"DK_Norway":                  "Halvoy",
	"MP_Escaut_US":               "Twisted Steel US",
	"MP_Hannut_US":               "Panzerstorm US",
	"MP_GOps_Chapter2_Arras":     "Arras (Chapter 2)",
	"MP_WE_Fortress_Devastation": "Devastation (Fortress)",
	"MP_WE_Fortress_Halfaya":     "Hamada (Fortress)",
	"MP_WE_Grind_ArcticFjord":    "Narvik (Grind)",
	"MP_WE_Grind_Devastation":    "Devastation (Grind)",
	"MP_WE_Grind_Escaut":         "Twisted Steel (Grind)",
	"MP_WE_Grind_Rotterdam":      "Rotterdam (Grind)",
}

// Map art served by the gametools CDN. A handful of event variants reuse the
// base map art.
var mapImageURLs = map[string]string{
	"MP_Amiens":       "https://cdn.gametools.network/maps/bf1/MP_Amiens_LandscapeLarge-e195589d.jpg",
	"MP_Chateau":      "https://cdn.gametools.network/maps/bf1/MP_Chateau_LandscapeLarge-244d5987.jpg",
	"MP_Desert":       "https://cdn.gametools.network/maps/bf1/MP_Desert_LandscapeLarge-d8f749da.jpg",
	"MP_FaoFortress":  "https://cdn.gametools.network/maps/bf1/MP_FaoFortress_LandscapeLarge-cad1748e.jpg",
	"MP_Forest":       "https://cdn.gametools.network/maps/bf1/MP_Forest_LandscapeLarge-dfbbe910.jpg",
	"MP_ItalianCoast": "https://cdn.gametools.network/maps/bf1/MP_ItalianCoast_LandscapeLarge-1503eec7.jpg",
	"MP_MountainFort": "https://cdn.gametools.network/maps/bf1/MP_MountainFort_LandscapeLarge-8a517533.jpg",
	"MP_Scar":         "https://cdn.gametools.network/maps/bf1/MP_Scar_LandscapeLarge-ee25fbd6.jpg",
	"MP_Suez":         "https://cdn.gametools.network/maps/bf1/MP_Suez_LandscapeLarge-f630fc76.jpg",
	"MP_Giant":        "https://cdn.gametools.network/maps/bf1/MP_Giant_LandscapeLarge-dd0b93ef.jpg",
	"MP_Fields":       "https://cdn.gametools.network/maps/bf1/MP_Fields_LandscapeLarge-5f53ddc4.jpg",
	"MP_Graveyard":    "https://cdn.gametools.network/maps/bf1/MP_Graveyard_LandscapeLarge-bd1012e6.jpg",
	"MP_Underworld":   "https://cdn.gametools.network/maps/bf1/MP_Underworld_LandscapeLarge-b6c5c7e7.jpg",
	"MP_Verdun":       "https://cdn.gametools.network/maps/bf1/MP_Verdun_LandscapeLarge-1a364063.jpg",
	"MP_ShovelTown":   "https://cdn.gametools.network/maps/bf1/MP_Shoveltown_LandscapeLarge-d0aa5920.jpg",
	"MP_Trench":       "https://cdn.gametools.network/maps/bf1/MP_Trench_LandscapeLarge-dbd1248f.jpg",
	"MP_Bridge":       "https://cdn.gametools.network/maps/bf1/MP_Bridge_LandscapeLarge-5b7f1b62.jpg",
	"MP_Islands":      "https://cdn.gametools.network/maps/bf1/MP_Islands_LandscapeLarge-c9d8272b.jpg",
	"MP_Ravines":      "https://cdn.gametools.network/maps/bf1/MP_Ravines_LandscapeLarge-1fe0d3f6.jpg",
	"MP_Tsaritsyn":    "https://cdn.gametools.network/maps/bf1/MP_Tsaritsyn_LandscapeLarge-2dbd3bf5.jpg",
	"MP_Valley":       "https://cdn.gametools.network/maps/bf1/MP_Valley_LandscapeLarge-8dc1c7ca.jpg",
	"MP_Volga":        "https://cdn.gametools.network/maps/bf1/MP_Volga_LandscapeLarge-6ac49c25.jpg",
	"MP_Beachhead":    "https://cdn.gametools.network/maps/bf1/MP_Beachhead_LandscapeLarge-5a13c655.jpg",
	"MP_Harbor":       "https://cdn.gametools.network/maps/bf1/MP_Harbor_LandscapeLarge-d382c7ea.jpg",
	"MP_Naval":        "https://cdn.gametools.network/maps/bf1/MP_Naval_LandscapeLarge-dc2e8daf.jpg",
	"MP_Ridge":        "https://cdn.gametools.network/maps/bf1/MP_Ridge_LandscapeLarge-8c057a19.jpg",
	"MP_Alps":         "https://cdn.gametools.network/maps/bf1/MP_Alps_LandscapeLarge-7ab30e3e.jpg",
	"MP_Blitz":        "https://cdn.gametools.network/maps/bf1/MP_Blitz_LandscapeLarge-5e26212f.jpg",
	"MP_Hell":         "https://cdn.gametools.network/maps/bf1/MP_Hell_LandscapeLarge-7176911c.jpg",
	"MP_London":       "https://cdn.gametools.network/maps/bf1/MP_London_LandscapeLarge-0b51fe46.jpg",
	"MP_Offensive":    "https://cdn.gametools.network/maps/bf1/MP_Offensive_LandscapeLarge-6dabdea3.jpg",
	"MP_River":        "https://cdn.gametools.network/maps/bf1/MP_River_LandscapeLarge-21443ae9.jpg",

	// BFV
	"MP_ArcticFjell":   "https://cdn.gametools.network/maps/bfv/1080p_MP_ArcticFjell-df3c1290.jpg",
	"MP_ArcticFjord":   "https://cdn.gametools.network/maps/bfv/1080p_MP_ArcticFjord-7ba29138.jpg",
	"MP_Arras":         "https://cdn.gametools.network/maps/bfv/1080p_MP_Arras-4b610505.jpg",
	"MP_Devastation":   "https://cdn.gametools.network/maps/bfv/1080p_MP_Devastation-623dea60.jpg",
	"MP_Escaut":        "https://cdn.gametools.network/maps/bfv/1080p_MP_Escaut-9764d1fb.jpg",
	"MP_Foxhunt":       "https://cdn.gametools.network/maps/bfv/1080p_MP_AfricanFox-8ad380a5.jpg",
	"MP_Halfaya":       "https://cdn.gametools.network/maps/bfv/1080p_MP_AfricanHalfaya-31165f9b.jpg",
	"MP_Rotterdam":     "https://cdn.gametools.network/maps/bfv/1080p_MP_Rotterdam-55632240.jpg",
	"MP_Hannut":        "https://cdn.gametools.network/maps/bfv/1080p_MP_Hannut-ebbe7197.jpg",
	"MP_Crete":         "https://cdn.gametools.network/maps/bfv/1080p_MP_Crete-304a202d.jpg",
	"MP_Kalamas":       "https://cdn.gametools.network/maps/bfv/1080p_MP_Kalamas-c64c8451.jpg",
	"MP_Provence":      "https://cdn.gametools.network/maps/bfv/1080p_MP_ProvenceXL-a950ad3e.jpg",
	"MP_SandAndSea":    "https://cdn.gametools.network/maps/bfv/1080p_MP_SandAndSea-f071e6f7.jpg",
	"MP_Bunker":        "https://cdn.gametools.network/maps/bfv/1080p_MP_Bunker-7b518876.jpg",
	"MP_IwoJima":       "https://cdn.gametools.network/maps/bfv/1080p_MP_IwoJima-760850fc.jpg",
	"MP_TropicIslands": "https://cdn.gametools.network/maps/bfv/1080p_MP_TropicIslands-9e0a41c3.jpg",
	"MP_WakeIsland":    "https://cdn.gametools.network/maps/bfv/1080p_MP_WakeIsland-3238b455.jpg",
	"MP_Jungle":        "https://cdn.gametools.network/maps/bfv/1080p_MP_Jungle-714218ce.jpg",
	"MP_Libya":         "https://cdn.gametools.network/maps/bfv/1080p_MP_Libya-bd54b090.jpg",
	"MP_Norway":        "https://cdn.gametools.network/maps/bfv/1080p_MP_Norway-7d6d6300.jpg",

	// BFV special playlists
	"DK_Norway":                  "https://cdn.gametools.network/maps/bfv/1080p_MP_Norway-7d6d6300.jpg",
	"MP_Escaut_US":               "https://cdn.gametools.network/maps/bfv/1080p_MP_Escaut-9764d1fb.jpg",
	"MP_Hannut_US":               "https://cdn.gametools.network/maps/bfv/1080p_MP_Hannut-ebbe7197.jpg",
	"MP_GOps_Chapter2_Arras":     "https://cdn.gametools.network/maps/bfv/1080p_MP_Arras-4b610505.jpg",
	"MP_WE_Fortress_Devastation": "https://cdn.gametools.network/maps/bfv/1080p_MP_Devastation-623dea60.jpg",
	"MP_WE_Fortress_Halfaya":     "https://cdn.gametools.network/maps/bfv/1080p_MP_AfricanHalfaya-31165f9b.jpg",
	"MP_WE_Grind_ArcticFjord":    "https://cdn.gametools.network/maps/bfv/1080p_MP_ArcticFjord-7ba29138.jpg",
	"MP_WE_Grind_Devastation":    "https://cdn.gametools.network/maps/bfv/1080p_MP_Devastation-623dea60.jpg",
	"MP_WE_Grind_Escaut":         "https://cdn.gametools.network/maps/bfv/1080p_MP_Escaut-9764d1fb.jpg",
	"MP_WE_Grind_Rotterdam":      "https://cdn.gametools.network/maps/bfv/1080p_MP_Rotterdam-55632240.jpg",
}
