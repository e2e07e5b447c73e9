package travel

// DefaultPools is the eastbound loop around the globe starting from
// Taipei: one pool per round.
//
//	1 East Asia and Oceania
//	2 Pacific and western North America
//	3 eastern North America and South America
//	4 Europe
//	5 Middle East and Africa
//	6 South-East Asia, closing the loop
var DefaultPools = [][]City{
	{
		{
			Name: "Tokyo", Country: "Japan", Latitude: 35.6, Vibe: VibeUrban,
			Description: "Japan's restless capital, where neon streetscapes sit beside quiet shrines. The centre of anime, fashion and world-class food.",
			Landmarks: []Landmark{
				{Name: "Shibuya Crossing", Description: "The busiest pedestrian crossing on earth.", BestAngle: "from above"},
				{Name: "Senso-ji Kaminarimon", Description: "Tokyo's oldest temple and its giant red lantern.", BestAngle: "in front of the gate"},
				{Name: "Tokyo Tower", Description: "The red and white lattice tower of post-war Tokyo.", BestAngle: "Shiba Park"},
				{Name: "Meiji Jingu", Description: "A solemn shrine hidden in a forest.", BestAngle: "under the great torii"},
				{Name: "Kabukicho", Description: "Neon signs of the city that never sleeps.", BestAngle: "below the Godzilla head"},
				{Name: "Tokyo Skytree", Description: "The tallest free-standing broadcast tower in the world.", BestAngle: "across the river"},
			},
		},
		{
			Name: "Kyoto", Country: "Japan", Latitude: 35.0, Vibe: VibeHistoric,
			Description: "The thousand-year capital with thousands of temples and shrines, home of geisha culture and the tea ceremony.",
			Landmarks: []Landmark{
				{Name: "Fushimi Inari Taisha", Description: "Tunnels of vermilion torii gates.", BestAngle: "inside the gate tunnel"},
				{Name: "Kinkaku-ji", Description: "The golden pavilion mirrored in its pond.", BestAngle: "across the pond"},
				{Name: "Kiyomizu-dera", Description: "A wooden stage hanging over the hillside.", BestAngle: "Okunoin terrace"},
				{Name: "Arashiyama Bamboo Grove", Description: "Towering green bamboo paths.", BestAngle: "middle of the path"},
				{Name: "Hanamikoji", Description: "The old Gion street where geiko still walk.", BestAngle: "on the flagstones"},
			},
		},
		{
			Name: "Osaka", Country: "Japan", Latitude: 34.6, Vibe: VibeUrban,
			Description: "Japan's kitchen, loud and friendly, famous for takoyaki, okonomiyaki and the Glico running man.",
			Landmarks: []Landmark{
				{Name: "Dotonbori", Description: "Giant 3D signboards over the canal.", BestAngle: "Ebisu Bridge"},
				{Name: "Osaka Castle", Description: "Toyotomi Hideyoshi's great castle.", BestAngle: "before the keep"},
				{Name: "Shinsekai", Description: "Retro streets around Tsutenkaku tower.", BestAngle: "street level"},
				{Name: "Umeda Sky Building", Description: "An open-air observatory joining two towers.", BestAngle: "the floating garden"},
				{Name: "Kuromon Market", Description: "Osaka's fresh seafood market.", BestAngle: "between the stalls"},
			},
		},
		{
			Name: "Seoul", Country: "South Korea", Latitude: 37.5, Vibe: VibeUrban,
			Description: "A capital of palaces and K-pop, where hanok alleys meet glass towers.",
			Landmarks: []Landmark{
				{Name: "Gyeongbokgung", Description: "The main royal palace of the Joseon dynasty.", BestAngle: "Gwanghwamun gate"},
				{Name: "N Seoul Tower", Description: "Love locks above the city.", BestAngle: "the lock terrace"},
				{Name: "Bukchon Hanok Village", Description: "Traditional houses on a hillside.", BestAngle: "top of the lane"},
				{Name: "Myeongdong", Description: "Street food and cosmetics shops.", BestAngle: "main street at dusk"},
				{Name: "Dongdaemun Design Plaza", Description: "Zaha Hadid's silver curves.", BestAngle: "under the arches"},
			},
		},
		{
			Name: "Busan", Country: "South Korea", Latitude: 35.1, Vibe: VibeBeach,
			Description: "Korea's port city of beaches, hillside villages and seafood markets.",
			Landmarks: []Landmark{
				{Name: "Haeundae Beach", Description: "Korea's most famous beach.", BestAngle: "waterline"},
				{Name: "Gamcheon Culture Village", Description: "Pastel houses stacked on a hill.", BestAngle: "the little prince statue"},
				{Name: "Haedong Yonggungsa", Description: "A temple on the sea cliffs.", BestAngle: "the stone bridge"},
				{Name: "Jagalchi Market", Description: "The largest fish market in Korea.", BestAngle: "harbour side"},
				{Name: "Gwangan Bridge", Description: "A suspension bridge lit up at night.", BestAngle: "Gwangalli beach"},
			},
		},
		{
			Name: "Shanghai", Country: "China", Latitude: 31.2, Vibe: VibeUrban,
			Description: "China's financial capital, colonial boulevards facing a futuristic skyline.",
			Landmarks: []Landmark{
				{Name: "The Bund", Description: "Historic waterfront facing Pudong.", BestAngle: "riverside promenade"},
				{Name: "Oriental Pearl Tower", Description: "Pink spheres on a concrete spine.", BestAngle: "Lujiazui footbridge"},
				{Name: "Yu Garden", Description: "A Ming dynasty classical garden.", BestAngle: "the zigzag bridge"},
				{Name: "Tianzifang", Description: "Art studios in shikumen lanes.", BestAngle: "narrow alley"},
				{Name: "Shanghai Tower", Description: "The twisting second-tallest tower in the world.", BestAngle: "from the base"},
			},
		},
		{
			Name: "Sydney", Country: "Australia", Latitude: -33.8, Vibe: VibeBeach,
			Description: "Harbour city of sails and surf, sunshine and long coastal walks.",
			Landmarks: []Landmark{
				{Name: "Sydney Opera House", Description: "The sail-shaped shells on the harbour.", BestAngle: "Mrs Macquarie's Chair"},
				{Name: "Harbour Bridge", Description: "The coathanger across the harbour.", BestAngle: "Milsons Point"},
				{Name: "Bondi Beach", Description: "Golden sand and the Icebergs pool.", BestAngle: "coastal walk"},
				{Name: "Darling Harbour", Description: "Waterfront dining and fireworks.", BestAngle: "Pyrmont Bridge"},
				{Name: "The Rocks", Description: "Sandstone lanes of the first settlement.", BestAngle: "weekend market"},
			},
		},
		{
			Name: "Melbourne", Country: "Australia", Latitude: -37.8, Vibe: VibeUrban,
			Description: "Australia's cultural capital of laneway cafes, street art and trams.",
			Landmarks: []Landmark{
				{Name: "Hosier Lane", Description: "Walls covered in graffiti.", BestAngle: "middle of the lane"},
				{Name: "Flinders Street Station", Description: "The yellow Edwardian station.", BestAngle: "Federation Square"},
				{Name: "Brighton Bathing Boxes", Description: "Rows of colourful beach huts.", BestAngle: "along the sand"},
				{Name: "Royal Botanic Gardens", Description: "Lakes and lawns in the city.", BestAngle: "the ornamental lake"},
				{Name: "Queen Victoria Market", Description: "A century-old open-air market.", BestAngle: "the deli hall"},
			},
		},
		{
			Name: "Gold Coast", Country: "Australia", Latitude: -28.0, Vibe: VibeBeach,
			Description: "Surf beaches, theme parks and a skyline right on the sand.",
			Landmarks: []Landmark{
				{Name: "Surfers Paradise", Description: "The famous surf beach.", BestAngle: "beach sign"},
				{Name: "SkyPoint Observation Deck", Description: "Views along the whole coast.", BestAngle: "window seat"},
				{Name: "Burleigh Heads", Description: "A headland of pandanus and surf breaks.", BestAngle: "headland lookout"},
				{Name: "Currumbin Wildlife Sanctuary", Description: "Koalas and lorikeets.", BestAngle: "feeding time"},
				{Name: "Springbrook Natural Bridge", Description: "A waterfall through a cave roof.", BestAngle: "inside the cave"},
			},
		},
		{
			Name: "Auckland", Country: "New Zealand", Latitude: -36.8, Vibe: VibeNature,
			Description: "The city of sails, surrounded by volcanic cones and islands.",
			Landmarks: []Landmark{
				{Name: "Sky Tower", Description: "The tallest tower in the southern hemisphere.", BestAngle: "Federal Street"},
				{Name: "Mount Eden", Description: "A grassy volcanic crater.", BestAngle: "crater rim"},
				{Name: "Waiheke Island", Description: "Vineyards and beaches a ferry away.", BestAngle: "vineyard terrace"},
				{Name: "Piha Beach", Description: "Black sand and Lion Rock.", BestAngle: "the lookout"},
				{Name: "Viaduct Harbour", Description: "Yachts and waterfront bars.", BestAngle: "the marina"},
			},
		},
		{
			Name: "Cebu", Country: "Philippines", Latitude: 10.3, Vibe: VibeBeach,
			Description: "Island beaches, whale sharks and the oldest city of the Philippines.",
			Landmarks: []Landmark{
				{Name: "Kawasan Falls", Description: "Turquoise pools in the jungle.", BestAngle: "on the bamboo raft"},
				{Name: "Magellan's Cross", Description: "A cross planted in 1521.", BestAngle: "under the pavilion"},
				{Name: "Oslob", Description: "Swimming with whale sharks.", BestAngle: "underwater"},
				{Name: "Moalboal Sardine Run", Description: "Millions of sardines off the reef.", BestAngle: "snorkelling"},
				{Name: "Temple of Leah", Description: "A Roman-style temple above the city.", BestAngle: "the grand stairs"},
			},
		},
		{
			Name: "Okinawa", Country: "Japan", Latitude: 26.2, Vibe: VibeBeach,
			Description: "Subtropical islands with coral seas and Ryukyu heritage.",
			Landmarks: []Landmark{
				{Name: "Shuri Castle", Description: "The red palace of the Ryukyu kings.", BestAngle: "Shureimon gate"},
				{Name: "Churaumi Aquarium", Description: "Whale sharks in the Kuroshio tank.", BestAngle: "before the big glass"},
				{Name: "Kokusai Street", Description: "Naha's main shopping street.", BestAngle: "under the banners"},
				{Name: "Kouri Bridge", Description: "A long bridge over emerald water.", BestAngle: "island side"},
				{Name: "Cape Manzamo", Description: "An elephant-trunk cliff.", BestAngle: "clifftop trail"},
			},
		},
	},
	{
		{
			Name: "Los Angeles", Country: "United States", Latitude: 34.0, Vibe: VibeBeach,
			Description: "Hollywood glamour, palm trees and endless sunshine.",
			Landmarks: []Landmark{
				{Name: "Hollywood Sign", Description: "The white letters on Mount Lee.", BestAngle: "Griffith Observatory"},
				{Name: "Santa Monica Pier", Description: "The end of Route 66.", BestAngle: "under the ferris wheel"},
				{Name: "Walk of Fame", Description: "Stars along Hollywood Boulevard.", BestAngle: "kneeling by a star"},
				{Name: "Griffith Observatory", Description: "City views from the hills.", BestAngle: "the terrace"},
				{Name: "Venice Beach", Description: "Skate park and boardwalk.", BestAngle: "the boardwalk"},
			},
		},
		{
			Name: "San Francisco", Country: "United States", Latitude: 37.7, Vibe: VibeUrban,
			Description: "Hills, cable cars and fog rolling through the Golden Gate.",
			Landmarks: []Landmark{
				{Name: "Golden Gate Bridge", Description: "The red bridge in the fog.", BestAngle: "Battery Spencer"},
				{Name: "Painted Ladies", Description: "Victorian houses by Alamo Square.", BestAngle: "the park lawn"},
				{Name: "Lombard Street", Description: "The crookedest street.", BestAngle: "top of the hill"},
				{Name: "Fisherman's Wharf", Description: "Sea lions on Pier 39.", BestAngle: "the pier"},
				{Name: "Alcatraz", Description: "The island prison.", BestAngle: "from the ferry"},
			},
		},
		{
			Name: "Las Vegas", Country: "United States", Latitude: 36.1, Vibe: VibeUrban,
			Description: "The neon oasis of the Mojave.",
			Landmarks: []Landmark{
				{Name: "Welcome to Las Vegas Sign", Description: "The classic roadside sign.", BestAngle: "straight on"},
				{Name: "Bellagio Fountains", Description: "Dancing water shows.", BestAngle: "the lake railing"},
				{Name: "Fremont Street", Description: "A canopy of LED light.", BestAngle: "under the canopy"},
				{Name: "The Sphere", Description: "A giant glowing orb.", BestAngle: "across the street"},
				{Name: "Red Rock Canyon", Description: "Red sandstone desert.", BestAngle: "scenic loop"},
			},
		},
		{
			Name: "Seattle", Country: "United States", Latitude: 47.6, Vibe: VibeUrban,
			Description: "The Emerald City of coffee, rain and Mount Rainier.",
			Landmarks: []Landmark{
				{Name: "Space Needle", Description: "The 1962 world's fair tower.", BestAngle: "Kerry Park"},
				{Name: "Pike Place Market", Description: "Flying fish and the first cafe.", BestAngle: "the neon clock"},
				{Name: "Gum Wall", Description: "A wall of colourful gum.", BestAngle: "Post Alley"},
				{Name: "Chihuly Garden and Glass", Description: "Blown glass sculptures.", BestAngle: "the glasshouse"},
				{Name: "Great Wheel", Description: "A ferris wheel on the sound.", BestAngle: "Pier 57"},
			},
		},
		{
			Name: "Vancouver", Country: "Canada", Latitude: 49.2, Vibe: VibeNature,
			Description: "Mountains and ocean meet at a green harbour city.",
			Landmarks: []Landmark{
				{Name: "Stanley Park", Description: "Totem poles and the seawall.", BestAngle: "Brockton Point"},
				{Name: "Capilano Suspension Bridge", Description: "A bridge over a canyon.", BestAngle: "mid-span"},
				{Name: "Gastown Steam Clock", Description: "A whistling steam clock.", BestAngle: "Water Street"},
				{Name: "Granville Island", Description: "Public market and artisans.", BestAngle: "the market dock"},
				{Name: "Grouse Mountain", Description: "City views from the peak.", BestAngle: "the summit"},
			},
		},
		{
			Name: "Banff", Country: "Canada", Latitude: 51.1, Vibe: VibeNature,
			Description: "Turquoise lakes in the heart of the Rockies.",
			Landmarks: []Landmark{
				{Name: "Moraine Lake", Description: "Glacier blue under ten peaks.", BestAngle: "rockpile trail"},
				{Name: "Lake Louise", Description: "An emerald lake below a glacier.", BestAngle: "the shoreline"},
				{Name: "Banff Gondola", Description: "Up Sulphur Mountain.", BestAngle: "the boardwalk"},
				{Name: "Fairmont Banff Springs", Description: "A castle hotel in the mountains.", BestAngle: "Surprise Corner"},
				{Name: "Peyto Lake", Description: "A wolf-head shaped lake.", BestAngle: "the viewpoint"},
			},
		},
		{
			Name: "Honolulu", Country: "United States", Latitude: 21.3, Vibe: VibeBeach,
			Description: "Aloha spirit, surfing and volcanic craters.",
			Landmarks: []Landmark{
				{Name: "Waikiki Beach", Description: "The classic surf beach.", BestAngle: "the Duke statue"},
				{Name: "Diamond Head", Description: "A volcanic crater hike.", BestAngle: "the summit"},
				{Name: "Pearl Harbor", Description: "The USS Arizona memorial.", BestAngle: "the memorial"},
				{Name: "Hanauma Bay", Description: "Snorkelling in a crater bay.", BestAngle: "the overlook"},
				{Name: "Iolani Palace", Description: "The only royal palace in the US.", BestAngle: "front lawn"},
			},
		},
	},
	{
		{
			Name: "New York", Country: "United States", Latitude: 40.7, Vibe: VibeUrban,
			Description: "The city that never sleeps, skyscrapers and Broadway lights.",
			Landmarks: []Landmark{
				{Name: "Times Square", Description: "Billboards and crowds.", BestAngle: "the red steps"},
				{Name: "Statue of Liberty", Description: "Liberty enlightening the world.", BestAngle: "from the ferry"},
				{Name: "Central Park", Description: "The green heart of Manhattan.", BestAngle: "Bow Bridge"},
				{Name: "Brooklyn Bridge", Description: "Gothic arches over the East River.", BestAngle: "the walkway"},
				{Name: "DUMBO", Description: "Manhattan Bridge framed by brick.", BestAngle: "Washington Street"},
			},
		},
		{
			Name: "Toronto", Country: "Canada", Latitude: 43.6, Vibe: VibeUrban,
			Description: "A multicultural lakeside city.",
			Landmarks: []Landmark{
				{Name: "CN Tower", Description: "A needle over Lake Ontario.", BestAngle: "the glass floor"},
				{Name: "Niagara Falls", Description: "The thundering Horseshoe Falls.", BestAngle: "the boat"},
				{Name: "Casa Loma", Description: "A castle in the city.", BestAngle: "the gardens"},
				{Name: "Distillery District", Description: "Victorian industrial lanes.", BestAngle: "the cobblestones"},
				{Name: "Toronto Sign", Description: "Letters at Nathan Phillips Square.", BestAngle: "straight on"},
			},
		},
		{
			Name: "Mexico City", Country: "Mexico", Latitude: 19.4, Vibe: VibeHistoric,
			Description: "Aztec ruins, colonial plazas and murals.",
			Landmarks: []Landmark{
				{Name: "Teotihuacan", Description: "The pyramids of the sun and moon.", BestAngle: "Avenue of the Dead"},
				{Name: "Palacio de Bellas Artes", Description: "White marble and art nouveau.", BestAngle: "Alameda Park"},
				{Name: "Frida Kahlo Museum", Description: "The blue house.", BestAngle: "the courtyard"},
				{Name: "Zocalo", Description: "One of the largest plazas on earth.", BestAngle: "the cathedral"},
				{Name: "Xochimilco", Description: "Painted trajinera boats.", BestAngle: "on board"},
			},
		},
		{
			Name: "Cancun", Country: "Mexico", Latitude: 21.1, Vibe: VibeBeach,
			Description: "Caribbean beaches and Maya ruins.",
			Landmarks: []Landmark{
				{Name: "Chichen Itza", Description: "The pyramid of Kukulcan.", BestAngle: "the great plaza"},
				{Name: "Tulum Ruins", Description: "A Maya city above the sea.", BestAngle: "the cliff"},
				{Name: "Isla Mujeres", Description: "Calm turquoise water.", BestAngle: "Playa Norte"},
				{Name: "Cenote Ik Kil", Description: "A sinkhole pool with vines.", BestAngle: "the stairs"},
				{Name: "Playa Delfines", Description: "The Cancun sign on the beach.", BestAngle: "the sign"},
			},
		},
		{
			Name: "Rio de Janeiro", Country: "Brazil", Latitude: -22.9, Vibe: VibeBeach,
			Description: "Samba, beaches and mountains rising from the bay.",
			Landmarks: []Landmark{
				{Name: "Christ the Redeemer", Description: "Arms open over the city.", BestAngle: "the base"},
				{Name: "Sugarloaf Mountain", Description: "A cable car above the bay.", BestAngle: "the cable car"},
				{Name: "Copacabana", Description: "The wave-patterned promenade.", BestAngle: "the promenade"},
				{Name: "Selaron Steps", Description: "Tiled stairs in every colour.", BestAngle: "halfway up"},
				{Name: "Ipanema", Description: "Sunset at Arpoador.", BestAngle: "the rock"},
			},
		},
		{
			Name: "Cusco", Country: "Peru", Latitude: -13.5, Vibe: VibeHistoric,
			Description: "The old Inca capital and gateway to Machu Picchu.",
			Landmarks: []Landmark{
				{Name: "Machu Picchu", Description: "The lost city of the Incas.", BestAngle: "the guardhouse"},
				{Name: "Rainbow Mountain", Description: "Striped mineral slopes.", BestAngle: "the ridge"},
				{Name: "Plaza de Armas", Description: "The colonial heart of Cusco.", BestAngle: "the cathedral steps"},
				{Name: "Sacsayhuaman", Description: "Giant fitted stone walls.", BestAngle: "the zigzag wall"},
				{Name: "Sacred Valley", Description: "Terraces along the Urubamba.", BestAngle: "Moray"},
			},
		},
		{
			Name: "Buenos Aires", Country: "Argentina", Latitude: -34.6, Vibe: VibeUrban,
			Description: "The Paris of South America and home of tango.",
			Landmarks: []Landmark{
				{Name: "La Boca Caminito", Description: "Painted tin houses.", BestAngle: "the alley"},
				{Name: "Obelisco", Description: "On the widest avenue in the world.", BestAngle: "9 de Julio"},
				{Name: "Recoleta Cemetery", Description: "A city of marble tombs.", BestAngle: "the main avenue"},
				{Name: "Teatro Colon", Description: "A legendary opera house.", BestAngle: "the grand hall"},
				{Name: "Puerto Madero", Description: "The Woman's Bridge.", BestAngle: "the docks"},
			},
		},
	},
	{
		{
			Name: "London", Country: "United Kingdom", Latitude: 51.5, Vibe: VibeCold,
			Description: "Royal history, red buses and afternoon tea.",
			Landmarks: []Landmark{
				{Name: "Big Ben", Description: "The clock tower on the Thames.", BestAngle: "Westminster Bridge"},
				{Name: "Tower Bridge", Description: "The Victorian bascule bridge.", BestAngle: "the south bank"},
				{Name: "Buckingham Palace", Description: "The changing of the guard.", BestAngle: "the Victoria Memorial"},
				{Name: "London Eye", Description: "The giant wheel on the river.", BestAngle: "the embankment"},
				{Name: "Platform 9 3/4", Description: "A trolley in the wall.", BestAngle: "King's Cross"},
			},
		},
		{
			Name: "Paris", Country: "France", Latitude: 48.8, Vibe: VibeUrban,
			Description: "The city of light, art and romance.",
			Landmarks: []Landmark{
				{Name: "Eiffel Tower", Description: "The iron lady.", BestAngle: "Trocadero"},
				{Name: "Louvre Pyramid", Description: "Glass over the old palace.", BestAngle: "the courtyard"},
				{Name: "Arc de Triomphe", Description: "At the head of the Champs-Elysees.", BestAngle: "the avenue"},
				{Name: "Montmartre", Description: "Sacre-Coeur and the artists' square.", BestAngle: "the steps"},
				{Name: "Seine Riverside", Description: "Bouquinistes along the river.", BestAngle: "Pont Neuf"},
			},
		},
		{
			Name: "Rome", Country: "Italy", Latitude: 41.9, Vibe: VibeHistoric,
			Description: "The eternal city, an open-air museum.",
			Landmarks: []Landmark{
				{Name: "Colosseum", Description: "The great amphitheatre.", BestAngle: "Via dei Fori Imperiali"},
				{Name: "Trevi Fountain", Description: "Toss a coin to return.", BestAngle: "the basin"},
				{Name: "Pantheon", Description: "The unsupported concrete dome.", BestAngle: "the portico"},
				{Name: "Spanish Steps", Description: "The baroque staircase.", BestAngle: "the top"},
				{Name: "St Peter's Square", Description: "Bernini's colonnade.", BestAngle: "the obelisk"},
			},
		},
		{
			Name: "Barcelona", Country: "Spain", Latitude: 41.3, Vibe: VibeUrban,
			Description: "Gaudi's city on the Mediterranean.",
			Landmarks: []Landmark{
				{Name: "Sagrada Familia", Description: "Gaudi's unfinished basilica.", BestAngle: "the pond"},
				{Name: "Park Guell", Description: "Mosaic terraces and the salamander.", BestAngle: "the bench"},
				{Name: "Casa Batllo", Description: "The house of bones.", BestAngle: "Passeig de Gracia"},
				{Name: "La Rambla", Description: "The city's famous boulevard.", BestAngle: "La Boqueria"},
				{Name: "Barceloneta", Description: "The city beach.", BestAngle: "the sand"},
			},
		},
		{
			Name: "Reykjavik", Country: "Iceland", Latitude: 64.1, Vibe: VibeCold,
			Description: "Northern lights, glaciers and geysers.",
			Landmarks: []Landmark{
				{Name: "Hallgrimskirkja", Description: "A church like basalt columns.", BestAngle: "the square"},
				{Name: "Blue Lagoon", Description: "Milky geothermal water.", BestAngle: "in the water"},
				{Name: "Sun Voyager", Description: "A steel Viking ship.", BestAngle: "the seafront"},
				{Name: "Harpa", Description: "A glass concert hall.", BestAngle: "the harbour"},
				{Name: "Strokkur Geyser", Description: "An erupting geyser.", BestAngle: "the rope line"},
			},
		},
		{
			Name: "Amsterdam", Country: "Netherlands", Latitude: 52.3, Vibe: VibeUrban,
			Description: "Canals, bicycles and gabled houses.",
			Landmarks: []Landmark{
				{Name: "Canal Ring", Description: "Houseboats and bridges.", BestAngle: "a canal bridge"},
				{Name: "Rijksmuseum", Description: "Dutch masters.", BestAngle: "the arcade"},
				{Name: "Anne Frank House", Description: "The secret annex.", BestAngle: "Prinsengracht"},
				{Name: "Zaanse Schans", Description: "Working windmills.", BestAngle: "the riverbank"},
				{Name: "Dam Square", Description: "The royal palace square.", BestAngle: "the monument"},
			},
		},
		{
			Name: "Santorini", Country: "Greece", Latitude: 36.3, Vibe: VibeBeach,
			Description: "White houses and blue domes above the caldera.",
			Landmarks: []Landmark{
				{Name: "Oia Blue Domes", Description: "The postcard churches.", BestAngle: "the rooftop path"},
				{Name: "Oia Sunset", Description: "The famous sunset.", BestAngle: "the castle ruins"},
				{Name: "Red Beach", Description: "Red volcanic cliffs.", BestAngle: "the trail"},
				{Name: "Fira", Description: "The clifftop capital.", BestAngle: "the caldera path"},
				{Name: "Amoudi Bay", Description: "A tiny fishing harbour.", BestAngle: "the waterfront"},
			},
		},
	},
	{
		{
			Name: "Cairo", Country: "Egypt", Latitude: 30.0, Vibe: VibeHistoric,
			Description: "Gateway to the pyramids on the Nile.",
			Landmarks: []Landmark{
				{Name: "Pyramids of Giza", Description: "The last ancient wonder.", BestAngle: "the panorama point"},
				{Name: "Great Sphinx", Description: "The guardian of the plateau.", BestAngle: "the valley temple"},
				{Name: "Egyptian Museum", Description: "Tutankhamun's treasures.", BestAngle: "the atrium"},
				{Name: "Khan el-Khalili", Description: "The old bazaar.", BestAngle: "the lantern stalls"},
				{Name: "Nile Felucca", Description: "Sailing at sunset.", BestAngle: "on deck"},
			},
		},
		{
			Name: "Dubai", Country: "United Arab Emirates", Latitude: 25.2, Vibe: VibeDesert,
			Description: "Record-breaking towers rising from the desert.",
			Landmarks: []Landmark{
				{Name: "Burj Khalifa", Description: "The tallest building in the world.", BestAngle: "the fountain lake"},
				{Name: "Burj Al Arab", Description: "The sail-shaped hotel.", BestAngle: "Jumeirah beach"},
				{Name: "Dubai Frame", Description: "A giant golden frame.", BestAngle: "Zabeel Park"},
				{Name: "Desert Safari", Description: "Dunes at sunset.", BestAngle: "the dune crest"},
				{Name: "Museum of the Future", Description: "A ring inscribed in calligraphy.", BestAngle: "Sheikh Zayed Road"},
			},
		},
		{
			Name: "Istanbul", Country: "Turkey", Latitude: 41.0, Vibe: VibeHistoric,
			Description: "Where Europe meets Asia on the Bosphorus.",
			Landmarks: []Landmark{
				{Name: "Hagia Sophia", Description: "Fifteen centuries under one dome.", BestAngle: "Sultanahmet Park"},
				{Name: "Blue Mosque", Description: "Six minarets and blue tiles.", BestAngle: "the courtyard"},
				{Name: "Grand Bazaar", Description: "Thousands of shops under vaults.", BestAngle: "the lamp stalls"},
				{Name: "Galata Tower", Description: "A medieval stone tower.", BestAngle: "the cobbled street"},
				{Name: "Bosphorus Cruise", Description: "Between two continents.", BestAngle: "the bow"},
			},
		},
		{
			Name: "Petra", Country: "Jordan", Latitude: 30.3, Vibe: VibeDesert,
			Description: "The rose-red city carved into rock.",
			Landmarks: []Landmark{
				{Name: "Al-Khazneh", Description: "The Treasury facade.", BestAngle: "the end of the Siq"},
				{Name: "The Siq", Description: "A narrow canyon entrance.", BestAngle: "inside the canyon"},
				{Name: "Ad Deir", Description: "The Monastery on the mountain.", BestAngle: "the opposite ledge"},
				{Name: "Royal Tombs", Description: "Tombs in coloured stone.", BestAngle: "the stairs"},
				{Name: "Wadi Rum", Description: "Martian red desert.", BestAngle: "the dunes"},
			},
		},
		{
			Name: "Cape Town", Country: "South Africa", Latitude: -33.9, Vibe: VibeNature,
			Description: "Table Mountain over two oceans.",
			Landmarks: []Landmark{
				{Name: "Table Mountain", Description: "The flat-topped mountain.", BestAngle: "the cable car"},
				{Name: "Bo-Kaap", Description: "Brightly painted houses.", BestAngle: "Wale Street"},
				{Name: "Boulders Beach", Description: "African penguins.", BestAngle: "the boardwalk"},
				{Name: "Cape of Good Hope", Description: "The south-western tip of Africa.", BestAngle: "the sign"},
				{Name: "V&A Waterfront", Description: "Harbour views of the mountain.", BestAngle: "the wheel"},
			},
		},
		{
			Name: "Marrakech", Country: "Morocco", Latitude: 31.6, Vibe: VibeDesert,
			Description: "The red city of souks and riads.",
			Landmarks: []Landmark{
				{Name: "Jemaa el-Fnaa", Description: "The square of storytellers.", BestAngle: "a rooftop cafe"},
				{Name: "Majorelle Garden", Description: "Cobalt blue villa and cacti.", BestAngle: "the villa"},
				{Name: "Koutoubia Mosque", Description: "The great minaret.", BestAngle: "the gardens"},
				{Name: "Bahia Palace", Description: "Carved cedar and zellige.", BestAngle: "the courtyard"},
				{Name: "Agafay Desert", Description: "Stony desert near the Atlas.", BestAngle: "the camp"},
			},
		},
	},
	{
		{
			Name: "Bangkok", Country: "Thailand", Latitude: 13.7, Vibe: VibeUrban,
			Description: "Golden temples, street food and river life.",
			Landmarks: []Landmark{
				{Name: "Grand Palace", Description: "The glittering royal palace.", BestAngle: "the main gate"},
				{Name: "Wat Arun", Description: "The temple of dawn.", BestAngle: "across the river"},
				{Name: "Wat Pho", Description: "The reclining Buddha.", BestAngle: "the feet"},
				{Name: "Chatuchak Market", Description: "A giant weekend market.", BestAngle: "the clock tower"},
				{Name: "Khao San Road", Description: "Backpacker street.", BestAngle: "the street at night"},
			},
		},
		{
			Name: "Singapore", Country: "Singapore", Latitude: 1.3, Vibe: VibeUrban,
			Description: "A garden city of futuristic skylines.",
			Landmarks: []Landmark{
				{Name: "Marina Bay Sands", Description: "The ship on three towers.", BestAngle: "the Merlion park"},
				{Name: "Gardens by the Bay", Description: "The supertree grove.", BestAngle: "the skyway"},
				{Name: "Merlion", Description: "Half lion, half fish.", BestAngle: "the promenade"},
				{Name: "Jewel Changi", Description: "An indoor waterfall.", BestAngle: "the forest valley"},
				{Name: "Chinatown", Description: "Shophouses and temples.", BestAngle: "Pagoda Street"},
			},
		},
		{
			Name: "Hong Kong", Country: "China", Latitude: 22.3, Vibe: VibeUrban,
			Description: "The pearl of the orient and its harbour skyline.",
			Landmarks: []Landmark{
				{Name: "Victoria Peak", Description: "The famous skyline view.", BestAngle: "Sky Terrace"},
				{Name: "Avenue of Stars", Description: "Harbour promenade.", BestAngle: "the Bruce Lee statue"},
				{Name: "Star Ferry", Description: "Crossing Victoria Harbour.", BestAngle: "the upper deck"},
				{Name: "Temple Street", Description: "Night market food.", BestAngle: "the gate"},
				{Name: "Tian Tan Buddha", Description: "The giant bronze Buddha.", BestAngle: "the stairs"},
			},
		},
		{
			Name: "Chiang Mai", Country: "Thailand", Latitude: 18.7, Vibe: VibeHistoric,
			Description: "Temples in the northern hills.",
			Landmarks: []Landmark{
				{Name: "Doi Suthep", Description: "A golden mountaintop temple.", BestAngle: "the naga stairs"},
				{Name: "Old City Walls", Description: "Tha Phae Gate.", BestAngle: "the gate"},
				{Name: "Wat Chedi Luang", Description: "A ruined great chedi.", BestAngle: "the elephant steps"},
				{Name: "Night Bazaar", Description: "Crafts and street food.", BestAngle: "the lanterns"},
				{Name: "Elephant Nature Park", Description: "A rescue sanctuary.", BestAngle: "the river"},
			},
		},
		{
			Name: "Ho Chi Minh City", Country: "Vietnam", Latitude: 10.8, Vibe: VibeUrban,
			Description: "Motorbikes, French architecture and pho.",
			Landmarks: []Landmark{
				{Name: "Notre-Dame Cathedral", Description: "Red brick from Marseille.", BestAngle: "the square"},
				{Name: "Central Post Office", Description: "A grand colonial hall.", BestAngle: "the main hall"},
				{Name: "Ben Thanh Market", Description: "The old central market.", BestAngle: "the clock gate"},
				{Name: "Bitexco Tower", Description: "The lotus-shaped tower.", BestAngle: "the skydeck"},
				{Name: "Cu Chi Tunnels", Description: "Wartime tunnels.", BestAngle: "a tunnel entrance"},
			},
		},
		{
			Name: "Kuala Lumpur", Country: "Malaysia", Latitude: 3.1, Vibe: VibeUrban,
			Description: "Twin towers and Malay, Chinese and Indian culture.",
			Landmarks: []Landmark{
				{Name: "Petronas Towers", Description: "The twin towers.", BestAngle: "KLCC Park"},
				{Name: "Batu Caves", Description: "Rainbow stairs into a cave.", BestAngle: "the stairs"},
				{Name: "Merdeka Square", Description: "Independence square.", BestAngle: "the flagpole"},
				{Name: "Jalan Alor", Description: "A street food lane.", BestAngle: "the lanterns"},
				{Name: "KL Tower", Description: "The sky box.", BestAngle: "the glass box"},
			},
		},
	},
}

// FindCity looks up a city by exact name across all pools.
func FindCity(pools [][]City, name string) (City, bool) {
	for _, pool := range pools {
		for _, c := range pool {
			if c.Name == name {
				return c, true
			}
		}
	}
	return City{}, false
}
