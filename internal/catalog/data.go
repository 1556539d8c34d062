package catalog

type seedRestaurant struct {
	name        string
	description string
	cuisine     string
	priceRange  string
	imageURL    string
}

type seedSite struct {
	name        string
	description string
	ticketPrice string
	imageURL    string
}

type seedDestination struct {
	name        string
	slug        string
	description string
	image       string
	restaurants []seedRestaurant
	sites       []seedSite
}

type seedCountry struct {
	name         string
	slug         string
	description  string
	heroImage    string
	continent    string
	destinations []seedDestination
}

func photo(id string) string {
	return "https://images.unsplash.com/photo-" + id + "?w=400&h=400&fit=crop&q=80"
}

func hero(id string) string {
	return "https://images.unsplash.com/photo-" + id + "?w=800&h=600&fit=crop&q=80"
}

var seedCountries = []seedCountry{
	{
		name:        "Italy",
		slug:        "italy",
		description: "A culinary paradise known for its rich history, art, and diverse regional cuisines.",
		heroImage:   "/images/ITALY.jpg",
		continent:   "Europe",
		destinations: []seedDestination{
			{
				name:        "Rome",
				slug:        "rome",
				description: "The Eternal City, famous for ancient ruins and Carbonara.",
				image:       "/images/ROME.jpg",
				restaurants: []seedRestaurant{
					{"Roscioli Salumeria", "Famous for Carbonara.", "Roman", "$$$", "/images/Roscioli Salumeria.jpg"},
					{"Da Enzo al 29", "Classic Trattoria.", "Italian", "$$", "/images/Da Enzo al 29.jpg"},
					{"La Pergola", "3-Michelin star dining.", "Fine Dining", "$$$$", "/images/La Pergola.jpg"},
					{"Pizzarium Bonci", "Best pizza al taglio.", "Pizza", "$$", "/images/Pizzarium Bonci.jpg"},
					{"Tonnarello", "Hearty pastas.", "Italian", "$$", "/images/Tonnarello.jpg"},
				},
				sites: []seedSite{
					{"Colosseum", "Ancient amphitheater.", "€16", "/images/Colosseum.jpg"},
					{"Pantheon", "Former Roman temple.", "Free", "/images/Pantheon.jpg"},
					{"Vatican Museums", "Art collection.", "€17", "/images/Vatican Museums.jpg"},
					{"Trevi Fountain", "Baroque fountain.", "Free", "/images/Trevi Fountain.jpg"},
					{"Roman Forum", "Plaza surrounded by ruins.", "Incl. Colosseum", "/images/Roman Forum.jpg"},
				},
			},
			{
				name:        "Venice",
				slug:        "venice",
				description: "The City of Canals, famous for gondolas and Renaissance art.",
				image:       "/images/Venice.jpg",
				restaurants: []seedRestaurant{
					{"Antiche Carampane", "Traditional Venetian seafood.", "Seafood", "$$$", "/images/Antiche Carampane.jpg"},
					{"Da Fiore", "Michelin-starred classics.", "Fine Dining", "$$$$", "/images/Da Fiore.jpg"},
					{"Osteria da Rioba", "Modern Italian cuisine.", "Italian", "$$$", "/images/osteria dei binari.jpg"},
					{"Al Covo", "Venetian specialties.", "Regional", "$$$", "/images/al covo.jpg"},
					{"Trattoria al Pont de Vio", "Casual neighborhood eatery.", "Italian", "$$", "/images/Trattoria al Pont de Vio.jpg"},
				},
				sites: []seedSite{
					{"St. Mark's Basilica", "Byzantine-style cathedral.", "€5", "/images/St. Mark's Basilica.jpg"},
					{"Doge's Palace", "Historic residence of Venetian rulers.", "€28", "/images/Doge's Palace.jpg"},
					{"Grand Canal", "Main waterway through Venice.", "Free", "/images/Grand Canal.jpg"},
					{"Basilica di Santa Maria della Salute", "Renaissance religious edifice.", "€4", "/images/Basilica di Santa Maria della Salute.jpg"},
					{"Rialto Bridge", "Iconic stone bridge.", "Free", "/images/Rialto Bridge.jpg"},
				},
			},
			{
				name:        "Florence",
				slug:        "florence",
				description: "The Renaissance heart of Italy, home to masterpieces and innovation.",
				image:       hero("1506905925346-21bda4d32df4"),
				restaurants: []seedRestaurant{
					{"Enoteca Pinchiorri", "Michelin 2-star fine dining.", "Fine Dining", "$$$$", photo("1621996346565-e3dbc646d9a9")},
					{"Alloro", "Contemporary Tuscan.", "Tuscan", "$$$", photo("1544025162-d76694265947")},
					{"Trattoria da Mariano", "Authentic Florentine ribollita.", "Tuscan", "$$", photo("1612874742237-415ba2fe9c32")},
					{"Il Latini", "Family-style bistro.", "Italian", "$$", photo("1571407970349-bc65e05b2c90")},
					{"Cibreo", "Chef Fabrizio's Tuscan delights.", "Tuscan", "$$$", photo("1546069901-ba9599a7e63c")},
				},
				sites: []seedSite{
					{"Florence Cathedral (Duomo)", "Magnificent Renaissance dome.", "€30", photo("1506905925346-21bda4d32df4")},
					{"Uffizi Gallery", "World-class art museum.", "€12", photo("1551801526-becf464a6a77")},
					{"Accademia Gallery", "Home of Michelangelo's David.", "€12.50", photo("1578926078328-123f5474f46b")},
					{"Ponte Vecchio", "Historic bridge with shops.", "Free", photo("1489749798305-4fea3ba63d60")},
					{"Palazzo Pitti", "Grand Renaissance palace.", "€13", photo("1516565058933-aa282ef429c6")},
				},
			},
			{
				name:        "Milan",
				slug:        "milan",
				description: "Modern Italy's fashion and design capital with Gothic grandeur.",
				image:       hero("1568448069627-82a28b988ebd"),
				restaurants: []seedRestaurant{
					{"Cracco", "Michelin-starred gastronomy.", "Fine Dining", "$$$$", photo("1571407970349-bc65e05b2c90")},
					{"Da Giacomo", "Fresh seafood and classics.", "Seafood", "$$$", photo("1621996346565-e3dbc646d9a9")},
					{"Al Matarel", "Milanese tradition at its best.", "Milanese", "$$", photo("1604068549290-dea0e4a305ca")},
					{"Ristorante Gino Sorbillo", "Famous Neapolitan pizza.", "Pizza", "$$", photo("1612874742237-415ba2fe9c32")},
					{"Armani/Ristorante", "High fashion dining.", "Fine Dining", "$$$", photo("1546069901-ba9599a7e63c")},
				},
				sites: []seedSite{
					{"Milan Cathedral (Duomo)", "Stunning Gothic architecture.", "€3", photo("1568448069627-82a28b988ebd")},
					{"The Last Supper (Santa Maria delle Grazie)", "Leonardo da Vinci's masterpiece.", "€15", photo("1578926078328-123f5474f46b")},
					{"Sforza Castle", "Renaissance fortress.", "€5", photo("1540959375944-7049f642e9a4")},
					{"Galleria Vittorio Emanuele II", "Historic shopping arcade.", "Free", photo("1504674900247-0877df9cc836")},
					{"La Scala", "World-renowned opera house.", "€20", photo("1507003211169-0a1dd7228f2d")},
				},
			},
		},
	},
	{
		name:        "Japan",
		slug:        "japan",
		description: "A blend of ancient traditions and cutting-edge modernity with world-class food.",
		heroImage:   hero("1522383150241-6c328020254e"),
		continent:   "Asia",
		destinations: []seedDestination{
			{
				name:        "Tokyo",
				slug:        "tokyo",
				description: "The bustling capital, a dynamic mix of neon-lit skyscrapers and serene temples.",
				image:       hero("1528164344705-47542687c6f1"),
				restaurants: []seedRestaurant{
					{"Sukiyabashi Jiro", "Legendary Sushi.", "Sushi", "$$$$", photo("1579584425555-c3ce17fd4351")},
					{"Ichiran Ramen", "Famous Tonkotsu Ramen.", "Ramen", "$", photo("1634193295627-1cdddf751ebf")},
					{"Tempura Kondo", "High-end Tempura.", "Tempura", "$$$", photo("1582869352990-8446075eaf18")},
					{"Yakitori Torishiki", "Grilled chicken skewers.", "Yakitori", "$$$", photo("1546069901-ba9599a7e63c")},
					{"Afuri", "Yuzu Shio Ramen.", "Ramen", "$", photo("1512621776951-a57141f2eefd")},
				},
				sites: []seedSite{
					{"Senso-ji", "Ancient Buddhist temple.", "Free", photo("1727875074814-66b1a25be58a")},
					{"Tokyo Skytree", "Broadcasting tower.", "¥3000", photo("1528164344705-47542687c6f1")},
					{"Meiji Shrine", "Shinto shrine.", "Free", photo("1520434620097-ad8e85ff58dd")},
					{"Shibuya Crossing", "Famous scramble crossing.", "Free", photo("1542051841857-5f90071e7989")},
					{"TeamLab Planets", "Digital art museum.", "¥3200", photo("1531259683007-016451deb5e2")},
				},
			},
			{
				name:        "Kyoto",
				slug:        "kyoto",
				description: "Ancient capital preserving Japan's traditional culture and temples.",
				image:       hero("1522383150241-6c328020254e"),
				restaurants: []seedRestaurant{
					{"Gion Tanto", "Kaiseki cuisine.", "Kaiseki", "$$$$", photo("1546069901-ba9599a7e63c")},
					{"Okutan Kappa Zushi", "Tofu specialties.", "Vegetarian", "$$$", photo("1512621776951-a57141f2eefd")},
					{"Hyotei", "Traditional Japanese.", "Japanese", "$$$", photo("1579584425555-c3ce17fd4351")},
					{"Gion Kappa Zushi", "Sushi restaurant.", "Sushi", "$$$", photo("1634193295627-1cdddf751ebf")},
					{"Chaseki", "Tea house cuisine.", "Fusion", "$$", photo("1582869352990-8446075eaf18")},
				},
				sites: []seedSite{
					{"Fushimi Inari Shrine", "Famous torii gates.", "Free", photo("1522383150241-6c328020254e")},
					{"Arashiyama Bamboo Grove", "Scenic bamboo forest.", "Free", photo("1495521821757-a1efb6729352")},
					{"Kinkaku-ji", "Golden Pavilion.", "¥400", photo("1506905925346-21bda4d32df4")},
					{"Gion District", "Historic geisha district.", "Free", photo("1488646953014-85cb44e25828")},
					{"Kiyomizu-dera", "Historic Buddhist temple.", "¥400", photo("1537799943893-52c29a11a46e")},
				},
			},
		},
	},
	{
		name:        "Mexico",
		slug:        "mexico",
		description: "Vibrant culture, ancient ruins, and spicy, flavorful cuisine.",
		heroImage:   hero("1535139262971-187ea590bd0d"),
		continent:   "North America",
		destinations: []seedDestination{
			{
				name:        "Mexico City",
				slug:        "mexico-city",
				description: "A high-altitude, densely populated capital with incredible food scene.",
				image:       hero("1469854523086-cc02fe5d8800"),
				restaurants: []seedRestaurant{
					{"Pujol", "Modern Mexican.", "Mexican", "$$$$", photo("1565299585323-38d6b0865b47")},
					{"Contramar", "Seafood tostadas.", "Seafood", "$$$", photo("1555939594-58d7cb561370")},
					{"El Huequito", "Tacos al Pastor.", "Street Food", "$", photo("1612874742237-415ba2fe9c32")},
					{"Rosetta", "Italian-Mexican fusion.", "Fusion", "$$$", photo("1546069901-ba9599a7e63c")},
					{"Churrería El Moro", "Famous Churros.", "Dessert", "$", photo("1621996346565-e3dbc646d9a9")},
				},
				sites: []seedSite{
					{"Teotihuacan", "Ancient pyramids.", "$80 MXN", photo("1535139262971-187ea590bd0d")},
					{"Frida Kahlo Museum", "Blue House.", "$250 MXN", photo("1516565058933-aa282ef429c6")},
					{"Chapultepec Castle", "Historic hilltop castle.", "$85 MXN", photo("1469854523086-cc02fe5d8800")},
					{"Zócalo", "Main square.", "Free", photo("1552832230-c0197dd311b5")},
					{"Palacio de Bellas Artes", "Cultural center.", "$75 MXN", photo("1504674900247-0877df9cc836")},
				},
			},
			{
				name:        "Cancun",
				slug:        "cancun",
				description: "Tropical beaches and Caribbean luxury destination.",
				image:       hero("1507525428034-b723cf961d3e"),
				restaurants: []seedRestaurant{
					{"La Vaquita", "Mexican beachfront dining.", "Mexican", "$$$", photo("1565299585323-38d6b0865b47")},
					{"Señor Frog's", "Casual seafood.", "Seafood", "$$", photo("1555939594-58d7cb561370")},
					{"Palazzo", "Italian restaurant.", "Italian", "$$$", photo("1546069901-ba9599a7e63c")},
					{"The Surfin' Burrito", "Casual tacos.", "Street Food", "$", photo("1612874742237-415ba2fe9c32")},
					{"Dady'O Nightclub Restaurant", "Nightlife dining.", "International", "$$", photo("1621996346565-e3dbc646d9a9")},
				},
				sites: []seedSite{
					{"Chichen Itza", "Mayan pyramid ruins.", "$50 MXN", photo("1535139262971-187ea590bd0d")},
					{"Tulum Ruins", "Clifftop Mayan ruins.", "$75 MXN", photo("1469854523086-cc02fe5d8800")},
					{"Cenote Ik Kil", "Natural sinkhole.", "$100 MXN", photo("1506905925346-21bda4d32df4")},
					{"El Rey Ruins", "Beach ruins.", "$50 MXN", photo("1488646953014-85cb44e25828")},
					{"Great Mesoamerican Barrier Reef", "Snorkeling spot.", "$80 MXN", photo("1507525428034-b723cf961d3e")},
				},
			},
		},
	},
	{
		name:        "Thailand",
		slug:        "thailand",
		description: "Tropical beaches, royal palaces, and incredible street food.",
		heroImage:   hero("1507525428034-b723cf961d3e"),
		continent:   "Asia",
		destinations: []seedDestination{
			{
				name:        "Bangkok",
				slug:        "bangkok",
				description: "City of Angels, a bustling metropolis with temples and street food.",
				image:       hero("1522383150241-6c328020254e"),
				restaurants: []seedRestaurant{
					{"Jay Fai", "Michelin-starred crab omelette.", "Street Food", "$$$", photo("1546069901-ba9599a7e63c")},
					{"Gaggan Anand", "Progressive Indian.", "Fine Dining", "$$$$", photo("1568901346375-23c9450c58cd")},
					{"Thip Samai", "Best Pad Thai.", "Noodles", "$$", photo("1634193295627-1cdddf751ebf")},
					{"Wattana Panich", "Beef broth stewed for years.", "Noodles", "$", photo("1612874742237-415ba2fe9c32")},
					{"Som Tam Nua", "Papaya Salad.", "Isan", "$", photo("1521305573892-18ecd32ce3bf")},
				},
				sites: []seedSite{
					{"Grand Palace", "Official residence of Kings.", "500 THB", photo("1522383150241-6c328020254e")},
					{"Wat Arun", "Temple of Dawn.", "100 THB", photo("1488646953014-85cb44e25828")},
					{"Chatuchak Market", "Weekend market.", "Free", photo("1495521821757-a1efb6729352")},
					{"Wat Pho", "Reclining Buddha.", "200 THB", photo("1537799943893-52c29a11a46e")},
					{"Khao San Road", "Backpacker hub.", "Free", photo("1552832230-c0197dd311b5")},
				},
			},
			{
				name:        "Phuket",
				slug:        "phuket",
				description: "Island paradise with beaches, diving, and nightlife.",
				image:       hero("1507525428034-b723cf961d3e"),
				restaurants: []seedRestaurant{
					{"Acqua Restaurant", "Italian beachfront.", "Italian", "$$$", photo("1546069901-ba9599a7e63c")},
					{"On the Rock", "Seafood with sunset views.", "Seafood", "$$", photo("1568901346375-23c9450c58cd")},
					{"Thai Kitchen", "Traditional Thai cuisine.", "Thai", "$$", photo("1634193295627-1cdddf751ebf")},
					{"Savoey Seafood", "Fresh local seafood.", "Seafood", "$$", photo("1612874742237-415ba2fe9c32")},
					{"Ka Jok See", "Thai fusion fine dining.", "Fusion", "$$$", photo("1521305573892-18ecd32ce3bf")},
				},
				sites: []seedSite{
					{"Big Buddha", "Hilltop golden buddha.", "300 THB", photo("1522383150241-6c328020254e")},
					{"Phi Phi Islands", "Island hopping.", "800 THB", photo("1559827260-dc66d52bef19")},
					{"Phang Nga Bay", "Limestone karsts.", "600 THB", photo("1495521821757-a1efb6729352")},
					{"Patong Beach", "Popular beach resort.", "Free", photo("1507525428034-b723cf961d3e")},
					{"Wat Chalong", "Historic temple.", "20 THB", photo("1488646953014-85cb44e25828")},
				},
			},
		},
	},
	{
		name:        "France",
		slug:        "france",
		description: "Medieval cities, alpine villages and glorious beaches.",
		heroImage:   hero("1502602898657-3e91760cbb34"),
		continent:   "Europe",
		destinations: []seedDestination{
			{
				name:        "Paris",
				slug:        "paris",
				description: "The City of Light, romantic capital of France.",
				image:       hero("1502602898657-3e91760cbb34"),
				restaurants: []seedRestaurant{
					{"Le Jules Verne", "Eiffel Tower dining.", "French", "$$$$", photo("1612874742237-415ba2fe9c32")},
					{"L'As du Fallafel", "Famous falafel.", "Middle Eastern", "$", photo("1621996346565-e3dbc646d9a9")},
					{"Bouillon Chartier", "Historic brasserie.", "French", "$$", photo("1546069901-ba9599a7e63c")},
					{"Angelina", "Famous hot chocolate.", "Cafe", "$$", photo("1495521821757-a1efb6729352")},
					{"Le Comptoir du Relais", "Classic bistro.", "Bistro", "$$$", photo("1544025162-d76694265947")},
				},
				sites: []seedSite{
					{"Eiffel Tower", "Iron lattice tower.", "€26", photo("1502602898657-3e91760cbb34")},
					{"Louvre Museum", "Art museum.", "€17", photo("1551801526-becf464a6a77")},
					{"Notre-Dame", "Medieval cathedral.", "Free", photo("1537799943893-52c29a11a46e")},
					{"Sacré-Cœur", "Basilica on a hill.", "Free", photo("1578926078328-123f5474f46b")},
					{"Arc de Triomphe", "Triumphal arch.", "€13", photo("1540959375944-7049f642e9a4")},
				},
			},
			{
				name:        "Lyon",
				slug:        "lyon",
				description: "Culinary capital of France with Renaissance old town.",
				image:       hero("1488646953014-85cb44e25828"),
				restaurants: []seedRestaurant{
					{"Paul Bocuse", "Legendary French cuisine.", "French", "$$$$", photo("1612874742237-415ba2fe9c32")},
					{"La Cour des Loges", "Fine dining bistro.", "French", "$$$", photo("1621996346565-e3dbc646d9a9")},
					{"Chez Paul", "Traditional Lyonnaise.", "French", "$$", photo("1546069901-ba9599a7e63c")},
					{"Les Trois Gaules", "Classic French brasserie.", "French", "$$", photo("1544025162-d76694265947")},
					{"Café des Fédérations", "Historic café.", "Bistro", "$", photo("1495521821757-a1efb6729352")},
				},
				sites: []seedSite{
					{"Basilica of Notre-Dame de Fourvière", "Hilltop basilica.", "€10", photo("1506905925346-21bda4d32df4")},
					{"Old Town (Vieux Lyon)", "Renaissance district.", "Free", photo("1488646953014-85cb44e25828")},
					{"Museum of Fine Arts", "Art museum.", "€12", photo("1551801526-becf464a6a77")},
					{"Parc de la Tête d'Or", "Urban park with lake.", "Free", photo("1469854523086-cc02fe5d8800")},
					{"Confluence Museum", "Modern museum.", "€14", photo("1504674900247-0877df9cc836")},
				},
			},
		},
	},
}
