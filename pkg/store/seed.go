package store

import "github.com/wandergate/catalog-api/pkg/models"

// Seed catalog shown on the marketing site. IDs are left zero; each store
// assigns them on insert so the counters stay authoritative.

func seedDestinations() []models.Destination {
	return []models.Destination{
		{
			Name:             "Dubai",
			Slug:             "dubai",
			ShortDescription: "Experience the ultimate luxury in this futuristic city where cutting-edge architecture meets traditional Arabian culture.",
			FullDescription:  "Dubai is a city of superlatives, home to the world's tallest building, largest mall, and some of the most luxurious hotels on the planet. Experience the perfect blend of futuristic architecture, traditional souks, and breathtaking desert landscapes.",
			MainImage:        "https://images.unsplash.com/photo-1546412414-e1885e51cfa5?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&h=400",
			BannerImage:      "https://images.unsplash.com/photo-1534008897995-27a23e859048?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&h=600",
			Attractions:      models.StringList{"Burj Khalifa", "Palm Jumeirah", "Dubai Mall", "Desert Safari"},
			TravelTips:       models.StringList{"Best time to visit: November to March", "Dress modestly in public places", "Taxis are the most convenient way to get around", "The weekend is Friday and Saturday"},
		},
		{
			Name:             "Thailand",
			Slug:             "thailand",
			ShortDescription: "Discover pristine beaches, vibrant culture, and mouth-watering cuisine in this tropical paradise of Southeast Asia.",
			FullDescription:  "Thailand offers a perfect blend of bustling cities, serene beaches, rich cultural heritage, and delectable cuisine. From the vibrant streets of Bangkok to the tranquil islands of Phi Phi and Phuket, Thailand has something for every type of traveler.",
			MainImage:        "https://images.unsplash.com/photo-1552465011-b4e21bf6e79a?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&h=400",
			BannerImage:      "https://images.unsplash.com/photo-1504214208698-ea1916a2195a?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&h=600",
			Attractions:      models.StringList{"Phi Phi Islands", "Bangkok", "Chiang Mai", "Phuket"},
			TravelTips:       models.StringList{"Best time to visit: November to March", "Always respect temple etiquette", "Bargain at markets but stay friendly", "Try the street food"},
		},
		{
			Name:             "Singapore",
			Slug:             "singapore",
			ShortDescription: "Experience a perfect blend of culture, cuisine, and futuristic architecture in this dynamic city-state.",
			FullDescription:  "Singapore is a fascinating blend of East and West, tradition and innovation. This small but mighty city-state boasts stunning architecture, world-class dining, shopping, and entertainment options alongside lush green spaces and cultural enclaves.",
			MainImage:        "https://images.unsplash.com/photo-1525625293386-3f8f99389edd?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&h=400",
			BannerImage:      "https://images.unsplash.com/photo-1565967511849-76a60a516170?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&h=600",
			Attractions:      models.StringList{"Marina Bay Sands", "Gardens by the Bay", "Sentosa Island", "Hawker Centers"},
			TravelTips:       models.StringList{"English is widely spoken", "Public transport is efficient and affordable", "Strict fines for littering and jaywalking", "The weather is hot and humid year-round"},
		},
		{
			Name:             "Vietnam",
			Slug:             "vietnam",
			ShortDescription: "Immerse yourself in breathtaking landscapes, rich history, and delicious cuisine in this captivating country.",
			FullDescription:  "Vietnam offers a mesmerizing mix of natural highlights and cultural diversity. From the terraced rice fields of the mountainous north to the picturesque valleys of Halong Bay, it's a country full of natural beauty and tranquil village life.",
			MainImage:        "https://images.unsplash.com/photo-1528127269322-539801943592?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&h=400",
			BannerImage:      "https://images.unsplash.com/photo-1557750255-c76072a4703d?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&h=600",
			Attractions:      models.StringList{"Ha Long Bay", "Hoi An", "Hanoi", "Ho Chi Minh City"},
			TravelTips:       models.StringList{"Best time to visit: October to April", "Learn basic Vietnamese phrases", "Try the famous Vietnamese coffee", "Motorbikes are the main form of transport"},
		},
		{
			Name:             "Indonesia",
			Slug:             "indonesia",
			ShortDescription: "Explore beautiful beaches, ancient temples, and lush rainforests across this diverse archipelago nation.",
			FullDescription:  "Indonesia, the world's largest archipelago, offers incredible diversity across its 17,000 islands. From the spiritual hub of Ubud in Bali to the pristine beaches of the Gili Islands, Indonesia offers unforgettable experiences for every type of traveler.",
			MainImage:        "https://images.unsplash.com/photo-1537996194471-e657df975ab4?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&h=400",
			BannerImage:      "https://images.unsplash.com/photo-1518548419970-58e3b4079ab2?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&h=600",
			Attractions:      models.StringList{"Bali", "Ubud", "Komodo Island", "Raja Ampat"},
			TravelTips:       models.StringList{"Best time to visit: April to October", "Respect local customs and traditions", "Bargain at markets but stay respectful", "Try the local cuisine"},
		},
		{
			Name:             "UAE",
			Slug:             "uae",
			ShortDescription: "Experience the perfect blend of modern luxury and traditional Arabian culture throughout the United Arab Emirates.",
			FullDescription:  "The United Arab Emirates offers more than just Dubai. Explore Abu Dhabi's cultural attractions, Sharjah's heritage sites, the mountains of Ras Al Khaimah, and the beaches of Fujairah. Each emirate has its own unique character and attractions.",
			MainImage:        "https://images.unsplash.com/photo-1577411571638-78f63bbf1e8d?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&h=400",
			BannerImage:      "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&h=600",
			Attractions:      models.StringList{"Abu Dhabi", "Sharjah", "Fujairah", "Ras Al Khaimah"},
			TravelTips:       models.StringList{"Best time to visit: October to April", "Respect local customs", "Taxis and ride-sharing are common", "Alcohol is only served in licensed venues"},
		},
	}
}

// seedItineraries references destinations by their seed position (1-based),
// matching the IDs the stores assign above.
func seedItineraries() []models.Itinerary {
	return []models.Itinerary{
		{
			Title:         "5 Days in Dubai – Luxury Edition",
			DestinationID: 1,
			Duration:      "5-7 days",
			BudgetLevel:   "Luxury",
			TravelStyle:   models.StringList{"Luxury", "Shopping", "Adventure"},
			Highlights:    models.StringList{"Burj Khalifa VIP", "Desert Safari", "Yacht Cruise", "Fine Dining"},
			Description:   "Experience the best of Dubai with this luxury itinerary featuring 5-star accommodations, fine dining, and VIP experiences.",
			Image:         "https://images.unsplash.com/photo-1518684079-3c830dcef090?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&h=300",
		},
		{
			Title:         "Backpacking Across Thailand in 7 Days",
			DestinationID: 2,
			Duration:      "5-7 days",
			BudgetLevel:   "Budget-friendly",
			TravelStyle:   models.StringList{"Adventure", "Cultural", "Food & Culinary"},
			Highlights:    models.StringList{"Hostels", "Street Food", "Island Hopping", "Temple Tours"},
			Description:   "Explore the best of Thailand on a budget with this backpacker-friendly itinerary covering Bangkok, Chiang Mai, and island hopping.",
			Image:         "https://images.unsplash.com/photo-1506665531195-3566af2b4dfa?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&h=300",
		},
		{
			Title:         "Singapore Family Adventure – 4 Days",
			DestinationID: 3,
			Duration:      "3-4 days",
			BudgetLevel:   "Moderate",
			TravelStyle:   models.StringList{"Family-friendly", "Adventure", "Food & Culinary"},
			Highlights:    models.StringList{"Universal Studios", "Gardens by the Bay", "Singapore Zoo", "S.E.A. Aquarium"},
			Description:   "Perfect for families with children, this 4-day Singapore itinerary includes kid-friendly attractions, comfortable accommodations, and easy transportation.",
			Image:         "https://images.unsplash.com/photo-1565967511849-76a60a516170?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&h=300",
		},
	}
}

func seedTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			Name:        "Sarah J.",
			Destination: "Dubai, UAE Trip",
			Rating:      5,
			Comment:     "A seamless experience! Booking our Dubai trip was effortless, and every detail was perfectly curated. The desert safari and Burj Khalifa VIP experience were highlights we'll never forget.",
			Date:        "March 2023",
			AvatarImage: "https://randomuser.me/api/portraits/women/32.jpg",
		},
		{
			Name:        "Michael T.",
			Destination: "Thailand Adventure",
			Rating:      4,
			Comment:     "The Thailand itinerary perfectly balanced adventure and relaxation. From street food tours in Bangkok to secluded beaches in Krabi, every recommendation was spot on. Can't wait to book my next trip!",
			Date:        "January 2023",
			AvatarImage: "https://randomuser.me/api/portraits/men/47.jpg",
		},
		{
			Name:        "Priya K.",
			Destination: "Singapore Family Trip",
			Rating:      5,
			Comment:     "Traveling with two young children can be challenging, but our Singapore family itinerary made everything so easy! The kids loved Universal Studios and the Night Safari, while we adults appreciated the perfectly timed schedule.",
			Date:        "December 2022",
			AvatarImage: "https://randomuser.me/api/portraits/women/63.jpg",
		},
	}
}
