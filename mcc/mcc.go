// Package mcc bundles the static merchant category code table consulted
// when a transaction carries a SIC code. The table is read-only and safe
// for concurrent lookups.
package mcc

import "strings"

var codes = map[string]string{
	"0742": "Veterinary Services",
	"0763": "Agricultural Co-operatives",
	"0780": "Landscaping and Horticultural Services",
	"1520": "General Contractors",
	"1711": "Heating, Plumbing, and Air Conditioning Contractors",
	"1731": "Electrical Contractors",
	"1750": "Carpentry Contractors",
	"1799": "Special Trade Contractors",
	"2741": "Miscellaneous Publishing and Printing",
	"2842": "Specialty Cleaning, Polishing and Sanitation Preparations",
	"3000": "United Airlines",
	"3001": "American Airlines",
	"3005": "British Airways",
	"3007": "Air France",
	"3008": "Lufthansa",
	"3009": "Air Canada",
	"3010": "KLM",
	"3026": "Emirates Airlines",
	"3058": "Delta",
	"3066": "Southwest",
	"3351": "Affiliated Auto Rental",
	"3357": "Hertz Rent-A-Car",
	"3366": "Budget Rent-A-Car",
	"3389": "Avis Rent-A-Car",
	"3393": "National Car Rental",
	"3405": "Enterprise Rent-A-Car",
	"3501": "Holiday Inns",
	"3502": "Best Western Hotels",
	"3503": "Sheraton Hotels",
	"3504": "Hilton Hotels",
	"3509": "Marriott Hotels",
	"3512": "Inter-Continental Hotels",
	"3543": "Four Seasons Hotels",
	"3615": "Travelodge",
	"3640": "Hyatt Hotels",
	"3649": "Radisson Hotels",
	"3690": "Courtyard by Marriott",
	"4011": "Railroads",
	"4111": "Local and Suburban Commuter Passenger Transportation",
	"4112": "Passenger Railways",
	"4119": "Ambulance Services",
	"4121": "Taxicabs and Limousines",
	"4131": "Bus Lines",
	"4214": "Motor Freight Carriers and Trucking",
	"4215": "Courier Services",
	"4411": "Steamship and Cruise Lines",
	"4511": "Airlines and Air Carriers",
	"4582": "Airports, Flying Fields, and Airport Terminals",
	"4722": "Travel Agencies and Tour Operators",
	"4784": "Tolls and Bridge Fees",
	"4789": "Transportation Services",
	"4812": "Telecommunication Equipment and Telephone Sales",
	"4814": "Telecommunication Services",
	"4816": "Computer Network/Information Services",
	"4821": "Telegraph Services",
	"4829": "Wire Transfers and Money Orders",
	"4899": "Cable, Satellite and Other Pay Television/Radio Services",
	"4900": "Utilities - Electric, Gas, Water, Sanitary",
	"5013": "Motor Vehicle Supplies and New Parts",
	"5039": "Construction Materials",
	"5045": "Computers, Computer Peripheral Equipment, Software",
	"5065": "Electrical Parts and Equipment",
	"5094": "Precious Stones and Metals, Watches and Jewelry",
	"5122": "Drugs, Drug Proprietaries, and Druggist Sundries",
	"5172": "Petroleum and Petroleum Products",
	"5192": "Books, Periodicals and Newspapers",
	"5193": "Florists Supplies, Nursery Stock and Flowers",
	"5200": "Home Supply Warehouse Stores",
	"5211": "Lumber and Building Materials Stores",
	"5231": "Glass, Paint, and Wallpaper Stores",
	"5251": "Hardware Stores",
	"5261": "Nurseries and Lawn and Garden Supply Stores",
	"5300": "Wholesale Clubs",
	"5309": "Duty Free Stores",
	"5310": "Discount Stores",
	"5311": "Department Stores",
	"5331": "Variety Stores",
	"5399": "Miscellaneous General Merchandise",
	"5411": "Grocery Stores and Supermarkets",
	"5422": "Freezer and Locker Meat Provisioners",
	"5441": "Candy, Nut, and Confectionery Stores",
	"5451": "Dairy Products Stores",
	"5462": "Bakeries",
	"5499": "Miscellaneous Food Stores",
	"5511": "Car and Truck Dealers - New and Used",
	"5532": "Automotive Tire Stores",
	"5541": "Service Stations",
	"5542": "Automated Fuel Dispensers",
	"5551": "Boat Dealers",
	"5571": "Motorcycle Shops and Dealers",
	"5599": "Miscellaneous Automotive Dealers",
	"5611": "Men's and Boys' Clothing and Accessories Stores",
	"5621": "Women's Ready-To-Wear Stores",
	"5631": "Women's Accessory and Specialty Shops",
	"5641": "Children's and Infants' Wear Stores",
	"5651": "Family Clothing Stores",
	"5655": "Sports and Riding Apparel Stores",
	"5661": "Shoe Stores",
	"5691": "Men's and Women's Clothing Stores",
	"5699": "Miscellaneous Apparel and Accessory Shops",
	"5712": "Furniture, Home Furnishings, and Equipment Stores",
	"5722": "Household Appliance Stores",
	"5732": "Electronics Stores",
	"5733": "Music Stores",
	"5734": "Computer Software Stores",
	"5735": "Record Stores",
	"5811": "Caterers",
	"5812": "Eating Places and Restaurants",
	"5813": "Drinking Places - Bars, Taverns, Nightclubs",
	"5814": "Fast Food Restaurants",
	"5912": "Drug Stores and Pharmacies",
	"5921": "Package Stores - Beer, Wine, and Liquor",
	"5931": "Used Merchandise and Secondhand Stores",
	"5941": "Sporting Goods Stores",
	"5942": "Book Stores",
	"5943": "Stationery Stores, Office and School Supply Stores",
	"5944": "Jewelry Stores, Watches, Clocks, and Silverware Stores",
	"5945": "Hobby, Toy, and Game Shops",
	"5946": "Camera and Photographic Supply Stores",
	"5947": "Gift, Card, Novelty, and Souvenir Shops",
	"5948": "Luggage and Leather Goods Stores",
	"5949": "Sewing, Needlework, Fabric, and Piece Goods Stores",
	"5960": "Direct Marketing - Insurance Services",
	"5962": "Direct Marketing - Travel Related Arrangement Services",
	"5964": "Direct Marketing - Catalog Merchant",
	"5965": "Direct Marketing - Combination Catalog and Retail Merchant",
	"5966": "Direct Marketing - Outbound Telemarketing Merchant",
	"5967": "Direct Marketing - Inbound Telemarketing Merchant",
	"5968": "Direct Marketing - Continuity/Subscription Merchant",
	"5969": "Direct Marketing - Other Direct Marketers",
	"5970": "Artist Supply and Craft Shops",
	"5977": "Cosmetic Stores",
	"5983": "Fuel Dealers",
	"5992": "Florists",
	"5993": "Cigar Stores and Stands",
	"5994": "News Dealers and Newsstands",
	"5995": "Pet Shops, Pet Foods and Supplies Stores",
	"5999": "Miscellaneous and Specialty Retail Stores",
	"6010": "Financial Institutions - Manual Cash Disbursements",
	"6011": "Financial Institutions - Automated Cash Disbursements",
	"6012": "Financial Institutions - Merchandise and Services",
	"6051": "Non-Financial Institutions - Foreign Currency, Money Orders",
	"6211": "Security Brokers/Dealers",
	"6300": "Insurance Sales, Underwriting, and Premiums",
	"6513": "Real Estate Agents and Managers - Rentals",
	"7011": "Lodging - Hotels, Motels, and Resorts",
	"7012": "Timeshares",
	"7210": "Laundry, Cleaning, and Garment Services",
	"7216": "Dry Cleaners",
	"7230": "Beauty and Barber Shops",
	"7251": "Shoe Repair Shops and Shoe Shine Parlors",
	"7261": "Funeral Services and Crematories",
	"7273": "Dating and Escort Services",
	"7276": "Tax Preparation Services",
	"7298": "Health and Beauty Spas",
	"7299": "Miscellaneous Personal Services",
	"7311": "Advertising Services",
	"7333": "Commercial Photography, Art, and Graphics",
	"7338": "Quick Copy, Reproduction, and Blueprinting Services",
	"7349": "Cleaning, Maintenance, and Janitorial Services",
	"7372": "Computer Programming, Data Processing Services",
	"7392": "Management, Consulting, and Public Relations Services",
	"7393": "Detective Agencies and Protective Services",
	"7394": "Equipment, Tool, Furniture, and Appliance Rental",
	"7399": "Business Services",
	"7512": "Automobile Rental Agency",
	"7523": "Parking Lots and Garages",
	"7531": "Automotive Body Repair Shops",
	"7534": "Tire Retreading and Repair Shops",
	"7538": "Automotive Service Shops",
	"7542": "Car Washes",
	"7549": "Towing Services",
	"7832": "Motion Picture Theaters",
	"7841": "Video Tape Rental Stores",
	"7911": "Dance Halls, Studios and Schools",
	"7922": "Theatrical Producers and Ticket Agencies",
	"7929": "Bands, Orchestras, and Miscellaneous Entertainers",
	"7932": "Billiard and Pool Establishments",
	"7933": "Bowling Alleys",
	"7941": "Commercial Sports, Professional Sports Clubs",
	"7991": "Tourist Attractions and Exhibits",
	"7992": "Public Golf Courses",
	"7993": "Video Amusement Game Supplies",
	"7994": "Video Game Arcades and Establishments",
	"7995": "Betting, Casino Gaming, and Wagering",
	"7996": "Amusement Parks, Circuses, Carnivals",
	"7997": "Membership Clubs, Country Clubs, Private Golf Courses",
	"7998": "Aquariums, Seaquariums, Dolphinariums",
	"7999": "Recreation Services",
	"8011": "Doctors and Physicians",
	"8021": "Dentists and Orthodontists",
	"8031": "Osteopaths",
	"8041": "Chiropractors",
	"8042": "Optometrists and Ophthalmologists",
	"8043": "Opticians, Optical Goods, and Eyeglasses",
	"8049": "Podiatrists and Chiropodists",
	"8050": "Nursing and Personal Care Facilities",
	"8062": "Hospitals",
	"8071": "Medical and Dental Laboratories",
	"8099": "Medical Services and Health Practitioners",
	"8111": "Legal Services and Attorneys",
	"8211": "Elementary and Secondary Schools",
	"8220": "Colleges, Universities, Professional Schools",
	"8241": "Correspondence Schools",
	"8244": "Business and Secretarial Schools",
	"8249": "Vocational and Trade Schools",
	"8299": "Schools and Educational Services",
	"8351": "Child Care Services",
	"8398": "Charitable and Social Service Organizations",
	"8641": "Civic, Social, and Fraternal Associations",
	"8651": "Political Organizations",
	"8661": "Religious Organizations",
	"8675": "Automobile Associations",
	"8699": "Membership Organizations",
	"8734": "Testing Laboratories",
	"8911": "Architectural, Engineering, and Surveying Services",
	"8931": "Accounting, Auditing, and Bookkeeping Services",
	"8999": "Professional Services",
	"9211": "Court Costs, Including Alimony and Child Support",
	"9222": "Fines",
	"9311": "Tax Payments",
	"9399": "Government Services",
	"9402": "Postal Services - Government Only",
	"9405": "U.S. Federal Government Agencies or Departments",
}

// Lookup returns the merchant category description for the given numeric
// code. The second return is false when the code is not in the table.
func Lookup(code string) (string, bool) {
	desc, ok := codes[strings.TrimSpace(code)]
	return desc, ok
}

// Description returns the merchant category description for the given code,
// or "" when the code is unknown. A miss is not an error.
func Description(code string) string {
	desc, _ := Lookup(code)
	return desc
}

// Size returns the number of codes in the bundled table.
func Size() int { return len(codes) }
